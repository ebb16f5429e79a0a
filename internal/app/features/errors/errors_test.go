package errors_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	errorsfeature "github.com/mahirsiam2004/altrion-server/internal/app/features/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	h := errorsfeature.NewHandler(zap.NewNop())

	tests := []struct {
		name   string
		serve  http.HandlerFunc
		status int
		body   string
	}{
		{"not found", h.NotFound, http.StatusNotFound, `{"message":"Not found"}`},
		{"method not allowed", h.MethodNotAllowed, http.StatusMethodNotAllowed, `{"message":"Method not allowed"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.serve(rec, httptest.NewRequest("GET", "/nope", nil))
			if rec.Code != tt.status {
				t.Errorf("status: got %d, want %d", rec.Code, tt.status)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tt.body {
				t.Errorf("body: got %s, want %s", got, tt.body)
			}
		})
	}
}

func TestRecover(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := errorsfeature.NewHandler(zap.New(core))

	boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })
	rec := httptest.NewRecorder()
	h.Recover(boom).ServeHTTP(rec, httptest.NewRequest("POST", "/courses", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Internal server error") {
		t.Errorf("body: %s", rec.Body.String())
	}
	if logs.FilterMessage("handler panic").Len() != 1 {
		t.Errorf("expected one panic log entry, got %d", logs.Len())
	}
}

func TestRecover_AbortHandlerPropagates(t *testing.T) {
	h := errorsfeature.NewHandler(zap.NewNop())
	abort := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(http.ErrAbortHandler) })

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Errorf("expected ErrAbortHandler to propagate, got %v", rec)
		}
	}()
	h.Recover(abort).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
}
