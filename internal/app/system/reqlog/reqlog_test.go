package reqlog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddleware_AssignsID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	var seen string
	h := Middleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/courses", nil))

	if _, err := uuid.Parse(seen); err != nil {
		t.Errorf("request id %q is not a uuid", seen)
	}
	if got := rec.Header().Get(Header); got != seen {
		t.Errorf("response header %q, context id %q", got, seen)
	}
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].ContextMap()["status"] != int64(http.StatusTeapot) {
		t.Errorf("logged status: %v", entries[0].ContextMap()["status"])
	}
}

func TestMiddleware_ReusesInboundID(t *testing.T) {
	in := uuid.NewString()
	h := Middleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(Header, in)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(Header); got != in {
		t.Errorf("expected inbound id %q, got %q", in, got)
	}
}

func TestMiddleware_ReplacesGarbageID(t *testing.T) {
	h := Middleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(Header, "<script>")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(Header); got == "<script>" {
		t.Error("expected garbage id to be replaced")
	}
}
