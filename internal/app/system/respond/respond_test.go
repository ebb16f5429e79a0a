package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusNotFound, "Course not found")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q", ct)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 1 || body["message"] != "Course not found" {
		t.Errorf("body: got %v", body)
	}
}

func TestOK_Insert(t *testing.T) {
	rec := httptest.NewRecorder()
	OK(rec, Insert{Acknowledged: true, InsertedID: "abc"})

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d", rec.Code)
	}
	want := `{"acknowledged":true,"insertedId":"abc"}` + "\n"
	if rec.Body.String() != want {
		t.Errorf("body: got %q, want %q", rec.Body.String(), want)
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}
	tests := []struct {
		name   string
		body   string
		limit  int64
		ok     bool
		status int
		msg    string
	}{
		{"valid", `{"title":"Go"}`, 1024, true, http.StatusOK, ""},
		{"malformed", `{"title":`, 1024, false, http.StatusBadRequest, "Invalid JSON body"},
		{"empty", ``, 1024, false, http.StatusBadRequest, "Invalid JSON body"},
		{"too large", `{"title":"` + strings.Repeat("x", 100) + `"}`, 16, false, http.StatusRequestEntityTooLarge, "Request body too large"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))
			var p payload
			ok := DecodeJSON(rec, req, tt.limit, &p)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok {
				if p.Title != "Go" {
					t.Errorf("decoded %+v", p)
				}
				return
			}
			if rec.Code != tt.status {
				t.Errorf("status: got %d, want %d", rec.Code, tt.status)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["message"] != tt.msg {
				t.Errorf("message = %q, want %q", body["message"], tt.msg)
			}
		})
	}
}
