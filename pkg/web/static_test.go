package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/JaimeStill/neurovia/pkg/web"
)

func TestStaticServer(t *testing.T) {
	fsys := fstest.MapFS{
		"static/app.css": {Data: []byte("body{}")},
	}

	handler, err := web.StaticServer(fsys, "static", "/static/")
	if err != nil {
		t.Fatalf("static server: %v", err)
	}

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"existing file", "/static/app.css", http.StatusOK, "body{}"},
		{"missing file", "/static/missing.css", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body: got %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
