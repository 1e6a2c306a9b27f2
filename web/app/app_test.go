package app_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/JaimeStill/neurovia/pkg/bridge"
	"github.com/JaimeStill/neurovia/pkg/module"
	"github.com/JaimeStill/neurovia/web/app"
)

type fakeGenerator struct {
	calls atomic.Int32
	text  string
	err   error
}

func (f *fakeGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	f.calls.Add(1)
	return f.text, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newModule(t *testing.T, gen *fakeGenerator) *module.Module {
	t.Helper()
	b := bridge.New(gen, bridge.Config{Model: "gemini-2.0-flash"}, discardLogger())
	m, err := app.NewModule(app.Config{BasePath: "/app", MaxPromptSize: 1024}, b, discardLogger())
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	return m
}

func post(m *module.Module, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/app/generate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	m.Serve(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	m := newModule(t, &fakeGenerator{})

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest("GET", "/app", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Quick Prompt", "Ask More", `action="/app/generate"`, "What is the future of AI?"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestStatic(t *testing.T) {
	m := newModule(t, &fakeGenerator{})

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest("GET", "/app/static/app.css", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), ".card") {
		t.Error("stylesheet not served")
	}
}

func TestGenerateQuickPrompt(t *testing.T) {
	gen := &fakeGenerator{text: "**Quantum computing** is..."}
	m := newModule(t, gen)

	rec := post(m, url.Values{"source": {"quick"}, "prompt": {"What is quantum computing?"}})

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Gemini&#39;s Response") && !strings.Contains(body, "Gemini's Response") {
		t.Error("quick prompt heading missing")
	}
	if !strings.Contains(body, "<strong>Quantum computing</strong> is...") {
		t.Errorf("rendered response missing: %s", body)
	}
	if !strings.Contains(body, "What is quantum computing?</textarea>") {
		t.Error("prompt not echoed into the quick form")
	}
	if gen.calls.Load() != 1 {
		t.Errorf("calls: got %d, want 1", gen.calls.Load())
	}
}

func TestGenerateAskMore(t *testing.T) {
	gen := &fakeGenerator{text: "The future of AI is..."}
	m := newModule(t, gen)

	rec := post(m, url.Values{"source": {"ask"}, "prompt": {"What is the future of AI?"}})

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "AI Says:") {
		t.Error("ask more heading missing")
	}
	if !strings.Contains(body, "The future of AI is...") {
		t.Error("response missing")
	}
}

func TestGenerateEmptyPrompt(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
	}{
		{"empty", ""},
		{"whitespace", "  \n\t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{text: "unused"}
			m := newModule(t, gen)

			rec := post(m, url.Values{"source": {"quick"}, "prompt": {tt.prompt}})

			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("status: got %d, want 422", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "Please enter a prompt.") {
				t.Error("validation warning missing")
			}
			if gen.calls.Load() != 0 {
				t.Errorf("calls: got %d, want 0", gen.calls.Load())
			}
		})
	}
}

func TestGenerateFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("dial tcp: connection refused")}
	m := newModule(t, gen)

	rec := post(m, url.Values{"source": {"quick"}, "prompt": {"What is AI?"}})

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status: got %d, want 502", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "An error occurred:") || !strings.Contains(body, "connection refused") {
		t.Errorf("error message missing: %s", body)
	}
}

func TestGeneratePromptTooLarge(t *testing.T) {
	gen := &fakeGenerator{text: "unused"}
	m := newModule(t, gen)

	rec := post(m, url.Values{"source": {"quick"}, "prompt": {strings.Repeat("a", 2048)}})

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status: got %d, want 413", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Prompt exceeds 1 KB.") {
		t.Errorf("size warning missing: %s", rec.Body.String())
	}
	if gen.calls.Load() != 0 {
		t.Errorf("calls: got %d, want 0", gen.calls.Load())
	}
}

func TestGenerateEscapesRawHTML(t *testing.T) {
	gen := &fakeGenerator{text: "safe <script>alert('x')</script>"}
	m := newModule(t, gen)

	rec := post(m, url.Values{"source": {"ask"}, "prompt": {"<b>hi</b>"}})

	body := rec.Body.String()
	if strings.Contains(body, "<script>alert") {
		t.Error("script from model output reached the page")
	}
	if strings.Contains(body, `value="<b>hi</b>"`) {
		t.Error("prompt echoed without escaping")
	}
}
