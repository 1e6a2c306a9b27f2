// Package web provides infrastructure for serving server-rendered pages with
// Go templates and embedded static assets.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef defines a page with its route, template file, and title.
type ViewDef struct {
	Route    string
	Template string
	Title    string
}

// ViewData contains the data passed to page templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type ViewData struct {
	Title    string
	BasePath string
	Data     any
}

// TemplateSet holds pre-parsed templates and a base path for URL generation.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// Funcs are available to every layout and view.
var Funcs = template.FuncMap{
	"markdown": RenderMarkdown,
}

// NewTemplateSet parses the layout templates once and clones them for each
// view, so a malformed template fails at startup rather than per request.
func NewTemplateSet(fsys fs.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.New("").Funcs(Funcs).ParseFS(fsys, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(fsys, viewSubdir)
	if err != nil {
		return nil, err
	}

	viewTemplates := make(map[string]*template.Template, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		viewTemplates[v.Template] = t
	}

	return &TemplateSet{
		views:    viewTemplates,
		basePath: basePath,
	}, nil
}

// BasePath returns the URL prefix included in every ViewData.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// PageHandler returns an HTTP handler that renders the given view with no data.
func (ts *TemplateSet) PageHandler(layout string, view ViewDef) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ViewData{
			Title:    view.Title,
			BasePath: ts.basePath,
		}
		if err := ts.Render(w, http.StatusOK, layout, view.Template, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// Render executes the named layout template into a buffer and writes it with
// status. Nothing is written to w when execution fails.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, layoutName, viewPath string, data ViewData) error {
	t, ok := ts.views[viewPath]
	if !ok {
		return fmt.Errorf("template not found: %s", viewPath)
	}
	if data.BasePath == "" {
		data.BasePath = ts.basePath
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutName, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
