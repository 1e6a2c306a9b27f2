package web

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	htmlSanitizer = bluemonday.UGCPolicy()
)

// RenderMarkdown converts model output to sanitized HTML. Raw HTML in the
// source passes through goldmark and is then stripped by the UGC policy.
func RenderMarkdown(src string) template.HTML {
	if src == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(src), &buf); err != nil {
		return template.HTML(htmlSanitizer.Sanitize(template.HTMLEscapeString(src)))
	}

	return template.HTML(htmlSanitizer.Sanitize(buf.String()))
}
