// Package docs renders the HTML documentation page served at / and /docs.
package docs

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/suar-net/suar-time/internal/model"
	"github.com/suar-net/suar-time/internal/service"
)

var ErrRenderFailed = errors.New("failed to render documentation")

//go:embed templates
var templates embed.FS

// CodeDoc is one row of the error code table.
type CodeDoc struct {
	Code    string
	Message string
}

// Page is the data the documentation is rendered from.
type Page struct {
	Title        string
	Kinds        []string
	Formats      []string
	Languages    []string
	InternalCode string
	Codes        []CodeDoc
}

// NewPage lists every error code with its English message.
func NewPage(messages service.MessageCatalog) Page {
	p := Page{
		Title:        "suar-time",
		Kinds:        []string{model.KindTime.String(), model.KindUnix.String()},
		InternalCode: service.CodeInternal.String(),
	}
	for _, f := range model.PrimitiveFormats {
		p.Formats = append(p.Formats, f.String())
	}
	p.Formats = append(p.Formats, model.FormatAll.String())
	for _, l := range model.Languages {
		p.Languages = append(p.Languages, l.String())
	}
	for _, code := range service.Codes {
		entry := messages.Lookup(model.DefaultLanguage.String(), code.String())
		p.Codes = append(p.Codes, CodeDoc{Code: entry.Code, Message: entry.Message})
	}
	return p
}

var funcs = texttemplate.FuncMap{
	"join": func(values []string) string {
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = "`" + v + "`"
		}
		return strings.Join(quoted, ", ")
	},
	"cell": func(s string) string {
		return strings.ReplaceAll(s, "|", `\|`)
	},
}

// Render produces the complete HTML page.
func Render(p Page) ([]byte, error) {
	content, err := texttemplate.New("content.md").Funcs(funcs).ParseFS(templates, "templates/content.md")
	if err != nil {
		return nil, fmt.Errorf("%w: parse content: %v", ErrRenderFailed, err)
	}
	var markdown bytes.Buffer
	if err := content.Execute(&markdown, p); err != nil {
		return nil, fmt.Errorf("%w: execute content: %v", ErrRenderFailed, err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.Table),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	var body bytes.Buffer
	if err := md.Convert(markdown.Bytes(), &body); err != nil {
		return nil, fmt.Errorf("%w: convert markdown: %v", ErrRenderFailed, err)
	}

	layout, err := template.ParseFS(templates, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("%w: parse layout: %v", ErrRenderFailed, err)
	}
	var page bytes.Buffer
	err = layout.Execute(&page, map[string]any{
		"Title":   p.Title,
		"Content": template.HTML(body.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: execute layout: %v", ErrRenderFailed, err)
	}
	return page.Bytes(), nil
}
