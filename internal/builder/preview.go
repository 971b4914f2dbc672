// internal/builder/preview.go
package builder

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"catpress/internal/catechism"
	"catpress/internal/config"
	"catpress/internal/render"
)

// PreviewOptions controls the HTML preview build.
type PreviewOptions struct {
	Unsafe     bool // skip HTML sanitization
	LiveReload bool // embed the reload script for the dev server
}

var (
	previewRenderer = goldmark.New(
		// GFM is needed for the reference tables.
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	// The sanitizer must keep <sup>, which carries the footnote markers.
	previewSanitizer = bluemonday.UGCPolicy().AllowElements("sup")

	// supMarker matches the inline footnote markers of the Markdown
	// output, which browsers cannot render as-is.
	supMarker = regexp.MustCompile(`\$\^\{(\d+)\}\$`)
)

// PageData is the struct passed to the preview layout template.
type PageData struct {
	Title      string
	Author     string
	Content    template.HTML
	LiveReload bool
}

// BuildPreview renders the assembled Markdown document to
// <outputDir>/index.html for the dev server.
func BuildPreview(srcDir, outputDir, templateDir string, cfg config.Config, opts PreviewOptions) (int, error) {
	questions, err := catechism.LoadDir(srcDir)
	if err != nil {
		return 0, err
	}

	doc := render.MarkdownDocument(questions, render.Options{
		Title:      cfg.Title,
		LookupBase: cfg.LookupBase,
		Version:    cfg.Version,
	})
	body := supMarker.ReplaceAllString(doc, "<sup>$1</sup>")

	var htmlBuf bytes.Buffer
	if err := previewRenderer.Convert([]byte(body), &htmlBuf); err != nil {
		return 0, fmt.Errorf("failed to render markdown with goldmark: %w", err)
	}
	content := htmlBuf.Bytes()
	if !opts.Unsafe {
		content = previewSanitizer.SanitizeBytes(content)
	}

	tmpl, err := loadLayout(templateDir, cfg.Template)
	if err != nil {
		return 0, fmt.Errorf("failed to load preview layout: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, err
	}
	out, err := os.Create(filepath.Join(outputDir, "index.html"))
	if err != nil {
		return 0, err
	}
	defer out.Close()

	page := PageData{
		Title:      cfg.Title,
		Author:     cfg.Author,
		Content:    template.HTML(content),
		LiveReload: opts.LiveReload,
	}
	if err := tmpl.Execute(out, page); err != nil {
		return 0, fmt.Errorf("failed to render preview page: %w", err)
	}
	return len(questions), nil
}

// loadLayout uses the project's template when one is scaffolded, and the
// embedded default otherwise.
func loadLayout(templateDir, name string) (*template.Template, error) {
	path := filepath.Join(templateDir, name, "layout.html")
	if _, err := os.Stat(path); err == nil {
		return template.ParseFiles(path)
	}
	return template.New("layout.html").Parse(defaultLayout)
}

const defaultLayout = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  {{if .Author}}<meta name="author" content="{{.Author}}">{{end}}
  <style>
    body { max-width: 46em; margin: 2em auto; padding: 0 1em; font-family: Georgia, serif; line-height: 1.5; }
    sup { color: #00008c; }
    table { border-collapse: collapse; }
    th, td { border: 1px solid #ccd; padding: 0.2em 0.6em; font-size: 0.85em; }
    a { color: #1a0dab; }
  </style>
</head>
<body>
{{.Content}}
{{if .LiveReload}}` + liveReloadScript + `{{end}}
</body>
</html>
`

// liveReloadScript reconnects the page to the dev server's websocket and
// reloads on rebuild notifications.
const liveReloadScript = `<script>
  (function() {
    let socket = new WebSocket("ws://" + window.location.host + "/ws");
    socket.onmessage = function(event) {
      if (event.data === "reload") {
        console.log("Reloading page...");
        window.location.reload();
      }
    };
    socket.onerror = function(error) {
      console.error("Live reload connection error. Please restart 'catpress serve'.");
    };
  })();
</script>`
