package builder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"catpress/internal/config"
)

func TestBuildPreview(t *testing.T) {
	src := newTestSource(t)
	outputDir := filepath.Join(t.TempDir(), "public")
	templateDir := filepath.Join(t.TempDir(), "templates") // absent, use default layout

	count, err := BuildPreview(src, outputDir, templateDir, config.Default(), PreviewOptions{})
	if err != nil {
		t.Fatalf("BuildPreview returned error: %v", err)
	}
	if count != 2 {
		t.Errorf("got %d questions, want 2", count)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	if err != nil {
		t.Fatalf("index.html not written: %v", err)
	}
	page := string(data)
	wantContains := []string{
		"<title>The Larger Catechism</title>",
		"Second question?",
		// The $^{n}$ marker is converted to real superscript markup and
		// must survive sanitization.
		"<sup>1</sup>",
	}
	for _, want := range wantContains {
		if !strings.Contains(page, want) {
			t.Errorf("preview missing %q", want)
		}
	}
	if strings.Contains(page, "WebSocket") {
		t.Errorf("live-reload script embedded without LiveReload option")
	}
}

func TestBuildPreviewLiveReload(t *testing.T) {
	src := newTestSource(t)
	outputDir := filepath.Join(t.TempDir(), "public")

	_, err := BuildPreview(src, outputDir, "templates", config.Default(), PreviewOptions{LiveReload: true})
	if err != nil {
		t.Fatalf("BuildPreview returned error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	if err != nil {
		t.Fatalf("index.html not written: %v", err)
	}
	if !strings.Contains(string(data), "new WebSocket") {
		t.Errorf("live-reload script missing from preview page")
	}
}

func TestBuildPreviewProjectLayout(t *testing.T) {
	src := newTestSource(t)
	outputDir := filepath.Join(t.TempDir(), "public")
	templateDir := filepath.Join(t.TempDir(), "templates")

	layoutDir := filepath.Join(templateDir, "simple")
	if err := os.MkdirAll(layoutDir, 0o755); err != nil {
		t.Fatal(err)
	}
	layout := "<html><head><title>custom {{.Title}}</title></head><body>{{.Content}}</body></html>"
	if err := os.WriteFile(filepath.Join(layoutDir, "layout.html"), []byte(layout), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := BuildPreview(src, outputDir, templateDir, config.Default(), PreviewOptions{}); err != nil {
		t.Fatalf("BuildPreview returned error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	if err != nil {
		t.Fatalf("index.html not written: %v", err)
	}
	if !strings.Contains(string(data), "<title>custom The Larger Catechism</title>") {
		t.Errorf("project layout not used:\n%s", string(data))
	}
}
