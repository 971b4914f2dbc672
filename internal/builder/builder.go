// internal/builder/builder.go
package builder

import (
	"fmt"
	"os"

	"catpress/internal/catechism"
	"catpress/internal/config"
	"catpress/internal/render"
)

// Format identifies an output document format.
type Format string

const (
	Markdown Format = "markdown"
	LaTeX    Format = "latex"
)

// DefaultOutput is the output path used when the caller does not name one.
func DefaultOutput(f Format) string {
	if f == LaTeX {
		return "larger-catechism.tex"
	}
	return "larger-catechism.md"
}

// Build loads every question file under srcDir, assembles the document for
// the given format, and writes it to outPath. It returns the number of
// questions rendered. Load failures for individual files are reported and
// skipped inside LoadDir; a write failure is fatal to the caller.
func Build(f Format, srcDir, outPath string, cfg config.Config) (int, error) {
	questions, err := catechism.LoadDir(srcDir)
	if err != nil {
		return 0, err
	}

	opts := render.Options{
		Title:      cfg.Title,
		LookupBase: cfg.LookupBase,
		Version:    cfg.Version,
	}

	var doc string
	switch f {
	case LaTeX:
		doc = render.LaTeXDocument(questions, opts)
	case Markdown:
		doc = render.MarkdownDocument(questions, opts)
	default:
		return 0, fmt.Errorf("unknown output format %q", f)
	}

	if err := os.WriteFile(outPath, []byte(doc), 0644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return len(questions), nil
}
