// internal/render/render.go
package render

import (
	"fmt"
	"strings"

	"catpress/internal/catechism"
)

// Options carries the document-level settings shared by both renderers.
type Options struct {
	Title      string // document title for the shell and headers
	LookupBase string // Bible lookup service base URL
	Version    string // Bible translation appended to lookup links
}

// latexEscaper replaces LaTeX-significant characters in a single pass, so
// the backslashes it introduces are never re-escaped.
var latexEscaper = strings.NewReplacer(
	"\\", `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// EscapeLaTeX makes text safe for a LaTeX document body.
func EscapeLaTeX(text string) string {
	return latexEscaper.Replace(text)
}

// marker renders the superscript footnote reference, or nothing for
// sections without verses.
func marker(note int) string {
	if note == 0 {
		return ""
	}
	return fmt.Sprintf("$^{%d}$", note)
}

// noteURL fills in the lookup link for a footnote.
func noteURL(n catechism.Footnote, opts Options) string {
	if n.URL != "" {
		return n.URL
	}
	return catechism.BibleURL(opts.LookupBase, n.Verses, opts.Version)
}
