// internal/answer/answer.go
package answer

import (
	"regexp"
	"strings"

	"catpress/internal/catechism"
)

// Shape is the rendering strategy chosen for one question's answer.
type Shape int

const (
	// Plain renders every section as continuous prose.
	Plain Shape = iota
	// List renders numbered or bracketed sections inside an ordered-list
	// environment, after any intro prose.
	List
	// Hierarchical renders 3+ numbered "From ..." sub-arguments as
	// separate paragraphs, after an optional extracted intro.
	Hierarchical
)

var (
	hierarchicalRe = regexp.MustCompile(`^\d+\.\s+From\s+`)
	enumeratedRe   = regexp.MustCompile(`^\d+\.\s`)
	bracketedRe    = regexp.MustCompile(`^\[\d+\]\s`)
	numberedRe     = regexp.MustCompile(`^\d+\.\s+`)
)

// introMarker ends the transitional sentence of the one known hierarchical
// answer that opens with prose. Everything up to and including the marker
// is emitted as intro text ahead of the numbered sub-arguments.
const introMarker = "Sins become more harmful:"

// Classification is the result of shape detection: intro prose first, then
// the remaining sections in their rendering order. For Plain answers all
// sections land in Intro; for List answers Items holds the list items; for
// Hierarchical answers Items holds the full numbered flow.
type Classification struct {
	Shape Shape
	Intro []catechism.Section
	Items []catechism.Section
}

// IsEnumeratedItem reports whether text starts with "<number>. ".
func IsEnumeratedItem(text string) bool {
	return enumeratedRe.MatchString(text)
}

// IsBracketedItem reports whether text starts with "[<number>] ".
func IsBracketedItem(text string) bool {
	return bracketedRe.MatchString(text)
}

// StartsNumbered reports whether text opens with a number-and-period
// prefix, which begins a new paragraph in hierarchical answers.
func StartsNumbered(text string) bool {
	return numberedRe.MatchString(text)
}

// StripItemNumber removes the leading "<number>. " or "[<number>] " prefix
// so the list environment can renumber the item itself.
func StripItemNumber(text string) string {
	text = enumeratedRe.ReplaceAllString(text, "")
	return bracketedRe.ReplaceAllString(text, "")
}

// Classify decides the rendering strategy for one answer. It is total:
// every section sequence gets exactly one classification. Sections with
// empty text are dropped entirely; they count for nothing.
func Classify(sections []catechism.Section) Classification {
	nonEmpty := make([]catechism.Section, 0, len(sections))
	for _, s := range sections {
		if s.Text != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}

	hierarchical := 0
	for _, s := range nonEmpty {
		if hierarchicalRe.MatchString(s.Text) {
			hierarchical++
		}
	}
	if hierarchical >= 3 {
		intro, rest := splitIntro(nonEmpty)
		return Classification{Shape: Hierarchical, Intro: intro, Items: rest}
	}

	listItems := 0
	for _, s := range nonEmpty {
		if IsEnumeratedItem(s.Text) || IsBracketedItem(s.Text) {
			listItems++
		}
	}
	if listItems >= 3 {
		var intro, items []catechism.Section
		for _, s := range nonEmpty {
			if IsEnumeratedItem(s.Text) || IsBracketedItem(s.Text) {
				items = append(items, s)
			} else {
				intro = append(intro, s)
			}
		}
		return Classification{Shape: List, Intro: intro, Items: items}
	}

	return Classification{Shape: Plain, Intro: nonEmpty}
}

// splitIntro extracts the intro block from a hierarchical answer. The
// section containing the marker phrase is replaced by a new section holding
// only the remaining text; the original is never mutated. The verses stay
// with whichever half still has text.
func splitIntro(sections []catechism.Section) (intro, rest []catechism.Section) {
	for i, s := range sections {
		idx := strings.Index(s.Text, introMarker)
		if idx < 0 {
			continue
		}
		cut := idx + len(introMarker)
		lead := catechism.Section{Text: strings.TrimSpace(s.Text[:cut])}
		remainder := strings.TrimSpace(s.Text[cut:])

		rest = make([]catechism.Section, 0, len(sections))
		rest = append(rest, sections[:i]...)
		if remainder != "" {
			rest = append(rest, catechism.Section{Text: remainder, Verses: s.Verses})
		} else {
			lead.Verses = s.Verses
		}
		rest = append(rest, sections[i+1:]...)
		return []catechism.Section{lead}, rest
	}
	return nil, sections
}
