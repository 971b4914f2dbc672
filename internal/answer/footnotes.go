// internal/answer/footnotes.go
package answer

import "catpress/internal/catechism"

// Annotated pairs a section with its allocated footnote number.
// Note is zero when the section has no verses.
type Annotated struct {
	catechism.Section
	Note int
}

// Answer is a classified answer with footnotes allocated, ready to render.
type Answer struct {
	Shape Shape
	Intro []Annotated
	Items []Annotated
	Notes []catechism.Footnote
}

// Annotate classifies the sections and allocates footnote numbers in the
// order the sections appear in the rendered output: intro prose first, then
// items, one counter threaded across both. The resulting numbers are always
// the contiguous range 1..k for k sections with verses.
func Annotate(sections []catechism.Section) Answer {
	cls := Classify(sections)
	ans := Answer{Shape: cls.Shape}
	next := 1
	ans.Intro, next = allocate(cls.Intro, next, &ans.Notes)
	ans.Items, _ = allocate(cls.Items, next, &ans.Notes)
	return ans
}

func allocate(sections []catechism.Section, next int, notes *[]catechism.Footnote) ([]Annotated, int) {
	out := make([]Annotated, 0, len(sections))
	for _, s := range sections {
		ann := Annotated{Section: s}
		if s.Verses != "" {
			ann.Note = next
			*notes = append(*notes, catechism.Footnote{Number: next, Verses: s.Verses})
			next++
		}
		out = append(out, ann)
	}
	return out, next
}
