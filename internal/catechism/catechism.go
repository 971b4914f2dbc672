// internal/catechism/catechism.go
package catechism

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Section is one fragment of an answer: a piece of text and, optionally,
// the Bible-verse references that support it. An empty Verses field means
// the section carries no reference and must not produce a footnote.
type Section struct {
	Text   string
	Verses string
}

// Question is one catechism record. ID is a numeric-or-dotted string
// ("5", "12.3") used both as the display label and as the sort key.
type Question struct {
	ID       string
	Question string
	Sections []Section
}

// Footnote is a numbered verse reference, local to a single question's
// answer. Numbering restarts at 1 for every question.
type Footnote struct {
	Number int
	Verses string
	URL    string
}

// verseEncoder reproduces the URL encoding of the published documents.
// It must stay bit-exact: space→+, colon→%3A, semicolon→%3B, comma→%2C.
var verseEncoder = strings.NewReplacer(" ", "+", ":", "%3A", ";", "%3B", ",", "%2C")

// BibleURL builds the lookup link for a verse reference, e.g.
// https://www.biblegateway.com/passage/?search=1+John+4%3A8&version=ESV
func BibleURL(base, verses, version string) string {
	return fmt.Sprintf("%s/passage/?search=%s&version=%s", base, verseEncoder.Replace(verses), version)
}

// numericID reports whether an id can be compared numerically: all digits
// with at most one dot.
func numericID(id string) (float64, bool) {
	stripped := strings.Replace(id, ".", "", 1)
	if stripped == "" {
		return 0, false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(id, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// LessID orders question ids: numeric ids by value, string ids
// lexicographically, numeric before string.
func LessID(a, b string) bool {
	fa, aok := numericID(a)
	fb, bok := numericID(b)
	switch {
	case aok && bok:
		return fa < fb
	case aok:
		return true
	case bok:
		return false
	default:
		return a < b
	}
}

// Sort orders questions ascending by id so "10" follows "2", not "1".
func Sort(questions []Question) {
	sort.Slice(questions, func(i, j int) bool {
		return LessID(questions[i].ID, questions[j].ID)
	})
}
