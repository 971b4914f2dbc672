// internal/render/markdown.go
package render

import (
	"fmt"
	"strings"

	"catpress/internal/answer"
	"catpress/internal/catechism"
)

// MarkdownDocument assembles the full Markdown document: a title heading
// and one block per question, each ending in a horizontal rule.
func MarkdownDocument(questions []catechism.Question, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", opts.Title)
	for _, q := range questions {
		b.WriteString(MarkdownQuestion(q, opts))
		b.WriteString("\n---\n\n")
	}
	return b.String()
}

// MarkdownQuestion renders one question: heading, answer body, numbered
// reference links, and (for reference-heavy questions) a supplementary
// table of every cited passage.
func MarkdownQuestion(q catechism.Question, opts Options) string {
	ans := answer.Annotate(q.Sections)

	var b strings.Builder
	fmt.Fprintf(&b, "# Q. %s: %s\n\n", q.ID, q.Question)
	b.WriteString(markdownAnswer(ans))
	b.WriteString("\n\n")
	for _, n := range ans.Notes {
		fmt.Fprintf(&b, "%d. [%s](%s)\n", n.Number, n.Verses, noteURL(n, opts))
	}
	if table := markdownReferenceTable(ans.Notes); table != "" {
		b.WriteString("\n**All Scripture References:**\n\n")
		b.WriteString(table)
	}
	return b.String()
}

func markdownAnswer(ans answer.Answer) string {
	switch ans.Shape {
	case answer.Hierarchical:
		return markdownHierarchical(ans)
	case answer.List:
		return markdownList(ans)
	default:
		return markdownProse(ans.Intro)
	}
}

func markdownProse(sections []answer.Annotated) string {
	var b strings.Builder
	b.WriteString("A: ")
	for _, s := range sections {
		b.WriteString(s.Text)
		b.WriteString(marker(s.Note))
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

func markdownHierarchical(ans answer.Answer) string {
	flow := make([]answer.Annotated, 0, len(ans.Intro)+len(ans.Items))
	flow = append(flow, ans.Intro...)
	flow = append(flow, ans.Items...)

	var b strings.Builder
	b.WriteString("A: ")
	for i, s := range flow {
		if i > 0 && answer.StartsNumbered(s.Text) {
			b.WriteString("\n\n")
		}
		b.WriteString(s.Text)
		b.WriteString(marker(s.Note))
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

func markdownList(ans answer.Answer) string {
	intro := markdownProse(ans.Intro)
	if len(ans.Items) == 0 {
		return intro
	}

	var b strings.Builder
	if intro != "" {
		b.WriteString(intro)
		b.WriteString("\n\n")
	}
	for i, s := range ans.Items {
		fmt.Fprintf(&b, "%d. %s%s\n", i+1, answer.StripItemNumber(s.Text), marker(s.Note))
	}
	return strings.TrimRight(b.String(), "\n")
}

// markdownReferenceTable lays out every individual passage cited by the
// question. Verse strings are split on ";" into single references; fewer
// than six produce no table. Columns scale with the reference count and
// are filled top-to-bottom before moving right, with blank cells padding
// a short last column.
func markdownReferenceTable(notes []catechism.Footnote) string {
	var refs []string
	for _, n := range notes {
		for _, ref := range strings.Split(n.Verses, ";") {
			if ref = strings.TrimSpace(ref); ref != "" {
				refs = append(refs, ref)
			}
		}
	}
	if len(refs) < 6 {
		return ""
	}

	cols := 2
	switch {
	case len(refs) > 25:
		cols = 4
	case len(refs) > 15:
		cols = 3
	}
	rows := (len(refs) + cols - 1) / cols

	header := make([]string, cols)
	rule := make([]string, cols)
	for i := range header {
		header[i] = "References"
		rule[i] = "---"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "| %s |\n", strings.Join(header, " | "))
	fmt.Fprintf(&b, "| %s |\n", strings.Join(rule, " | "))
	for i := 0; i < rows; i++ {
		cells := make([]string, cols)
		for j := 0; j < cols; j++ {
			if idx := i + j*rows; idx < len(refs) {
				cells[j] = refs[idx]
			}
		}
		fmt.Fprintf(&b, "| %s |\n", strings.Join(cells, " | "))
	}
	return b.String()
}
