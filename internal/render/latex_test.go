package render

import (
	"strings"
	"testing"

	"catpress/internal/catechism"
)

func testOptions() Options {
	return Options{
		Title:      "The Larger Catechism",
		LookupBase: "https://www.biblegateway.com",
		Version:    "ESV",
	}
}

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AT&T", `AT\&T`},
		{"100%", `100\%`},
		{"$5 #1", `\$5 \#1`},
		{"a_b {c}", `a\_b \{c\}`},
		{"~", `\textasciitilde{}`},
		{"^", `\textasciicircum{}`},
		{`a\b`, `a\textbackslash{}b`},
		// A single pass must not re-escape the backslashes it introduces.
		{`\&`, `\textbackslash{}\&`},
		{"plain text", "plain text"},
	}
	for _, tt := range tests {
		if got := EscapeLaTeX(tt.in); got != tt.want {
			t.Errorf("EscapeLaTeX(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLaTeXQuestionPlain(t *testing.T) {
	q := catechism.Question{
		ID:       "7",
		Question: "What is God?",
		Sections: []catechism.Section{
			{Text: "God is love.", Verses: "1 John 4:8"},
			{Text: "He is just.", Verses: ""},
		},
	}
	got := LaTeXQuestion(q, testOptions())

	wantContains := []string{
		`\section{Q. 7: What is God?}`,
		`A: God is love.$^{1}$ He is just.`,
		`$^{1}$ \href{https://www.biblegateway.com/passage/?search=1+John+4%3A8&version=ESV}{1 John 4:8}\\`,
		`\begin{mdframed}`,
		`\begin{multicols}{2}`,
	}
	for _, want := range wantContains {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n\ngot:\n%s", want, got)
		}
	}
	if strings.Contains(got, "$^{2}$") {
		t.Errorf("section without verses produced a footnote marker:\n%s", got)
	}
}

func TestLaTeXQuestionList(t *testing.T) {
	q := catechism.Question{
		ID:       "12",
		Question: "What are the reasons?",
		Sections: []catechism.Section{
			{Text: "1. First reason."},
			{Text: "2. Second reason."},
			{Text: "3. Third reason."},
		},
	}
	got := LaTeXQuestion(q, testOptions())

	wantContains := []string{
		"\\begin{enumerate}\n\\item First reason.\n\\item Second reason.\n\\item Third reason.\n\\end{enumerate}",
	}
	for _, want := range wantContains {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n\ngot:\n%s", want, got)
		}
	}
	if strings.Contains(got, "mdframed") {
		t.Errorf("question without verses produced a reference block:\n%s", got)
	}
	if strings.Contains(got, "\\item 1.") {
		t.Errorf("list item prefix not stripped:\n%s", got)
	}
}

func TestLaTeXQuestionHierarchical(t *testing.T) {
	q := catechism.Question{
		ID:       "151",
		Question: "What are those aggravations?",
		Sections: []catechism.Section{
			{Text: "Sins become more harmful: from several causes.", Verses: "John 19:11"},
			{Text: "1. From the persons offending.", Verses: "Jer 2:8"},
			{Text: "2. From the parties offended.", Verses: "Mal 1:8"},
			{Text: "3. From the nature of the offense.", Verses: "Prov 6:30-33"},
		},
	}
	got := LaTeXQuestion(q, testOptions())

	if !strings.Contains(got, "A: Sins become more harmful:") {
		t.Errorf("intro not emitted first:\n%s", got)
	}
	if !strings.Contains(got, "\n\n2. From the parties offended.$^{3}$") {
		t.Errorf("numbered sub-arguments not separated into paragraphs:\n%s", got)
	}
	// One footnote per verse-bearing section, numbered in emission order.
	for _, want := range []string{"$^{1}$", "$^{2}$", "$^{3}$", "$^{4}$"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing marker %s:\n%s", want, got)
		}
	}
}

func TestLaTeXDocument(t *testing.T) {
	questions := []catechism.Question{
		{ID: "1", Question: "First?", Sections: []catechism.Section{{Text: "Answer one."}}},
		{ID: "2", Question: "Second?", Sections: []catechism.Section{{Text: "Answer two."}}},
	}
	got := LaTeXDocument(questions, testOptions())

	wantContains := []string{
		"\\documentclass[12pt,article]{article}",
		"\\title{The Larger Catechism}",
		"\\tableofcontents",
		"\\section{Q. 1: First?}",
		"\\section{Q. 2: Second?}",
		"\\hrulefill",
		"\\end{document}\n",
	}
	for _, want := range wantContains {
		if !strings.Contains(got, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if strings.Count(got, "\\hrulefill") != 2 {
		t.Errorf("want one separator per question, got %d", strings.Count(got, "\\hrulefill"))
	}
	if !strings.HasSuffix(got, "\\end{document}\n") {
		t.Errorf("document does not end with closing")
	}
}
