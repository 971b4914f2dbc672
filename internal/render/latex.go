// internal/render/latex.go
package render

import (
	"fmt"
	"strings"

	"catpress/internal/answer"
	"catpress/internal/catechism"
)

// LaTeXDocument assembles the full document: preamble with a table of
// contents, one section per question separated by horizontal rules, and
// the closing.
func LaTeXDocument(questions []catechism.Question, opts Options) string {
	var b strings.Builder
	b.WriteString(latexPreamble(opts.Title))
	for _, q := range questions {
		b.WriteString(LaTeXQuestion(q, opts))
		b.WriteString("\n\n\\hrulefill\n\n")
	}
	b.WriteString("\\end{document}\n")
	return b.String()
}

// LaTeXQuestion renders one question: heading, answer body with footnote
// markers, and the framed reference box.
func LaTeXQuestion(q catechism.Question, opts Options) string {
	ans := answer.Annotate(q.Sections)
	heading := fmt.Sprintf("\\section{Q. %s: %s}", q.ID, EscapeLaTeX(q.Question))
	return heading + "\n\n" + latexAnswer(ans) + "\n\n" + latexReferences(ans.Notes, opts)
}

func latexAnswer(ans answer.Answer) string {
	switch ans.Shape {
	case answer.Hierarchical:
		return latexHierarchical(ans)
	case answer.List:
		return latexList(ans)
	default:
		return latexProse(ans.Intro)
	}
}

// latexProse joins sections into running text. Each annotated section gets
// its superscript marker directly after the text, then a single space.
func latexProse(sections []answer.Annotated) string {
	var b strings.Builder
	b.WriteString("A: ")
	for _, s := range sections {
		b.WriteString(EscapeLaTeX(s.Text))
		b.WriteString(marker(s.Note))
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

// latexHierarchical renders the intro (if any) followed by the numbered
// sub-arguments, each numbered section opening a new paragraph.
func latexHierarchical(ans answer.Answer) string {
	flow := make([]answer.Annotated, 0, len(ans.Intro)+len(ans.Items))
	flow = append(flow, ans.Intro...)
	flow = append(flow, ans.Items...)

	var b strings.Builder
	b.WriteString("A: ")
	for i, s := range flow {
		if i > 0 && answer.StartsNumbered(s.Text) {
			b.WriteString("\n\n")
		}
		b.WriteString(EscapeLaTeX(s.Text))
		b.WriteString(marker(s.Note))
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

// latexList renders intro prose followed by an enumerate environment. The
// environment renumbers the items, so their literal prefixes are stripped.
func latexList(ans answer.Answer) string {
	intro := latexProse(ans.Intro)
	if len(ans.Items) == 0 {
		return intro
	}

	var b strings.Builder
	if intro != "" {
		b.WriteString(intro)
		b.WriteString("\n\n")
	}
	b.WriteString("\\begin{enumerate}\n")
	for _, s := range ans.Items {
		b.WriteString("\\item ")
		b.WriteString(EscapeLaTeX(answer.StripItemNumber(s.Text)))
		b.WriteString(marker(s.Note))
		b.WriteString("\n")
	}
	b.WriteString("\\end{enumerate}")
	return b.String()
}

// latexReferences renders the footnotes as a framed two-column box of
// hyperlinked verse references.
func latexReferences(notes []catechism.Footnote, opts Options) string {
	if len(notes) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\\begin{mdframed}[linecolor=blue!20,backgroundcolor=blue!5,linewidth=1pt,skipabove=20pt,skipbelow=20pt,innertopmargin=0pt,innerbottommargin=15pt]\n")
	b.WriteString("\\setlength{\\columnsep}{2em}\n")
	b.WriteString("\\setlength{\\parindent}{0pt}\n")
	b.WriteString("\\begin{multicols}{2}\n")
	b.WriteString("\\footnotesize\\color[RGB]{0, 0, 150}\n")
	for _, n := range notes {
		fmt.Fprintf(&b, "$^{%d}$ \\href{%s}{%s}\\\\\n", n.Number, noteURL(n, opts), EscapeLaTeX(n.Verses))
	}
	b.WriteString("\\end{multicols}\n")
	b.WriteString("\\end{mdframed}")
	return b.String()
}

func latexPreamble(title string) string {
	escaped := EscapeLaTeX(title)
	var b strings.Builder
	b.WriteString("\\documentclass[12pt,article]{article}\n")
	b.WriteString("\\usepackage{geometry}\n")
	b.WriteString("\\geometry{margin=1in}\n")
	b.WriteString("\\usepackage{hyperref}\n")
	b.WriteString("\\hypersetup{colorlinks=true,linkcolor=blue,urlcolor=blue}\n")
	b.WriteString("\\usepackage{titlesec}\n")
	b.WriteString("\\usepackage{xcolor}\n")
	b.WriteString("\\usepackage{fancyhdr}\n")
	b.WriteString("\\usepackage{fontspec}\n")
	b.WriteString("\\setmainfont[Path=./fonts/,UprightFont=EBGaramond12-Regular.otf,ItalicFont=EBGaramond12-Italic.otf]{EB Garamond}\n")
	b.WriteString("\\usepackage{setspace}\n")
	b.WriteString("\\onehalfspacing\n")
	b.WriteString("\\usepackage{mdframed}\n")
	b.WriteString("\\usepackage{multicol}\n")
	b.WriteString("\\usepackage{enumitem}\n\n")

	b.WriteString("% Remove section numbering\n")
	b.WriteString("\\setcounter{secnumdepth}{0}\n\n")

	b.WriteString("% Format section headings (questions)\n")
	b.WriteString("\\titleformat{\\section}{\\LARGE\\bfseries\\color[RGB]{231, 76, 60}}{\\thesection}{1em}{}\n")
	b.WriteString("\\titleformat{\\subsection}{\\Large\\bfseries\\color{black}}{\\thesubsection}{1em}{}\n\n")

	b.WriteString("% Setup page headers and footers\n")
	b.WriteString("\\pagestyle{fancy}\n")
	fmt.Fprintf(&b, "\\fancyhead[R]{%s}\n", escaped)
	b.WriteString("\\fancyhead[L]{\\thepage}\n")
	b.WriteString("\\fancyfoot{}\n\n")

	b.WriteString("\\begin{document}\n\n")
	fmt.Fprintf(&b, "\\title{%s}\n", escaped)
	b.WriteString("\\maketitle\n")
	b.WriteString("\\tableofcontents\n")
	b.WriteString("\\newpage\n\n")
	return b.String()
}
