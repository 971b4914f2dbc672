package catechism

import (
	"reflect"
	"testing"
)

func TestBibleURL(t *testing.T) {
	tests := []struct {
		name   string
		verses string
		want   string
	}{
		{
			name:   "single reference",
			verses: "1 John 4:8",
			want:   "https://www.biblegateway.com/passage/?search=1+John+4%3A8&version=ESV",
		},
		{
			name:   "multiple references",
			verses: "Rom. 11:36; 1 Cor. 10:31",
			want:   "https://www.biblegateway.com/passage/?search=Rom.+11%3A36%3B+1+Cor.+10%3A31&version=ESV",
		},
		{
			name:   "comma in reference",
			verses: "Ps 1:1,3",
			want:   "https://www.biblegateway.com/passage/?search=Ps+1%3A1%2C3&version=ESV",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BibleURL("https://www.biblegateway.com", tt.verses, "ESV")
			if got != tt.want {
				t.Errorf("BibleURL(%q) = %q, want %q", tt.verses, got, tt.want)
			}
		})
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{
			name: "numeric not lexicographic",
			ids:  []string{"2", "10", "1.5", "1"},
			want: []string{"1", "1.5", "2", "10"},
		},
		{
			name: "numeric ids before string ids",
			ids:  []string{"appendix", "2", "preface", "10"},
			want: []string{"2", "10", "appendix", "preface"},
		},
		{
			name: "two dots is not numeric",
			ids:  []string{"1.2.3", "2"},
			want: []string{"2", "1.2.3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := make([]Question, len(tt.ids))
			for i, id := range tt.ids {
				questions[i] = Question{ID: id, Question: "q"}
			}
			Sort(questions)
			got := make([]string, len(questions))
			for i, q := range questions {
				got[i] = q.ID
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sort order = %v, want %v", got, tt.want)
			}
		})
	}
}
