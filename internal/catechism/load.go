// internal/catechism/load.go
package catechism

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrNoSources is returned when the source directory contains no question
// files at all. Callers treat it as a report-and-exit condition, not a crash.
var ErrNoSources = errors.New("no question files found")

type rawSection struct {
	Text   string `toml:"text"`
	Verses string `toml:"verses"`
}

type rawQuestion struct {
	ID       string       `toml:"id"`
	Question string       `toml:"question"`
	Sections []rawSection `toml:"sections"`
}

// sourceFile accepts both file shapes: a single question at the top level,
// or several under [[questions]].
type sourceFile struct {
	ID        string        `toml:"id"`
	Question  string        `toml:"question"`
	Sections  []rawSection  `toml:"sections"`
	Questions []rawQuestion `toml:"questions"`
}

// LoadFile parses one TOML file into question records. Records missing an
// id or question text are discarded.
func LoadFile(path string) ([]Question, error) {
	var src sourceFile
	if _, err := toml.DecodeFile(path, &src); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}

	var out []Question
	if q, ok := buildQuestion(rawQuestion{ID: src.ID, Question: src.Question, Sections: src.Sections}); ok {
		out = append(out, q)
	}
	for _, raw := range src.Questions {
		if q, ok := buildQuestion(raw); ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func buildQuestion(raw rawQuestion) (Question, bool) {
	if raw.ID == "" || raw.Question == "" {
		return Question{}, false
	}
	q := Question{
		ID:       strings.TrimSpace(raw.ID),
		Question: strings.TrimSpace(raw.Question),
	}
	for _, s := range raw.Sections {
		q.Sections = append(q.Sections, Section{
			Text:   strings.TrimSpace(s.Text),
			Verses: strings.TrimSpace(s.Verses),
		})
	}
	return q, true
}

// LoadDir loads every *.toml file in dir and returns the questions sorted
// by id. A file that fails to parse is reported and skipped; the rest of
// the directory is still processed. When two records share an id the
// later-loaded one wins, with a warning naming both files.
func LoadDir(dir string) ([]Question, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSources, dir)
	}

	byID := make(map[string]Question)
	origin := make(map[string]string)
	for _, path := range paths {
		questions, err := LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠️  Skipping %s: %v\n", path, err)
			continue
		}
		for _, q := range questions {
			if prev, ok := origin[q.ID]; ok {
				fmt.Fprintf(os.Stderr, "⚠️  Duplicate question id %q: %s overrides %s\n", q.ID, path, prev)
			}
			byID[q.ID] = q
			origin[q.ID] = path
		}
	}

	out := make([]Question, 0, len(byID))
	for _, q := range byID {
		out = append(out, q)
	}
	Sort(out)
	return out, nil
}
