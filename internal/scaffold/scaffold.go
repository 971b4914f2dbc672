// internal/scaffold/scaffold.go
package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"catpress/internal/config"
)

// CreateNewProject lays out a fresh catechism project: source directory,
// preview template, question archetype, config file, and a sample question.
func CreateNewProject(name string) error {
	fmt.Println("Scaffolding new project in:", name)
	mkdir := func(path string) error { return os.MkdirAll(filepath.Join(name, path), 0755) }
	writeFile := func(path, content string) error {
		return os.WriteFile(filepath.Join(name, path), []byte(content), 0644)
	}

	dirs := []string{"src", "templates/simple", "archetypes", "fonts"}
	for _, dir := range dirs {
		if err := mkdir(dir); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	files := map[string]string{
		"catechism.yaml":               configYamlContent,
		"src/question-1.toml":          sampleQuestionContent,
		"archetypes/question.toml":     archetypeQuestionContent,
		"templates/simple/layout.html": templateLayoutContent,
	}
	for path, content := range files {
		if err := writeFile(path, content); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}
	}

	fmt.Println("Project scaffolded. You can now:")
	fmt.Println("  cd", name)
	fmt.Println("  catpress gen")
	fmt.Println("  catpress serve")
	return nil
}

// CreateNewQuestion instantiates the question archetype for the given id
// and writes it into the source directory.
func CreateNewQuestion(id, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	archetypePath := filepath.Join("archetypes", "question.toml")
	tmplBytes, err := os.ReadFile(archetypePath)
	if err != nil {
		return fmt.Errorf("could not read archetype file %s: %w", archetypePath, err)
	}
	tmpl, err := template.New("archetype").Parse(string(tmplBytes))
	if err != nil {
		return fmt.Errorf("failed to parse archetype file %s: %w", archetypePath, err)
	}

	data := struct {
		ID      string
		Author  string
		Version string
	}{
		ID:      id,
		Author:  cfg.Author,
		Version: cfg.Version,
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute archetype template: %w", err)
	}

	slug := strings.ReplaceAll(id, ".", "-")
	path := filepath.Join("src", "question-"+slug+".toml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write question file %s: %w", path, err)
	}

	fmt.Println("Created:", path)
	return nil
}

const configYamlContent = `title: "The Larger Catechism"
author: ""
version: "ESV"
lookup_base: "https://www.biblegateway.com"
template: "simple"
`

const sampleQuestionContent = `id = "1"
question = "What is the chief and highest end of man?"

[[sections]]
text = "Man's chief and highest end is to glorify God,"
verses = "Rom. 11:36; 1 Cor. 10:31"

[[sections]]
text = "and fully to enjoy him forever."
verses = "Ps. 73:24-28; John 17:21-23"
`

const archetypeQuestionContent = `id = "{{.ID}}"
question = ""

[[sections]]
text = ""
verses = ""
`

const templateLayoutContent = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
  {{if .Author}}<meta name="author" content="{{.Author}}">{{end}}
  <style>
    body { max-width: 46em; margin: 2em auto; padding: 0 1em; font-family: Georgia, serif; line-height: 1.5; }
    sup { color: #00008c; }
    table { border-collapse: collapse; }
    th, td { border: 1px solid #ccd; padding: 0.2em 0.6em; font-size: 0.85em; }
    a { color: #1a0dab; }
  </style>
</head>
<body>
{{.Content}}
{{if .LiveReload}}<script>
  (function() {
    let socket = new WebSocket("ws://" + window.location.host + "/ws");
    socket.onmessage = function(event) {
      if (event.data === "reload") {
        window.location.reload();
      }
    };
  })();
</script>{{end}}
</body>
</html>
`
