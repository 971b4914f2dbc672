// cmd/catpress/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"catpress/internal/builder"
	"catpress/internal/catechism"
	"catpress/internal/config"
	"catpress/internal/scaffold"
	"catpress/internal/server"
)

type appConfig struct {
	port   int
	unsafe bool
}

const (
	sourceDir   = "src"
	templateDir = "templates"
	previewDir  = "public"
	configFile  = "catechism.yaml"
)

func main() {
	appCfg := appConfig{}
	// Global flags
	flag.IntVar(&appCfg.port, "port", 1313, "Port for the local preview server.")
	flag.BoolVar(&appCfg.unsafe, "unsafe", false, "Disable HTML sanitization in the preview. Allows all raw HTML.")
	flag.Usage = printHelp
	flag.Parse()

	if err := run(appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Operation failed: %v\n", err)
		os.Exit(1)
	}
}

func run(appCfg appConfig) error {
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return nil
	}

	switch args[0] {
	case "gen":
		genCmd := flag.NewFlagSet("gen", flag.ExitOnError)
		src := genCmd.String("s", sourceDir, "Source directory containing TOML question files.")
		out := genCmd.String("o", "", "Output file path. Defaults to larger-catechism.md or larger-catechism.tex.")
		format := genCmd.String("f", string(builder.Markdown), "Output format: markdown or latex.")
		tmplPath := genCmd.String("t", "", "Optional template file (accepted for compatibility, currently unused).")

		genCmd.Usage = func() {
			fmt.Println("Usage: catpress gen [options]")
			fmt.Println("\nConvert the TOML question files into a single document.")
			fmt.Println("\nOptions:")
			genCmd.PrintDefaults()
		}
		genCmd.Parse(args[1:])

		return handleGenCommand(builder.Format(*format), *src, *out, *tmplPath)

	case "serve":
		popts := builder.PreviewOptions{Unsafe: appCfg.unsafe, LiveReload: true}
		// Config is re-read on every rebuild so edits to catechism.yaml
		// show up without restarting the server.
		buildFunc := func() error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			count, err := builder.BuildPreview(sourceDir, previewDir, templateDir, cfg, popts)
			if err != nil {
				return err
			}
			fmt.Printf("📄 Preview: %d questions rendered.\n", count)
			return nil
		}
		watchPaths := []string{sourceDir, templateDir, configFile}
		return server.Run(appCfg.port, previewDir, watchPaths, buildFunc)

	case "new":
		if len(args) < 3 {
			flag.Usage()
			return nil
		}
		switch args[1] {
		case "project":
			return scaffold.CreateNewProject(args[2])
		case "question":
			return scaffold.CreateNewQuestion(args[2], configFile)
		default:
			flag.Usage()
		}

	default:
		flag.Usage()
	}

	return nil
}

func handleGenCommand(format builder.Format, src, out, tmplPath string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if out == "" {
		out = builder.DefaultOutput(format)
	}
	_ = tmplPath // accepted for CLI compatibility; templates do not affect gen output

	fmt.Println("--- Generating document from questions ---")
	count, err := builder.Build(format, src, out, cfg)
	if errors.Is(err, catechism.ErrNoSources) {
		fmt.Printf("No TOML files found in the %s directory.\n", src)
		return nil
	}
	if err != nil {
		return fmt.Errorf("document generation failed: %w", err)
	}
	fmt.Printf("✅ Conversion complete. %s created with %d questions.\n", out, count)
	return nil
}

func printHelp() {
	fmt.Println("catpress - a catechism document generator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  catpress [global-flags] <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  gen [options]       Convert question files to Markdown or LaTeX. Use 'catpress gen -h' for options.")
	fmt.Println("  serve               Run a local preview server with auto-rebuild")
	fmt.Println("  new project <name>  Create a new project scaffold")
	fmt.Println("  new question <id>   Create a new question file from the archetype")
	fmt.Println()
	fmt.Println("Global Flags:")
	flag.PrintDefaults()
}
