// Package main provides the word-database normalizer command-line tool.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"wordbase/internal/config"
	"wordbase/internal/database"
	"wordbase/internal/logger"
	"wordbase/internal/normalizer"
	"wordbase/internal/report"
	"wordbase/pkg/utils"
)

// Exit codes, one per failure kind, so callers can detect what went
// wrong without scraping console text.
const (
	exitOK       = 0
	exitUsage    = 1
	exitNotFound = 2
	exitParse    = 3
	exitWrite    = 4
)

const defaultConfigPath = "configs/normalizer.yaml"

func main() {
	inputPath := flag.String("input", "", "Path to input word database (default from config)")
	outputPath := flag.String("output", "", "Path to output word database (default from config)")
	configFile := flag.String("config", "", "Path to YAML configuration file")
	noSummary := flag.Bool("no-summary", false, "Suppress the per-category summary table")

	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(exitUsage)
	}

	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}

	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}

	if *noSummary {
		cfg.Output.ShowSummary = false
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		flag.PrintDefaults()
		os.Exit(exitUsage)
	}

	log := logger.New(cfg.Logging.Level)

	fmt.Printf("📂 Reading: %s\n", cfg.Input.Path)

	p := normalizer.NewProcessor(cfg, log)

	res, err := p.Run(cfg.Input.Path, cfg.Output.Path)
	if err != nil {
		reportError(err, cfg)
		os.Exit(exitCode(err))
	}

	fmt.Printf("📊 Normalized %d %s, %d %s, %d %s\n",
		res.Categories, utils.Plural(res.Categories, "category", "categories"),
		res.Words, utils.Plural(res.Words, "word", "words"),
		res.Tags, utils.Plural(res.Tags, "tag", "tags"),
	)

	if cfg.Output.ShowSummary {
		fmt.Println()
		fmt.Print(report.Build(res.Database).Render())
		fmt.Println()
	}

	fmt.Printf("✅ Saved to: %s\n", cfg.Output.Path)
	os.Exit(exitOK)
}

// loadConfig loads the configuration file, falling back to the default
// location when present and to built-in defaults otherwise.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err != nil {
			return config.Default(), nil
		}

		path = defaultConfigPath
	}

	fmt.Printf("⚙️  Loading configuration from: %s\n", path)

	return config.LoadConfig(path)
}

func reportError(err error, cfg *config.Config) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		fmt.Fprintf(os.Stderr, "❌ Error: the file %q was not found\n", cfg.Input.Path)
	case errors.Is(err, database.ErrParse):
		fmt.Fprintf(os.Stderr, "❌ Error: could not decode JSON from %q. Please check the file format.\n", cfg.Input.Path)
		fmt.Fprintf(os.Stderr, "   (%v)\n", err)
	case errors.Is(err, database.ErrWrite):
		fmt.Fprintf(os.Stderr, "❌ Error: could not write to %q: %v\n", cfg.Output.Path, err)
	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, database.ErrNotFound):
		return exitNotFound
	case errors.Is(err, database.ErrParse):
		return exitParse
	case errors.Is(err, database.ErrWrite):
		return exitWrite
	default:
		return exitUsage
	}
}
