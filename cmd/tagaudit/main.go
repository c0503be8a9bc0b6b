// Package main provides the tagaudit command-line tool, which prints the
// tag inventory of a word database without modifying it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"wordbase/internal/database"
	"wordbase/internal/report"
	"wordbase/pkg/utils"
)

// Exit codes mirror the normalizer's so both tools signal failures the
// same way.
const (
	exitOK       = 0
	exitUsage    = 1
	exitNotFound = 2
	exitParse    = 3
)

func main() {
	inputPath := flag.String("input", "words-database.json", "Path to word database to inspect")

	flag.Parse()

	fmt.Printf("📂 Reading: %s\n", *inputPath)

	db, err := database.Load(*inputPath)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			fmt.Fprintf(os.Stderr, "❌ Error: the file %q was not found\n", *inputPath)
			os.Exit(exitNotFound)
		case errors.Is(err, database.ErrParse):
			fmt.Fprintf(os.Stderr, "❌ Error: could not decode JSON from %q. Please check the file format.\n", *inputPath)
			os.Exit(exitParse)
		default:
			fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
			os.Exit(exitUsage)
		}
	}

	summary := report.Build(db)

	fmt.Println()
	fmt.Print(summary.Render())
	fmt.Println()

	tags := len(summary.AllTags)
	if tags == 0 {
		fmt.Println("🏷️  No tags in use")
		os.Exit(exitOK)
	}

	fmt.Printf("🏷️  %d %s in use across %d %s: %s\n",
		tags, utils.Plural(tags, "tag", "tags"),
		len(db.Categories), utils.Plural(len(db.Categories), "category", "categories"),
		strings.Join(summary.AllTags, ", "),
	)
	os.Exit(exitOK)
}
