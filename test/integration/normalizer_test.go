package integration

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"wordbase/internal/config"
	"wordbase/internal/database"
	"wordbase/internal/logger"
	"wordbase/internal/normalizer"
	"wordbase/internal/report"
)

const fixturePath = "../fixtures/words_database.json"

func runFixture(t *testing.T) (string, *normalizer.Result) {
	t.Helper()

	outPath := filepath.Join(t.TempDir(), "out.json")

	p := normalizer.NewProcessor(config.Default(), logger.NewWithWriter(io.Discard, "error"))

	res, err := p.Run(fixturePath, outPath)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	return string(data), res
}

func TestNormalizer_Fixture(t *testing.T) {
	output, res := runFixture(t)

	if res.Categories != 3 || res.Words != 6 {
		t.Errorf("Result = %d categories / %d words, want 3 / 6", res.Categories, res.Words)
	}

	if len(res.MissingTags) != 0 {
		t.Errorf("Expected no missing tags, got %v", res.MissingTags)
	}

	db, err := database.Parse(strings.NewReader(output), database.DuplicateLastWins)
	if err != nil {
		t.Fatalf("Output is not a valid database: %v", err)
	}

	// Categories keep encounter order.
	var categories []string
	for _, cat := range db.Categories {
		categories = append(categories, cat.Name)
	}

	if diff := cmp.Diff([]string{"animals", "colors", "misc"}, categories); diff != "" {
		t.Errorf("Category order mismatch (-want +got):\n%s", diff)
	}

	// Words within each category are strictly ascending.
	for _, cat := range db.Categories {
		for i := 1; i < len(cat.Entries); i++ {
			if cat.Entries[i-1].Word >= cat.Entries[i].Word {
				t.Errorf("Category %q not ascending: %q before %q",
					cat.Name, cat.Entries[i-1].Word, cat.Entries[i].Word)
			}
		}
	}
}

func TestNormalizer_TagsStable(t *testing.T) {
	output, res := runFixture(t)

	db, err := database.Parse(strings.NewReader(output), database.DuplicateLastWins)
	if err != nil {
		t.Fatalf("Output is not a valid database: %v", err)
	}

	want := []string{"cool", "insect", "mammal", "small", "warm", "wild"}
	if diff := cmp.Diff(want, report.Build(db).AllTags); diff != "" {
		t.Errorf("Output tag set mismatch (-want +got):\n%s", diff)
	}

	if res.Tags != len(want) {
		t.Errorf("Collected tags = %d, want %d", res.Tags, len(want))
	}
}

func TestNormalizer_SetPreservation(t *testing.T) {
	output, _ := runFixture(t)

	in, err := database.Load(fixturePath)
	if err != nil {
		t.Fatalf("Failed to load fixture: %v", err)
	}

	out, err := database.Parse(strings.NewReader(output), database.DuplicateLastWins)
	if err != nil {
		t.Fatalf("Output is not a valid database: %v", err)
	}

	pairs := func(db *database.Database) map[string]bool {
		set := make(map[string]bool)
		for _, cat := range db.Categories {
			for _, e := range cat.Entries {
				set[cat.Name+"/"+e.Word] = true
			}
		}

		return set
	}

	if diff := cmp.Diff(pairs(in), pairs(out)); diff != "" {
		t.Errorf("Entry set changed (-input +output):\n%s", diff)
	}
}

func TestNormalizer_Idempotent(t *testing.T) {
	first, _ := runFixture(t)

	dir := t.TempDir()
	midPath := filepath.Join(dir, "mid.json")
	secondPath := filepath.Join(dir, "second.json")

	if err := os.WriteFile(midPath, []byte(first), 0644); err != nil {
		t.Fatalf("Failed to write intermediate file: %v", err)
	}

	p := normalizer.NewProcessor(config.Default(), logger.NewWithWriter(io.Discard, "error"))
	if _, err := p.Run(midPath, secondPath); err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	second, err := os.ReadFile(secondPath)
	if err != nil {
		t.Fatalf("Failed to read second output: %v", err)
	}

	if first != string(second) {
		t.Error("Feeding the output back in did not reproduce it byte for byte")
	}
}
