package normalizer

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"wordbase/internal/database"
)

func category(words ...string) database.Category {
	cat := database.Category{Name: "test"}
	for _, w := range words {
		cat.Entries = append(cat.Entries, database.Entry{Word: w, Body: json.RawMessage(`{}`)})
	}

	return cat
}

func TestSorter_Sort(t *testing.T) {
	s := NewSorter()

	sorted := s.Sort(category("zebra", "ant", "mouse"))

	got := make([]string, 0, len(sorted.Entries))
	for _, e := range sorted.Entries {
		got = append(got, e.Word)
	}

	want := []string{"ant", "mouse", "zebra"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sort order mismatch (-want +got):\n%s", diff)
	}
}

func TestSorter_CodePointOrder(t *testing.T) {
	s := NewSorter()

	// Uppercase sorts before lowercase under code-point comparison.
	sorted := s.Sort(category("apple", "Zebra"))

	if sorted.Entries[0].Word != "Zebra" {
		t.Errorf("Expected 'Zebra' first under code-point order, got %q", sorted.Entries[0].Word)
	}
}

func TestSorter_DoesNotMutateInput(t *testing.T) {
	s := NewSorter()
	cat := category("zebra", "ant")

	_ = s.Sort(cat)

	if cat.Entries[0].Word != "zebra" || cat.Entries[1].Word != "ant" {
		t.Errorf("Input category mutated: %q, %q", cat.Entries[0].Word, cat.Entries[1].Word)
	}
}

func TestSorter_CollectsTags(t *testing.T) {
	s := NewSorter()

	cat := database.Category{
		Name: "animals",
		Entries: []database.Entry{
			{Word: "zebra", Body: json.RawMessage(`{"tags": ["wild", "mammal"]}`)},
			{Word: "ant", Body: json.RawMessage(`{"tags": ["insect"]}`)},
			{Word: "rock", Body: json.RawMessage(`{"definition": "not an animal"}`)},
		},
	}

	_ = s.Sort(cat)

	want := []string{"insect", "mammal", "wild"}
	if diff := cmp.Diff(want, s.Collected().Sorted()); diff != "" {
		t.Errorf("Collected tags mismatch (-want +got):\n%s", diff)
	}
}

func TestSorter_AccumulatesAcrossCategories(t *testing.T) {
	s := NewSorter()

	_ = s.Sort(database.Category{Name: "a", Entries: []database.Entry{
		{Word: "x", Body: json.RawMessage(`{"tags": ["one"]}`)},
	}})
	_ = s.Sort(database.Category{Name: "b", Entries: []database.Entry{
		{Word: "y", Body: json.RawMessage(`{"tags": ["two"]}`)},
	}})

	if s.Collected().Len() != 2 {
		t.Errorf("Collected().Len() = %d, want 2", s.Collected().Len())
	}
}
