package normalizer

import (
	"sort"

	"wordbase/internal/database"
)

// Sorter reorders word entries within categories and accumulates every
// tag it sees along the way.
type Sorter struct {
	collected database.TagSet
}

// NewSorter creates a sorter with an empty collected tag set.
func NewSorter() *Sorter {
	return &Sorter{collected: database.NewTagSet()}
}

// Sort returns a copy of cat whose entries are in ascending code-point
// order of the word identifier. The input category is not mutated. Tags
// found on the entries are added to the run's collected set.
func (s *Sorter) Sort(cat database.Category) database.Category {
	entries := make([]database.Entry, len(cat.Entries))
	copy(entries, cat.Entries)

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Word < entries[j].Word
	})

	for _, e := range entries {
		for _, tag := range e.Tags() {
			s.collected.Add(tag)
		}
	}

	return database.Category{Name: cat.Name, Entries: entries}
}

// Collected returns the tag set accumulated across all Sort calls.
func (s *Sorter) Collected() database.TagSet {
	return s.collected
}
