package normalizer

import "wordbase/internal/database"

// Auditor re-scans a normalized database to confirm no tags were lost
// by the sort pass. The reordering is structurally lossless, so a
// non-empty result indicates a logic defect rather than bad input.
type Auditor struct{}

// NewAuditor creates a new auditor instance.
func NewAuditor() *Auditor {
	return &Auditor{}
}

// Audit recomputes the tag set present in db, independently of the sort
// pass, and returns the collected tags that no longer appear, sorted.
func (a *Auditor) Audit(db *database.Database, collected database.TagSet) []string {
	final := database.NewTagSet()

	for _, cat := range db.Categories {
		for _, e := range cat.Entries {
			for _, tag := range e.Tags() {
				final.Add(tag)
			}
		}
	}

	return collected.Missing(final)
}
