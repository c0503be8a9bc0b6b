package normalizer

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"wordbase/internal/database"
)

func TestAuditor_NoMissingTags(t *testing.T) {
	db := &database.Database{Categories: []database.Category{{
		Name: "animals",
		Entries: []database.Entry{
			{Word: "ant", Body: json.RawMessage(`{"tags": ["insect"]}`)},
			{Word: "zebra", Body: json.RawMessage(`{"tags": ["wild"]}`)},
		},
	}}}

	collected := database.NewTagSet()
	collected.Add("insect")
	collected.Add("wild")

	if missing := NewAuditor().Audit(db, collected); len(missing) != 0 {
		t.Errorf("Audit() = %v, want no missing tags", missing)
	}
}

func TestAuditor_ReportsMissingTags(t *testing.T) {
	db := &database.Database{Categories: []database.Category{{
		Name: "animals",
		Entries: []database.Entry{
			{Word: "ant", Body: json.RawMessage(`{"tags": ["insect"]}`)},
		},
	}}}

	// Simulate a collected set that saw tags the database no longer holds.
	collected := database.NewTagSet()
	collected.Add("insect")
	collected.Add("wild")
	collected.Add("aquatic")

	want := []string{"aquatic", "wild"}
	if diff := cmp.Diff(want, NewAuditor().Audit(db, collected)); diff != "" {
		t.Errorf("Audit mismatch (-want +got):\n%s", diff)
	}
}

func TestAuditor_EmptyDatabase(t *testing.T) {
	if missing := NewAuditor().Audit(&database.Database{}, database.NewTagSet()); len(missing) != 0 {
		t.Errorf("Audit() = %v, want no missing tags", missing)
	}
}
