// Package report renders per-category summaries for console output.
package report

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"wordbase/internal/database"
	"wordbase/pkg/utils"
)

// maxTagsWidth caps the tag column so long tag lists do not wreck the table.
const maxTagsWidth = 60

// Row is one category line in the summary table.
type Row struct {
	Category string
	Words    int
	Tags     []string
}

// Summary aggregates per-category counts for a database.
type Summary struct {
	Rows       []Row
	TotalWords int
	AllTags    []string
}

// Build computes the summary of db, categories in stored order.
func Build(db *database.Database) *Summary {
	s := &Summary{}
	all := database.NewTagSet()

	for _, cat := range db.Categories {
		tags := database.NewTagSet()

		for _, e := range cat.Entries {
			for _, tag := range e.Tags() {
				tags.Add(tag)
				all.Add(tag)
			}
		}

		s.Rows = append(s.Rows, Row{
			Category: cat.Name,
			Words:    len(cat.Entries),
			Tags:     tags.Sorted(),
		})
		s.TotalWords += len(cat.Entries)
	}

	s.AllTags = all.Sorted()

	return s
}

// Render returns the summary as a text table, columns aligned by display
// width so wide characters line up.
func (s *Summary) Render() string {
	rows := [][]string{{"CATEGORY", "WORDS", "TAGS"}}

	for _, r := range s.Rows {
		rows = append(rows, []string{
			r.Category,
			strconv.Itoa(r.Words),
			utils.Truncate(strings.Join(r.Tags, ", "), maxTagsWidth),
		})
	}

	widths := make([]int, len(rows[0]))

	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(cell)

			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
				b.WriteString("  ")
			}
		}

		b.WriteString("\n")
	}

	return b.String()
}
