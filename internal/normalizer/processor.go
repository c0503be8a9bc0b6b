// Package normalizer implements the word-database normalization pipeline:
// load, sort categories, audit tags, write.
package normalizer

import (
	"fmt"
	"os"

	"wordbase/internal/config"
	"wordbase/internal/database"
	"wordbase/internal/logger"
)

// Result summarizes a completed normalization run.
type Result struct {
	Database    *database.Database
	Categories  int
	Words       int
	Tags        int
	MissingTags []string
	Duplicates  []string
}

// Processor drives a single normalization run.
type Processor struct {
	cfg *config.Config
	log *logger.Logger
}

// NewProcessor creates a processor using the given configuration and logger.
func NewProcessor(cfg *config.Config, log *logger.Logger) *Processor {
	return &Processor{cfg: cfg, log: log}
}

// Run loads the database at inputPath, sorts word identifiers within each
// category, audits the tag set, and writes the normalized database to
// outputPath. The run aborts on the first failure; nothing is written
// unless the load succeeded.
func (p *Processor) Run(inputPath, outputPath string) (*Result, error) {
	db, err := database.LoadWithPolicy(inputPath, p.cfg.Duplicates.Resolve())
	if err != nil {
		return nil, err
	}

	if len(db.Duplicates) > 0 {
		p.log.Warn("duplicate keys collapsed (last value wins)", "keys", db.Duplicates)
	}

	sorter := NewSorter()
	normalized := &database.Database{
		Categories: make([]database.Category, 0, len(db.Categories)),
	}

	for _, cat := range db.Categories {
		normalized.Categories = append(normalized.Categories, sorter.Sort(cat))
	}

	collected := sorter.Collected()

	missing := NewAuditor().Audit(normalized, collected)
	if len(missing) > 0 {
		// Advisory only: the run still writes its output.
		p.log.Warn("tags from the original data are missing after reordering", "tags", missing)
	}

	if p.cfg.Output.CreateBackup {
		if err := backupFile(outputPath); err != nil {
			return nil, err
		}
	}

	if err := database.Write(outputPath, normalized); err != nil {
		return nil, err
	}

	return &Result{
		Database:    normalized,
		Categories:  len(normalized.Categories),
		Words:       normalized.Words(),
		Tags:        collected.Len(),
		MissingTags: missing,
		Duplicates:  db.Duplicates,
	}, nil
}

// backupFile copies an existing file at path to path.bak before it is
// overwritten. A missing file needs no backup.
func backupFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("%w: backup of %s: %v", database.ErrWrite, path, err)
	}

	if err := os.WriteFile(path+".bak", data, 0644); err != nil {
		return fmt.Errorf("%w: backup of %s: %v", database.ErrWrite, path, err)
	}

	return nil
}
