// Package database implements the categorized word-database document model.
//
// A database is a JSON object whose top-level keys are category names and
// whose values are objects mapping word identifiers to word-entry objects.
// Go maps discard key order, and category encounter order has to survive a
// load/store round trip, so the model keeps entries in slices instead.
package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Document errors.
var (
	ErrNotFound  = errors.New("database file not found")
	ErrParse     = errors.New("malformed database")
	ErrDuplicate = errors.New("duplicate word identifier")
	ErrWrite     = errors.New("cannot write database")
)

// DuplicatePolicy controls how duplicate keys in the source document are handled.
type DuplicatePolicy int

const (
	// DuplicateLastWins keeps the position of the first occurrence and the
	// value of the last, matching standard mapping semantics. Collapsed
	// keys are recorded on the Database for the caller to report.
	DuplicateLastWins DuplicatePolicy = iota
	// DuplicateReject treats any duplicate key as a parse failure.
	DuplicateReject
)

// Entry is a single word record. Body holds the entry object verbatim so
// that fields other than position survive untouched.
type Entry struct {
	Word string
	Body json.RawMessage
}

// Category is a named, ordered collection of word entries.
type Category struct {
	Name    string
	Entries []Entry
}

// Database is the full document, categories in encounter order.
type Database struct {
	Categories []Category

	// Duplicates lists keys collapsed under the last-wins policy during
	// parsing: "category/word" for entries, the bare name for categories.
	Duplicates []string
}

// Words returns the total number of word entries across all categories.
func (db *Database) Words() int {
	n := 0
	for _, cat := range db.Categories {
		n += len(cat.Entries)
	}

	return n
}

// Load reads and parses the database at path with the last-wins duplicate policy.
func Load(path string) (*Database, error) {
	return LoadWithPolicy(path, DuplicateLastWins)
}

// LoadWithPolicy reads and parses the database at path.
func LoadWithPolicy(path string, policy DuplicatePolicy) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	defer f.Close()

	db, err := Parse(f, policy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return db, nil
}

// Parse decodes a database document from r, preserving key order.
func Parse(r io.Reader, policy DuplicatePolicy) (*Database, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{', "top level must be an object"); err != nil {
		return nil, err
	}

	db := &Database{}
	index := make(map[string]int)

	for dec.More() {
		name, err := keyToken(dec)
		if err != nil {
			return nil, err
		}

		cat, dups, err := parseCategory(dec, name, policy)
		if err != nil {
			return nil, err
		}

		db.Duplicates = append(db.Duplicates, dups...)

		if i, seen := index[name]; seen {
			if policy == DuplicateReject {
				return nil, fmt.Errorf("%w: %w: category %q", ErrParse, ErrDuplicate, name)
			}

			db.Categories[i] = cat
			db.Duplicates = append(db.Duplicates, name)

			continue
		}

		index[name] = len(db.Categories)
		db.Categories = append(db.Categories, cat)
	}

	// Closing brace of the top-level object.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}

		return nil, fmt.Errorf("%w: unexpected %v after document", ErrParse, tok)
	}

	return db, nil
}

func parseCategory(dec *json.Decoder, name string, policy DuplicatePolicy) (Category, []string, error) {
	if err := expectDelim(dec, '{', fmt.Sprintf("category %q must be an object", name)); err != nil {
		return Category{}, nil, err
	}

	cat := Category{Name: name}
	index := make(map[string]int)

	var dups []string

	for dec.More() {
		word, err := keyToken(dec)
		if err != nil {
			return Category{}, nil, err
		}

		var body json.RawMessage
		if err := dec.Decode(&body); err != nil {
			return Category{}, nil, fmt.Errorf("%w: entry %q in category %q: %v", ErrParse, word, name, err)
		}

		if i, seen := index[word]; seen {
			if policy == DuplicateReject {
				return Category{}, nil, fmt.Errorf("%w: %w: %q in category %q", ErrParse, ErrDuplicate, word, name)
			}

			cat.Entries[i].Body = body
			dups = append(dups, name+"/"+word)

			continue
		}

		index[word] = len(cat.Entries)
		cat.Entries = append(cat.Entries, Entry{Word: word, Body: body})
	}

	// Closing brace of the category object.
	if _, err := dec.Token(); err != nil {
		return Category{}, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return cat, dups, nil
}

func expectDelim(dec *json.Decoder, want json.Delim, msg string) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}

	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: %s", ErrParse, msg)
	}

	return nil
}

func keyToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}

	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("%w: expected object key, got %v", ErrParse, tok)
	}

	return key, nil
}
