package database

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// indentUnit is one level of output indentation.
const indentUnit = "  "

// Serialize renders the database as indented JSON. Categories appear in
// their stored order, entry bodies are re-indented but otherwise emitted
// verbatim.
func (db *Database) Serialize() ([]byte, error) {
	if len(db.Categories) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer

	buf.WriteString("{\n")

	for i, cat := range db.Categories {
		if i > 0 {
			buf.WriteString(",\n")
		}

		buf.WriteString(indentUnit)
		writeKey(&buf, cat.Name)
		buf.WriteString(": ")

		if err := writeCategory(&buf, cat); err != nil {
			return nil, err
		}
	}

	buf.WriteString("\n}")

	return buf.Bytes(), nil
}

// Write serializes the database and stores it at path.
func Write(path string, db *Database) error {
	data, err := db.Serialize()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}

	return nil
}

func writeCategory(buf *bytes.Buffer, cat Category) error {
	if len(cat.Entries) == 0 {
		buf.WriteString("{}")

		return nil
	}

	buf.WriteString("{\n")

	entryIndent := indentUnit + indentUnit

	for i, e := range cat.Entries {
		if i > 0 {
			buf.WriteString(",\n")
		}

		buf.WriteString(entryIndent)
		writeKey(buf, e.Word)
		buf.WriteString(": ")

		if err := json.Indent(buf, e.Body, entryIndent, indentUnit); err != nil {
			return fmt.Errorf("entry %q in category %q: %v", e.Word, cat.Name, err)
		}
	}

	buf.WriteString("\n" + indentUnit + "}")

	return nil
}

func writeKey(buf *bytes.Buffer, key string) {
	// Marshaling a string cannot fail; invalid UTF-8 is coerced.
	data, _ := json.Marshal(key)
	buf.Write(data)
}
