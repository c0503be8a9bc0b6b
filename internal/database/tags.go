package database

import "encoding/json"

// tagsField is the optional word-entry field holding descriptive tags.
const tagsField = "tags"

// Tags returns the tag strings attached to the entry. An entry without a
// tags field, with a non-array tags value, or with a non-object body has
// no tags. Non-string array members are skipped.
func (e Entry) Tags() []string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(e.Body, &fields); err != nil {
		return nil
	}

	raw, ok := fields[tagsField]
	if !ok {
		return nil
	}

	var values []any
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}

	var tags []string

	for _, v := range values {
		if s, ok := v.(string); ok {
			tags = append(tags, s)
		}
	}

	return tags
}
