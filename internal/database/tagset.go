package database

import "sort"

// TagSet is a set of tag strings.
type TagSet map[string]struct{}

// NewTagSet creates an empty tag set.
func NewTagSet() TagSet {
	return make(TagSet)
}

// Add inserts tag into the set.
func (s TagSet) Add(tag string) {
	s[tag] = struct{}{}
}

// Has reports whether tag is in the set.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]

	return ok
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int {
	return len(s)
}

// Missing returns the tags in s that are absent from other, sorted.
func (s TagSet) Missing(other TagSet) []string {
	var missing []string

	for tag := range s {
		if !other.Has(tag) {
			missing = append(missing, tag)
		}
	}

	sort.Strings(missing)

	return missing
}

// Sorted returns the set's tags in ascending order.
func (s TagSet) Sorted() []string {
	tags := make([]string, 0, len(s))
	for tag := range s {
		tags = append(tags, tag)
	}

	sort.Strings(tags)

	return tags
}
