package prompt

import (
	"sort"
)

// AnswerSet maps question IDs to the raw answers the user typed.
// It is immutable once built.
type AnswerSet struct {
	values map[string]string
}

// NewAnswerSet builds an AnswerSet from a copy of values
func NewAnswerSet(values map[string]string) AnswerSet {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return AnswerSet{values: copied}
}

// Get returns the raw answer for id, or "" when it was never asked
func (a AnswerSet) Get(id string) string {
	return a.values[id]
}

// Len returns the number of answers
func (a AnswerSet) Len() int {
	return len(a.values)
}

// IDs returns the answered question IDs in sorted order
func (a AnswerSet) IDs() []string {
	ids := make([]string, 0, len(a.values))
	for id := range a.values {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
