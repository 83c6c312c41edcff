package client

import (
	"strings"

	"placedir/src/domain/entities"
)

// FilterState is the combined filter input. The two predicates
// compose with AND: both stay active at once, and changing one input
// never resets the other.
type FilterState struct {
	// Query filters by case-folded substring over name, category and
	// description. Empty matches everything.
	Query string

	// Category filters by exact, case-sensitive equality. Empty
	// means no selection and matches everything.
	Category string
}

// VisibleSubset computes the records of base that satisfy both
// predicates, preserving base order. base is never mutated.
func VisibleSubset(base []entities.Establishment, filter FilterState) []entities.Establishment {
	visible := make([]entities.Establishment, 0, len(base))
	for _, record := range base {
		if matchesQuery(record, filter.Query) && matchesCategory(record, filter.Category) {
			visible = append(visible, record)
		}
	}
	return visible
}

// matchesQuery reports whether the case-folded query is a substring
// of the record's name, category, or description (when present).
// Substring matching, not token matching.
func matchesQuery(record entities.Establishment, query string) bool {
	if query == "" {
		return true
	}

	folded := strings.ToLower(query)
	if strings.Contains(strings.ToLower(record.Name), folded) {
		return true
	}
	if strings.Contains(strings.ToLower(record.Category), folded) {
		return true
	}
	return record.Description != "" && strings.Contains(strings.ToLower(record.Description), folded)
}

func matchesCategory(record entities.Establishment, category string) bool {
	return category == "" || record.Category == category
}
