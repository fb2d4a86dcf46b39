package catalog

import (
	"sort"
	"strings"
)

// SortOrder selects how the collection is ordered in the grid.
type SortOrder string

const (
	SortByRating SortOrder = "rating"
	SortByTitle  SortOrder = "title"
	SortByYear   SortOrder = "year"
)

// NextSortOrder cycles through the available orders.
func NextSortOrder(o SortOrder) SortOrder {
	switch o {
	case SortByRating:
		return SortByTitle
	case SortByTitle:
		return SortByYear
	default:
		return SortByRating
	}
}

// Sort returns a sorted copy of records. The original slice is untouched.
func Sort(records []Record, order SortOrder) []Record {
	if len(records) == 0 {
		return records
	}

	sorted := make([]Record, len(records))
	copy(sorted, records)

	switch order {
	case SortByRating:
		// Rating descending (best first), title as tie break.
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Rating != sorted[j].Rating {
				return sorted[i].Rating > sorted[j].Rating
			}
			return sorted[i].Title < sorted[j].Title
		})
	case SortByTitle:
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Title < sorted[j].Title
		})
	case SortByYear:
		// Year descending (newest first).
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Year != sorted[j].Year {
				return sorted[i].Year > sorted[j].Year
			}
			return sorted[i].Title < sorted[j].Title
		})
	}

	return sorted
}

// Filter returns the records matching the query. Space-separated terms are
// ANDed: "action 2020" matches records containing both terms anywhere in
// title, tags, or status. Case-insensitive. An empty query matches all.
func Filter(records []Record, query string) []Record {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return records
	}

	var filtered []Record
	for _, r := range records {
		haystack := strings.ToLower(r.Title + " " + strings.Join(r.Tags, " ") + " " + string(r.Status))

		match := true
		for _, term := range terms {
			if !strings.Contains(haystack, term) {
				match = false
				break
			}
		}
		if match {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
