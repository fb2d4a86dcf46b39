package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	return []Record{
		{Key: "a", Title: "Silent Blade", Kind: KindAnime, Year: 2019, Rating: 8.2, Status: StatusCompleted, Tags: []string{"action", "drama"}},
		{Key: "b", Title: "Paper Garden", Kind: KindManga, Year: 2021, Rating: 9.0, Status: StatusWatching, Tags: []string{"slice-of-life"}},
		{Key: "c", Title: "Crimson Empire", Kind: KindAnime, Year: 2015, Rating: 7.4, Status: StatusDropped, Tags: []string{"action", "fantasy"}},
	}
}

func TestFilter(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name     string
		query    string
		wantKeys []string
	}{
		{"empty query matches all", "", []string{"a", "b", "c"}},
		{"title substring", "blade", []string{"a"}},
		{"tag match", "action", []string{"a", "c"}},
		{"status match", "watching", []string{"b"}},
		{"terms are ANDed", "action crimson", []string{"c"}},
		{"case insensitive", "PAPER", []string{"b"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, tt.query)
			var keys []string
			for _, r := range got {
				keys = append(keys, r.Key)
			}
			assert.Equal(t, tt.wantKeys, keys)
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	Filter(records, "action")
	assert.Equal(t, sampleRecords(), records)
}

func TestSort(t *testing.T) {
	records := sampleRecords()

	t.Run("by rating descending", func(t *testing.T) {
		sorted := Sort(records, SortByRating)
		require.Len(t, sorted, 3)
		assert.Equal(t, "b", sorted[0].Key)
		assert.Equal(t, "a", sorted[1].Key)
		assert.Equal(t, "c", sorted[2].Key)
	})

	t.Run("by title ascending", func(t *testing.T) {
		sorted := Sort(records, SortByTitle)
		assert.Equal(t, "Crimson Empire", sorted[0].Title)
		assert.Equal(t, "Paper Garden", sorted[1].Title)
		assert.Equal(t, "Silent Blade", sorted[2].Title)
	})

	t.Run("by year newest first", func(t *testing.T) {
		sorted := Sort(records, SortByYear)
		assert.Equal(t, 2021, sorted[0].Year)
		assert.Equal(t, 2015, sorted[2].Year)
	})

	t.Run("original order untouched", func(t *testing.T) {
		Sort(records, SortByTitle)
		assert.Equal(t, "a", records[0].Key)
	})
}

func TestNextSortOrder(t *testing.T) {
	assert.Equal(t, SortByTitle, NextSortOrder(SortByRating))
	assert.Equal(t, SortByYear, NextSortOrder(SortByTitle))
	assert.Equal(t, SortByRating, NextSortOrder(SortByYear))
}
