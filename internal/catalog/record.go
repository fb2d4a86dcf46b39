// Package catalog holds the media record collection the grid renders:
// loading, synthetic generation, filtering, and sorting.
package catalog

import "fmt"

// Kind is the media type of a record.
type Kind string

const (
	KindAnime Kind = "anime"
	KindManga Kind = "manga"
)

// Status is the user's tracking state for a record.
type Status string

const (
	StatusWatching  Status = "watching"
	StatusCompleted Status = "completed"
	StatusPlanned   Status = "planned"
	StatusDropped   Status = "dropped"
)

// Record is one entry in the collection. Key is the stable identity used
// for render-slot reuse and must be unique within the collection.
type Record struct {
	Key    string   `yaml:"key"`
	Title  string   `yaml:"title"`
	Kind   Kind     `yaml:"kind"`
	Year   int      `yaml:"year,omitempty"`
	Rating float64  `yaml:"rating,omitempty"`
	Status Status   `yaml:"status,omitempty"`
	Tags   []string `yaml:"tags,omitempty"`
	Notes  string   `yaml:"notes,omitempty"`
}

// KeyOf returns the record's stable key, in the shape the grid engine's
// key callback expects.
func KeyOf(r Record) string { return r.Key }

// Validate checks the fields a loaded record must carry.
func (r Record) Validate() error {
	if r.Key == "" {
		return fmt.Errorf("record %q: missing key", r.Title)
	}
	if r.Title == "" {
		return fmt.Errorf("record %q: missing title", r.Key)
	}
	switch r.Kind {
	case KindAnime, KindManga:
	default:
		return fmt.Errorf("record %q: unknown kind %q", r.Key, r.Kind)
	}
	return nil
}
