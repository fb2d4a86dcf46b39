package tui

import (
	"time"

	"github.com/MichaelCho6556/cardgrid/internal/catalog"
)

// FilterState represents the search/filter mode state
type FilterState int

const (
	FilterNone    FilterState = iota // No filter active
	FilterTyping                     // User is typing a query
	FilterApplied                    // Filter is applied
)

// Messages
type (
	// frameMsg is the per-frame tick that drives the scroll animation and
	// flushes the engine's coalesced recomputation.
	frameMsg time.Time

	// catalogLoadedMsg delivers the loaded collection (or the load error).
	catalogLoadedMsg struct {
		records []catalog.Record
		err     error
	}
)
