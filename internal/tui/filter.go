package tui

import (
	"github.com/MichaelCho6556/cardgrid/internal/catalog"
	"github.com/MichaelCho6556/cardgrid/internal/logger"
)

// applyCollection recomputes the visible slice (filter + sort) and hands it
// to the engine. The cursor follows the record it was on when possible,
// otherwise it clamps to the new bounds.
func (m *Model) applyCollection() {
	var cursorKey string
	if m.cursor < len(m.visible) && len(m.visible) > 0 {
		cursorKey = m.visible[m.cursor].Key
	}

	filtered := catalog.Filter(m.records, m.filterText)
	m.visible = catalog.Sort(filtered, m.sortOrder)

	m.indexOf = make(map[string]int, len(m.visible))
	for i, r := range m.visible {
		m.indexOf[r.Key] = i
	}

	if idx, ok := m.indexOf[cursorKey]; ok {
		m.cursor = idx
	} else if m.cursor > len(m.visible)-1 {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	if err := m.engine.SetItems(m.visible); err != nil {
		// Duplicate keys in a loaded catalog are caught at load time, so
		// reaching this means the collection was corrupted in flight.
		logger.Error("collection rejected", "error", err)
		m.err = err
		return
	}

	m.ensureCursorVisible()
	m.clampScrollTarget()
}
