package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/MichaelCho6556/cardgrid/internal/catalog"
)

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterState == FilterTyping {
		return m.handleFilterKey(msg)
	}

	if m.showDetail {
		switch msg.String() {
		case "esc", "enter", "q":
			m.showDetail = false
		}
		return m, nil
	}

	cols := m.columns()

	switch {
	case key.Matches(msg, GridKeyMap.Quit):
		m.Destroy()
		return m, tea.Quit

	case key.Matches(msg, GridKeyMap.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, GridKeyMap.Up):
		m.moveCursor(-cols)
	case key.Matches(msg, GridKeyMap.Down):
		m.moveCursor(cols)
	case key.Matches(msg, GridKeyMap.Left):
		m.moveCursor(-1)
	case key.Matches(msg, GridKeyMap.Right):
		m.moveCursor(1)
	case key.Matches(msg, GridKeyMap.PageUp):
		m.moveCursor(-cols * m.pageRows())
	case key.Matches(msg, GridKeyMap.PageDown):
		m.moveCursor(cols * m.pageRows())
	case key.Matches(msg, GridKeyMap.Home):
		m.setCursor(0)
	case key.Matches(msg, GridKeyMap.End):
		m.setCursor(len(m.visible) - 1)

	case key.Matches(msg, GridKeyMap.Detail):
		if len(m.visible) > 0 {
			m.showDetail = true
		}

	case key.Matches(msg, GridKeyMap.Search):
		m.filterState = FilterTyping
		m.filterInput.SetValue(m.filterText)
		m.filterInput.Focus()
		return m, nil

	case key.Matches(msg, GridKeyMap.Sort):
		m.cycleSort()
	}

	return m, nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, FilterKeyMap.Apply):
		m.filterText = m.filterInput.Value()
		m.filterInput.Blur()
		if m.filterText == "" {
			m.filterState = FilterNone
		} else {
			m.filterState = FilterApplied
		}
		return m, nil

	case key.Matches(msg, FilterKeyMap.Cancel):
		m.filterState = FilterNone
		m.filterText = ""
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.applyCollection()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)

	// Live filtering: the collection shrinks and grows while typing.
	m.filterText = m.filterInput.Value()
	m.applyCollection()
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-3 * m.rowStride())
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(3 * m.rowStride())
		return m, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	// Cards mark their zone with the record key; hit-test the visible slots.
	for _, slot := range m.engine.Slots() {
		if zone.Get(slot.Key).InBounds(msg) {
			if idx, ok := m.indexOf[slot.Key]; ok {
				if idx == m.cursor {
					m.showDetail = true
				} else {
					m.setCursor(idx)
				}
			}
			break
		}
	}
	return m, nil
}

func (m *Model) columns() int {
	if cols := m.engine.Layout().Columns; cols > 0 {
		return cols
	}
	return 1
}

func (m *Model) rowStride() int {
	return m.cfg.CardHeight + m.cfg.Gap
}

// pageRows returns how many rows a page jump moves.
func (m *Model) pageRows() int {
	_, h := m.gridSize()
	rows := h / m.rowStride()
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) moveCursor(delta int) {
	m.setCursor(m.cursor + delta)
}

func (m *Model) setCursor(idx int) {
	if len(m.visible) == 0 {
		m.cursor = 0
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(m.visible)-1 {
		idx = len(m.visible) - 1
	}
	if idx == m.cursor {
		return
	}
	m.cursor = idx
	m.ensureCursorVisible()
	m.refreshSlots()
}

// ensureCursorVisible retargets the scroll animation so the cursor's row is
// fully inside the viewport.
func (m *Model) ensureCursorVisible() {
	_, h := m.gridSize()
	if h <= 0 {
		return
	}

	// Right after a collection change the engine's layout is pending until
	// the next frame; retargeting waits for it.
	l := m.engine.Layout()
	if l.Columns == 0 {
		return
	}

	rowTop := l.RowOf(m.cursor) * m.rowStride()
	rowBottom := rowTop + m.cfg.CardHeight

	target := m.scrollTarget
	if rowTop < target {
		target = rowTop
	}
	if rowBottom > target+h {
		target = rowBottom - h
	}
	m.scrollTarget = target
	m.clampScrollTarget()
}

// scrollBy retargets the animation without moving the cursor.
func (m *Model) scrollBy(delta int) {
	m.scrollTarget += delta
	m.clampScrollTarget()
}

// refreshSlots re-renders materialized cards without a layout change, e.g.
// when the selection highlight moved. Same-count updates take the engine's
// fast path.
func (m *Model) refreshSlots() {
	if err := m.engine.SetItems(m.visible); err != nil {
		m.err = err
	}
}

func (m *Model) cycleSort() {
	m.sortOrder = catalog.NextSortOrder(m.sortOrder)
	m.applyCollection()
}
