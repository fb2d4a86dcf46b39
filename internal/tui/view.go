package tui

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"github.com/MichaelCho6556/cardgrid/internal/catalog"
)

// View renders the UI
func (m *Model) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit."
	}
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.loading {
		return fmt.Sprintf("\n  %s Loading catalog...\n", m.spinner.View())
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString(m.viewGrid())
	b.WriteString(m.viewFooter())

	out := b.String()
	if m.showDetail && m.cursor < len(m.visible) {
		out = overlayCentered(out, m.renderDetail(m.visible[m.cursor]), m.width, m.height)
	}
	return zone.Scan(out)
}

func (m *Model) viewHeader() string {
	title := HeaderStyle.Render("Card Grid")

	status := MutedStyle.Render(fmt.Sprintf("  %d/%d records · sort: %s", len(m.visible), len(m.records), m.sortOrder))

	var second string
	switch m.filterState {
	case FilterTyping:
		second = m.filterInput.View()
	case FilterApplied:
		second = TagStyle.Render(fmt.Sprintf("filter: %q", m.filterText)) + MutedStyle.Render("  (/ to edit, esc to clear)")
	default:
		second = Divider(min(m.width, 80))
	}

	return title + status + "\n" + second + "\n"
}

func (m *Model) viewGrid() string {
	w, h := m.gridSize()
	if w <= 0 || h <= 0 {
		return ""
	}

	if len(m.visible) == 0 {
		empty := MutedStyle.Render("No records match.")
		pad := strings.Repeat("\n", h-1)
		return empty + pad
	}

	offset := m.engine.Viewport().ScrollOffset
	c := newCanvas(w, h)
	for _, slot := range m.engine.Slots() {
		c.paint(slot.X, slot.Y-offset, slot.Content)
	}
	return c.String()
}

func (m *Model) viewFooter() string {
	var position string
	if len(m.visible) > 0 {
		position = MutedStyle.Render(fmt.Sprintf("[%d/%d]", m.cursor+1, len(m.visible)))
	}

	var keys string
	if m.filterState == FilterTyping {
		keys = m.help.View(FilterKeyMap)
	} else {
		keys = m.help.View(GridKeyMap)
	}

	return "\n" + position + " " + keys
}

func (m *Model) renderDetail(r catalog.Record) string {
	width := min(m.width-8, 56)
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(truncateToWidth(r.Title, width)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s", statusDot(r.Status), kindBadge(r.Kind)))
	if r.Year > 0 {
		b.WriteString(MutedStyle.Render(fmt.Sprintf("  %d", r.Year)))
	}
	b.WriteString("  " + formatRating(r.Rating))
	b.WriteString("\n")
	if len(r.Tags) > 0 {
		b.WriteString(formatTags(r.Tags, width))
		b.WriteString("\n")
	}
	if r.Notes != "" {
		b.WriteString("\n")
		b.WriteString(TextStyle.Width(width).Render(r.Notes))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("esc to close"))

	return OverlayStyle.Width(width).Render(b.String())
}
