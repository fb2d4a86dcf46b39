package tui

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"github.com/MichaelCho6556/cardgrid/internal/catalog"
)

// renderCard produces the fixed-size visual representation of one record.
// The result is always exactly width x height cells so the grid compositor
// can clip partially visible rows line by line.
func renderCard(r catalog.Record, width, height int, selected bool) string {
	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}

	innerWidth := width - 2
	innerHeight := height - 2
	if innerWidth < 1 || innerHeight < 1 {
		return style.Width(max(0, innerWidth)).Height(max(0, innerHeight)).Render("")
	}

	lines := make([]string, 0, innerHeight)
	lines = append(lines, TitleStyle.Render(truncateToWidth(r.Title, innerWidth)))

	if innerHeight >= 2 {
		meta := fmt.Sprintf("%s %s", statusDot(r.Status), kindBadge(r.Kind))
		if r.Year > 0 {
			meta += MutedStyle.Render(fmt.Sprintf(" %d", r.Year))
		}
		lines = append(lines, truncateToWidth(meta, innerWidth))
	}
	if innerHeight >= 3 {
		lines = append(lines, formatRating(r.Rating))
	}
	if innerHeight >= 4 {
		lines = append(lines, formatTags(r.Tags, innerWidth))
	}
	if innerHeight >= 5 && r.Notes != "" {
		lines = append(lines, MutedStyle.Render(truncateToWidth(r.Notes, innerWidth)))
	}

	for len(lines) < innerHeight {
		lines = append(lines, "")
	}
	lines = lines[:innerHeight]

	content := style.Width(innerWidth).Height(innerHeight).Render(strings.Join(lines, "\n"))
	return zone.Mark(r.Key, content)
}
