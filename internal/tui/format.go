package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MichaelCho6556/cardgrid/internal/catalog"
)

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// truncateToWidth truncates string to fit within maxWidth display columns,
// appending ".." when anything was cut.
func truncateToWidth(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	suffix := ".."
	targetWidth := maxWidth - lipgloss.Width(suffix)

	runes := []rune(s)
	for i := 1; i <= len(runes); i++ {
		if lipgloss.Width(string(runes[:i])) > targetWidth {
			return string(runes[:i-1]) + suffix
		}
	}
	return s
}

// padToWidth pads string with spaces to reach exactly targetWidth display columns.
func padToWidth(s string, targetWidth int) string {
	currentWidth := lipgloss.Width(s)
	if currentWidth >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-currentWidth)
}

func formatRating(rating float64) string {
	if rating <= 0 {
		return MutedStyle.Render("unrated")
	}
	return RatingStyle.Render(fmt.Sprintf("★ %.1f", rating))
}

func kindBadge(kind catalog.Kind) string {
	switch kind {
	case catalog.KindAnime:
		return TagStyle.Render("[anime]")
	case catalog.KindManga:
		return TagStyle.Render("[manga]")
	default:
		return ""
	}
}

func statusDot(status catalog.Status) string {
	switch status {
	case catalog.StatusWatching:
		return lipgloss.NewStyle().Foreground(ColorSecondary).Render("●")
	case catalog.StatusCompleted:
		return lipgloss.NewStyle().Foreground(ColorSuccess).Render("●")
	case catalog.StatusDropped:
		return lipgloss.NewStyle().Foreground(ColorDanger).Render("●")
	case catalog.StatusPlanned:
		return MutedStyle.Render("●")
	default:
		return " "
	}
}

func formatTags(tags []string, maxWidth int) string {
	if len(tags) == 0 {
		return ""
	}
	return TagStyle.Render(truncateToWidth(strings.Join(tags, " · "), maxWidth))
}
