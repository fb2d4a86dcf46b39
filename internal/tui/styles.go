package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSecondary = lipgloss.Color("#06B6D4")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorDanger    = lipgloss.Color("#EF4444")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorText      = lipgloss.Color("#F9FAFB")
	ColorBorder    = lipgloss.Color("#374151")
)

// Styles
var (
	TextStyle   = lipgloss.NewStyle().Foreground(ColorText)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	RatingStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	TagStyle    = lipgloss.NewStyle().Foreground(ColorSecondary)
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Background(ColorPrimary).Padding(0, 2)
	HelpStyle   = lipgloss.NewStyle().Foreground(ColorMuted)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)
	SelectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	DividerStyle = lipgloss.NewStyle().Foreground(ColorBorder)
)

func Divider(width int) string {
	line := ""
	for i := 0; i < width; i++ {
		line += "─"
	}
	return DividerStyle.Render(line)
}
