package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// canvas is a fixed-size buffer of screen lines the grid compositor paints
// card fragments into. Painting clips at every edge, so cards half out of
// the viewport render their visible lines only.
type canvas struct {
	width  int
	height int
	lines  []string
}

func newCanvas(width, height int) *canvas {
	lines := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = blank
	}
	return &canvas{width: width, height: height, lines: lines}
}

// paint splices content into the buffer with its top-left corner at (x, y).
// Coordinates may be negative or past the edge; out-of-bounds lines and
// columns are dropped.
func (c *canvas) paint(x, y int, content string) {
	if c.width <= 0 || c.height <= 0 {
		return
	}

	for i, line := range splitLines(content) {
		row := y + i
		if row < 0 || row >= c.height {
			continue
		}

		lineWidth := lipgloss.Width(line)
		col := x
		if col < 0 {
			line = ansi.Cut(line, -col, lineWidth)
			lineWidth += col
			col = 0
		}
		if lineWidth <= 0 || col >= c.width {
			continue
		}
		if col+lineWidth > c.width {
			line = ansi.Truncate(line, c.width-col, "")
			lineWidth = c.width - col
		}

		base := c.lines[row]
		left := ansi.Cut(base, 0, col)
		right := ansi.Cut(base, col+lineWidth, c.width)
		c.lines[row] = left + padToWidth(line, lineWidth) + right
	}
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}

// overlayCentered paints overlay on top of base, centered in width x height.
func overlayCentered(base, overlay string, width, height int) string {
	if width <= 0 || height <= 0 {
		return base
	}

	baseLines := normalizeLines(base, width, height)
	overlayWidth := lipgloss.Width(overlay)
	overlayLines := splitLines(overlay)
	if overlayWidth <= 0 || len(overlayLines) == 0 {
		return strings.Join(baseLines, "\n")
	}
	if overlayWidth > width {
		overlayWidth = width
	}
	if len(overlayLines) > height {
		overlayLines = overlayLines[:height]
	}

	x := (width - overlayWidth) / 2
	y := (height - len(overlayLines)) / 2

	c := &canvas{width: width, height: height, lines: baseLines}
	for i := range overlayLines {
		overlayLines[i] = padToWidth(ansi.Truncate(overlayLines[i], overlayWidth, ""), overlayWidth)
	}
	c.paint(x, y, strings.Join(overlayLines, "\n"))
	return c.String()
}

func normalizeLines(s string, width, height int) []string {
	lines := splitLines(s)
	for i := range lines {
		lines[i] = padToWidth(ansi.Truncate(lines[i], width, ""), width)
	}

	blank := strings.Repeat(" ", width)
	for len(lines) < height {
		lines = append(lines, blank)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return lines
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
