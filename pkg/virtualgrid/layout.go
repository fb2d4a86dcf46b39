// Package virtualgrid implements a virtualized grid/list rendering engine.
// Given a scroll offset and viewport size it computes which subset of a
// large item collection must be materialized as render slots, and recycles
// those slots as the window moves, so the number of live render nodes stays
// bounded regardless of collection size.
package virtualgrid

import "fmt"

// DefaultOverscanRows is the number of extra rows materialized beyond the
// visible viewport to mask pop-in during fast scrolling.
const DefaultOverscanRows = 1

// Geometry describes the uniform footprint of one item plus the spacing
// between items. Units are abstract (terminal cells or pixels).
type Geometry struct {
	ItemWidth  int
	ItemHeight int
	Gap        int
}

// Validate reports whether the geometry is usable. Item dimensions must be
// positive; the gap may be zero but not negative.
func (g Geometry) Validate() error {
	if g.ItemWidth <= 0 || g.ItemHeight <= 0 {
		return fmt.Errorf("%w: item size %dx%d", ErrBadGeometry, g.ItemWidth, g.ItemHeight)
	}
	if g.Gap < 0 {
		return fmt.Errorf("%w: gap %d", ErrBadGeometry, g.Gap)
	}
	return nil
}

// Layout is the derived geometric description of a collection at a given
// container width: how many columns fit, how many rows the collection
// occupies, and the total scrollable extent.
type Layout struct {
	Columns     int
	RowCount    int
	TotalExtent int

	itemCount int
	geo       Geometry
}

// ComputeLayout maps an item count and container width onto a grid layout.
// Pure and deterministic; geometry is assumed validated at engine
// construction. A container narrower than one item still yields one column.
func ComputeLayout(itemCount, containerWidth int, geo Geometry) Layout {
	cols := (containerWidth + geo.Gap) / (geo.ItemWidth + geo.Gap)
	if cols < 1 {
		cols = 1
	}

	rows := 0
	if itemCount > 0 {
		rows = (itemCount + cols - 1) / cols
	}

	extent := 0
	if rows > 0 {
		extent = rows*(geo.ItemHeight+geo.Gap) - geo.Gap
	}

	return Layout{
		Columns:     cols,
		RowCount:    rows,
		TotalExtent: extent,
		itemCount:   itemCount,
		geo:         geo,
	}
}

// ItemCount returns the collection size this layout was computed for.
func (l Layout) ItemCount() int { return l.itemCount }

// RowHeight returns the vertical stride of one row including the gap.
func (l Layout) RowHeight() int { return l.geo.ItemHeight + l.geo.Gap }

// PositionOf returns the top-left corner of the item at index i.
// Index 0 sits at the origin; items fill rows left to right.
func (l Layout) PositionOf(i int) (x, y int) {
	row := i / l.Columns
	col := i % l.Columns
	return col * (l.geo.ItemWidth + l.geo.Gap), row * l.RowHeight()
}

// RowOf returns the row the item at index i occupies.
func (l Layout) RowOf(i int) int { return i / l.Columns }

// MaxScroll returns the largest meaningful scroll offset for the given
// viewport height. Offsets beyond it are clamped, not rejected.
func (l Layout) MaxScroll(viewportHeight int) int {
	max := l.TotalExtent - viewportHeight
	if max < 0 {
		return 0
	}
	return max
}
