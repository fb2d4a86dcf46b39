package virtualgrid

// Range is a contiguous, inclusive interval of item indices. An empty range
// has Last < First.
type Range struct {
	First int
	Last  int
}

// EmptyRange is the canonical "nothing visible" range.
var EmptyRange = Range{First: 0, Last: -1}

// Empty reports whether the range contains no indices.
func (r Range) Empty() bool { return r.Last < r.First }

// Len returns the number of indices in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.Last - r.First + 1
}

// Contains reports whether index i falls inside the range.
func (r Range) Contains(i int) bool { return i >= r.First && i <= r.Last }

// VisibleRange returns the contiguous slice of the collection that must be
// materialized to cover the viewport at the given scroll offset, padded by
// overscanRows above and below. Zero items or a zero-height viewport yield
// an empty range; an offset beyond the scrollable extent is clamped rather
// than rejected, since scroll state commonly lags a shrinking collection.
func VisibleRange(l Layout, scrollOffset, viewportHeight, overscanRows int) Range {
	if l.itemCount == 0 || viewportHeight <= 0 {
		return EmptyRange
	}

	if scrollOffset < 0 {
		scrollOffset = 0
	}
	if max := l.MaxScroll(viewportHeight); scrollOffset > max {
		scrollOffset = max
	}

	rh := l.RowHeight()

	firstRow := scrollOffset/rh - overscanRows
	if firstRow < 0 {
		firstRow = 0
	}

	// Last row touching the viewport: rows span [row*rh, (row+1)*rh).
	lastRow := (scrollOffset+viewportHeight-1)/rh + overscanRows
	if lastRow > l.RowCount-1 {
		lastRow = l.RowCount - 1
	}

	first := firstRow * l.Columns
	last := (lastRow+1)*l.Columns - 1
	if last > l.itemCount-1 {
		last = l.itemCount - 1
	}
	return Range{First: first, Last: last}
}
