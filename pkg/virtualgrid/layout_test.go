package virtualgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		geo     Geometry
		wantErr bool
	}{
		{"valid", Geometry{ItemWidth: 300, ItemHeight: 200, Gap: 16}, false},
		{"zero gap is valid", Geometry{ItemWidth: 10, ItemHeight: 5, Gap: 0}, false},
		{"zero width", Geometry{ItemWidth: 0, ItemHeight: 200, Gap: 16}, true},
		{"negative height", Geometry{ItemWidth: 300, ItemHeight: -1, Gap: 16}, true},
		{"negative gap", Geometry{ItemWidth: 300, ItemHeight: 200, Gap: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.geo.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadGeometry)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestComputeLayout_Columns(t *testing.T) {
	geo := Geometry{ItemWidth: 300, ItemHeight: 200, Gap: 16}

	tests := []struct {
		name           string
		containerWidth int
		wantColumns    int
	}{
		{"four columns", 1280, 4},
		{"exactly four columns", 1248, 4}, // 4*300 + 3*16
		{"two columns", 632, 2},
		{"narrower than one item still one column", 100, 1},
		{"zero width still one column", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ComputeLayout(1000, tt.containerWidth, geo)
			assert.Equal(t, tt.wantColumns, l.Columns)
		})
	}
}

func TestComputeLayout_RowsAndExtent(t *testing.T) {
	geo := Geometry{ItemWidth: 300, ItemHeight: 200, Gap: 16}

	t.Run("row count rounds up", func(t *testing.T) {
		l := ComputeLayout(10, 1280, geo) // 4 columns
		assert.Equal(t, 3, l.RowCount)
		assert.Equal(t, 3*216-16, l.TotalExtent)
	})

	t.Run("empty collection has zero extent", func(t *testing.T) {
		l := ComputeLayout(0, 1280, geo)
		assert.Equal(t, 0, l.RowCount)
		assert.Equal(t, 0, l.TotalExtent)
	})

	t.Run("single item", func(t *testing.T) {
		l := ComputeLayout(1, 1280, geo)
		assert.Equal(t, 1, l.RowCount)
		assert.Equal(t, 200, l.TotalExtent)
	})

	t.Run("single column list", func(t *testing.T) {
		l := ComputeLayout(5, 300, Geometry{ItemWidth: 300, ItemHeight: 200, Gap: 0})
		assert.Equal(t, 1, l.Columns)
		assert.Equal(t, 5, l.RowCount)
		assert.Equal(t, 1000, l.TotalExtent)
	})
}

func TestLayout_PositionOf(t *testing.T) {
	geo := Geometry{ItemWidth: 300, ItemHeight: 200, Gap: 16}
	l := ComputeLayout(100, 1280, geo) // 4 columns
	require.Equal(t, 4, l.Columns)

	tests := []struct {
		index int
		wantX int
		wantY int
	}{
		{0, 0, 0},
		{1, 316, 0},
		{3, 948, 0},
		{4, 0, 216},
		{9, 316, 216 * 2},
	}

	for _, tt := range tests {
		x, y := l.PositionOf(tt.index)
		assert.Equal(t, tt.wantX, x, "x of index %d", tt.index)
		assert.Equal(t, tt.wantY, y, "y of index %d", tt.index)
	}
}

func TestLayout_MaxScroll(t *testing.T) {
	geo := Geometry{ItemWidth: 300, ItemHeight: 200, Gap: 0}
	l := ComputeLayout(10, 300, geo) // 10 rows, extent 2000

	assert.Equal(t, 1400, l.MaxScroll(600))
	assert.Equal(t, 0, l.MaxScroll(2000))
	assert.Equal(t, 0, l.MaxScroll(5000), "content shorter than viewport")
}
