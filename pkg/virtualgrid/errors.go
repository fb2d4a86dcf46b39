package virtualgrid

import "errors"

var (
	// ErrBadGeometry indicates non-positive item dimensions or a negative
	// gap. Geometry is a caller precondition, validated once at engine
	// construction.
	ErrBadGeometry = errors.New("virtualgrid: invalid geometry")

	// ErrDuplicateKey indicates two items in one collection snapshot share
	// a key. Keys are the identity used for slot reuse, so duplicates are
	// reported rather than silently tolerated.
	ErrDuplicateKey = errors.New("virtualgrid: duplicate item key")

	// ErrMissingCallback indicates the engine was constructed without a key
	// or render callback.
	ErrMissingCallback = errors.New("virtualgrid: missing callback")
)
