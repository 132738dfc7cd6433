package codec

import "github.com/cockroachdb/errors"

// Errors
var (
	// ErrMalformedLink marks a link value whose size is not a multiple of the handle size
	ErrMalformedLink = errors.New("codec: link buffer size is not a multiple of the handle size")
	// ErrHandleWidth marks a handle whose serialized form has the wrong width
	ErrHandleWidth = errors.New("codec: handle has unexpected serialized width")
	// ErrWindowBounds marks a window that does not fit its backing buffer
	ErrWindowBounds = errors.New("codec: window out of bounds")
)
