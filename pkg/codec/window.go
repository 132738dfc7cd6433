package codec

import "github.com/cockroachdb/errors"

// Window addresses Length bytes starting at Offset inside Buf
type Window struct {
	Buf    []byte
	Offset int
	Length int
}

// NewWindow validates that the region fits inside buf
func NewWindow(buf []byte, offset, length int) (Window, error) {
	if offset < 0 || length < 0 || offset+length > len(buf) {
		return Window{}, errors.Wrapf(ErrWindowBounds, "offset %d length %d buffer %d", offset, length, len(buf))
	}
	return Window{Buf: buf, Offset: offset, Length: length}, nil
}

// WholeWindow covers all of buf
func WholeWindow(buf []byte) Window {
	return Window{Buf: buf, Length: len(buf)}
}

// Bytes returns the addressed region without copying
func (w Window) Bytes() []byte {
	return w.Buf[w.Offset : w.Offset+w.Length]
}
