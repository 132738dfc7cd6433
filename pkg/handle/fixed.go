package handle

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/cockroachdb/errors"
)

// FixedHandle is a raw byte handle of arbitrary but fixed width
type FixedHandle []byte

// Bytes returns the handle bytes
func (h FixedHandle) Bytes() []byte { return h }

// String returns the hex form
func (h FixedHandle) String() string { return hex.EncodeToString(h) }

// FixedFactory produces FixedHandles of Width bytes
type FixedFactory struct {
	Width int
}

// NullHandle returns Width zero bytes
func (f FixedFactory) NullHandle() Handle { return make(FixedHandle, f.Width) }

// MakeHandle copies Width bytes out of buf at offset
func (f FixedFactory) MakeHandle(buf []byte, offset int) (Handle, error) {
	if err := checkBounds(buf, offset, f.Width); err != nil {
		return nil, err
	}
	h := make(FixedHandle, f.Width)
	copy(h, buf[offset:offset+f.Width])
	return h, nil
}

// Parse reads the hex form
func (f FixedFactory) Parse(s string) (Handle, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "handle: parse %q", s)
	}
	if len(b) != f.Width {
		return nil, errors.Newf("handle: %q decodes to %d bytes, want %d", s, len(b), f.Width)
	}
	return FixedHandle(b), nil
}

// New returns Width random bytes
func (f FixedFactory) New() Handle {
	h := make(FixedHandle, f.Width)
	if _, err := rand.Read(h); err != nil {
		panic(errors.Wrap(err, "handle: read random bytes"))
	}
	return h
}
