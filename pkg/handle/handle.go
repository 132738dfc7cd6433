// Package handle defines the fixed-width persistent identifiers that link
// records point at, and the factories that mint and parse them.
//
// Every handle produced by a single Factory serializes to the same number of
// bytes for the lifetime of a store. The link codec relies on that width to
// pack handles back to back without separators.
package handle

import (
	"bytes"

	"github.com/cockroachdb/errors"
)

// Handle is an opaque identifier for an entity in the graph
type Handle interface {
	// Bytes returns the fixed-width serialized form. Callers must not modify it.
	Bytes() []byte
	String() string
}

// Factory builds handles from their serialized form
type Factory interface {
	// NullHandle returns the canonical null handle. Its serialized length
	// defines the width of every handle the factory produces.
	NullHandle() Handle
	// MakeHandle reads one handle from buf starting at offset.
	MakeHandle(buf []byte, offset int) (Handle, error)
}

// Parser turns the textual form of a handle back into a Handle
type Parser interface {
	Parse(s string) (Handle, error)
}

// Generator mints fresh, unique handles
type Generator interface {
	New() Handle
}

// Kinds understood by NewFactory
const (
	KindKSUID = "ksuid"
	KindFixed = "fixed"
)

// ErrShortBuffer is returned when a buffer holds fewer bytes than a handle needs
var ErrShortBuffer = errors.New("handle: buffer too short")

// ErrUnknownKind is returned by NewFactory for an unrecognised factory name
var ErrUnknownKind = errors.New("handle: unknown handle kind")

// Equal reports whether a and b serialize to the same bytes
func Equal(a, b Handle) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return bytes.Equal(a.Bytes(), b.Bytes())
}

// Width returns the serialized width of the handles produced by f
func Width(f Factory) int {
	return len(f.NullHandle().Bytes())
}

// NewFactory returns the factory registered under kind. Width is only
// consulted for KindFixed.
func NewFactory(kind string, width int) (Factory, error) {
	switch kind {
	case KindKSUID, "":
		return KSUIDFactory{}, nil
	case KindFixed:
		if width <= 0 {
			return nil, errors.Newf("handle: fixed width must be positive, got %d", width)
		}
		return FixedFactory{Width: width}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
}

// checkBounds verifies that buf holds width bytes at offset
func checkBounds(buf []byte, offset, width int) error {
	if offset < 0 || offset+width > len(buf) {
		return errors.Wrapf(ErrShortBuffer, "need %d bytes at offset %d, have %d", width, offset, len(buf))
	}
	return nil
}
