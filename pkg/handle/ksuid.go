package handle

import (
	"github.com/cockroachdb/errors"
	"github.com/segmentio/ksuid"
)

// ksuidWidth is the serialized size of a KSUID
var ksuidWidth = len(ksuid.Nil)

// KSUIDHandle is a 20 byte handle backed by a KSUID
type KSUIDHandle struct {
	id ksuid.KSUID
}

// Bytes returns the raw 20 byte KSUID
func (h KSUIDHandle) Bytes() []byte { return h.id.Bytes() }

// String returns the base62 form of the KSUID
func (h KSUIDHandle) String() string { return h.id.String() }

// KSUID returns the underlying identifier
func (h KSUIDHandle) KSUID() ksuid.KSUID { return h.id }

// KSUIDFactory produces KSUID handles. It is the default handle kind.
type KSUIDFactory struct{}

// NullHandle returns the nil KSUID
func (KSUIDFactory) NullHandle() Handle { return KSUIDHandle{id: ksuid.Nil} }

// MakeHandle copies a KSUID out of buf at offset
func (KSUIDFactory) MakeHandle(buf []byte, offset int) (Handle, error) {
	if err := checkBounds(buf, offset, ksuidWidth); err != nil {
		return nil, err
	}
	id, err := ksuid.FromBytes(buf[offset : offset+ksuidWidth])
	if err != nil {
		return nil, errors.Wrap(err, "handle: decode ksuid")
	}
	return KSUIDHandle{id: id}, nil
}

// Parse reads the base62 text form
func (KSUIDFactory) Parse(s string) (Handle, error) {
	id, err := ksuid.Parse(s)
	if err != nil {
		return nil, errors.Wrapf(err, "handle: parse ksuid %q", s)
	}
	return KSUIDHandle{id: id}, nil
}

// New mints a new time-ordered KSUID
func (KSUIDFactory) New() Handle { return KSUIDHandle{id: ksuid.New()} }
