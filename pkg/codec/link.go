package codec

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/ssargent/freyjalink/pkg/handle"
)

// EmptyLink is returned for every zero-length value. It is shared and must not be modified.
var EmptyLink = []handle.Handle{}

// LinkCodec handles serialization and deserialization of links
type LinkCodec struct {
	factory    handle.Factory
	handleSize int
}

// NewLinkCodec creates a link codec for handles produced by factory.
// The handle size is measured from the factory's null handle.
func NewLinkCodec(factory handle.Factory) (*LinkCodec, error) {
	if factory == nil {
		return nil, errors.AssertionFailedf("codec: nil handle factory")
	}
	size := handle.Width(factory)
	if size <= 0 {
		return nil, errors.AssertionFailedf("codec: handle size must be positive, factory %T reports %d", factory, size)
	}
	return &LinkCodec{factory: factory, handleSize: size}, nil
}

// MustNewLinkCodec is like NewLinkCodec but panics on a broken factory
func MustNewLinkCodec(factory handle.Factory) *LinkCodec {
	c, err := NewLinkCodec(factory)
	if err != nil {
		panic(err)
	}
	return c
}

// HandleSize returns the serialized width of a single handle
func (c *LinkCodec) HandleSize() int {
	return c.handleSize
}

// Factory returns the handle factory the codec decodes with
func (c *LinkCodec) Factory() handle.Factory {
	return c.factory
}

// Encode serializes a link into a flat value
// Format: [Handle 0][Handle 1]...[Handle n-1]
func (c *LinkCodec) Encode(link []handle.Handle) ([]byte, error) {
	buf := make([]byte, len(link)*c.handleSize)
	for i, h := range link {
		if h == nil {
			return nil, errors.Wrapf(ErrHandleWidth, "nil handle at position %d", i)
		}
		b := h.Bytes()
		if len(b) != c.handleSize {
			return nil, errors.Wrapf(ErrHandleWidth, "position %d: got %d bytes, want %d", i, len(b), c.handleSize)
		}
		copy(buf[i*c.handleSize:], b)
	}
	return buf, nil
}

// EncodeTo serializes a link and writes it to out as a single value
func (c *LinkCodec) EncodeTo(out io.Writer, link []handle.Handle) error {
	buf, err := c.Encode(link)
	if err != nil {
		return err
	}
	if _, err := out.Write(buf); err != nil {
		return errors.Wrap(err, "codec: write link")
	}
	return nil
}

// Decode deserializes a flat value into a link
func (c *LinkCodec) Decode(data []byte) ([]handle.Handle, error) {
	return c.DecodeWindow(WholeWindow(data))
}

// DecodeWindow deserializes the link held in w. Handle positions are
// measured from the start of the window, not from the start of w.Buf.
func (c *LinkCodec) DecodeWindow(w Window) ([]handle.Handle, error) {
	size := w.Length
	if size == 0 {
		return EmptyLink, nil
	}
	if size%c.handleSize != 0 {
		return nil, errors.Wrapf(ErrMalformedLink, "size %d, handle size %d", size, c.handleSize)
	}

	data := w.Bytes()
	count := size / c.handleSize
	link := make([]handle.Handle, count)
	for i := 0; i < count; i++ {
		h, err := c.factory.MakeHandle(data, i*c.handleSize)
		if err != nil {
			return nil, errors.Wrapf(err, "codec: handle %d of %d", i, count)
		}
		link[i] = h
	}
	return link, nil
}
