// Package codec provides link record serialization and deserialization for FreyjaLink.
//
// A link is an ordered list of handles pointing at other entities in the
// graph. The codec packs a link into a single flat value so that it can be
// stored as one opaque entry in the underlying key-value store.
//
// # Link Format
//
// Links are serialized as the raw concatenation of each handle's fixed-width
// byte form, in link order:
//
//	[Handle 0][Handle 1]...[Handle n-1]
//
// There is no count field, no length prefix and no separator. The total value
// length supplied by the store is the only source of the element count:
//
//	count = len(value) / HandleSize()
//
// The handle width is measured once, when the codec is constructed, by
// serializing the factory's null handle. A width that is not positive means
// the factory is broken and construction fails.
//
// # Usage
//
//	c, err := codec.NewLinkCodec(handle.KSUIDFactory{})
//	if err != nil {
//	    return err
//	}
//
//	// Encode a link
//	encoded, err := c.Encode([]handle.Handle{from, via, to})
//	if err != nil {
//	    return err
//	}
//
//	// Decode a link
//	link, err := c.Decode(encoded)
//	if err != nil {
//	    return err // errors.Is(err, codec.ErrMalformedLink) on corruption
//	}
//
// Values borrowed from a larger backing buffer can be decoded in place with
// DecodeWindow, which addresses handles relative to the window start.
//
// # Error Handling
//
// Decode rejects any buffer whose length is not an exact multiple of the
// handle width with ErrMalformedLink. Such a buffer is treated as data
// corruption: nothing is truncated or padded, and the error is not retryable.
//
// The empty link encodes to a zero-length value and a zero-length value
// decodes to EmptyLink.
//
// # Thread Safety
//
// LinkCodec instances are immutable after construction and safe for
// concurrent use. Decoded links are freshly allocated on every call, except
// for EmptyLink which is shared and must not be modified.
package codec
