//go:build fuzz
// +build fuzz

package codec

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/ssargent/freyjalink/pkg/handle"
)

// FuzzLinkCodec_Decode checks that arbitrary values either decode and
// re-encode to the same bytes, or are rejected as malformed
func FuzzLinkCodec_Decode(f *testing.F) {
	// Add seed corpus
	f.Add([]byte{}, uint8(4))
	f.Add([]byte{1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3}, uint8(4))
	f.Add([]byte{1, 2, 3}, uint8(2))
	f.Add(bytes.Repeat([]byte{0xAB}, 40), uint8(20))

	f.Fuzz(func(t *testing.T, data []byte, width uint8) {
		if width == 0 {
			t.Skip("Zero width factories are rejected at construction")
		}
		c := MustNewLinkCodec(handle.FixedFactory{Width: int(width)})

		link, err := c.Decode(data)
		if len(data)%int(width) != 0 {
			if !errors.Is(err, ErrMalformedLink) {
				t.Fatalf("Expected ErrMalformedLink for len=%d width=%d, got %v", len(data), width, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("Decode failed for aligned value len=%d width=%d: %v", len(data), width, err)
		}
		if len(link) != len(data)/int(width) {
			t.Fatalf("Handle count mismatch: got %d, want %d", len(link), len(data)/int(width))
		}

		encoded, err := c.Encode(link)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		if !bytes.Equal(encoded, data) {
			t.Errorf("Round trip mismatch: got %v, want %v", encoded, data)
		}
	})
}

// FuzzLinkCodec_RoundTrip encodes random handle lists and decodes them back
func FuzzLinkCodec_RoundTrip(f *testing.F) {
	f.Add([]byte("0123456789abcdefghij0123456789abcdefghij"), uint8(3))
	f.Add([]byte{}, uint8(0))

	c := MustNewLinkCodec(handle.KSUIDFactory{})

	f.Fuzz(func(t *testing.T, seed []byte, count uint8) {
		link := make([]handle.Handle, count)
		for i := range link {
			buf := make([]byte, c.HandleSize())
			for j := range buf {
				if len(seed) > 0 {
					buf[j] = seed[(i*c.HandleSize()+j)%len(seed)]
				}
			}
			h, err := c.Factory().MakeHandle(buf, 0)
			if err != nil {
				t.Fatalf("MakeHandle failed: %v", err)
			}
			link[i] = h
		}

		encoded, err := c.Encode(link)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		decoded, err := c.Decode(encoded)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if len(decoded) != len(link) {
			t.Fatalf("Link length mismatch: got %d, want %d", len(decoded), len(link))
		}
		for i := range link {
			if !handle.Equal(decoded[i], link[i]) {
				t.Errorf("Handle %d mismatch", i)
			}
		}
	})
}
