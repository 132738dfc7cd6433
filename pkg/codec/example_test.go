package codec_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/ssargent/freyjalink/pkg/codec"
	"github.com/ssargent/freyjalink/pkg/handle"
)

// ExampleLinkCodec_basic demonstrates basic link encoding and decoding
func ExampleLinkCodec_basic() {
	c, err := codec.NewLinkCodec(handle.FixedFactory{Width: 4})
	if err != nil {
		log.Fatal(err)
	}

	link := []handle.Handle{
		handle.FixedHandle{1, 1, 1, 1},
		handle.FixedHandle{2, 2, 2, 2},
		handle.FixedHandle{3, 3, 3, 3},
	}

	encoded, err := c.Encode(link)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Encoded: %v\n", encoded)

	decoded, err := c.Decode(encoded)
	if err != nil {
		log.Fatal(err)
	}
	for i, h := range decoded {
		fmt.Printf("Handle %d: %s\n", i, h)
	}

	// Output:
	// Encoded: [1 1 1 1 2 2 2 2 3 3 3 3]
	// Handle 0: 01010101
	// Handle 1: 02020202
	// Handle 2: 03030303
}

// ExampleLinkCodec_errorHandling demonstrates rejection of a misaligned value
func ExampleLinkCodec_errorHandling() {
	c := codec.MustNewLinkCodec(handle.KSUIDFactory{})

	_, err := c.Decode(make([]byte, 30))
	fmt.Println(errors.Is(err, codec.ErrMalformedLink))

	// Output:
	// true
}

// ExampleLinkCodec_DecodeWindow demonstrates decoding a value borrowed from a larger buffer
func ExampleLinkCodec_DecodeWindow() {
	c := codec.MustNewLinkCodec(handle.FixedFactory{Width: 2})

	page := []byte{0xFF, 0xAA, 0xBB, 0xCC, 0xDD, 0xFF}
	w, err := codec.NewWindow(page, 1, 4)
	if err != nil {
		log.Fatal(err)
	}

	link, err := c.DecodeWindow(w)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(link), link[0], link[1])

	// Output:
	// 2 aabb ccdd
}
