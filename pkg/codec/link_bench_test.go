//go:build bench
// +build bench

package codec

import (
	"testing"

	"github.com/ssargent/freyjalink/pkg/handle"
)

func benchLinks(f handle.Generator) []struct {
	name string
	link []handle.Handle
} {
	makeLink := func(n int) []handle.Handle {
		link := make([]handle.Handle, n)
		for i := range link {
			link[i] = f.New()
		}
		return link
	}
	return []struct {
		name string
		link []handle.Handle
	}{
		{name: "binary", link: makeLink(2)},
		{name: "medium", link: makeLink(16)},
		{name: "large", link: makeLink(1024)},
	}
}

func BenchmarkLinkCodec_Encode(b *testing.B) {
	f := handle.KSUIDFactory{}
	c := MustNewLinkCodec(f)

	for _, bm := range benchLinks(f) {
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := c.Encode(bm.link); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkLinkCodec_Decode(b *testing.B) {
	f := handle.KSUIDFactory{}
	c := MustNewLinkCodec(f)

	for _, bm := range benchLinks(f) {
		encoded, err := c.Encode(bm.link)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(bm.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(encoded)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := c.Decode(encoded); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkLinkCodec_DecodeEmpty(b *testing.B) {
	c := MustNewLinkCodec(handle.KSUIDFactory{})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := c.Decode(nil); err != nil {
			b.Fatal(err)
		}
	}
}
