package codec

import (
	"bytes"
	"sync"
	"testing"

	"github.com/ssargent/freyjalink/pkg/handle"
)

func TestLinkCodec_ConcurrentUse(t *testing.T) {
	f := handle.KSUIDFactory{}
	c := MustNewLinkCodec(f)

	const numGoroutines = 16
	const opsPerGoroutine = 200

	var wg sync.WaitGroup
	errs := make(chan string, numGoroutines)

	for g := 0; g < numGoroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < opsPerGoroutine; i++ {
				link := make([]handle.Handle, (g+i)%5)
				for j := range link {
					link[j] = f.New()
				}
				encoded, err := c.Encode(link)
				if err != nil {
					errs <- err.Error()
					return
				}
				decoded, err := c.Decode(encoded)
				if err != nil {
					errs <- err.Error()
					return
				}
				reencoded, err := c.Encode(decoded)
				if err != nil {
					errs <- err.Error()
					return
				}
				if !bytes.Equal(encoded, reencoded) {
					errs <- "round trip mismatch"
					return
				}
			}
		}(g)
	}

	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}
