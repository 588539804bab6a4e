package order

import (
	"sync"
	"testing"
)

func TestConfirmationSource_Range(t *testing.T) {
	source := newConfirmationSource()

	for i := 0; i < 1000; i++ {
		n := source.Next()
		if n < 0 || n >= confirmationNumberBound {
			t.Fatalf("confirmation number %d out of range", n)
		}
	}
}

func TestConfirmationSource_Concurrent(t *testing.T) {
	source := newConfirmationSource()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_ = source.Next()
			}
		}()
	}
	wg.Wait()
}
