package pattern

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/born-ml/shapeguard/internal/dtype"
)

func TestCacheParsesOnce(t *testing.T) {
	var c Cache
	var calls atomic.Int32
	resolve := func(tok any) (dtype.Spec, bool) {
		calls.Add(1)
		return dtype.Resolve(tok)
	}

	raw := []any{dtype.Int64, 1, 2}
	s1, p1, err := c.Get("Array[int64, 1, 2]", raw, resolve)
	if err != nil {
		t.Fatal(err)
	}
	first := calls.Load()
	s2, p2, err := c.Get("Array[int64, 1, 2]", raw, resolve)
	if err != nil {
		t.Fatal(err)
	}
	if calls.Load() != first {
		t.Error("second lookup should not re-parse")
	}
	if !s1.Equal(s2) || !p1.Equal(p2) {
		t.Error("cached result should equal the first parse")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheCachesFailures(t *testing.T) {
	var c Cache
	raw := []any{Ellipsis, Ellipsis}

	_, _, err1 := c.Get("bad", raw, nil)
	_, _, err2 := c.Get("bad", raw, nil)
	if !errors.Is(err1, ErrMultipleGaps) || !errors.Is(err2, ErrMultipleGaps) {
		t.Errorf("errors = %v, %v", err1, err2)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	var c Cache
	raw := []any{1, Ellipsis, Sym("n")}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				spec, pat, err := c.Get("Array[1, ..., n]", raw, nil)
				if err != nil {
					t.Errorf("Get failed: %v", err)
					return
				}
				if !Matches(spec, pat, Shape{1, 4, 9}, dtype.Float32) {
					t.Error("cached pattern should match")
					return
				}
			}
		}()
	}
	wg.Wait()

	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}
