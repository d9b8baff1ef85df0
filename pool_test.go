package taskconv

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"testing"
)

func TestConverterPool_AcquireRelease(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(2, WithTitle("Pooled"))

	first := pool.Acquire()
	second := pool.Acquire()
	if first == nil || second == nil {
		t.Fatal("Acquire() returned nil converter")
	}
	if first == second {
		t.Fatal("Acquire() handed out the same converter twice")
	}

	pool.Release(first)
	third := pool.Acquire()
	if third != first {
		t.Error("Acquire() after Release() should recycle the released converter")
	}
}

func TestConverterPool_OptionsReachConverters(t *testing.T) {
	t.Parallel()

	pool := NewConverterPool(1, WithTitle("Pooled"))
	conv := pool.Acquire()
	defer pool.Release(conv)

	out, err := conv.Render(context.Background(), []*Task{{Name: "A"}}, FormatOPML)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(out, "<title>Pooled</title>") {
		t.Errorf("pooled converter ignored its options:\n%s", out)
	}
}

func TestConverterPool_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	const size = 3
	pool := NewConverterPool(size)

	var (
		mu      sync.Mutex
		active  int
		maxSeen int
		wg      sync.WaitGroup
	)
	for i := 0; i < size*4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv := pool.Acquire()
			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			_, _ = conv.Parse(context.Background(), "1. A\n", FormatText)

			mu.Lock()
			active--
			mu.Unlock()
			pool.Release(conv)
		}()
	}
	wg.Wait()

	if maxSeen > size {
		t.Errorf("observed %d concurrent holders, pool size is %d", maxSeen, size)
	}
}

func TestConverterPool_MinimumSize(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -3} {
		if got := NewConverterPool(n).Size(); got != 1 {
			t.Errorf("NewConverterPool(%d).Size() = %d, want 1", n, got)
		}
	}
}

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	if got := ResolvePoolSize(5); got != 5 {
		t.Errorf("ResolvePoolSize(5) = %d, explicit workers should win", got)
	}

	got := ResolvePoolSize(0)
	if got < MinPoolSize || got > MaxPoolSize {
		t.Errorf("ResolvePoolSize(0) = %d, want within [%d, %d]", got, MinPoolSize, MaxPoolSize)
	}

	want := runtime.GOMAXPROCS(0) / 2
	if want < MinPoolSize {
		want = MinPoolSize
	}
	if want > MaxPoolSize {
		want = MaxPoolSize
	}
	if got != want {
		t.Errorf("ResolvePoolSize(0) = %d, want %d for GOMAXPROCS=%d", got, want, runtime.GOMAXPROCS(0))
	}
}
