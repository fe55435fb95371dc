package url2pdf

import (
	"runtime"
	"sync"
	"testing"
	"time"
)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	gomaxprocs := runtime.GOMAXPROCS(0)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{
			name:    "explicit takes priority",
			workers: 4,
			want:    4,
		},
		{
			name:    "explicit=1 for sequential",
			workers: 1,
			want:    1,
		},
		{
			name:    "zero uses auto calculation",
			workers: 0,
			want:    min(max(gomaxprocs/cpuDivisor, MinPoolSize), MaxPoolSize),
		},
		{
			name:    "explicit can exceed max",
			workers: 16,
			want:    16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolvePoolSize(tt.workers)
			if got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

func TestServicePool_AcquireRelease(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(2)
	defer pool.Close()

	svc1 := pool.Acquire()
	if svc1 == nil {
		t.Fatal("Acquire() returned nil")
	}

	svc2 := pool.Acquire()
	if svc2 == nil {
		t.Fatal("Acquire() returned nil")
	}

	if svc1 == svc2 {
		t.Error("expected different service instances")
	}

	pool.Release(svc1)
	svc3 := pool.Acquire()

	if svc3 != svc1 {
		t.Error("expected to get back released service")
	}

	pool.Release(svc2)
	pool.Release(svc3)
}

func TestServicePool_BlocksWhenExhausted(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(1)
	defer pool.Close()

	svc := pool.Acquire()

	acquired := make(chan *Service)
	go func() {
		acquired <- pool.Acquire()
	}()

	select {
	case <-acquired:
		t.Fatal("Acquire() did not block on exhausted pool")
	case <-time.After(50 * time.Millisecond):
	}

	pool.Release(svc)

	select {
	case got := <-acquired:
		if got != svc {
			t.Error("expected the released service")
		}
	case <-time.After(time.Second):
		t.Fatal("Acquire() still blocked after release")
	}
}

func TestServicePool_MinimumSize(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(0)
	defer pool.Close()

	if pool.Size() != 1 {
		t.Errorf("Size() = %d, want 1", pool.Size())
	}
}

func TestServicePool_PassesOptions(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(1, WithMaxAttempts(7), WithRetryDelay(0))
	defer pool.Close()

	svc := pool.Acquire()
	defer pool.Release(svc)

	if svc.cfg.maxAttempts != 7 {
		t.Errorf("maxAttempts = %d, want 7", svc.cfg.maxAttempts)
	}
	if svc.cfg.retryDelay != 0 {
		t.Errorf("retryDelay = %v, want 0", svc.cfg.retryDelay)
	}
}

func TestServicePool_CloseIdempotent(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(2)
	_ = pool.Acquire()

	if err := pool.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := pool.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestServicePool_ConcurrentAcquire(t *testing.T) {
	t.Parallel()

	pool := NewServicePool(4)
	defer pool.Close()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc := pool.Acquire()
			time.Sleep(time.Millisecond)
			pool.Release(svc)
		}()
	}
	wg.Wait()
}
