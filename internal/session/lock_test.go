package session

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestLocksSerializeSameSession(t *testing.T) {
	locks := NewLocks()
	var inside int32
	var maxInside int32
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locks.Lock(context.Background(), "sid")
			if err != nil {
				t.Errorf("lock: %v", err)
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				cur := atomic.LoadInt32(&maxInside)
				if n <= cur || atomic.CompareAndSwapInt32(&maxInside, cur, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
			unlock()
		}()
	}
	wg.Wait()

	if maxInside != 1 {
		t.Fatalf("expected at most one holder, saw %d", maxInside)
	}
	if locks.Len() != 0 {
		t.Fatalf("expected lock entries to be released, got %d", locks.Len())
	}
}

func TestLockHonoursContext(t *testing.T) {
	locks := NewLocks()
	unlock, err := locks.Lock(context.Background(), "sid")
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := locks.Lock(ctx, "sid"); err == nil {
		t.Fatalf("expected context error while locked")
	}

	other, err := locks.Lock(context.Background(), "other")
	if err != nil {
		t.Fatalf("different session should not block: %v", err)
	}
	other()
}
