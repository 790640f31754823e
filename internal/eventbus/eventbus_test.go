// ABOUTME: Tests for the typed event bus
// ABOUTME: Covers delivery order, unsubscribe during publish, and concurrent use

package eventbus

import (
	"slices"
	"sync"
	"testing"
)

func TestBus_DeliversInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	b := New[int]()
	var got []string
	b.Subscribe(func(v int) { got = append(got, "a") })
	b.Subscribe(func(v int) { got = append(got, "b") })
	b.Subscribe(func(v int) { got = append(got, "c") })

	b.Publish(1)
	if want := []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	t.Parallel()

	b := New[string]()
	calls := 0
	unsub := b.Subscribe(func(string) { calls++ })
	b.Publish("x")
	unsub()
	unsub()
	b.Publish("y")

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if n := b.Count(); n != 0 {
		t.Errorf("Count = %d, want 0", n)
	}
}

func TestBus_UnsubscribeDuringPublish(t *testing.T) {
	t.Parallel()

	b := New[int]()
	var second int
	var unsubSecond func()
	b.Subscribe(func(int) { unsubSecond() })
	unsubSecond = b.Subscribe(func(int) { second++ })

	b.Publish(1)
	b.Publish(2)
	if second != 1 {
		t.Errorf("second handler calls = %d, want 1 (removed after first publish)", second)
	}
}

func TestBus_NilHandlerIgnored(t *testing.T) {
	t.Parallel()

	b := New[int]()
	unsub := b.Subscribe(nil)
	b.Publish(1)
	unsub()
	if n := b.Count(); n != 0 {
		t.Errorf("Count = %d, want 0", n)
	}
}

func TestBus_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	b := New[int]()
	var (
		mu    sync.Mutex
		total int
	)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unsub := b.Subscribe(func(v int) {
				mu.Lock()
				total += v
				mu.Unlock()
			})
			for j := 0; j < 50; j++ {
				b.Publish(1)
			}
			unsub()
		}()
	}
	wg.Wait()

	if n := b.Count(); n != 0 {
		t.Errorf("Count = %d, want 0", n)
	}
	if total == 0 {
		t.Error("no events delivered")
	}
}
