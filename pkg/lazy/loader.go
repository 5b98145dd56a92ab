// Package lazy exposes a growing visible prefix of a backing collection,
// revealing more items when an external proximity trigger fires.
package lazy

import (
	"sync"
	"time"
)

const (
	DefaultInitialCount = 3
	DefaultIncrement    = 2
	// DefaultLatency simulates a paginated backend fetch. A real page fetch
	// can replace it by supplying a different Latency.
	DefaultLatency = time.Second
)

// Options configures a Loader. Zero values fall back to the defaults above.
type Options struct {
	InitialCount int
	Increment    int
	Latency      time.Duration
}

// Snapshot is the loader state handed to the rendering layer.
type Snapshot[T any] struct {
	VisibleItems []T  `json:"visibleItems"`
	HasMore      bool `json:"hasMore"`
	IsLoading    bool `json:"isLoading"`
}

// Loader reveals a prefix of its backing collection, growing it by
// Increment per completed load. At most one load is in flight; teardown via
// Close discards any pending completion.
type Loader[T any] struct {
	mu          sync.Mutex
	items       []T
	opts        Options
	loadedCount int
	loading     bool
	gen         uint64
	closed      bool
	done        chan struct{}
	wg          sync.WaitGroup
}

func New[T any](items []T, opts Options) *Loader[T] {
	if opts.InitialCount <= 0 {
		opts.InitialCount = DefaultInitialCount
	}
	if opts.Increment <= 0 {
		opts.Increment = DefaultIncrement
	}
	if opts.Latency <= 0 {
		opts.Latency = DefaultLatency
	}
	l := &Loader[T]{
		items: items,
		opts:  opts,
		done:  make(chan struct{}),
	}
	l.loadedCount = min(opts.InitialCount, len(items))
	return l
}

// Visible returns a copy of the currently revealed prefix.
func (l *Loader[T]) Visible() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, l.loadedCount)
	copy(out, l.items[:l.loadedCount])
	return out
}

func (l *Loader[T]) HasMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadedCount < len(l.items)
}

func (l *Loader[T]) IsLoading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

func (l *Loader[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	visible := make([]T, l.loadedCount)
	copy(visible, l.items[:l.loadedCount])
	return Snapshot[T]{
		VisibleItems: visible,
		HasMore:      l.loadedCount < len(l.items),
		IsLoading:    l.loading,
	}
}

// LoadMore reveals the next chunk after the configured latency. It is a
// no-op while a load is in flight or when the collection is exhausted.
func (l *Loader[T]) LoadMore() {
	l.mu.Lock()
	if l.closed || l.loading || l.loadedCount >= len(l.items) {
		l.mu.Unlock()
		return
	}
	l.loading = true
	gen := l.gen
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		timer := time.NewTimer(l.opts.Latency)
		defer timer.Stop()
		select {
		case <-l.done:
			return
		case <-timer.C:
		}

		l.mu.Lock()
		defer l.mu.Unlock()
		if l.closed || gen != l.gen {
			return
		}
		l.loadedCount = min(l.loadedCount+l.opts.Increment, len(l.items))
		l.loading = false
	}()
}

// Replace swaps the backing collection and resets the revealed prefix to
// InitialCount. A load still in flight against the old collection is
// discarded.
func (l *Loader[T]) Replace(items []T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.gen++
	l.items = items
	l.loadedCount = min(l.opts.InitialCount, len(items))
	l.loading = false
}

// Watch calls LoadMore for every signal on trigger until the channel closes
// or the loader is closed. This is the binding point for the rendering
// layer's sentinel/proximity observer.
func (l *Loader[T]) Watch(trigger <-chan struct{}) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		for {
			select {
			case <-l.done:
				return
			case _, ok := <-trigger:
				if !ok {
					return
				}
				l.LoadMore()
			}
		}
	}()
}

// Close tears the loader down. It blocks until in-flight work has been
// discarded; no state changes after Close returns.
func (l *Loader[T]) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	close(l.done)
	l.mu.Unlock()
	l.wg.Wait()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
