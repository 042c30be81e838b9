// Package randutil holds the single random seam shared by question shuffling,
// phrase selection and thinking-delay sampling.
package randutil

import (
	"math/rand"
	"sync"
	"time"
)

// Source is a uniform random source. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// New returns a seeded source. A zero seed draws the seed from the clock.
func New(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Pick returns a uniformly chosen element of items, or the zero value for an empty slice.
func Pick[T any](src Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	if src == nil {
		return items[0]
	}
	return items[src.Intn(len(items))]
}

// Shuffle permutes items in place with Fisher-Yates.
func Shuffle[T any](src Source, items []T) {
	if src == nil {
		return
	}
	for i := len(items) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Between samples a float uniformly from [lo, hi).
func Between(src Source, lo, hi float64) float64 {
	if src == nil || hi <= lo {
		return lo
	}
	return lo + src.Float64()*(hi-lo)
}

type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// Locked wraps src so it can be shared between goroutines.
func Locked(src Source) Source {
	if src == nil {
		return nil
	}
	if l, ok := src.(*lockedSource); ok {
		return l
	}
	return &lockedSource{src: src}
}

func (l *lockedSource) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Intn(n)
}

func (l *lockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}
