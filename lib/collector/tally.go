package collector

import (
	"context"
	"sync"
)

// Tally counts records per product, SDK version and feature.
// It is safe for concurrent use.
type Tally struct {
	mu       sync.Mutex
	total    int
	products map[string]int
	versions map[string]int
	features map[string]int
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{
		products: make(map[string]int),
		versions: make(map[string]int),
		features: make(map[string]int),
	}
}

// Record implements Recorder.
func (t *Tally) Record(_ context.Context, rec Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.total++
	t.products[rec.Product]++
	t.versions[rec.Product+"@"+rec.SDKVersion]++
	if len(rec.Features) == 0 {
		t.features["none"]++
	}
	for _, f := range rec.Features {
		t.features[f]++
	}
	return nil
}

// Snapshot is a point-in-time copy of a Tally.
type Snapshot struct {
	Total    int
	Products map[string]int
	Versions map[string]int // keyed by product@version
	Features map[string]int // "none" counts records without features
}

// Snapshot copies the current counters.
func (t *Tally) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Snapshot{
		Total:    t.total,
		Products: copyCounts(t.products),
		Versions: copyCounts(t.versions),
		Features: copyCounts(t.features),
	}
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
