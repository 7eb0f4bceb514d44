// Package registry provides a process-wide lookup table mapping identity
// tokens to live profiles. Entries hold weak references: registration never
// extends a profile's lifetime, and entries for collected profiles vanish
// on their own.
package registry

import (
	"runtime"
	"sync"
	"weak"

	"profilekit/pkg/profile/models"
)

// Registry maps identity tokens to weak references. Construct one per
// process (or per test) and share it explicitly; register and lookup are
// safe to call from multiple goroutines.
type Registry struct {
	mu      sync.Mutex
	entries map[uint64]weak.Pointer[models.Profile]
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[uint64]weak.Pointer[models.Profile])}
}

// Register stores a weak reference to p under its identity token,
// overwriting any prior entry for that token. Once p is collected the entry
// is removed by a runtime cleanup, so dead tokens do not accumulate.
func (r *Registry) Register(p *models.Profile) {
	token := p.ID()

	r.mu.Lock()
	_, seen := r.entries[token]
	r.entries[token] = weak.Make(p)
	r.mu.Unlock()

	// Identity tokens are never reused, so one cleanup per profile
	// suffices no matter how many times it is re-registered.
	if !seen {
		runtime.AddCleanup(p, r.remove, token)
	}
}

// Lookup returns the profile registered under token if it is still alive.
// Missing and collected entries both yield (nil, false); lookups never fail.
func (r *Registry) Lookup(token uint64) (*models.Profile, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wp, ok := r.entries[token]
	if !ok {
		return nil, false
	}
	p := wp.Value()
	if p == nil {
		// Collected but the cleanup has not run yet; prune in place.
		delete(r.entries, token)
		return nil, false
	}
	return p, true
}

// Len reports the number of entries currently held, live or not yet pruned.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry) remove(token uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, token)
}
