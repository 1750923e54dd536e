package listview

import (
	"context"
	"sync"
)

// State is the loading/error pair every fetched collection carries.
// Each collection owns its state independently, so one failed fetch
// never masks or blocks another.
type State struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// Collection couples a Store with its fetch state.
type Collection[R any] struct {
	store *Store[R]

	mu      sync.Mutex
	loading bool
	lastErr string
	loaded  bool
}

func NewCollection[R any](idFn func(R) string) *Collection[R] {
	return &Collection[R]{store: NewStore[R](idFn)}
}

// Store exposes the underlying collection for mutation reconciliation.
func (c *Collection[R]) Store() *Store[R] {
	return c.store
}

// State returns the current loading/error snapshot.
func (c *Collection[R]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{Loading: c.loading, Error: c.lastErr}
}

// Loaded reports whether at least one fetch has completed successfully.
func (c *Collection[R]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Records returns a copy of the collection.
func (c *Collection[R]) Records() []R {
	return c.store.Snapshot()
}

func (c *Collection[R]) begin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = true
	c.lastErr = ""
}

func (c *Collection[R]) complete(records []R) {
	c.store.Replace(records)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	c.lastErr = ""
	c.loaded = true
}

func (c *Collection[R]) fail(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	c.lastErr = msg
}

// Load runs one fetch cycle: mark loading, fetch, then either replace
// the collection or record the error. On failure any previously loaded
// records stay visible — stale data beats a blank page on a transient
// error. The error is also returned for callers that need it.
func (c *Collection[R]) Load(ctx context.Context, fetch func(context.Context) ([]R, error)) error {
	c.begin()
	records, err := fetch(ctx)
	if err != nil {
		c.fail(err.Error())
		return err
	}
	c.complete(records)
	return nil
}
