package services

import "sync"

// BusyGuard tracks in-flight operations per key. A key can be held by one
// caller at a time.
type BusyGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewBusyGuard() *BusyGuard {
	return &BusyGuard{held: make(map[string]struct{})}
}

// Acquire marks key busy. It returns a release func, or ErrBusy when the key
// is already held.
func (g *BusyGuard) Acquire(key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.held[key]; ok {
		return nil, ErrBusy
	}
	g.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, nil
}

func (g *BusyGuard) IsBusy(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.held[key]
	return ok
}
