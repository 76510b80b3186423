package service

import "context"

// ExtractPool bounds concurrent document extraction. Every request runs
// on its own goroutine already; the pool caps how many of them may do
// CPU-bound text work at once, so one burst of slow documents cannot
// starve unrelated requests. Scoring is a single fast call and stays
// inline.
type ExtractPool struct {
	sem chan struct{}
}

// NewExtractPool creates a pool with the given number of slots.
func NewExtractPool(size int) *ExtractPool {
	if size <= 0 {
		size = 1
	}
	return &ExtractPool{sem: make(chan struct{}, size)}
}

// Run executes fn once a slot is free, or gives up when ctx is done
// while waiting.
func (p *ExtractPool) Run(ctx context.Context, fn func() error) error {
	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-p.sem }()
	return fn()
}
