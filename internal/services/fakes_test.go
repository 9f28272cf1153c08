package services

import (
	"context"
	"sync"
	"sync/atomic"
)

// fakeGemini answers every prompt with text or err. When block is set each
// call waits on it (or on ctx) after signalling started.
type fakeGemini struct {
	text    string
	err     error
	block   chan struct{}
	started chan struct{}

	calls atomic.Int32

	mu      sync.Mutex
	prompts []string
	configs []GenerationConfig
}

func (f *fakeGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return []float32{0.1, 0.2, 0.3}, nil
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	f.calls.Add(1)

	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.configs = append(f.configs, cfg)
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.text, f.err
}

func (f *fakeGemini) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

// fixedRand always returns the same offsets, so fallbacks are predictable.
type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) IntN(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

func (r fixedRand) Float64() float64 { return r.f }

type fakeKnowledge struct {
	context string
	queries []string
}

func (k *fakeKnowledge) Retrieve(ctx context.Context, query string, docTypes []string) string {
	k.queries = append(k.queries, query)
	return k.context
}
