// Package eval parses and evaluates exact arithmetic expressions. A small
// registry of interchangeable backends mirrors each other's semantics: the
// native backend computes with the exact package, the bigmath backend serves
// as a math/big oracle, and an optional gmp backend (build tag "gmp") brings
// in libgmp. Backends register themselves in init so the set adapts to build
// tags.
package eval

import (
	"context"
	"sort"
	"sync"

	"github.com/agbru/exactcalc/exact"
)

// Result is the outcome of one evaluation.
type Result struct {
	// Canonical is the base-10 "numerator/denominator" rendering, identical
	// across backends and used for cross-checking.
	Canonical string
	// Value is the exact rational, when the backend produces one. Oracles
	// that compute in a foreign representation leave it nil.
	Value *exact.Rational
}

// Evaluator evaluates expressions in one arithmetic implementation.
type Evaluator interface {
	// Name returns the human-readable backend name.
	Name() string
	// Evaluate parses and evaluates expr. The context bounds the work;
	// evaluation checks for cancellation between operations.
	Evaluate(ctx context.Context, expr string) (Result, error)
}

// Factory produces a fresh Evaluator.
type Factory func() Evaluator

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a backend factory under the given key. Backends register
// themselves from init; later registrations with the same key win, which is
// how build tags swap in specialized implementations.
func Register(key string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[key] = f
}

// List returns the sorted registry keys.
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// New instantiates the backend registered under key.
func New(key string) (Evaluator, bool) {
	registryMu.RLock()
	f, ok := registry[key]
	registryMu.RUnlock()
	if !ok {
		return nil, false
	}
	return f(), true
}

// All instantiates every registered backend, keyed by registry name.
func All() map[string]Evaluator {
	out := make(map[string]Evaluator)
	for _, key := range List() {
		if ev, ok := New(key); ok {
			out[key] = ev
		}
	}
	return out
}
