// Package warmup pre-exercises analyzers so that first-request latency
// is not paid by a real caller: pools fill, the scheduler spreads
// goroutines, and code paths get JIT-free but cache-warm.
package warmup

import (
	"runtime"
	"sync"
	"time"

	"github.com/baditaflorin/go_document_similarity/internal/ports"
)

// Config defines how aggressively the system is warmed up.
type Config struct {
	// Concurrency is the number of goroutines running warm-up rounds.
	Concurrency int
	// Iterations is the number of rounds per goroutine.
	Iterations int
	// ForceGC triggers a garbage collection after warm-up so request
	// traffic starts from a clean heap.
	ForceGC bool
}

// DefaultConfig returns the default warm-up configuration.
func DefaultConfig() Config {
	return Config{
		Concurrency: runtime.NumCPU(),
		Iterations:  25,
		ForceGC:     true,
	}
}

// Manager runs registered warm-up targets.
type Manager struct {
	logger  ports.Logger
	config  Config
	targets []func()
}

// NewManager creates a warm-up manager.
func NewManager(logger ports.Logger, config Config) *Manager {
	return &Manager{logger: logger, config: config}
}

// Register adds a warm-up target. Targets must be safe for concurrent
// invocation.
func (m *Manager) Register(fn func()) {
	m.targets = append(m.targets, fn)
}

// WarmUp runs every registered target Iterations times on Concurrency
// goroutines and blocks until all rounds complete.
func (m *Manager) WarmUp() {
	start := time.Now()

	var wg sync.WaitGroup
	for g := 0; g < m.config.Concurrency; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < m.config.Iterations; i++ {
				for _, target := range m.targets {
					target()
				}
			}
		}()
	}
	wg.Wait()

	if m.config.ForceGC {
		runtime.GC()
	}

	m.logger.Debug("Warm-up complete",
		"targets", len(m.targets),
		"concurrency", m.config.Concurrency,
		"iterations", m.config.Iterations,
		"duration", time.Since(start),
	)
}
