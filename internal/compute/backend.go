package compute

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/san-kum/ndspace/internal/logging"
)

// ChunkFunc processes flat indices [start, end).
type ChunkFunc func(ctx context.Context, start, end uint) error

type Backend interface {
	Name() string
	Available() bool
	// Dispatch splits [0, total) into chunks and calls fn once per chunk.
	Dispatch(ctx context.Context, total uint, fn ChunkFunc) error
	Cleanup()
}

var (
	backendMu     sync.RWMutex
	activeBackend Backend
)

func init() {
	activeBackend = AutoSelectBackend()
}

// SetBackend replaces the active backend, cleaning up the previous one.
// A nil backend re-runs auto selection.
func SetBackend(b Backend) {
	if b == nil {
		b = AutoSelectBackend()
	}
	backendMu.Lock()
	defer backendMu.Unlock()
	if activeBackend != nil && activeBackend != b {
		activeBackend.Cleanup()
	}
	activeBackend = b
	logging.Logger().Debug("compute: backend set", "backend", b.Name())
}

func GetBackend() Backend {
	backendMu.RLock()
	defer backendMu.RUnlock()
	return activeBackend
}

// AutoSelectBackend prefers the CPU backend when more than one core is
// available, else the serial backend.
func AutoSelectBackend() Backend {
	if runtime.NumCPU() > 1 {
		return NewCPUBackend()
	}
	return NewSerialBackend()
}

// NewBackend builds a backend by name: "auto", "cpu" or "serial".
// workers and minChunk only apply to "cpu"; zero keeps the defaults.
func NewBackend(name string, workers int, minChunk uint) (Backend, error) {
	switch name {
	case "", "auto":
		return AutoSelectBackend(), nil
	case "cpu":
		if workers <= 0 {
			workers = runtime.NumCPU()
		}
		b := NewCPUBackendWithWorkers(workers)
		if minChunk > 0 {
			b.SetMinChunk(minChunk)
		}
		return b, nil
	case "serial":
		return NewSerialBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
