package compute

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/san-kum/ndspace/internal/nd"
)

func testBackends() []Backend {
	small := NewCPUBackendWithWorkers(4)
	small.SetMinChunk(3)
	return []Backend{
		NewSerialBackend(),
		NewCPUBackendWithWorkers(1),
		small,
		NewCPUBackend(),
	}
}

func TestParallelFor_VisitsEachItemOnce(t *testing.T) {
	r := nd.NewRange3(5, 7, 3)

	for _, b := range testBackends() {
		t.Run(b.Name(), func(t *testing.T) {
			hits := make([]int32, r.Size())
			err := ParallelFor(context.Background(), b, r, func(it nd.Item[nd.R3]) error {
				if !r.Contains(it.ID()) {
					return errors.New("item outside range")
				}
				atomic.AddInt32(&hits[it.LinearID()], 1)
				return nil
			})
			if err != nil {
				t.Fatalf("ParallelFor failed: %v", err)
			}
			for i, h := range hits {
				if h != 1 {
					t.Fatalf("flat %d visited %d times", i, h)
				}
			}
		})
	}
}

func TestParallelForOffset(t *testing.T) {
	r := nd.NewRange2(3, 4)
	off := nd.NewID2(10, 100)

	var sum atomic.Uint64
	err := ParallelForOffset(context.Background(), NewSerialBackend(), r, off, func(it nd.Item[nd.R2]) error {
		if it.Offset() != off {
			return errors.New("offset not carried")
		}
		sum.Add(uint64(it.Get(0)))
		return nil
	})
	if err != nil {
		t.Fatalf("ParallelForOffset failed: %v", err)
	}

	// rows 10, 11, 12 with 4 columns each
	if sum.Load() != 4*(10+11+12) {
		t.Errorf("unexpected row sum %d", sum.Load())
	}
}

func TestParallelFor_KernelError(t *testing.T) {
	boom := errors.New("boom")
	r := nd.NewRange2(4, 5)

	for _, b := range testBackends() {
		t.Run(b.Name(), func(t *testing.T) {
			err := ParallelFor(context.Background(), b, r, func(it nd.Item[nd.R2]) error {
				if it.ID() == nd.NewID2(2, 3) {
					return boom
				}
				return nil
			})
			if !errors.Is(err, boom) {
				t.Fatalf("expected boom, got %v", err)
			}

			var kerr *KernelError
			if !errors.As(err, &kerr) {
				t.Fatalf("expected *KernelError, got %T", err)
			}
			if kerr.Flat != 13 || kerr.Coord != "(2, 3)" {
				t.Errorf("unexpected error position: %+v", kerr)
			}
		})
	}
}

func TestParallelFor_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, b := range testBackends() {
		t.Run(b.Name(), func(t *testing.T) {
			called := false
			err := ParallelFor(ctx, b, nd.NewRange1(4096), func(nd.Item[nd.R1]) error {
				called = true
				return nil
			})
			if !errors.Is(err, context.Canceled) {
				t.Errorf("expected context.Canceled, got %v", err)
			}
			if called {
				t.Error("kernel ran after cancellation")
			}
		})
	}
}

func TestParallelFor_EmptyRange(t *testing.T) {
	err := ParallelFor(context.Background(), NewCPUBackend(), nd.NewRange2(0, 10), func(nd.Item[nd.R2]) error {
		return errors.New("should not run")
	})
	if err != nil {
		t.Errorf("empty range returned %v", err)
	}
}

func TestFill(t *testing.T) {
	r := nd.NewRange2(4, 5)
	out, err := Fill(context.Background(), NewCPUBackendWithWorkers(3), r, func(id nd.ID[nd.R2]) nd.ID[nd.R2] {
		return id
	})
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	if len(out) != 20 {
		t.Fatalf("expected 20 results, got %d", len(out))
	}
	for i, id := range out {
		if nd.Linear(r, id) != uint(i) {
			t.Errorf("out[%d] = %v", i, id)
		}
	}
	if out[13] != nd.NewID2(2, 3) {
		t.Errorf("out[13] = %v", out[13])
	}
}

func TestNewBackend(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"cpu", "cpu"},
		{"serial", "serial"},
	}
	for _, tt := range tests {
		b, err := NewBackend(tt.name, 2, 16)
		if err != nil {
			t.Fatalf("NewBackend(%q) failed: %v", tt.name, err)
		}
		if b.Name() != tt.want {
			t.Errorf("NewBackend(%q).Name() = %q", tt.name, b.Name())
		}
	}

	if b, err := NewBackend("auto", 0, 0); err != nil || b == nil {
		t.Errorf("auto backend: %v, %v", b, err)
	}

	if _, err := NewBackend("cuda", 0, 0); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("expected ErrUnknownBackend, got %v", err)
	}

	b, _ := NewBackend("cpu", 3, 0)
	if cpu, ok := b.(*CPUBackend); !ok || cpu.Workers() != 3 {
		t.Errorf("expected 3-worker cpu backend, got %#v", b)
	}
}

func TestSetBackend(t *testing.T) {
	prev := GetBackend()
	defer SetBackend(prev)

	SetBackend(NewSerialBackend())
	if GetBackend().Name() != "serial" {
		t.Errorf("active backend = %s", GetBackend().Name())
	}

	SetBackend(nil)
	if GetBackend() == nil {
		t.Error("nil should fall back to auto selection")
	}
}
