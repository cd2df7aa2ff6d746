package compute

import "context"

// SerialBackend visits every index in order on the calling goroutine.
type SerialBackend struct{}

func NewSerialBackend() *SerialBackend { return &SerialBackend{} }

func (s *SerialBackend) Name() string    { return "serial" }
func (s *SerialBackend) Available() bool { return true }
func (s *SerialBackend) Cleanup()        {}

func (s *SerialBackend) Dispatch(ctx context.Context, total uint, fn ChunkFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if total == 0 {
		return nil
	}
	return fn(ctx, 0, total)
}
