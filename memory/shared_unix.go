//go:build unix

package memory

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const pageSize = 65536

// SharedMemory is an anonymous mmap-backed buffer standing in for the
// guest's WASM linear memory outside of an actual WASM host. It exists for
// cmd/domvm and for tests that want to exercise the interpreter against a
// real shared buffer rather than a plain Go slice — the interpreter itself
// only requires something that exposes a contiguous byte buffer, which a
// bare []byte already satisfies, so this type is deliberately not part of
// the changelist package's public API.
type SharedMemory struct {
	bytes []byte
}

// NewSharedMemory allocates a shared memory buffer of the given number of
// 64KiB pages, mirroring the page granularity of WASM linear memory.
func NewSharedMemory(pages int) (*SharedMemory, error) {
	if pages <= 0 {
		return nil, fmt.Errorf("memory: pages must be positive, got %d", pages)
	}
	b, err := unix.Mmap(-1, 0, pages*pageSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("memory: mmap: %w", err)
	}
	return &SharedMemory{bytes: b}, nil
}

// Bytes returns the backing buffer.
func (s *SharedMemory) Bytes() []byte { return s.bytes }

// View returns a read-only View over the buffer.
func (s *SharedMemory) View() View { return NewView(s.bytes) }

// Close unmaps the buffer. The SharedMemory must not be used afterward.
func (s *SharedMemory) Close() error {
	if s.bytes == nil {
		return nil
	}
	err := unix.Munmap(s.bytes)
	s.bytes = nil
	return err
}
