// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// Buffer holds sensitive bytes in memory that is locked against
// swapping, excluded from core dumps, and zeroed on close. A Buffer
// must not be copied after creation. After Close, any access to the
// contents panics.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	length int
	closed bool
}

// NewFromBytes creates a secret buffer from existing data. The source
// bytes are copied into the protected region and then zeroed in place,
// so the caller's slice no longer holds the secret.
func NewFromBytes(source []byte) (*Buffer, error) {
	if len(source) == 0 {
		return nil, fmt.Errorf("secret: cannot create buffer from empty source")
	}

	data, err := unix.Mmap(-1, 0, len(source), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("secret: mmap failed: %w", err)
	}

	if err := unix.Mlock(data); err != nil {
		unix.Munmap(data)
		return nil, fmt.Errorf("secret: mlock failed: %w", err)
	}

	if err := unix.Madvise(data, unix.MADV_DONTDUMP); err != nil {
		unix.Munlock(data)
		unix.Munmap(data)
		return nil, fmt.Errorf("secret: madvise(MADV_DONTDUMP) failed: %w", err)
	}

	copy(data, source)
	for index := range source {
		source[index] = 0
	}

	return &Buffer{
		data:   data,
		length: len(data),
	}, nil
}

// NewFromString creates a secret buffer from a string. The original
// string cannot be zeroed (Go strings are immutable); callers should
// prefer NewFromBytes when the secret arrives as mutable bytes, such
// as from a terminal read.
func NewFromString(source string) (*Buffer, error) {
	return NewFromBytes([]byte(source))
}

// String returns the buffer contents as a string. The returned string
// is a heap copy outside the protected region; use it only at the
// serialization boundary and let it go out of scope promptly.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		panic("secret: use of closed buffer")
	}
	return string(b.data[:b.length])
}

// Len returns the number of secret bytes held.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		panic("secret: use of closed buffer")
	}
	return b.length
}

// Close zeroes the buffer, unlocks it, and releases the mapping.
// Closing twice is a no-op.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true

	for index := range b.data {
		b.data[index] = 0
	}

	if err := unix.Munlock(b.data); err != nil {
		unix.Munmap(b.data)
		return fmt.Errorf("secret: munlock failed: %w", err)
	}
	if err := unix.Munmap(b.data); err != nil {
		return fmt.Errorf("secret: munmap failed: %w", err)
	}

	b.data = nil
	return nil
}
