package codec

import (
	"sync"

	"github.com/golang/snappy"
)

// Context holds the two reusable buffers described in spec.md §4.1: one
// instance per Store, grown lazily to fit the largest sub-block seen so far.
// A slice returned by Compress or Decompress is only valid until the next
// call on the same Context; callers that need to retain it must copy.
//
// All methods are safe for concurrent use: they serialize on an internal
// mutex, per spec.md §5's single compression-buffer guard. Callers wanting
// higher parallelism should use one Context per goroutine rather than
// removing the guard.
type Context struct {
	mu              sync.Mutex
	compressedBuf   []byte
	uncompressedBuf []byte
}

// New returns a Context with empty (zero-capacity) buffers.
func New() *Context {
	return &Context{}
}

// Clone returns a fresh Context with its own buffers, for callers that
// fan sub-block work out across goroutines and need one Context per
// goroutine (buffers are never shared, per spec.md §5).
func (c *Context) Clone() *Context {
	return New()
}

// Compress returns the snappy-compressed form of input. The returned slice
// aliases c's internal buffer and is invalidated by the next Compress or
// Decompress call on c.
func (c *Context) Compress(input []byte) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.compressLocked(input)
}

// CompressCopy is Compress followed by a copy into a freshly allocated
// slice, both done while c's mutex is held, so a concurrent caller
// sharing c cannot overwrite the bytes being copied out before the copy
// completes (the failure mode an unlocked copy-after-Compress has).
func (c *Context) CompressCopy(input []byte) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]byte(nil), c.compressLocked(input)...)
}

func (c *Context) compressLocked(input []byte) []byte {
	maxLen := snappy.MaxEncodedLen(len(input))
	if cap(c.compressedBuf) < maxLen {
		c.compressedBuf = make([]byte, maxLen)
	}
	out := snappy.Encode(c.compressedBuf[:maxLen], input)
	c.compressedBuf = out
	return out
}

// Decompress returns the decompressed form of input. If input is not a
// valid snappy frame, it is returned unchanged: this is the back-compat
// path for legacy sub-blocks written before compression was enabled
// (spec.md §4.1). The returned slice aliases c's internal buffer, per the
// Context doc comment; callers that need to retain it past another call
// on c must copy, or use DecompressCopy.
func (c *Context) Decompress(input []byte) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.decompressLocked(input)
}

// DecompressCopy is Decompress followed by a copy into a freshly
// allocated slice, both done while c's mutex is held. Callers that must
// retain the result past the point where a concurrent goroutine sharing
// c could call Compress or Decompress (and overwrite c's buffer before an
// unlocked copy runs) should use this instead of copying after a plain
// Decompress call.
func (c *Context) DecompressCopy(input []byte) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out, err := c.decompressLocked(input)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), out...), nil
}

func (c *Context) decompressLocked(input []byte) ([]byte, error) {
	n, err := snappy.DecodedLen(input)
	if err != nil {
		return input, nil
	}
	if cap(c.uncompressedBuf) < n {
		c.uncompressedBuf = make([]byte, n)
	}
	out, err := snappy.Decode(c.uncompressedBuf[:n], input)
	if err != nil {
		return input, nil
	}
	c.uncompressedBuf = out
	return out, nil
}
