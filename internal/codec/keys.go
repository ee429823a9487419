// Package codec implements the identifier and compression helpers of
// spec.md §4.1: path-to-row-key hashing, UUID-to-row-key encoding, and a
// reusable-buffer snappy compression context.
package codec

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// PathKey returns the hex-encoded row key for an absolute, canonical path:
// the lowercase hexadecimal representation of a deterministic large hash of
// the UTF-8 path, per spec.md §4.1. The hash is treated as a fixed-width
// big integer rendered in hex (sha256, so always 64 hex characters); two
// equal paths produce equal keys, and distinct paths produce distinct keys
// with the probability of the underlying hash.
func PathKey(path string) []byte {
	sum := sha256.Sum256([]byte(path))
	dst := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(dst, sum[:])
	return dst
}

// UUIDKey returns the lowercase hex encoding of the big-endian 16-byte form
// of id, used as a row key for the sblocks* column families.
func UUIDKey(id uuid.UUID) []byte {
	return HexKey(id[:])
}

// HexKey lowercase-hex-encodes b. It underlies UUIDKey and is exported
// directly for callers that already have raw UUID bytes (block and
// sub-block identifiers), so the row-key/column-name encoding used by
// internal/blockstore and internal/locate stays in one place.
func HexKey(b []byte) []byte {
	dst := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(dst, b)
	return dst
}

// NewBlockID generates a version-1 time-based UUID for a new Block or
// SubBlock, per spec.md §3. Column names within an sblocks* row are ordered
// by column name bytes, which for time-based UUIDs generated in write order
// approximates write order.
func NewBlockID() (uuid.UUID, error) {
	return uuid.NewUUID()
}
