// Package inode implements the in-memory INode/Block/SubBlock model and its
// binary (de)serialization, per spec.md §3 and §4.3.
package inode

import (
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes files from directories.
type Kind uint8

const (
	File      Kind = 0
	Directory Kind = 1
)

// CurrentVersion is the binary format version written by Marshal.
const CurrentVersion uint8 = 1

// SubBlock is the physical write unit within a Block: one column holding a
// snappy-compressed payload. SubBlocks are ordered within their Block by
// Offset.
type SubBlock struct {
	ID     uuid.UUID
	Offset uint64
	Length uint64
}

// Block is a logical file segment (typically 128 MiB) identified by a
// time-based UUID and composed of one or more SubBlocks. Blocks are ordered
// within a file by Offset; consecutive blocks must satisfy
// B[i+1].Offset == B[i].Offset + B[i].Length.
type Block struct {
	ID        uuid.UUID
	Offset    uint64
	Length    uint64
	SubBlocks []SubBlock
}

// INode is the metadata record for a file or directory.
type INode struct {
	Path          string
	Kind          Kind
	User          string
	Group         string
	Permissions   uint16
	Replication   uint8
	BlockSize     uint64
	ATime         time.Time
	MTime         time.Time
	Blocks        []Block
	// Timestamp is the logical write timestamp of the storing column, set by
	// the store on read; it is not part of the wire format.
	Timestamp int64
}

// ParentPath returns the canonical parent path of an INode's Path, or the
// literal "null" for the root, matching the parent_path column contract of
// spec.md §3.
func ParentPath(path string) string {
	if path == "/" {
		return "null"
	}
	idx := lastSlash(path)
	if idx <= 0 {
		return "/"
	}
	return path[:idx]
}

func lastSlash(path string) int {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return i
		}
	}
	return -1
}

// NewDirectory builds a zero-block directory INode.
func NewDirectory(path, user, group string, perm uint16) *INode {
	now := time.Now()
	return &INode{
		Path:        path,
		Kind:        Directory,
		User:        user,
		Group:       group,
		Permissions: perm,
		ATime:       now,
		MTime:       now,
	}
}

// TotalLength returns the sum of all Block lengths, i.e. the file size.
func (n *INode) TotalLength() uint64 {
	var total uint64
	for _, b := range n.Blocks {
		total += b.Length
	}
	return total
}
