package blockstore

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/xerrors"
)

// mmapRange memory-maps the exact [offset, offset+length) extent of the
// file at path read-only and returns it along with a function that unmaps
// it. This is the fast path of spec.md §4.4: when the co-located replica
// holds the requested sub-block on its local SSTable, the store avoids an
// RPC payload copy entirely.
func mmapRange(path string, offset, length int64) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, xerrors.Errorf("mmap: open %s: %w", path, err)
	}
	defer f.Close()

	pageSize := int64(os.Getpagesize())
	alignedOffset := (offset / pageSize) * pageSize
	pad := offset - alignedOffset

	data, err := unix.Mmap(int(f.Fd()), alignedOffset, int(length+pad), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, xerrors.Errorf("mmap: mmap %s [%d,%d): %w", path, offset, offset+length, err)
	}

	extent := data[pad : pad+length]
	unmap := func() error {
		return unix.Munmap(data)
	}
	return extent, unmap, nil
}
