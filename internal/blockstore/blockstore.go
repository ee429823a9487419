// Package blockstore implements the block read path (spec.md §4.4) and
// block write path (spec.md §4.5): resolving a (block, sub-block, offset)
// triple to a byte stream, preferring a local memory-mapped replica over a
// remote RPC fetch, and compressing sub-block payloads on write.
package blockstore

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"github.com/brisk/cfs/internal/codec"
	"github.com/brisk/cfs/internal/columnstore"
	"github.com/brisk/cfs/internal/inode"
)

// ErrMissingBlock is returned when the column store has no column for the
// requested sub-block.
var ErrMissingBlock = errors.New("blockstore: missing block")

// Store resolves sub-block reads and writes against a column store.
type Store struct {
	Client   columnstore.Client
	Codec    *codec.Context
	Pool     string // "sblocks" or "sblocks_archive"
	Hostname string // locality hint passed to get_sub_block
	Level    columnstore.ConsistencyLevel
}

// Open resolves block/sub-block/byteOffset to a readable stream, per
// spec.md §4.4:
//  1. get_sub_block is issued with a locality hint (s.Hostname).
//  2. a local-block descriptor is memory-mapped and treated as the
//     compressed input;
//  3. a remote payload is treated as the compressed input directly;
//  4. the result is decompressed through s.Codec;
//  5. if byteOffset > 0, the reader is advanced by that many bytes.
//
// The caller owns closing the returned stream. A mapped region is unmapped
// before Open returns, once its decompressed contents have been copied out;
// closing the stream releases nothing further.
func (s *Store) Open(ctx context.Context, block inode.Block, sub inode.SubBlock, byteOffset int64) (io.ReadCloser, error) {
	payload, err := s.Client.GetSubBlock(ctx, s.Hostname, blockRowKey(block), subBlockColumn(sub), s.Pool)
	if err != nil {
		return nil, xerrors.Errorf("blockstore: open: %w", err)
	}
	if payload == nil {
		return nil, ErrMissingBlock
	}

	var compressed []byte
	var release func() error

	if payload.Local != nil {
		mapped, unmap, err := mmapRange(payload.Local.FilePath, payload.Local.Offset, payload.Local.Length)
		if err != nil {
			// A referenced local file that does not exist indicates a
			// replica-loss bug upstream; this is fatal, per spec.md §4.4.
			return nil, xerrors.Errorf("blockstore: local replica file %s missing or unreadable: %w", payload.Local.FilePath, err)
		}
		compressed = mapped
		release = unmap
	} else if payload.Remote != nil {
		compressed = payload.Remote
		release = func() error { return nil }
	} else {
		return nil, ErrMissingBlock
	}

	// DecompressCopy copies the decompressed bytes out while s.Codec's
	// mutex is still held, so a concurrent Open sharing this Store's Codec
	// cannot overwrite the shared buffer before the copy completes.
	out, err := s.Codec.DecompressCopy(compressed)
	if err != nil {
		release()
		return nil, xerrors.Errorf("blockstore: decompress: %w", err)
	}
	if err := release(); err != nil {
		return nil, xerrors.Errorf("blockstore: release: %w", err)
	}

	if byteOffset > 0 {
		if byteOffset > int64(len(out)) {
			byteOffset = int64(len(out))
		}
		out = out[byteOffset:]
	}
	return &memReader{data: out}, nil
}

// StoreSubBlock compresses payload and writes it under its parent block's
// row, per spec.md §4.5.
func (s *Store) StoreSubBlock(ctx context.Context, parentBlockID []byte, sub inode.SubBlock, payload []byte) error {
	// CompressCopy copies the compressed bytes out while s.Codec's mutex is
	// still held, so a concurrent StoreSubBlock sharing this Store's Codec
	// cannot overwrite them first.
	value := s.Codec.CompressCopy(payload)
	if err := s.Client.Insert(ctx, parentBlockID, s.Pool, subBlockColumn(sub), value, nowMillis(), s.Level); err != nil {
		return xerrors.Errorf("blockstore: store_sub_block: %w", err)
	}
	return nil
}

// PrefetchBlock opens every sub-block of block concurrently and returns
// their decompressed contents in sub-block order. It is a warm-up path for
// sequential readers that know they will need the whole block: each
// sub-block fetch and decompression runs in its own goroutine, and each
// gets its own codec.Context so no buffer is shared across goroutines.
func (s *Store) PrefetchBlock(ctx context.Context, block inode.Block) ([][]byte, error) {
	out := make([][]byte, len(block.SubBlocks))
	g, ctx := errgroup.WithContext(ctx)
	for i, sub := range block.SubBlocks {
		i, sub := i, sub
		g.Go(func() error {
			store := &Store{Client: s.Client, Codec: s.Codec.Clone(), Pool: s.Pool, Hostname: s.Hostname, Level: s.Level}
			rc, err := store.Open(ctx, block, sub, 0)
			if err != nil {
				return err
			}
			defer rc.Close()
			data, err := io.ReadAll(rc)
			if err != nil {
				return xerrors.Errorf("blockstore: prefetch sub-block %s: %w", sub.ID, err)
			}
			out[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func blockRowKey(b inode.Block) []byte {
	return uuidHex(b.ID[:])
}

func subBlockColumn(sb inode.SubBlock) []byte {
	return uuidHex(sb.ID[:])
}

// memReader adapts a byte slice to io.ReadCloser.
type memReader struct {
	data []byte
	pos  int
}

func (r *memReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func (r *memReader) Close() error { return nil }
