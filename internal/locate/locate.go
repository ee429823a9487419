// Package locate implements the block-location resolver of spec.md §4.8:
// mapping block row keys to endpoint hostnames for locality-aware
// scheduling.
package locate

import (
	"context"

	"golang.org/x/xerrors"

	"github.com/brisk/cfs/internal/codec"
	"github.com/brisk/cfs/internal/columnstore"
	"github.com/brisk/cfs/internal/inode"
)

// BlockLocation is one block's placement, per spec.md §4.8.
type BlockLocation struct {
	Hosts  []string
	Offset uint64
	Length uint64
}

// Resolver resolves Block lists to their replica hostnames.
type Resolver struct {
	Client   columnstore.Client
	Keyspace string
}

// GetBlockLocations issues one batched endpoint-discovery RPC over blocks'
// row keys and returns per-block (hosts, offset, length), where the first
// block's effective offset is clamped up to start so a scheduler can split
// input splits precisely at byte boundaries, per spec.md §4.8.
func (r *Resolver) GetBlockLocations(ctx context.Context, blocks []inode.Block, start, length int64) ([]BlockLocation, error) {
	if len(blocks) == 0 {
		return nil, nil
	}

	rowKeys := make([][]byte, len(blocks))
	for i, b := range blocks {
		rowKeys[i] = codec.HexKey(b.ID[:])
	}

	hosts, err := r.Client.DescribeKeys(ctx, r.Keyspace, rowKeys)
	if err != nil {
		return nil, xerrors.Errorf("locate: describe_keys: %w", err)
	}
	if len(hosts) != len(blocks) {
		return nil, xerrors.Errorf("locate: describe_keys returned %d host lists for %d blocks", len(hosts), len(blocks))
	}

	end := start + length
	locations := make([]BlockLocation, 0, len(blocks))
	for i, b := range blocks {
		blockEnd := b.Offset + b.Length
		if int64(blockEnd) <= start || int64(b.Offset) >= end {
			continue
		}
		offset := b.Offset
		if len(locations) == 0 && start > int64(offset) {
			offset = uint64(start)
		}
		locations = append(locations, BlockLocation{
			Hosts:  hosts[i],
			Offset: offset,
			Length: b.Length,
		})
	}
	return locations, nil
}
