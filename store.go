package cfs

import (
	"context"
	"errors"
	"io"
	"log"
	"os"

	"golang.org/x/xerrors"

	"github.com/brisk/cfs/internal/blockstore"
	"github.com/brisk/cfs/internal/codec"
	"github.com/brisk/cfs/internal/columnstore"
	"github.com/brisk/cfs/internal/consistency"
	"github.com/brisk/cfs/internal/dirindex"
	"github.com/brisk/cfs/internal/inode"
	"github.com/brisk/cfs/internal/locate"
	"github.com/brisk/cfs/internal/schema"
)

// ErrNotFound is returned for block and sub-block misses (spec.md §4.4,
// §7). A missing INode row is not an error: RetrieveINode returns (nil,
// nil), per spec.md §9's explicit-absence design note.
var ErrNotFound = errors.New("cfs: not found")

// ErrCorrupt wraps a deserialization failure of stored INode or block data.
var ErrCorrupt = errors.New("cfs: corrupt")

// Store is the store layer described in spec.md §6: it translates
// filesystem-shaped operations into rows and columns of one pool (regular
// or archive) of a column store reachable at one URI, and owns the one
// instance-local compression context used by all reads and writes issued
// through it.
type Store struct {
	uri    *URI
	client columnstore.Client
	policy consistency.Policy
	pool   Pool

	codec   *codec.Context
	blocks  *blockstore.Store
	dirs    *dirindex.Lister
	locator *locate.Resolver

	hostname string
}

// New opens a Store against uri, ensuring the schema exists (spec.md §4.2)
// before returning. The returned Store owns a gRPC connection; callers
// must call Close when done, or rely on RegisterAtExit/RunAtExit for
// process-lifetime cleanup.
func New(ctx context.Context, rawURI string, cfg Config) (*Store, error) {
	uri, err := ParseURI(rawURI)
	if err != nil {
		return nil, xerrors.Errorf("cfs.New: %w", err)
	}

	client, err := columnstore.Dial(ctx, uri.Target())
	if err != nil {
		return nil, xerrors.Errorf("cfs.New: dial %s: %w", uri.Target(), err)
	}
	log.Printf("cfs: connected to %s (%s pool)", uri.Target(), uri.Pool)

	if err := schema.EnsureSchema(ctx, client, schema.Params{
		AnalyticsDC: cfg.AnalyticsDC,
		OLTPDC:      cfg.OLTPDC,
		Replication: cfg.Replication,
	}); err != nil {
		client.Close()
		return nil, xerrors.Errorf("cfs.New: ensure schema: %w", err)
	}

	hostname, err := os.Hostname()
	if err != nil {
		client.Close()
		return nil, xerrors.Errorf("cfs.New: resolving local hostname: %w", err)
	}

	return newStore(uri, client, cfg, hostname), nil
}

// newStore wires a Store's internal components from an already-dialed
// client, factored out so tests can inject internal/cfstest's fake client
// without dialing a real gRPC endpoint.
func newStore(uri *URI, client columnstore.Client, cfg Config, hostname string) *Store {
	policy := consistency.New(
		columnstore.ParseConsistencyLevel(cfg.ReadConsistency),
		columnstore.ParseConsistencyLevel(cfg.WriteConsistency),
	)
	c := codec.New()
	return &Store{
		uri:    uri,
		client: client,
		policy: policy,
		pool:   uri.Pool,
		codec:  c,
		blocks: &blockstore.Store{
			Client:   client,
			Codec:    c,
			Pool:     uri.Pool.SubBlockColumnFamily(),
			Hostname: hostname,
			Level:    policy.Write,
		},
		dirs: &dirindex.Lister{
			Client:       client,
			ColumnFamily: uri.Pool.InodeColumnFamily(),
			Level:        policy.Read,
		},
		locator:  &locate.Resolver{Client: client, Keyspace: schema.Keyspace()},
		hostname: hostname,
	}
}

// Close releases the underlying gRPC connection. Idempotent.
func (s *Store) Close() error {
	return s.client.Close()
}

// GetVersion implements the Store contract's getVersion operation.
func (s *Store) GetVersion() string {
	return GetVersion()
}

const inodeDataColumn = "data"

// RetrieveINode looks up path, returning (nil, nil) if no such path exists,
// per spec.md §9's explicit-absence design note.
func (s *Store) RetrieveINode(ctx context.Context, path string) (*inode.INode, error) {
	rowKey := codec.PathKey(path)
	value, timestamp, found, err := consistency.GetWithReadRepair(ctx, s.client, s.policy, rowKey, s.pool.InodeColumnFamily(), []byte(inodeDataColumn))
	if err != nil {
		return nil, xerrors.Errorf("cfs: retrieve_inode(%s): %w", path, err)
	}
	if !found {
		return nil, nil
	}
	n := &inode.INode{}
	if err := n.Unmarshal(path, value); err != nil {
		return nil, xerrors.Errorf("cfs: retrieve_inode(%s): %w: %v", path, ErrCorrupt, err)
	}
	n.Timestamp = timestamp
	return n, nil
}

// StoreINode serializes n and writes its path/parent_path/sentinel/data
// columns in a single batch_mutate, per spec.md §4.3's entry point.
func (s *Store) StoreINode(ctx context.Context, path string, n *inode.INode, timestamp int64) error {
	data, err := n.Marshal()
	if err != nil {
		return xerrors.Errorf("cfs: store_inode(%s): %w", path, err)
	}
	rowKey := codec.PathKey(path)
	mutations := []columnstore.Mutation{
		{Kind: columnstore.SetColumn, Column: []byte("path"), Value: []byte(path), Timestamp: timestamp},
		{Kind: columnstore.SetColumn, Column: []byte("parent_path"), Value: []byte(inode.ParentPath(path)), Timestamp: timestamp},
		{Kind: columnstore.SetColumn, Column: []byte("sentinel"), Value: []byte("x"), Timestamp: timestamp},
		{Kind: columnstore.SetColumn, Column: []byte(inodeDataColumn), Value: data, Timestamp: timestamp},
	}
	row := columnstore.RowMutations{RowKey: rowKey, ColumnFamily: s.pool.InodeColumnFamily(), Mutations: mutations}
	if err := s.client.BatchMutate(ctx, []columnstore.RowMutations{row}, s.policy.Write); err != nil {
		return xerrors.Errorf("cfs: store_inode(%s): %w", path, err)
	}
	return nil
}

// DeleteINode removes path's inode row. Sub-blocks are unaffected; callers
// that also want them gone must call DeleteSubBlocks first, per spec.md
// §6's deletion-orthogonality invariant.
func (s *Store) DeleteINode(ctx context.Context, path string, timestamp int64) error {
	rowKey := codec.PathKey(path)
	if err := s.client.Remove(ctx, rowKey, s.pool.InodeColumnFamily(), nil, timestamp, s.policy.Write); err != nil {
		return xerrors.Errorf("cfs: delete_inode(%s): %w", path, err)
	}
	return nil
}

// RetrieveBlock opens a stream over an entire block starting at byteOffset
// within it, by concatenating its sub-blocks in order. Sub-blocks that end
// at or before byteOffset are not fetched. RetrieveSubBlock opens a single
// sub-block without fetching the ones after it.
func (s *Store) RetrieveBlock(ctx context.Context, block inode.Block, byteOffset int64) (io.ReadCloser, error) {
	var readers []io.Reader
	var closers []io.Closer
	for _, sub := range block.SubBlocks {
		end := sub.Offset + sub.Length
		if uint64(byteOffset) >= end {
			continue
		}
		within := byteOffset - int64(sub.Offset)
		if within < 0 {
			within = 0
		}
		rc, err := s.RetrieveSubBlock(ctx, block, sub, within)
		if err != nil {
			for _, c := range closers {
				c.Close()
			}
			return nil, err
		}
		readers = append(readers, rc)
		closers = append(closers, rc)
	}
	if len(readers) == 0 {
		return nil, ErrNotFound
	}
	return &multiReadCloser{Reader: io.MultiReader(readers...), closers: closers}, nil
}

// multiReadCloser adapts io.MultiReader's concatenation of several
// sub-block streams to a single io.ReadCloser that closes all of them.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var firstErr error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// RetrieveSubBlock opens a stream over one sub-block, per spec.md §4.4.
func (s *Store) RetrieveSubBlock(ctx context.Context, block inode.Block, sub inode.SubBlock, byteOffset int64) (io.ReadCloser, error) {
	rc, err := s.blocks.Open(ctx, block, sub, byteOffset)
	if err != nil {
		if xerrors.Is(err, blockstore.ErrMissingBlock) {
			return nil, ErrNotFound
		}
		return nil, xerrors.Errorf("cfs: retrieve_sub_block: %w", err)
	}
	return rc, nil
}

// StoreSubBlock compresses and writes payload as the column for sub,
// keyed under its parent block's row, per spec.md §4.5.
func (s *Store) StoreSubBlock(ctx context.Context, parentBlockID []byte, sub inode.SubBlock, payload []byte) error {
	if err := s.blocks.StoreSubBlock(ctx, parentBlockID, sub, payload); err != nil {
		return xerrors.Errorf("cfs: store_sub_block: %w", err)
	}
	return nil
}

// DeleteSubBlocks removes every sub-block column of every block in n, per
// spec.md §6. There is no GC of orphaned sub-blocks left by a crashed
// writer; this is accepted per spec.md §3's lifecycle note.
func (s *Store) DeleteSubBlocks(ctx context.Context, n *inode.INode, timestamp int64) error {
	for _, block := range n.Blocks {
		rowKey := codec.UUIDKey(block.ID)
		for _, sub := range block.SubBlocks {
			column := codec.UUIDKey(sub.ID)
			if err := s.client.Remove(ctx, rowKey, s.pool.SubBlockColumnFamily(), column, timestamp, s.policy.Write); err != nil {
				return xerrors.Errorf("cfs: delete_sub_blocks: block %s sub-block %s: %w", block.ID, sub.ID, err)
			}
		}
	}
	return nil
}

// ListSubPaths returns the shallow listing of dir, per spec.md §4.6.
func (s *Store) ListSubPaths(ctx context.Context, dir string) ([]string, error) {
	paths, err := s.dirs.ListSubPaths(ctx, dir)
	if err != nil {
		return nil, xerrors.Errorf("cfs: list_sub_paths(%s): %w", dir, err)
	}
	return paths, nil
}

// ListDeepSubPaths returns the deep listing of dir, per spec.md §4.6.
func (s *Store) ListDeepSubPaths(ctx context.Context, dir string) ([]string, error) {
	paths, err := s.dirs.ListDeepSubPaths(ctx, dir)
	if err != nil {
		return nil, xerrors.Errorf("cfs: list_deep_sub_paths(%s): %w", dir, err)
	}
	return paths, nil
}

// GetBlockLocation resolves blocks to their replica hostnames over the
// byte range [start, start+length), per spec.md §4.8.
func (s *Store) GetBlockLocation(ctx context.Context, blocks []inode.Block, start, length int64) ([]locate.BlockLocation, error) {
	locations, err := s.locator.GetBlockLocations(ctx, blocks, start, length)
	if err != nil {
		return nil, xerrors.Errorf("cfs: get_block_location: %w", err)
	}
	return locations, nil
}
