package blockstore

import (
	"context"
	"crypto/md5"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/brisk/cfs/internal/codec"
	"github.com/brisk/cfs/internal/columnstore"
	"github.com/brisk/cfs/internal/inode"
)

// fakeClient implements columnstore.Client with an in-memory column table
// and an optional local-replica directory, enough to exercise the block
// read/write path without a real cluster.
type fakeClient struct {
	columnstore.Client // nil embedding: only the methods below are used

	columns map[string]map[string][]byte // columnFamily -> rowKey|column -> value
	localDir string
}

func newFakeClient() *fakeClient {
	return &fakeClient{columns: map[string]map[string][]byte{}}
}

func (f *fakeClient) Insert(ctx context.Context, rowKey []byte, columnFamily string, column, value []byte, timestamp int64, level columnstore.ConsistencyLevel) error {
	rows, ok := f.columns[columnFamily]
	if !ok {
		rows = map[string][]byte{}
		f.columns[columnFamily] = rows
	}
	rows[string(rowKey)+"|"+string(column)] = value
	return nil
}

func (f *fakeClient) GetSubBlock(ctx context.Context, hostname string, blockRowKey, subBlockColumn []byte, pool string) (*columnstore.SubBlockPayload, error) {
	rows, ok := f.columns[pool]
	if !ok {
		return nil, nil
	}
	value, ok := rows[string(blockRowKey)+"|"+string(subBlockColumn)]
	if !ok {
		return nil, nil
	}
	if f.localDir != "" && hostname == "local" {
		fn := filepath.Join(f.localDir, string(blockRowKey)+"-"+string(subBlockColumn))
		if err := os.WriteFile(fn, value, 0644); err != nil {
			return nil, err
		}
		return &columnstore.SubBlockPayload{Local: &columnstore.LocalBlockDescriptor{
			FilePath: fn,
			Offset:   0,
			Length:   int64(len(value)),
		}}, nil
	}
	return &columnstore.SubBlockPayload{Remote: value}, nil
}

func TestStoreSubBlockThenOpenRemote(t *testing.T) {
	c := newFakeClient()
	s := &Store{Client: c, Codec: codec.New(), Pool: "sblocks", Hostname: "remote-only", Level: columnstore.Quorum}

	blockID, err := uuid.NewUUID()
	if err != nil {
		t.Fatal(err)
	}
	subID, err := uuid.NewUUID()
	if err != nil {
		t.Fatal(err)
	}
	sub := inode.SubBlock{ID: subID, Offset: 0, Length: 1024}
	payload := make([]byte, 1024)
	for i := range payload {
		payload[i] = byte(i % 256)
	}

	if err := s.StoreSubBlock(context.Background(), uuidHex(blockID[:]), sub, payload); err != nil {
		t.Fatal(err)
	}

	block := inode.Block{ID: blockID, Offset: 0, Length: 1024, SubBlocks: []inode.SubBlock{sub}}
	rc, err := s.Open(context.Background(), block, sub, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()

	out := make([]byte, 1024)
	if _, err := readFull(rc, out); err != nil {
		t.Fatal(err)
	}
	if md5.Sum(out) != md5.Sum(payload) {
		t.Fatalf("round trip mismatch")
	}
}

func TestOpenLocalMmapFastPath(t *testing.T) {
	dir := t.TempDir()
	c := newFakeClient()
	c.localDir = dir
	s := &Store{Client: c, Codec: codec.New(), Pool: "sblocks", Hostname: "local", Level: columnstore.Quorum}

	blockID, _ := uuid.NewUUID()
	subID, _ := uuid.NewUUID()
	sub := inode.SubBlock{ID: subID, Offset: 0, Length: 4096}
	payload := make([]byte, 4096)
	for i := range payload {
		payload[i] = byte(i)
	}
	if err := s.StoreSubBlock(context.Background(), uuidHex(blockID[:]), sub, payload); err != nil {
		t.Fatal(err)
	}

	block := inode.Block{ID: blockID, Offset: 0, Length: 4096, SubBlocks: []inode.SubBlock{sub}}
	rc, err := s.Open(context.Background(), block, sub, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	out := make([]byte, 4096)
	if _, err := readFull(rc, out); err != nil {
		t.Fatal(err)
	}
	if md5.Sum(out) != md5.Sum(payload) {
		t.Fatalf("round trip mismatch via mmap fast path")
	}
}

func TestOpenByteOffsetAdvancesReader(t *testing.T) {
	c := newFakeClient()
	s := &Store{Client: c, Codec: codec.New(), Pool: "sblocks", Hostname: "remote-only", Level: columnstore.Quorum}

	blockID, _ := uuid.NewUUID()
	subID, _ := uuid.NewUUID()
	sub := inode.SubBlock{ID: subID, Offset: 0, Length: 100}
	payload := make([]byte, 100)
	for i := range payload {
		payload[i] = byte(i)
	}
	if err := s.StoreSubBlock(context.Background(), uuidHex(blockID[:]), sub, payload); err != nil {
		t.Fatal(err)
	}

	block := inode.Block{ID: blockID, Offset: 0, Length: 100, SubBlocks: []inode.SubBlock{sub}}
	rc, err := s.Open(context.Background(), block, sub, 50)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	out := make([]byte, 50)
	if _, err := readFull(rc, out); err != nil {
		t.Fatal(err)
	}
	if md5.Sum(out) != md5.Sum(payload[50:]) {
		t.Fatalf("byteOffset did not advance reader correctly")
	}
}

func TestOpenMissingBlock(t *testing.T) {
	c := newFakeClient()
	s := &Store{Client: c, Codec: codec.New(), Pool: "sblocks", Hostname: "remote-only", Level: columnstore.Quorum}
	blockID, _ := uuid.NewUUID()
	subID, _ := uuid.NewUUID()
	sub := inode.SubBlock{ID: subID, Offset: 0, Length: 10}
	block := inode.Block{ID: blockID, Offset: 0, Length: 10, SubBlocks: []inode.SubBlock{sub}}

	_, err := s.Open(context.Background(), block, sub, 0)
	if err != ErrMissingBlock {
		t.Fatalf("err = %v, want ErrMissingBlock", err)
	}
}

func TestPrefetchBlockFetchesAllSubBlocksConcurrently(t *testing.T) {
	c := newFakeClient()
	s := &Store{Client: c, Codec: codec.New(), Pool: "sblocks", Hostname: "remote-only", Level: columnstore.Quorum}

	blockID, _ := uuid.NewUUID()
	var subs []inode.SubBlock
	var payloads [][]byte
	for i := 0; i < 4; i++ {
		subID, _ := uuid.NewUUID()
		sub := inode.SubBlock{ID: subID, Offset: uint64(i * 10), Length: 10}
		payload := make([]byte, 10)
		for j := range payload {
			payload[j] = byte(i*10 + j)
		}
		if err := s.StoreSubBlock(context.Background(), uuidHex(blockID[:]), sub, payload); err != nil {
			t.Fatal(err)
		}
		subs = append(subs, sub)
		payloads = append(payloads, payload)
	}

	block := inode.Block{ID: blockID, Offset: 0, Length: 40, SubBlocks: subs}
	out, err := s.PrefetchBlock(context.Background(), block)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(payloads) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(payloads))
	}
	for i := range payloads {
		if md5.Sum(out[i]) != md5.Sum(payloads[i]) {
			t.Fatalf("sub-block %d mismatch", i)
		}
	}
}

// TestOpenConcurrentSharedCodecNoCorruption drives many concurrent Open
// calls through one shared Codec (the same wiring store.go gives a real
// Store), verifying each goroutine reads back its own sub-block intact.
// Codec.DecompressCopy is what makes this safe: a copy taken while the
// codec's buffer lock is held, rather than after Decompress has already
// released it, so a racing goroutine's Decompress cannot overwrite bytes
// still being copied out. Run with -race to catch a regression.
func TestOpenConcurrentSharedCodecNoCorruption(t *testing.T) {
	c := newFakeClient()
	sharedCodec := codec.New()
	s := &Store{Client: c, Codec: sharedCodec, Pool: "sblocks", Hostname: "remote-only", Level: columnstore.Quorum}

	const n = 16
	blockIDs := make([]uuid.UUID, n)
	subs := make([]inode.SubBlock, n)
	payloads := make([][]byte, n)
	for i := 0; i < n; i++ {
		blockID, _ := uuid.NewUUID()
		subID, _ := uuid.NewUUID()
		sub := inode.SubBlock{ID: subID, Offset: 0, Length: 64}
		payload := make([]byte, 64)
		for j := range payload {
			payload[j] = byte(i)
		}
		if err := s.StoreSubBlock(context.Background(), uuidHex(blockID[:]), sub, payload); err != nil {
			t.Fatal(err)
		}
		blockIDs[i] = blockID
		subs[i] = sub
		payloads[i] = payload
	}

	results := make([][]byte, n)
	errs := make([]error, n)
	done := make(chan int, n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			block := inode.Block{ID: blockIDs[i], Offset: 0, Length: 64, SubBlocks: []inode.SubBlock{subs[i]}}
			rc, err := s.Open(context.Background(), block, subs[i], 0)
			if err != nil {
				errs[i] = err
				done <- i
				return
			}
			buf := make([]byte, 64)
			_, err = readFull(rc, buf)
			rc.Close()
			if err != nil {
				errs[i] = err
			}
			results[i] = buf
			done <- i
		}()
	}
	for i := 0; i < n; i++ {
		<-done
	}

	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("goroutine %d: %v", i, errs[i])
		}
		if md5.Sum(results[i]) != md5.Sum(payloads[i]) {
			t.Fatalf("goroutine %d: content mismatch, got %x want %x", i, results[i], payloads[i])
		}
	}
}

func readFull(r interface{ Read([]byte) (int, error) }, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
