package cfs

import (
	"context"
	"crypto/md5"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/brisk/cfs/internal/cfstest"
	"github.com/brisk/cfs/internal/codec"
	"github.com/brisk/cfs/internal/columnstore"
	"github.com/brisk/cfs/internal/inode"
	"github.com/brisk/cfs/internal/schema"
)

var testMTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// openTestStore dials an in-process cfstest fake and ensures its schema,
// returning a ready Store and a teardown function.
func openTestStore(t *testing.T, pool Pool, hostname string) (*Store, func()) {
	t.Helper()
	fake := cfstest.New(t.TempDir())
	fake.LocalHostname = hostname
	addr, stopServer, err := cfstest.Start(fake)
	if err != nil {
		t.Fatal(err)
	}

	client, err := columnstore.Dial(context.Background(), addr)
	if err != nil {
		stopServer()
		t.Fatal(err)
	}

	uri := &URI{Pool: pool, Host: "localhost", Port: DefaultRPCPort}
	s, err := bootstrapForTest(client, uri, hostname)
	if err != nil {
		client.Close()
		stopServer()
		t.Fatal(err)
	}
	return s, func() {
		s.Close()
		stopServer()
	}
}

// bootstrapForTest mirrors New's schema-then-wire sequence without dialing
// a real endpoint.
func bootstrapForTest(client columnstore.Client, uri *URI, hostname string) (*Store, error) {
	cfg := DefaultConfig()
	if err := schema.EnsureSchema(context.Background(), client, schema.Params{
		AnalyticsDC: cfg.AnalyticsDC,
		OLTPDC:      cfg.OLTPDC,
		Replication: cfg.Replication,
	}); err != nil {
		return nil, err
	}
	return newStore(uri, client, cfg, hostname), nil
}

func writeFile(t *testing.T, s *Store, path string, blockSize uint64, content []byte) *inode.INode {
	t.Helper()
	blockID, err := uuid.NewUUID()
	if err != nil {
		t.Fatal(err)
	}
	subID, err := uuid.NewUUID()
	if err != nil {
		t.Fatal(err)
	}
	sub := inode.SubBlock{ID: subID, Offset: 0, Length: uint64(len(content))}
	block := inode.Block{ID: blockID, Offset: 0, Length: uint64(len(content)), SubBlocks: []inode.SubBlock{sub}}

	if err := s.StoreSubBlock(context.Background(), codec.UUIDKey(blockID), sub, content); err != nil {
		t.Fatal(err)
	}

	n := &inode.INode{
		Path:        path,
		Kind:        inode.File,
		User:        "alice",
		Group:       "users",
		Permissions: 0644,
		BlockSize:   blockSize,
		MTime:       testMTime,
		Blocks:      []inode.Block{block},
	}
	if err := s.StoreINode(context.Background(), path, n, 1); err != nil {
		t.Fatal(err)
	}
	return n
}

func TestRetrieveINodeAbsent(t *testing.T) {
	s, stop := openTestStore(t, PoolRegular, "node-a")
	defer stop()

	got, err := s.RetrieveINode(context.Background(), "/nope")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("RetrieveINode(/nope) = %+v, want nil", got)
	}
}

func TestStoreAndRetrieveINodeRoundTrip(t *testing.T) {
	s, stop := openTestStore(t, PoolRegular, "node-a")
	defer stop()

	content := []byte("hello, block store")
	writeFile(t, s, "/d/file.txt", 128<<20, content)

	got, err := s.RetrieveINode(context.Background(), "/d/file.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("RetrieveINode returned nil for a stored path")
	}
	if got.Path != "/d/file.txt" || got.User != "alice" || got.TotalLength() != uint64(len(content)) {
		t.Fatalf("unexpected inode: %+v", got)
	}

	rc, err := s.RetrieveSubBlock(context.Background(), got.Blocks[0], got.Blocks[0].SubBlocks[0], 0)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	buf := make([]byte, len(content))
	if _, err := readFullTest(rc, buf); err != nil {
		t.Fatal(err)
	}
	if md5.Sum(buf) != md5.Sum(content) {
		t.Fatalf("round-trip content mismatch")
	}
}

func TestRetrieveSubBlockMissingReturnsErrNotFound(t *testing.T) {
	s, stop := openTestStore(t, PoolRegular, "node-a")
	defer stop()

	blockID, _ := uuid.NewUUID()
	subID, _ := uuid.NewUUID()
	sub := inode.SubBlock{ID: subID, Offset: 0, Length: 10}
	block := inode.Block{ID: blockID, Offset: 0, Length: 10, SubBlocks: []inode.SubBlock{sub}}

	_, err := s.RetrieveSubBlock(context.Background(), block, sub, 0)
	if err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeletionOrthogonality(t *testing.T) {
	s, stop := openTestStore(t, PoolRegular, "node-a")
	defer stop()

	writeFile(t, s, "/d/gone.txt", 128<<20, []byte("x"))
	if err := s.DeleteINode(context.Background(), "/d/gone.txt", 2); err != nil {
		t.Fatal(err)
	}
	got, err := s.RetrieveINode(context.Background(), "/d/gone.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("RetrieveINode after delete = %+v, want nil", got)
	}
}

func TestIdempotentStoreINodeLastWriteWins(t *testing.T) {
	s, stop := openTestStore(t, PoolRegular, "node-a")
	defer stop()

	n := &inode.INode{Path: "/d/idem.txt", Kind: inode.File, User: "alice", Group: "users", Permissions: 0644, MTime: testMTime}
	if err := s.StoreINode(context.Background(), n.Path, n, 1); err != nil {
		t.Fatal(err)
	}
	n.User = "bob"
	if err := s.StoreINode(context.Background(), n.Path, n, 2); err != nil {
		t.Fatal(err)
	}

	got, err := s.RetrieveINode(context.Background(), "/d/idem.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got.User != "bob" {
		t.Fatalf("User = %q, want bob (last write should win)", got.User)
	}
}

func TestListingConsistency(t *testing.T) {
	s, stop := openTestStore(t, PoolRegular, "node-a")
	defer stop()

	for i, dir := range []string{"/d", "/d/a", "/d/b", "/d/c", "/d/c/d"} {
		n := inode.NewDirectory(dir, "alice", "users", 0755)
		n.MTime = testMTime
		if err := s.StoreINode(context.Background(), dir, n, int64(i+1)); err != nil {
			t.Fatal(err)
		}
	}
	writeFile(t, s, "/d/f", 128<<20, []byte("f"))

	shallow, err := s.ListSubPaths(context.Background(), "/d")
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(shallow)
	if got, want := shallow, []string{"/d/a", "/d/b", "/d/c", "/d/f"}; !equalStrings(got, want) {
		t.Fatalf("ListSubPaths(/d) = %v, want %v", got, want)
	}

	deep, err := s.ListDeepSubPaths(context.Background(), "/d")
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(deep)
	if got, want := deep, []string{"/d/a", "/d/b", "/d/c", "/d/c/d", "/d/f"}; !equalStrings(got, want) {
		t.Fatalf("ListDeepSubPaths(/d) = %v, want %v", got, want)
	}
}

func TestBlockLocalityFirstHostIsLocalHostname(t *testing.T) {
	s, stop := openTestStore(t, PoolRegular, "node-a")
	defer stop()

	n := writeFile(t, s, "/d/locality.bin", 128<<20, []byte("payload"))
	locations, err := s.GetBlockLocation(context.Background(), n.Blocks, 0, int64(n.TotalLength()))
	if err != nil {
		t.Fatal(err)
	}
	if len(locations) != 1 {
		t.Fatalf("len(locations) = %d, want 1", len(locations))
	}
	if locations[0].Hosts[0] != "node-a" {
		t.Fatalf("locations[0].Hosts[0] = %q, want node-a", locations[0].Hosts[0])
	}
}

func TestArchivePoolSelectsArchiveColumnFamilies(t *testing.T) {
	s, stop := openTestStore(t, PoolArchive, "node-a")
	defer stop()

	if got, want := s.pool.InodeColumnFamily(), "inode_archive"; got != want {
		t.Fatalf("InodeColumnFamily() = %q, want %q", got, want)
	}
	if got, want := s.pool.SubBlockColumnFamily(), "sblocks_archive"; got != want {
		t.Fatalf("SubBlockColumnFamily() = %q, want %q", got, want)
	}

	writeFile(t, s, "/archived.bin", 128<<20, []byte("cold data"))
	got, err := s.RetrieveINode(context.Background(), "/archived.bin")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("RetrieveINode returned nil for a path stored in the archive pool")
	}
}

func TestRetrieveBlockConcatenatesAllSubBlocks(t *testing.T) {
	s, stop := openTestStore(t, PoolRegular, "node-a")
	defer stop()

	part1 := []byte("first sub-block, ")
	part2 := []byte("second sub-block, ")
	part3 := []byte("third sub-block")

	blockID, err := uuid.NewUUID()
	if err != nil {
		t.Fatal(err)
	}
	var subs []inode.SubBlock
	var offset uint64
	for _, part := range [][]byte{part1, part2, part3} {
		subID, err := uuid.NewUUID()
		if err != nil {
			t.Fatal(err)
		}
		sub := inode.SubBlock{ID: subID, Offset: offset, Length: uint64(len(part))}
		if err := s.StoreSubBlock(context.Background(), codec.UUIDKey(blockID), sub, part); err != nil {
			t.Fatal(err)
		}
		subs = append(subs, sub)
		offset += uint64(len(part))
	}
	block := inode.Block{ID: blockID, Offset: 0, Length: offset, SubBlocks: subs}

	rc, err := s.RetrieveBlock(context.Background(), block, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := append(append(append([]byte{}, part1...), part2...), part3...)
	got := make([]byte, len(want))
	if _, err := readFullTest(rc, got); err != nil {
		t.Fatal(err)
	}
	rc.Close()
	if md5.Sum(got) != md5.Sum(want) {
		t.Fatalf("RetrieveBlock(0) = %q, want %q", got, want)
	}

	// An offset partway into the second sub-block must skip the rest of
	// the first sub-block and still concatenate the remainder.
	within := len(part1) + 3
	rc, err = s.RetrieveBlock(context.Background(), block, int64(within))
	if err != nil {
		t.Fatal(err)
	}
	wantTail := want[within:]
	gotTail := make([]byte, len(wantTail))
	if _, err := readFullTest(rc, gotTail); err != nil {
		t.Fatal(err)
	}
	rc.Close()
	if md5.Sum(gotTail) != md5.Sum(wantTail) {
		t.Fatalf("RetrieveBlock(%d) = %q, want %q", within, gotTail, wantTail)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func readFullTest(r interface{ Read([]byte) (int, error) }, buf []byte) (int, error) {
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
