package locate

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/brisk/cfs/internal/codec"
	"github.com/brisk/cfs/internal/columnstore"
	"github.com/brisk/cfs/internal/inode"
)

// fakeClient implements just DescribeKeys, returning a fixed host list for
// every row key it is asked about, in request order.
type fakeClient struct {
	columnstore.Client
	hostsByKey map[string][]string
}

func (f *fakeClient) DescribeKeys(ctx context.Context, keyspace string, rowKeys [][]byte) ([][]string, error) {
	out := make([][]string, len(rowKeys))
	for i, k := range rowKeys {
		out[i] = f.hostsByKey[string(k)]
	}
	return out, nil
}

func TestGetBlockLocationsSingleBlockLocality(t *testing.T) {
	blockID, err := uuid.NewUUID()
	if err != nil {
		t.Fatal(err)
	}
	key := string(codec.HexKey(blockID[:]))
	c := &fakeClient{hostsByKey: map[string][]string{
		key: {"local-host", "replica-2", "replica-3"},
	}}
	r := &Resolver{Client: c, Keyspace: "CFS"}

	block := inode.Block{ID: blockID, Offset: 0, Length: 1000}
	locations, err := r.GetBlockLocations(context.Background(), []inode.Block{block}, 0, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(locations) != 1 {
		t.Fatalf("len(locations) = %d, want 1", len(locations))
	}
	if got, want := locations[0].Hosts[0], "local-host"; got != want {
		t.Fatalf("locations[0].Hosts[0] = %q, want %q", got, want)
	}
}

func TestGetBlockLocationsClampsToRequestedRange(t *testing.T) {
	blockID, err := uuid.NewUUID()
	if err != nil {
		t.Fatal(err)
	}
	key := string(codec.HexKey(blockID[:]))
	c := &fakeClient{hostsByKey: map[string][]string{
		key: {"host-a"},
	}}
	r := &Resolver{Client: c, Keyspace: "CFS"}
	block := inode.Block{ID: blockID, Offset: 0, Length: 200}

	locations, err := r.GetBlockLocations(context.Background(), []inode.Block{block}, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(locations) != 1 {
		t.Fatalf("len(locations) = %d, want 1", len(locations))
	}
	if locations[0].Offset != 1 {
		t.Fatalf("locations[0].Offset = %d, want 1 (clamped to start)", locations[0].Offset)
	}

	locations, err = r.GetBlockLocations(context.Background(), []inode.Block{block}, 0, 200)
	if err != nil {
		t.Fatal(err)
	}
	if len(locations) != 1 {
		t.Fatalf("len(locations) = %d, want 1", len(locations))
	}
	if locations[0].Offset != 0 {
		t.Fatalf("locations[0].Offset = %d, want 0", locations[0].Offset)
	}
}

func TestGetBlockLocationsSkipsNonOverlappingBlocks(t *testing.T) {
	firstID, _ := uuid.NewUUID()
	secondID, _ := uuid.NewUUID()
	c := &fakeClient{hostsByKey: map[string][]string{
		string(codec.HexKey(firstID[:])):  {"host-a"},
		string(codec.HexKey(secondID[:])): {"host-b"},
	}}
	r := &Resolver{Client: c, Keyspace: "CFS"}

	blocks := []inode.Block{
		{ID: firstID, Offset: 0, Length: 100},
		{ID: secondID, Offset: 100, Length: 100},
	}
	locations, err := r.GetBlockLocations(context.Background(), blocks, 100, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(locations) != 1 {
		t.Fatalf("len(locations) = %d, want 1", len(locations))
	}
	if locations[0].Hosts[0] != "host-b" {
		t.Fatalf("locations[0].Hosts[0] = %q, want host-b", locations[0].Hosts[0])
	}
}

// TestGetBlockLocationsClampsFirstReturnedBlockNotFirstInput covers a block
// list whose first element is entirely skipped by the overlap filter: the
// clamp to start must still land on the first *returned* location, not
// silently fall through to the unclamped offset of whichever block happens
// to occupy input index 0.
func TestGetBlockLocationsClampsFirstReturnedBlockNotFirstInput(t *testing.T) {
	firstID, _ := uuid.NewUUID()
	secondID, _ := uuid.NewUUID()
	c := &fakeClient{hostsByKey: map[string][]string{
		string(codec.HexKey(firstID[:])):  {"host-a"},
		string(codec.HexKey(secondID[:])): {"host-b"},
	}}
	r := &Resolver{Client: c, Keyspace: "CFS"}

	blocks := []inode.Block{
		{ID: firstID, Offset: 0, Length: 50},
		{ID: secondID, Offset: 50, Length: 100},
	}
	locations, err := r.GetBlockLocations(context.Background(), blocks, 60, 50)
	if err != nil {
		t.Fatal(err)
	}
	if len(locations) != 1 {
		t.Fatalf("len(locations) = %d, want 1", len(locations))
	}
	if locations[0].Offset != 60 {
		t.Fatalf("locations[0].Offset = %d, want 60 (clamped to start)", locations[0].Offset)
	}
}

func TestGetBlockLocationsEmptyBlockList(t *testing.T) {
	r := &Resolver{Client: &fakeClient{}, Keyspace: "CFS"}
	locations, err := r.GetBlockLocations(context.Background(), nil, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if locations != nil {
		t.Fatalf("locations = %v, want nil", locations)
	}
}
