package inode

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
)

func mustUUID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewUUID()
	if err != nil {
		t.Fatal(err)
	}
	return id
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	want := &INode{
		Path:        "/mytestdir/testfile",
		Kind:        File,
		User:        "hadoop",
		Group:       "supergroup",
		Permissions: 0644,
		Replication: 3,
		BlockSize:   128 << 20,
		MTime:       time.Now().Round(time.Millisecond).UTC(),
		Blocks: []Block{
			{
				ID:     mustUUID(t),
				Offset: 0,
				Length: 8 << 20,
				SubBlocks: []SubBlock{
					{ID: mustUUID(t), Offset: 0, Length: 4 << 20},
					{ID: mustUUID(t), Offset: 4 << 20, Length: 4 << 20},
				},
			},
		},
	}

	data, err := want.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	var got INode
	if err := got.Unmarshal(want.Path, data); err != nil {
		t.Fatal(err)
	}

	if !got.MTime.Equal(want.MTime) {
		t.Fatalf("MTime = %v, want %v", got.MTime, want.MTime)
	}
	if diff := cmp.Diff(want, &got, cmpopts.IgnoreFields(INode{}, "MTime", "Timestamp")); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalRejectsUnknownVersion(t *testing.T) {
	var n INode
	err := n.Unmarshal("/p", []byte{0xFF})
	if err == nil {
		t.Fatal("expected error for unknown version")
	}
}

func TestUnmarshalRejectsTruncatedInput(t *testing.T) {
	want := NewDirectory("/d", "hadoop", "supergroup", 0755)
	data, err := want.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	for cut := 0; cut < len(data); cut++ {
		var n INode
		if err := n.Unmarshal("/d", data[:cut]); err == nil {
			t.Fatalf("expected error unmarshaling truncated input at %d bytes", cut)
		}
	}
}

func TestParentPath(t *testing.T) {
	cases := []struct{ path, want string }{
		{"/", "null"},
		{"/d", "/"},
		{"/d/a", "/d"},
		{"/d/c/d", "/d/c"},
	}
	for _, c := range cases {
		if got := ParentPath(c.path); got != c.want {
			t.Errorf("ParentPath(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}
