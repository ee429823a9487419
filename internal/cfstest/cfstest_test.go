package cfstest

import (
	"context"
	"testing"

	"github.com/brisk/cfs/internal/columnstore"
)

func TestInsertGetRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	s.LocalHostname = "local"
	addr, stop, err := Start(s)
	if err != nil {
		t.Fatal(err)
	}
	defer stop()

	c, err := columnstore.Dial(context.Background(), addr)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if err := c.Insert(context.Background(), []byte("row1"), "inode", []byte("data"), []byte("hello"), 1, columnstore.Quorum); err != nil {
		t.Fatal(err)
	}
	value, _, found, err := c.Get(context.Background(), []byte("row1"), "inode", []byte("data"), columnstore.Quorum)
	if err != nil {
		t.Fatal(err)
	}
	if !found || string(value) != "hello" {
		t.Fatalf("Get = (%q, %v), want (hello, true)", value, found)
	}

	_, _, found, err = c.Get(context.Background(), []byte("row1"), "inode", []byte("missing"), columnstore.Quorum)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatalf("Get(missing column) found = true, want false")
	}
}

func TestGetSubBlockMissingReturnsNotFound(t *testing.T) {
	s := New(t.TempDir())
	addr, stop, err := Start(s)
	if err != nil {
		t.Fatal(err)
	}
	defer stop()

	c, err := columnstore.Dial(context.Background(), addr)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	payload, err := c.GetSubBlock(context.Background(), "any-host", []byte("deadbeef"), []byte("cafebabe"), "sblocks")
	if err != nil {
		t.Fatal(err)
	}
	if payload != nil {
		t.Fatalf("payload = %+v, want nil", payload)
	}
}
