package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/brisk/cfs/internal/codec"
	"github.com/brisk/cfs/internal/inode"
)

const putHelp = `cfsctl put [-uri=cfs://host:port/] [-blocksize=N] <path> <local-file>

Write local-file's contents to path, split into blocksize-sized blocks
(default 128 MiB), each backed by a single sub-block.

Example:
  % cfsctl put /d/file.txt ./file.txt
`

const defaultBlockSize = 128 << 20

func cmdput(ctx context.Context, args []string) error {
	fset := flag.NewFlagSet("put", flag.ExitOnError)
	fset.Usage = usage(fset, putHelp)
	uri := fset.String("uri", "cfs://localhost/", "store endpoint")
	blockSize := fset.Int64("blocksize", defaultBlockSize, "block size in bytes")
	fset.Parse(args)
	if fset.NArg() != 2 {
		fset.Usage()
		return fmt.Errorf("put: expected <path> <local-file>")
	}
	path, localPath := fset.Arg(0), fset.Arg(1)

	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := openStore(ctx, *uri)
	if err != nil {
		return err
	}

	var blocks []inode.Block
	var offset uint64
	buf := make([]byte, *blockSize)
	for {
		n, readErr := io.ReadFull(f, buf)
		if n > 0 {
			chunk := buf[:n]
			blockID, err := uuid.NewUUID()
			if err != nil {
				return err
			}
			subID, err := inode.NewSubBlockID()
			if err != nil {
				return err
			}
			sub := inode.SubBlock{ID: subID, Offset: 0, Length: uint64(n)}
			if err := s.StoreSubBlock(ctx, codec.UUIDKey(blockID), sub, chunk); err != nil {
				return err
			}
			blocks = append(blocks, inode.Block{ID: blockID, Offset: offset, Length: uint64(n), SubBlocks: []inode.SubBlock{sub}})
			offset += uint64(n)
		}
		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			break
		}
		if readErr != nil {
			return readErr
		}
	}

	now := time.Now()
	n := &inode.INode{
		Path:        path,
		Kind:        inode.File,
		User:        currentUser(),
		Group:       currentUser(),
		Permissions: 0644,
		BlockSize:   uint64(*blockSize),
		ATime:       now,
		MTime:       now,
		Blocks:      blocks,
	}
	if err := s.StoreINode(ctx, path, n, now.UnixNano()/int64(time.Millisecond)); err != nil {
		return err
	}
	fmt.Printf("wrote %d bytes to %s in %d block(s)\n", offset, path, len(blocks))
	return nil
}

func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "cfs"
}
