package main

import (
	"archive/tar"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/brisk/cfs/internal/inode"
)

const exportHelp = `cfsctl export [-uri=cfs://host:port/] <dir> <archive.tar.zst>

Walk dir's full subtree (per ls -deep) and write every regular file's
content into a zstd-compressed tar archive, for copying a tree out of
the store in one shot.

Example:
  % cfsctl export /d backup.tar.zst
`

func cmdexport(ctx context.Context, args []string) error {
	fset := flag.NewFlagSet("export", flag.ExitOnError)
	fset.Usage = usage(fset, exportHelp)
	uri := fset.String("uri", "cfs://localhost/", "store endpoint")
	fset.Parse(args)
	if fset.NArg() != 2 {
		fset.Usage()
		return fmt.Errorf("export: expected <dir> <archive.tar.zst>")
	}
	dir, archivePath := fset.Arg(0), fset.Arg(1)

	// ListDeepSubPaths also matches siblings that share dir as a byte prefix
	// (exporting "/p" lists "/pa/..." too); only paths under dir + "/" are
	// exported.
	prefix := dir
	if prefix == "" || prefix[len(prefix)-1] != '/' {
		prefix += "/"
	}

	s, err := openStore(ctx, *uri)
	if err != nil {
		return err
	}

	paths, err := s.ListDeepSubPaths(ctx, dir)
	if err != nil {
		return fmt.Errorf("export: listing %s: %w", dir, err)
	}

	f, err := os.Create(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer zw.Close()

	tw := tar.NewWriter(zw)
	defer tw.Close()

	var exported int
	for _, path := range paths {
		if len(path) <= len(prefix) || path[:len(prefix)] != prefix {
			continue
		}
		n, err := s.RetrieveINode(ctx, path)
		if err != nil {
			return fmt.Errorf("export: retrieving %s: %w", path, err)
		}
		if n == nil || n.Kind != inode.File {
			// Directories and paths deleted between the list and the
			// retrieve have nothing to tar.
			continue
		}

		var size int64
		for _, b := range n.Blocks {
			size += int64(b.Length)
		}
		if err := tw.WriteHeader(&tar.Header{
			Name: path,
			Mode: int64(n.Permissions),
			Size: size,
		}); err != nil {
			return err
		}
		for _, block := range n.Blocks {
			for _, sub := range block.SubBlocks {
				rc, err := s.RetrieveSubBlock(ctx, block, sub, 0)
				if err != nil {
					return fmt.Errorf("export: reading %s block %s sub-block %s: %w", path, block.ID, sub.ID, err)
				}
				_, err = io.Copy(tw, rc)
				rc.Close()
				if err != nil {
					return err
				}
			}
		}
		exported++
	}

	fmt.Printf("exported %d file(s) from %s to %s\n", exported, dir, archivePath)
	return nil
}
