package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/brisk/cfs/internal/inode"
)

const statHelp = `cfsctl stat [-uri=cfs://host:port/] <path>

Print an inode's metadata, or report that path does not exist.

Example:
  % cfsctl stat /d/file.txt
`

func cmdstat(ctx context.Context, args []string) error {
	fset := flag.NewFlagSet("stat", flag.ExitOnError)
	fset.Usage = usage(fset, statHelp)
	uri := fset.String("uri", "cfs://localhost/", "store endpoint")
	fset.Parse(args)
	if fset.NArg() != 1 {
		fset.Usage()
		return fmt.Errorf("stat: expected exactly one path argument")
	}
	path := fset.Arg(0)

	s, err := openStore(ctx, *uri)
	if err != nil {
		return err
	}
	n, err := s.RetrieveINode(ctx, path)
	if err != nil {
		return err
	}
	if n == nil {
		return fmt.Errorf("stat %s: no such path", path)
	}
	kind := "file"
	if n.Kind == inode.Directory {
		kind = "directory"
	}
	fmt.Printf("path:        %s\n", n.Path)
	fmt.Printf("kind:        %s\n", kind)
	fmt.Printf("owner:       %s:%s\n", n.User, n.Group)
	fmt.Printf("permissions: %#o\n", n.Permissions)
	fmt.Printf("size:        %d\n", n.TotalLength())
	fmt.Printf("blocks:      %d\n", len(n.Blocks))
	fmt.Printf("mtime:       %s\n", n.MTime)
	return nil
}
