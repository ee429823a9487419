package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
)

const getHelp = `cfsctl get [-uri=cfs://host:port/] <path>

Read path's content and write it to stdout, concatenating its blocks and
sub-blocks in order.

Example:
  % cfsctl get /d/file.txt > file.txt
`

func cmdget(ctx context.Context, args []string) error {
	fset := flag.NewFlagSet("get", flag.ExitOnError)
	fset.Usage = usage(fset, getHelp)
	uri := fset.String("uri", "cfs://localhost/", "store endpoint")
	fset.Parse(args)
	if fset.NArg() != 1 {
		fset.Usage()
		return fmt.Errorf("get: expected exactly one path argument")
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
		return fmt.Errorf("get %s: no such path", path)
	}

	for _, block := range n.Blocks {
		for _, sub := range block.SubBlocks {
			rc, err := s.RetrieveSubBlock(ctx, block, sub, 0)
			if err != nil {
				return fmt.Errorf("reading block %s sub-block %s: %w", block.ID, sub.ID, err)
			}
			_, err = io.Copy(os.Stdout, rc)
			rc.Close()
			if err != nil {
				return err
			}
		}
	}
	return nil
}
