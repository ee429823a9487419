package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/brisk/cfs"
)

const initHelp = `cfsctl init [-uri=cfs://host:port/]

Connect to a store endpoint and ensure its schema exists, creating the
keyspace and column families on first use.

Example:
  % cfsctl init -uri=cfs://localhost/
`

func cmdinit(ctx context.Context, args []string) error {
	fset := flag.NewFlagSet("init", flag.ExitOnError)
	fset.Usage = usage(fset, initHelp)
	uri := fset.String("uri", "cfs://localhost/", "store endpoint to initialize")
	fset.Parse(args)

	s, err := cfs.New(ctx, *uri, cfs.DefaultConfig())
	if err != nil {
		return err
	}
	defer s.Close()
	fmt.Printf("schema ready at %s (%s)\n", *uri, s.GetVersion())
	return nil
}
