package main

import (
	"context"
	"flag"
	"fmt"
	"sort"
)

const lsHelp = `cfsctl ls [-uri=cfs://host:port/] [-deep] <path>

List the entries directly under path (shallow), or every descendant
(-deep), per the directory index's path-prefix range query.

Example:
  % cfsctl ls -deep /d
`

func cmdls(ctx context.Context, args []string) error {
	fset := flag.NewFlagSet("ls", flag.ExitOnError)
	fset.Usage = usage(fset, lsHelp)
	uri := fset.String("uri", "cfs://localhost/", "store endpoint")
	deep := fset.Bool("deep", false, "list all descendants instead of only direct children")
	fset.Parse(args)
	if fset.NArg() != 1 {
		fset.Usage()
		return fmt.Errorf("ls: expected exactly one path argument")
	}
	dir := fset.Arg(0)

	s, err := openStore(ctx, *uri)
	if err != nil {
		return err
	}

	var paths []string
	if *deep {
		paths, err = s.ListDeepSubPaths(ctx, dir)
	} else {
		paths, err = s.ListSubPaths(ctx, dir)
	}
	if err != nil {
		return err
	}
	sort.Strings(paths)
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}
