// Command cfsctl is a thin command-line client for the store layer: it
// dials a ColumnStore endpoint and drives the same operations a real
// filesystem client would (inode lookup, directory listing, block
// read/write), one verb per invocation.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/brisk/cfs"
)

func funcmain() error {
	type verb struct {
		fn func(ctx context.Context, args []string) error
	}
	verbs := map[string]verb{
		"init":    {cmdinit},
		"stat":    {cmdstat},
		"ls":      {cmdls},
		"put":     {cmdput},
		"get":     {cmdget},
		"export":  {cmdexport},
		"version": {cmdversion},
	}

	args := os.Args[1:]
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "syntax: cfsctl <command> [options]\n")
		fmt.Fprintf(os.Stderr, "commands: init, stat, ls, put, get, export, version\n")
		os.Exit(2)
	}
	name, rest := args[0], args[1:]
	v, ok := verbs[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n", name)
		fmt.Fprintf(os.Stderr, "syntax: cfsctl <command> [options]\n")
		os.Exit(2)
	}

	ctx, canc := cfs.InterruptibleContext()
	defer canc()
	if err := v.fn(ctx, rest); err != nil {
		return fmt.Errorf("%s: %v", name, err)
	}
	return cfs.RunAtExit()
}

func main() {
	if err := funcmain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore dials the endpoint named by the -uri flag, registering the
// connection for cleanup via cfs.RegisterAtExit so short-lived verbs don't
// need their own defer chains.
func openStore(ctx context.Context, uri string) (*cfs.Store, error) {
	s, err := cfs.New(ctx, uri, cfs.DefaultConfig())
	if err != nil {
		return nil, err
	}
	cfs.RegisterAtExit(s.Close)
	return s, nil
}
