package main

import (
	"context"
	"fmt"

	"github.com/brisk/cfs"
)

const versionHelp = `cfsctl version

Print the store layer's version string.
`

func cmdversion(ctx context.Context, args []string) error {
	fmt.Println(cfs.GetVersion())
	return nil
}
