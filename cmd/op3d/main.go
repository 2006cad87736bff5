// Command op3d manages a library of vendor-neutral 3D-printer profiles and
// converts them into slicer-specific configuration files.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "op3d:", err)
		}
		os.Exit(1)
	}
}
