// SPDX-License-Identifier: MIT

// Command ndmines plays Minesweeper on boards of any rank in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/ndmines/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ndmines:", err)
		os.Exit(1)
	}
}
