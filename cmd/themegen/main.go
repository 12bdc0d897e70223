package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/graphite-design/themegen/internal/cli"
)

const (
	cmdName = "themegen"

	shortDesc = "The Graphite theme generator CLI."
	longDesc  = `The Graphite theme generator Command Line Interface (CLI).

Themegen reads the Graphite Design System's token list, color themes, and
token metadata, and generates the Sass artifacts that ship with the themes
package: per-theme variable maps, documented token declarations, and the
theme mixin used to rebind tokens within a selector scope.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
