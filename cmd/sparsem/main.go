// Command sparsem is the CLI for sparse integer matrix operations.
package main

import (
	"os"

	"github.com/katalvlaran/sparsem/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
