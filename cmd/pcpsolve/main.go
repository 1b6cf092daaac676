// Command pcpsolve runs the branch-and-price Partition Coloring Problem
// solver against a single instance file.
package main

import (
	"os"

	"github.com/pcpbnp/solver/cmd/pcpsolve/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
