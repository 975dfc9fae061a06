// Command shellctl manages Open Sunsama desktop settings from the terminal.
package main

import (
	"os"

	"github.com/open-sunsama/shell/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
