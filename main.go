// Command goscram scrambles and restores images with a numeric key.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/goscram/internal/commands"
	"github.com/idelchi/goscram/internal/config"
)

// version is injected at build time.
var version = "dev"

func main() {
	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
