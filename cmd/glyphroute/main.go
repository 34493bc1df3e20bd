package main

import (
	"fmt"
	"os"

	"github.com/plotterkit/glyphroute/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "glyphroute:", err)
		os.Exit(1)
	}
}
