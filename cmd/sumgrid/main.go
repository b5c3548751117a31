package main

import (
	"os"

	"github.com/hn770123/sum-puzzle1/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
