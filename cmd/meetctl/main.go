package main

import (
	"fmt"
	"os"

	"github.com/johnquangdev/meeting-summarizer/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
