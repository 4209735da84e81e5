// Package main is the entry point for the mdq CLI tool.
package main

import (
	"os"

	"github.com/aviref/mdq/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
