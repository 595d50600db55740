package main

import (
	"fmt"
	"os"

	"github.com/smokyabdulrahman/lunar-almanac/internal/cli"
	"github.com/smokyabdulrahman/lunar-almanac/internal/display"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=v1.0.0"
var version = "dev"

func main() {
	rootCmd := cli.NewRootCmd(version)
	rootCmd.SetOut(display.Stdout())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
