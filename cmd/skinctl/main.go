package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/skinned/cmd/skinctl/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	commands.SetupLogging()

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "check":
		err = commands.Check(args, os.Stdout)
	case "preview":
		err = commands.Preview(args, os.Stdout)
	case "version", "-v", "--version":
		fmt.Printf("skinctl version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`skinctl - themed control toolkit CLI

Usage: skinctl <command> [options]

Commands:
  check     Load a theme file and list its styles per state
  preview   Lay out controls and print the draw calls of one frame
  version   Print version information
  help      Show this help message

Examples:
  skinctl check --theme theme.toml
  skinctl preview --theme theme.toml --state FOCUS
  skinctl preview --form login.toml

Configuration:
  Defaults are read from skinctl.toml in the current directory and from a
  .env file. SKINCTL_THEME overrides the theme path, SKINCTL_LOG_LEVEL sets
  the log level and SKINCTL_LOG_FORMAT=json switches to JSON logs.`)
}
