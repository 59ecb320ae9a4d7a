package main

import (
	"fmt"
	"os"

	"github.com/Acckion/XiaomiNote-for-Mac-sub011/internal/commands"
	"github.com/Acckion/XiaomiNote-for-Mac-sub011/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "lint", "check":
		commands.Lint(os.Args[2:])
	case "fmt":
		commands.Fmt(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("notemark v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`notemark - Validate and canonicalize note markup

Usage:
  notemark <command> [options]

Commands:
  lint        Validate a note file against the markup grammar
  fmt         Canonicalize a note file (--write, --diff)
  version     Show version information
  help        Show this help message

Examples:
  notemark lint note.txt
  notemark fmt note.txt
  notemark fmt --diff note.txt
  notemark fmt --write note.txt

Configuration:
  Config file: %s
`, config.ConfigPath())
	fmt.Print(usage)
}
