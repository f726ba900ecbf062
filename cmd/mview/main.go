// Package main provides the CLI tool for the .mv view compiler.
//
// Usage:
//
//	mview generate [path...]    Generate Go code from .mv files
//	mview check [path...]       Check .mv files without generating
//	mview help                  Show help
//
// Examples:
//
//	mview generate ./...        Recursively find and compile all .mv files
//	mview generate ./pages      Process a specific directory
//	mview generate card.mv      Process a specific file
//	mview check card.mv         Check syntax without generating
package main

import (
	"fmt"
	"os"

	"github.com/mview-lang/mview/pkg/mview"
)

const version = "0.1.0"

const usage = `mview - compiler for .mv view templates

Usage:
  mview <command> [options] [path...]

Commands:
  generate    Generate Go code from .mv files
  check       Check .mv files without generating code
  version     Print version information
  help        Show this help message

Options:
  -v                 Verbose output
  -enhanced-errors   Include hints in diagnostics

Examples:
  mview generate ./...               Recursively process all .mv files
  mview generate ./pages             Process files in a directory
  mview generate card.mv             Process a specific file
  mview generate -v ./...            Verbose output during generation
  mview check -enhanced-errors ./... Check syntax with hints

For more information, see https://github.com/mview-lang/mview
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate":
		if err := runGenerate(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := runCheck(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("mview version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
}

// parseFlags splits common flags from paths and applies the diagnostics
// toggle. Paths default to the current directory.
func parseFlags(args []string) (verbose bool, paths []string) {
	enhanced := false
	for _, arg := range args {
		switch arg {
		case "-v", "--verbose":
			verbose = true
		case "-enhanced-errors", "--enhanced-errors":
			enhanced = true
		default:
			paths = append(paths, arg)
		}
	}
	if enhanced {
		mview.SetEnhancedDiagnostics(true)
	}
	if len(paths) == 0 {
		paths = []string{"."}
	}
	return verbose, paths
}
