package main

import (
	"fmt"
	"os"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mview-lang/mview/pkg/mview"
)

// runCheck implements the check subcommand: it runs the full pipeline on
// each file without writing output.
func runCheck(args []string) error {
	verbose, paths := parseFlags(args)

	files, err := collectMvFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .mv files found")
	}
	if verbose {
		fmt.Printf("Checking %d .mv file(s)\n", len(files))
	}

	var errorCount atomic.Int64
	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())

	for _, inputPath := range files {
		inputPath := inputPath
		group.Go(func() error {
			if verbose {
				fmt.Printf("Checking %s\n", inputPath)
			}
			src, err := os.ReadFile(inputPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading %s: %v\n", inputPath, err)
				errorCount.Add(1)
				return nil
			}
			if err := mview.Check(inputPath, src); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				errorCount.Add(1)
			}
			return nil
		})
	}
	group.Wait()

	if n := errorCount.Load(); n > 0 {
		return fmt.Errorf("%d file(s) had errors", n)
	}
	if verbose {
		fmt.Printf("All %d file(s) passed checks\n", len(files))
	}
	return nil
}
