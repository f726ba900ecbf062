package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mview-lang/mview/pkg/mview"
)

// runGenerate implements the generate subcommand. Files compile concurrently;
// each file's pipeline stays single-pass and independent.
func runGenerate(args []string) error {
	verbose, paths := parseFlags(args)

	files, err := collectMvFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .mv files found")
	}
	if verbose {
		fmt.Printf("Found %d .mv file(s)\n", len(files))
	}

	var errorCount atomic.Int64
	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())

	for _, inputPath := range files {
		inputPath := inputPath
		group.Go(func() error {
			outputPath := mview.OutputPath(inputPath)
			if verbose {
				fmt.Printf("Processing %s -> %s\n", inputPath, outputPath)
			}
			if err := generateFile(inputPath, outputPath); err != nil {
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
		fmt.Printf("Successfully generated %d file(s)\n", len(files))
	}
	return nil
}

// collectMvFiles finds all .mv files from the given paths.
// Supports:
//   - Direct file paths: "card.mv"
//   - Directory paths: "./pages"
//   - Recursive pattern: "./..."
func collectMvFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}
			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && strings.HasSuffix(p, ".mv") {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".mv") {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else if strings.HasSuffix(path, ".mv") {
			files = append(files, path)
		}
	}

	return files, nil
}

// generateFile compiles one .mv file and writes the generated Go file next
// to it.
func generateFile(inputPath, outputPath string) error {
	output, err := mview.Compile(inputPath)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, output, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}
