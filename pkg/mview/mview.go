// Package mview exposes the .mv compiler for build-tool integration. The CLI
// in cmd/mview is a thin layer over this package.
package mview

import (
	"fmt"
	"os"

	"github.com/mview-lang/mview/internal/mvgen"
)

// CompileFile compiles .mv source into formatted Go source. path is used for
// diagnostics and for deriving the generated filename.
func CompileFile(path string, src []byte) ([]byte, error) {
	return mvgen.ParseAndGenerate(path, string(src))
}

// Compile reads and compiles a .mv file from disk.
func Compile(path string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return CompileFile(path, src)
}

// Check runs the full pipeline without producing output, returning the
// accumulated diagnostics.
func Check(path string, src []byte) error {
	_, err := CompileFile(path, src)
	return err
}

// OutputPath returns the generated-file path for a .mv source path.
func OutputPath(path string) string {
	return mvgen.OutputPath(path)
}

// SetEnhancedDiagnostics selects enhanced diagnostic formatting (hints in
// error messages) for the whole process. The first call wins.
func SetEnhancedDiagnostics(on bool) {
	mvgen.SetEnhancedDiagnostics(on)
}
