package mview_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mview-lang/mview/pkg/mview"
)

const sample = `package pages

view Hello(name string) {
	div.primary(
		strong("hello")
		p({name})
	)
}
`

func TestCompileFile(t *testing.T) {
	out, err := mview.CompileFile("hello.mv", []byte(sample))
	if err != nil {
		t.Fatalf("CompileFile() error: %v", err)
	}
	src := string(out)

	for _, want := range []string{
		"// Code generated by mview generate. DO NOT EDIT.",
		"package pages",
		"func Hello(name string) view.Node {",
		`view.El("div")`,
		`view.El("strong")`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output missing %q:\n%s", want, src)
		}
	}
}

func TestCompile_FromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.mv")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := mview.Compile(path)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if !strings.Contains(string(out), "func Hello(name string) view.Node {") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCheck(t *testing.T) {
	if err := mview.Check("ok.mv", []byte(sample)); err != nil {
		t.Errorf("Check() error on valid source: %v", err)
	}

	err := mview.Check("bad.mv", []byte("package x\nview V() { p(0) }"))
	if err == nil {
		t.Fatal("Check() accepted an invalid child literal")
	}
	if !strings.Contains(err.Error(), "bad.mv:") {
		t.Errorf("diagnostic missing filename: %v", err)
	}
}

func TestOutputPath(t *testing.T) {
	if got := mview.OutputPath("pages/card.mv"); got != "pages/card_mview.go" {
		t.Errorf("OutputPath = %q", got)
	}
}
