package networkmanager_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"strings"
	"testing"
)

// Methods that implement standard interfaces, documented by
// convention.
var conventionalMethods = map[string]bool{
	"String": true,
	"Error":  true,
	"Unwrap": true,
	"Is":     true,
	"Has":    true,
	"Kind":   true,
}

func TestExportedDocs(t *testing.T) {
	for _, dir := range []string{".", "bus"} {
		pkgs, err := parser.ParseDir(token.NewFileSet(), dir, func(fi fs.FileInfo) bool {
			return !strings.HasSuffix(fi.Name(), "_test.go")
		}, parser.ParseComments)
		if err != nil {
			t.Fatalf("parsing %s: %v", dir, err)
		}
		for _, pkg := range pkgs {
			for name, f := range pkg.Files {
				for _, d := range f.Decls {
					fn, ok := d.(*ast.FuncDecl)
					if !ok || !fn.Name.IsExported() || fn.Doc != nil {
						continue
					}
					if fn.Recv != nil && conventionalMethods[fn.Name.Name] {
						continue
					}
					t.Errorf("%s: exported func %s has no doc comment", name, fn.Name.Name)
				}
			}
		}
	}
}
