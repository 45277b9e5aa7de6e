//go:build ignore

// gen-reference.go generates a CSV reference of the engine's public API:
// every exported function and method at the repository root, plus the
// config/ and internal/index/ packages that mapping-pack tooling
// depends on most directly.
// Usage: go run tools/gen-reference.go > reference.csv
package main

import (
	"encoding/csv"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// funcInfo holds parsed function info.
type funcInfo struct {
	name      string
	file      string
	line      int
	recv      string
	signature string
	doc       string
}

// fileToGroup maps source files to semantic groups.
var fileToGroup = map[string]string{
	"g2p.go":         "convenience-api",
	"mapping.go":     "mapping",
	"rule.go":        "mapping",
	"abbreviation.go": "mapping",
	"alignment.go":   "alignment",
	"transducer.go":  "transduction",
	"composite.go":   "transduction",
	"network.go":     "network",
	"tokenizer.go":   "network",
	"textsegment.go": "transduction",
	"unidecode.go":   "mapping",
	"errors.go":      "errors",
}

// scanDirs are the directories walked for exported declarations, each
// reported as its own reference group prefix.
var scanDirs = []string{".", "config", "internal/index"}

func main() {
	fset := token.NewFileSet()

	var all []funcInfo
	for _, dir := range scanDirs {
		all = append(all, scanDir(fset, dir)...)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].file != all[j].file {
			return all[i].file < all[j].file
		}
		return all[i].name < all[j].name
	})

	w := csv.NewWriter(os.Stdout)
	w.Write([]string{"name", "receiver", "sig", "desc", "loc", "group"})
	for _, f := range all {
		group := fileToGroup[filepath.Base(f.file)]
		if group == "" {
			group = strings.TrimSuffix(filepath.Base(filepath.Dir(f.file)), "/")
		}
		w.Write([]string{
			f.name,
			f.recv,
			f.signature,
			f.doc,
			fmt.Sprintf("%s:%d", f.file, f.line),
			group,
		})
	}
	w.Flush()
}

func scanDir(fset *token.FileSet, dir string) []funcInfo {
	pkgs, err := parser.ParseDir(fset, dir, func(fi os.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, parser.ParseComments)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parsing %s: %v\n", dir, err)
		os.Exit(1)
	}

	var out []funcInfo
	for _, pkg := range pkgs {
		for _, file := range pkg.Files {
			ast.Inspect(file, func(n ast.Node) bool {
				fn, ok := n.(*ast.FuncDecl)
				if !ok || !unicode.IsUpper(rune(fn.Name.Name[0])) {
					return true
				}
				pos := fset.Position(fn.Pos())
				info := funcInfo{
					name:      fn.Name.Name,
					file:      filepath.Join(dir, filepath.Base(pos.Filename)),
					line:      pos.Line,
					signature: formatSignature(fn),
					doc:       extractFirstSentence(fn.Doc),
				}
				if fn.Recv != nil && len(fn.Recv.List) > 0 {
					info.recv = exprToString(fn.Recv.List[0].Type)
				}
				out = append(out, info)
				return true
			})
		}
	}
	return out
}

// formatSignature returns a function signature like "(word string) string".
func formatSignature(fn *ast.FuncDecl) string {
	var params []string
	if fn.Type.Params != nil {
		for _, field := range fn.Type.Params.List {
			typeStr := exprToString(field.Type)
			if len(field.Names) == 0 {
				params = append(params, typeStr)
			} else {
				for _, name := range field.Names {
					params = append(params, name.Name+" "+typeStr)
				}
			}
		}
	}

	var results []string
	if fn.Type.Results != nil {
		for _, field := range fn.Type.Results.List {
			typeStr := exprToString(field.Type)
			if len(field.Names) == 0 {
				results = append(results, typeStr)
			} else {
				for _, name := range field.Names {
					results = append(results, name.Name+" "+typeStr)
				}
			}
		}
	}

	sig := "(" + strings.Join(params, ", ") + ")"
	if len(results) == 1 {
		sig += " " + results[0]
	} else if len(results) > 1 {
		sig += " (" + strings.Join(results, ", ") + ")"
	}
	return sig
}

// exprToString converts an AST expression to a string representation.
func exprToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return exprToString(t.X) + "." + t.Sel.Name
	case *ast.StarExpr:
		return "*" + exprToString(t.X)
	case *ast.ArrayType:
		if t.Len == nil {
			return "[]" + exprToString(t.Elt)
		}
		return "[...]" + exprToString(t.Elt)
	case *ast.MapType:
		return "map[" + exprToString(t.Key) + "]" + exprToString(t.Value)
	case *ast.InterfaceType:
		return "interface{}"
	case *ast.Ellipsis:
		return "..." + exprToString(t.Elt)
	case *ast.FuncType:
		return "func(...)"
	default:
		return fmt.Sprintf("%T", expr)
	}
}

// extractFirstSentence returns the first sentence from a doc comment.
func extractFirstSentence(doc *ast.CommentGroup) string {
	if doc == nil {
		return ""
	}
	text := strings.TrimSpace(doc.Text())
	for i, r := range text {
		if r == '.' || r == '\n' {
			return strings.TrimSuffix(strings.TrimSpace(text[:i+1]), ".")
		}
	}
	return text
}
