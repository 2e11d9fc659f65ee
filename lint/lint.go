// Package lint finds code that builds an nn wrapper without going through
// its nil check: a literal nil passed to a checked constructor, or a wrapper
// created as a zero value.
package lint

import (
	"cmp"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

const DefaultPackage = "github.com/bvisness/nonnull/nn"

type Config struct {
	// Package is the import path of nn. Defaults to DefaultPackage.
	Package string
	// Logger gets one line per file checked. Defaults to discarding.
	Logger *slog.Logger
}

func (c Config) pkg() string {
	if c.Package == "" {
		return DefaultPackage
	}
	return c.Package
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}

type Rule string

const (
	RuleNilArg    Rule = "nil-arg"
	RuleZeroValue Rule = "zero-value"
)

type Diagnostic struct {
	File    string `json:"file" yaml:"file"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Rule    Rule   `json:"rule" yaml:"rule"`
	Message string `json:"message" yaml:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s (%s)", d.File, d.Line, d.Column, d.Message, d.Rule)
}

// Functions that check their argument for nil.
var checkedConstructors = map[string]bool{
	"New":         true,
	"FromPtr":     true,
	"FromUnique":  true,
	"FromShared":  true,
	"Addr":        true,
}

var wrapperTypes = map[string]bool{
	"NN":        true,
	"Ptr":       true,
	"UniquePtr": true,
	"SharedPtr": true,
}

// CheckFile reports the problems in one parsed file.
func CheckFile(fset *token.FileSet, file *ast.File, cfg Config) []Diagnostic {
	name := importName(file, cfg.pkg())
	if name == "" {
		return nil
	}

	var diags []Diagnostic
	report := func(n ast.Node, rule Rule, msg string, args ...any) {
		pos := fset.Position(n.Pos())
		diags = append(diags, Diagnostic{
			File:    pos.Filename,
			Line:    pos.Line,
			Column:  pos.Column,
			Rule:    rule,
			Message: fmt.Sprintf(msg, args...),
		})
	}

	ast.Inspect(file, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.CallExpr:
			if fn, ok := qualified(n.Fun, name); ok && checkedConstructors[fn] {
				for _, arg := range n.Args {
					if isNil(arg) {
						report(arg, RuleNilArg, "nil passed to %s.%s always fails its check", name, fn)
					}
				}
			}
			if isBuiltin(n.Fun, "new") && len(n.Args) == 1 {
				if typ, ok := wrapperType(n.Args[0], name); ok {
					report(n, RuleZeroValue, "new(%s.%s) points at an empty wrapper", name, typ)
				}
			}
		case *ast.CompositeLit:
			if typ, ok := wrapperType(n.Type, name); ok {
				report(n, RuleZeroValue, "%s.%s literal bypasses the nil check", name, typ)
			}
		case *ast.ValueSpec:
			if n.Type != nil && len(n.Values) == 0 {
				if typ, ok := wrapperType(n.Type, name); ok {
					report(n, RuleZeroValue, "%s.%s declared without a value is empty", name, typ)
				}
			}
		}
		return true
	})
	return diags
}

// CheckSource parses and checks a single file. src is anything
// go/parser.ParseFile accepts, or nil to read filename.
func CheckSource(filename string, src any, cfg Config) ([]Diagnostic, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return CheckFile(fset, file, cfg), nil
}

// CheckPaths checks every .go file named in paths or found under them,
// skipping directories the go tool ignores. Results are sorted by position.
func CheckPaths(paths []string, cfg Config) ([]Diagnostic, error) {
	log := cfg.logger()
	var diags []Diagnostic
	check := func(filename string) error {
		fileDiags, err := CheckSource(filename, nil, cfg)
		if err != nil {
			return err
		}
		log.Debug("checked file", "file", filename, "findings", len(fileDiags))
		diags = append(diags, fileDiags...)
		return nil
	}

	for _, root := range paths {
		err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if p != root && ignoredDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if p != root && !strings.HasSuffix(p, ".go") {
				return nil
			}
			return check(p)
		})
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", root, err)
		}
	}

	slices.SortFunc(diags, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.File, b.File),
			cmp.Compare(a.Line, b.Line),
			cmp.Compare(a.Column, b.Column),
		)
	})
	return diags, nil
}

func ignoredDir(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
		name == "testdata" || name == "vendor"
}

// importName returns the name nn is imported under in file, or "" if it is
// not imported or imported in a way we don't follow (blank or dot imports).
func importName(file *ast.File, pkgPath string) string {
	for _, imp := range file.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		if err != nil || p != pkgPath {
			continue
		}
		if imp.Name != nil {
			if imp.Name.Name == "_" || imp.Name.Name == "." {
				return ""
			}
			return imp.Name.Name
		}
		return path.Base(p)
	}
	return ""
}

// qualified matches pkg.Name, pkg.Name[T] and pkg.Name[T, U].
func qualified(expr ast.Expr, pkg string) (string, bool) {
	switch e := expr.(type) {
	case *ast.IndexExpr:
		expr = e.X
	case *ast.IndexListExpr:
		expr = e.X
	}
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return "", false
	}
	x, ok := sel.X.(*ast.Ident)
	if !ok || x.Name != pkg {
		return "", false
	}
	return sel.Sel.Name, true
}

func wrapperType(expr ast.Expr, pkg string) (string, bool) {
	name, ok := qualified(expr, pkg)
	if !ok || !wrapperTypes[name] {
		return "", false
	}
	return name, true
}

func isNil(expr ast.Expr) bool {
	id, ok := ast.Unparen(expr).(*ast.Ident)
	return ok && id.Name == "nil"
}

func isBuiltin(expr ast.Expr, name string) bool {
	id, ok := expr.(*ast.Ident)
	return ok && id.Name == name
}
