package analyze

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/packages"

	"shapecheck/literal"
)

// collectConsts walks a package's syntax and records every exported constant
// whose initializer is a single numeric basic literal. The spelling is taken
// verbatim from the source; constants spelled outside the literal grammar
// (hex, exponent) are noted and skipped rather than failed.
func (a *Analyzer) collectConsts(pkg *packages.Package) {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.CONST {
				continue
			}

			for _, sp := range gen.Specs {
				vs, ok := sp.(*ast.ValueSpec)
				if !ok {
					continue
				}

				a.collectConstSpec(pkg.PkgPath, vs)
			}
		}
	}
}

func (a *Analyzer) collectConstSpec(pkgPath string, vs *ast.ValueSpec) {
	for i, name := range vs.Names {
		if !name.IsExported() || i >= len(vs.Values) {
			continue
		}

		text, ok := numericSpelling(vs.Values[i])
		if !ok {
			continue
		}

		id := ShapeID{PkgPath: pkgPath, Name: name.Name}

		num, err := literal.Parse(text)
		if err != nil {
			a.diags.AddInfo("const-spelling", err.Error(), id.String(), "")
			continue
		}

		a.set.Consts = append(a.set.Consts, ConstInfo{ID: id, Number: num})
	}
}

// numericSpelling extracts the source spelling of a numeric literal
// expression, including a unary minus. Anything else is not a single numeric
// literal and yields false.
func numericSpelling(expr ast.Expr) (string, bool) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind == token.INT || e.Kind == token.FLOAT {
			return e.Value, true
		}

	case *ast.UnaryExpr:
		if e.Op != token.SUB {
			return "", false
		}

		if inner, ok := numericSpelling(e.X); ok {
			return "-" + inner, true
		}
	}

	return "", false
}
