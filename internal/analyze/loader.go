package analyze

import (
	"fmt"
	"go/types"
	"reflect"
	"strings"

	"golang.org/x/tools/go/packages"

	"shapecheck/internal/diagnostic"
	"shapecheck/shape"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and extracts their shapes.
type Analyzer struct {
	set   *ShapeSet
	diags diagnostic.Diagnostics
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		set: NewShapeSet(),
	}
}

// LoadPackages loads the specified packages and extracts a shape for every
// exported struct type, plus every exported numeric constant. Patterns are
// standard Go package patterns (e.g., "./catalog", "shapecheck/catalog").
func (a *Analyzer) LoadPackages(patterns ...string) (*ShapeSet, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.set, nil
}

// Set returns the current shape set.
func (a *Analyzer) Set() *ShapeSet {
	return a.set
}

// Diagnostics returns the notes accumulated while loading.
func (a *Analyzer) Diagnostics() diagnostic.Diagnostics {
	return a.diags
}

// processPackage extracts shapes and constants from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		typeName, ok := obj.(*types.TypeName)
		if !ok || !typeName.Exported() {
			continue
		}

		st, ok := typeName.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		id := ShapeID{
			PkgPath: pkg.PkgPath,
			Name:    name,
		}

		s, err := a.buildShape(id, st)
		if err != nil {
			return err
		}

		a.set.Shapes[id] = s
		pkgInfo.Shapes = append(pkgInfo.Shapes, id)
	}

	a.collectConsts(pkg)
	a.set.Packages[pkg.PkgPath] = pkgInfo

	return nil
}

// buildShape turns a struct type into a shape, deriving flags per field.
func (a *Analyzer) buildShape(id ShapeID, st *types.Struct) (*shape.Shape, error) {
	s := shape.New(id.String())

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Exported() {
			continue
		}

		tag := reflect.StructTag(st.Tag(i))
		m := shape.Member{
			Type:     field.Type(),
			Readonly: hasTagOption(tag, "shape", "readonly"),
			Optional: fieldOptional(field.Type(), tag),
		}

		if err := s.Add(memberKey(field.Name(), tag), m); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// memberKey returns the JSON tag name if present, otherwise the field name.
func memberKey(fieldName string, tag reflect.StructTag) string {
	jsonTag := tag.Get("json")
	if jsonTag == "" || jsonTag == "-" {
		return fieldName
	}

	name, _, _ := strings.Cut(jsonTag, ",")
	if name == "" {
		return fieldName
	}

	return name
}

// fieldOptional reports whether a field declares its member optional: an
// explicit tag, a pointer type, or a json omitempty option.
func fieldOptional(t types.Type, tag reflect.StructTag) bool {
	if hasTagOption(tag, "shape", "optional") {
		return true
	}

	if _, isPtr := t.Underlying().(*types.Pointer); isPtr {
		return true
	}

	jsonTag := tag.Get("json")
	_, opts, _ := strings.Cut(jsonTag, ",")

	return hasOption(opts, "omitempty")
}

// hasTagOption reports whether the tag under key contains the given
// comma-separated option.
func hasTagOption(tag reflect.StructTag, key, option string) bool {
	return hasOption(tag.Get(key), option)
}

func hasOption(opts, option string) bool {
	for opts != "" {
		var head string
		head, opts, _ = strings.Cut(opts, ",")
		if head == option {
			return true
		}
	}

	return false
}
