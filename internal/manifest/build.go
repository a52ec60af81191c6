package manifest

import (
	"fmt"
	"go/types"
	"strings"

	"shapecheck/internal/diagnostic"
	"shapecheck/internal/match"
	"shapecheck/shape"
)

// basicTypes is the universe of basic type spellings a manifest may use.
var basicTypes = map[string]types.Type{
	"bool":    types.Typ[types.Bool],
	"string":  types.Typ[types.String],
	"int":     types.Typ[types.Int],
	"int8":    types.Typ[types.Int8],
	"int16":   types.Typ[types.Int16],
	"int32":   types.Typ[types.Int32],
	"int64":   types.Typ[types.Int64],
	"uint":    types.Typ[types.Uint],
	"uint8":   types.Typ[types.Uint8],
	"uint16":  types.Typ[types.Uint16],
	"uint32":  types.Typ[types.Uint32],
	"uint64":  types.Typ[types.Uint64],
	"float32": types.Typ[types.Float32],
	"float64": types.Typ[types.Float64],
}

// Build resolves a parsed manifest into a shape set. Unknown type spellings,
// duplicate shape names and duplicate member keys produce error diagnostics
// with shape/member coordinates; a shape with any error is not registered.
func Build(mf *File) (*shape.Set, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	set := shape.NewSet()
	for _, def := range mf.Shapes {
		s, ok := buildShape(def, &diags)
		if !ok {
			continue
		}

		if err := set.Add(s); err != nil {
			diags.AddError("dup-shape", err.Error(), def.Name, "")
		}
	}

	return set, diags
}

func buildShape(def ShapeDef, diags *diagnostic.Diagnostics) (*shape.Shape, bool) {
	s := shape.New(def.Name)
	ok := true

	for _, md := range def.Members {
		t, err := resolveType(md.Type)
		if err != nil {
			diags.AddError("bad-type", err.Error(), def.Name, md.Key)
			ok = false
			continue
		}

		m := shape.Member{
			Type:     t,
			Readonly: md.Readonly,
			Optional: md.Optional,
		}

		if err := s.Add(md.Key, m); err != nil {
			diags.AddError("dup-member", err.Error(), def.Name, md.Key)
			ok = false
		}
	}

	return s, ok
}

// resolveType resolves a member type spelling against the manifest universe:
// basic types, "func()", and "*"-prefixed pointer forms of either.
func resolveType(text string) (types.Type, error) {
	if inner, isPtr := strings.CutPrefix(text, "*"); isPtr {
		elem, err := resolveType(inner)
		if err != nil {
			return nil, err
		}

		return types.NewPointer(elem), nil
	}

	if text == "func()" {
		return types.NewSignatureType(nil, nil, nil, nil, nil, false), nil
	}

	if t, ok := basicTypes[text]; ok {
		return t, nil
	}

	known := make([]string, 0, len(basicTypes))
	for name := range basicTypes {
		known = append(known, name)
	}

	if hint, ok := match.Closest(text, known); ok {
		return nil, fmt.Errorf("unknown member type spelling %q (did you mean %q?)", text, hint)
	}

	return nil, fmt.Errorf("unknown member type spelling %q", text)
}
