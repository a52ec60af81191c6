package report

import (
	"fmt"
	"go/types"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"shapecheck/internal/common"
	"shapecheck/shape"
)

// KeySets is the classification report for one shape.
type KeySets struct {
	Shape    string        `json:"shape"`
	Readonly []string      `json:"readonly"`
	Writable []string      `json:"writable"`
	Optional []string      `json:"optional"`
	Required []string      `json:"required"`
	Func     []string      `json:"func"`
	NonFunc  []string      `json:"non_func"`
	Picked   []PickedEntry `json:"required_shape"`
}

// PickedEntry is one member of the required sub-shape.
type PickedEntry struct {
	Key      string `json:"key"`
	Type     string `json:"type"`
	Readonly bool   `json:"readonly,omitempty"`
}

// ForShape classifies every key of s and collects the result.
func ForShape(s *shape.Shape) KeySets {
	r := KeySets{
		Shape:    s.Name(),
		Readonly: shape.ReadonlyKeys(s),
		Writable: shape.WritableKeys(s),
		Optional: shape.OptionalKeys(s),
		Required: shape.RequiredKeys(s),
		Func:     shape.FuncKeys(s),
		NonFunc:  shape.NonFuncKeys(s),
	}

	picked := s.PickRequired()
	for _, k := range picked.Keys() {
		m, _ := picked.Member(k)
		r.Picked = append(r.Picked, PickedEntry{
			Key:      k,
			Type:     typeText(m.Type),
			Readonly: m.Readonly,
		})
	}

	return r
}

// Text renders the report as stable, line-oriented text.
func (r KeySets) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "shape %s\n", r.Shape)
	writeSet(&b, "readonly", r.Readonly)
	writeSet(&b, "writable", r.Writable)
	writeSet(&b, "optional", r.Optional)
	writeSet(&b, "required", r.Required)
	writeSet(&b, "func", r.Func)
	writeSet(&b, "non-func", r.NonFunc)

	b.WriteString("required sub-shape:\n")
	if common.IsEmpty(r.Picked) {
		b.WriteString("  (empty)\n")
		return b.String()
	}

	for _, e := range r.Picked {
		flag := ""
		if e.Readonly {
			flag = " readonly"
		}

		fmt.Fprintf(&b, "  %s: %s%s\n", e.Key, e.Type, flag)
	}

	return b.String()
}

func writeSet(b *strings.Builder, label string, keys []string) {
	if common.IsEmpty(keys) {
		fmt.Fprintf(b, "  %-8s -\n", label)
		return
	}

	fmt.Fprintf(b, "  %-8s %s\n", label, strings.Join(keys, ", "))
}

func typeText(t types.Type) string {
	if t == nil {
		return "<nil>"
	}

	return types.TypeString(t, nil)
}

// Dump writes a raw spew dump of the given values, for debugging the
// extracted model.
func Dump(w io.Writer, values ...any) {
	spew.Fdump(w, values...)
}
