package dynclient

import (
	"strings"

	"github.com/gqlgo/dyngql/introspection"
)

// Projection describes the result shape a caller wants back: an ordered list
// of field selections. Slice order is render order, so the same projection
// always produces the same query text.
type Projection []Selection

// Selection is one entry of a Projection. A nil Sub selects the field as a
// leaf; a non-nil Sub selects it with a nested sub-selection. Entries with
// Omit set are excluded from the rendered selection set.
type Selection struct {
	Name string
	Sub  Projection
	Omit bool
}

// Pick builds a flat projection of leaf fields.
func Pick(names ...string) Projection {
	p := make(Projection, 0, len(names))
	for _, name := range names {
		p = append(p, Selection{Name: name})
	}

	return p
}

// Nest builds a single-entry projection selecting name with a sub-selection.
func Nest(name string, sub Projection) Projection {
	return Projection{{Name: name, Sub: sub}}
}

// render produces the selection-set text: "{a, b {c}}". An empty projection
// renders as the empty string, valid only for leaf-typed fields.
func (p Projection) render() string {
	entries := make([]string, 0, len(p))
	for _, sel := range p {
		if sel.Omit || sel.Name == "" {
			continue
		}
		if sub := sel.Sub.render(); sub != "" {
			entries = append(entries, sel.Name+" "+sub)
			continue
		}
		entries = append(entries, sel.Name)
	}

	if len(entries) == 0 {
		return ""
	}

	return "{" + strings.Join(entries, ", ") + "}"
}

// defaultProjection derives the minimal result shape for a named type. The
// policy is deliberately first-match: scan the type's fields in declaration
// order and select the first leaf-typed one; if no field is leaf-typed,
// descend into the FIRST declared field whatever its type. Scalar, enum and
// unknown types get an empty projection, as do types with no fields and
// cycles of leafless object types.
func defaultProjection(schema *introspection.Schema, typeName string, seen map[string]bool) Projection {
	typ := schema.Type(typeName)
	if !typ.HasFields() || len(typ.Fields) == 0 {
		return Projection{}
	}
	if seen[typeName] {
		return Projection{}
	}
	seen[typeName] = true

	for _, field := range typ.Fields {
		if field.Type.IsLeaf() {
			return Projection{{Name: field.Name}}
		}
	}

	first := typ.Fields[0]
	inner := first.Type.Unwrap()
	if inner.Name == nil {
		return Projection{}
	}

	return Projection{{Name: first.Name, Sub: defaultProjection(schema, *inner.Name, seen)}}
}
