package dynclient

import (
	"strings"

	"github.com/gqlgo/dyngql/introspection"
)

type operationKind string

const (
	kindQuery    operationKind = "query"
	kindMutation operationKind = "mutation"
)

// renderArgDecls renders the variable-definition list of an operation in the
// field's declared argument order: "$id: ID!, $limit: Int".
func renderArgDecls(args []*introspection.InputValue) string {
	decls := make([]string, 0, len(args))
	for _, arg := range args {
		decls = append(decls, "$"+arg.Name+": "+arg.Type.String())
	}

	return strings.Join(decls, ", ")
}

// renderArgBindings renders the argument list binding each declared argument
// to its variable: "id: $id, limit: $limit".
func renderArgBindings(args []*introspection.InputValue) string {
	bindings := make([]string, 0, len(args))
	for _, arg := range args {
		bindings = append(bindings, arg.Name+": $"+arg.Name)
	}

	return strings.Join(bindings, ", ")
}

// buildDocument assembles a complete operation document. The declaration and
// binding parens are always emitted, even when the field takes no arguments.
func buildDocument(kind operationKind, name, argDecls, argBindings string, projection Projection) string {
	var b strings.Builder
	b.WriteString(string(kind))
	b.WriteString(" (")
	b.WriteString(argDecls)
	b.WriteString(") { ")
	b.WriteString(name)
	b.WriteString(" (")
	b.WriteString(argBindings)
	b.WriteString(")")
	if sel := projection.render(); sel != "" {
		b.WriteString(" ")
		b.WriteString(sel)
	}
	b.WriteString(" }")

	return b.String()
}
