package dynclient

import (
	"github.com/gqlgo/dyngql/introspection"
)

// Operation is one synthesized schema operation: a field of the remote query
// or mutation type with its argument text pre-rendered and its default result
// shape pre-computed. Operations are immutable once synthesized.
type Operation struct {
	kind        operationKind
	name        string
	argDecls    string
	argBindings string
	defaults    Projection
}

// Name returns the schema field name the operation was synthesized from.
func (o *Operation) Name() string {
	return o.name
}

// Mutation reports whether the operation came from the mutation type.
func (o *Operation) Mutation() bool {
	return o.kind == kindMutation
}

// DefaultProjection returns the result shape used when a call supplies none.
func (o *Operation) DefaultProjection() Projection {
	return o.defaults
}

// Document renders the operation text for one invocation.
func (o *Operation) Document(projection Projection) string {
	return buildDocument(o.kind, o.name, o.argDecls, o.argBindings, projection)
}

// synthesizeOperations builds the operation table from an introspected
// schema. Mutation fields register after query fields, so a mutation sharing
// a query field's name replaces it.
func synthesizeOperations(schema *introspection.Schema) map[string]*Operation {
	ops := make(map[string]*Operation)

	register := func(kind operationKind, fields []*introspection.FieldValue) {
		for _, field := range fields {
			op := &Operation{
				kind:        kind,
				name:        field.Name,
				argDecls:    renderArgDecls(field.Args),
				argBindings: renderArgBindings(field.Args),
			}
			if inner := field.Type.Unwrap(); inner.Name != nil {
				op.defaults = defaultProjection(schema, *inner.Name, map[string]bool{})
			}
			ops[field.Name] = op
		}
	}

	register(kindQuery, schema.QueryFields())
	register(kindMutation, schema.MutationFields())

	return ops
}
