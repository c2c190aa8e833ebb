package introspection

import (
	"errors"
	"fmt"
)

// Schema is the introspected shape of a remote GraphQL API. It is built once
// from an introspection query result and never changes afterwards.
type Schema struct {
	types    map[string]*FullType
	query    *FullType
	mutation *FullType
}

// NewSchema resolves an introspection result into a Schema. The query type is
// required; a schema without a mutation type is tolerated.
func NewSchema(q *Query) (*Schema, error) {
	if q.Schema.QueryType.Name == nil {
		return nil, errors.New("introspection result declares no query type")
	}

	types := q.Schema.Types.NameMap()

	query, ok := types[*q.Schema.QueryType.Name]
	if !ok {
		return nil, fmt.Errorf("query type %q missing from introspected types", *q.Schema.QueryType.Name)
	}

	s := &Schema{types: types, query: query}

	if mt := q.Schema.MutationType; mt != nil && mt.Name != nil {
		mutation, ok := types[*mt.Name]
		if !ok {
			return nil, fmt.Errorf("mutation type %q missing from introspected types", *mt.Name)
		}
		s.mutation = mutation
	}

	return s, nil
}

// Type looks up a type by name. Returns nil for unknown names.
func (s *Schema) Type(name string) *FullType {
	return s.types[name]
}

// QueryFields returns the query type's fields in declaration order.
func (s *Schema) QueryFields() []*FieldValue {
	return s.query.Fields
}

// MutationFields returns the mutation type's fields in declaration order, or
// nil when the schema has no mutation type.
func (s *Schema) MutationFields() []*FieldValue {
	if s.mutation == nil {
		return nil
	}

	return s.mutation.Fields
}
