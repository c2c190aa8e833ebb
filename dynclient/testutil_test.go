package dynclient

import (
	"testing"

	"github.com/gqlgo/dyngql/introspection"
)

func strptr(s string) *string { return &s }

func scalarRef(name string) introspection.TypeRef {
	return introspection.TypeRef{Kind: introspection.TypeKindScalar, Name: &name}
}

func enumRef(name string) introspection.TypeRef {
	return introspection.TypeRef{Kind: introspection.TypeKindEnum, Name: &name}
}

func objectRef(name string) introspection.TypeRef {
	return introspection.TypeRef{Kind: introspection.TypeKindObject, Name: &name}
}

func nonNullRef(inner introspection.TypeRef) introspection.TypeRef {
	return introspection.TypeRef{Kind: introspection.TypeKindNonNull, OfType: &inner}
}

func listRef(inner introspection.TypeRef) introspection.TypeRef {
	return introspection.TypeRef{Kind: introspection.TypeKindList, OfType: &inner}
}

func objectType(name string, fields ...*introspection.FieldValue) *introspection.FullType {
	return &introspection.FullType{
		Kind:   introspection.TypeKindObject,
		Name:   strptr(name),
		Fields: fields,
	}
}

func scalarType(name string) *introspection.FullType {
	return &introspection.FullType{Kind: introspection.TypeKindScalar, Name: strptr(name)}
}

func fieldDef(name string, typ introspection.TypeRef, args ...*introspection.InputValue) *introspection.FieldValue {
	return &introspection.FieldValue{Name: name, Type: typ, Args: args}
}

func argDef(name string, typ introspection.TypeRef) *introspection.InputValue {
	return &introspection.InputValue{Name: name, Type: typ}
}

// testSchema resolves a schema whose query type is the type named "Query" and
// whose mutation type, when present among types, is the type named "Mutation".
func testSchema(t *testing.T, types ...*introspection.FullType) *introspection.Schema {
	t.Helper()

	var q introspection.Query
	q.Schema.QueryType.Name = strptr("Query")
	q.Schema.Types = types
	for _, typ := range types {
		if typ.Name != nil && *typ.Name == "Mutation" {
			q.Schema.MutationType = &struct {
				Name *string `json:"name"`
			}{Name: strptr("Mutation")}
		}
	}

	schema, err := introspection.NewSchema(&q)
	if err != nil {
		t.Fatalf("resolve test schema: %v", err)
	}

	return schema
}
