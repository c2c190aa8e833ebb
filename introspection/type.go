package introspection

type TypeKind string

const (
	TypeKindScalar      TypeKind = "SCALAR"
	TypeKindObject      TypeKind = "OBJECT"
	TypeKindInterface   TypeKind = "INTERFACE"
	TypeKindUnion       TypeKind = "UNION"
	TypeKindEnum        TypeKind = "ENUM"
	TypeKindInputObject TypeKind = "INPUT_OBJECT"
	TypeKindList        TypeKind = "LIST"
	TypeKindNonNull     TypeKind = "NON_NULL"
)

type FullTypes []*FullType

func (fs FullTypes) NameMap() map[string]*FullType {
	typeMap := make(map[string]*FullType)
	for _, typ := range fs {
		if typ.Name == nil {
			continue
		}
		typeMap[*typ.Name] = typ
	}

	return typeMap
}

type FullType struct {
	Kind          TypeKind      `json:"kind"`
	Name          *string       `json:"name"`
	Description   *string       `json:"description"`
	Fields        []*FieldValue `json:"fields"`
	InputFields   []*InputValue `json:"inputFields"`
	Interfaces    []*TypeRef    `json:"interfaces"`
	EnumValues    []*EnumValue  `json:"enumValues"`
	PossibleTypes []*TypeRef    `json:"possibleTypes"`
}

// HasFields reports whether the type is object-like, i.e. declares a field
// list of its own that can appear in a selection set.
func (t *FullType) HasFields() bool {
	if t == nil {
		return false
	}

	return t.Kind == TypeKindObject || t.Kind == TypeKindInterface
}

type FieldValue struct {
	Type              TypeRef       `json:"type"`
	Description       *string       `json:"description"`
	DeprecationReason *string       `json:"deprecationReason"`
	Name              string        `json:"name"`
	Args              []*InputValue `json:"args"`
	IsDeprecated      bool          `json:"isDeprecated"`
}

type InputValue struct {
	Type         TypeRef `json:"type"`
	Description  *string `json:"description"`
	DefaultValue *string `json:"defaultValue"`
	Name         string  `json:"name"`
}

type EnumValue struct {
	Description       *string `json:"description"`
	DeprecationReason *string `json:"deprecationReason"`
	Name              string  `json:"name"`
	IsDeprecated      bool    `json:"isDeprecated"`
}

type TypeRef struct {
	Name   *string  `json:"name"`
	OfType *TypeRef `json:"ofType"`
	Kind   TypeKind `json:"kind"`
}

// String renders the type reference in GraphQL type-expression syntax:
// a named type renders as its name, NON_NULL appends "!" to its inner type,
// LIST wraps its inner type in brackets. Wrappers nest to arbitrary depth,
// so NonNull(List(NonNull(Int))) renders as "[Int!]!".
func (t *TypeRef) String() string {
	switch t.Kind {
	case TypeKindNonNull:
		return t.OfType.String() + "!"
	case TypeKindList:
		return "[" + t.OfType.String() + "]"
	default:
		if t.Name == nil {
			return ""
		}

		return *t.Name
	}
}

// Unwrap strips NON_NULL and LIST wrappers and returns the innermost named
// type reference.
func (t *TypeRef) Unwrap() *TypeRef {
	for t.OfType != nil {
		t = t.OfType
	}

	return t
}

// IsLeaf reports whether the type resolves to a scalar or enum, a type that
// takes no sub-selection.
func (t *TypeRef) IsLeaf() bool {
	kind := t.Unwrap().Kind

	return kind == TypeKindScalar || kind == TypeKindEnum
}

type Query struct {
	Schema struct {
		QueryType struct {
			Name *string `json:"name"`
		} `json:"queryType"`
		MutationType *struct {
			Name *string `json:"name"`
		} `json:"mutationType"`
		SubscriptionType *struct {
			Name *string `json:"name"`
		} `json:"subscriptionType"`
		Types      FullTypes        `json:"types"`
		Directives []*DirectiveType `json:"directives"`
	} `json:"__schema"`
}

type DirectiveType struct {
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Locations   []string      `json:"locations"`
	Args        []*InputValue `json:"args"`
}
