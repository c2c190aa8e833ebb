package graphqljson

import (
	"fmt"
	"reflect"

	json "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// UnmarshalData parses the GraphQL response payload contained in data and stores
// the result into v, which must be a non-nil pointer.
func UnmarshalData(data jsontext.Value, v any) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("decode graphql data: decode json: cannot decode into non-pointer %T", v)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode graphql data: decode json: %w", err)
	}

	return nil
}

// ExtractField returns the value of a single top-level field of a response
// payload. Synthesized operations select exactly one root field, so their
// result is always extracted this way.
func ExtractField(data jsontext.Value, name string) (jsontext.Value, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("extract graphql field %q: empty payload", name)
	}

	var fields map[string]jsontext.Value
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("extract graphql field %q: decode json: %w", name, err)
	}

	value, ok := fields[name]
	if !ok {
		return nil, fmt.Errorf("extract graphql field %q: field missing from response", name)
	}

	return value, nil
}
