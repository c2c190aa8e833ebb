package graphqljson_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gqlgo/dyngql/graphqljson"
)

func TestUnmarshalData(t *testing.T) {
	t.Parallel()

	type user struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	t.Run("decodes into a struct", func(t *testing.T) {
		t.Parallel()

		var got user
		if err := graphqljson.UnmarshalData([]byte(`{"id":"1","name":"alice"}`), &got); err != nil {
			t.Fatalf("UnmarshalData() error = %v", err)
		}
		if diff := cmp.Diff(user{ID: "1", Name: "alice"}, got); diff != "" {
			t.Errorf("decoded value mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rejects non-pointer targets", func(t *testing.T) {
		t.Parallel()

		var got user
		if err := graphqljson.UnmarshalData([]byte(`{}`), got); err == nil {
			t.Fatal("UnmarshalData() error = nil, want an error for a non-pointer")
		}
	})

	t.Run("rejects nil pointer targets", func(t *testing.T) {
		t.Parallel()

		if err := graphqljson.UnmarshalData([]byte(`{}`), (*user)(nil)); err == nil {
			t.Fatal("UnmarshalData() error = nil, want an error for a nil pointer")
		}
	})
}

func TestExtractField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		field   string
		want    string
		wantErr string
	}{
		{
			name:  "present field",
			data:  `{"user":{"id":"1"},"other":true}`,
			field: "user",
			want:  `{"id":"1"}`,
		},
		{
			name:  "scalar field",
			data:  `{"ping":"pong"}`,
			field: "ping",
			want:  `"pong"`,
		},
		{
			name:    "missing field",
			data:    `{"user":{"id":"1"}}`,
			field:   "viewer",
			wantErr: "field missing from response",
		},
		{
			name:    "empty payload",
			data:    "",
			field:   "user",
			wantErr: "empty payload",
		},
		{
			name:    "malformed payload",
			data:    `[1,2,3`,
			field:   "user",
			wantErr: "decode json",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := graphqljson.ExtractField([]byte(tt.data), tt.field)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ExtractField() error = %v, want it to contain %q", err, tt.wantErr)
				}

				return
			}
			if err != nil {
				t.Fatalf("ExtractField() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, string(got)); diff != "" {
				t.Errorf("field value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
