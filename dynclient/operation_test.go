package dynclient

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSynthesizeOperations(t *testing.T) {
	t.Parallel()

	schema := testSchema(t,
		objectType("Query",
			fieldDef("user", objectRef("User"), argDef("id", nonNullRef(scalarRef("ID")))),
			fieldDef("version", scalarRef("String")),
		),
		objectType("Mutation",
			fieldDef("updateUser", objectRef("User"),
				argDef("id", nonNullRef(scalarRef("ID"))),
				argDef("name", scalarRef("String")),
			),
		),
		objectType("User",
			fieldDef("id", nonNullRef(scalarRef("ID"))),
			fieldDef("name", scalarRef("String")),
		),
	)

	ops := synthesizeOperations(schema)
	if len(ops) != 3 {
		t.Fatalf("synthesized %d operations, want 3", len(ops))
	}

	user := ops["user"]
	if user == nil {
		t.Fatal("operation user was not synthesized")
	}
	if user.Mutation() {
		t.Errorf("user should be a query operation")
	}
	if diff := cmp.Diff("{id}", user.DefaultProjection().render()); diff != "" {
		t.Errorf("user default projection mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("query ($id: ID!) { user (id: $id) {id} }", user.Document(user.DefaultProjection())); diff != "" {
		t.Errorf("user document mismatch (-want +got):\n%s", diff)
	}

	version := ops["version"]
	if version == nil {
		t.Fatal("operation version was not synthesized")
	}
	if got := version.DefaultProjection().render(); got != "" {
		t.Errorf("version default projection = %q, want empty for a leaf return type", got)
	}
	if diff := cmp.Diff("query () { version () }", version.Document(version.DefaultProjection())); diff != "" {
		t.Errorf("version document mismatch (-want +got):\n%s", diff)
	}

	update := ops["updateUser"]
	if update == nil {
		t.Fatal("operation updateUser was not synthesized")
	}
	if !update.Mutation() {
		t.Errorf("updateUser should be a mutation operation")
	}
	want := "mutation ($id: ID!, $name: String) { updateUser (id: $id, name: $name) {id} }"
	if diff := cmp.Diff(want, update.Document(update.DefaultProjection())); diff != "" {
		t.Errorf("updateUser document mismatch (-want +got):\n%s", diff)
	}
}

func TestSynthesizeOperationsMutationWinsNameCollision(t *testing.T) {
	t.Parallel()

	schema := testSchema(t,
		objectType("Query",
			fieldDef("status", scalarRef("String")),
		),
		objectType("Mutation",
			fieldDef("status", scalarRef("Boolean")),
		),
	)

	ops := synthesizeOperations(schema)
	if len(ops) != 1 {
		t.Fatalf("synthesized %d operations, want 1", len(ops))
	}

	// A mutation field sharing a query field's name registers last and wins.
	if !ops["status"].Mutation() {
		t.Errorf("status should resolve to the mutation-defined operation")
	}
}

func TestSynthesizeOperationsWithoutMutationType(t *testing.T) {
	t.Parallel()

	schema := testSchema(t,
		objectType("Query",
			fieldDef("ping", scalarRef("String")),
		),
	)

	ops := synthesizeOperations(schema)
	if len(ops) != 1 {
		t.Fatalf("synthesized %d operations, want 1", len(ops))
	}
	if ops["ping"] == nil {
		t.Errorf("operation ping was not synthesized")
	}
}
