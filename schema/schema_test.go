package schema_test

import (
	"testing"
	"time"

	"github.com/mocksmith/mocksmith/schema"
)

func TestBuilders_CopyOnWrite(t *testing.T) {
	base := schema.String().Min(1)
	widened := base.Max(5)

	if _, ok := base.Node().MaxLength(); ok {
		t.Fatalf("chaining must not mutate the base builder")
	}
	if v, ok := widened.Node().MaxLength(); !ok || v != 5 {
		t.Fatalf("derived builder lost its max: %v %v", v, ok)
	}
	if v, ok := widened.Node().MinLength(); !ok || v != 1 {
		t.Fatalf("derived builder lost the inherited min: %v %v", v, ok)
	}
}

func TestObject_FieldOrderPreserved(t *testing.T) {
	n := schema.Object(
		schema.F("c", schema.Bool()),
		schema.F("a", schema.Bool()),
		schema.F("b", schema.Bool()),
	)
	want := []string{"c", "a", "b"}
	for i, f := range n.Fields() {
		if f.Name != want[i] {
			t.Fatalf("field %d = %q, want %q", i, f.Name, want[i])
		}
	}
}

func TestLazy_MemoizesAndAllowsSelfReference(t *testing.T) {
	calls := 0
	var node *schema.Node
	node = schema.Object(
		schema.F("next", schema.Lazy(func() *schema.Node {
			calls++
			return node
		})),
	)

	lazy := node.Fields()[0].Schema
	first := lazy.Resolve()
	second := lazy.Resolve()
	if first != node || second != node {
		t.Fatalf("lazy must resolve to the self node")
	}
	if calls != 1 {
		t.Fatalf("thunk ran %d times, want memoized single run", calls)
	}
}

func TestValidate_ObjectHappyPath(t *testing.T) {
	s := schema.Object(
		schema.F("uid", schema.String().Min(1)),
		schema.F("age", schema.Number().Min(18).Max(120)),
		schema.F("nickname", schema.Optional(schema.String())),
	)
	v := map[string]any{"uid": "u_1", "age": 30.0}
	if iss := schema.Validate(s, v); len(iss) != 0 {
		t.Fatalf("unexpected issues: %v", iss)
	}
}

func TestValidate_CollectsViolations(t *testing.T) {
	s := schema.Object(
		schema.F("uid", schema.String().Min(3)),
		schema.F("age", schema.Number().Min(18).Max(120)),
	)
	iss := schema.Validate(s, map[string]any{"uid": "x", "age": 150.0})
	if len(iss) != 2 {
		t.Fatalf("want 2 issues, got %v", iss)
	}
	codes := map[string]string{}
	for _, it := range iss {
		codes[it.Path] = it.Code
	}
	if codes["/uid"] != schema.CodeTooShort {
		t.Fatalf("uid issue = %v", codes)
	}
	if codes["/age"] != schema.CodeTooBig {
		t.Fatalf("age issue = %v", codes)
	}
}

func TestValidate_RequiredFieldMissing(t *testing.T) {
	s := schema.Object(schema.F("uid", schema.String()))
	iss := schema.Validate(s, map[string]any{})
	if len(iss) != 1 || iss[0].Code != schema.CodeRequired || iss[0].Path != "/uid" {
		t.Fatalf("want a required issue at /uid, got %v", iss)
	}
}

func TestValidate_PatternAndEnum(t *testing.T) {
	if iss := schema.Validate(schema.String().Pattern(`^[a-z]+$`), "abc"); len(iss) != 0 {
		t.Fatalf("pattern should match: %v", iss)
	}
	if iss := schema.Validate(schema.String().Pattern(`^[a-z]+$`), "ABC"); len(iss) == 0 {
		t.Fatalf("pattern should reject ABC")
	}
	if iss := schema.Validate(schema.Enum("a", "b"), "b"); len(iss) != 0 {
		t.Fatalf("enum member rejected: %v", iss)
	}
	if iss := schema.Validate(schema.Enum("a", "b"), "z"); len(iss) == 0 || iss[0].Code != schema.CodeInvalidEnum {
		t.Fatalf("want invalid_enum, got %v", iss)
	}
}

func TestValidate_TupleWithRest(t *testing.T) {
	s := schema.Tuple(schema.Number(), schema.Bool()).Rest(schema.String())
	ok := []any{1.5, true, "x", "y"}
	if iss := schema.Validate(s, ok); len(iss) != 0 {
		t.Fatalf("unexpected issues: %v", iss)
	}
	bad := []any{1.5, true, 42}
	if iss := schema.Validate(s, bad); len(iss) == 0 {
		t.Fatalf("rest elements must be strings")
	}

	bare := schema.Tuple(schema.Number())
	if iss := schema.Validate(bare, []any{1.0, 2.0}); len(iss) == 0 {
		t.Fatalf("extra elements without rest must be rejected")
	}
}

func TestValidate_UnionAnyBranch(t *testing.T) {
	s := schema.Union(schema.String(), schema.Number())
	if iss := schema.Validate(s, "hello"); len(iss) != 0 {
		t.Fatalf("string branch should match: %v", iss)
	}
	if iss := schema.Validate(s, 3.14); len(iss) != 0 {
		t.Fatalf("number branch should match: %v", iss)
	}
	if iss := schema.Validate(s, true); len(iss) == 0 || iss[0].Code != schema.CodeUnionNoMatch {
		t.Fatalf("want union_no_match, got %v", iss)
	}
}

func TestValidate_DateBounds(t *testing.T) {
	min := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := schema.Date().Min(min)
	if iss := schema.Validate(s, min.AddDate(0, 1, 0)); len(iss) != 0 {
		t.Fatalf("unexpected issues: %v", iss)
	}
	if iss := schema.Validate(s, min.AddDate(-1, 0, 0)); len(iss) == 0 {
		t.Fatalf("date below min must be rejected")
	}
}

func TestValidate_DefaultAcceptsDeclaredValue(t *testing.T) {
	s := schema.Default(schema.Number(), "fallback")
	// The declared default is accepted verbatim even though it does not
	// match the inner schema.
	if iss := schema.Validate(s, "fallback"); len(iss) != 0 {
		t.Fatalf("declared default rejected: %v", iss)
	}
	if iss := schema.Validate(s, 4.0); len(iss) != 0 {
		t.Fatalf("inner value rejected: %v", iss)
	}
	if iss := schema.Validate(s, true); len(iss) == 0 {
		t.Fatalf("neither default nor inner, should be rejected")
	}
}

func TestIssues_ErrorSummarizes(t *testing.T) {
	iss := schema.Issues{
		{Path: "/a", Code: schema.CodeRequired},
		{Path: "/b", Code: schema.CodeTooBig},
		{Path: "/c", Code: schema.CodePattern},
		{Path: "/d", Code: schema.CodeTooSmall},
	}
	msg := iss.Error()
	if msg == "" {
		t.Fatalf("expected a summary")
	}
	if want := "required at /a"; len(msg) < len(want) || msg[:len(want)] != want {
		t.Fatalf("summary = %q", msg)
	}
}
