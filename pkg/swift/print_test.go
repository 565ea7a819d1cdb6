package swift

import (
	"errors"
	"strings"
	"testing"
)

const fooDump = `kind=Global
  kind=Function
    kind=Module, text="main"
    kind=Identifier, text="foo"
    kind=Type
      kind=FunctionType
        kind=ArgumentTuple
          kind=Type
            kind=Tuple
              kind=TupleElement
                kind=Type
                  kind=Structure
                    kind=Module, text="Swift"
                    kind=Identifier, text="Int"
        kind=ReturnType
          kind=Type
            kind=Tuple
`

const arrayDump = `kind=Type
  kind=BoundGenericStructure
    kind=Type
      kind=Structure
        kind=Module, text="Swift"
        kind=Identifier, text="Array"
    kind=TypeList
      kind=Type
        kind=Structure
          kind=Module, text="Swift"
          kind=Identifier, text="Int"
`

const specializedDump = `kind=Global
  kind=FunctionSignatureSpecialization
    kind=SpecializationPassID, index=0
    kind=FunctionSignatureSpecializationParam
      kind=FunctionSignatureSpecializationParamKind, index=0
      kind=FunctionSignatureSpecializationParamPayload, text="$s4main3baryyF"
  kind=Function
    kind=Module, text="main"
    kind=Identifier, text="foo"
    kind=Type
      kind=FunctionType
        kind=ArgumentTuple
          kind=Type
            kind=Tuple
        kind=ReturnType
          kind=Type
            kind=Tuple
`

func mustReadTree(t *testing.T, dump string) *Node {
	t.Helper()
	node, err := ReadTree(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("ReadTree() error = %v", err)
	}
	return node
}

func TestPrint(t *testing.T) {
	foo := mustReadTree(t, fooDump)
	array := mustReadTree(t, arrayDump)

	tests := []struct {
		name string
		node *Node
		opts []Option
		want string
	}{
		{"default", foo, nil, "main.foo(Swift.Int) -> ()"},
		{"simplified", foo, []Option{WithSimplified()}, "main.foo(_:)"},
		{"no modules", foo, []Option{WithoutModuleNames()}, "foo(Int) -> ()"},
		{"hidden module", foo, []Option{WithHiddenModule("main")}, "foo(Swift.Int) -> ()"},
		{"array", array, nil, "Swift.Array<Swift.Int>"},
		{"array sugar", array, []Option{WithSugar()}, "[Swift.Int]"},
		{"nil tree", nil, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Print(tt.node, tt.opts...); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintDemanglerHook(t *testing.T) {
	node := mustReadTree(t, specializedDump)

	got := Print(node, WithDemangler(func(s string) string {
		if s == "$s4main3baryyF" {
			return "main.bar() -> ()"
		}
		return ""
	}))
	want := "function signature specialization <Arg[0] = [Constant Propagated Function : main.bar() -> ()]> of main.foo() -> ()"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	got = Print(node, WithDemangler(func(string) string { return "" }))
	want = "function signature specialization <Arg[0] = [Constant Propagated Function : $s4main3baryyF]> of main.foo() -> ()"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	got = Print(node, WithSimplified(), WithDemangler(nil))
	if want := "specialized main.foo()"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintGenericParameterNamer(t *testing.T) {
	sig := NewNode("DependentGenericSignature",
		NewIndexNode("DependentGenericParamCount", 2),
	)
	got := Print(sig, WithGenericParameterNamer(func(depth, index uint64) string {
		return []string{"Key", "Value"}[index]
	}))
	if want := "<Key, Value>"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPrintErr(t *testing.T) {
	_, err := PrintErr(NewNode("Function"))
	if !errors.Is(err, ErrInvalidTree) {
		t.Fatalf("got %v, want ErrInvalidTree", err)
	}

	out, err := PrintErr(mustReadTree(t, fooDump))
	if err != nil {
		t.Fatalf("PrintErr() error = %v", err)
	}
	if want := "main.foo(Swift.Int) -> ()"; out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestPrintStrict(t *testing.T) {
	bogus := NewNode("NotARealKind")
	if got := Print(bogus); got != "" {
		t.Fatalf("got %q, want empty", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic in strict mode")
		}
	}()
	Print(bogus, WithStrict())
}
