package swiftdemangle

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDumpTree(t *testing.T) {
	node := NewNode(KindGlobal,
		NewNode(KindFunction, module("main"), ident("foo"), funcType(emptyTuple())),
		NewTextNode(KindSuffix, "a\"\x01"),
	)
	var buf bytes.Buffer
	if err := DumpTree(&buf, node); err != nil {
		t.Fatal(err)
	}
	want := `kind=Global
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
  kind=Suffix, text="a\"\x01"
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("DumpTree() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadTreeRoundTrip(t *testing.T) {
	trees := []*Node{
		mainFoo(),
		NewNode(KindGlobal,
			NewNode(KindGenericSpecialization, index(KindSpecializationPassID, 0),
				NewNode(KindGenericSpecializationParam, swiftType("Int"))),
			mainFoo(),
			NewTextNode(KindSuffix, "\x00\t,\\ \xff")),
		NewIndexNode(KindTypeSymbolicReference, 0xdeadbeef),
		NewTextNode(KindIdentifier, ""),
	}
	for _, want := range trees {
		var buf bytes.Buffer
		if err := DumpTree(&buf, want); err != nil {
			t.Fatal(err)
		}
		got, err := ReadTree(&buf)
		if err != nil {
			t.Fatalf("ReadTree() error = %v", err)
		}
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(Node{})); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
		if Format(got) != Format(want) {
			t.Fatalf("got %q, want %q", Format(got), Format(want))
		}
	}
}

func TestReadTreeSkipsBlankLines(t *testing.T) {
	in := "\nkind=Type\n\n  kind=Tuple\n   \n"
	got, err := ReadTree(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(emptyTuple(), got, cmp.AllowUnexported(Node{})); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadTreeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
		msg  string
	}{
		{"odd indentation", "kind=Type\n kind=Tuple\n", 2, "odd indentation"},
		{"skipped level", "kind=Type\n    kind=Tuple\n", 2, "indentation skips a level"},
		{"two roots", "kind=Type\nkind=Tuple\n", 2, "more than one root node"},
		{"child before root", "  kind=Tuple\n", 1, "indentation skips a level"},
		{"unknown kind", "kind=Global\n  kind=Bogus\n", 2, `unknown node kind "Bogus"`},
		{"two payloads", `kind=Identifier, text="a", index=1`, 1, "node has more than one payload"},
		{"bad escape", `kind=Identifier, text="\q"`, 1, `unknown escape \q`},
		{"short hex escape", `kind=Identifier, text="\x4`, 1, `short \x escape`},
		{"unterminated", `kind=Identifier, text="abc`, 1, "unterminated text"},
		{"bad index", `kind=Index, index=-1`, 1, "bad index"},
		{"no kind", `text="a"`, 1, "expected kind="},
		{"unknown attribute", `kind=Identifier, name="a"`, 1, "unknown attribute"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTree(strings.NewReader(tt.in))
			var syntaxErr *DumpSyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("got error %v, want a DumpSyntaxError", err)
			}
			if syntaxErr.Line != tt.line {
				t.Fatalf("got line %d, want %d", syntaxErr.Line, tt.line)
			}
			if !strings.Contains(syntaxErr.Msg, tt.msg) {
				t.Fatalf("got %q, want it to contain %q", syntaxErr.Msg, tt.msg)
			}
		})
	}
}

func TestReadTreeEmpty(t *testing.T) {
	if _, err := ReadTree(strings.NewReader("\n\n")); err == nil || !strings.Contains(err.Error(), "tree dump is empty") {
		t.Fatalf("got %v, want an empty dump error", err)
	}
}
