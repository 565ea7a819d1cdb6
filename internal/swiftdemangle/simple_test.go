package swiftdemangle

import "testing"

func TestIsSimpleTypeIsTotal(t *testing.T) {
	for _, kind := range AllKinds() {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("isSimpleType(%s) panicked: %v", kind, r)
				}
			}()
			p := newNodePrinter(DefaultOptions())
			p.isSimpleType(NewNode(kind))
		}()
	}
}

func TestIsSimpleType(t *testing.T) {
	hashable := typ(nominal(KindProtocol, module(StdlibModuleName), "Hashable"))
	sendable := typ(nominal(KindProtocol, module(StdlibModuleName), "Sendable"))

	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{"structure", nominal(KindStructure, module("main"), "S"), true},
		{"tuple", NewNode(KindTuple), true},
		{"type wrapper", funcType(emptyTuple()), true},
		{"function type", NewNode(KindFunctionType), false},
		{"empty protocol list", NewNode(KindProtocolList, NewNode(KindTypeList)), true},
		{"single protocol", NewNode(KindProtocolList, NewNode(KindTypeList, hashable)), true},
		{"composition", NewNode(KindProtocolList, NewNode(KindTypeList, hashable, sendable)), false},
		{"bare AnyObject", NewNode(KindProtocolListWithAnyObject, NewNode(KindProtocolList, NewNode(KindTypeList))), true},
		{"protocol and AnyObject", NewNode(KindProtocolListWithAnyObject, NewNode(KindProtocolList, NewNode(KindTypeList, hashable))), false},
		{"class composition", NewNode(KindProtocolListWithClass), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newNodePrinter(DefaultOptions())
			if got := p.isSimpleType(tt.node); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOptionalOfFunctionType(t *testing.T) {
	fn := funcType(emptyTuple(), swiftType("Int"))
	sugared := boundGeneric(KindBoundGenericEnum, nominal(KindEnum, module(StdlibModuleName), "Optional"), fn)
	opts := DefaultOptions()
	opts.SynthesizeSugarOnTypes = true
	// The argument is wrapped in a Type node, which counts as simple.
	if got, want := NodeToString(sugared, opts), "(Swift.Int) -> ()?"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	bare := NewNode(KindSugaredOptional, fn.FirstChild())
	if got, want := NodeToString(bare, opts), "((Swift.Int) -> ())?"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUnknownKindInClassifier(t *testing.T) {
	defer func() {
		if _, ok := recover().(*InvariantError); !ok {
			t.Fatal("expected an InvariantError panic")
		}
	}()
	newNodePrinter(DefaultOptions()).isSimpleType(NewNode("NotAKind"))
}
