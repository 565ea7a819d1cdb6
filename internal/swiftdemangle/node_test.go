package swiftdemangle

import "testing"

func TestNilNodeAccessors(t *testing.T) {
	var n *Node
	if n.NumChildren() != 0 || n.HasChildren() || n.HasText() || n.HasIndex() {
		t.Fatal("nil node should be empty")
	}
	if n.Child(0) != nil || n.FirstChild() != nil || n.LastChild() != nil || n.ChildOfKind(KindType) != nil {
		t.Fatal("nil node should have no children")
	}
	if n.Is(KindType) {
		t.Fatal("nil node has no kind")
	}
	if n.Clone() != nil {
		t.Fatal("Clone(nil) should be nil")
	}
}

func TestNodePayloads(t *testing.T) {
	zero := NewIndexNode(KindIndex, 0)
	if !zero.HasIndex() || zero.HasText() {
		t.Fatal("an index of zero is still an index")
	}
	empty := NewTextNode(KindIdentifier, "")
	if !empty.HasText() || empty.HasIndex() {
		t.Fatal("empty text is still text")
	}
}

func TestAppendDropsNil(t *testing.T) {
	n := NewNode(KindTuple, nil, emptyTuple(), nil)
	if n.NumChildren() != 1 {
		t.Fatalf("got %d children, want 1", n.NumChildren())
	}
	if got := n.ChildOfKind(KindType); got != n.LastChild() {
		t.Fatal("ChildOfKind should find the only child")
	}
}

func TestClone(t *testing.T) {
	orig := NewNode(KindTuple, emptyTuple())
	c := orig.Clone()
	c.Append(swiftType("Int"))
	if orig.NumChildren() != 1 || c.NumChildren() != 2 {
		t.Fatalf("clone shares the child slice: %d, %d", orig.NumChildren(), c.NumChildren())
	}
	if c.FirstChild() != orig.FirstChild() {
		t.Fatal("clone should share child nodes")
	}
}

func TestAllKindsValid(t *testing.T) {
	kinds := AllKinds()
	if len(kinds) == 0 {
		t.Fatal("no kinds")
	}
	seen := make(map[NodeKind]bool)
	for _, k := range kinds {
		if !k.Valid() {
			t.Errorf("%s is not valid", k)
		}
		if seen[k] {
			t.Errorf("%s listed twice", k)
		}
		seen[k] = true
	}
	if NodeKind("NotAKind").Valid() {
		t.Fatal("unexpected kind accepted")
	}
	kinds[0] = "mutated"
	if AllKinds()[0] == "mutated" {
		t.Fatal("AllKinds should return a copy")
	}
}
