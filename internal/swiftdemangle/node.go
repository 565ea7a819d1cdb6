package swiftdemangle

type payloadKind uint8

const (
	payloadNone payloadKind = iota
	payloadText
	payloadIndex
)

// Node represents a demangled element.
//
// Nodes are built once by whoever produces the tree and are treated as
// read-only afterwards; the printer never mutates them, so subtrees may be
// shared between several parents.
type Node struct {
	Kind     NodeKind
	Text     string
	Index    uint64
	Children []*Node

	payload payloadKind
}

// NewNode creates a node without a payload.
func NewNode(kind NodeKind, children ...*Node) *Node {
	n := &Node{Kind: kind}
	n.Append(children...)
	return n
}

// NewTextNode creates an identifier-like node carrying text.
func NewTextNode(kind NodeKind, text string) *Node {
	return &Node{
		Kind:    kind,
		Text:    text,
		payload: payloadText,
	}
}

// NewIndexNode creates an index-like node carrying a numeric payload.
func NewIndexNode(kind NodeKind, index uint64, children ...*Node) *Node {
	n := &Node{
		Kind:    kind,
		Index:   index,
		payload: payloadIndex,
	}
	n.Append(children...)
	return n
}

// Append appends child nodes to the receiver. Nil children are dropped.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// HasText reports whether the node carries a text payload.
func (n *Node) HasText() bool {
	return n != nil && (n.payload == payloadText || n.Text != "")
}

// HasIndex reports whether the node carries an index payload. An index of
// zero is still an index.
func (n *Node) HasIndex() bool {
	return n != nil && n.payload == payloadIndex
}

// NumChildren returns the number of children; a nil node has none.
func (n *Node) NumChildren() int {
	if n == nil {
		return 0
	}
	return len(n.Children)
}

// HasChildren reports whether the node has at least one child.
func (n *Node) HasChildren() bool {
	return n.NumChildren() > 0
}

// Child returns the i-th child or nil if there is no such child.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node {
	return n.Child(0)
}

// LastChild returns the last child or nil.
func (n *Node) LastChild() *Node {
	return n.Child(n.NumChildren() - 1)
}

// ChildOfKind returns the first child of the given kind, or nil.
func (n *Node) ChildOfKind(kind NodeKind) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c != nil && c.Kind == kind {
			return c
		}
	}
	return nil
}

// Is reports whether n is non-nil and of the given kind.
func (n *Node) Is(kind NodeKind) bool {
	return n != nil && n.Kind == kind
}

// Clone shallow-copies the node. Children references are copied as-is.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Kind:    n.Kind,
		Text:    n.Text,
		Index:   n.Index,
		payload: n.payload,
	}
	if len(n.Children) > 0 {
		out.Children = append([]*Node(nil), n.Children...)
	}
	return out
}
