package swiftdemangle

// Format renders node with DefaultOptions. It returns "" for a malformed
// tree.
func Format(node *Node) string {
	return NodeToString(node, DefaultOptions())
}

// String implements fmt.Stringer for convenience.
func (n *Node) String() string {
	return Format(n)
}
