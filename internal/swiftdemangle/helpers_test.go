package swiftdemangle

func ident(s string) *Node { return NewTextNode(KindIdentifier, s) }

func module(s string) *Node { return NewTextNode(KindModule, s) }

func typ(n *Node) *Node { return NewNode(KindType, n) }

func index(kind NodeKind, i uint64) *Node { return NewIndexNode(kind, i) }

func nominal(kind NodeKind, context *Node, name string) *Node {
	return NewNode(kind, context, ident(name))
}

// swiftType is Swift.<name> as a struct type.
func swiftType(name string) *Node {
	return typ(nominal(KindStructure, module(StdlibModuleName), name))
}

func emptyTuple() *Node { return typ(NewNode(KindTuple)) }

func argumentTuple(params ...*Node) *Node {
	tuple := NewNode(KindTuple)
	for _, p := range params {
		tuple.Append(NewNode(KindTupleElement, p))
	}
	return NewNode(KindArgumentTuple, typ(tuple))
}

// funcType builds "(params) -> result" wrapped in a Type node.
func funcType(result *Node, params ...*Node) *Node {
	return typ(NewNode(KindFunctionType, argumentTuple(params...), NewNode(KindReturnType, result)))
}

func genericParam(depth, idx uint64) *Node {
	return typ(NewNode(KindDependentGenericParamType, index(KindIndex, depth), index(KindIndex, idx)))
}

// mainFoo is main.foo() -> ().
func mainFoo() *Node {
	return NewNode(KindFunction, module("main"), ident("foo"), funcType(emptyTuple()))
}

func boundGeneric(kind NodeKind, unbound *Node, args ...*Node) *Node {
	return typ(NewNode(kind, typ(unbound), NewNode(KindTypeList, args...)))
}
