package swiftdemangle

type sugarType int

const (
	sugarNone sugarType = iota
	sugarOptional
	sugarImplicitlyUnwrappedOptional
	sugarArray
	sugarDictionary
)

func isIdentifier(n *Node, desired string) bool {
	return n.Is(KindIdentifier) && n.Text == desired
}

func isSwiftModule(n *Node) bool {
	return n.Is(KindModule) && n.Text == StdlibModuleName
}

// findSugar recognizes the standard library containers that have shorthand
// syntax. Only types from the Swift module qualify.
func findSugar(n *Node) sugarType {
	if n.Is(KindType) && n.NumChildren() == 1 {
		return findSugar(n.FirstChild())
	}
	if n.NumChildren() != 2 {
		return sugarNone
	}
	if !n.Is(KindBoundGenericEnum) && !n.Is(KindBoundGenericStructure) {
		return sugarNone
	}

	unbound := n.Child(0).FirstChild() // drill through Type
	typeArgs := n.Child(1)
	name := unbound.Child(1)
	if !isSwiftModule(unbound.Child(0)) {
		return sugarNone
	}

	if n.Kind == KindBoundGenericEnum {
		if typeArgs.NumChildren() != 1 {
			return sugarNone
		}
		switch {
		case isIdentifier(name, "Optional"):
			return sugarOptional
		case isIdentifier(name, "ImplicitlyUnwrappedOptional"):
			return sugarImplicitlyUnwrappedOptional
		}
		return sugarNone
	}

	switch {
	case isIdentifier(name, "Array") && typeArgs.NumChildren() == 1:
		return sugarArray
	case isIdentifier(name, "Dictionary") && typeArgs.NumChildren() == 2:
		return sugarDictionary
	}
	return sugarNone
}

func (p *nodePrinter) printBoundGenericNoSugar(n *Node) {
	if n.NumChildren() < 2 {
		return
	}
	p.print(n.Child(0), false)
	p.buf.writeByte('<')
	p.printChildren(n.Child(1), ", ")
	p.buf.writeByte('>')
}

func (p *nodePrinter) printBoundGeneric(n *Node) {
	if n.NumChildren() < 2 {
		return
	}
	if n.NumChildren() != 2 || !p.opts.SynthesizeSugarOnTypes || n.Kind == KindBoundGenericClass {
		p.printBoundGenericNoSugar(n)
		return
	}

	// A bound protocol prints its conforming type "as" the protocol.
	if n.Kind == KindBoundGenericProtocol {
		p.printChildren(n.Child(1), "")
		p.buf.WriteString(" as ")
		p.print(n.Child(0), false)
		return
	}

	args := n.Child(1)
	switch sugar := findSugar(n); sugar {
	case sugarOptional, sugarImplicitlyUnwrappedOptional:
		p.printWithParens(args.Child(0))
		if sugar == sugarOptional {
			p.buf.writeByte('?')
		} else {
			p.buf.writeByte('!')
		}
	case sugarArray:
		p.buf.writeByte('[')
		p.print(args.Child(0), false)
		p.buf.writeByte(']')
	case sugarDictionary:
		p.buf.writeByte('[')
		p.print(args.Child(0), false)
		p.buf.WriteString(" : ")
		p.print(args.Child(1), false)
		p.buf.writeByte(']')
	default:
		p.printBoundGenericNoSugar(n)
	}
}
