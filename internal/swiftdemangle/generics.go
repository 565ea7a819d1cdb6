package swiftdemangle

// maxGenericParamsPerDepth bounds how many parameter names are shown for a
// single depth of a generic signature. Only malformed trees come close.
const maxGenericParamsPerDepth = 128

// printGenericSignature renders "<A, B><C where A: P>". The leading
// DependentGenericParamCount children give the parameter count per depth,
// the remaining children are requirements.
func (p *nodePrinter) printGenericSignature(n *Node) {
	p.buf.writeByte('<')

	depth := 0
	for ; depth < n.NumChildren() && n.Child(depth).Is(KindDependentGenericParamCount); depth++ {
		if depth != 0 {
			p.buf.WriteString("><")
		}
		count := n.Child(depth).Index
		for index := uint64(0); index < count; index++ {
			if index != 0 {
				p.buf.WriteString(", ")
			}
			if index >= maxGenericParamsPerDepth {
				p.buf.WriteString("...")
				break
			}
			p.buf.WriteString(p.opts.genericParameterName(uint64(depth), index))
		}
	}

	if depth != n.NumChildren() && p.opts.DisplayWhereClauses {
		p.buf.WriteString(" where ")
		for i := depth; i < n.NumChildren(); i++ {
			if i > depth {
				p.buf.WriteString(", ")
			}
			p.print(n.Child(i), false)
		}
	}
	p.buf.writeByte('>')
}

// printLayoutRequirement renders "T: _Trivial(64, 8)" style requirements.
func (p *nodePrinter) printLayoutRequirement(n *Node) {
	p.print(n.Child(0), false)
	p.buf.WriteString(": ")

	layout := n.Child(1)
	if !layout.Is(KindIdentifier) || len(layout.Text) != 1 {
		p.setInvalid("layout requirement without a one-letter layout")
		return
	}
	name, ok := layoutConstraintName(layout.Text)
	if !ok {
		p.setInvalid("unknown layout constraint " + layout.Text)
		return
	}
	p.buf.WriteString(name)
	if n.NumChildren() > 2 {
		p.buf.writeByte('(')
		p.print(n.Child(2), false)
		if n.NumChildren() > 3 {
			p.buf.WriteString(", ")
			p.print(n.Child(3), false)
		}
		p.buf.writeByte(')')
	}
}

func (p *nodePrinter) printSILBoxTypeWithLayout(n *Node) {
	if n.NumChildren() != 1 && n.NumChildren() != 3 {
		p.setInvalid("SIL box type expects 1 or 3 children")
		return
	}
	layout := n.Child(0)
	if !layout.Is(KindSILBoxLayout) {
		p.setInvalid("SIL box type without layout")
		return
	}

	var genericArgs *Node
	if n.NumChildren() == 3 {
		signature := n.Child(1)
		genericArgs = n.Child(2)
		if !signature.Is(KindDependentGenericSignature) || !genericArgs.Is(KindTypeList) {
			p.setInvalid("SIL box type with malformed generic arguments")
			return
		}
		p.print(signature, false)
		p.buf.writeByte(' ')
	}
	p.print(layout, false)
	if genericArgs != nil {
		p.buf.WriteString(" <")
		p.printChildren(genericArgs, ", ")
		p.buf.writeByte('>')
	}
}
