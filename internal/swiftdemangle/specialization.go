package swiftdemangle

func specializationDescription(kind NodeKind) (description, paramPrefix string) {
	switch kind {
	case KindFunctionSignatureSpecialization:
		return "function signature specialization", ""
	case KindGenericPartialSpecialization:
		return "generic partial specialization", "Signature = "
	case KindGenericPartialSpecializationNotReAbstracted:
		return "generic not-reabstracted partial specialization", "Signature = "
	case KindGenericSpecialization:
		return "generic specialization", ""
	case KindGenericSpecializationPrespecialized:
		return "generic pre-specialization", ""
	case KindGenericSpecializationNotReAbstracted:
		return "generic not re-abstracted specialization", ""
	case KindInlinedGenericFunction:
		return "inlined generic function", ""
	}
	return "", ""
}

// printSpecializationPrefix renders a specialization node. In the short
// form only one "specialized " marker is written per top-level call, no
// matter how many specialization nodes the tree contains.
func (p *nodePrinter) printSpecializationPrefix(n *Node, description, paramPrefix string) {
	if !p.opts.DisplayGenericSpecializations {
		if !p.specializationPrefixPrinted {
			p.buf.WriteString("specialized ")
			p.specializationPrefixPrinted = true
		}
		return
	}

	p.buf.WriteString(description)
	p.buf.WriteString(" <")
	sep := ""
	argNum := 0
	for _, child := range n.Children {
		switch child.Kind {
		case KindSpecializationPassID:
			// The pass ID carries nothing a reader cares about.
		case KindIsSerialized:
			p.buf.WriteString(sep)
			sep = ", "
			p.print(child, false)
		default:
			if child.HasChildren() {
				p.buf.WriteString(sep)
				p.buf.WriteString(paramPrefix)
				sep = ", "
				switch child.Kind {
				case KindFunctionSignatureSpecializationParam:
					p.buf.WriteString("Arg[")
					p.buf.WriteInt(int64(argNum))
					p.buf.WriteString("] = ")
					p.printFunctionSigSpecializationParams(child)
				case KindFunctionSignatureSpecializationReturn:
					p.buf.WriteString("Return = ")
					p.printFunctionSigSpecializationParams(child)
				default:
					p.print(child, false)
				}
			}
			argNum++
		}
	}
	p.buf.WriteString("> of ")
}

// printFunctionSigSpecializationParams decodes the flat (kind, payload...)
// child list of a specialization parameter. The kind child decides how many
// of the following children belong to it.
func (p *nodePrinter) printFunctionSigSpecializationParams(n *Node) {
	idx := 0
	end := n.NumChildren()
	next := func() *Node {
		c := n.Child(idx)
		idx++
		return c
	}

	for idx < end && p.valid {
		first := n.Child(idx)
		if !first.HasIndex() {
			p.setInvalid("specialization parameter without kind")
			return
		}
		kind := SpecializationParamKind(first.Index)
		if kind.Flags() != 0 {
			p.print(next(), false)
			continue
		}

		switch kind {
		case BoxToValue, BoxToStack:
			p.print(next(), false)

		case ConstantPropFunction, ConstantPropGlobal:
			p.buf.writeByte('[')
			p.print(next(), false)
			p.buf.WriteString(" : ")
			payload := next()
			if payload == nil {
				p.setInvalid("constant propagation without payload")
				return
			}
			if demangled := p.opts.demangleSymbol(payload.Text); demangled != "" {
				p.buf.WriteString(demangled)
			} else {
				p.buf.WriteString(payload.Text)
			}
			p.buf.writeByte(']')

		case ConstantPropInteger, ConstantPropFloat:
			p.buf.writeByte('[')
			p.print(next(), false)
			p.buf.WriteString(" : ")
			p.print(next(), false)
			p.buf.writeByte(']')

		case ConstantPropString:
			p.buf.writeByte('[')
			p.print(next(), false)
			p.buf.WriteString(" : ")
			p.print(next(), false)
			p.buf.writeByte('\'')
			p.print(next(), false)
			p.buf.writeByte('\'')
			p.buf.writeByte(']')

		case ClosureProp:
			p.buf.writeByte('[')
			p.print(next(), false)
			p.buf.WriteString(" : ")
			p.print(next(), false)
			p.buf.WriteString(", Argument Types : [")
			for idx < end {
				child := n.Child(idx)
				if child.Kind != KindType {
					break
				}
				p.print(child, false)
				idx++
				if idx < end && n.Child(idx).HasText() {
					p.buf.WriteString(", ")
				}
			}
			p.buf.writeByte(']')

		default:
			p.setInvalid("unknown function signature specialization kind")
			return
		}
	}
}

func (p *nodePrinter) printSpecializationParamKind(n *Node) {
	desc, ok := SpecializationParamKind(n.Index).Description()
	if !ok {
		p.setInvalid("unknown function signature specialization kind")
		return
	}
	p.buf.WriteString(desc)
}

func (p *nodePrinter) printSpecializationParamPayload(n *Node) {
	if demangled := p.opts.demangleSymbol(n.Text); demangled != "" {
		p.buf.WriteString(demangled)
		return
	}
	p.buf.WriteString(n.Text)
}

func (p *nodePrinter) printGenericSpecializationParam(n *Node) {
	p.print(n.Child(0), false)
	for i := 1; i < n.NumChildren(); i++ {
		if i == 1 {
			p.buf.WriteString(" with ")
		} else {
			p.buf.WriteString(" and ")
		}
		p.print(n.Child(i), false)
	}
}
