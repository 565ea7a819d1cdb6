package swiftdemangle

func isFunctionTypeKind(kind NodeKind) bool {
	switch kind {
	case KindFunctionType,
		KindUncurriedFunctionType,
		KindNoEscapeFunctionType,
		KindAutoClosureType,
		KindEscapingAutoClosureType,
		KindThinFunctionType,
		KindCFunctionPointer,
		KindObjCBlock,
		KindEscapingObjCBlock,
		KindDifferentiableFunctionType,
		KindEscapingDifferentiableFunctionType,
		KindLinearFunctionType,
		KindEscapingLinearFunctionType:
		return true
	}
	return false
}

func needSpaceBeforeType(n *Node) bool {
	switch {
	case n == nil:
		return true
	case n.Kind == KindType:
		return needSpaceBeforeType(n.FirstChild())
	case n.Kind == KindFunctionType,
		n.Kind == KindNoEscapeFunctionType,
		n.Kind == KindUncurriedFunctionType,
		n.Kind == KindDependentGenericType:
		return false
	}
	return true
}

// printFunctionParameters renders the parameter clause of a function type.
// labels may be nil.
func (p *nodePrinter) printFunctionParameters(labels, paramType *Node, showTypes bool) {
	if !paramType.Is(KindArgumentTuple) {
		p.setInvalid("function parameters are not an argument tuple")
		return
	}

	params := paramType.FirstChild()
	if !params.Is(KindType) {
		p.setInvalid("argument tuple without type")
		return
	}
	params = params.FirstChild()
	if !params.Is(KindTuple) {
		// Only a single unnamed parameter.
		if showTypes {
			p.buf.writeByte('(')
			p.print(params, false)
			p.buf.writeByte(')')
		} else {
			p.buf.WriteString("(_:)")
		}
		return
	}

	hasLabels := labels.NumChildren() > 0
	p.buf.writeByte('(')
	for i, param := range params.Children {
		if i > 0 && showTypes {
			p.buf.WriteString(", ")
		}
		switch {
		case hasLabels:
			label := labels.Child(i)
			switch {
			case label.Is(KindIdentifier):
				p.buf.WriteString(label.Text)
			case label.Is(KindFirstElementMarker):
				p.buf.writeByte('_')
			default:
				p.setInvalid("bad function parameter label")
				return
			}
			p.buf.writeByte(':')
		case !showTypes:
			if name := param.ChildOfKind(KindTupleElementName); name != nil {
				p.buf.WriteString(name.Text)
				p.buf.writeByte(':')
			} else {
				p.buf.WriteString("_:")
			}
		}
		if hasLabels && showTypes {
			p.buf.writeByte(' ')
		}
		if showTypes {
			p.print(param, false)
		}
	}
	p.buf.writeByte(')')
}

func (p *nodePrinter) printConventionWithMangledCType(fn *Node, convention string) {
	p.buf.WriteString("@convention(")
	p.buf.WriteString(convention)
	if first := fn.FirstChild(); first.Is(KindClangType) {
		p.buf.WriteString(", mangledCType: \"")
		p.print(first, false)
		p.buf.writeByte('"')
	}
	p.buf.WriteString(") ")
}

// printFunctionType renders a surface function type. labels may be nil.
func (p *nodePrinter) printFunctionType(labels, fn *Node) {
	if fn.NumChildren() < 2 || fn.NumChildren() > 5 {
		p.setInvalid("function type with unexpected number of children")
		return
	}

	switch fn.Kind {
	case KindFunctionType, KindUncurriedFunctionType, KindNoEscapeFunctionType:
	case KindAutoClosureType, KindEscapingAutoClosureType:
		p.buf.WriteString("@autoclosure ")
	case KindThinFunctionType:
		p.buf.WriteString("@convention(thin) ")
	case KindCFunctionPointer:
		p.printConventionWithMangledCType(fn, "c")
	case KindEscapingObjCBlock:
		p.buf.WriteString("@escaping ")
		p.printConventionWithMangledCType(fn, "block")
	case KindObjCBlock:
		p.printConventionWithMangledCType(fn, "block")
	case KindDifferentiableFunctionType:
		p.buf.WriteString("@differentiable ")
	case KindEscapingDifferentiableFunctionType:
		p.buf.WriteString("@escaping @differentiable ")
	case KindLinearFunctionType:
		p.buf.WriteString("@differentiable(linear) ")
	case KindEscapingLinearFunctionType:
		p.buf.WriteString("@escaping @differentiable(linear) ")
	default:
		p.setInvalid("not a function type: " + string(fn.Kind))
		return
	}

	start := 0
	isAsync, isThrows := false, false
	if fn.Child(start).Is(KindClangType) {
		// Already printed as part of the convention.
		start++
	}
	if fn.Child(start).Is(KindThrowsAnnotation) {
		start++
		isThrows = true
	}
	if fn.Child(start).Is(KindAsyncAnnotation) {
		start++
		isAsync = true
	}

	p.printFunctionParameters(labels, fn.Child(start), p.opts.ShowFunctionArgumentTypes)

	if !p.opts.ShowFunctionArgumentTypes {
		return
	}
	if isAsync {
		p.buf.WriteString(" async")
	}
	if isThrows {
		p.buf.WriteString(" throws")
	}
	p.print(fn.Child(start+1), false)
}

type implState int

const (
	implAttrs implState = iota
	implInputs
	implResults
)

// printImplFunctionType renders a SIL function type. Children arrive grouped
// by role and are re-sequenced into "attrs (inputs) -> (results)".
func (p *nodePrinter) printImplFunctionType(fn *Node) {
	var patternSubs, invocationSubs *Node
	state := implAttrs

	transitionTo := func(next implState) {
		for ; state < next; state++ {
			switch state {
			case implAttrs:
				if patternSubs != nil {
					p.buf.WriteString("@substituted ")
					p.print(patternSubs.Child(0), false)
					p.buf.writeByte(' ')
				}
				p.buf.writeByte('(')
			case implInputs:
				p.buf.WriteString(") -> (")
			}
		}
	}

	for _, child := range fn.Children {
		switch child.Kind {
		case KindImplParameter:
			if state == implInputs {
				p.buf.WriteString(", ")
			}
			if state > implInputs {
				p.setInvalid("impl parameter after results")
				return
			}
			transitionTo(implInputs)
			p.print(child, false)
		case KindImplResult, KindImplYield, KindImplErrorResult:
			if state == implResults {
				p.buf.WriteString(", ")
			}
			transitionTo(implResults)
			p.print(child, false)
		case KindImplPatternSubstitutions:
			patternSubs = child
		case KindImplInvocationSubstitutions:
			invocationSubs = child
		default:
			if state != implAttrs {
				p.setInvalid("impl function attribute after parameters")
				return
			}
			p.print(child, false)
			p.buf.writeByte(' ')
		}
	}
	transitionTo(implResults)
	p.buf.writeByte(')')

	if patternSubs != nil {
		p.buf.WriteString(" for <")
		p.printChildren(patternSubs.Child(1), "")
		p.buf.writeByte('>')
	}
	if invocationSubs != nil {
		p.buf.WriteString(" for <")
		p.printChildren(invocationSubs.Child(0), "")
		p.buf.writeByte('>')
	}
}

func (p *nodePrinter) printImplFunctionConvention(n *Node) {
	p.buf.WriteString("@convention(")
	switch n.NumChildren() {
	case 1:
		p.buf.WriteString(n.Child(0).Text)
	case 2:
		p.buf.WriteString(n.Child(0).Text)
		p.buf.WriteString(", mangledCType: \"")
		p.print(n.Child(1), false)
		p.buf.writeByte('"')
	default:
		p.setInvalid("impl function convention with unexpected number of children")
		return
	}
	p.buf.writeByte(')')
}

// printImplParameter renders "convention [differentiability] type".
func (p *nodePrinter) printImplParameter(n *Node) {
	p.print(n.Child(0), false)
	p.buf.writeByte(' ')
	if n.NumChildren() == 3 {
		p.print(n.Child(1), false)
	}
	p.print(n.LastChild(), false)
}
