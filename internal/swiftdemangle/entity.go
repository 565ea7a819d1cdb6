package swiftdemangle

import "strings"

type typePrinting int

const (
	noType typePrinting = iota
	withColon
	functionStyle
)

// entityName describes the synthetic parts of an entity's name.
type entityName struct {
	extra     string // e.g. "closure #" or "getter"
	index     int    // appended to extra when >= 0
	overwrite string // printed instead of the name child, even without a name
}

func plainName() entityName {
	return entityName{index: -1}
}

func extraName(extra string) entityName {
	return entityName{extra: extra, index: -1}
}

// printEntity lays out a named declaration. The context goes either in
// front ("Context.name") or, when that reads badly, after the entity
// ("name in Context"). A non-nil result is a context the caller still has to
// print in postfix form because the entity itself was printed as a prefix.
func (p *nodePrinter) printEntity(entity *Node, asPrefixContext bool, typePr typePrinting, hasName bool, name entityName) *Node {
	var genericFunctionTypeList *Node
	if entity.Is(KindBoundGenericFunction) {
		genericFunctionTypeList = entity.Child(1)
		entity = entity.FirstChild()
		if entity == nil {
			p.setInvalid("bound generic function without function")
			return nil
		}
	}

	multiWordName := strings.Contains(name.extra, " ")
	// Local names like "MyStruct #1" read badly with a prefix context.
	localName := hasName && entity.Child(1).Is(KindLocalDeclName)
	if localName && p.opts.DisplayLocalNameContexts {
		multiWordName = true
	}

	if asPrefixContext && (typePr != noType || multiWordName) {
		// With a type to print the prefix form is impossible.
		return entity
	}

	var postfixContext *Node
	context := entity.Child(0)
	if context == nil {
		p.setInvalid("entity without context")
		return nil
	}
	if p.printContext(context) {
		if multiWordName {
			postfixContext = context
		} else {
			pos := p.buf.Len()
			postfixContext = p.print(context, true)
			if p.buf.Len() != pos {
				p.buf.writeByte('.')
			}
		}
	}

	if hasName || name.overwrite != "" {
		if name.extra != "" && multiWordName {
			p.buf.WriteString(name.extra)
			p.buf.WriteString(" of ")
			name.extra = ""
		}
		pos := p.buf.Len()
		if name.overwrite != "" {
			p.buf.WriteString(name.overwrite)
		} else {
			if n := entity.Child(1); !n.Is(KindPrivateDeclName) {
				p.print(n, false)
			}
			if private := entity.ChildOfKind(KindPrivateDeclName); private != nil {
				p.print(private, false)
			}
		}
		if p.buf.Len() != pos && name.extra != "" {
			p.buf.writeByte('.')
		}
	}
	if name.extra != "" {
		p.buf.WriteString(name.extra)
		if name.index >= 0 {
			p.buf.WriteInt(int64(name.index))
		}
	}

	if typePr != noType {
		typ := entity.ChildOfKind(KindType)
		if typ == nil || typ.FirstChild() == nil {
			p.setInvalid("entity without type")
			return nil
		}
		typ = typ.FirstChild()
		if typePr == functionStyle {
			// Fall back to the colon form when this is no function type.
			t := typ
			for t.Is(KindDependentGenericType) {
				t = t.Child(1).FirstChild()
			}
			if t == nil {
				p.setInvalid("dependent generic type without type")
				return nil
			}
			switch t.Kind {
			case KindFunctionType, KindNoEscapeFunctionType, KindUncurriedFunctionType,
				KindCFunctionPointer, KindThinFunctionType:
			default:
				typePr = withColon
			}
		}

		if typePr == withColon {
			if p.opts.DisplayEntityTypes {
				p.buf.WriteString(" : ")
				p.printEntityType(entity, typ, genericFunctionTypeList)
			}
		} else {
			if multiWordName || needSpaceBeforeType(typ) {
				p.buf.writeByte(' ')
			}
			p.printEntityType(entity, typ, genericFunctionTypeList)
		}
	}

	if !asPrefixContext && postfixContext != nil && (!localName || p.opts.DisplayLocalNameContexts) {
		switch entity.Kind {
		case KindDefaultArgumentInitializer, KindInitializer, KindPropertyWrapperBackingInitializer:
			p.buf.WriteString(" of ")
		default:
			p.buf.WriteString(" in ")
		}
		p.print(postfixContext, false)
		postfixContext = nil
	}
	return postfixContext
}

// printEntityType prints the type of an entity, attaching argument labels
// and the generic arguments of a bound generic function when present.
func (p *nodePrinter) printEntityType(entity, typ, genericFunctionTypeList *Node) {
	labels := entity.ChildOfKind(KindLabelList)
	if labels == nil && genericFunctionTypeList == nil {
		p.print(typ, false)
		return
	}

	if genericFunctionTypeList != nil {
		p.buf.writeByte('<')
		p.printChildren(genericFunctionTypeList, ", ")
		p.buf.writeByte('>')
	}
	if typ.Is(KindDependentGenericType) {
		if genericFunctionTypeList == nil {
			p.print(typ.Child(0), false) // generic signature
		}
		dependent := typ.Child(1)
		if needSpaceBeforeType(dependent) {
			p.buf.writeByte(' ')
		}
		typ = dependent.FirstChild()
	}
	p.printFunctionType(labels, typ)
}

// printAbstractStorage prints an accessor of a variable or subscript.
func (p *nodePrinter) printAbstractStorage(n *Node, asPrefixContext bool, extra string) *Node {
	switch {
	case n.Is(KindVariable):
		return p.printEntity(n, asPrefixContext, withColon, true, extraName(extra))
	case n.Is(KindSubscript):
		return p.printEntity(n, asPrefixContext, withColon, false,
			entityName{extra: extra, index: -1, overwrite: "subscript"})
	}
	p.setInvalid("accessor of something that is not abstract storage")
	return nil
}
