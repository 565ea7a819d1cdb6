package swiftdemangle

// Kinds that print a fixed phrase followed by their first child.
var prefixPhrases = map[NodeKind]string{
	KindStatic:                                                "static ",
	KindCurryThunk:                                            "curry thunk of ",
	KindDispatchThunk:                                         "dispatch thunk of ",
	KindMethodDescriptor:                                      "method descriptor for ",
	KindMethodLookupFunction:                                  "method lookup function for ",
	KindObjCMetadataUpdateFunction:                            "ObjC metadata update function for ",
	KindObjCResilientClassStub:                                "ObjC resilient class stub for ",
	KindFullObjCResilientClassStub:                            "full ObjC resilient class stub for ",
	KindOutlinedRetain:                                        "outlined retain of ",
	KindOutlinedRelease:                                       "outlined release of ",
	KindOutlinedInitializeWithTake:                            "outlined init with take of ",
	KindOutlinedInitializeWithCopy:                            "outlined init with copy of ",
	KindOutlinedAssignWithTake:                                "outlined assign with take of ",
	KindOutlinedAssignWithCopy:                                "outlined assign with copy of ",
	KindOutlinedDestroy:                                       "outlined destroy of ",
	KindInOut:                                                 "inout ",
	KindShared:                                                "__shared ",
	KindOwned:                                                 "__owned ",
	KindProtocolSelfConformanceWitnessTable:                   "protocol self-conformance witness table for ",
	KindProtocolWitnessTableAccessor:                          "protocol witness table accessor for ",
	KindProtocolWitnessTable:                                  "protocol witness table for ",
	KindProtocolWitnessTablePattern:                           "protocol witness table pattern for ",
	KindGenericProtocolWitnessTable:                           "generic protocol witness table for ",
	KindResilientProtocolWitnessTable:                         "resilient protocol witness table for ",
	KindProtocolSelfConformanceWitness:                        "protocol self-conformance witness for ",
	KindGenericTypeMetadataPattern:                            "generic type metadata pattern for ",
	KindMetaclass:                                             "metaclass for ",
	KindProtocolSelfConformanceDescriptor:                     "protocol self-conformance descriptor for ",
	KindProtocolConformanceDescriptor:                         "protocol conformance descriptor for ",
	KindProtocolDescriptor:                                    "protocol descriptor for ",
	KindProtocolRequirementsBaseDescriptor:                    "protocol requirements base descriptor for ",
	KindFullTypeMetadata:                                      "full type metadata for ",
	KindTypeMetadata:                                          "type metadata for ",
	KindTypeMetadataAccessFunction:                            "type metadata accessor for ",
	KindTypeMetadataInstantiationCache:                        "type metadata instantiation cache for ",
	KindTypeMetadataInstantiationFunction:                     "type metadata instantiation function for ",
	KindTypeMetadataSingletonInitializationCache:              "type metadata singleton initialization cache for ",
	KindTypeMetadataCompletionFunction:                        "type metadata completion function for ",
	KindTypeMetadataDemanglingCache:                           "demangling cache variable for type metadata for ",
	KindTypeMetadataLazyCache:                                 "lazy cache variable for type metadata for ",
	KindAssociatedTypeDescriptor:                              "associated type descriptor for ",
	KindDefaultAssociatedTypeMetadataAccessor:                 "default associated type metadata accessor for ",
	KindClassMetadataBaseOffset:                               "class metadata base offset for ",
	KindPropertyDescriptor:                                    "property descriptor for ",
	KindNominalTypeDescriptor:                                 "nominal type descriptor for ",
	KindOpaqueTypeDescriptor:                                  "opaque type descriptor for ",
	KindOpaqueTypeDescriptorAccessor:                          "opaque type descriptor accessor for ",
	KindOpaqueTypeDescriptorAccessorImpl:                      "opaque type descriptor accessor impl for ",
	KindOpaqueTypeDescriptorAccessorKey:                       "opaque type descriptor accessor key for ",
	KindOpaqueTypeDescriptorAccessorVar:                       "opaque type descriptor accessor var for ",
	KindCoroutineContinuationPrototype:                        "coroutine continuation prototype for ",
	KindValueWitnessTable:                                     "value witness table for ",
	KindReflectionMetadataBuiltinDescriptor:                   "reflection metadata builtin descriptor ",
	KindReflectionMetadataFieldDescriptor:                     "reflection metadata field descriptor ",
	KindReflectionMetadataAssocTypeDescriptor:                 "reflection metadata associated type descriptor ",
	KindReflectionMetadataSuperclassDescriptor:                "reflection metadata superclass descriptor ",
	KindModuleDescriptor:                                      "module descriptor ",
	KindAnonymousDescriptor:                                   "anonymous descriptor ",
	KindExtensionDescriptor:                                   "extension descriptor ",
	KindCanonicalSpecializedGenericMetaclass:                  "specialized generic metaclass for ",
	KindMetadataInstantiationCache:                            "metadata instantiation cache for ",
	KindSILBoxType:                                            "@box ",
	KindEnumCase:                                              "enum case for ",
	KindObjCAsyncCompletionHandlerImpl:                        "@objc completion handler block implementation for ",
	KindGenericProtocolWitnessTableInstantiationFunction:      "instantiation function for generic protocol witness table for ",
	KindCanonicalSpecializedGenericTypeMetadataAccessFunction: "canonical specialized generic type metadata accessor for ",
	KindNoncanonicalSpecializedGenericTypeMetadata:            "noncanonical specialized generic type metadata for ",
	KindNoncanonicalSpecializedGenericTypeMetadataCache:       "cache variable for noncanonical specialized generic type metadata for ",
	KindCanonicalPrespecializedGenericTypeCachingOnceToken:    "flag for loading of canonical specialized generic type metadata for ",
}

// Kinds that print a fixed text and nothing else.
var literalKinds = map[NodeKind]string{
	KindNonObjCAttribute:               "@nonobjc ",
	KindObjCAttribute:                  "@objc ",
	KindDirectMethodReferenceAttribute: "super ",
	KindDynamicAttribute:               "dynamic ",
	KindVTableAttribute:                "override ",
	KindUnknownIndex:                   "unknown index",
	KindIsSerialized:                   "serialized",
	KindDynamicSelf:                    "Self",
	KindImplDifferentiable:             "@differentiable",
	KindImplLinear:                     "@differentiable(linear)",
	KindImplEscaping:                   "@escaping",
	KindErrorType:                      "<ERROR TYPE>",
	KindAsyncAnnotation:                " async ",
	KindThrowsAnnotation:               " throws ",
	KindEmptyList:                      " empty-list ",
	KindFirstElementMarker:             " first-element-marker ",
	KindVariadicMarker:                 " variadic-marker ",
	KindOpaqueReturnType:               "some",
}

// Accessor kinds and the name they add to their storage declaration.
var accessorNames = map[NodeKind]string{
	KindOwningAddressor:               "owningAddressor",
	KindOwningMutableAddressor:        "owningMutableAddressor",
	KindNativeOwningAddressor:         "nativeOwningAddressor",
	KindNativeOwningMutableAddressor:  "nativeOwningMutableAddressor",
	KindNativePinningAddressor:        "nativePinningAddressor",
	KindNativePinningMutableAddressor: "nativePinningMutableAddressor",
	KindUnsafeAddressor:               "unsafeAddressor",
	KindUnsafeMutableAddressor:        "unsafeMutableAddressor",
	KindGlobalGetter:                  "getter",
	KindGetter:                        "getter",
	KindSetter:                        "setter",
	KindMaterializeForSet:             "materializeForSet",
	KindWillSet:                       "willset",
	KindDidSet:                        "didset",
	KindReadAccessor:                  "read",
	KindModifyAccessor:                "modify",
}

// printNode is the main dispatcher over node kinds.
func (p *nodePrinter) printNode(n *Node, asPrefixContext bool) *Node {
	if phrase, ok := prefixPhrases[n.Kind]; ok {
		p.buf.WriteString(phrase)
		p.print(n.FirstChild(), false)
		return nil
	}
	if text, ok := literalKinds[n.Kind]; ok {
		p.buf.WriteString(text)
		return nil
	}
	if keyword, ok := referenceOwnershipKeywords[n.Kind]; ok {
		p.buf.WriteString(keyword)
		p.buf.writeByte(' ')
		p.print(n.FirstChild(), false)
		return nil
	}
	if accessor, ok := accessorNames[n.Kind]; ok {
		return p.printAbstractStorage(n.FirstChild(), asPrefixContext, accessor)
	}
	if isFunctionTypeKind(n.Kind) {
		p.printFunctionType(nil, n)
		return nil
	}
	if description, paramPrefix := specializationDescription(n.Kind); description != "" {
		p.printSpecializationPrefix(n, description, paramPrefix)
		return nil
	}

	switch n.Kind {
	case KindIdentifier,
		KindClangType,
		KindBuiltinTypeName,
		KindMetatypeRepresentation,
		KindImplConvention,
		KindImplFunctionAttribute:
		p.buf.WriteString(n.Text)
		return nil

	case KindIndex, KindNumber, KindSpecializationPassID:
		p.buf.WriteUint(n.Index)
		return nil

	case KindModule:
		if p.opts.DisplayModuleNames {
			p.buf.WriteString(n.Text)
		}
		return nil

	case KindGlobal, KindTypeList, KindAnyProtocolConformanceList:
		p.printChildren(n, "")
		return nil

	case KindDeclContext, KindType:
		p.print(n.FirstChild(), false)
		return nil

	case KindLabelList, KindAssociatedType:
		return nil

	case KindOutlinedBridgedMethod:
		p.buf.WriteString("outlined bridged method (")
		p.buf.WriteString(n.Text)
		p.buf.WriteString(") of ")
		return nil

	case KindOutlinedCopy, KindOutlinedConsume:
		if n.Kind == KindOutlinedCopy {
			p.buf.WriteString("outlined copy of ")
		} else {
			p.buf.WriteString("outlined consume of ")
		}
		p.print(n.FirstChild(), false)
		if n.NumChildren() > 1 {
			p.print(n.Child(1), false)
		}
		return nil

	case KindOutlinedVariable:
		p.buf.WriteString("outlined variable #")
		p.buf.WriteUint(n.Index)
		p.buf.WriteString(" of ")
		return nil

	case KindDirectness:
		name, ok := Directness(n.Index).Name()
		if !ok {
			p.setInvalid("bad directness")
			return nil
		}
		p.buf.WriteString(name)
		p.buf.writeByte(' ')
		return nil

	case KindAnonymousContext:
		if p.opts.QualifyEntities && p.opts.DisplayExtensionContexts {
			p.print(n.Child(1), false)
			p.buf.WriteString(".(unknown context at ")
			p.print(n.Child(0), false)
			p.buf.writeByte(')')
			if n.NumChildren() >= 3 && n.Child(2).NumChildren() > 0 {
				p.buf.writeByte('<')
				p.print(n.Child(2), false)
				p.buf.writeByte('>')
			}
		}
		return nil

	case KindExtension:
		if n.NumChildren() != 2 && n.NumChildren() != 3 {
			p.setInvalid("extension expects 2 or 3 children")
			return nil
		}
		if p.opts.QualifyEntities && p.opts.DisplayExtensionContexts {
			p.buf.WriteString("(extension in ")
			p.print(n.Child(0), true)
			p.buf.WriteString("):")
		}
		p.print(n.Child(1), false)
		// The runtime does not mangle the generic signature of extensions.
		if n.NumChildren() == 3 && !p.opts.PrintForTypeName {
			p.print(n.Child(2), false)
		}
		return nil

	case KindVariable:
		return p.printEntity(n, asPrefixContext, withColon, true, plainName())
	case KindFunction, KindBoundGenericFunction:
		return p.printEntity(n, asPrefixContext, functionStyle, true, plainName())
	case KindSubscript:
		return p.printEntity(n, asPrefixContext, functionStyle, false,
			entityName{index: -1, overwrite: "subscript"})
	case KindGenericTypeParamDecl:
		return p.printEntity(n, asPrefixContext, noType, true, plainName())
	case KindClass, KindStructure, KindEnum, KindProtocol, KindTypeAlias, KindOtherNominalType:
		return p.printEntity(n, asPrefixContext, noType, true, plainName())

	case KindExplicitClosure, KindImplicitClosure:
		typePr := noType
		if p.opts.ShowFunctionArgumentTypes {
			typePr = functionStyle
		}
		extra := "closure #"
		if n.Kind == KindImplicitClosure {
			extra = "implicit closure #"
		}
		index := n.Child(1)
		if !index.HasIndex() {
			p.setInvalid("closure without index")
			return nil
		}
		return p.printEntity(n, asPrefixContext, typePr, false,
			entityName{extra: extra, index: int(index.Index) + 1})

	case KindInitializer:
		return p.printEntity(n, asPrefixContext, noType, false,
			extraName("variable initialization expression"))
	case KindPropertyWrapperBackingInitializer:
		return p.printEntity(n, asPrefixContext, noType, false,
			extraName("property wrapper backing initializer"))
	case KindDefaultArgumentInitializer:
		index := n.Child(1)
		if !index.HasIndex() {
			p.setInvalid("default argument without index")
			return nil
		}
		return p.printEntity(n, asPrefixContext, noType, false,
			entityName{extra: "default argument ", index: int(index.Index)})

	case KindAllocator:
		name := "init"
		if n.FirstChild().Is(KindClass) {
			name = "__allocating_init"
		}
		return p.printEntity(n, asPrefixContext, functionStyle, false, extraName(name))
	case KindConstructor:
		return p.printEntity(n, asPrefixContext, functionStyle, n.NumChildren() > 2, extraName("init"))
	case KindDestructor:
		return p.printEntity(n, asPrefixContext, noType, false, extraName("deinit"))
	case KindDeallocator:
		name := "deinit"
		if n.FirstChild().Is(KindClass) {
			name = "__deallocating_deinit"
		}
		return p.printEntity(n, asPrefixContext, noType, false, extraName(name))
	case KindIVarInitializer:
		return p.printEntity(n, asPrefixContext, noType, false, extraName("__ivar_initializer"))
	case KindIVarDestroyer:
		return p.printEntity(n, asPrefixContext, noType, false, extraName("__ivar_destroyer"))

	case KindSuffix:
		if p.opts.DisplayUnmangledSuffix {
			p.buf.WriteString(" with unmangled suffix ")
			p.buf.WriteQuoted(n.Text)
		}
		return nil

	case KindTypeMangling:
		if n.FirstChild().Is(KindLabelList) {
			p.printFunctionType(n.Child(0), n.Child(1).FirstChild())
		} else {
			p.print(n.FirstChild(), false)
		}
		return nil

	case KindLocalDeclName:
		if !n.Child(0).HasIndex() {
			p.setInvalid("local name without index")
			return nil
		}
		p.print(n.Child(1), false)
		if p.opts.DisplayLocalNameContexts {
			p.buf.WriteString(" #")
			p.buf.WriteUint(n.Child(0).Index + 1)
		}
		return nil

	case KindPrivateDeclName:
		p.printPrivateDeclName(n)
		return nil

	case KindRelatedEntityDeclName:
		if n.NumChildren() < 2 {
			p.setInvalid("related entity name expects 2 children")
			return nil
		}
		p.buf.WriteString("related decl '")
		p.buf.WriteString(n.FirstChild().Text)
		p.buf.WriteString("' for ")
		p.print(n.Child(1), false)
		return nil

	case KindArgumentTuple:
		p.printFunctionParameters(nil, n, p.opts.ShowFunctionArgumentTypes)
		return nil

	case KindTuple:
		p.buf.writeByte('(')
		p.printChildren(n, ", ")
		p.buf.writeByte(')')
		return nil

	case KindTupleElement:
		if label := n.ChildOfKind(KindTupleElementName); label != nil {
			p.buf.WriteString(label.Text)
			p.buf.WriteString(": ")
		}
		typ := n.ChildOfKind(KindType)
		if typ == nil {
			p.setInvalid("tuple element without type")
			return nil
		}
		p.print(typ, false)
		if n.ChildOfKind(KindVariadicMarker) != nil {
			p.buf.WriteString("...")
		}
		return nil

	case KindTupleElementName:
		p.buf.WriteString(n.Text)
		p.buf.WriteString(": ")
		return nil

	case KindReturnType:
		p.buf.WriteString(" -> ")
		if n.NumChildren() == 0 {
			p.buf.WriteString(n.Text)
		} else {
			p.printChildren(n, "")
		}
		return nil

	case KindRetroactiveConformance:
		if n.NumChildren() != 2 {
			return nil
		}
		p.buf.WriteString("retroactive @ ")
		p.print(n.Child(0), false)
		p.print(n.Child(1), false)
		return nil

	case KindGenericSpecializationParam:
		p.printGenericSpecializationParam(n)
		return nil

	case KindFunctionSignatureSpecializationParam, KindFunctionSignatureSpecializationReturn:
		p.setInvalid("specialization parameter outside of a specialization")
		return nil

	case KindFunctionSignatureSpecializationParamPayload:
		p.printSpecializationParamPayload(n)
		return nil

	case KindFunctionSignatureSpecializationParamKind:
		p.printSpecializationParamKind(n)
		return nil

	case KindInfixOperator:
		p.buf.WriteString(n.Text)
		p.buf.WriteString(" infix")
		return nil
	case KindPrefixOperator:
		p.buf.WriteString(n.Text)
		p.buf.WriteString(" prefix")
		return nil
	case KindPostfixOperator:
		p.buf.WriteString(n.Text)
		p.buf.WriteString(" postfix")
		return nil

	case KindLazyProtocolWitnessTableAccessor, KindLazyProtocolWitnessTableCacheVariable:
		if n.Kind == KindLazyProtocolWitnessTableAccessor {
			p.buf.WriteString("lazy protocol witness table accessor for type ")
		} else {
			p.buf.WriteString("lazy protocol witness table cache variable for type ")
		}
		p.print(n.Child(0), false)
		p.buf.WriteString(" and conformance ")
		p.print(n.Child(1), false)
		return nil

	case KindVTableThunk:
		p.buf.WriteString("vtable thunk for ")
		p.print(n.Child(1), false)
		p.buf.WriteString(" dispatching to ")
		p.print(n.Child(0), false)
		return nil

	case KindProtocolWitness:
		p.buf.WriteString("protocol witness for ")
		p.print(n.Child(1), false)
		p.buf.WriteString(" in conformance ")
		p.print(n.Child(0), false)
		return nil

	case KindPartialApplyForwarder, KindPartialApplyObjCForwarder:
		switch {
		case p.opts.ShortenPartialApply:
			p.buf.WriteString("partial apply")
		case n.Kind == KindPartialApplyForwarder:
			p.buf.WriteString("partial apply forwarder")
		default:
			p.buf.WriteString("partial apply ObjC forwarder")
		}
		if n.HasChildren() {
			p.buf.WriteString(" for ")
			p.printChildren(n, "")
		}
		return nil

	case KindKeyPathGetterThunkHelper, KindKeyPathSetterThunkHelper:
		p.printKeyPathAccessorThunk(n)
		return nil

	case KindKeyPathEqualsThunkHelper, KindKeyPathHashThunkHelper:
		p.printKeyPathIndexThunk(n)
		return nil

	case KindFieldOffset:
		p.print(n.Child(0), false) // directness
		p.buf.WriteString("field offset for ")
		p.print(n.Child(1), false)
		return nil

	case KindReabstractionThunk, KindReabstractionThunkHelper:
		p.printReabstractionThunk(n)
		return nil

	case KindReabstractionThunkHelperWithSelf:
		p.printReabstractionThunkWithSelf(n)
		return nil

	case KindMergedFunction:
		if !p.opts.ShortenThunk {
			p.buf.WriteString("merged ")
		}
		return nil
	case KindDynamicallyReplaceableFunctionKey:
		if !p.opts.ShortenThunk {
			p.buf.WriteString("dynamically replaceable key for ")
		}
		return nil
	case KindDynamicallyReplaceableFunctionImpl:
		if !p.opts.ShortenThunk {
			p.buf.WriteString("dynamically replaceable thunk for ")
		}
		return nil
	case KindDynamicallyReplaceableFunctionVar:
		if !p.opts.ShortenThunk {
			p.buf.WriteString("dynamically replaceable variable for ")
		}
		return nil

	case KindTypeSymbolicReference:
		p.buf.WriteString("type symbolic reference 0x")
		p.buf.WriteHex(n.Index)
		return nil
	case KindOpaqueTypeDescriptorSymbolicReference:
		p.buf.WriteString("opaque type symbolic reference 0x")
		p.buf.WriteHex(n.Index)
		return nil
	case KindProtocolSymbolicReference:
		p.buf.WriteString("protocol symbolic reference 0x")
		p.buf.WriteHex(n.Index)
		return nil

	case KindAssociatedConformanceDescriptor, KindDefaultAssociatedConformanceAccessor:
		if n.Kind == KindAssociatedConformanceDescriptor {
			p.buf.WriteString("associated conformance descriptor for ")
		} else {
			p.buf.WriteString("default associated conformance accessor for ")
		}
		p.print(n.Child(0), false)
		p.buf.writeByte('.')
		p.print(n.Child(1), false)
		p.buf.WriteString(": ")
		p.print(n.Child(2), false)
		return nil

	case KindAssociatedTypeMetadataAccessor:
		p.buf.WriteString("associated type metadata accessor for ")
		p.print(n.Child(1), false)
		p.buf.WriteString(" in ")
		p.print(n.Child(0), false)
		return nil

	case KindBaseConformanceDescriptor:
		p.buf.WriteString("base conformance descriptor for ")
		p.print(n.Child(0), false)
		p.buf.WriteString(": ")
		p.print(n.Child(1), false)
		return nil

	case KindAssociatedTypeWitnessTableAccessor:
		p.buf.WriteString("associated type witness table accessor for ")
		p.print(n.Child(1), false)
		p.buf.WriteString(" : ")
		p.print(n.Child(2), false)
		p.buf.WriteString(" in ")
		p.print(n.Child(0), false)
		return nil

	case KindBaseWitnessTableAccessor:
		p.buf.WriteString("base witness table accessor for ")
		p.print(n.Child(1), false)
		p.buf.WriteString(" in ")
		p.print(n.Child(0), false)
		return nil

	case KindValueWitness:
		kind := n.FirstChild()
		if !kind.HasIndex() {
			p.setInvalid("value witness without kind")
			return nil
		}
		name, ok := ValueWitnessKind(kind.Index).Name()
		if !ok {
			p.setInvalid("bad value witness kind")
			return nil
		}
		p.buf.WriteString(name)
		if p.opts.ShortenValueWitness {
			p.buf.WriteString(" for ")
		} else {
			p.buf.WriteString(" value witness for ")
		}
		p.print(n.Child(1), false)
		return nil

	case KindBoundGenericClass,
		KindBoundGenericStructure,
		KindBoundGenericEnum,
		KindBoundGenericProtocol,
		KindBoundGenericOtherNominalType,
		KindBoundGenericTypeAlias:
		p.printBoundGeneric(n)
		return nil

	case KindMetatype:
		p.printMetatype(n)
		return nil

	case KindExistentialMetatype:
		idx := 0
		if n.NumChildren() == 2 {
			p.print(n.Child(0), false)
			p.buf.writeByte(' ')
			idx++
		}
		p.print(n.Child(idx), false)
		p.buf.WriteString(".Type")
		return nil

	case KindAssociatedTypeRef:
		if n.NumChildren() < 2 {
			p.setInvalid("associated type reference expects 2 children")
			return nil
		}
		p.print(n.Child(0), false)
		p.buf.writeByte('.')
		p.buf.WriteString(n.Child(1).Text)
		return nil

	case KindProtocolList, KindProtocolListWithClass, KindProtocolListWithAnyObject:
		p.printProtocolList(n)
		return nil

	case KindProtocolConformance:
		p.printProtocolConformance(n)
		return nil

	case KindImplDifferentiability:
		if n.Text != "" {
			p.buf.WriteString(n.Text)
			p.buf.writeByte(' ')
		}
		return nil

	case KindImplFunctionConvention:
		p.printImplFunctionConvention(n)
		return nil

	case KindImplFunctionConventionName:
		p.setInvalid("impl function convention name outside of a convention")
		return nil

	case KindImplErrorResult:
		p.buf.WriteString("@error ")
		p.printChildren(n, " ")
		return nil

	case KindImplYield:
		p.buf.WriteString("@yields ")
		p.printChildren(n, " ")
		return nil

	case KindImplParameter, KindImplResult:
		p.printImplParameter(n)
		return nil

	case KindImplFunctionType:
		p.printImplFunctionType(n)
		return nil

	case KindImplInvocationSubstitutions:
		p.buf.WriteString("for <")
		p.printChildren(n.Child(0), ", ")
		p.buf.writeByte('>')
		return nil

	case KindImplPatternSubstitutions:
		p.buf.WriteString("@substituted ")
		p.print(n.Child(0), false)
		p.buf.WriteString(" for <")
		p.printChildren(n.Child(1), ", ")
		p.buf.writeByte('>')
		return nil

	case KindDependentGenericSignature, KindDependentPseudogenericSignature:
		p.printGenericSignature(n)
		return nil

	case KindDependentGenericParamCount:
		p.setInvalid("generic parameter count outside of a generic signature")
		return nil

	case KindDependentGenericConformanceRequirement:
		p.print(n.Child(0), false)
		p.buf.WriteString(": ")
		p.print(n.Child(1), false)
		return nil

	case KindDependentGenericLayoutRequirement:
		p.printLayoutRequirement(n)
		return nil

	case KindDependentGenericSameTypeRequirement:
		p.print(n.Child(0), false)
		p.buf.WriteString(" == ")
		p.print(n.Child(1), false)
		return nil

	case KindDependentGenericParamType:
		depth, index := n.Child(0), n.Child(1)
		if !depth.HasIndex() || !index.HasIndex() {
			p.setInvalid("generic parameter without depth and index")
			return nil
		}
		p.buf.WriteString(p.opts.genericParameterName(depth.Index, index.Index))
		return nil

	case KindDependentGenericType:
		p.print(n.Child(0), false)
		if needSpaceBeforeType(n.Child(1)) {
			p.buf.writeByte(' ')
		}
		p.print(n.Child(1), false)
		return nil

	case KindDependentMemberType:
		p.print(n.Child(0), false)
		p.buf.writeByte('.')
		p.print(n.Child(1), false)
		return nil

	case KindDependentAssociatedTypeRef:
		if n.NumChildren() > 1 {
			p.print(n.Child(1), false)
			p.buf.writeByte('.')
		}
		p.print(n.Child(0), false)
		return nil

	case KindSILBoxTypeWithLayout:
		p.printSILBoxTypeWithLayout(n)
		return nil

	case KindSILBoxLayout:
		p.buf.writeByte('{')
		for i, field := range n.Children {
			if i > 0 {
				p.buf.writeByte(',')
			}
			p.buf.writeByte(' ')
			p.print(field, false)
		}
		p.buf.WriteString(" }")
		return nil

	case KindSILBoxImmutableField, KindSILBoxMutableField:
		if n.Kind == KindSILBoxImmutableField {
			p.buf.WriteString("let ")
		} else {
			p.buf.WriteString("var ")
		}
		if n.NumChildren() != 1 || !n.FirstChild().Is(KindType) {
			p.setInvalid("SIL box field without type")
			return nil
		}
		p.print(n.FirstChild(), false)
		return nil

	case KindAssocTypePath:
		p.printChildren(n, ".")
		return nil

	case KindAssociatedTypeGenericParamRef:
		p.buf.WriteString("generic parameter reference for associated type ")
		p.printChildren(n, "")
		return nil

	case KindConcreteProtocolConformance:
		p.buf.WriteString("concrete protocol conformance ")
		p.printOptionalIndex(n)
		p.printChildren(n, "")
		return nil

	case KindDependentAssociatedConformance:
		p.buf.WriteString("dependent associated conformance ")
		p.printChildren(n, "")
		return nil

	case KindDependentProtocolConformanceAssociated,
		KindDependentProtocolConformanceInherited,
		KindDependentProtocolConformanceRoot:
		switch n.Kind {
		case KindDependentProtocolConformanceAssociated:
			p.buf.WriteString("dependent associated protocol conformance ")
		case KindDependentProtocolConformanceInherited:
			p.buf.WriteString("dependent inherited protocol conformance ")
		default:
			p.buf.WriteString("dependent root protocol conformance ")
		}
		index := n.Child(2)
		if !index.Is(KindIndex) && !index.Is(KindUnknownIndex) {
			p.setInvalid("dependent conformance without index")
			return nil
		}
		p.printOptionalIndex(index)
		p.print(n.Child(0), false)
		p.print(n.Child(1), false)
		return nil

	case KindProtocolConformanceRefInTypeModule:
		p.buf.WriteString("protocol conformance ref (type's module) ")
		p.printChildren(n, "")
		return nil
	case KindProtocolConformanceRefInProtocolModule:
		p.buf.WriteString("protocol conformance ref (protocol's module) ")
		p.printChildren(n, "")
		return nil
	case KindProtocolConformanceRefInOtherModule:
		p.buf.WriteString("protocol conformance ref (retroactive) ")
		p.printChildren(n, "")
		return nil

	case KindSugaredOptional:
		p.printWithParens(n.FirstChild())
		p.buf.writeByte('?')
		return nil
	case KindSugaredArray:
		p.buf.writeByte('[')
		p.print(n.FirstChild(), false)
		p.buf.writeByte(']')
		return nil
	case KindSugaredDictionary:
		p.buf.writeByte('[')
		p.print(n.Child(0), false)
		p.buf.WriteString(" : ")
		p.print(n.Child(1), false)
		p.buf.writeByte(']')
		return nil
	case KindSugaredParen:
		p.buf.writeByte('(')
		p.print(n.FirstChild(), false)
		p.buf.writeByte(')')
		return nil

	case KindOpaqueReturnTypeOf:
		p.buf.WriteString("<<opaque return type of ")
		p.printChildren(n, "")
		p.buf.WriteString(">>")
		return nil

	case KindOpaqueType:
		p.print(n.Child(0), false)
		p.buf.writeByte('.')
		p.print(n.Child(1), false)
		return nil

	case KindAccessorFunctionReference:
		p.buf.WriteString("accessor function at ")
		p.buf.WriteUint(n.Index)
		return nil

	case KindGlobalVariableOnceToken, KindGlobalVariableOnceFunction:
		if n.Kind == KindGlobalVariableOnceToken {
			p.buf.WriteString("one-time initialization token for ")
		} else {
			p.buf.WriteString("one-time initialization function for ")
		}
		// The context is only consulted, never printed.
		p.printContext(n.Child(0))
		p.print(n.Child(1), false)
		return nil

	case KindGlobalVariableOnceDeclList:
		if n.NumChildren() == 1 {
			p.print(n.FirstChild(), false)
			return nil
		}
		p.buf.writeByte('(')
		p.printChildren(n, ", ")
		p.buf.writeByte(')')
		return nil
	}

	p.fatalf("bad node kind %q", n.Kind)
	return nil
}

func (p *nodePrinter) printPrivateDeclName(n *Node) {
	discriminator := n.FirstChild()
	if discriminator == nil {
		p.setInvalid("private name without discriminator")
		return
	}
	if n.NumChildren() > 1 {
		if p.opts.ShowPrivateDiscriminators {
			p.buf.writeByte('(')
		}
		p.print(n.Child(1), false)
		if p.opts.ShowPrivateDiscriminators {
			p.buf.WriteString(" in ")
			p.buf.WriteString(discriminator.Text)
			p.buf.writeByte(')')
		}
		return
	}
	if p.opts.ShowPrivateDiscriminators {
		p.buf.WriteString("(in ")
		p.buf.WriteString(discriminator.Text)
		p.buf.writeByte(')')
	}
}

func isExistentialType(n *Node) bool {
	switch {
	case n.Is(KindExistentialMetatype),
		n.Is(KindProtocolList),
		n.Is(KindProtocolListWithClass),
		n.Is(KindProtocolListWithAnyObject):
		return true
	}
	return false
}

func (p *nodePrinter) printMetatype(n *Node) {
	idx := 0
	if n.NumChildren() == 2 {
		p.print(n.Child(0), false)
		p.buf.writeByte(' ')
		idx++
	}
	typ := n.Child(idx).FirstChild()
	if typ == nil {
		p.setInvalid("metatype without instance type")
		return
	}
	p.printWithParens(typ)
	if isExistentialType(typ) {
		p.buf.WriteString(".Protocol")
	} else {
		p.buf.WriteString(".Type")
	}
}

func (p *nodePrinter) printProtocolList(n *Node) {
	switch n.Kind {
	case KindProtocolList:
		types := n.FirstChild()
		if types == nil {
			return
		}
		if types.NumChildren() == 0 {
			p.buf.WriteString("Any")
		} else {
			p.printChildren(types, " & ")
		}

	case KindProtocolListWithClass:
		if n.NumChildren() < 2 {
			return
		}
		p.print(n.Child(1), false) // superclass
		p.buf.WriteString(" & ")
		protocols := n.Child(0)
		if protocols.NumChildren() < 1 {
			return
		}
		p.printChildren(protocols.FirstChild(), " & ")

	case KindProtocolListWithAnyObject:
		protocols := n.FirstChild()
		if protocols.NumChildren() < 1 {
			return
		}
		types := protocols.FirstChild()
		if types.NumChildren() > 0 {
			p.printChildren(types, " & ")
			p.buf.WriteString(" & ")
		}
		if p.opts.QualifyEntities && p.opts.DisplayStdlibModule {
			p.buf.WriteString(StdlibModuleName)
			p.buf.writeByte('.')
		}
		p.buf.WriteString("AnyObject")
	}
}

func (p *nodePrinter) printProtocolConformance(n *Node) {
	if n.NumChildren() < 3 {
		p.setInvalid("protocol conformance expects at least 3 children")
		return
	}
	typ, protocol, context := n.Child(0), n.Child(1), n.Child(2)
	if n.NumChildren() == 4 {
		p.buf.WriteString("property behavior storage of ")
		p.print(context, false)
		p.buf.WriteString(" in ")
		p.print(typ, false)
		p.buf.WriteString(" : ")
		p.print(protocol, false)
		return
	}
	p.print(typ, false)
	if p.opts.DisplayProtocolConformances {
		p.buf.WriteString(" : ")
		p.print(protocol, false)
		p.buf.WriteString(" in ")
		p.print(context, false)
	}
}

func (p *nodePrinter) printKeyPathAccessorThunk(n *Node) {
	if n.Kind == KindKeyPathGetterThunkHelper {
		p.buf.WriteString("key path getter for ")
	} else {
		p.buf.WriteString("key path setter for ")
	}
	if n.NumChildren() < 2 {
		p.setInvalid("key path thunk expects a type")
		return
	}
	p.print(n.Child(0), false)
	p.buf.WriteString(" : ")
	for _, child := range n.Children[1:] {
		if child.Kind == KindIsSerialized {
			p.buf.WriteString(", ")
		}
		p.print(child, false)
	}
}

func (p *nodePrinter) printKeyPathIndexThunk(n *Node) {
	p.buf.WriteString("key path index ")
	if n.Kind == KindKeyPathEqualsThunkHelper {
		p.buf.WriteString("equality")
	} else {
		p.buf.WriteString("hash")
	}
	p.buf.WriteString(" operator for ")

	last := n.NumChildren()
	if last == 0 {
		p.setInvalid("key path index thunk without arguments")
		return
	}
	if n.Child(last - 1).Is(KindIsSerialized) {
		last--
	}
	if sig := n.Child(last - 1); sig.Is(KindDependentGenericSignature) {
		p.print(sig, false)
		last--
	}

	p.buf.writeByte('(')
	for i := 0; i < last; i++ {
		if i != 0 {
			p.buf.WriteString(", ")
		}
		p.print(n.Child(i), false)
	}
	p.buf.writeByte(')')
}

func (p *nodePrinter) printReabstractionThunk(n *Node) {
	if p.opts.ShortenThunk {
		p.buf.WriteString("thunk for ")
		p.print(n.LastChild(), false)
		return
	}
	p.buf.WriteString("reabstraction thunk ")
	if n.Kind == KindReabstractionThunkHelper {
		p.buf.WriteString("helper ")
	}
	idx := 0
	if n.NumChildren() == 3 {
		p.print(n.Child(0), false) // generic signature
		p.buf.writeByte(' ')
		idx = 1
	}
	p.buf.WriteString("from ")
	p.print(n.Child(idx+1), false)
	p.buf.WriteString(" to ")
	p.print(n.Child(idx), false)
}

func (p *nodePrinter) printReabstractionThunkWithSelf(n *Node) {
	p.buf.WriteString("reabstraction thunk ")
	idx := 0
	if n.NumChildren() == 4 {
		p.print(n.Child(0), false) // generic signature
		p.buf.writeByte(' ')
		idx = 1
	}
	p.buf.WriteString("from ")
	p.print(n.Child(idx+2), false)
	p.buf.WriteString(" to ")
	p.print(n.Child(idx+1), false)
	p.buf.WriteString(" self ")
	p.print(n.Child(idx), false)
}
