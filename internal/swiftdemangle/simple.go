package swiftdemangle

// isSimpleType reports whether a type node can be nested inside sugar such
// as "T?" without being wrapped in parentheses. The classification is total
// over the node-kind enumeration; a kind outside it is an invariant violation.
func (p *nodePrinter) isSimpleType(n *Node) bool {
	if n == nil {
		p.setInvalid("missing type")
		return true
	}
	switch n.Kind {
	case KindAssociatedType,
		KindAssociatedTypeRef,
		KindBoundGenericClass,
		KindBoundGenericEnum,
		KindBoundGenericStructure,
		KindBoundGenericProtocol,
		KindBoundGenericOtherNominalType,
		KindBoundGenericTypeAlias,
		KindBoundGenericFunction,
		KindBuiltinTypeName,
		KindClass,
		KindDependentGenericType,
		KindDependentMemberType,
		KindDependentGenericParamType,
		KindDynamicSelf,
		KindEnum,
		KindErrorType,
		KindExistentialMetatype,
		KindMetatype,
		KindMetatypeRepresentation,
		KindModule,
		KindTuple,
		KindProtocol,
		KindProtocolSymbolicReference,
		KindReturnType,
		KindSILBoxType,
		KindSILBoxTypeWithLayout,
		KindStructure,
		KindOtherNominalType,
		KindTupleElementName,
		KindType,
		KindTypeAlias,
		KindTypeList,
		KindLabelList,
		KindTypeSymbolicReference,
		KindSugaredOptional,
		KindSugaredArray,
		KindSugaredDictionary,
		KindSugaredParen:
		return true

	case KindProtocolList:
		// A single protocol needs no parentheses, "A & B" does.
		return n.FirstChild().NumChildren() <= 1

	case KindProtocolListWithAnyObject:
		return n.FirstChild().FirstChild().NumChildren() == 0

	case KindProtocolListWithClass,
		KindAccessorFunctionReference,
		KindAllocator,
		KindArgumentTuple,
		KindAssociatedConformanceDescriptor,
		KindAssociatedTypeDescriptor,
		KindAssociatedTypeMetadataAccessor,
		KindAssociatedTypeWitnessTableAccessor,
		KindAutoClosureType,
		KindBaseConformanceDescriptor,
		KindBaseWitnessTableAccessor,
		KindClangType,
		KindClassMetadataBaseOffset,
		KindCFunctionPointer,
		KindConstructor,
		KindCoroutineContinuationPrototype,
		KindCurryThunk,
		KindDispatchThunk,
		KindDeallocator,
		KindDeclContext,
		KindDefaultArgumentInitializer,
		KindDefaultAssociatedTypeMetadataAccessor,
		KindDefaultAssociatedConformanceAccessor,
		KindDependentAssociatedTypeRef,
		KindDependentGenericSignature,
		KindDependentGenericParamCount,
		KindDependentGenericConformanceRequirement,
		KindDependentGenericLayoutRequirement,
		KindDependentGenericSameTypeRequirement,
		KindDependentPseudogenericSignature,
		KindDestructor,
		KindDidSet,
		KindDifferentiableFunctionType,
		KindEscapingDifferentiableFunctionType,
		KindLinearFunctionType,
		KindEscapingLinearFunctionType,
		KindDirectMethodReferenceAttribute,
		KindDirectness,
		KindDynamicAttribute,
		KindEscapingAutoClosureType,
		KindEscapingObjCBlock,
		KindNoEscapeFunctionType,
		KindExplicitClosure,
		KindExtension,
		KindEnumCase,
		KindFieldOffset,
		KindFullObjCResilientClassStub,
		KindFullTypeMetadata,
		KindFunction,
		KindFunctionSignatureSpecialization,
		KindFunctionSignatureSpecializationParam,
		KindFunctionSignatureSpecializationReturn,
		KindFunctionSignatureSpecializationParamKind,
		KindFunctionSignatureSpecializationParamPayload,
		KindFunctionType,
		KindGenericProtocolWitnessTable,
		KindGenericProtocolWitnessTableInstantiationFunction,
		KindGenericPartialSpecialization,
		KindGenericPartialSpecializationNotReAbstracted,
		KindGenericSpecialization,
		KindGenericSpecializationNotReAbstracted,
		KindGenericSpecializationParam,
		KindGenericSpecializationPrespecialized,
		KindInlinedGenericFunction,
		KindGenericTypeMetadataPattern,
		KindGetter,
		KindGlobal,
		KindGlobalGetter,
		KindIdentifier,
		KindIndex,
		KindIVarInitializer,
		KindIVarDestroyer,
		KindImplDifferentiable,
		KindImplLinear,
		KindImplEscaping,
		KindImplConvention,
		KindImplDifferentiability,
		KindImplFunctionAttribute,
		KindImplFunctionConvention,
		KindImplFunctionConventionName,
		KindImplFunctionType,
		KindImplInvocationSubstitutions,
		KindImplPatternSubstitutions,
		KindImplicitClosure,
		KindImplParameter,
		KindImplResult,
		KindImplYield,
		KindImplErrorResult,
		KindInOut,
		KindInfixOperator,
		KindInitializer,
		KindPropertyWrapperBackingInitializer,
		KindKeyPathGetterThunkHelper,
		KindKeyPathSetterThunkHelper,
		KindKeyPathEqualsThunkHelper,
		KindKeyPathHashThunkHelper,
		KindLazyProtocolWitnessTableAccessor,
		KindLazyProtocolWitnessTableCacheVariable,
		KindLocalDeclName,
		KindMaterializeForSet,
		KindMergedFunction,
		KindMetaclass,
		KindMethodDescriptor,
		KindMethodLookupFunction,
		KindModifyAccessor,
		KindNativeOwningAddressor,
		KindNativeOwningMutableAddressor,
		KindNativePinningAddressor,
		KindNativePinningMutableAddressor,
		KindNominalTypeDescriptor,
		KindNonObjCAttribute,
		KindNumber,
		KindObjCAsyncCompletionHandlerImpl,
		KindObjCAttribute,
		KindObjCBlock,
		KindObjCMetadataUpdateFunction,
		KindObjCResilientClassStub,
		KindOpaqueTypeDescriptor,
		KindOpaqueTypeDescriptorAccessor,
		KindOpaqueTypeDescriptorAccessorImpl,
		KindOpaqueTypeDescriptorAccessorKey,
		KindOpaqueTypeDescriptorAccessorVar,
		KindOwned,
		KindOwningAddressor,
		KindOwningMutableAddressor,
		KindPartialApplyForwarder,
		KindPartialApplyObjCForwarder,
		KindPostfixOperator,
		KindPrefixOperator,
		KindPrivateDeclName,
		KindPropertyDescriptor,
		KindProtocolConformance,
		KindProtocolConformanceDescriptor,
		KindMetadataInstantiationCache,
		KindProtocolDescriptor,
		KindProtocolRequirementsBaseDescriptor,
		KindProtocolSelfConformanceDescriptor,
		KindProtocolSelfConformanceWitness,
		KindProtocolSelfConformanceWitnessTable,
		KindProtocolWitness,
		KindProtocolWitnessTable,
		KindProtocolWitnessTableAccessor,
		KindProtocolWitnessTablePattern,
		KindReabstractionThunk,
		KindReabstractionThunkHelper,
		KindReabstractionThunkHelperWithSelf,
		KindReadAccessor,
		KindRelatedEntityDeclName,
		KindRetroactiveConformance,
		KindSetter,
		KindShared,
		KindSILBoxLayout,
		KindSILBoxMutableField,
		KindSILBoxImmutableField,
		KindIsSerialized,
		KindSpecializationPassID,
		KindStatic,
		KindSubscript,
		KindSuffix,
		KindThinFunctionType,
		KindTupleElement,
		KindTypeMangling,
		KindTypeMetadata,
		KindTypeMetadataAccessFunction,
		KindTypeMetadataCompletionFunction,
		KindTypeMetadataInstantiationCache,
		KindTypeMetadataInstantiationFunction,
		KindTypeMetadataSingletonInitializationCache,
		KindTypeMetadataDemanglingCache,
		KindTypeMetadataLazyCache,
		KindUncurriedFunctionType,
		KindWeak,
		KindUnowned,
		KindUnmanaged,
		KindUnknownIndex,
		KindUnsafeAddressor,
		KindUnsafeMutableAddressor,
		KindValueWitness,
		KindValueWitnessTable,
		KindVariable,
		KindVTableAttribute,
		KindVTableThunk,
		KindWillSet,
		KindReflectionMetadataBuiltinDescriptor,
		KindReflectionMetadataFieldDescriptor,
		KindReflectionMetadataAssocTypeDescriptor,
		KindReflectionMetadataSuperclassDescriptor,
		KindResilientProtocolWitnessTable,
		KindGenericTypeParamDecl,
		KindAsyncAnnotation,
		KindThrowsAnnotation,
		KindEmptyList,
		KindFirstElementMarker,
		KindVariadicMarker,
		KindOutlinedBridgedMethod,
		KindOutlinedCopy,
		KindOutlinedConsume,
		KindOutlinedRetain,
		KindOutlinedRelease,
		KindOutlinedInitializeWithTake,
		KindOutlinedInitializeWithCopy,
		KindOutlinedAssignWithTake,
		KindOutlinedAssignWithCopy,
		KindOutlinedDestroy,
		KindOutlinedVariable,
		KindAssocTypePath,
		KindModuleDescriptor,
		KindAnonymousDescriptor,
		KindAssociatedTypeGenericParamRef,
		KindExtensionDescriptor,
		KindAnonymousContext,
		KindAnyProtocolConformanceList,
		KindConcreteProtocolConformance,
		KindDependentAssociatedConformance,
		KindDependentProtocolConformanceAssociated,
		KindDependentProtocolConformanceInherited,
		KindDependentProtocolConformanceRoot,
		KindProtocolConformanceRefInTypeModule,
		KindProtocolConformanceRefInProtocolModule,
		KindProtocolConformanceRefInOtherModule,
		KindDynamicallyReplaceableFunctionKey,
		KindDynamicallyReplaceableFunctionImpl,
		KindDynamicallyReplaceableFunctionVar,
		KindOpaqueType,
		KindOpaqueTypeDescriptorSymbolicReference,
		KindOpaqueReturnType,
		KindOpaqueReturnTypeOf,
		KindCanonicalSpecializedGenericMetaclass,
		KindCanonicalSpecializedGenericTypeMetadataAccessFunction,
		KindNoncanonicalSpecializedGenericTypeMetadata,
		KindNoncanonicalSpecializedGenericTypeMetadataCache,
		KindGlobalVariableOnceDeclList,
		KindGlobalVariableOnceFunction,
		KindGlobalVariableOnceToken,
		KindCanonicalPrespecializedGenericTypeCachingOnceToken:
		return false
	}
	p.fatalf("bad node kind %q", n.Kind)
	return false
}
