package swiftdemangle

// NodeKind identifies the semantic role of a node in the Swift demangling AST.
// The value of every constant is the kind name used by the toolchain in its
// tree dumps.
type NodeKind string

const (
	KindAccessorFunctionReference                             NodeKind = "AccessorFunctionReference"
	KindAllocator                                             NodeKind = "Allocator"
	KindAnonymousContext                                      NodeKind = "AnonymousContext"
	KindAnonymousDescriptor                                   NodeKind = "AnonymousDescriptor"
	KindAnyProtocolConformanceList                            NodeKind = "AnyProtocolConformanceList"
	KindArgumentTuple                                         NodeKind = "ArgumentTuple"
	KindAssocTypePath                                         NodeKind = "AssocTypePath"
	KindAssociatedConformanceDescriptor                       NodeKind = "AssociatedConformanceDescriptor"
	KindAssociatedType                                        NodeKind = "AssociatedType"
	KindAssociatedTypeDescriptor                              NodeKind = "AssociatedTypeDescriptor"
	KindAssociatedTypeGenericParamRef                         NodeKind = "AssociatedTypeGenericParamRef"
	KindAssociatedTypeMetadataAccessor                        NodeKind = "AssociatedTypeMetadataAccessor"
	KindAssociatedTypeRef                                     NodeKind = "AssociatedTypeRef"
	KindAssociatedTypeWitnessTableAccessor                    NodeKind = "AssociatedTypeWitnessTableAccessor"
	KindAsyncAnnotation                                       NodeKind = "AsyncAnnotation"
	KindAutoClosureType                                       NodeKind = "AutoClosureType"
	KindBaseConformanceDescriptor                             NodeKind = "BaseConformanceDescriptor"
	KindBaseWitnessTableAccessor                              NodeKind = "BaseWitnessTableAccessor"
	KindBoundGenericClass                                     NodeKind = "BoundGenericClass"
	KindBoundGenericEnum                                      NodeKind = "BoundGenericEnum"
	KindBoundGenericFunction                                  NodeKind = "BoundGenericFunction"
	KindBoundGenericOtherNominalType                          NodeKind = "BoundGenericOtherNominalType"
	KindBoundGenericProtocol                                  NodeKind = "BoundGenericProtocol"
	KindBoundGenericStructure                                 NodeKind = "BoundGenericStructure"
	KindBoundGenericTypeAlias                                 NodeKind = "BoundGenericTypeAlias"
	KindBuiltinTypeName                                       NodeKind = "BuiltinTypeName"
	KindCFunctionPointer                                      NodeKind = "CFunctionPointer"
	KindCanonicalPrespecializedGenericTypeCachingOnceToken    NodeKind = "CanonicalPrespecializedGenericTypeCachingOnceToken"
	KindCanonicalSpecializedGenericMetaclass                  NodeKind = "CanonicalSpecializedGenericMetaclass"
	KindCanonicalSpecializedGenericTypeMetadataAccessFunction NodeKind = "CanonicalSpecializedGenericTypeMetadataAccessFunction"
	KindClangType                                             NodeKind = "ClangType"
	KindClass                                                 NodeKind = "Class"
	KindClassMetadataBaseOffset                               NodeKind = "ClassMetadataBaseOffset"
	KindConcreteProtocolConformance                           NodeKind = "ConcreteProtocolConformance"
	KindConstructor                                           NodeKind = "Constructor"
	KindCoroutineContinuationPrototype                        NodeKind = "CoroutineContinuationPrototype"
	KindCurryThunk                                            NodeKind = "CurryThunk"
	KindDeallocator                                           NodeKind = "Deallocator"
	KindDeclContext                                           NodeKind = "DeclContext"
	KindDefaultArgumentInitializer                            NodeKind = "DefaultArgumentInitializer"
	KindDefaultAssociatedConformanceAccessor                  NodeKind = "DefaultAssociatedConformanceAccessor"
	KindDefaultAssociatedTypeMetadataAccessor                 NodeKind = "DefaultAssociatedTypeMetadataAccessor"
	KindDependentAssociatedConformance                        NodeKind = "DependentAssociatedConformance"
	KindDependentAssociatedTypeRef                            NodeKind = "DependentAssociatedTypeRef"
	KindDependentGenericConformanceRequirement                NodeKind = "DependentGenericConformanceRequirement"
	KindDependentGenericLayoutRequirement                     NodeKind = "DependentGenericLayoutRequirement"
	KindDependentGenericParamCount                            NodeKind = "DependentGenericParamCount"
	KindDependentGenericParamType                             NodeKind = "DependentGenericParamType"
	KindDependentGenericSameTypeRequirement                   NodeKind = "DependentGenericSameTypeRequirement"
	KindDependentGenericSignature                             NodeKind = "DependentGenericSignature"
	KindDependentGenericType                                  NodeKind = "DependentGenericType"
	KindDependentMemberType                                   NodeKind = "DependentMemberType"
	KindDependentProtocolConformanceAssociated                NodeKind = "DependentProtocolConformanceAssociated"
	KindDependentProtocolConformanceInherited                 NodeKind = "DependentProtocolConformanceInherited"
	KindDependentProtocolConformanceRoot                      NodeKind = "DependentProtocolConformanceRoot"
	KindDependentPseudogenericSignature                       NodeKind = "DependentPseudogenericSignature"
	KindDestructor                                            NodeKind = "Destructor"
	KindDidSet                                                NodeKind = "DidSet"
	KindDifferentiableFunctionType                            NodeKind = "DifferentiableFunctionType"
	KindDirectMethodReferenceAttribute                        NodeKind = "DirectMethodReferenceAttribute"
	KindDirectness                                            NodeKind = "Directness"
	KindDispatchThunk                                         NodeKind = "DispatchThunk"
	KindDynamicAttribute                                      NodeKind = "DynamicAttribute"
	KindDynamicSelf                                           NodeKind = "DynamicSelf"
	KindDynamicallyReplaceableFunctionImpl                    NodeKind = "DynamicallyReplaceableFunctionImpl"
	KindDynamicallyReplaceableFunctionKey                     NodeKind = "DynamicallyReplaceableFunctionKey"
	KindDynamicallyReplaceableFunctionVar                     NodeKind = "DynamicallyReplaceableFunctionVar"
	KindEmptyList                                             NodeKind = "EmptyList"
	KindEnum                                                  NodeKind = "Enum"
	KindEnumCase                                              NodeKind = "EnumCase"
	KindErrorType                                             NodeKind = "ErrorType"
	KindEscapingAutoClosureType                               NodeKind = "EscapingAutoClosureType"
	KindEscapingDifferentiableFunctionType                    NodeKind = "EscapingDifferentiableFunctionType"
	KindEscapingLinearFunctionType                            NodeKind = "EscapingLinearFunctionType"
	KindEscapingObjCBlock                                     NodeKind = "EscapingObjCBlock"
	KindExistentialMetatype                                   NodeKind = "ExistentialMetatype"
	KindExplicitClosure                                       NodeKind = "ExplicitClosure"
	KindExtension                                             NodeKind = "Extension"
	KindExtensionDescriptor                                   NodeKind = "ExtensionDescriptor"
	KindFieldOffset                                           NodeKind = "FieldOffset"
	KindFirstElementMarker                                    NodeKind = "FirstElementMarker"
	KindFullObjCResilientClassStub                            NodeKind = "FullObjCResilientClassStub"
	KindFullTypeMetadata                                      NodeKind = "FullTypeMetadata"
	KindFunction                                              NodeKind = "Function"
	KindFunctionSignatureSpecialization                       NodeKind = "FunctionSignatureSpecialization"
	KindFunctionSignatureSpecializationParam                  NodeKind = "FunctionSignatureSpecializationParam"
	KindFunctionSignatureSpecializationParamKind              NodeKind = "FunctionSignatureSpecializationParamKind"
	KindFunctionSignatureSpecializationParamPayload           NodeKind = "FunctionSignatureSpecializationParamPayload"
	KindFunctionSignatureSpecializationReturn                 NodeKind = "FunctionSignatureSpecializationReturn"
	KindFunctionType                                          NodeKind = "FunctionType"
	KindGenericPartialSpecialization                          NodeKind = "GenericPartialSpecialization"
	KindGenericPartialSpecializationNotReAbstracted           NodeKind = "GenericPartialSpecializationNotReAbstracted"
	KindGenericProtocolWitnessTable                           NodeKind = "GenericProtocolWitnessTable"
	KindGenericProtocolWitnessTableInstantiationFunction      NodeKind = "GenericProtocolWitnessTableInstantiationFunction"
	KindGenericSpecialization                                 NodeKind = "GenericSpecialization"
	KindGenericSpecializationNotReAbstracted                  NodeKind = "GenericSpecializationNotReAbstracted"
	KindGenericSpecializationParam                            NodeKind = "GenericSpecializationParam"
	KindGenericSpecializationPrespecialized                   NodeKind = "GenericSpecializationPrespecialized"
	KindGenericTypeMetadataPattern                            NodeKind = "GenericTypeMetadataPattern"
	KindGenericTypeParamDecl                                  NodeKind = "GenericTypeParamDecl"
	KindGetter                                                NodeKind = "Getter"
	KindGlobal                                                NodeKind = "Global"
	KindGlobalGetter                                          NodeKind = "GlobalGetter"
	KindGlobalVariableOnceDeclList                            NodeKind = "GlobalVariableOnceDeclList"
	KindGlobalVariableOnceFunction                            NodeKind = "GlobalVariableOnceFunction"
	KindGlobalVariableOnceToken                               NodeKind = "GlobalVariableOnceToken"
	KindIVarDestroyer                                         NodeKind = "IVarDestroyer"
	KindIVarInitializer                                       NodeKind = "IVarInitializer"
	KindIdentifier                                            NodeKind = "Identifier"
	KindImplConvention                                        NodeKind = "ImplConvention"
	KindImplDifferentiability                                 NodeKind = "ImplDifferentiability"
	KindImplDifferentiable                                    NodeKind = "ImplDifferentiable"
	KindImplErrorResult                                       NodeKind = "ImplErrorResult"
	KindImplEscaping                                          NodeKind = "ImplEscaping"
	KindImplFunctionAttribute                                 NodeKind = "ImplFunctionAttribute"
	KindImplFunctionConvention                                NodeKind = "ImplFunctionConvention"
	KindImplFunctionConventionName                            NodeKind = "ImplFunctionConventionName"
	KindImplFunctionType                                      NodeKind = "ImplFunctionType"
	KindImplInvocationSubstitutions                           NodeKind = "ImplInvocationSubstitutions"
	KindImplLinear                                            NodeKind = "ImplLinear"
	KindImplParameter                                         NodeKind = "ImplParameter"
	KindImplPatternSubstitutions                              NodeKind = "ImplPatternSubstitutions"
	KindImplResult                                            NodeKind = "ImplResult"
	KindImplYield                                             NodeKind = "ImplYield"
	KindImplicitClosure                                       NodeKind = "ImplicitClosure"
	KindInOut                                                 NodeKind = "InOut"
	KindIndex                                                 NodeKind = "Index"
	KindInfixOperator                                         NodeKind = "InfixOperator"
	KindInitializer                                           NodeKind = "Initializer"
	KindInlinedGenericFunction                                NodeKind = "InlinedGenericFunction"
	KindIsSerialized                                          NodeKind = "IsSerialized"
	KindKeyPathEqualsThunkHelper                              NodeKind = "KeyPathEqualsThunkHelper"
	KindKeyPathGetterThunkHelper                              NodeKind = "KeyPathGetterThunkHelper"
	KindKeyPathHashThunkHelper                                NodeKind = "KeyPathHashThunkHelper"
	KindKeyPathSetterThunkHelper                              NodeKind = "KeyPathSetterThunkHelper"
	KindLabelList                                             NodeKind = "LabelList"
	KindLazyProtocolWitnessTableAccessor                      NodeKind = "LazyProtocolWitnessTableAccessor"
	KindLazyProtocolWitnessTableCacheVariable                 NodeKind = "LazyProtocolWitnessTableCacheVariable"
	KindLinearFunctionType                                    NodeKind = "LinearFunctionType"
	KindLocalDeclName                                         NodeKind = "LocalDeclName"
	KindMaterializeForSet                                     NodeKind = "MaterializeForSet"
	KindMergedFunction                                        NodeKind = "MergedFunction"
	KindMetaclass                                             NodeKind = "Metaclass"
	KindMetadataInstantiationCache                            NodeKind = "MetadataInstantiationCache"
	KindMetatype                                              NodeKind = "Metatype"
	KindMetatypeRepresentation                                NodeKind = "MetatypeRepresentation"
	KindMethodDescriptor                                      NodeKind = "MethodDescriptor"
	KindMethodLookupFunction                                  NodeKind = "MethodLookupFunction"
	KindModifyAccessor                                        NodeKind = "ModifyAccessor"
	KindModule                                                NodeKind = "Module"
	KindModuleDescriptor                                      NodeKind = "ModuleDescriptor"
	KindNativeOwningAddressor                                 NodeKind = "NativeOwningAddressor"
	KindNativeOwningMutableAddressor                          NodeKind = "NativeOwningMutableAddressor"
	KindNativePinningAddressor                                NodeKind = "NativePinningAddressor"
	KindNativePinningMutableAddressor                         NodeKind = "NativePinningMutableAddressor"
	KindNoEscapeFunctionType                                  NodeKind = "NoEscapeFunctionType"
	KindNominalTypeDescriptor                                 NodeKind = "NominalTypeDescriptor"
	KindNonObjCAttribute                                      NodeKind = "NonObjCAttribute"
	KindNoncanonicalSpecializedGenericTypeMetadata            NodeKind = "NoncanonicalSpecializedGenericTypeMetadata"
	KindNoncanonicalSpecializedGenericTypeMetadataCache       NodeKind = "NoncanonicalSpecializedGenericTypeMetadataCache"
	KindNumber                                                NodeKind = "Number"
	KindObjCAsyncCompletionHandlerImpl                        NodeKind = "ObjCAsyncCompletionHandlerImpl"
	KindObjCAttribute                                         NodeKind = "ObjCAttribute"
	KindObjCBlock                                             NodeKind = "ObjCBlock"
	KindObjCMetadataUpdateFunction                            NodeKind = "ObjCMetadataUpdateFunction"
	KindObjCResilientClassStub                                NodeKind = "ObjCResilientClassStub"
	KindOpaqueReturnType                                      NodeKind = "OpaqueReturnType"
	KindOpaqueReturnTypeOf                                    NodeKind = "OpaqueReturnTypeOf"
	KindOpaqueType                                            NodeKind = "OpaqueType"
	KindOpaqueTypeDescriptor                                  NodeKind = "OpaqueTypeDescriptor"
	KindOpaqueTypeDescriptorAccessor                          NodeKind = "OpaqueTypeDescriptorAccessor"
	KindOpaqueTypeDescriptorAccessorImpl                      NodeKind = "OpaqueTypeDescriptorAccessorImpl"
	KindOpaqueTypeDescriptorAccessorKey                       NodeKind = "OpaqueTypeDescriptorAccessorKey"
	KindOpaqueTypeDescriptorAccessorVar                       NodeKind = "OpaqueTypeDescriptorAccessorVar"
	KindOpaqueTypeDescriptorSymbolicReference                 NodeKind = "OpaqueTypeDescriptorSymbolicReference"
	KindOtherNominalType                                      NodeKind = "OtherNominalType"
	KindOutlinedAssignWithCopy                                NodeKind = "OutlinedAssignWithCopy"
	KindOutlinedAssignWithTake                                NodeKind = "OutlinedAssignWithTake"
	KindOutlinedBridgedMethod                                 NodeKind = "OutlinedBridgedMethod"
	KindOutlinedConsume                                       NodeKind = "OutlinedConsume"
	KindOutlinedCopy                                          NodeKind = "OutlinedCopy"
	KindOutlinedDestroy                                       NodeKind = "OutlinedDestroy"
	KindOutlinedInitializeWithCopy                            NodeKind = "OutlinedInitializeWithCopy"
	KindOutlinedInitializeWithTake                            NodeKind = "OutlinedInitializeWithTake"
	KindOutlinedRelease                                       NodeKind = "OutlinedRelease"
	KindOutlinedRetain                                        NodeKind = "OutlinedRetain"
	KindOutlinedVariable                                      NodeKind = "OutlinedVariable"
	KindOwned                                                 NodeKind = "Owned"
	KindOwningAddressor                                       NodeKind = "OwningAddressor"
	KindOwningMutableAddressor                                NodeKind = "OwningMutableAddressor"
	KindPartialApplyForwarder                                 NodeKind = "PartialApplyForwarder"
	KindPartialApplyObjCForwarder                             NodeKind = "PartialApplyObjCForwarder"
	KindPostfixOperator                                       NodeKind = "PostfixOperator"
	KindPrefixOperator                                        NodeKind = "PrefixOperator"
	KindPrivateDeclName                                       NodeKind = "PrivateDeclName"
	KindPropertyDescriptor                                    NodeKind = "PropertyDescriptor"
	KindPropertyWrapperBackingInitializer                     NodeKind = "PropertyWrapperBackingInitializer"
	KindProtocol                                              NodeKind = "Protocol"
	KindProtocolConformance                                   NodeKind = "ProtocolConformance"
	KindProtocolConformanceDescriptor                         NodeKind = "ProtocolConformanceDescriptor"
	KindProtocolConformanceRefInOtherModule                   NodeKind = "ProtocolConformanceRefInOtherModule"
	KindProtocolConformanceRefInProtocolModule                NodeKind = "ProtocolConformanceRefInProtocolModule"
	KindProtocolConformanceRefInTypeModule                    NodeKind = "ProtocolConformanceRefInTypeModule"
	KindProtocolDescriptor                                    NodeKind = "ProtocolDescriptor"
	KindProtocolList                                          NodeKind = "ProtocolList"
	KindProtocolListWithAnyObject                             NodeKind = "ProtocolListWithAnyObject"
	KindProtocolListWithClass                                 NodeKind = "ProtocolListWithClass"
	KindProtocolRequirementsBaseDescriptor                    NodeKind = "ProtocolRequirementsBaseDescriptor"
	KindProtocolSelfConformanceDescriptor                     NodeKind = "ProtocolSelfConformanceDescriptor"
	KindProtocolSelfConformanceWitness                        NodeKind = "ProtocolSelfConformanceWitness"
	KindProtocolSelfConformanceWitnessTable                   NodeKind = "ProtocolSelfConformanceWitnessTable"
	KindProtocolSymbolicReference                             NodeKind = "ProtocolSymbolicReference"
	KindProtocolWitness                                       NodeKind = "ProtocolWitness"
	KindProtocolWitnessTable                                  NodeKind = "ProtocolWitnessTable"
	KindProtocolWitnessTableAccessor                          NodeKind = "ProtocolWitnessTableAccessor"
	KindProtocolWitnessTablePattern                           NodeKind = "ProtocolWitnessTablePattern"
	KindReabstractionThunk                                    NodeKind = "ReabstractionThunk"
	KindReabstractionThunkHelper                              NodeKind = "ReabstractionThunkHelper"
	KindReabstractionThunkHelperWithSelf                      NodeKind = "ReabstractionThunkHelperWithSelf"
	KindReadAccessor                                          NodeKind = "ReadAccessor"
	KindReflectionMetadataAssocTypeDescriptor                 NodeKind = "ReflectionMetadataAssocTypeDescriptor"
	KindReflectionMetadataBuiltinDescriptor                   NodeKind = "ReflectionMetadataBuiltinDescriptor"
	KindReflectionMetadataFieldDescriptor                     NodeKind = "ReflectionMetadataFieldDescriptor"
	KindReflectionMetadataSuperclassDescriptor                NodeKind = "ReflectionMetadataSuperclassDescriptor"
	KindRelatedEntityDeclName                                 NodeKind = "RelatedEntityDeclName"
	KindResilientProtocolWitnessTable                         NodeKind = "ResilientProtocolWitnessTable"
	KindRetroactiveConformance                                NodeKind = "RetroactiveConformance"
	KindReturnType                                            NodeKind = "ReturnType"
	KindSILBoxImmutableField                                  NodeKind = "SILBoxImmutableField"
	KindSILBoxLayout                                          NodeKind = "SILBoxLayout"
	KindSILBoxMutableField                                    NodeKind = "SILBoxMutableField"
	KindSILBoxType                                            NodeKind = "SILBoxType"
	KindSILBoxTypeWithLayout                                  NodeKind = "SILBoxTypeWithLayout"
	KindSetter                                                NodeKind = "Setter"
	KindShared                                                NodeKind = "Shared"
	KindSpecializationPassID                                  NodeKind = "SpecializationPassID"
	KindStatic                                                NodeKind = "Static"
	KindStructure                                             NodeKind = "Structure"
	KindSubscript                                             NodeKind = "Subscript"
	KindSuffix                                                NodeKind = "Suffix"
	KindSugaredArray                                          NodeKind = "SugaredArray"
	KindSugaredDictionary                                     NodeKind = "SugaredDictionary"
	KindSugaredOptional                                       NodeKind = "SugaredOptional"
	KindSugaredParen                                          NodeKind = "SugaredParen"
	KindThinFunctionType                                      NodeKind = "ThinFunctionType"
	KindThrowsAnnotation                                      NodeKind = "ThrowsAnnotation"
	KindTuple                                                 NodeKind = "Tuple"
	KindTupleElement                                          NodeKind = "TupleElement"
	KindTupleElementName                                      NodeKind = "TupleElementName"
	KindType                                                  NodeKind = "Type"
	KindTypeAlias                                             NodeKind = "TypeAlias"
	KindTypeList                                              NodeKind = "TypeList"
	KindTypeMangling                                          NodeKind = "TypeMangling"
	KindTypeMetadata                                          NodeKind = "TypeMetadata"
	KindTypeMetadataAccessFunction                            NodeKind = "TypeMetadataAccessFunction"
	KindTypeMetadataCompletionFunction                        NodeKind = "TypeMetadataCompletionFunction"
	KindTypeMetadataDemanglingCache                           NodeKind = "TypeMetadataDemanglingCache"
	KindTypeMetadataInstantiationCache                        NodeKind = "TypeMetadataInstantiationCache"
	KindTypeMetadataInstantiationFunction                     NodeKind = "TypeMetadataInstantiationFunction"
	KindTypeMetadataLazyCache                                 NodeKind = "TypeMetadataLazyCache"
	KindTypeMetadataSingletonInitializationCache              NodeKind = "TypeMetadataSingletonInitializationCache"
	KindTypeSymbolicReference                                 NodeKind = "TypeSymbolicReference"
	KindUncurriedFunctionType                                 NodeKind = "UncurriedFunctionType"
	KindUnknownIndex                                          NodeKind = "UnknownIndex"
	KindUnmanaged                                             NodeKind = "Unmanaged"
	KindUnowned                                               NodeKind = "Unowned"
	KindUnsafeAddressor                                       NodeKind = "UnsafeAddressor"
	KindUnsafeMutableAddressor                                NodeKind = "UnsafeMutableAddressor"
	KindVTableAttribute                                       NodeKind = "VTableAttribute"
	KindVTableThunk                                           NodeKind = "VTableThunk"
	KindValueWitness                                          NodeKind = "ValueWitness"
	KindValueWitnessTable                                     NodeKind = "ValueWitnessTable"
	KindVariable                                              NodeKind = "Variable"
	KindVariadicMarker                                        NodeKind = "VariadicMarker"
	KindWeak                                                  NodeKind = "Weak"
	KindWillSet                                               NodeKind = "WillSet"
)

var allKinds = []NodeKind{
	KindAccessorFunctionReference,
	KindAllocator,
	KindAnonymousContext,
	KindAnonymousDescriptor,
	KindAnyProtocolConformanceList,
	KindArgumentTuple,
	KindAssocTypePath,
	KindAssociatedConformanceDescriptor,
	KindAssociatedType,
	KindAssociatedTypeDescriptor,
	KindAssociatedTypeGenericParamRef,
	KindAssociatedTypeMetadataAccessor,
	KindAssociatedTypeRef,
	KindAssociatedTypeWitnessTableAccessor,
	KindAsyncAnnotation,
	KindAutoClosureType,
	KindBaseConformanceDescriptor,
	KindBaseWitnessTableAccessor,
	KindBoundGenericClass,
	KindBoundGenericEnum,
	KindBoundGenericFunction,
	KindBoundGenericOtherNominalType,
	KindBoundGenericProtocol,
	KindBoundGenericStructure,
	KindBoundGenericTypeAlias,
	KindBuiltinTypeName,
	KindCFunctionPointer,
	KindCanonicalPrespecializedGenericTypeCachingOnceToken,
	KindCanonicalSpecializedGenericMetaclass,
	KindCanonicalSpecializedGenericTypeMetadataAccessFunction,
	KindClangType,
	KindClass,
	KindClassMetadataBaseOffset,
	KindConcreteProtocolConformance,
	KindConstructor,
	KindCoroutineContinuationPrototype,
	KindCurryThunk,
	KindDeallocator,
	KindDeclContext,
	KindDefaultArgumentInitializer,
	KindDefaultAssociatedConformanceAccessor,
	KindDefaultAssociatedTypeMetadataAccessor,
	KindDependentAssociatedConformance,
	KindDependentAssociatedTypeRef,
	KindDependentGenericConformanceRequirement,
	KindDependentGenericLayoutRequirement,
	KindDependentGenericParamCount,
	KindDependentGenericParamType,
	KindDependentGenericSameTypeRequirement,
	KindDependentGenericSignature,
	KindDependentGenericType,
	KindDependentMemberType,
	KindDependentProtocolConformanceAssociated,
	KindDependentProtocolConformanceInherited,
	KindDependentProtocolConformanceRoot,
	KindDependentPseudogenericSignature,
	KindDestructor,
	KindDidSet,
	KindDifferentiableFunctionType,
	KindDirectMethodReferenceAttribute,
	KindDirectness,
	KindDispatchThunk,
	KindDynamicAttribute,
	KindDynamicSelf,
	KindDynamicallyReplaceableFunctionImpl,
	KindDynamicallyReplaceableFunctionKey,
	KindDynamicallyReplaceableFunctionVar,
	KindEmptyList,
	KindEnum,
	KindEnumCase,
	KindErrorType,
	KindEscapingAutoClosureType,
	KindEscapingDifferentiableFunctionType,
	KindEscapingLinearFunctionType,
	KindEscapingObjCBlock,
	KindExistentialMetatype,
	KindExplicitClosure,
	KindExtension,
	KindExtensionDescriptor,
	KindFieldOffset,
	KindFirstElementMarker,
	KindFullObjCResilientClassStub,
	KindFullTypeMetadata,
	KindFunction,
	KindFunctionSignatureSpecialization,
	KindFunctionSignatureSpecializationParam,
	KindFunctionSignatureSpecializationParamKind,
	KindFunctionSignatureSpecializationParamPayload,
	KindFunctionSignatureSpecializationReturn,
	KindFunctionType,
	KindGenericPartialSpecialization,
	KindGenericPartialSpecializationNotReAbstracted,
	KindGenericProtocolWitnessTable,
	KindGenericProtocolWitnessTableInstantiationFunction,
	KindGenericSpecialization,
	KindGenericSpecializationNotReAbstracted,
	KindGenericSpecializationParam,
	KindGenericSpecializationPrespecialized,
	KindGenericTypeMetadataPattern,
	KindGenericTypeParamDecl,
	KindGetter,
	KindGlobal,
	KindGlobalGetter,
	KindGlobalVariableOnceDeclList,
	KindGlobalVariableOnceFunction,
	KindGlobalVariableOnceToken,
	KindIVarDestroyer,
	KindIVarInitializer,
	KindIdentifier,
	KindImplConvention,
	KindImplDifferentiability,
	KindImplDifferentiable,
	KindImplErrorResult,
	KindImplEscaping,
	KindImplFunctionAttribute,
	KindImplFunctionConvention,
	KindImplFunctionConventionName,
	KindImplFunctionType,
	KindImplInvocationSubstitutions,
	KindImplLinear,
	KindImplParameter,
	KindImplPatternSubstitutions,
	KindImplResult,
	KindImplYield,
	KindImplicitClosure,
	KindInOut,
	KindIndex,
	KindInfixOperator,
	KindInitializer,
	KindInlinedGenericFunction,
	KindIsSerialized,
	KindKeyPathEqualsThunkHelper,
	KindKeyPathGetterThunkHelper,
	KindKeyPathHashThunkHelper,
	KindKeyPathSetterThunkHelper,
	KindLabelList,
	KindLazyProtocolWitnessTableAccessor,
	KindLazyProtocolWitnessTableCacheVariable,
	KindLinearFunctionType,
	KindLocalDeclName,
	KindMaterializeForSet,
	KindMergedFunction,
	KindMetaclass,
	KindMetadataInstantiationCache,
	KindMetatype,
	KindMetatypeRepresentation,
	KindMethodDescriptor,
	KindMethodLookupFunction,
	KindModifyAccessor,
	KindModule,
	KindModuleDescriptor,
	KindNativeOwningAddressor,
	KindNativeOwningMutableAddressor,
	KindNativePinningAddressor,
	KindNativePinningMutableAddressor,
	KindNoEscapeFunctionType,
	KindNominalTypeDescriptor,
	KindNonObjCAttribute,
	KindNoncanonicalSpecializedGenericTypeMetadata,
	KindNoncanonicalSpecializedGenericTypeMetadataCache,
	KindNumber,
	KindObjCAsyncCompletionHandlerImpl,
	KindObjCAttribute,
	KindObjCBlock,
	KindObjCMetadataUpdateFunction,
	KindObjCResilientClassStub,
	KindOpaqueReturnType,
	KindOpaqueReturnTypeOf,
	KindOpaqueType,
	KindOpaqueTypeDescriptor,
	KindOpaqueTypeDescriptorAccessor,
	KindOpaqueTypeDescriptorAccessorImpl,
	KindOpaqueTypeDescriptorAccessorKey,
	KindOpaqueTypeDescriptorAccessorVar,
	KindOpaqueTypeDescriptorSymbolicReference,
	KindOtherNominalType,
	KindOutlinedAssignWithCopy,
	KindOutlinedAssignWithTake,
	KindOutlinedBridgedMethod,
	KindOutlinedConsume,
	KindOutlinedCopy,
	KindOutlinedDestroy,
	KindOutlinedInitializeWithCopy,
	KindOutlinedInitializeWithTake,
	KindOutlinedRelease,
	KindOutlinedRetain,
	KindOutlinedVariable,
	KindOwned,
	KindOwningAddressor,
	KindOwningMutableAddressor,
	KindPartialApplyForwarder,
	KindPartialApplyObjCForwarder,
	KindPostfixOperator,
	KindPrefixOperator,
	KindPrivateDeclName,
	KindPropertyDescriptor,
	KindPropertyWrapperBackingInitializer,
	KindProtocol,
	KindProtocolConformance,
	KindProtocolConformanceDescriptor,
	KindProtocolConformanceRefInOtherModule,
	KindProtocolConformanceRefInProtocolModule,
	KindProtocolConformanceRefInTypeModule,
	KindProtocolDescriptor,
	KindProtocolList,
	KindProtocolListWithAnyObject,
	KindProtocolListWithClass,
	KindProtocolRequirementsBaseDescriptor,
	KindProtocolSelfConformanceDescriptor,
	KindProtocolSelfConformanceWitness,
	KindProtocolSelfConformanceWitnessTable,
	KindProtocolSymbolicReference,
	KindProtocolWitness,
	KindProtocolWitnessTable,
	KindProtocolWitnessTableAccessor,
	KindProtocolWitnessTablePattern,
	KindReabstractionThunk,
	KindReabstractionThunkHelper,
	KindReabstractionThunkHelperWithSelf,
	KindReadAccessor,
	KindReflectionMetadataAssocTypeDescriptor,
	KindReflectionMetadataBuiltinDescriptor,
	KindReflectionMetadataFieldDescriptor,
	KindReflectionMetadataSuperclassDescriptor,
	KindRelatedEntityDeclName,
	KindResilientProtocolWitnessTable,
	KindRetroactiveConformance,
	KindReturnType,
	KindSILBoxImmutableField,
	KindSILBoxLayout,
	KindSILBoxMutableField,
	KindSILBoxType,
	KindSILBoxTypeWithLayout,
	KindSetter,
	KindShared,
	KindSpecializationPassID,
	KindStatic,
	KindStructure,
	KindSubscript,
	KindSuffix,
	KindSugaredArray,
	KindSugaredDictionary,
	KindSugaredOptional,
	KindSugaredParen,
	KindThinFunctionType,
	KindThrowsAnnotation,
	KindTuple,
	KindTupleElement,
	KindTupleElementName,
	KindType,
	KindTypeAlias,
	KindTypeList,
	KindTypeMangling,
	KindTypeMetadata,
	KindTypeMetadataAccessFunction,
	KindTypeMetadataCompletionFunction,
	KindTypeMetadataDemanglingCache,
	KindTypeMetadataInstantiationCache,
	KindTypeMetadataInstantiationFunction,
	KindTypeMetadataLazyCache,
	KindTypeMetadataSingletonInitializationCache,
	KindTypeSymbolicReference,
	KindUncurriedFunctionType,
	KindUnknownIndex,
	KindUnmanaged,
	KindUnowned,
	KindUnsafeAddressor,
	KindUnsafeMutableAddressor,
	KindVTableAttribute,
	KindVTableThunk,
	KindValueWitness,
	KindValueWitnessTable,
	KindVariable,
	KindVariadicMarker,
	KindWeak,
	KindWillSet,
}

var knownKinds = func() map[NodeKind]bool {
	m := make(map[NodeKind]bool, len(allKinds))
	for _, k := range allKinds {
		m[k] = true
	}
	return m
}()

// AllKinds returns every node kind of the closed enumeration.
func AllKinds() []NodeKind {
	return append([]NodeKind(nil), allKinds...)
}

// Valid reports whether k belongs to the closed node-kind enumeration.
func (k NodeKind) Valid() bool {
	return knownKinds[k]
}

func (k NodeKind) String() string {
	return string(k)
}
