package swiftdemangle

const (
	// StdlibModuleName is the name of the Swift standard library module.
	StdlibModuleName = "Swift"
	// ObjCModuleName is the module imported Objective-C and C declarations live in.
	ObjCModuleName = "__C"
	// LLDBExpressionsModulePrefix prefixes modules generated for debugger expressions.
	LLDBExpressionsModulePrefix = "__lldb_expr_"

	// DefaultMaxDepth bounds the recursion of a single print call.
	DefaultMaxDepth = 768
)

// Options controls how a node tree is rendered.
type Options struct {
	SynthesizeSugarOnTypes         bool `yaml:"synthesize-sugar-on-types"`
	QualifyEntities                bool `yaml:"qualify-entities"`
	DisplayExtensionContexts       bool `yaml:"display-extension-contexts"`
	DisplayUnmangledSuffix         bool `yaml:"display-unmangled-suffix"`
	DisplayModuleNames             bool `yaml:"display-module-names"`
	DisplayGenericSpecializations  bool `yaml:"display-generic-specializations"`
	DisplayProtocolConformances    bool `yaml:"display-protocol-conformances"`
	DisplayWhereClauses            bool `yaml:"display-where-clauses"`
	DisplayEntityTypes             bool `yaml:"display-entity-types"`
	DisplayLocalNameContexts       bool `yaml:"display-local-name-contexts"`
	DisplayStdlibModule            bool `yaml:"display-stdlib-module"`
	DisplayObjCModule              bool `yaml:"display-objc-module"`
	DisplayDebuggerGeneratedModule bool `yaml:"display-debugger-generated-module"`
	ShortenPartialApply            bool `yaml:"shorten-partial-apply"`
	ShortenThunk                   bool `yaml:"shorten-thunk"`
	ShortenValueWitness            bool `yaml:"shorten-value-witness"`
	ShowPrivateDiscriminators      bool `yaml:"show-private-discriminators"`
	ShowFunctionArgumentTypes      bool `yaml:"show-function-argument-types"`
	PrintForTypeName               bool `yaml:"print-for-type-name"`

	// HidingCurrentModule names a module whose qualification is omitted.
	HidingCurrentModule string `yaml:"hide-module"`

	// GenericParameterName names generic parameters. Nil selects
	// GenericParameterName.
	GenericParameterName func(depth, index uint64) string `yaml:"-"`

	// DemangleSymbol re-demangles mangled names embedded in constant
	// propagation payloads. It returns "" when the text cannot be demangled.
	// Nil leaves payloads as raw text.
	DemangleSymbol func(mangled string) string `yaml:"-"`

	// Strict makes invariant violations panic instead of producing an empty
	// rendering.
	Strict bool `yaml:"strict"`

	// MaxDepth limits the nesting depth; zero selects DefaultMaxDepth.
	MaxDepth int `yaml:"max-depth"`
}

// DefaultOptions returns the full, fully qualified display style.
func DefaultOptions() Options {
	return Options{
		QualifyEntities:                true,
		DisplayExtensionContexts:       true,
		DisplayUnmangledSuffix:         true,
		DisplayModuleNames:             true,
		DisplayGenericSpecializations:  true,
		DisplayProtocolConformances:    true,
		DisplayWhereClauses:            true,
		DisplayEntityTypes:             true,
		DisplayLocalNameContexts:       true,
		DisplayStdlibModule:            true,
		DisplayObjCModule:              true,
		DisplayDebuggerGeneratedModule: true,
		ShowPrivateDiscriminators:      true,
		ShowFunctionArgumentTypes:      true,
	}
}

// SimplifiedOptions returns the short style used by user interfaces.
func SimplifiedOptions() Options {
	return Options{
		SynthesizeSugarOnTypes:         true,
		QualifyEntities:                true,
		DisplayModuleNames:             true,
		DisplayLocalNameContexts:       true,
		DisplayStdlibModule:            true,
		DisplayObjCModule:              true,
		DisplayDebuggerGeneratedModule: true,
		ShortenPartialApply:            true,
		ShortenThunk:                   true,
		ShortenValueWitness:            true,
	}
}

func (o *Options) genericParameterName(depth, index uint64) string {
	if o.GenericParameterName != nil {
		return o.GenericParameterName(depth, index)
	}
	return GenericParameterName(depth, index)
}

func (o *Options) demangleSymbol(mangled string) string {
	if o.DemangleSymbol == nil {
		return ""
	}
	return o.DemangleSymbol(mangled)
}

func (o *Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}
