package swift

import "github.com/appsworld/go-swiftprint/internal/swiftdemangle"

// Node is one element of a demangled symbol tree.
type Node = swiftdemangle.Node

// NodeKind names the kind of a Node.
type NodeKind = swiftdemangle.NodeKind

// Options controls how a tree is printed.
type Options = swiftdemangle.Options

// ErrInvalidTree is returned by PrintErr for trees that cannot be printed.
var ErrInvalidTree = swiftdemangle.ErrInvalidTree

var (
	NewNode      = swiftdemangle.NewNode
	NewTextNode  = swiftdemangle.NewTextNode
	NewIndexNode = swiftdemangle.NewIndexNode
	ReadTree     = swiftdemangle.ReadTree
	DumpTree     = swiftdemangle.DumpTree
)

// DefaultOptions returns the fully qualified display style.
func DefaultOptions() Options {
	return swiftdemangle.DefaultOptions()
}

// SimplifiedOptions returns the short display style.
func SimplifiedOptions() Options {
	return swiftdemangle.SimplifiedOptions()
}

// Option adjusts the options of a single Print call.
type Option func(*Options)

// WithOptions replaces the option bundle. Hooks left nil in opts keep their
// current value. Later options still apply.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		cfg := opts
		if cfg.DemangleSymbol == nil {
			cfg.DemangleSymbol = o.DemangleSymbol
		}
		if cfg.GenericParameterName == nil {
			cfg.GenericParameterName = o.GenericParameterName
		}
		*o = cfg
	}
}

// WithSimplified selects SimplifiedOptions.
func WithSimplified() Option {
	return WithOptions(SimplifiedOptions())
}

// WithSugar prints Optional, Array and Dictionary in their shorthand forms.
func WithSugar() Option {
	return func(o *Options) {
		o.SynthesizeSugarOnTypes = true
	}
}

// WithoutModuleNames drops module qualification.
func WithoutModuleNames() Option {
	return func(o *Options) {
		o.DisplayModuleNames = false
	}
}

// WithHiddenModule omits the qualification of entities in module.
func WithHiddenModule(module string) Option {
	return func(o *Options) {
		o.HidingCurrentModule = module
	}
}

// WithDemangler sets the hook used to re-demangle symbol names found in
// specialization payloads.
func WithDemangler(fn func(string) string) Option {
	return func(o *Options) {
		o.DemangleSymbol = fn
	}
}

// WithGenericParameterNamer overrides how generic parameters are named.
func WithGenericParameterNamer(fn func(depth, index uint64) string) Option {
	return func(o *Options) {
		o.GenericParameterName = fn
	}
}

// WithStrict makes invariant violations panic.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

func buildOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	cfg.DemangleSymbol = DemangleSymbol
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Print renders node as text. It returns "" when the tree is malformed.
func Print(node *Node, opts ...Option) string {
	return swiftdemangle.NodeToString(node, buildOptions(opts...))
}

// PrintErr renders node and reports why a malformed tree produced no text.
func PrintErr(node *Node, opts ...Option) (string, error) {
	return swiftdemangle.PrintNode(node, buildOptions(opts...))
}
