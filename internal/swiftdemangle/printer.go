package swiftdemangle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTree is returned when a node tree does not have the shape the
// printer expects and no rendering could be produced.
var ErrInvalidTree = errors.New("swiftdemangle: malformed node tree")

// InvariantError is the panic value used when a node outside the closed
// kind enumeration reaches the printer.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("swiftdemangle: fatal: %s", e.Msg)
}

// nodePrinter holds the transient state of one top-level print call.
type nodePrinter struct {
	buf  printBuffer
	opts Options

	specializationPrefixPrinted bool
	valid                       bool
	reason                      string
	depth                       int
}

func newNodePrinter(opts Options) *nodePrinter {
	return &nodePrinter{opts: opts}
}

// printRoot renders root from a fresh state.
func (p *nodePrinter) printRoot(root *Node) (out string, err error) {
	p.buf.Reset()
	p.specializationPrefixPrinted = false
	p.valid = true
	p.reason = ""
	p.depth = 0

	if root == nil {
		return "", nil
	}
	if !p.opts.Strict {
		defer func() {
			if r := recover(); r != nil {
				ie, ok := r.(*InvariantError)
				if !ok {
					panic(r)
				}
				debugf("swiftdemangle: recovered: %v\n", ie)
				out, err = "", fmt.Errorf("%w: %s", ErrInvalidTree, ie.Msg)
			}
		}()
	}

	p.print(root, false)
	if !p.valid {
		debugTree(root, p.reason)
		return "", fmt.Errorf("%w: %s", ErrInvalidTree, p.reason)
	}
	return p.buf.String(), nil
}

// setInvalid marks the rendering as failed. Only the first reason is kept.
func (p *nodePrinter) setInvalid(reason string) {
	if p.valid {
		debugf("swiftdemangle: invalid tree: %s\n", reason)
		p.reason = reason
	}
	p.valid = false
}

func (p *nodePrinter) fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	panic(&InvariantError{Msg: msg})
}

// print renders n. When asPrefixContext is set the caller wants n as the
// "Context." prefix of another entity; a returned node is a context that
// still has to be printed in postfix form.
func (p *nodePrinter) print(n *Node, asPrefixContext bool) *Node {
	if !p.valid {
		return nil
	}
	if n == nil {
		p.setInvalid("missing child node")
		return nil
	}
	if p.depth >= p.opts.maxDepth() {
		debugf("swiftdemangle: depth limit %d reached at %s\n", p.opts.maxDepth(), n.Kind)
		p.setInvalid("node tree nested too deeply")
		return nil
	}
	p.depth++
	defer func() { p.depth-- }()
	return p.printNode(n, asPrefixContext)
}

func (p *nodePrinter) printChildren(n *Node, sep string) {
	if n == nil {
		return
	}
	for i, c := range n.Children {
		if i > 0 && sep != "" {
			p.buf.WriteString(sep)
		}
		p.print(c, false)
	}
}

func (p *nodePrinter) printWithParens(n *Node) {
	needsParens := !p.isSimpleType(n)
	if needsParens {
		p.buf.writeByte('(')
	}
	p.print(n, false)
	if needsParens {
		p.buf.writeByte(')')
	}
}

func (p *nodePrinter) printOptionalIndex(n *Node) {
	if n.HasIndex() {
		p.buf.writeByte('#')
		p.buf.WriteUint(n.Index)
		p.buf.writeByte(' ')
	}
}

// printContext reports whether a context node should be printed at all.
func (p *nodePrinter) printContext(ctx *Node) bool {
	if !p.opts.QualifyEntities {
		return false
	}
	if ctx.Is(KindModule) {
		switch {
		case ctx.Text == StdlibModuleName:
			return p.opts.DisplayStdlibModule
		case ctx.Text == ObjCModuleName:
			return p.opts.DisplayObjCModule
		case ctx.Text == p.opts.HidingCurrentModule:
			return false
		case strings.HasPrefix(ctx.Text, LLDBExpressionsModulePrefix):
			return p.opts.DisplayDebuggerGeneratedModule
		}
	}
	return true
}

// NodeToString renders root with the given options. It returns "" when the
// tree is malformed.
func NodeToString(root *Node, opts Options) string {
	out, _ := PrintNode(root, opts)
	return out
}

// PrintNode renders root and reports why a malformed tree could not be
// rendered.
func PrintNode(root *Node, opts Options) (string, error) {
	return newNodePrinter(opts).printRoot(root)
}
