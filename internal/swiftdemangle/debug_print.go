package swiftdemangle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DumpTree writes node in the demangler's tree dump format, one node per
// line and two spaces of indentation per level:
//
//	kind=Global
//	  kind=Function
//	    kind=Module, text="main"
//	    kind=Identifier, text="foo"
func DumpTree(w io.Writer, node *Node) error {
	bw := bufio.NewWriter(w)
	dumpNode(bw, node, 0)
	return bw.Flush()
}

func dumpNode(w *bufio.Writer, node *Node, depth int) {
	if node == nil {
		return
	}
	w.WriteString(strings.Repeat("  ", depth))
	w.WriteString("kind=")
	w.WriteString(string(node.Kind))
	if node.HasText() {
		w.WriteString(", text=")
		w.WriteString(Quote(node.Text))
	}
	if node.HasIndex() {
		w.WriteString(", index=")
		w.WriteString(strconv.FormatUint(node.Index, 10))
	}
	w.WriteByte('\n')
	for _, child := range node.Children {
		dumpNode(w, child, depth+1)
	}
}

// DumpSyntaxError reports a malformed line in a tree dump.
type DumpSyntaxError struct {
	Line int
	Msg  string
}

func (e *DumpSyntaxError) Error() string {
	return fmt.Sprintf("tree dump line %d: %s", e.Line, e.Msg)
}

// ReadTree parses a tree dump as written by DumpTree. Blank lines are
// ignored. The dump must contain exactly one root.
func ReadTree(r io.Reader) (*Node, error) {
	var (
		root  *Node
		stack []*Node
		line  int
	)

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		line++
		text := strings.TrimRight(s.Text(), " \t\r")
		if text == "" {
			continue
		}

		body := strings.TrimLeft(text, " ")
		indent := len(text) - len(body)
		if indent%2 != 0 {
			return nil, &DumpSyntaxError{Line: line, Msg: "odd indentation"}
		}
		depth := indent / 2
		if depth > len(stack) {
			return nil, &DumpSyntaxError{Line: line, Msg: "indentation skips a level"}
		}
		if depth == 0 && root != nil {
			return nil, &DumpSyntaxError{Line: line, Msg: "more than one root node"}
		}

		node, err := parseDumpLine(body)
		if err != nil {
			return nil, &DumpSyntaxError{Line: line, Msg: err.Error()}
		}

		stack = stack[:depth]
		if depth == 0 {
			root = node
		} else {
			parent := stack[depth-1]
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, node)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tree dump: %w", err)
	}
	if root == nil {
		return nil, fmt.Errorf("tree dump is empty")
	}
	return root, nil
}

func parseDumpLine(body string) (*Node, error) {
	if !strings.HasPrefix(body, "kind=") {
		return nil, fmt.Errorf("expected kind=, found %q", body)
	}
	rest := body[len("kind="):]
	end := strings.IndexByte(rest, ',')
	if end < 0 {
		end = len(rest)
	}
	kind := NodeKind(rest[:end])
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown node kind %q", kind)
	}
	rest = rest[end:]

	node := &Node{Kind: kind}
	for rest != "" {
		if !strings.HasPrefix(rest, ", ") {
			return nil, fmt.Errorf("expected \", \" before %q", rest)
		}
		rest = rest[2:]
		switch {
		case strings.HasPrefix(rest, "text="):
			if node.payload != payloadNone {
				return nil, fmt.Errorf("node has more than one payload")
			}
			text, n, err := unquote(rest[len("text="):])
			if err != nil {
				return nil, err
			}
			node.Text = text
			node.payload = payloadText
			rest = rest[len("text=")+n:]
		case strings.HasPrefix(rest, "index="):
			if node.payload != payloadNone {
				return nil, fmt.Errorf("node has more than one payload")
			}
			rest = rest[len("index="):]
			end := strings.IndexByte(rest, ',')
			if end < 0 {
				end = len(rest)
			}
			index, err := strconv.ParseUint(rest[:end], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad index: %w", err)
			}
			node.Index = index
			node.payload = payloadIndex
			rest = rest[end:]
		default:
			return nil, fmt.Errorf("unknown attribute in %q", rest)
		}
	}
	return node, nil
}

// unquote reverses Quote on the quoted string at the start of s. It returns
// the decoded text and the number of bytes consumed.
func unquote(s string) (string, int, error) {
	if s == "" || s[0] != '"' {
		return "", 0, fmt.Errorf("expected quoted text")
	}
	var sb strings.Builder
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			return sb.String(), i + 1, nil
		case '\\':
			i++
			if i >= len(s) {
				return "", 0, fmt.Errorf("unterminated escape")
			}
			switch s[i] {
			case '\\', '"':
				sb.WriteByte(s[i])
			case 't':
				sb.WriteByte('\t')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case '0':
				sb.WriteByte(0)
			case 'x':
				if i+2 >= len(s) {
					return "", 0, fmt.Errorf("short \\x escape")
				}
				b, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
				if err != nil {
					return "", 0, fmt.Errorf("bad \\x escape: %w", err)
				}
				sb.WriteByte(byte(b))
				i += 2
			default:
				return "", 0, fmt.Errorf("unknown escape \\%c", s[i])
			}
		default:
			sb.WriteByte(c)
		}
	}
	return "", 0, fmt.Errorf("unterminated text")
}
