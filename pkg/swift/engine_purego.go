package swift

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoDemangler is returned by the pure-Go engine, which cannot parse
// mangled names.
var ErrNoDemangler = errors.New("pkg/swift: no demangler available")

type pureGoEngine struct{}

func newPureGoEngine() engine {
	return pureGoEngine{}
}

func (pureGoEngine) Demangle(input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("empty input")
	}
	return "", ErrNoDemangler
}

// looksLikeSwiftSymbol filters payload text that is plainly not a mangled
// Swift name, so the engine is not asked to demangle it.
func looksLikeSwiftSymbol(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return false
	}
	symbolPrefixes := []string{"$s", "$S", "_$s", "_$S", "$e", "_$e", "_T", "__T"}
	for _, prefix := range symbolPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	if strings.HasPrefix(trimmed, "So") && strings.HasSuffix(trimmed, "C") {
		return true
	}
	return false
}
