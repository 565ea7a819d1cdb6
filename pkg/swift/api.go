package swift

import (
	"log"
	"os"
)

var logDemangle = os.Getenv(debugEnvVar) != ""

// Demangle returns the fully formatted text of a mangled Swift symbol using
// the active engine.
func Demangle(input string) (string, error) {
	return defaultEngine.Demangle(input)
}

// DemangleSymbol adapts Demangle to the printer's re-demangle hook: it
// returns "" for anything that cannot be demangled so the printer falls back
// to the raw text.
func DemangleSymbol(symbol string) string {
	if !looksLikeSwiftSymbol(symbol) {
		return ""
	}
	out, err := Demangle(symbol)
	if err != nil {
		if logDemangle {
			log.Printf("pkg/swift: cannot demangle %q: %v", symbol, err)
		}
		return ""
	}
	return out
}
