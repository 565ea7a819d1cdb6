package swift

import (
	"log"
	"os"
	"strings"
)

const (
	engineEnvVar     = "GO_SWIFTPRINT_ENGINE"
	debugEnvVar      = "GO_SWIFTPRINT_DEBUG"
	engineModePureGo = "purego"
	engineModeDarwin = "darwin-cgo"
)

var (
	forceEngine   = strings.ToLower(os.Getenv(engineEnvVar))
	defaultEngine engine
	engineMode    string
)

func init() {
	defaultEngine, engineMode = newEngine()
	if debug := os.Getenv(debugEnvVar); debug != "" {
		log.Printf("pkg/swift: using %s demangle engine", engineMode)
	}
}

// engine turns a mangled symbol back into text. It is only consulted for
// mangled names embedded in specialization payloads.
type engine interface {
	Demangle(string) (string, error)
}

// EngineMode reports which demangle engine (pure-Go or darwin-cgo) is active.
func EngineMode() string {
	return engineMode
}
