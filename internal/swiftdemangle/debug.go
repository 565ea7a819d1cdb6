package swiftdemangle

import (
	"fmt"
	"os"
)

// Set GO_SWIFTPRINT_DEBUG to trace soft failures and recursion limits on
// stderr.
var debugEnabled = os.Getenv("GO_SWIFTPRINT_DEBUG") != ""

func debugf(format string, args ...interface{}) {
	if debugEnabled {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// debugTree dumps the tree that failed to print.
func debugTree(root *Node, reason string) {
	if !debugEnabled {
		return
	}
	fmt.Fprintf(os.Stderr, "swiftdemangle: cannot print tree (%s):\n", reason)
	if err := DumpTree(os.Stderr, root); err != nil {
		fmt.Fprintf(os.Stderr, "swiftdemangle: dump failed: %v\n", err)
	}
}
