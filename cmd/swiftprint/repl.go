package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/appsworld/go-swiftprint/pkg/swift"
	"github.com/peterh/liner"
)

const (
	historyFile = ".swiftprint_history"
	promptMain  = "tree> "
	promptCont  = "....> "
)

// repl reads tree dumps interactively. A dump ends at the first empty line.
func repl(opts []swift.Option, echoTree bool, stdout, stderr io.Writer) int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Fprintln(stdout, "Paste a tree dump and finish it with an empty line. Type :quit to exit.")
	for {
		dump, ok := readDump(ln)
		if !ok {
			fmt.Fprintln(stdout)
			return 0
		}
		trimmed := strings.TrimSpace(dump)
		switch {
		case trimmed == "":
			continue
		case trimmed == ":quit":
			return 0
		case strings.HasPrefix(trimmed, ":"):
			fmt.Fprintln(stdout, "unknown command. Type :quit to exit.")
			continue
		}
		if err := render(strings.NewReader(dump), opts, echoTree, stdout); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
	}
}

// readDump collects lines up to an empty line. Commands are single lines.
func readDump(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			if b.Len() > 0 {
				return b.String(), true
			}
			return "", false
		}
		if err != nil {
			return "", false
		}
		if strings.TrimSpace(line) == "" {
			return b.String(), true
		}
		ln.AppendHistory(line)
		b.WriteString(line)
		b.WriteByte('\n')
		if b.Len() == len(line)+1 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			return b.String(), true
		}
	}
}
