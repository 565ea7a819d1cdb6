// Command swiftprint renders a Swift demangler node-tree dump as text.
//
//	swift-demangle -tree-only '$s4main3fooyyF' | swiftprint -simplified
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/appsworld/go-swiftprint/pkg/swift"
)

type config struct {
	configPath  string
	simplified  bool
	sugar       bool
	noModules   bool
	hideModule  string
	strict      bool
	echoTree    bool
	interactive bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("swiftprint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cfg config
	fs.StringVar(&cfg.configPath, "config", "", "YAML options file")
	fs.BoolVar(&cfg.simplified, "simplified", false, "use the simplified display style")
	fs.BoolVar(&cfg.sugar, "sugar", false, "print Optional, Array and Dictionary as sugar")
	fs.BoolVar(&cfg.noModules, "no-modules", false, "omit module names")
	fs.StringVar(&cfg.hideModule, "hide-module", "", "omit qualification for this module")
	fs.BoolVar(&cfg.strict, "strict", false, "panic on trees with unknown node kinds")
	fs.BoolVar(&cfg.echoTree, "tree", false, "echo the parsed tree before the text")
	fs.BoolVar(&cfg.interactive, "i", false, "start an interactive session")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: swiftprint [flags] [tree-dump-file]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if cfg.configPath != "" && cfg.simplified {
		// -simplified replaces the whole bundle and would discard the file.
		fmt.Fprintln(stderr, `swiftprint: -simplified cannot be combined with -config; set "preset: simplified" in the file instead`)
		return 2
	}

	opts, err := cfg.options()
	if err != nil {
		fmt.Fprintf(stderr, "swiftprint: %v\n", err)
		return 1
	}

	if cfg.interactive {
		return repl(opts, cfg.echoTree, stdout, stderr)
	}

	in := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "swiftprint: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}
	if err := render(in, opts, cfg.echoTree, stdout); err != nil {
		fmt.Fprintf(stderr, "swiftprint: %v\n", err)
		return 1
	}
	return 0
}

// options builds the print options: the config file (or the default preset)
// first, then the flags on top.
func (c config) options() ([]swift.Option, error) {
	var opts []swift.Option
	if c.configPath != "" {
		base, err := swift.LoadOptions(c.configPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, swift.WithOptions(base))
	}
	if c.simplified {
		opts = append(opts, swift.WithSimplified())
	}
	if c.sugar {
		opts = append(opts, swift.WithSugar())
	}
	if c.noModules {
		opts = append(opts, swift.WithoutModuleNames())
	}
	if c.hideModule != "" {
		opts = append(opts, swift.WithHiddenModule(c.hideModule))
	}
	if c.strict {
		opts = append(opts, swift.WithStrict())
	}
	return opts, nil
}

func render(in io.Reader, opts []swift.Option, echoTree bool, out io.Writer) error {
	node, err := swift.ReadTree(in)
	if err != nil {
		return err
	}
	if echoTree {
		if err := swift.DumpTree(out, node); err != nil {
			return err
		}
	}
	text, err := swift.PrintErr(node, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, text)
	return err
}
