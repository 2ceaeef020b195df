package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rvgomes/asm15/asm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		exitOnError(err)
	}
}

func newRootCmd() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:          "asm15 file1 [file2 ...]",
		Short:        "Assemble one or more 15-bit word machine source files into a single object group",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ok := run(args, trace, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if !ok {
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "print expanded source as it is assembled")
	return cmd
}

// run assembles every file in args as one translation unit group, as
// required by the CLI contract: all arguments given on one invocation
// share one symbol table, one diagnostics sink, and emit one artifact
// trio. It returns false if anything went wrong.
func run(files []string, trace bool, _, stderr io.Writer) bool {
	resolved := make([]string, len(files))
	for i, f := range files {
		resolved[i] = withSuffix(f)
	}

	g := asm.NewGroup()
	g.Trace = trace

	for _, f := range resolved {
		g.AddFile(f)
	}

	ok := g.Assemble(asm.BaseName(resolved))
	g.Report(stderr)
	return ok
}

// withSuffix appends ".as" to a source file argument that doesn't
// already carry an extension, so "prog" and "prog.as" both resolve to
// the same file on the command line.
func withSuffix(name string) string {
	if filepath.Ext(name) != "" {
		return name
	}
	return name + ".as"
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "asm15: %v\n", err)
	os.Exit(1)
}
