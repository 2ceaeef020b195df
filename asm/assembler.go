package asm

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Group is one assembler invocation: a set of source files sharing a
// single address space, symbol table, and diagnostics sink. IC and DC
// run continuously across every file added to the group, matching the
// way the original course's multi-file programs share one object file.
type Group struct {
	Diagnostics *Diagnostics
	Symbols     *SymbolTable
	Trace       bool

	ic, dc           int
	icFinal, dcFinal int
	instructions     []*WordNode
	data             []*WordNode
	externalUses     []externalUse
}

type externalUse struct {
	Name    string
	Address int
}

// NewGroup returns an empty group ready for AddFile.
func NewGroup() *Group {
	return &Group{Diagnostics: NewDiagnostics(), Symbols: NewSymbolTable()}
}

// Reset empties a group so it can be reused for another invocation in
// the same process.
func (g *Group) Reset() {
	g.Diagnostics.Reset()
	g.Symbols.Reset()
	g.ic, g.dc, g.icFinal, g.dcFinal = 0, 0, 0, 0
	g.instructions, g.data, g.externalUses = nil, nil, nil
}

// AddFile preprocesses and first-passes one source file into the
// group. Errors opening the file are reported through Diagnostics as
// FileNotFound rather than returned, matching the sink-based error
// model the rest of the pipeline uses.
func (g *Group) AddFile(path string) {
	f, err := os.Open(path)
	if err != nil {
		g.Diagnostics.Add(FileNotFound, path, 0, errors.Wrap(err, "open source file").Error())
		return
	}
	defer f.Close()

	pr := Preprocess(f, path, g.Diagnostics)
	if g.Trace {
		fmt.Fprintf(os.Stderr, "asm15: %s: expanded source:\n%s\n", path, pr.Source)
	}
	g.FirstPass(pr)
}

// Assemble runs a complete group through every remaining stage:
// closing out the first pass, resolving labels in the second pass,
// and - if nothing in Diagnostics - emitting the .ob/.ent/.ext
// artifacts for baseName. It reports whether the group assembled
// cleanly.
func (g *Group) Assemble(baseName string) bool {
	g.FinishFirstPass()
	g.SecondPass()
	if g.Diagnostics.Any() {
		return false
	}
	if err := g.Emit(baseName); err != nil {
		g.Diagnostics.Add(FileNotFound, baseName, 0, errors.Wrap(err, "write artifact").Error())
		return false
	}
	return true
}

// Report drains the group's diagnostics to w.
func (g *Group) Report(w io.Writer) {
	g.Diagnostics.Drain(w)
}
