package asm

import (
	"fmt"
	"io"
)

// Code identifies one member of the closed error taxonomy. Messages are
// produced by substituting a detail string into a fixed template per
// code, never by formatting an ad hoc string at the call site.
type Code int

const (
	FileNotFound Code = iota
	MacroNameMissing
	MacroNameInvalid
	MemoryAllocationFailed
	UnexpectedToken
	InvalidLabelName
	LabelNameUsedAsMacro
	ReservedWord
	InvalidData
	InvalidString
	InvalidInstruction
	InvalidSourceOperand
	InvalidDestOperand
	InvalidAddressMode
	LabelAlreadyDeclared
	LabelDeclaredAsExternal
	EntryLabelExternal
	LabelNotDeclared
)

var templates = map[Code]string{
	FileNotFound:            "file not found: %s",
	MacroNameMissing:        "macro definition is missing a name",
	MacroNameInvalid:        "invalid macro name '%s'",
	MemoryAllocationFailed:  "memory allocation failed: %s",
	UnexpectedToken:         "unexpected token: %s",
	InvalidLabelName:        "invalid label name '%s'",
	LabelNameUsedAsMacro:    "label name '%s' collides with a macro",
	ReservedWord:            "'%s' is a reserved word",
	InvalidData:             "invalid .data value '%s'",
	InvalidString:           "invalid .string literal: %s",
	InvalidInstruction:      "invalid instruction: %s",
	InvalidSourceOperand:    "invalid source operand: %s",
	InvalidDestOperand:      "invalid destination operand: %s",
	InvalidAddressMode:      "addressing mode not allowed here: %s",
	LabelAlreadyDeclared:    "label '%s' already declared",
	LabelDeclaredAsExternal: "label '%s' is declared as external",
	EntryLabelExternal:      "label '%s' is both entry and external",
	LabelNotDeclared:        "label '%s' was never declared",
}

// Entry is one accumulated diagnostic, tied to its exact source
// provenance.
type Entry struct {
	Code   Code
	File   string
	Line   int
	Detail string
}

// Message formats the entry's fixed template with its detail.
func (e Entry) Message() string {
	tmpl, ok := templates[e.Code]
	if !ok {
		return e.Detail
	}
	return fmt.Sprintf(tmpl, e.Detail)
}

// Diagnostics accumulates errors across the whole pipeline. Adding an
// entry never unwinds control flow; callers keep processing so that a
// single run surfaces as many problems as possible.
type Diagnostics struct {
	entries []Entry
}

// NewDiagnostics returns an empty sink.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// Add records one diagnostic.
func (d *Diagnostics) Add(code Code, file string, line int, detail string) {
	d.entries = append(d.entries, Entry{Code: code, File: file, Line: line, Detail: detail})
}

// Any reports whether any diagnostic has been recorded.
func (d *Diagnostics) Any() bool {
	return len(d.entries) > 0
}

// Entries returns the accumulated diagnostics in the order they were
// added.
func (d *Diagnostics) Entries() []Entry {
	return d.entries
}

// Reset clears the sink so it can be reused by a subsequent invocation
// in the same process.
func (d *Diagnostics) Reset() {
	d.entries = nil
}

// Drain writes every diagnostic to w in the fixed wire format and then
// clears the sink.
func (d *Diagnostics) Drain(w io.Writer) {
	for _, e := range d.entries {
		fmt.Fprintf(w, "Error in file %s at line %d: %s\n", e.File, e.Line, e.Message())
	}
	d.Reset()
}
