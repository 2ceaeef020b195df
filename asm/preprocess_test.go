package asm

import (
	"strings"
	"testing"
)

func TestPreprocessExpandsMacro(t *testing.T) {
	src := `macr m1
mov #1, r1
clr r1
endmacr
START: m1
stop
`
	diags := NewDiagnostics()
	pr := Preprocess(strings.NewReader(src), "t.as", diags)
	if diags.Any() {
		t.Fatalf("unexpected diagnostics: %v", diags.Entries())
	}
	if !pr.MacroNames["m1"] {
		t.Fatalf("MacroNames missing m1: %v", pr.MacroNames)
	}

	if !strings.Contains(pr.Source, "START:mov #1, r1") {
		t.Fatalf("expected label reattached to the macro's first expanded line, got %q", pr.Source)
	}
	if !strings.Contains(pr.Source, "clr r1") {
		t.Fatalf("expected macro body expanded, got %q", pr.Source)
	}
	if strings.Contains(pr.Source, "macr m1") {
		t.Fatalf("definition block should not survive expansion: %q", pr.Source)
	}
}

func TestPreprocessMissingMacroName(t *testing.T) {
	src := "macr\nstop\nendmacr\n"
	diags := NewDiagnostics()
	Preprocess(strings.NewReader(src), "t.as", diags)

	entries := diags.Entries()
	if len(entries) != 1 || entries[0].Code != MacroNameMissing {
		t.Fatalf("entries = %+v, want one MacroNameMissing", entries)
	}
}

func TestPreprocessReservedMacroName(t *testing.T) {
	src := "macr mov\nstop\nendmacr\n"
	diags := NewDiagnostics()
	Preprocess(strings.NewReader(src), "t.as", diags)

	entries := diags.Entries()
	if len(entries) != 1 || entries[0].Code != MacroNameInvalid {
		t.Fatalf("entries = %+v, want one MacroNameInvalid", entries)
	}
}

func TestSplitFirstToken(t *testing.T) {
	tok, rest := splitFirstToken("  mov   #1, r1")
	if tok != "mov" || strings.TrimSpace(rest) != "#1, r1" {
		t.Fatalf("splitFirstToken = %q, %q", tok, rest)
	}
}
