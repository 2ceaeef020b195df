package asm

import "testing"

func TestSecondPassResolvesLocalLabelAsRelocatable(t *testing.T) {
	g := assembleSource(t, "LOOP: inc r1\nmov r1, LOOP\n")
	if g.Diagnostics.Any() {
		t.Fatalf("unexpected diagnostics: %v", g.Diagnostics.Entries())
	}
	// instructions: [0]=inc header [1]=inc extra(r1) [2]=mov header
	// [3]=mov src extra(r1) [4]=placeholder->LOOP (mov destination)
	placeholder := g.instructions[len(g.instructions)-1]
	want := encodeDirect(100, ARERelocatable)
	if placeholder.Value != want {
		t.Fatalf("resolved LOOP word = %015b, want %015b", placeholder.Value, want)
	}
}

func TestSecondPassResolvesExternalLabel(t *testing.T) {
	g := assembleSource(t, ".extern EXT\nmov EXT, r2\n")
	if g.Diagnostics.Any() {
		t.Fatalf("unexpected diagnostics: %v", g.Diagnostics.Entries())
	}
	placeholder := g.instructions[1]
	if placeholder.Value != encodeDirect(0, AREExternal) {
		t.Fatalf("resolved EXT word = %015b, want external/zero", placeholder.Value)
	}
	if len(g.externalUses) != 1 || g.externalUses[0].Name != "EXT" {
		t.Fatalf("externalUses = %+v", g.externalUses)
	}
}

func TestSecondPassReportsUndeclaredLabel(t *testing.T) {
	g := assembleSource(t, "mov MISSING, r2\n")
	entries := g.Diagnostics.Entries()
	if len(entries) != 1 || entries[0].Code != LabelNotDeclared {
		t.Fatalf("entries = %+v, want one LabelNotDeclared", entries)
	}
}

func TestSecondPassReportsEntryNeverDeclared(t *testing.T) {
	g := assembleSource(t, ".entry GHOST\nstop\n")
	entries := g.Diagnostics.Entries()
	if len(entries) != 1 || entries[0].Code != LabelNotDeclared {
		t.Fatalf("entries = %+v, want one LabelNotDeclared", entries)
	}
}
