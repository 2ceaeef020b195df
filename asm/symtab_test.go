package asm

import "testing"

func TestSymbolTableDefineThenFind(t *testing.T) {
	tab := NewSymbolTable()
	diags := NewDiagnostics()

	tab.Define("LOOP", 105, true, "a.as", 4, diags)
	if diags.Any() {
		t.Fatalf("unexpected diagnostics: %v", diags.Entries())
	}

	l, ok := tab.Find("LOOP")
	if !ok || l.Address != 105 || !l.Declared || !l.IsInstruction {
		t.Fatalf("Find(LOOP) = %+v, %v", l, ok)
	}
}

func TestSymbolTableReferenceBeforeDefine(t *testing.T) {
	tab := NewSymbolTable()
	diags := NewDiagnostics()

	stub := tab.Reference("LATER", "a.as", 2)
	if stub.Declared {
		t.Fatalf("referenced-only label should not be declared yet")
	}

	tab.Define("LATER", 120, false, "a.as", 9, diags)
	if diags.Any() {
		t.Fatalf("unexpected diagnostics: %v", diags.Entries())
	}
	if !stub.Declared || stub.Address != 120 {
		t.Fatalf("Define should promote the existing stub in place, got %+v", stub)
	}
}

func TestSymbolTableDoubleDeclareConflict(t *testing.T) {
	tab := NewSymbolTable()
	diags := NewDiagnostics()

	tab.Define("X", 100, true, "a.as", 1, diags)
	tab.Define("X", 101, true, "a.as", 2, diags)

	entries := diags.Entries()
	if len(entries) != 1 || entries[0].Code != LabelAlreadyDeclared {
		t.Fatalf("entries = %+v, want one LabelAlreadyDeclared", entries)
	}
}

func TestSymbolTableExternThenDeclareConflict(t *testing.T) {
	tab := NewSymbolTable()
	diags := NewDiagnostics()

	tab.MarkExternal("X", "a.as", 1, diags)
	tab.Define("X", 100, true, "a.as", 2, diags)

	entries := diags.Entries()
	if len(entries) != 1 || entries[0].Code != LabelDeclaredAsExternal {
		t.Fatalf("entries = %+v, want one LabelDeclaredAsExternal", entries)
	}
}

func TestSymbolTableEntryThenExternConflict(t *testing.T) {
	tab := NewSymbolTable()
	diags := NewDiagnostics()

	tab.MarkEntry("X", "a.as", 1, diags)
	tab.MarkExternal("X", "a.as", 2, diags)

	entries := diags.Entries()
	if len(entries) != 1 || entries[0].Code != EntryLabelExternal {
		t.Fatalf("entries = %+v, want one EntryLabelExternal", entries)
	}
}

func TestSymbolTableLabelsInInsertionOrder(t *testing.T) {
	tab := NewSymbolTable()
	diags := NewDiagnostics()
	tab.Define("B", 1, true, "a.as", 1, diags)
	tab.Define("A", 2, true, "a.as", 2, diags)
	tab.Define("C", 3, true, "a.as", 3, diags)

	var order []string
	for _, l := range tab.Labels() {
		order = append(order, l.Name)
	}
	want := []string{"B", "A", "C"}
	for i, name := range want {
		if order[i] != name {
			t.Fatalf("Labels() order = %v, want %v", order, want)
		}
	}
}
