package asm

import "testing"

func TestMacroTableAddFindReset(t *testing.T) {
	tab := NewMacroTable()
	tab.Add(&Macro{Name: "m1", Body: []string{"mov #1, r1"}})
	tab.Add(&Macro{Name: "m2", Body: []string{"clr r2"}})

	m, ok := tab.Find("m1")
	if !ok || len(m.Body) != 1 || m.Body[0] != "mov #1, r1" {
		t.Fatalf("Find(m1) = %+v, %v", m, ok)
	}

	names := tab.Names()
	if len(names) != 2 || !names["m1"] || !names["m2"] {
		t.Fatalf("Names() = %v", names)
	}

	tab.Reset()
	if _, ok := tab.Find("m1"); ok {
		t.Fatalf("Find(m1) should fail after Reset")
	}
	if len(tab.Names()) != 0 {
		t.Fatalf("Names() should be empty after Reset")
	}
}

func TestMacroTableRedefinitionOverwrites(t *testing.T) {
	tab := NewMacroTable()
	tab.Add(&Macro{Name: "m", Body: []string{"a"}})
	tab.Add(&Macro{Name: "m", Body: []string{"b", "c"}})

	m, _ := tab.Find("m")
	if len(m.Body) != 2 || m.Body[0] != "b" {
		t.Fatalf("redefinition should overwrite body, got %+v", m)
	}
	if len(tab.Names()) != 1 {
		t.Fatalf("redefinition should not duplicate the name slot")
	}
}
