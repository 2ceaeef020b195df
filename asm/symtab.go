package asm

// Label is one entry of the symbol table. name is the unique key
// within a translation unit group.
type Label struct {
	Name          string
	Address       int
	IsInstruction bool
	Entry         bool
	External      bool
	Declared      bool
	File          string
	Line          int
}

// SymbolTable maps a label name to its record, iterating in insertion
// order (the emitter walks it in declaration order). A name is never
// removed once inserted; Reference and Define mutate the existing
// record in place so earlier-held pointers stay valid.
type SymbolTable struct {
	order []string
	byName map[string]*Label
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byName: make(map[string]*Label)}
}

// Reset empties the table so it can be reused by a later invocation.
func (t *SymbolTable) Reset() {
	t.order = nil
	t.byName = make(map[string]*Label)
}

// Find looks up a label by name.
func (t *SymbolTable) Find(name string) (*Label, bool) {
	l, ok := t.byName[name]
	return l, ok
}

// Labels returns every label in insertion order.
func (t *SymbolTable) Labels() []*Label {
	out := make([]*Label, len(t.order))
	for i, name := range t.order {
		out[i] = t.byName[name]
	}
	return out
}

// stub returns the existing record for name, or inserts and returns a
// fresh undeclared one.
func (t *SymbolTable) stub(name, file string, line int) *Label {
	if l, ok := t.byName[name]; ok {
		return l
	}
	l := &Label{Name: name, File: file, Line: line}
	t.byName[name] = l
	t.order = append(t.order, name)
	return l
}

// Reference records that name was used as an operand, without
// requiring it to be defined yet. It returns the label record (new or
// existing) so the caller can attach a placeholder word to it.
func (t *SymbolTable) Reference(name, file string, line int) *Label {
	return t.stub(name, file, line)
}

// Define declares name at address, promoting a prior undeclared
// reference if one exists. It reports LabelAlreadyDeclared if the name
// was already declared, and LabelDeclaredAsExternal if the name is
// already marked external (invariant: external and declared are never
// both true).
func (t *SymbolTable) Define(name string, address int, isInstruction bool, file string, line int, diags *Diagnostics) {
	l := t.stub(name, file, line)
	switch {
	case l.External:
		diags.Add(LabelDeclaredAsExternal, file, line, name)
	case l.Declared:
		diags.Add(LabelAlreadyDeclared, file, line, name)
	default:
		l.Address = address
		l.IsInstruction = isInstruction
		l.Declared = true
		l.File = file
		l.Line = line
	}
}

// MarkEntry records that name was named in a .entry directive. It
// reports EntryLabelExternal if the name is already external.
func (t *SymbolTable) MarkEntry(name, file string, line int, diags *Diagnostics) {
	l := t.stub(name, file, line)
	switch {
	case l.External:
		diags.Add(EntryLabelExternal, file, line, name)
	case l.Entry:
		diags.Add(LabelAlreadyDeclared, file, line, name)
	default:
		l.Entry = true
	}
}

// MarkExternal records that name was named in a .extern directive. It
// reports LabelDeclaredAsExternal if the name is already declared, and
// EntryLabelExternal if the name is already an entry (invariant: entry
// and external are never both true).
func (t *SymbolTable) MarkExternal(name, file string, line int, diags *Diagnostics) {
	l := t.stub(name, file, line)
	switch {
	case l.Declared:
		diags.Add(LabelDeclaredAsExternal, file, line, name)
	case l.Entry:
		diags.Add(EntryLabelExternal, file, line, name)
	case l.External:
		diags.Add(LabelAlreadyDeclared, file, line, name)
	default:
		l.External = true
	}
}
