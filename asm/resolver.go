package asm

// SecondPass walks every placeholder word left by the first pass and
// backfills it now that every file in the group has been read and
// every label address is final. A local label always resolves to its
// own address with ARE=Relocatable, even for a label defined in the
// same file as its use - relocation still has to happen if the object
// is ever linked against other modules, so there is no Absolute case
// here. An external label resolves to address 0 with ARE=External, and
// its use site is recorded for the .ext artifact.
func (g *Group) SecondPass() {
	for _, n := range g.instructions {
		if n.Label == "" {
			continue
		}
		l, ok := g.Symbols.Find(n.Label)
		switch {
		case ok && l.External:
			n.Value = encodeDirect(0, AREExternal)
			g.externalUses = append(g.externalUses, externalUse{Name: n.Label, Address: n.Address})
		case ok && l.Declared:
			n.Value = encodeDirect(l.Address, ARERelocatable)
		default:
			g.Diagnostics.Add(LabelNotDeclared, n.File, n.Line, n.Label)
		}
	}

	for _, l := range g.Symbols.Labels() {
		if l.Entry && !l.Declared {
			g.Diagnostics.Add(LabelNotDeclared, l.File, l.Line, l.Name)
		}
	}
}
