package asm

import "strings"

// WordNode is one instruction or data word produced by the first
// pass. Label is non-empty only for a placeholder word whose final
// contents are deferred to the second pass.
type WordNode struct {
	Address int
	Value   Word
	Label   string
	File    string
	Line    int
}

// FirstPass parses one preprocessed file, appending to the group's
// instruction/data streams and populating its symbol table. IC and DC
// are continuous across every file in the group, so a label defined in
// one file resolves to the right address when referenced from another.
func (g *Group) FirstPass(pr PreprocessResult) {
	lines := strings.Split(pr.Source, "\n")
	for i, raw := range lines {
		g.encodeLine(pr.FileName, i+1, raw, pr.MacroNames)
	}
}

func (g *Group) encodeLine(file string, lineNo int, raw string, macroNames map[string]bool) {
	line := stripComment(raw)
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}

	label, rest := splitLabel(trimmed)
	rest = strings.TrimSpace(rest)

	switch {
	case strings.HasPrefix(rest, ".data"):
		g.encodeData(file, lineNo, label, strings.TrimSpace(rest[len(".data"):]))
	case strings.HasPrefix(rest, ".string"):
		g.encodeString(file, lineNo, label, strings.TrimSpace(rest[len(".string"):]))
	case strings.HasPrefix(rest, ".entry"):
		g.encodeEntry(file, lineNo, strings.TrimSpace(rest[len(".entry"):]), macroNames)
	case strings.HasPrefix(rest, ".extern"):
		g.encodeExtern(file, lineNo, strings.TrimSpace(rest[len(".extern"):]), macroNames)
	default:
		g.encodeInstruction(file, lineNo, label, rest, macroNames)
	}
}

// splitLabel recognizes an optional "NAME:" prefix at the head of a
// trimmed line.
func splitLabel(s string) (label, rest string) {
	i := 0
	for i < len(s) && s[i] != ' ' && s[i] != '\t' && s[i] != ':' {
		i++
	}
	if i < len(s) && s[i] == ':' {
		return s[:i], s[i+1:]
	}
	return "", s
}

// stripComment drops everything from an unquoted ';' onward, using the
// quote-aware line scanner in fstring.go so a ';' inside a string
// literal isn't mistaken for the start of a comment.
func stripComment(s string) string {
	return newFstring(s).stripTrailingComment().str
}

func splitOperands(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

func (g *Group) encodeData(file string, lineNo int, label, text string) {
	if label != "" {
		g.Symbols.Define(label, g.dc, false, file, lineNo, g.Diagnostics)
	}
	if text == "" {
		g.Diagnostics.Add(InvalidData, file, lineNo, text)
		return
	}
	for _, p := range splitOperands(text) {
		v, ok := ValidateDataEntry(p)
		if !ok {
			g.Diagnostics.Add(InvalidData, file, lineNo, p)
			continue
		}
		g.data = append(g.data, &WordNode{Address: g.dc, Value: word15(v), File: file, Line: lineNo})
		g.dc++
	}
}

func (g *Group) encodeString(file string, lineNo int, label, text string) {
	if label != "" {
		g.Symbols.Define(label, g.dc, false, file, lineNo, g.Diagnostics)
	}
	content, ok := ValidateStringLiteral(text)
	if !ok {
		g.Diagnostics.Add(InvalidString, file, lineNo, text)
		return
	}
	for i := 0; i < len(content); i++ {
		g.data = append(g.data, &WordNode{Address: g.dc, Value: Word(content[i]), File: file, Line: lineNo})
		g.dc++
	}
	g.data = append(g.data, &WordNode{Address: g.dc, Value: 0, File: file, Line: lineNo})
	g.dc++
}

func (g *Group) encodeEntry(file string, lineNo int, text string, macroNames map[string]bool) {
	name := text
	if code, ok := labelNameError(name, macroNames); !ok {
		g.Diagnostics.Add(code, file, lineNo, name)
		return
	}
	g.Symbols.MarkEntry(name, file, lineNo, g.Diagnostics)
}

func (g *Group) encodeExtern(file string, lineNo int, text string, macroNames map[string]bool) {
	name := text
	if code, ok := labelNameError(name, macroNames); !ok {
		g.Diagnostics.Add(code, file, lineNo, name)
		return
	}
	g.Symbols.MarkExternal(name, file, lineNo, g.Diagnostics)
}

func (g *Group) encodeInstruction(file string, lineNo int, label, rest string, macroNames map[string]bool) {
	mnemonic, operandsText := splitFirstToken(rest)
	operandsText = strings.TrimSpace(operandsText)

	op, ok := lookupOpcode(mnemonic)
	if !ok {
		g.Diagnostics.Add(UnexpectedToken, file, lineNo, rest)
		return
	}

	if label != "" {
		g.Symbols.Define(label, g.ic, true, file, lineNo, g.Diagnostics)
	}

	operands := splitOperands(operandsText)
	shape := shapeFor(op)

	var srcText, dstText string
	switch op.Group {
	case GroupZeroOperand:
		if len(operands) != 0 {
			g.Diagnostics.Add(InvalidInstruction, file, lineNo, rest)
			return
		}
	case GroupOneOperand:
		if len(operands) != 1 {
			g.Diagnostics.Add(InvalidInstruction, file, lineNo, rest)
			return
		}
		dstText = operands[0]
	case GroupTwoOperand:
		if len(operands) != 2 {
			g.Diagnostics.Add(InvalidInstruction, file, lineNo, rest)
			return
		}
		srcText, dstText = operands[0], operands[1]
	}

	srcMode, dstMode := Undefined, Undefined
	ok = true

	if shape.srcAllowed {
		if srcText == "" {
			g.Diagnostics.Add(InvalidSourceOperand, file, lineNo, rest)
			ok = false
		} else {
			srcMode = ClassifyMode(srcText)
			if !g.validateOperandValue(file, lineNo, mnemonic, "src", srcText, srcMode, macroNames) {
				ok = false
			} else if !shape.modeAllowed(mnemonic, "src", srcMode) {
				g.Diagnostics.Add(InvalidAddressMode, file, lineNo, srcText)
				ok = false
			}
		}
	}

	if shape.dstAllowed {
		if dstText == "" {
			g.Diagnostics.Add(InvalidDestOperand, file, lineNo, rest)
			ok = false
		} else {
			dstMode = ClassifyMode(dstText)
			if !g.validateOperandValue(file, lineNo, mnemonic, "dst", dstText, dstMode, macroNames) {
				ok = false
			} else if !shape.modeAllowed(mnemonic, "dst", dstMode) {
				g.Diagnostics.Add(InvalidAddressMode, file, lineNo, dstText)
				ok = false
			}
		}
	}

	if !ok {
		return
	}

	g.instructions = append(g.instructions, &WordNode{
		Address: g.ic,
		Value:   encodeHeader(op.Code, srcMode, dstMode),
		File:    file, Line: lineNo,
	})
	g.ic++

	bothRegisters := srcMode != Undefined && dstMode != Undefined &&
		(srcMode == DirectRegister || srcMode == IndirectRegister) &&
		(dstMode == DirectRegister || dstMode == IndirectRegister)

	switch {
	case bothRegisters:
		g.instructions = append(g.instructions, &WordNode{
			Address: g.ic,
			Value:   encodeRegisterPair(registerNumber(srcText, srcMode), registerNumber(dstText, dstMode)),
			File:    file, Line: lineNo,
		})
		g.ic++
	default:
		if srcMode != Undefined {
			g.emitOperandWord(file, lineNo, srcText, srcMode)
		}
		if dstMode != Undefined {
			g.emitOperandWord(file, lineNo, dstText, dstMode)
		}
	}
}

// validateOperandValue checks a single operand's value once its mode
// is known: digits for Immediate, a usable name for Direct. Register
// modes need no further check - ClassifyMode already confirmed the
// digit is in range.
func (g *Group) validateOperandValue(file string, lineNo int, mnemonic, slot, text string, mode Mode, macroNames map[string]bool) bool {
	code := InvalidSourceOperand
	if slot == "dst" {
		code = InvalidDestOperand
	}
	switch mode {
	case Immediate:
		if _, ok := ValidateImmediate(text); !ok {
			g.Diagnostics.Add(code, file, lineNo, text)
			return false
		}
	case Direct:
		if nameCode, ok := labelNameError(text, macroNames); !ok {
			g.Diagnostics.Add(nameCode, file, lineNo, text)
			return false
		}
	}
	return true
}

func (g *Group) emitOperandWord(file string, lineNo int, text string, mode Mode) {
	switch mode {
	case Immediate:
		value, _ := ValidateImmediate(text)
		g.instructions = append(g.instructions, &WordNode{
			Address: g.ic, Value: encodeImmediate(value), File: file, Line: lineNo,
		})
	case Direct:
		g.Symbols.Reference(text, file, lineNo)
		g.instructions = append(g.instructions, &WordNode{
			Address: g.ic, Label: text, File: file, Line: lineNo,
		})
	case DirectRegister, IndirectRegister:
		g.instructions = append(g.instructions, &WordNode{
			Address: g.ic, Value: encodeRegister(registerNumber(text, mode)), File: file, Line: lineNo,
		})
	}
	g.ic++
}

// FinishFirstPass relocates every address now that the final
// instruction and data counts are known: every instruction-space
// address shifts by +100, and every data-space address shifts by
// +100+IC_final so data immediately follows code in the address space.
func (g *Group) FinishFirstPass() {
	g.icFinal = g.ic
	g.dcFinal = g.dc

	for _, n := range g.instructions {
		n.Address += 100
	}
	for _, n := range g.data {
		n.Address += 100 + g.icFinal
	}
	for _, l := range g.Symbols.Labels() {
		if !l.Declared {
			continue
		}
		if l.IsInstruction {
			l.Address += 100
		} else {
			l.Address += 100 + g.icFinal
		}
	}
}
