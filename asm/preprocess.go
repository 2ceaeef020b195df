package asm

import (
	"io"
	"strings"
)

// PreprocessResult is the expanded source text for one file, plus the
// names of the macros defined in it (the macro bodies themselves are
// not kept past this point - only the names survive, so first-pass
// label validation can still reject a label that collides with one).
type PreprocessResult struct {
	FileName   string
	Source     string
	MacroNames map[string]bool
}

// Preprocess runs a two-phase macro expansion over a single file: first
// capturing every macro definition, then re-reading the file to expand
// call sites. Malformed macro definitions are reported to diags but
// never abort the run; the preprocessor always produces a best-effort
// expansion so later passes can surface more errors in the same
// invocation.
func Preprocess(r io.Reader, fileName string, diags *Diagnostics) PreprocessResult {
	lines := readAllLines(r)
	macros := NewMacroTable()

	captureDefinitions(lines, fileName, diags, macros)
	source := expand(lines, macros)

	return PreprocessResult{
		FileName:   fileName,
		Source:     source,
		MacroNames: macros.Names(),
	}
}

// captureDefinitions is phase 1: find every "macr NAME ... endmacr"
// block and add it to the macro table.
func captureDefinitions(lines []string, fileName string, diags *Diagnostics, macros *MacroTable) {
	i := 0
	for i < len(lines) {
		trimmed := strings.TrimLeft(lines[i], " \t")
		tok, rest := splitFirstToken(trimmed)
		if tok != "macr" {
			i++
			continue
		}

		lineNo := i + 1
		name, _ := splitFirstToken(rest)
		switch {
		case name == "":
			diags.Add(MacroNameMissing, fileName, lineNo, "")
			i = skipToEndMacr(lines, i+1)
		case !isValidMacroName(name):
			diags.Add(MacroNameInvalid, fileName, lineNo, name)
			i = skipToEndMacr(lines, i+1)
		default:
			body, next := captureBody(lines, i+1)
			macros.Add(&Macro{Name: name, Body: body})
			i = next
		}
	}
}

// captureBody copies every line verbatim (leading whitespace intact)
// starting at `from` until a line whose trimmed prefix is "endmacr".
// It returns the body and the index just past the endmacr line (or
// len(lines) if none was found).
func captureBody(lines []string, from int) (body []string, next int) {
	j := from
	for j < len(lines) {
		tok, _ := splitFirstToken(strings.TrimLeft(lines[j], " \t"))
		if tok == "endmacr" {
			return body, j + 1
		}
		body = append(body, lines[j])
		j++
	}
	return body, j
}

func skipToEndMacr(lines []string, from int) int {
	_, next := captureBody(lines, from)
	return next
}

// expand is phase 2: re-read the file, suppressing macro definition
// blocks and substituting every call site with its captured body. A
// call site may carry a leading "LABEL:" the way an instruction line
// can; when it does, the label is reattached to the first line of the
// expanded body so it still names the macro's first instruction.
func expand(lines []string, macros *MacroTable) string {
	var out []string
	insideBody := false
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		tok, _ := splitFirstToken(trimmed)
		switch {
		case tok == "macr":
			insideBody = true
			continue
		case tok == "endmacr":
			insideBody = false
			continue
		case insideBody:
			continue
		}

		label, rest := splitLabel(trimmed)
		callTok, _ := splitFirstToken(rest)
		if m, ok := macros.Find(callTok); ok {
			switch {
			case label == "" || len(m.Body) == 0:
				out = append(out, m.Body...)
			default:
				out = append(out, label+":"+m.Body[0])
				out = append(out, m.Body[1:]...)
			}
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// isValidMacroName reports whether name may be used as a macro: it
// must start with a letter and must not collide with a reserved
// mnemonic, macr/endmacr, or a register name.
func isValidMacroName(name string) bool {
	if name == "" {
		return false
	}
	c := name[0]
	if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
		return false
	}
	return !isReservedWord(name)
}

// splitFirstToken returns the first whitespace-delimited token of s
// and everything after it (including the separating whitespace), using
// the scanning primitives in fstring.go.
func splitFirstToken(s string) (token, rest string) {
	_, afterWS := newFstring(s).consumeWhile(whitespace)
	tok, remain := afterWS.consumeWhile(func(c byte) bool { return !whitespace(c) })
	return tok.str, remain.str
}
