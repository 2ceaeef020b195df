package asm

// ClassifyMode guesses an operand's addressing mode from its leading
// characters. A register digit of 0-7 is accepted, covering the whole
// register file rather than leaving r0 to fall through to Direct.
func ClassifyMode(operand string) Mode {
	switch {
	case operand == "":
		return Undefined
	case operand[0] == '#':
		return Immediate
	case len(operand) == 3 && operand[0] == '*' && operand[1] == 'r' && isRegisterDigit(operand[2]):
		return IndirectRegister
	case len(operand) == 2 && operand[0] == 'r' && isRegisterDigit(operand[1]):
		return DirectRegister
	default:
		return Direct
	}
}

func isRegisterDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

// registerNumber extracts the register digit from an operand already
// classified as DirectRegister or IndirectRegister.
func registerNumber(operand string, mode Mode) int {
	switch mode {
	case IndirectRegister:
		return int(operand[2] - '0')
	case DirectRegister:
		return int(operand[1] - '0')
	default:
		return 0
	}
}

// parseSignedDecimal validates an optional leading '+'/'-' followed by
// one or more decimal digits, used by both immediate operands and
// .data list entries.
func parseSignedDecimal(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	neg := false
	i := 0
	switch s[0] {
	case '+':
		i = 1
	case '-':
		neg = true
		i = 1
	}
	if i >= len(s) {
		return 0, false
	}
	value := 0
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		value = value*10 + int(s[i]-'0')
	}
	if neg {
		value = -value
	}
	return value, true
}

// ValidateImmediate validates the text following '#': an optional sign
// and decimal digits.
func ValidateImmediate(operand string) (int, bool) {
	if len(operand) < 2 || operand[0] != '#' {
		return 0, false
	}
	return parseSignedDecimal(operand[1:])
}

// ValidateDataEntry validates one comma-separated value of a .data
// directive.
func ValidateDataEntry(s string) (int, bool) {
	return parseSignedDecimal(s)
}

// ValidateStringLiteral validates a .string operand: it must be
// enclosed in double quotes, and every interior byte must be printable
// ASCII (32..126). It returns the interior content.
func ValidateStringLiteral(s string) (string, bool) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", false
	}
	content := s[1 : len(s)-1]
	for i := 0; i < len(content); i++ {
		if content[i] < 32 || content[i] > 126 {
			return "", false
		}
	}
	return content, true
}

// labelNameError reports why name is unusable as a label, or zero/ok
// if it is fine.
func labelNameError(name string, macroNames map[string]bool) (Code, bool) {
	if name == "" || !isLetter(name[0]) {
		return InvalidLabelName, false
	}
	if isReservedWord(name) {
		return ReservedWord, false
	}
	if macroNames[name] {
		return LabelNameUsedAsMacro, false
	}
	return 0, true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// instructionShape describes which operand slots an opcode group
// permits and which addressing modes are legal in each.
type instructionShape struct {
	srcAllowed bool
	dstAllowed bool
	// modeAllowed reports whether mode is legal for the given slot
	// ("src" or "dst") of this specific mnemonic.
	modeAllowed func(mnemonic, slot string, mode Mode) bool
}

func shapeFor(op Opcode) instructionShape {
	switch op.Group {
	case GroupTwoOperand:
		return instructionShape{
			srcAllowed: true,
			dstAllowed: true,
			modeAllowed: func(mnemonic, slot string, mode Mode) bool {
				if slot == "dst" {
					if mode == Immediate && mnemonic != "cmp" {
						return false
					}
					if mnemonic == "lea" && mode == Immediate {
						return false
					}
				}
				if mnemonic == "lea" && slot == "src" && mode != Direct {
					return false
				}
				return true
			},
		}
	case GroupOneOperand:
		return instructionShape{
			srcAllowed: false,
			dstAllowed: true,
			modeAllowed: func(mnemonic, slot string, mode Mode) bool {
				switch mnemonic {
				case "jmp", "bne", "jsr":
					return mode == IndirectRegister || mode == DirectRegister
				case "clr", "not", "inc", "dec", "red":
					return mode != Immediate
				case "prn":
					return true
				default:
					return true
				}
			},
		}
	default: // GroupZeroOperand
		return instructionShape{srcAllowed: false, dstAllowed: false, modeAllowed: nil}
	}
}
