// Package compiler lowers Quack source text into an executable program in a
// single left-to-right pass. Each whitespace-delimited token becomes at most
// one instruction; tokens that fit no form are consumed without emitting
// anything, so instruction indices can trail token positions. Compilation
// never fails.
package compiler

import (
	"strconv"
	"strings"

	"github.com/TheOneTwelfth/Quack-Interpreter/pkg/vm"
)

// Compile tokenizes source and lowers every token. Label definitions are
// recorded in the label table immediately (last write per name wins) and
// additionally emit a MARK instruction so the binding is re-applied at run
// time whenever control passes over the definition.
func Compile(source string) *vm.Program {
	tokens := strings.Fields(source)

	instructions := make([]vm.Instruction, 0, len(tokens))
	labels := vm.LabelTable{}

	emit := func(in vm.Instruction) {
		instructions = append(instructions, in)
	}

	for _, token := range tokens {
		// A token that parses entirely as a signed integer is a literal
		// push; this also claims tokens like "-5" before the arithmetic
		// dispatch below can see the leading minus.
		if value, err := strconv.ParseInt(token, 10, 64); err == nil {
			emit(vm.Instruction{Op: vm.OpInput, Value: value})
			continue
		}

		switch token[0] {
		case '+':
			emit(vm.Instruction{Op: vm.OpPlus})
		case '-':
			emit(vm.Instruction{Op: vm.OpMinus})
		case '*':
			emit(vm.Instruction{Op: vm.OpMult})
		case '/':
			emit(vm.Instruction{Op: vm.OpDiv})
		case '%':
			emit(vm.Instruction{Op: vm.OpMod})

		case '>':
			if reg, ok := parseRegister(token, 1); ok {
				emit(vm.Instruction{Op: vm.OpRegPut, RegA: reg})
			}
		case '<':
			if reg, ok := parseRegister(token, 1); ok {
				emit(vm.Instruction{Op: vm.OpRegGet, RegA: reg})
			}

		case 'P':
			if len(token) == 1 {
				emit(vm.Instruction{Op: vm.OpPrint})
			} else if reg, ok := parseRegister(token, 1); ok {
				emit(vm.Instruction{Op: vm.OpPrintReg, RegA: reg})
			}
		case 'C':
			if len(token) == 1 {
				emit(vm.Instruction{Op: vm.OpPrintChar})
			} else if reg, ok := parseRegister(token, 1); ok {
				emit(vm.Instruction{Op: vm.OpPrintRegChar, RegA: reg})
			}

		case ':':
			name := token[1:]
			index := len(instructions)
			labels.Bind(name, index)
			emit(vm.Instruction{Op: vm.OpMark, Label: name, Index: index})

		case 'J':
			emit(vm.Instruction{Op: vm.OpJump, Label: token[1:]})

		case 'Z':
			if reg, ok := parseRegister(token, 1); ok {
				emit(vm.Instruction{Op: vm.OpJumpIfZero, RegA: reg, Label: token[2:]})
			}

		case 'E':
			if regA, regB, ok := parseRegisterPair(token); ok {
				emit(vm.Instruction{Op: vm.OpJumpIfEqual, RegA: regA, RegB: regB, Label: token[3:]})
			}

		case 'G':
			if regA, regB, ok := parseRegisterPair(token); ok {
				emit(vm.Instruction{Op: vm.OpJumpIfMore, RegA: regA, RegB: regB, Label: token[3:]})
			}

		case 'Q':
			emit(vm.Instruction{Op: vm.OpQuit})
		}
		// Any other first character: the token is dropped and the
		// instruction sequence does not grow.
	}

	return &vm.Program{Instructions: instructions, Labels: labels}
}

// parseRegister reads the register letter at byte position pos. Tokens too
// short to carry their operands, or carrying a non a-z letter, make the
// whole token malformed.
func parseRegister(token string, pos int) (byte, bool) {
	if len(token) <= pos {
		return 0, false
	}
	c := token[pos]
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return c - 'a', true
}

func parseRegisterPair(token string) (byte, byte, bool) {
	regA, ok := parseRegister(token, 1)
	if !ok {
		return 0, 0, false
	}
	regB, ok := parseRegister(token, 2)
	if !ok {
		return 0, 0, false
	}
	return regA, regB, true
}
