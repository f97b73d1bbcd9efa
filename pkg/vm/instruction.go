package vm

import "fmt"

type Opcode uint8

const (
	OpInput Opcode = iota
	OpPlus
	OpMinus
	OpMult
	OpDiv
	OpMod
	OpRegPut
	OpRegGet
	OpPrint
	OpPrintReg
	OpPrintChar
	OpPrintRegChar
	OpMark
	OpJump
	OpJumpIfZero
	OpJumpIfEqual
	OpJumpIfMore
	OpQuit
)

var opcodeNames = map[Opcode]string{
	OpInput:        "INPUT",
	OpPlus:         "PLUS",
	OpMinus:        "MINUS",
	OpMult:         "MULT",
	OpDiv:          "DIV",
	OpMod:          "MOD",
	OpRegPut:       "REG_PUT",
	OpRegGet:       "REG_GET",
	OpPrint:        "PRINT",
	OpPrintReg:     "PRINT_REG",
	OpPrintChar:    "PRINT_CHAR",
	OpPrintRegChar: "PRINT_REG_CHAR",
	OpMark:         "MARK",
	OpJump:         "JUMP",
	OpJumpIfZero:   "JUMP_IF_0",
	OpJumpIfEqual:  "JUMP_IF_EQUAL",
	OpJumpIfMore:   "JUMP_IF_MORE",
	OpQuit:         "QUIT",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("OP(%d)", uint8(op))
}

// Instruction is one compiled unit. Op selects the variant; the remaining
// fields carry whichever operands that variant uses and are zero otherwise.
// RegA/RegB hold register indices 0-25, Label a jump/mark target name,
// Value an INPUT literal, and Index a MARK's own position in the program.
type Instruction struct {
	Op    Opcode
	RegA  byte
	RegB  byte
	Label string
	Value int64
	Index int
}

func (in Instruction) String() string {
	switch in.Op {
	case OpInput:
		return fmt.Sprintf("%s %d", in.Op, in.Value)
	case OpRegPut, OpRegGet, OpPrintReg, OpPrintRegChar:
		return fmt.Sprintf("%s %c", in.Op, 'a'+in.RegA)
	case OpMark:
		return fmt.Sprintf("%s %s@%d", in.Op, in.Label, in.Index)
	case OpJump:
		return fmt.Sprintf("%s %s", in.Op, in.Label)
	case OpJumpIfZero:
		return fmt.Sprintf("%s %c %s", in.Op, 'a'+in.RegA, in.Label)
	case OpJumpIfEqual, OpJumpIfMore:
		return fmt.Sprintf("%s %c %c %s", in.Op, 'a'+in.RegA, 'a'+in.RegB, in.Label)
	default:
		return in.Op.String()
	}
}

// Program is the compiler's output: a dense instruction sequence whose
// positions are the jump-target domain, plus the labels recorded while
// scanning. The label table seeds the VM's own mutable copy.
type Program struct {
	Instructions []Instruction
	Labels       LabelTable
}
