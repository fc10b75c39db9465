// Package opcode contains the 65C02 opcode table.
package opcode

// Instruction names that change the control flow.
const (
	Jmp = "jmp"
	Jsr = "jsr"
	Rti = "rti"
	Rts = "rts"
)

// BranchingInstructions contains all instructions whose destination is
// followed. bpl is not part of it, its destination is only disassembled if
// another path reaches it.
var BranchingInstructions = map[string]struct{}{
	Jmp:    {},
	Jsr:    {},
	"bmi":  {},
	"bvc":  {},
	"bvs":  {},
	"bra":  {},
	"bcc":  {},
	"bcs":  {},
	"bne":  {},
	"beq":  {},
	"bbr0": {}, "bbr1": {}, "bbr2": {}, "bbr3": {},
	"bbr4": {}, "bbr5": {}, "bbr6": {}, "bbr7": {},
	"bbs0": {}, "bbs1": {}, "bbs2": {}, "bbs3": {},
	"bbs4": {}, "bbs5": {}, "bbs6": {}, "bbs7": {},
}

// BreakingInstructions contains all instructions that never continue
// execution at the following address.
var BreakingInstructions = map[string]struct{}{
	Jmp: {},
	Rti: {},
	Rts: {},
}

// Opcode describes the operation that an opcode byte selects.
type Opcode struct {
	Name       string
	Addressing AddressingMode
	Size       uint8 // opcode byte plus operand bytes

	Branching bool // operand names another address that can be executed
	Breaking  bool // execution never falls through to the next instruction
	Valid     bool // false for opcode bytes that are not mapped to an operation
}

// Dynamic returns whether the opcode transfers control to a destination that
// is read from memory at runtime.
func (o Opcode) Dynamic() bool {
	return o.Addressing.IsDynamic()
}

// Follow returns whether the operand of the opcode is a statically known
// destination of the control flow.
func (o Opcode) Follow() bool {
	return o.Branching && !o.Dynamic()
}

func op(name string, size uint8, addressing AddressingMode) Opcode {
	_, branching := BranchingInstructions[name]
	_, breaking := BreakingInstructions[name]

	return Opcode{
		Name:       name,
		Addressing: addressing,
		Size:       size,
		Branching:  branching,
		Breaking:   breaking,
		Valid:      true,
	}
}

// Count returns the number of mapped opcodes.
func Count() int {
	count := 0
	for _, o := range Opcodes {
		if o.Valid {
			count++
		}
	}
	return count
}
