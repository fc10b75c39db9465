package writer

import (
	"fmt"

	"github.com/retroenv/c02disasm/internal/decoder"
	"github.com/retroenv/c02disasm/internal/opcode"
)

type paramFormatterFunc func(w *Writer, ins decoder.Instruction) (string, error)

var paramFormatter = map[opcode.AddressingMode]paramFormatterFunc{
	opcode.ImpliedAddressing:           paramImplied,
	opcode.StackAddressing:             paramImplied,
	opcode.AccumulatorAddressing:       paramAccumulator,
	opcode.ImmediateAddressing:         paramFormat("#$%02X"),
	opcode.ZeroPageAddressing:          paramFormat("$%02X"),
	opcode.ZeroPageXAddressing:         paramZeroPageIndexed,
	opcode.ZeroPageIndexedAddressing:   paramFormat("($%02X),Y"),
	opcode.ZeroPageIndirectXAddressing: paramFormat("($%02X,X)"),
	opcode.ZeroPageIndirectAddressing:  paramFormat("($%02X)"),
	opcode.AbsoluteAddressing:          paramAbsolute,
	opcode.AbsoluteXAddressing:         paramFormat("$%04X,X"),
	opcode.AbsoluteYAddressing:         paramFormat("$%04X,Y"),
	opcode.AbsoluteIndirectAddressing:  paramFormat("($%04X)"),
	opcode.AbsoluteIndirectXAddressing: paramFormat("($%04X,X)"),
	opcode.RelativeAddressing:          paramRelative,
}

// instructionCode returns the instruction name and its formatted parameter.
func (w *Writer) instructionCode(ins decoder.Instruction) (string, error) {
	fun, ok := paramFormatter[ins.Addressing()]
	if !ok {
		return "", fmt.Errorf("unsupported addressing mode %d", ins.Addressing())
	}

	param, err := fun(w, ins)
	if err != nil {
		return "", err
	}
	if param == "" {
		return ins.Name(), nil
	}
	return fmt.Sprintf("%s %s", ins.Name(), param), nil
}

func paramFormat(format string) paramFormatterFunc {
	return func(_ *Writer, ins decoder.Instruction) (string, error) {
		return fmt.Sprintf(format, ins.Operand), nil
	}
}

// paramImplied outputs the signature byte of brk.
func paramImplied(_ *Writer, ins decoder.Instruction) (string, error) {
	if !ins.HasOperand {
		return "", nil
	}
	return fmt.Sprintf("#$%02X", ins.Operand), nil
}

func paramAccumulator(*Writer, decoder.Instruction) (string, error) {
	return "a", nil
}

// paramZeroPageIndexed outputs the Y register for ldx and stx, the opcode
// table does not have a separate zero page Y addressing mode.
func paramZeroPageIndexed(_ *Writer, ins decoder.Instruction) (string, error) {
	register := "X"
	if name := ins.Name(); name == "ldx" || name == "stx" {
		register = "Y"
	}
	return fmt.Sprintf("$%02X,%s", ins.Operand, register), nil
}

func paramAbsolute(w *Writer, ins decoder.Instruction) (string, error) {
	if ins.Opcode.Follow() {
		return w.destination(ins.Operand), nil
	}
	return fmt.Sprintf("$%04X", ins.Operand), nil
}

// paramRelative outputs the branch destination, bbr and bbs instructions
// also output the byte following the opcode as zero page address.
func paramRelative(w *Writer, ins decoder.Instruction) (string, error) {
	destination := w.destination(ins.Operand)
	if ins.Size() < 3 {
		return destination, nil
	}

	zeroPage, err := w.mem.Byte(ins.Address + 1)
	if err != nil {
		return "", fmt.Errorf("reading zero page parameter: %w", err)
	}
	return fmt.Sprintf("$%02X, %s", zeroPage, destination), nil
}

func (w *Writer) destination(address uint16) string {
	if label, ok := w.labels[address]; ok {
		return label
	}
	return fmt.Sprintf("$%04X", address)
}
