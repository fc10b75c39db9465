// Package decoder decodes single 65C02 instructions from memory.
package decoder

import (
	"errors"
	"fmt"

	"github.com/retroenv/c02disasm/internal/memory"
	"github.com/retroenv/c02disasm/internal/opcode"
)

// ErrIllegalOpcode is returned when an opcode byte is not mapped to an operation.
var ErrIllegalOpcode = errors.New("illegal opcode")

// IllegalOpcodeError contains the opcode byte and its address.
type IllegalOpcodeError struct {
	Opcode  byte
	Address uint16
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("%s $%02X at address $%04X", ErrIllegalOpcode, e.Opcode, e.Address)
}

func (e *IllegalOpcodeError) Unwrap() error {
	return ErrIllegalOpcode
}

// Memory provides read access to the memory that contains the instructions.
type Memory interface {
	// Byte reads the byte at the given address.
	Byte(address uint16) (byte, error)
	// Word reads the little endian word at the given address.
	Word(address uint16) (uint16, error)
}

// Instruction is a decoded instruction at an absolute address.
type Instruction struct {
	Address uint16
	Opcode  opcode.Opcode

	// Operand is the raw operand value, for relative addressing it is the
	// absolute address of the branch destination.
	Operand    uint16
	HasOperand bool
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.Opcode.Name
}

// Addressing returns the addressing mode of the instruction.
func (i Instruction) Addressing() opcode.AddressingMode {
	return i.Opcode.Addressing
}

// Size returns the size of the instruction in bytes.
func (i Instruction) Size() uint16 {
	return uint16(i.Opcode.Size)
}

// Next returns the address of the instruction that follows in memory. It is
// $10000 for an instruction that ends at $FFFF.
func (i Instruction) Next() int {
	return int(i.Address) + int(i.Size())
}

// Decode decodes the instruction at the given address.
func Decode(mem Memory, address uint16) (Instruction, error) {
	b, err := mem.Byte(address)
	if err != nil {
		return Instruction{}, fmt.Errorf("reading opcode: %w", err)
	}

	op := opcode.Opcodes[b]
	if !op.Valid {
		return Instruction{}, &IllegalOpcodeError{Opcode: b, Address: address}
	}

	ins := Instruction{
		Address: address,
		Opcode:  op,
	}
	if op.Size == 1 {
		return ins, nil
	}

	ins.Operand, err = readOperand(mem, address, op)
	if err != nil {
		return Instruction{}, fmt.Errorf("reading operand of '%s' at address $%04X: %w", op.Name, address, err)
	}
	ins.HasOperand = true
	return ins, nil
}

func readOperand(mem Memory, address uint16, op opcode.Opcode) (uint16, error) {
	operandAddress, err := memory.Address(int(address) + 1)
	if err != nil {
		return 0, err
	}

	if op.Addressing == opcode.RelativeAddressing {
		b, err := mem.Byte(operandAddress)
		if err != nil {
			return 0, err
		}
		return memory.Address(RelativeDestination(address, op.Size, b))
	}

	switch op.Size {
	case 2:
		b, err := mem.Byte(operandAddress)
		if err != nil {
			return 0, err
		}
		return uint16(b), nil

	case 3:
		return mem.Word(operandAddress)

	default:
		return 0, fmt.Errorf("unsupported opcode size %d", op.Size)
	}
}

// RelativeDestination returns the destination of a relative branch
// instruction of the given size at the given address. The displacement is
// signed and relative to the following instruction. The result is not
// wrapped and can be outside of the address space.
func RelativeDestination(address uint16, size uint8, displacement byte) int {
	offset := int(displacement)
	if offset >= 0x80 {
		offset -= 0x100
	}
	return int(address) + int(size) + offset
}
