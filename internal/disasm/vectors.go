package disasm

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Addresses of the interrupt vectors, every vector holds the address of its handler.
const (
	IrqAddress   = 0xfffa
	ResetAddress = 0xfffc
	NmiAddress   = 0xfffe

	// VectorStartAddress is the start of the vector table, no code can start
	// inside of it.
	VectorStartAddress = IrqAddress
)

// Vector names as used for handler labels.
const (
	IrqName   = "IRQ"
	ResetName = "Reset"
	NmiName   = "NMI"
)

// Vector is an interrupt vector and the handler address that it contains.
type Vector struct {
	Name    string
	Address uint16 // address of the vector itself
	Target  uint16 // handler address
	Skipped bool   // handler points into the vector table
}

var vectorTable = []Vector{
	{Name: IrqName, Address: IrqAddress},
	{Name: ResetName, Address: ResetAddress},
	{Name: NmiName, Address: NmiAddress},
}

// readVectors reads the 3 handler addresses. A handler that points into the
// vector table can not be code and is marked as skipped.
func (dis *Disasm) readVectors() ([]Vector, error) {
	vectors := make([]Vector, 0, len(vectorTable))

	for _, vec := range vectorTable {
		target, err := dis.mem.Word(vec.Address)
		if err != nil {
			return nil, fmt.Errorf("reading %s vector: %w", vec.Name, err)
		}
		vec.Target = target

		if target >= VectorStartAddress {
			vec.Skipped = true
			dis.logger.Debug("Skipping handler inside of vector table",
				log.String("vector", vec.Name),
				log.String("address", fmt.Sprintf("$%04X", target)))
		}

		vectors = append(vectors, vec)
	}

	return vectors, nil
}
