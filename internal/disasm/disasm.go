// Package disasm implements a 65C02 disassembler that follows the execution
// flow from the interrupt vectors.
package disasm

import (
	"errors"
	"fmt"

	"github.com/retroenv/c02disasm/internal/decoder"
	"github.com/retroenv/c02disasm/internal/memory"
	"github.com/retroenv/c02disasm/internal/options"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrInvariantViolation is returned when a decoded instruction contradicts
// the opcode table, for example a branch without a destination operand.
var ErrInvariantViolation = errors.New("invariant violation")

// Disassembly maps the address of every reachable instruction to the
// decoded instruction.
type Disassembly map[uint16]decoder.Instruction

// Contains returns whether an instruction starts at the given address.
func (d Disassembly) Contains(address uint16) bool {
	_, ok := d[address]
	return ok
}

// Addresses returns the addresses of all instructions in ascending order.
func (d Disassembly) Addresses() []uint16 {
	addresses := maps.Keys(d)
	slices.Sort(addresses)
	return addresses
}

// Disasm implements a disassembler for a single binary image.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler
	mem     *memory.View
	decode  func(mem decoder.Memory, address uint16) (decoder.Instruction, error)

	disassembly Disassembly
	vectors     []Vector
	pathErrors  []error
}

// New creates a new disassembler for the binary that is loaded at the base address.
func New(logger *log.Logger, binary []byte, base uint16, opts options.Disassembler) (*Disasm, error) {
	mem, err := memory.New(binary, base)
	if err != nil {
		return nil, fmt.Errorf("creating memory view: %w", err)
	}
	if logger == nil {
		cfg := log.DefaultConfig()
		cfg.Level = log.ErrorLevel
		logger = log.NewWithConfig(cfg)
	}

	return &Disasm{
		logger:  logger,
		options: opts,
		mem:     mem,
		decode:  decoder.Decode,
	}, nil
}

// Disassemble returns all instructions of the binary loaded at the base
// address that are reachable from the interrupt vectors. Any decoding error
// aborts the disassembly.
func Disassemble(binary []byte, base uint16) (Disassembly, error) {
	dis, err := New(nil, binary, base, options.NewDisassembler())
	if err != nil {
		return nil, err
	}
	return dis.Process()
}

// Process disassembles the image starting at all usable vector handlers.
// Every call starts with an empty disassembly.
func (dis *Disasm) Process() (Disassembly, error) {
	dis.disassembly = Disassembly{}
	dis.pathErrors = nil

	vectors, err := dis.readVectors()
	if err != nil {
		return nil, err
	}
	dis.vectors = vectors

	for _, vec := range vectors {
		if vec.Skipped {
			continue
		}

		dis.logger.Debug("Following handler",
			log.String("vector", vec.Name),
			log.String("address", fmt.Sprintf("$%04X", vec.Target)))

		if err := dis.walk(vec.Target); err != nil {
			return nil, fmt.Errorf("disassembling %s handler at $%04X: %w", vec.Name, vec.Target, err)
		}
	}

	dis.logger.Debug("Disassembly finished",
		log.Int("instructions", len(dis.disassembly)),
		log.Int("path_errors", len(dis.pathErrors)))

	return dis.disassembly, nil
}

// Memory returns the memory view of the image.
func (dis *Disasm) Memory() *memory.View {
	return dis.mem
}

// Vectors returns the vectors read by the last call of Process.
func (dis *Disasm) Vectors() []Vector {
	return dis.vectors
}

// PathErrors returns the errors that stopped code paths in tolerant mode
// during the last call of Process.
func (dis *Disasm) PathErrors() []error {
	return dis.pathErrors
}
