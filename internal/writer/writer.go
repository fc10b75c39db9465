// Package writer implements the listing output of a disassembly.
package writer

import (
	"fmt"
	"hash/crc32"
	"io"
	"strings"

	"github.com/retroenv/c02disasm/internal/decoder"
	"github.com/retroenv/c02disasm/internal/disasm"
	"github.com/retroenv/c02disasm/internal/memory"
	"github.com/retroenv/c02disasm/internal/opcode"
	"github.com/retroenv/c02disasm/internal/options"
	"github.com/retroenv/retrogolib/set"
)

const (
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
)

// handler labels take precedence in this order if vectors share a handler
var handlerPriority = []string{disasm.ResetName, disasm.NmiName, disasm.IrqName}

// Writer writes a disassembly as listing.
type Writer struct {
	mem     *memory.View
	options options.Disassembler
	vectors []disasm.Vector
	writer  io.Writer

	labels map[uint16]string
}

// New creates a new writer that outputs to the given writer. The memory
// view is used to output the instruction bytes.
func New(mem *memory.View, vectors []disasm.Vector, writer io.Writer, options options.Disassembler) *Writer {
	return &Writer{
		mem:     mem,
		options: options,
		vectors: vectors,
		writer:  writer,
	}
}

// Write writes the listing of all instructions of the disassembly in
// ascending address order.
func (w *Writer) Write(dis disasm.Disassembly) error {
	w.labels = map[uint16]string{}
	if w.options.Labels {
		w.processLabels(dis)
	}

	if err := w.writeCommentHeader(len(dis)); err != nil {
		return err
	}

	var next int
	for i, address := range dis.Addresses() {
		ins := dis[address]

		label, hasLabel := w.labels[address]
		if i > 0 && (hasLabel || int(address) != next) {
			if _, err := fmt.Fprintln(w.writer); err != nil {
				return fmt.Errorf("writing line: %w", err)
			}
		}
		if hasLabel {
			if _, err := fmt.Fprintf(w.writer, "%s:\n", label); err != nil {
				return fmt.Errorf("writing label: %w", err)
			}
		}

		if err := w.writeCodeLine(ins); err != nil {
			return fmt.Errorf("writing code line at $%04X: %w", address, err)
		}
		next = ins.Next()
	}

	return w.writeVectors()
}

// processLabels names all vector handlers and branch destinations that are
// part of the disassembly.
func (w *Writer) processLabels(dis disasm.Disassembly) {
	for _, name := range handlerPriority {
		for _, vec := range w.vectors {
			if vec.Name != name || vec.Skipped || !dis.Contains(vec.Target) {
				continue
			}
			if _, ok := w.labels[vec.Target]; !ok {
				w.labels[vec.Target] = name
			}
		}
	}

	calls := set.New[uint16]()
	branches := set.New[uint16]()
	for _, ins := range dis {
		if !ins.Opcode.Follow() || !dis.Contains(ins.Operand) {
			continue
		}
		if ins.Name() == opcode.Jsr {
			calls.Add(ins.Operand)
		} else {
			branches.Add(ins.Operand)
		}
	}

	for address := range calls {
		if _, ok := w.labels[address]; !ok {
			w.labels[address] = fmt.Sprintf(funcNaming, address)
		}
	}
	for address := range branches {
		if _, ok := w.labels[address]; !ok {
			w.labels[address] = fmt.Sprintf(labelNaming, address)
		}
	}
}

func (w *Writer) writeCommentHeader(instructions int) error {
	data, err := w.mem.Bytes(w.mem.Base(), w.mem.Len())
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	if _, err := fmt.Fprintf(w.writer, "; Base address: $%04X\n", w.mem.Base()); err != nil {
		return fmt.Errorf("writing base address: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Image size: %d bytes\n", w.mem.Len()); err != nil {
		return fmt.Errorf("writing image size: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Image CRC32 checksum: %08x\n", crc32.ChecksumIEEE(data)); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Instructions: %d\n\n", instructions); err != nil {
		return fmt.Errorf("writing instruction count: %w", err)
	}
	return nil
}

func (w *Writer) writeCodeLine(ins decoder.Instruction) error {
	code, err := w.instructionCode(ins)
	if err != nil {
		return err
	}

	comment, err := w.instructionComment(ins)
	if err != nil {
		return err
	}

	if comment == "" {
		_, err = fmt.Fprintf(w.writer, "  %s\n", code)
	} else {
		_, err = fmt.Fprintf(w.writer, "  %-30s ; %s\n", code, comment)
	}
	if err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

func (w *Writer) instructionComment(ins decoder.Instruction) (string, error) {
	var parts []string

	if w.options.OffsetComments {
		parts = append(parts, fmt.Sprintf("$%04X", ins.Address))
	}

	if w.options.HexComments {
		data, err := w.mem.Bytes(ins.Address, int(ins.Size()))
		if err != nil {
			return "", fmt.Errorf("reading instruction bytes: %w", err)
		}
		for _, b := range data {
			parts = append(parts, fmt.Sprintf("%02X", b))
		}
	}

	return strings.Join(parts, " "), nil
}

func (w *Writer) writeVectors() error {
	if _, err := fmt.Fprint(w.writer, "\n; Vectors\n"); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}

	for _, vec := range w.vectors {
		line := fmt.Sprintf("; %-5s $%04X: $%04X", vec.Name, vec.Address, vec.Target)
		switch {
		case vec.Skipped:
			line += " (skipped)"
		case w.labels[vec.Target] != "":
			line += " " + w.labels[vec.Target]
		}

		if _, err := fmt.Fprintln(w.writer, line); err != nil {
			return fmt.Errorf("writing vector: %w", err)
		}
	}
	return nil
}
