package disasm

import (
	"errors"
	"fmt"

	"github.com/retroenv/c02disasm/internal/memory"
	"github.com/retroenv/retrogolib/log"
)

// walk disassembles all code that is reachable from the start address.
// Addresses that are already part of the disassembly are not decoded again,
// which ends loops and joins converging paths.
//
// Branch destinations are followed before the code that follows the branch
// instruction. Instead of recursing, the address of the following code is
// pushed on a work stack that is processed after the destination path ended.
func (dis *Disasm) walk(start uint16) error {
	stack := []int{int(start)}

	for len(stack) > 0 {
		address := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var err error
		stack, err = dis.followPath(address, stack)
		if err == nil {
			continue
		}

		if !dis.options.Tolerant || errors.Is(err, ErrInvariantViolation) {
			return err
		}

		dis.logger.Warn("Stopping code path",
			log.String("start", fmt.Sprintf("$%04X", address)),
			log.Err(err))
		dis.pathErrors = append(dis.pathErrors, err)
	}

	return nil
}

// followPath decodes the straight line code path starting at the address
// until it reaches already decoded code or an instruction that does not
// continue with the next instruction. It returns the work stack with the
// addresses of all paths that continue after followed branches.
// Addresses are not wrapped around, code that runs past $FFFF fails to
// decode with an out of range error.
func (dis *Disasm) followPath(next int, stack []int) ([]int, error) {
	for {
		address, err := memory.Address(next)
		if err != nil {
			return stack, fmt.Errorf("decoding instruction: %w", err)
		}
		if dis.disassembly.Contains(address) {
			return stack, nil
		}

		ins, err := dis.decode(dis.mem, address)
		if err != nil {
			return stack, fmt.Errorf("decoding instruction: %w", err)
		}
		dis.disassembly[address] = ins

		op := ins.Opcode
		if op.Follow() {
			if !ins.HasOperand {
				return stack, fmt.Errorf("%w: branching instruction '%s' at $%04X has no operand",
					ErrInvariantViolation, op.Name, address)
			}

			if !op.Breaking {
				stack = append(stack, ins.Next())
			}
			next = int(ins.Operand)
			continue
		}

		if op.Breaking {
			return stack, nil
		}
		next = ins.Next()
	}
}
