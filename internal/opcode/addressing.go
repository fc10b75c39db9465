package opcode

// AddressingMode defines how the operand bytes that follow an opcode are
// interpreted.
type AddressingMode int

const (
	NoAddressing AddressingMode = iota

	ImmediateAddressing
	AbsoluteAddressing
	ZeroPageAddressing
	AccumulatorAddressing
	ImpliedAddressing
	ZeroPageIndexedAddressing   // (zp),Y
	ZeroPageIndirectXAddressing // (zp,X)
	ZeroPageXAddressing
	AbsoluteXAddressing
	AbsoluteYAddressing
	RelativeAddressing
	AbsoluteIndirectAddressing // (a)
	StackAddressing
	ZeroPageIndirectAddressing  // (zp)
	AbsoluteIndirectXAddressing // (a,X)
)

var addressingNotation = map[AddressingMode]string{
	ImmediateAddressing:         "#",
	AbsoluteAddressing:          "a",
	ZeroPageAddressing:          "zp",
	AccumulatorAddressing:       "A",
	ImpliedAddressing:           "I",
	ZeroPageIndexedAddressing:   "(zp),Y",
	ZeroPageIndirectXAddressing: "(zp,X)",
	ZeroPageXAddressing:         "zp,X",
	AbsoluteXAddressing:         "a,X",
	AbsoluteYAddressing:         "a,Y",
	RelativeAddressing:          "r",
	AbsoluteIndirectAddressing:  "(a)",
	StackAddressing:             "s",
	ZeroPageIndirectAddressing:  "(zp)",
	AbsoluteIndirectXAddressing: "(a,X)",
}

// String returns the addressing mode in WDC datasheet notation.
func (m AddressingMode) String() string {
	s, ok := addressingNotation[m]
	if !ok {
		return "?"
	}
	return s
}

// IsDynamic returns whether the operand of the addressing mode is the location
// of a pointer to the destination instead of the destination itself.
func (m AddressingMode) IsDynamic() bool {
	return m == AbsoluteIndirectAddressing || m == AbsoluteIndirectXAddressing
}
