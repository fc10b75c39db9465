// Package options contains the program options.
package options

// Parameters contains file path and address options.
type Parameters struct {
	Input  string // image file to disassemble
	Output string // listing file, stdout if empty
	Base   string // load address of the image as hex string, derived from the image size if empty
}

// Flags contains behavior options.
type Flags struct {
	Tolerant bool
	Debug    bool
	Quiet    bool
}

// OutputFlags contains listing formatting options.
type OutputFlags struct {
	NoHexComments bool
	NoOffsets     bool
	NoLabels      bool
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Disassembler defines options to control the disassembler and its listing output.
type Disassembler struct {
	// Tolerant limits a decoding error to the code path that it occurs on
	// instead of aborting the whole disassembly.
	Tolerant bool

	HexComments    bool // output instruction bytes as hex values in comments
	OffsetComments bool // output instruction addresses in comments
	Labels         bool // output labels for vector handlers and branch destinations
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{
		HexComments:    true,
		OffsetComments: true,
		Labels:         true,
	}
}

// NewDisassemblerFromProgram returns the disassembler options that the
// program options select.
func NewDisassemblerFromProgram(opts Program) Disassembler {
	disasmOptions := NewDisassembler()
	disasmOptions.Tolerant = opts.Tolerant
	disasmOptions.HexComments = !opts.NoHexComments
	disasmOptions.OffsetComments = !opts.NoOffsets
	disasmOptions.Labels = !opts.NoLabels
	return disasmOptions
}
