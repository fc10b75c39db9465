package opcode

// Opcodes maps every opcode byte to its operation. Unmapped bytes are not
// Valid.
var Opcodes = [256]Opcode{
	0x00: op("brk", 2, ImpliedAddressing),
	0x01: op("ora", 2, ZeroPageIndirectXAddressing),
	0x04: op("tsb", 2, ZeroPageAddressing),
	0x05: op("ora", 2, ZeroPageAddressing),
	0x06: op("asl", 2, ZeroPageAddressing),
	0x07: op("rmb0", 2, ZeroPageAddressing),
	0x08: op("php", 1, StackAddressing),
	0x09: op("ora", 2, ImmediateAddressing),
	0x0a: op("asl", 1, AccumulatorAddressing),
	0x0c: op("tsb", 3, AbsoluteAddressing),
	0x0d: op("ora", 3, AbsoluteAddressing),
	0x0e: op("asl", 3, AbsoluteAddressing),
	0x0f: op("bbr0", 3, RelativeAddressing),

	0x10: op("bpl", 2, RelativeAddressing),
	0x11: op("ora", 2, ZeroPageIndexedAddressing),
	0x12: op("ora", 2, ZeroPageIndirectAddressing),
	0x14: op("trb", 2, ZeroPageAddressing),
	0x15: op("ora", 2, ZeroPageXAddressing),
	0x16: op("asl", 2, ZeroPageXAddressing),
	0x17: op("rmb1", 2, ZeroPageAddressing),
	0x18: op("clc", 1, ImpliedAddressing),
	0x19: op("ora", 3, AbsoluteYAddressing),
	0x1a: op("inc", 1, AccumulatorAddressing),
	0x1c: op("trb", 3, AbsoluteAddressing),
	0x1d: op("ora", 3, AbsoluteXAddressing),
	0x1e: op("asl", 3, AbsoluteXAddressing),
	0x1f: op("bbr1", 3, RelativeAddressing),

	0x20: op("jsr", 3, AbsoluteAddressing),
	0x21: op("and", 2, ZeroPageIndirectXAddressing),
	0x24: op("bit", 2, ZeroPageAddressing),
	0x25: op("and", 2, ZeroPageAddressing),
	0x26: op("rol", 2, ZeroPageAddressing),
	0x27: op("rmb2", 2, ZeroPageAddressing),
	0x28: op("plp", 1, StackAddressing),
	0x29: op("and", 2, ImmediateAddressing),
	0x2a: op("rol", 1, AccumulatorAddressing),
	0x2c: op("bit", 3, AbsoluteAddressing),
	0x2d: op("and", 3, AbsoluteAddressing),
	0x2e: op("rol", 3, AbsoluteAddressing),
	0x2f: op("bbr2", 3, RelativeAddressing),

	0x30: op("bmi", 2, RelativeAddressing),
	0x31: op("and", 2, ZeroPageIndexedAddressing),
	0x32: op("and", 2, ZeroPageIndirectAddressing),
	0x34: op("bit", 2, ZeroPageXAddressing),
	0x35: op("and", 2, ZeroPageXAddressing),
	0x36: op("rol", 2, ZeroPageXAddressing),
	0x37: op("rmb3", 2, ZeroPageAddressing),
	0x38: op("sec", 1, ImpliedAddressing),
	0x39: op("and", 3, AbsoluteYAddressing),
	0x3a: op("dec", 1, AccumulatorAddressing),
	0x3c: op("bit", 3, AbsoluteXAddressing),
	0x3d: op("and", 3, AbsoluteXAddressing),
	0x3e: op("rol", 3, AbsoluteXAddressing),
	0x3f: op("bbr3", 3, RelativeAddressing),

	0x40: op("rti", 1, StackAddressing),
	0x41: op("eor", 2, ZeroPageIndirectXAddressing),
	0x45: op("eor", 2, ZeroPageAddressing),
	0x46: op("lsr", 2, ZeroPageAddressing),
	0x47: op("rmb4", 2, ZeroPageAddressing),
	0x48: op("pha", 1, StackAddressing),
	0x49: op("eor", 2, ImmediateAddressing),
	0x4a: op("lsr", 1, AccumulatorAddressing),
	0x4c: op("jmp", 3, AbsoluteAddressing),
	0x4d: op("eor", 3, AbsoluteAddressing),
	0x4e: op("lsr", 3, AbsoluteAddressing),
	0x4f: op("bbr4", 3, RelativeAddressing),

	0x50: op("bvc", 2, RelativeAddressing),
	0x51: op("eor", 2, ZeroPageIndexedAddressing),
	0x52: op("eor", 2, ZeroPageIndirectAddressing),
	0x55: op("eor", 2, ZeroPageXAddressing),
	0x56: op("lsr", 2, ZeroPageXAddressing),
	0x57: op("rmb5", 2, ZeroPageAddressing),
	0x58: op("cli", 1, ImpliedAddressing),
	0x59: op("eor", 3, AbsoluteYAddressing),
	0x5a: op("phy", 1, StackAddressing),
	0x5d: op("eor", 3, AbsoluteXAddressing),
	0x5e: op("lsr", 3, AbsoluteXAddressing),
	0x5f: op("bbr5", 3, RelativeAddressing),

	0x60: op("rts", 1, StackAddressing),
	0x61: op("adc", 2, ZeroPageIndirectXAddressing),
	0x64: op("stz", 2, ZeroPageAddressing),
	0x65: op("adc", 2, ZeroPageAddressing),
	0x66: op("ror", 2, ZeroPageAddressing),
	0x67: op("rmb6", 2, ZeroPageAddressing),
	0x68: op("pla", 1, StackAddressing),
	0x69: op("adc", 2, ImmediateAddressing),
	0x6a: op("ror", 1, AccumulatorAddressing),
	0x6c: op("jmp", 3, AbsoluteIndirectAddressing),
	0x6d: op("adc", 3, AbsoluteAddressing),
	0x6e: op("ror", 3, AbsoluteAddressing),
	0x6f: op("bbr6", 3, RelativeAddressing),

	0x70: op("bvs", 2, RelativeAddressing),
	0x71: op("adc", 2, ZeroPageIndexedAddressing),
	0x72: op("adc", 2, ZeroPageIndirectAddressing),
	0x74: op("stz", 2, ZeroPageXAddressing),
	0x75: op("adc", 2, ZeroPageXAddressing),
	0x76: op("ror", 2, ZeroPageXAddressing),
	0x77: op("rmb7", 2, ZeroPageAddressing),
	0x78: op("sei", 1, ImpliedAddressing),
	0x79: op("adc", 3, AbsoluteYAddressing),
	0x7a: op("ply", 1, StackAddressing),
	0x7c: op("jmp", 3, AbsoluteIndirectXAddressing),
	0x7d: op("adc", 3, AbsoluteXAddressing),
	0x7e: op("ror", 3, AbsoluteXAddressing),
	0x7f: op("bbr7", 3, RelativeAddressing),

	0x80: op("bra", 2, RelativeAddressing),
	0x81: op("sta", 2, ZeroPageIndirectXAddressing),
	0x84: op("sty", 2, ZeroPageAddressing),
	0x85: op("sta", 2, ZeroPageAddressing),
	0x86: op("stx", 2, ZeroPageAddressing),
	0x87: op("smb0", 2, ZeroPageAddressing),
	0x88: op("dey", 1, ImpliedAddressing),
	0x89: op("bit", 2, ImmediateAddressing),
	0x8a: op("txa", 1, ImpliedAddressing),
	0x8c: op("sty", 3, AbsoluteAddressing),
	0x8d: op("sta", 3, AbsoluteAddressing),
	0x8e: op("stx", 3, AbsoluteAddressing),
	0x8f: op("bbs0", 3, RelativeAddressing),

	0x90: op("bcc", 2, RelativeAddressing),
	0x91: op("sta", 2, ZeroPageIndexedAddressing),
	0x92: op("sta", 2, ZeroPageIndirectAddressing),
	0x94: op("sty", 2, ZeroPageXAddressing),
	0x95: op("sta", 2, ZeroPageXAddressing),
	0x96: op("stx", 2, ZeroPageXAddressing),
	0x97: op("smb1", 2, ZeroPageAddressing),
	0x98: op("tya", 1, ImpliedAddressing),
	0x99: op("sta", 3, AbsoluteYAddressing),
	0x9a: op("txs", 1, ImpliedAddressing),
	0x9c: op("stz", 3, AbsoluteAddressing),
	0x9d: op("sta", 3, AbsoluteXAddressing),
	0x9e: op("stz", 3, AbsoluteXAddressing),
	0x9f: op("bbs1", 3, RelativeAddressing),

	0xa0: op("ldy", 2, ImmediateAddressing),
	0xa1: op("lda", 2, ZeroPageIndirectXAddressing),
	0xa2: op("ldx", 2, ImmediateAddressing),
	0xa4: op("ldy", 2, ZeroPageAddressing),
	0xa5: op("lda", 2, ZeroPageAddressing),
	0xa6: op("ldx", 2, ZeroPageAddressing),
	0xa7: op("smb2", 2, ZeroPageAddressing),
	0xa8: op("tay", 1, ImpliedAddressing),
	0xa9: op("lda", 2, ImmediateAddressing),
	0xaa: op("tax", 1, ImpliedAddressing),
	0xac: op("ldy", 3, AbsoluteAddressing),
	0xad: op("lda", 3, AbsoluteAddressing),
	0xae: op("ldx", 3, AbsoluteAddressing),
	0xaf: op("bbs2", 3, RelativeAddressing),

	0xb0: op("bcs", 2, RelativeAddressing),
	0xb1: op("lda", 2, ZeroPageIndexedAddressing),
	0xb2: op("lda", 2, ZeroPageIndirectAddressing),
	0xb4: op("ldy", 2, ZeroPageXAddressing),
	0xb5: op("lda", 2, ZeroPageXAddressing),
	0xb6: op("ldx", 2, ZeroPageXAddressing),
	0xb7: op("smb3", 2, ZeroPageAddressing),
	0xb8: op("clv", 1, ImpliedAddressing),
	0xb9: op("lda", 3, AbsoluteYAddressing),
	0xba: op("tsx", 1, ImpliedAddressing),
	0xbc: op("ldy", 3, AbsoluteXAddressing),
	0xbd: op("lda", 3, AbsoluteXAddressing),
	0xbe: op("ldx", 3, AbsoluteYAddressing), // indexed by Y on the CPU, tagged a,X in older tables
	0xbf: op("bbs3", 3, RelativeAddressing),

	0xc0: op("cpy", 2, ImmediateAddressing),
	0xc1: op("cmp", 2, ZeroPageIndirectXAddressing),
	0xc4: op("cpy", 2, ZeroPageAddressing),
	0xc5: op("cmp", 2, ZeroPageAddressing),
	0xc6: op("dec", 2, ZeroPageAddressing),
	0xc7: op("smb4", 2, ZeroPageAddressing),
	0xc8: op("iny", 1, ImpliedAddressing),
	0xc9: op("cmp", 2, ImmediateAddressing),
	0xca: op("dex", 1, ImpliedAddressing),
	0xcb: op("wai", 1, ImpliedAddressing),
	0xcc: op("cpy", 3, AbsoluteAddressing),
	0xcd: op("cmp", 3, AbsoluteAddressing),
	0xce: op("dec", 3, AbsoluteAddressing),
	0xcf: op("bbs4", 3, RelativeAddressing),

	0xd0: op("bne", 2, RelativeAddressing),
	0xd1: op("cmp", 2, ZeroPageIndexedAddressing),
	0xd2: op("cmp", 2, ZeroPageIndirectAddressing),
	0xd5: op("cmp", 2, ZeroPageXAddressing),
	0xd6: op("dec", 2, ZeroPageXAddressing),
	0xd7: op("smb5", 2, ZeroPageAddressing),
	0xd8: op("cld", 1, ImpliedAddressing),
	0xd9: op("cmp", 3, AbsoluteYAddressing),
	0xda: op("phx", 1, StackAddressing),
	0xdb: op("stp", 1, ImpliedAddressing),
	0xdd: op("cmp", 3, AbsoluteXAddressing),
	0xde: op("dec", 3, AbsoluteXAddressing),
	0xdf: op("bbs5", 3, RelativeAddressing),

	0xe0: op("cpx", 2, ImmediateAddressing),
	0xe1: op("sbc", 2, ZeroPageIndirectXAddressing),
	0xe4: op("cpx", 2, ZeroPageAddressing),
	0xe5: op("sbc", 2, ZeroPageAddressing),
	0xe6: op("inc", 2, ZeroPageAddressing),
	0xe7: op("smb6", 2, ZeroPageAddressing),
	0xe8: op("inx", 1, ImpliedAddressing),
	0xe9: op("sbc", 2, ImmediateAddressing),
	0xea: op("nop", 1, ImpliedAddressing),
	0xec: op("cpx", 3, AbsoluteAddressing),
	0xed: op("sbc", 3, AbsoluteAddressing),
	0xee: op("inc", 3, AbsoluteAddressing),
	0xef: op("bbs6", 3, RelativeAddressing),

	0xf0: op("beq", 2, RelativeAddressing),
	0xf1: op("sbc", 2, ZeroPageIndexedAddressing),
	0xf2: op("sbc", 2, ZeroPageIndirectAddressing),
	0xf5: op("sbc", 2, ZeroPageXAddressing),
	0xf6: op("inc", 2, ZeroPageXAddressing),
	0xf7: op("smb7", 2, ZeroPageAddressing),
	0xf8: op("sed", 1, ImpliedAddressing),
	0xf9: op("sbc", 3, AbsoluteYAddressing),
	0xfa: op("plx", 1, StackAddressing),
	0xfd: op("sbc", 3, AbsoluteXAddressing),
	0xfe: op("inc", 3, AbsoluteXAddressing),
	0xff: op("bbs7", 3, RelativeAddressing),
}
