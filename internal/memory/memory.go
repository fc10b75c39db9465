// Package memory provides read access to a binary image that is loaded at a
// base address of the 16 bit address space.
package memory

import (
	"errors"
	"fmt"
)

// AddressSpaceSize is the size of the addressable memory of the CPU.
const AddressSpaceSize = 0x10000

var (
	ErrOutOfRange    = errors.New("address out of range")
	ErrImageTooLarge = errors.New("image exceeds address space")
)

// OutOfRangeError is returned for a read outside of the loaded image. The
// address can be outside of the 16 bit address space if it was computed
// by address arithmetic that crossed $FFFF or $0000.
type OutOfRangeError struct {
	Address int
}

func (e *OutOfRangeError) Error() string {
	if e.Address < 0 {
		return fmt.Sprintf("reading address -$%04X: %s", -e.Address, ErrOutOfRange)
	}
	return fmt.Sprintf("reading address $%04X: %s", e.Address, ErrOutOfRange)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}

// View is an immutable view of a binary image.
type View struct {
	binary []byte
	base   uint16
}

// New returns a view of the binary that maps the first byte of the binary
// to the base address.
func New(binary []byte, base uint16) (*View, error) {
	if int(base)+len(binary) > AddressSpaceSize {
		return nil, fmt.Errorf("%w: %d bytes at base $%04X", ErrImageTooLarge, len(binary), base)
	}
	return &View{
		binary: binary,
		base:   base,
	}, nil
}

// Address converts the result of address arithmetic to an address of the
// 16 bit address space. Results that do not fit are not wrapped around.
func Address(address int) (uint16, error) {
	if address < 0 || address >= AddressSpaceSize {
		return 0, &OutOfRangeError{Address: address}
	}
	return uint16(address), nil
}

// Base returns the address of the first byte of the image.
func (v *View) Base() uint16 {
	return v.base
}

// Len returns the size of the image in bytes.
func (v *View) Len() int {
	return len(v.binary)
}

// Contains returns whether the address is inside of the image.
func (v *View) Contains(address uint16) bool {
	index := int(address) - int(v.base)
	return index >= 0 && index < len(v.binary)
}

// Byte reads the byte at the given address.
func (v *View) Byte(address uint16) (byte, error) {
	if !v.Contains(address) {
		return 0, &OutOfRangeError{Address: int(address)}
	}
	return v.binary[address-v.base], nil
}

// Word reads the little endian word at the given address.
func (v *View) Word(address uint16) (uint16, error) {
	low, err := v.Byte(address)
	if err != nil {
		return 0, err
	}
	highAddress, err := Address(int(address) + 1)
	if err != nil {
		return 0, err
	}
	high, err := v.Byte(highAddress)
	if err != nil {
		return 0, err
	}
	return uint16(high)<<8 | uint16(low), nil
}

// Bytes returns a copy of count bytes starting at the given address.
func (v *View) Bytes(address uint16, count int) ([]byte, error) {
	start := int(address) - int(v.base)
	if start < 0 || start+count > len(v.binary) {
		return nil, &OutOfRangeError{Address: int(address)}
	}
	data := make([]byte, count)
	copy(data, v.binary[start:start+count])
	return data, nil
}
