// Package loader handles image file loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/c02disasm/internal/memory"
	"github.com/retroenv/c02disasm/internal/options"
)

var (
	ErrEmptyImage  = errors.New("image is empty")
	ErrInvalidBase = errors.New("invalid base address")
)

// Image is a raw binary image and the address that it is loaded at.
type Image struct {
	Data []byte
	Base uint16
}

// Load reads the input file of the parameters as raw binary image.
func Load(opts options.Parameters) (Image, error) {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return Image{}, fmt.Errorf("reading file '%s': %w", opts.Input, err)
	}
	return LoadBytes(data, opts.Base)
}

// LoadBytes returns the image for the data. If no base address is given,
// the image is placed so that its last byte is at address $FFFF and the
// vector table is part of the image.
func LoadBytes(data []byte, base string) (Image, error) {
	if len(data) == 0 {
		return Image{}, ErrEmptyImage
	}
	if len(data) > memory.AddressSpaceSize {
		return Image{}, fmt.Errorf("%w: %d bytes", memory.ErrImageTooLarge, len(data))
	}

	img := Image{
		Data: data,
		Base: uint16(memory.AddressSpaceSize - len(data)),
	}
	if base == "" {
		return img, nil
	}

	address, err := ParseAddress(base)
	if err != nil {
		return Image{}, err
	}
	if int(address)+len(data) > memory.AddressSpaceSize {
		return Image{}, fmt.Errorf("%w: %d bytes at base $%04X", memory.ErrImageTooLarge, len(data), address)
	}
	img.Base = address
	return img, nil
}

// ParseAddress parses a hex address with an optional $ or 0x prefix.
func ParseAddress(s string) (uint16, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "$")
	if !strings.HasPrefix(trimmed, "0x") && !strings.HasPrefix(trimmed, "0X") {
		trimmed = "0x" + trimmed
	}

	address, err := strconv.ParseUint(trimmed, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("%w '%s': %w", ErrInvalidBase, s, err)
	}
	return uint16(address), nil
}
