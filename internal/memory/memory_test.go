package memory

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestViewByte(t *testing.T) {
	v, err := New([]byte{0x12, 0x34, 0x56}, 0x8000)
	assert.NoError(t, err)

	b, err := v.Byte(0x8000)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x12), b)

	b, err = v.Byte(0x8002)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x56), b)

	tests := []uint16{0x7fff, 0x8003, 0x0000, 0xffff}
	for _, address := range tests {
		_, err = v.Byte(address)
		assert.True(t, errors.Is(err, ErrOutOfRange))

		var rangeErr *OutOfRangeError
		assert.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, int(address), rangeErr.Address)
	}
}

func TestViewWord(t *testing.T) {
	v, err := New([]byte{0x00, 0xf0, 0xff}, 0xfffd)
	assert.NoError(t, err)

	w, err := v.Word(0xfffd)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xf000), w)

	w, err = v.Word(0xfffe)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xfff0), w)

	_, err = v.Word(0xffff)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = v.Word(0xfffc)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestViewBounds(t *testing.T) {
	_, err := New(make([]byte, 0x10), 0xfff0)
	assert.NoError(t, err)

	_, err = New(make([]byte, 0x11), 0xfff0)
	assert.True(t, errors.Is(err, ErrImageTooLarge))

	v, err := New(make([]byte, AddressSpaceSize), 0)
	assert.NoError(t, err)
	assert.Equal(t, AddressSpaceSize, v.Len())
	assert.True(t, v.Contains(0xffff))
}

func TestViewBytes(t *testing.T) {
	v, err := New([]byte{0xa9, 0x05, 0x60}, 0xc000)
	assert.NoError(t, err)

	data, err := v.Bytes(0xc000, 2)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xa9, 0x05}, data)

	_, err = v.Bytes(0xc002, 2)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestViewWordAddressSpaceEnd(t *testing.T) {
	data := make([]byte, AddressSpaceSize)
	data[0x0000] = 0x42
	data[0xffff] = 0x12
	v, err := New(data, 0)
	assert.NoError(t, err)

	_, err = v.Word(0xffff)
	var rangeErr *OutOfRangeError
	assert.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, 0x10000, rangeErr.Address)
	assert.Equal(t, "reading address $10000: address out of range", err.Error())
}

func TestAddress(t *testing.T) {
	address, err := Address(0xffff)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xffff), address)

	address, err = Address(0)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0), address)

	_, err = Address(0x10000)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = Address(-2)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Equal(t, "reading address -$0002: address out of range", err.Error())
}
