package nullref

import (
	assertion "github.com/stretchr/testify/assert"
	"testing"
)

func TestMasks(t *testing.T) {
	assert := assertion.New(t)
	assert.Equal(uint8(0b101), SetMask(Bit0, Bit2))
	assert.Equal(uint8(0b001), ClearMask(0b101, Bit2))
	assert.Equal(uint8(0b100), ToggleMask(0b101, Bit0))
	assert.True(HasMask(0b101, Bit2))
	assert.False(HasMask(0b101, Bit1))
	assert.True(HasMask(0xFF, Bit7))
	assert.Equal(uint8(0x80), Bit7)
}

func TestBitHelpers(t *testing.T) {
	assert := assertion.New(t)
	for i := 0; i < Size; i++ {
		assert.Equal(uint8(1)<<uint(i), bit(i))
		b := setBit(0, i, true)
		assert.True(getBit(b, i))
		assert.False(getBit(setBit(b, i, false), i))
		assert.Equal(uint8(0xFF), setBit(0xFF, i, true))
	}
}
