package nullref

const (
	Bit0 uint8 = 1 << iota
	Bit1
	Bit2
	Bit3
	Bit4
	Bit5
	Bit6
	Bit7
)

func SetMask(b, flag uint8) uint8    { return b | flag }
func ClearMask(b, flag uint8) uint8  { return b &^ flag }
func ToggleMask(b, flag uint8) uint8 { return b ^ flag }
func HasMask(b, flag uint8) bool     { return b&flag != 0 }

// bit returns the mask for index i, callers check the range first.
func bit(i int) uint8 { return 1 << uint(i) }

func getBit(b uint8, i int) bool { return HasMask(b, bit(i)) }

func setBit(b uint8, i int, v bool) uint8 {
	if v {
		return SetMask(b, bit(i))
	}
	return ClearMask(b, bit(i))
}
