package nullref

import (
	"iter"
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Size is the number of flags a BoolByte holds.
const Size = 8

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// BoolByte stores 8 boolean values inside a single byte. Flag i lives in
// bit i. The zero value has every flag false.
type BoolByte struct {
	data uint8
}

// New packs values in order into bits 0..len(values)-1. More than Size
// values is rejected and nothing is packed.
func New(values ...bool) (BoolByte, error) {
	if len(values) > Size {
		return BoolByte{}, errors.Wrapf(ErrInvalidArgument, "%d values given, at most %d fit", len(values), Size)
	}
	var b BoolByte
	for i, v := range values {
		b.data = setBit(b.data, i, v)
	}
	return b, nil
}

// MustNew is like New but panics if values does not fit.
func MustNew(values ...bool) BoolByte {
	b, err := New(values...)
	if err != nil {
		panic(err)
	}
	return b
}

// FromRaw wraps a preexisting byte.
func FromRaw(raw uint8) BoolByte { return BoolByte{data: raw} }

func (b BoolByte) RawData() uint8 { return b.data }

func (b BoolByte) AnyTrue() bool { return b.data != 0 }

// Count returns how many flags are true.
func (b BoolByte) Count() int { return bits.OnesCount8(b.data) }

func checkIndex(i int) error {
	if i < 0 || i >= Size {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d not in [0,%d]", i, Size-1)
	}
	return nil
}

func (b BoolByte) Get(i int) (bool, error) {
	if err := checkIndex(i); err != nil {
		return false, err
	}
	return getBit(b.data, i), nil
}

// Set replaces flag i with v. On error b is left untouched.
func (b *BoolByte) Set(i int, v bool) error {
	if err := checkIndex(i); err != nil {
		return err
	}
	b.data = setBit(b.data, i, v)
	return nil
}

// With returns a copy of b with flag i replaced by v.
func (b BoolByte) With(i int, v bool) (BoolByte, error) {
	if err := b.Set(i, v); err != nil {
		return BoolByte{}, err
	}
	return b, nil
}

func (b *BoolByte) Toggle(i int) error {
	if err := checkIndex(i); err != nil {
		return err
	}
	b.data = ToggleMask(b.data, bit(i))
	return nil
}

// Flags unpacks b into a slice of Size booleans in bit order.
func (b BoolByte) Flags() []bool {
	flags := make([]bool, Size)
	for i := range flags {
		flags[i] = getBit(b.data, i)
	}
	return flags
}

// All yields every (index, flag) pair from bit 0 up.
func (b BoolByte) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < Size; i++ {
			if !yield(i, getBit(b.data, i)) {
				return
			}
		}
	}
}

func (b BoolByte) Equal(other BoolByte) bool { return b.data == other.data }

// Hash is a deterministic function of the raw value.
func (b BoolByte) Hash() int {
	return ((int(b.data)+14388)*3 - 2155) / 4
}

// Compare orders by raw value and returns -1, 0 or 1.
func Compare(a, b BoolByte) int {
	switch {
	case a.data < b.data:
		return -1
	case a.data > b.data:
		return 1
	}
	return 0
}

// FormatOptions controls how Format renders a BoolByte.
type FormatOptions struct {
	// LSBFirst prints bit 0 first, so the string reads in index order.
	LSBFirst bool
	// NoPrefix drops the leading "0b".
	NoPrefix bool
}

var DefaultFormatOptions = &FormatOptions{}

func (b BoolByte) Format(opts *FormatOptions) string {
	if opts == nil {
		opts = DefaultFormatOptions
	}
	var sb strings.Builder
	if !opts.NoPrefix {
		sb.WriteString("0b")
	}
	for n := 0; n < Size; n++ {
		i := Size - 1 - n
		if opts.LSBFirst {
			i = n
		}
		if getBit(b.data, i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (b BoolByte) String() string { return b.Format(nil) }

// Parse reads a binary literal such as "0b101" or "00000101", most
// significant bit first.
func Parse(s string) (BoolByte, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0b"), "0B")
	if len(digits) == 0 || len(digits) > Size {
		return BoolByte{}, errors.Wrapf(ErrInvalidArgument, "bad binary literal %q", s)
	}
	v, err := strconv.ParseUint(digits, 2, Size)
	if err != nil {
		return BoolByte{}, errors.Wrapf(ErrInvalidArgument, "bad binary literal %q: %v", s, err)
	}
	return FromRaw(uint8(v)), nil
}

func (b BoolByte) MarshalBinary() ([]byte, error) {
	return []byte{b.data}, nil
}

func (b *BoolByte) UnmarshalBinary(data []byte) error {
	if len(data) != 1 {
		return errors.Wrapf(ErrInvalidArgument, "BoolByte needs 1 byte, got %d", len(data))
	}
	b.data = data[0]
	return nil
}

func (b BoolByte) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *BoolByte) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
