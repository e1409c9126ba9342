package integer

import (
	"encoding/binary"
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the integer error class.
var Error = errs.Class("integer")

// Block is a signed integer number. Value holds the big-endian magnitude.
type Block struct {
	Value    []byte
	Negative bool
}

// FromInt64 returns the block for i.
func FromInt64(i int64) Block {
	return FromBig(big.NewInt(i))
}

// FromBig returns the block for i.
func FromBig(i *big.Int) Block {
	b := Block{
		Value:    new(big.Int).Abs(i).Bytes(),
		Negative: i.Sign() < 0,
	}

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(b.Value) == 0 {
		b.Value = []byte{0}
	}

	return b
}

// Parse reads a base 10 (or 0x/0b/0o prefixed) integer literal.
func Parse(s string) (b Block, err error) {
	i, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return b, Error.New("invalid integer literal: %q", s)
	}

	return FromBig(i), nil
}

// FromMemory decodes an integer as it is laid out in target memory. Signed
// integers are two's complement over the full width of data.
func FromMemory(data []byte, order binary.ByteOrder, signed bool) (b Block, err error) {
	if len(data) == 0 {
		return b, Error.New("invalid: size=0")
	}

	be := make([]byte, len(data))
	copy(be, data)

	if order == binary.LittleEndian {
		for i, j := 0, len(be)-1; i < j; i, j = i+1, j-1 {
			be[i], be[j] = be[j], be[i]
		}
	}

	i := new(big.Int).SetBytes(be)

	if signed && be[0]&0b1000_0000 != 0 {
		// Subtract 2^(8*n) to recover the negative value.
		i.Sub(i, new(big.Int).Lsh(big.NewInt(1), uint(8*len(be))))
	}

	return FromBig(i), nil
}

// Big returns the block as a big.Int.
func (b Block) Big() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// String implements fmt.Stringer.
func (b Block) String() string {
	return b.Big().String()
}
