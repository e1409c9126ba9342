package fixed

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/fxprint/integer"
)

// Error is the fixed error class.
var Error = errs.Class("fixed")

// Format selects how a number is rendered.
type Format uint8

// Formats
const (
	FormatExact Format = iota
	FormatFloat
)

func (f Format) String() string {
	switch f {
	case FormatExact:
		return "exact"
	case FormatFloat:
		return "float"
	}

	return "unknown"
}

// ParseFormat returns the format with the given name. The empty string is
// FormatExact.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "exact":
		return FormatExact, nil
	case "float":
		return FormatFloat, nil
	}

	return FormatExact, Error.New("unknown format: %q", s)
}

// Scale returns the divisor applied to a stored integer with the given
// exponent (2^-exponent).
func Scale(exponent int) float64 {
	return math.Ldexp(1, -exponent)
}

// Divisor is Scale without rounding.
func Divisor(exponent int) *big.Rat {
	p := new(big.Int).Lsh(big.NewInt(1), uint(abs(exponent)))
	if exponent > 0 {
		return new(big.Rat).SetFrac(big.NewInt(1), p)
	}

	return new(big.Rat).SetInt(p)
}

// Block is a fixed point base 2 number.
type Block struct {
	Value    integer.Block
	Exponent int
}

// Float64 returns the nearest float64 to the number.
func (b Block) Float64() float64 {
	f, _ := new(big.Float).SetInt(b.Value.Big()).Float64()

	return math.Ldexp(f, b.Exponent)
}

// Rat returns the number exactly.
func (b Block) Rat() *big.Rat {
	r := new(big.Rat).SetInt(b.Value.Big())

	return r.Quo(r, Divisor(b.Exponent))
}

// String implements fmt.Stringer using FormatExact.
func (b Block) String() string {
	return b.Text(FormatExact)
}

// Text renders the number.
func (b Block) Text(f Format) string {
	if f == FormatFloat {
		return strconv.FormatFloat(b.Float64(), 'g', -1, 64)
	}

	return exact(b.Value.Big(), b.Exponent)
}

// Render divides raw by Scale(exponent) and formats the result.
func Render(raw integer.Block, exponent int, f Format) string {
	return Block{Value: raw, Exponent: exponent}.Text(f)
}

func exact(v *big.Int, exponent int) string {
	if exponent >= 0 {
		return new(big.Int).Lsh(v, uint(exponent)).String()
	}

	k := -exponent

	negative := v.Sign() < 0

	// v * 2^-k = v * 5^k / 10^k
	m := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(k)), nil)
	m.Mul(m, new(big.Int).Abs(v))

	digits := m.String()
	if len(digits) <= k {
		digits = strings.Repeat("0", k-len(digits)+1) + digits
	}

	whole := digits[:len(digits)-k]
	frac := strings.TrimRight(digits[len(digits)-k:], "0")

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	sb.WriteString(whole)
	if frac != "" {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}

	return sb.String()
}

func abs(i int) int {
	if i < 0 {
		return -i
	}

	return i
}
