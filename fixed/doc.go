// Package fixed provides a fixed point base 2 number.
//
// The equation for a binary fixed point number is:
//
//  number = value * 2 ^ exponent
//
// Where number is the fixed point number, value is the stored (unscaled)
// integer, and exponent is the base 2 scale taken from the type. For example:
//
//  1.0 = 4096 * 2^-12
//  0.5 = 1 * 2^-1
//
// The divisor applied to the stored integer is 2^-exponent; an exponent of -12
// is a divisor of 4096.
//
// Rendering
//
// Every binary fraction has a finite decimal expansion, so the exact format
// renders the number without rounding:
//
//  value * 2^-k = value * 5^k / 10^k
//
// The digits of value * 5^k are computed with math/big and the decimal point
// is placed k digits from the right. Trailing fractional zeros are removed and
// integral numbers are rendered without a decimal point.
//
//  | Value | Exponent | Exact    | Float    |
//  |-------|----------|----------|----------|
//  | 4096  | -12      | 1        | 1        |
//  | 1     | -1       | 0.5      | 0.5      |
//  | 10    | -1       | 5        | 5        |
//  | -3    | -2       | -0.75    | -0.75    |
//  | 1     | -30      | 0.000000000931322574615478515625 | 9.313225746154785e-10 |
//  | 3     | 4        | 48       | 48       |
//  |-------|----------|----------|----------|
//
// The float format converts through float64 and prints the shortest
// representation that round trips, so very wide values lose precision.
package fixed
