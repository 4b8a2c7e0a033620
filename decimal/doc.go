// Package decimal provides a fixed point base 10 value for rendering and
// constructing the raw scaled integers the protocol works in.
//
// The equation for a decimal value is:
//
//  number = value * 10^-scale
//
// Where number is the human-readable quantity, value is an unscaled signed
// integer, and scale is the count of fractional digits. For example:
//
//  1.23 = 123 * 10^-2
//
// The two scales the protocol uses are wad (scale 18) and ray (scale 27),
// but any scale works; token amounts commonly use the token's own decimal
// count (6, 8, ...).
//
// Rendering
//
// String always emits exactly scale fractional digits, left-padded with
// zeros, with no trailing-zero trimming:
//
//  New(big.NewInt(1500), 3).String()  -> "1.500"
//  New(big.NewInt(-7), 4).String()    -> "-0.0007"
//  New(big.NewInt(42), 0).String()    -> "42"
//
// This keeps rendering a bijection at a fixed scale: Parse(d.String(), s)
// reproduces d for every d at scale s.
//
// Parsing
//
// Parse accepts an optionally signed, optionally fractional base 10
// literal. Fractional digits beyond the target scale are truncated toward
// zero, never rounded:
//
//  Parse("1.5", 18)    -> 1500000000000000000
//  Parse("-1.239", 2)  -> -123
//
// Values are never held as floats at any point; all scaling is exact
// integer arithmetic.
package decimal
