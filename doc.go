// Package wadray provides fixed-point arithmetic over arbitrary-precision
// integers at the two scales used by the lending protocol: wad (18 decimal
// digits) and ray (27 decimal digits), plus percentage math in basis points
// (1/10000).
//
// A scaled value is a plain *big.Int holding:
//
//  raw = actual * 10^scale
//
// The scale is not carried in a type. Callers track the scale of each raw
// integer themselves, the same way the on-chain contracts do, and must feed
// every operation values at the scale its name implies.
//
// Rounding
//
// Multiplication and division round to the nearest unit with the additive
// half-unit bias used on chain:
//
//  mul: (half + a*b) / unit
//  div: (b/2 + a*unit) / b
//
// followed by integer division truncating toward zero. For non-negative
// operands this is round-half-up; for a negative product or quotient the
// bias pulls toward zero instead. The truncation direction is part of the
// contract: off-chain results must agree bit-for-bit with the contracts,
// so no other rounding mode is acceptable.
//
//  | Scale      | Unit  | Half unit       |
//  |------------|-------|-----------------|
//  | wad        | 10^18 | 5 * 10^17       |
//  | ray        | 10^27 | 5 * 10^26       |
//  | percentage | 10^4  | 5 * 10^3 (bps)  |
//
// Ray carries exactly 10^9 more precision than wad. WadToRay is therefore
// lossless while RayToWad rounds at the half-ratio boundary.
//
// All operations allocate their result and never modify their operands.
// They hold no state and are safe for concurrent use.
package wadray
