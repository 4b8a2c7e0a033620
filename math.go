package wadray

import (
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the class for all errors from this package.
var Error = errs.Class("wadray")

// ErrDivisionByZero is returned when a divisor or percentage is zero.
var ErrDivisionByZero = errs.Class("division by zero")

// WadMul multiplies two wad-scaled values, rounding to the nearest wad.
func WadMul(a, b *big.Int) *big.Int {
	return mulScaled(a, b, HalfWAD, WAD)
}

// WadDiv divides two wad-scaled values, rounding to the nearest wad. It
// fails when b is zero.
func WadDiv(a, b *big.Int) (*big.Int, error) {
	return divScaled(a, b, WAD)
}

// RayMul multiplies two ray-scaled values, rounding to the nearest ray.
func RayMul(a, b *big.Int) *big.Int {
	return mulScaled(a, b, HalfRAY, RAY)
}

// RayDiv divides two ray-scaled values, rounding to the nearest ray. It
// fails when b is zero.
func RayDiv(a, b *big.Int) (*big.Int, error) {
	return divScaled(a, b, RAY)
}

// PercentMul applies a percentage given in basis points out of 10000,
// rounding to the nearest unit of a.
func PercentMul(a, bps *big.Int) *big.Int {
	return mulScaled(a, bps, HalfPercentage, PercentageFactor)
}

// PercentDiv divides by a percentage given in basis points out of 10000.
// It fails when bps is zero.
func PercentDiv(a, bps *big.Int) (*big.Int, error) {
	return divScaled(a, bps, PercentageFactor)
}

// RayToWad converts a ray-scaled value down to wad scale, rounding at the
// half-ratio boundary.
func RayToWad(a *big.Int) *big.Int {
	r := new(big.Int).Add(halfRatio, a)

	return r.Quo(r, WadRayRatio)
}

// WadToRay converts a wad-scaled value up to ray scale. The conversion is
// exact.
func WadToRay(a *big.Int) *big.Int {
	return new(big.Int).Mul(a, WadRayRatio)
}

// Negated returns -a.
func Negated(a *big.Int) *big.Int {
	return new(big.Int).Neg(a)
}

// mulScaled computes (half + a*b) / unit with truncating division.
func mulScaled(a, b, half, unit *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	r.Add(r, half)

	return r.Quo(r, unit)
}

// divScaled computes (b/2 + a*unit) / b with truncating division.
func divScaled(a, b, unit *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, Error.Wrap(ErrDivisionByZero.New("divisor is zero"))
	}

	half := new(big.Int).Quo(b, two)

	r := new(big.Int).Mul(a, unit)
	r.Add(r, half)

	return r.Quo(r, b), nil
}
