package wadray

import "math/big"

// Protocol scaling constants. They are shared instances: read, never write.
var (
	// WAD is one unit at 18 decimal digits of precision.
	WAD = pow10(18)

	// HalfWAD is the rounding bias for wad multiplication.
	HalfWAD = new(big.Int).Quo(WAD, two)

	// RAY is one unit at 27 decimal digits of precision.
	RAY = pow10(27)

	// HalfRAY is the rounding bias for ray multiplication.
	HalfRAY = new(big.Int).Quo(RAY, two)

	// PercentageFactor is one hundred percent in basis points.
	PercentageFactor = big.NewInt(10000)

	// HalfPercentage is the rounding bias for percentage multiplication.
	HalfPercentage = big.NewInt(5000)

	// WadRayRatio is the exact precision gap between ray and wad, 10^9.
	WadRayRatio = pow10(9)

	// SecondsPerYear converts annual ray rates to per-second rates.
	SecondsPerYear = big.NewInt(31536000)
)

var (
	two        = big.NewInt(2)
	six        = big.NewInt(6)
	halfRatio  = new(big.Int).Quo(WadRayRatio, two)
	secondsSqr = new(big.Int).Mul(SecondsPerYear, SecondsPerYear)
)

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}
