package wadray

import "math/big"

// LinearInterest returns the cumulated interest factor, at ray scale, for
// a ray-scaled annual rate accruing linearly over elapsed seconds:
//
//  RAY + rate * elapsed / SecondsPerYear
func LinearInterest(rate *big.Int, elapsed uint64) *big.Int {
	r := new(big.Int).Mul(rate, new(big.Int).SetUint64(elapsed))
	r.Quo(r, SecondsPerYear)

	return r.Add(r, RAY)
}

// CompoundedInterest returns the cumulated interest factor, at ray scale,
// for a ray-scaled annual rate compounding each second over elapsed
// seconds. It uses the same three-term binomial expansion the contracts
// use:
//
//  (1+x)^n ~= 1 + n*x + n*(n-1)/2 * x^2 + n*(n-1)*(n-2)/6 * x^3
//
// where x is the per-second rate. The approximation slightly undershoots
// the exact power for rates of realistic magnitude and matches the
// on-chain value exactly.
func CompoundedInterest(rate *big.Int, elapsed uint64) *big.Int {
	if elapsed == 0 {
		return new(big.Int).Set(RAY)
	}

	exp := new(big.Int).SetUint64(elapsed)
	expMinusOne := new(big.Int).SetUint64(elapsed - 1)

	expMinusTwo := new(big.Int)
	if elapsed > 2 {
		expMinusTwo.SetUint64(elapsed - 2)
	}

	basePowerTwo := RayMul(rate, rate)
	basePowerTwo.Quo(basePowerTwo, secondsSqr)

	basePowerThree := RayMul(basePowerTwo, rate)
	basePowerThree.Quo(basePowerThree, SecondsPerYear)

	firstTerm := new(big.Int).Mul(rate, exp)
	firstTerm.Quo(firstTerm, SecondsPerYear)

	secondTerm := new(big.Int).Mul(exp, expMinusOne)
	secondTerm.Mul(secondTerm, basePowerTwo)
	secondTerm.Quo(secondTerm, two)

	thirdTerm := new(big.Int).Mul(exp, expMinusOne)
	thirdTerm.Mul(thirdTerm, expMinusTwo)
	thirdTerm.Mul(thirdTerm, basePowerThree)
	thirdTerm.Quo(thirdTerm, six)

	r := new(big.Int).Add(RAY, firstTerm)
	r.Add(r, secondTerm)

	return r.Add(r, thirdTerm)
}

// RayPow raises a ray-scaled value to a whole-number power by repeated
// squaring under RayMul.
func RayPow(x *big.Int, n uint64) *big.Int {
	z := new(big.Int).Set(RAY)
	if n%2 != 0 {
		z.Set(x)
	}

	base := new(big.Int).Set(x)

	for n /= 2; n != 0; n /= 2 {
		base = RayMul(base, base)

		if n%2 != 0 {
			z = RayMul(z, base)
		}
	}

	return z
}
