package decimal

import (
	"math/big"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the class for all errors from this package.
var Error = errs.Class("decimal")

// ErrInvalidLiteral is returned by Parse for malformed decimal literals.
var ErrInvalidLiteral = errs.Class("invalid decimal literal")

// Decimal is an immutable fixed point base 10 value: an unscaled signed
// integer plus a count of fractional digits. The zero value is 0 at
// scale 0.
type Decimal struct {
	value *big.Int
	scale uint32
}

// New returns the decimal with the given already-scaled integer value.
// The value is copied.
func New(value *big.Int, scale uint32) Decimal {
	return Decimal{
		value: new(big.Int).Set(value),
		scale: scale,
	}
}

// FromInt64 returns v as a decimal at the given scale (v * 10^scale).
func FromInt64(v int64, scale uint32) Decimal {
	return Decimal{
		value: new(big.Int).Mul(big.NewInt(v), pow10(scale)),
		scale: scale,
	}
}

// Parse converts a base 10 literal into a decimal at the given scale. The
// literal may carry a leading + or - and at most one decimal point, and
// must contain at least one digit. Fractional digits beyond scale are
// truncated toward zero.
func Parse(s string, scale uint32) (d Decimal, err error) {
	defer Error.WrapP(&err)

	rest := s
	neg := false

	switch {
	case strings.HasPrefix(rest, "-"):
		neg = true
		rest = rest[1:]
	case strings.HasPrefix(rest, "+"):
		rest = rest[1:]
	}

	intPart := rest
	fracPart := ""

	if i := strings.IndexByte(rest, '.'); i >= 0 {
		intPart = rest[:i]
		fracPart = rest[i+1:]
	}

	if len(intPart)+len(fracPart) == 0 || !digits(intPart) || !digits(fracPart) {
		return Decimal{}, ErrInvalidLiteral.New("%q", s)
	}

	if uint32(len(fracPart)) > scale {
		fracPart = fracPart[:scale]
	}

	for uint32(len(fracPart)) < scale {
		fracPart += "0"
	}

	value, ok := new(big.Int).SetString(intPart+fracPart, 10)
	if !ok {
		return Decimal{}, ErrInvalidLiteral.New("%q", s)
	}

	if neg {
		value.Neg(value)
	}

	return Decimal{
		value: value,
		scale: scale,
	}, nil
}

// Raw returns a copy of the underlying scaled integer.
func (d Decimal) Raw() *big.Int {
	return new(big.Int).Set(d.unscaled())
}

// Scale returns the count of fractional digits.
func (d Decimal) Scale() uint32 {
	return d.scale
}

// Rescale returns the same logical quantity at a different scale. Scaling
// up is exact; scaling down truncates toward zero.
func (d Decimal) Rescale(scale uint32) Decimal {
	value := new(big.Int).Set(d.unscaled())

	switch {
	case scale > d.scale:
		value.Mul(value, pow10(scale-d.scale))
	case scale < d.scale:
		value.Quo(value, pow10(d.scale-scale))
	}

	return Decimal{
		value: value,
		scale: scale,
	}
}

// String renders the decimal with exactly Scale fractional digits.
func (d Decimal) String() string {
	value := d.unscaled()

	if d.scale == 0 {
		return value.String()
	}

	abs := new(big.Int).Abs(value)
	whole, frac := new(big.Int).QuoRem(abs, pow10(d.scale), new(big.Int))

	fracDigits := frac.String()
	pad := strings.Repeat("0", int(d.scale)-len(fracDigits))

	sign := ""
	if value.Sign() < 0 {
		sign = "-"
	}

	return sign + whole.String() + "." + pad + fracDigits
}

// unscaled tolerates the zero value.
func (d Decimal) unscaled() *big.Int {
	if d.value == nil {
		return new(big.Int)
	}

	return d.value
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

func pow10(n uint32) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
