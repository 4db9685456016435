package problemgen

import (
	"errors"
	"math/rand/v2"

	"github.com/abhisek/mathex/internal/rational"
)

// errEmptyDraw is returned when the range leaves no value to draw, e.g. a
// denominator in [2, 1] for range 2.
var errEmptyDraw = errors.New("problemgen: empty draw interval")

// drawOperand returns a fraction-or-natural or a true mixed number with
// equal probability.
func drawOperand(r *rand.Rand, bound int) (rational.Rational, error) {
	if r.IntN(2) == 0 {
		return drawFraction(r, bound)
	}
	return drawMixed(r, bound)
}

// drawFraction returns a natural in [1, bound-1] one time in three,
// otherwise a proper fraction with denominator in [2, bound-1].
func drawFraction(r *rand.Rand, bound int) (rational.Rational, error) {
	hi := int64(bound) - 1
	if r.IntN(3) == 0 {
		n, err := between(r, 1, hi)
		if err != nil {
			return rational.Rational{}, err
		}
		return rational.Int(n), nil
	}
	den, err := between(r, 2, hi)
	if err != nil {
		return rational.Rational{}, err
	}
	num, err := between(r, 1, den-1)
	if err != nil {
		return rational.Rational{}, err
	}
	return rational.New(num, den)
}

// drawMixed returns whole'num/den with whole in [1, bound-1], den in
// [2, bound-1] and num in [0, den-1].
func drawMixed(r *rand.Rand, bound int) (rational.Rational, error) {
	hi := int64(bound) - 1
	whole, err := between(r, 1, hi)
	if err != nil {
		return rational.Rational{}, err
	}
	den, err := between(r, 2, hi)
	if err != nil {
		return rational.Rational{}, err
	}
	num, err := between(r, 0, den-1)
	if err != nil {
		return rational.Rational{}, err
	}
	return rational.NewMixed(whole, num, den)
}

// between draws uniformly from the closed interval [lo, hi].
func between(r *rand.Rand, lo, hi int64) (int64, error) {
	if hi < lo {
		return 0, errEmptyDraw
	}
	return lo + r.Int64N(hi-lo+1), nil
}
