package rational

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// String renders r as "0", "n/d", "w" or "w'n/d".
func (r Rational) String() string {
	switch {
	case r.whole == 0 && r.num == 0:
		return "0"
	case r.whole == 0:
		return fmt.Sprintf("%d/%d", r.num, r.Denominator())
	case r.num == 0:
		return strconv.FormatInt(r.whole, 10)
	}
	return fmt.Sprintf("%d'%d/%d", r.whole, r.num, r.Denominator())
}

// Decimal returns r rounded half away from zero to the given number of
// decimal places.
func (r Rational) Decimal(places int32) (decimal.Decimal, error) {
	num, den, err := r.Improper()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromInt(num).DivRound(decimal.NewFromInt(den), places), nil
}

// Parse parses a natural number "n", a fraction "n/d" or a mixed number
// "w'n/d". Surrounding whitespace is ignored. Signs are not accepted.
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, &FormatError{Text: s, Reason: "empty"}
	}

	if whole, frac, ok := strings.Cut(s, "'"); ok {
		w, err := parseNatural(s, whole)
		if err != nil {
			return Rational{}, err
		}
		num, den, ok := strings.Cut(frac, "/")
		if !ok {
			return Rational{}, &FormatError{Text: s, Reason: "mixed number needs a fraction part"}
		}
		n, err := parseNatural(s, num)
		if err != nil {
			return Rational{}, err
		}
		d, err := parseNatural(s, den)
		if err != nil {
			return Rational{}, err
		}
		return NewMixed(w, n, d)
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := parseNatural(s, num)
		if err != nil {
			return Rational{}, err
		}
		d, err := parseNatural(s, den)
		if err != nil {
			return Rational{}, err
		}
		return New(n, d)
	}

	n, err := parseNatural(s, s)
	if err != nil {
		return Rational{}, err
	}
	return Int(n), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Rational {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// parseNatural parses an unsigned decimal integer segment of literal.
func parseNatural(literal, seg string) (int64, error) {
	if seg == "" {
		return 0, &FormatError{Text: literal, Reason: "missing digits"}
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return 0, &FormatError{Text: literal, Reason: fmt.Sprintf("unexpected character %q", seg[i])}
		}
	}
	n, err := strconv.ParseInt(seg, 10, 64)
	if err != nil {
		return 0, &FormatError{Text: literal, Reason: "integer out of range", Err: err}
	}
	return n, nil
}

// FormatError describes a literal that does not follow the number grammar.
type FormatError struct {
	Text   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid number %q: %s", e.Text, e.Reason)
}

// Is makes errors.Is(err, ErrNumberFormat) hold for every FormatError.
func (e *FormatError) Is(target error) bool { return target == ErrNumberFormat }

func (e *FormatError) Unwrap() error { return e.Err }
