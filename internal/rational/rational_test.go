package rational

import (
	"errors"
	"math"
	"testing"
)

func TestNew_Canonical(t *testing.T) {
	tests := []struct {
		num, den           int64
		whole, wantN, want int64
	}{
		{1, 2, 0, 1, 2},
		{2, 4, 0, 1, 2},
		{6, 3, 2, 0, 1},
		{7, 4, 1, 3, 4},
		{-7, 4, -1, 3, 4},
		{-3, 4, 0, -3, 4},
		{3, -4, 0, -3, 4},
		{0, 5, 0, 0, 1},
		{10, 1, 10, 0, 1},
	}

	for _, tc := range tests {
		r, err := New(tc.num, tc.den)
		if err != nil {
			t.Fatalf("New(%d, %d): %v", tc.num, tc.den, err)
		}
		if r.Whole() != tc.whole || r.Numerator() != tc.wantN || r.Denominator() != tc.want {
			t.Errorf("New(%d, %d) = (%d, %d, %d), want (%d, %d, %d)",
				tc.num, tc.den, r.Whole(), r.Numerator(), r.Denominator(),
				tc.whole, tc.wantN, tc.want)
		}
	}
}

func TestNewMixed_FoldsExcess(t *testing.T) {
	r := MustMixed(2, 3, 2)
	if r != MustMixed(3, 1, 2) {
		t.Errorf("2'3/2 = %s, want 3'1/2", r)
	}

	r = MustMixed(-2, 1, 4)
	if r.String() != "-2'1/4" {
		t.Errorf("NewMixed(-2, 1, 4) = %s, want -2'1/4", r)
	}
	num, den, err := r.Improper()
	if err != nil || num != -9 || den != 4 {
		t.Errorf("Improper(-2'1/4) = %d/%d, %v; want -9/4", num, den, err)
	}
}

func TestNew_ZeroDenominator(t *testing.T) {
	if _, err := New(1, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("New(1, 0) err = %v, want ErrDivisionByZero", err)
	}
	if _, err := NewMixed(3, 1, 0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("NewMixed(3, 1, 0) err = %v, want ErrDivisionByZero", err)
	}
}

func TestZeroValue(t *testing.T) {
	var z Rational
	if !z.IsZero() || z.Denominator() != 1 || z.String() != "0" {
		t.Errorf("zero value = %s (den %d)", z, z.Denominator())
	}
	if z != MustNew(0, 7) {
		t.Error("zero value should equal 0/7")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		r    Rational
		want string
	}{
		{MustNew(0, 3), "0"},
		{MustNew(5, 6), "5/6"},
		{Int(3), "3"},
		{MustMixed(1, 1, 2), "1'1/2"},
		{MustNew(-3, 4), "-3/4"},
	}
	for _, tc := range tests {
		if got := tc.r.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestArithmetic(t *testing.T) {
	half := MustNew(1, 2)
	third := MustNew(1, 3)

	tests := []struct {
		name string
		op   func() (Rational, error)
		want string
	}{
		{"add", func() (Rational, error) { return half.Add(third) }, "5/6"},
		{"sub", func() (Rational, error) { return half.Sub(third) }, "1/6"},
		{"sub negative", func() (Rational, error) { return third.Sub(half) }, "-1/6"},
		{"mul", func() (Rational, error) { return MustMixed(1, 1, 2).Mul(Int(2)) }, "3"},
		{"div", func() (Rational, error) { return half.Div(MustNew(3, 4)) }, "2/3"},
		{"div whole", func() (Rational, error) { return Int(3).Div(half) }, "6"},
		{"mixed add", func() (Rational, error) { return MustMixed(2, 3, 4).Add(MustMixed(1, 1, 2)) }, "4'1/4"},
		{"negative mixed", func() (Rational, error) { return Int(1).Sub(MustMixed(2, 1, 3)) }, "-1'1/3"},
	}

	for _, tc := range tests {
		got, err := tc.op()
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("%s = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestDiv_ByZero(t *testing.T) {
	_, err := Int(1).Div(Rational{})
	if !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("1 ÷ 0 err = %v, want ErrDivisionByZero", err)
	}
}

func TestOverflow(t *testing.T) {
	big := Int(math.MaxInt64 / 2)
	if _, err := big.Mul(Int(3)); !errors.Is(err, ErrOverflow) {
		t.Errorf("mul overflow err = %v", err)
	}
	twice, err := big.Add(big)
	if err != nil {
		t.Fatalf("big + big: %v", err)
	}
	if _, err := twice.Add(Int(5)); !errors.Is(err, ErrOverflow) {
		t.Errorf("add overflow err = %v", err)
	}
	if _, err := New(math.MinInt64, 3); !errors.Is(err, ErrOverflow) {
		t.Errorf("New(MinInt64) err = %v", err)
	}
	x := MustNew(1, math.MaxInt64)
	if _, err := x.Add(MustNew(1, math.MaxInt64-1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("denominator overflow err = %v", err)
	}
}

func TestArithmetic_ClosedUnderCanonicalForm(t *testing.T) {
	values := []Rational{
		Int(0), Int(1), Int(7), MustNew(1, 2), MustNew(2, 3), MustNew(9, 10),
		MustMixed(1, 1, 2), MustMixed(3, 4, 9), MustNew(-5, 6), MustMixed(-2, 1, 7),
	}

	for _, a := range values {
		for _, b := range values {
			ops := map[string]func(Rational) (Rational, error){
				"+": a.Add, "-": a.Sub, "×": a.Mul, "÷": a.Div,
			}
			for sym, op := range ops {
				if sym == "÷" && b.IsZero() {
					continue
				}
				r, err := op(b)
				if err != nil {
					t.Fatalf("%s %s %s: %v", a, sym, b, err)
				}
				checkCanonical(t, r)
			}
		}
	}
}

func checkCanonical(t *testing.T, r Rational) {
	t.Helper()
	d := r.Denominator()
	if d <= 0 {
		t.Errorf("%s: denominator %d not positive", r, d)
	}
	if r.Whole() != 0 && (r.Numerator() < 0 || r.Numerator() >= d) {
		t.Errorf("%s: numerator %d out of [0, %d)", r, r.Numerator(), d)
	}
	if abs(r.Numerator()) >= d && r.Numerator() != 0 {
		t.Errorf("%s: fractional part not proper", r)
	}
	if r.Numerator() == 0 && d != 1 {
		t.Errorf("%s: zero numerator with denominator %d", r, d)
	}
	if g := gcd(abs(r.Numerator()), d); r.Numerator() != 0 && g != 1 {
		t.Errorf("%s: not reduced (gcd %d)", r, g)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		r          Rational
		proper, nn bool
		sign       int
	}{
		{Int(0), true, true, 0},
		{MustNew(2, 3), true, true, 1},
		{MustNew(-2, 3), true, false, -1},
		{Int(6), false, true, 1},
		{MustMixed(1, 1, 2), false, true, 1},
		{MustMixed(-1, 1, 2), false, false, -1},
	}
	for _, tc := range tests {
		if got := tc.r.IsProperFraction(); got != tc.proper {
			t.Errorf("%s.IsProperFraction() = %v", tc.r, got)
		}
		if got := tc.r.IsNonNegative(); got != tc.nn {
			t.Errorf("%s.IsNonNegative() = %v", tc.r, got)
		}
		if got := tc.r.Sign(); got != tc.sign {
			t.Errorf("%s.Sign() = %d", tc.r, got)
		}
	}
}

func TestCmp(t *testing.T) {
	c, err := MustNew(1, 2).Cmp(MustNew(2, 3))
	if err != nil || c != -1 {
		t.Errorf("1/2 cmp 2/3 = %d, %v", c, err)
	}
	c, _ = MustNew(4, 8).Cmp(MustNew(1, 2))
	if c != 0 {
		t.Errorf("4/8 cmp 1/2 = %d", c)
	}
}
