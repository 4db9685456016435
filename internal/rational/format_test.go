package rational

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Rational
	}{
		{"3", Int(3)},
		{"0", Int(0)},
		{"5/6", MustNew(5, 6)},
		{"2/4", MustNew(1, 2)},
		{"1'1/2", MustMixed(1, 1, 2)},
		{" 7'0/3 ", Int(7)},
		{"4/2", Int(2)},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{"", ErrNumberFormat},
		{"abc", ErrNumberFormat},
		{"-3", ErrNumberFormat},
		{"1/", ErrNumberFormat},
		{"1'2", ErrNumberFormat},
		{"1/2/3", ErrNumberFormat},
		{"1'1'1/2", ErrNumberFormat},
		{"99999999999999999999", ErrNumberFormat},
		{"3/0", ErrDivisionByZero},
	}
	for _, tc := range tests {
		_, err := Parse(tc.in)
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("Parse(%q) err = %v, want %v", tc.in, err, tc.wantErr)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for w := int64(0); w < 6; w++ {
		for d := int64(1); d < 12; d++ {
			for n := int64(0); n < d; n++ {
				r := MustMixed(w, n, d)
				s := r.String()
				back, err := Parse(s)
				if err != nil {
					t.Fatalf("Parse(%q): %v", s, err)
				}
				if back.String() != s || back != r {
					t.Errorf("round trip %q -> %q", s, back)
				}
			}
		}
	}
}

func TestDecimal(t *testing.T) {
	tests := []struct {
		r      Rational
		places int32
		want   string
	}{
		{MustNew(5, 6), 4, "0.8333"},
		{MustMixed(2, 1, 2), 2, "2.5"},
		{MustNew(2, 3), 2, "0.67"},
		{Int(4), 3, "4"},
	}
	for _, tc := range tests {
		d, err := tc.r.Decimal(tc.places)
		if err != nil {
			t.Fatalf("Decimal(%s): %v", tc.r, err)
		}
		if got := d.String(); got != tc.want {
			t.Errorf("%s.Decimal(%d) = %s, want %s", tc.r, tc.places, got, tc.want)
		}
	}
}
