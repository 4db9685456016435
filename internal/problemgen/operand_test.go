package problemgen

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestDrawOperand_Bounds(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, bound := range []int{3, 5, 10} {
		for i := 0; i < 500; i++ {
			v, err := drawOperand(r, bound)
			if err != nil {
				t.Fatalf("bound %d: %v", bound, err)
			}
			if v.Sign() <= 0 {
				t.Fatalf("bound %d: drew %s, want positive", bound, v)
			}
			if v.Whole() > int64(bound-1) {
				t.Fatalf("bound %d: whole part of %s too large", bound, v)
			}
			if v.Denominator() > int64(bound-1) {
				t.Fatalf("bound %d: denominator of %s too large", bound, v)
			}
		}
	}
}

func TestDrawOperand_RangeTwo(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	if _, err := drawMixed(r, 2); !errors.Is(err, errEmptyDraw) {
		t.Errorf("drawMixed(2) err = %v, want errEmptyDraw", err)
	}

	naturals := 0
	for i := 0; i < 300; i++ {
		v, err := drawFraction(r, 2)
		if err != nil {
			if !errors.Is(err, errEmptyDraw) {
				t.Fatalf("unexpected %v", err)
			}
			continue
		}
		if v.String() != "1" {
			t.Fatalf("drawFraction(2) = %s, want 1", v)
		}
		naturals++
	}
	if naturals == 0 {
		t.Error("expected some naturals from 300 draws")
	}
}

func TestBetween(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 200; i++ {
		n, err := between(r, 2, 4)
		if err != nil || n < 2 || n > 4 {
			t.Fatalf("between(2, 4) = %d, %v", n, err)
		}
	}
	if n, err := between(r, 3, 3); err != nil || n != 3 {
		t.Errorf("between(3, 3) = %d, %v", n, err)
	}
	if _, err := between(r, 2, 1); !errors.Is(err, errEmptyDraw) {
		t.Errorf("between(2, 1) err = %v", err)
	}
}
