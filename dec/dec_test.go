package dec

import (
	"errors"
	"math/big"
	"testing"
)

func TestFloat(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{name: "string", in: "2.5", want: 2.5},
		{name: "int", in: 3, want: 3},
		{name: "float64", in: 0.125, want: 0.125},
		{name: "negative string", in: "-7", want: -7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Float(tc.in)
			if err != nil {
				t.Fatalf("Float: %v", err)
			}

			if got != tc.want {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestFloatRejectsGarbage(t *testing.T) {
	if _, err := Float("not a number"); !errors.Is(err, ErrNotANumber) {
		t.Fatalf("got %v want %v", err, ErrNotANumber)
	}
}

// Parsing a decimal string directly must beat the float64 round-trip:
// 0.1 has no exact binary representation, so the two differ at 200 bits.
func TestBigParsesStringsExactly(t *testing.T) {
	fromString, err := Big("0.1", 200)
	if err != nil {
		t.Fatalf("Big: %v", err)
	}

	viaFloat := new(big.Float).SetPrec(200).SetFloat64(0.1)

	if fromString.Cmp(viaFloat) == 0 {
		t.Fatal("string parse matched the float64 round-trip; expected extra precision")
	}

	tenth, err := Big("0.1", 200)
	if err != nil {
		t.Fatalf("Big: %v", err)
	}

	// 0.1 * 10 at high precision lands back on 1.
	ten := new(big.Float).SetPrec(200).SetInt64(10)
	one := new(big.Float).SetPrec(200).SetInt64(1)

	if new(big.Float).SetPrec(200).Mul(tenth, ten).Cmp(one) != 0 {
		t.Fatal("0.1 * 10 != 1 at 200 bits")
	}
}

func TestBigNumericKinds(t *testing.T) {
	got, err := Big(0.5, 64)
	if err != nil {
		t.Fatalf("Big: %v", err)
	}

	if v, _ := got.Float64(); v != 0.5 {
		t.Fatalf("got %v want 0.5", v)
	}
}

func TestSlices(t *testing.T) {
	fs, err := FloatSlice([]any{1, "2", 3.5})
	if err != nil {
		t.Fatalf("FloatSlice: %v", err)
	}

	for i, want := range []float64{1, 2, 3.5} {
		if fs[i] != want {
			t.Fatalf("fs[%d]: got %v want %v", i, fs[i], want)
		}
	}

	if _, err := FloatSlice([]any{1, "oops"}); !errors.Is(err, ErrNotANumber) {
		t.Fatalf("got %v want %v", err, ErrNotANumber)
	}

	bs, err := BigSlice([]any{"1", 2}, 96)
	if err != nil {
		t.Fatalf("BigSlice: %v", err)
	}

	if v, _ := bs[1].Float64(); v != 2 {
		t.Fatalf("bs[1]: got %v want 2", v)
	}
}
