package window

import (
	"errors"
	"math"
	"testing"
)

func TestGenerateFinite(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman} {
		t.Run(typ.String(), func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}
		})
	}
}

func TestGenerateInvalidLength(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("Generate(0) = %v, want nil", w)
	}

	if _, err := Hann(-1); err == nil {
		t.Fatal("expected error for negative size")
	}
}

func TestHannSymmetricMatchesSquaredSine(t *testing.T) {
	const n = 1024

	w, err := Hann(n)
	if err != nil {
		t.Fatalf("Hann() error = %v", err)
	}

	for i, v := range w {
		s := math.Sin(math.Pi * float64(i) / float64(n-1))
		if d := math.Abs(v - s*s); d > 1e-12 {
			t.Fatalf("w[%d] = %.15f, want %.15f", i, v, s*s)
		}
	}

	if w[0] > 1e-15 || w[n-1] > 1e-15 {
		t.Fatalf("endpoints not zero: %g %g", w[0], w[n-1])
	}
}

func TestHannPeriodic(t *testing.T) {
	w, err := Hann(8, WithPeriodic())
	if err != nil {
		t.Fatalf("Hann() error = %v", err)
	}

	if math.Abs(w[4]-1) > 1e-15 {
		t.Fatalf("periodic center = %g, want 1", w[4])
	}

	for i := 1; i < 8; i++ {
		if d := math.Abs(w[i] - w[8-i]); d > 1e-15 {
			t.Fatalf("periodic symmetry broken at %d: %g vs %g", i, w[i], w[8-i])
		}
	}
}

func TestSquared(t *testing.T) {
	got := Squared([]float64{0, 0.5, -2})
	want := []float64{0, 0.25, 4}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Squared()[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestApplyCoefficientsInPlace(t *testing.T) {
	buf := []float64{1, 2, 3}
	if err := ApplyCoefficientsInPlace(buf, []float64{0.5, 0.5, 2}); err != nil {
		t.Fatalf("ApplyCoefficientsInPlace() error = %v", err)
	}

	want := []float64{0.5, 1, 6}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %g, want %g", i, buf[i], want[i])
		}
	}

	if err := ApplyCoefficientsInPlace(buf, []float64{1}); !errors.Is(err, errMismatchedLength) {
		t.Fatalf("expected errMismatchedLength, got %v", err)
	}
}

func TestOverlapAddGain(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []float64
		hop    int
		want   float64
		ripple float64
	}{
		{
			name:   "periodic hann half overlap",
			coeffs: Generate(TypeHann, 1024, WithPeriodic()),
			hop:    512,
			want:   1,
		},
		{
			name:   "periodic hann squared quarter hop",
			coeffs: Squared(Generate(TypeHann, 1024, WithPeriodic())),
			hop:    256,
			want:   1.5,
		},
		{
			// sum of sin^4 over one full period of 1023 samples is 3/8 * 1023.
			name:   "symmetric hann squared quarter hop",
			coeffs: Squared(Generate(TypeHann, 1024)),
			hop:    256,
			want:   3.0 / 8.0 * 1023.0 / 256.0,
			ripple: 1e-4,
		},
		{
			name:   "rectangular no overlap",
			coeffs: Generate(TypeRectangular, 64),
			hop:    64,
			want:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OverlapAddGain(tt.coeffs, tt.hop)
			if err != nil {
				t.Fatalf("OverlapAddGain() error = %v", err)
			}

			if math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("OverlapAddGain() = %.15f, want %.15f", got, tt.want)
			}

			ripple, err := OverlapAddRipple(tt.coeffs, tt.hop)
			if err != nil {
				t.Fatalf("OverlapAddRipple() error = %v", err)
			}

			if ripple > tt.ripple+1e-12 {
				t.Fatalf("OverlapAddRipple() = %g, want <= %g", ripple, tt.ripple)
			}
		})
	}
}

func TestOverlapAddGainValidation(t *testing.T) {
	if _, err := OverlapAddGain(nil, 1); !errors.Is(err, errEmptyCoeffs) {
		t.Fatalf("expected errEmptyCoeffs, got %v", err)
	}

	for _, hop := range []int{0, -4, 3, 2048} {
		if _, err := OverlapAddGain(make([]float64, 1024), hop); !errors.Is(err, errInvalidHop) {
			t.Fatalf("hop %d: expected errInvalidHop, got %v", hop, err)
		}
	}

	if _, err := OverlapAddRipple(make([]float64, 16), 4); !errors.Is(err, errZeroCoherentGain) {
		t.Fatalf("expected errZeroCoherentGain, got %v", err)
	}
}
