package window

import "fmt"

// OverlapAddGain returns the mean of the overlap-added window sum
//
//	s[n] = coeffs[n] + coeffs[n+hop] + coeffs[n+2*hop] + ..., 0 <= n < hop
//
// which is the gain a stream picks up when consecutive frames weighted by
// coeffs are summed at the given hop. For frames windowed at analysis and at
// synthesis pass [Squared] coefficients; 1/gain is then the normalization
// that makes the reconstruction unity.
//
// len(coeffs) must be a whole multiple of hop.
func OverlapAddGain(coeffs []float64, hop int) (float64, error) {
	sums, err := overlapSums(coeffs, hop)
	if err != nil {
		return 0, err
	}

	mean := 0.0
	for _, s := range sums {
		mean += s
	}

	return mean / float64(len(sums)), nil
}

// OverlapAddRipple returns the largest relative deviation of the
// overlap-added window sum from its mean. Zero means coeffs satisfy the
// constant-overlap-add condition at hop exactly.
func OverlapAddRipple(coeffs []float64, hop int) (float64, error) {
	sums, err := overlapSums(coeffs, hop)
	if err != nil {
		return 0, err
	}

	mean := 0.0
	for _, s := range sums {
		mean += s
	}

	mean /= float64(len(sums))
	if mean == 0 {
		return 0, errZeroCoherentGain
	}

	ripple := 0.0
	for _, s := range sums {
		ripple = max(ripple, abs(s/mean-1))
	}

	return ripple, nil
}

func overlapSums(coeffs []float64, hop int) ([]float64, error) {
	if len(coeffs) == 0 {
		return nil, errEmptyCoeffs
	}

	if hop <= 0 || hop > len(coeffs) || len(coeffs)%hop != 0 {
		return nil, fmt.Errorf("%w: hop %d, length %d", errInvalidHop, hop, len(coeffs))
	}

	sums := make([]float64, hop)
	for i, c := range coeffs {
		sums[i%hop] += c
	}

	return sums, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
