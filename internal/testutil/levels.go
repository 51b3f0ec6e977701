package testutil

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// RMS returns the root-mean-square level of sig.
func RMS(sig []float64) float64 {
	if len(sig) == 0 {
		return 0
	}

	sq := make([]float64, len(sig))
	vecmath.MulBlock(sq, sig, sig)

	sum := 0.0
	for _, v := range sq {
		sum += v
	}

	return math.Sqrt(sum / float64(len(sig)))
}
