package modulation

import (
	"testing"

	"github.com/cwbudde/algo-fshift/internal/testutil"
)

func benchmarkProcess(b *testing.B, blockSize, channels int) {
	f, err := NewFrequencyShifter(48000,
		WithFrequencyShiftHz(120),
		WithOutputChannels(channels),
	)
	if err != nil {
		b.Fatalf("NewFrequencyShifter() error = %v", err)
	}

	input := testutil.DeterministicSine(700, 48000, 1, blockSize)
	output := testutil.Channels(channels, blockSize)

	b.ReportAllocs()
	b.SetBytes(int64(blockSize * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Process(input, output)
	}
}

func BenchmarkFrequencyShifterProcess64Mono(b *testing.B) { benchmarkProcess(b, 64, 1) }
func BenchmarkFrequencyShifterProcess1024Stereo(b *testing.B) { benchmarkProcess(b, 1024, 2) }
func BenchmarkFrequencyShifterProcess4096Octo(b *testing.B) { benchmarkProcess(b, 4096, 8) }

func BenchmarkAnalyticFIFOPush(b *testing.B) {
	w, err := hannTable()
	if err != nil {
		b.Fatalf("hannTable() error = %v", err)
	}
	f, err := newAnalyticFIFO(w)
	if err != nil {
		b.Fatalf("newAnalyticFIFO() error = %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.push(float64(i & 1))
	}
}
