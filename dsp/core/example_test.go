package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-fshift/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithBlockSize(256),
		core.WithChannels(4),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d channels=%d valid=%v\n",
		cfg.SampleRate, cfg.BlockSize, cfg.Channels, cfg.Validate() == nil)

	// Output:
	// sampleRate=44100 blockSize=256 channels=4 valid=true
}
