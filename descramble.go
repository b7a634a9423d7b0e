// SPDX-License-Identifier: EPL-2.0

package deinvert

import (
	"fmt"
	"log/slog"

	"github.com/ik5/deinvert/audio"
	"github.com/ik5/deinvert/invert"
	"github.com/ik5/deinvert/utils"
)

// Options configure Descramble. The sample rate always comes from the source.
type Options struct {
	Frequency   float64 // carrier, Hz
	Filter      bool
	FilterOrder int // 0 selects invert.DefaultFilterOrder
	Logger      *slog.Logger
}

// Descramble builds an Inverter at the rate src reports and streams src
// into sink. Invalid parameters are reported before anything is read and
// leave sink untouched; once streaming starts sink is always closed.
func Descramble(src audio.SampleSource, sink audio.SampleSink, opts Options) (Stats, error) {
	inv, err := invert.New(invert.Params{
		SampleRate:  src.SampleRate(),
		Frequency:   opts.Frequency,
		Filter:      opts.Filter,
		FilterOrder: opts.FilterOrder,
	})
	if err != nil {
		return Stats{}, err
	}

	p := Pipeline{
		Source:   src,
		Inverter: inv,
		Sink:     sink,
		Logger:   opts.Logger,
	}

	return p.Run()
}

// DescrambleToMono16 is a convenience wrapper that mixes src down to mono,
// descrambles it at its native rate and collects the result as 16-bit PCM.
//
// The returned rate is the rate of src. src is closed before returning; a
// close failure is reported when nothing failed earlier.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	pcm16, rate, err := deinvert.DescrambleToMono16(src, 2632, true, 4096)
//	if err != nil {
//	    return err
//	}
//	// pcm16 now holds the descrambled mono signal at rate Hz
func DescrambleToMono16(src audio.Source, frequency float64, filter bool, bufferSize int) (pcm []int16, rate int, err error) {
	rate = src.SampleRate()

	br, err := audio.NewBlockReader(audio.NewMonoMixer(src), bufferSize)
	if err != nil {
		_ = src.Close()
		return nil, rate, fmt.Errorf("block reader: %w", err)
	}
	defer func() {
		if cerr := br.Close(); cerr != nil && err == nil {
			pcm, err = nil, fmt.Errorf("close source: %w", cerr)
		}
	}()

	sink := &pcm16Sink{pcm: make([]int16, 0, rate*2)}
	if _, err := Descramble(br, sink, Options{Frequency: frequency, Filter: filter}); err != nil {
		return nil, rate, err
	}

	return sink.pcm, rate, nil
}

// pcm16Sink collects samples in memory.
type pcm16Sink struct {
	pcm []int16
}

func (s *pcm16Sink) Push(sample float32) error {
	s.pcm = append(s.pcm, utils.Float32ToInt16(sample))
	return nil
}

func (s *pcm16Sink) Close() error { return nil }
