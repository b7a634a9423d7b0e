// SPDX-License-Identifier: EPL-2.0

package deinvert

import (
	"fmt"
	"log/slog"

	"github.com/ik5/deinvert/audio"
	"github.com/ik5/deinvert/invert"
)

// Stats summarizes a finished run.
type Stats struct {
	Blocks  int // non-empty blocks read
	Samples int // samples pushed to the sink
}

// Pipeline pulls blocks from Source, descrambles every sample with
// Inverter and pushes the result to Sink, in input order.
//
// Run owns Sink once it starts: the sink is closed on every return path,
// so whatever was buffered before a failure is still flushed.
type Pipeline struct {
	Source   audio.SampleSource
	Inverter *invert.Inverter
	Sink     audio.SampleSink

	// Logger receives one debug record per run. Nil disables logging.
	Logger *slog.Logger
}

// Run streams until the source reports its end or a stage fails. A failed
// push stops the run before the next sample is processed.
func (p *Pipeline) Run() (st Stats, err error) {
	if p.Source == nil || p.Inverter == nil || p.Sink == nil {
		return st, ErrIncompletePipeline
	}

	defer func() {
		if cerr := p.Sink.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close: %w", ErrSinkFailed, cerr)
		}

		if p.Logger != nil {
			p.Logger.Debug("pipeline finished",
				slog.Int("blocks", st.Blocks),
				slog.Int("samples", st.Samples),
				slog.Float64("phase", p.Inverter.Phase()),
				slog.Any("error", err),
			)
		}
	}()

	for !p.Source.AtEnd() {
		block, err := p.Source.ReadBlock()
		if err != nil {
			return st, fmt.Errorf("%w: %w", ErrSourceFailed, err)
		}
		// An empty block means the source is exhausted, whether or not
		// it has set AtEnd yet.
		if len(block) == 0 {
			break
		}
		st.Blocks++

		for _, x := range block {
			if err := p.Sink.Push(p.Inverter.Process(x)); err != nil {
				return st, fmt.Errorf("%w: sample %d: %w", ErrSinkFailed, st.Samples, err)
			}
			st.Samples++
		}
	}

	return st, nil
}
