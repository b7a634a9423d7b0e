// SPDX-License-Identifier: EPL-2.0

package audiotest

import "errors"

// ErrSinkFull is returned by FailingSink once its capacity is used up.
var ErrSinkFull = errors.New("audiotest: sink full")

// CaptureSink records every pushed sample. It implements audio.SampleSink.
type CaptureSink struct {
	Samples []float32
	Closes  int
}

func (c *CaptureSink) Push(sample float32) error {
	c.Samples = append(c.Samples, sample)
	return nil
}

func (c *CaptureSink) Close() error {
	c.Closes++
	return nil
}

// FailingSink accepts Capacity samples and fails every push after that.
type FailingSink struct {
	CaptureSink
	Capacity int
	Attempts int
}

func (f *FailingSink) Push(sample float32) error {
	f.Attempts++
	if len(f.Samples) >= f.Capacity {
		return ErrSinkFull
	}

	return f.CaptureSink.Push(sample)
}
