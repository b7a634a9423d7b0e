// SPDX-License-Identifier: EPL-2.0

package deinvert

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ik5/deinvert/internal/audiotest"
	"github.com/ik5/deinvert/invert"
)

func newInverter(t *testing.T, rate, freq float64, filter bool) *invert.Inverter {
	t.Helper()

	inv, err := invert.New(invert.Params{SampleRate: rate, Frequency: freq, Filter: filter})
	if err != nil {
		t.Fatalf("invert.New() error = %v", err)
	}

	return inv
}

func TestPipeline_Incomplete(t *testing.T) {
	t.Parallel()

	p := Pipeline{Source: audiotest.NewBlockSource(nil, 8000)}
	if _, err := p.Run(); !errors.Is(err, ErrIncompletePipeline) {
		t.Errorf("Run() error = %v, want ErrIncompletePipeline", err)
	}
}

func TestPipeline_EmptySource(t *testing.T) {
	t.Parallel()

	sink := &audiotest.CaptureSink{}
	p := Pipeline{
		Source:   audiotest.NewBlockSource(nil, 8000),
		Inverter: newInverter(t, 8000, 1000, true),
		Sink:     sink,
	}

	st, err := p.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("Stats = %+v, want zero", st)
	}
	if len(sink.Samples) != 0 {
		t.Errorf("sink got %d samples, want 0", len(sink.Samples))
	}
	if sink.Closes != 1 {
		t.Errorf("sink closed %d times, want 1", sink.Closes)
	}
}

func TestPipeline_PreservesOrder(t *testing.T) {
	t.Parallel()

	in := make([]float32, 1000)
	for i := range in {
		in[i] = float32(i) / 1000
	}

	// 2000 Hz at 8000 Hz gives a carrier of 1, 0, -1, 0.
	sink := &audiotest.CaptureSink{}
	p := Pipeline{
		Source:   audiotest.NewBlockSource(in, 8000, 3, 17, 1),
		Inverter: newInverter(t, 8000, 2000, false),
		Sink:     sink,
	}

	st, err := p.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if st.Samples != len(in) {
		t.Fatalf("Stats.Samples = %d, want %d", st.Samples, len(in))
	}

	carrier := []float32{1, 0, -1, 0}
	for i, got := range sink.Samples {
		want := in[i] * carrier[i%4]
		if diff := got - want; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("sample %d = %v, want %v", i, got, want)
		}
	}
}

func TestPipeline_BlockSizeInvariance(t *testing.T) {
	t.Parallel()

	in := audiotest.Sine(300, 8000, 0.5, 6000)

	run := func(sizes ...int) ([]float32, Stats) {
		sink := &audiotest.CaptureSink{}
		p := Pipeline{
			Source:   audiotest.NewBlockSource(in, 8000, sizes...),
			Inverter: newInverter(t, 8000, 2632, true),
			Sink:     sink,
		}
		st, err := p.Run()
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		return sink.Samples, st
	}

	want, _ := run(len(in))
	tests := []struct {
		name   string
		sizes  []int
		blocks int
	}{
		{"single samples", []int{1}, 6000},
		{"prime", []int{7}, 858},
		{"power of two", []int{4096}, 2},
		{"mixed", []int{1, 1000, 3, 64}, 22},
	}

	for _, tt := range tests {
		got, st := run(tt.sizes...)
		if st.Blocks != tt.blocks {
			t.Errorf("%s: Stats.Blocks = %d, want %d", tt.name, st.Blocks, tt.blocks)
		}
		if len(got) != len(want) {
			t.Fatalf("%s: got %d samples, want %d", tt.name, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s: sample %d = %v, want %v", tt.name, i, got[i], want[i])
				break
			}
		}
	}
}

func TestPipeline_StopsOnPushFailure(t *testing.T) {
	t.Parallel()

	sink := &audiotest.FailingSink{Capacity: 10}
	p := Pipeline{
		Source:   audiotest.NewBlockSource(audiotest.Sine(300, 8000, 0.5, 100), 8000, 4),
		Inverter: newInverter(t, 8000, 1000, true),
		Sink:     sink,
	}

	st, err := p.Run()
	if !errors.Is(err, ErrSinkFailed) || !errors.Is(err, audiotest.ErrSinkFull) {
		t.Fatalf("Run() error = %v, want ErrSinkFailed wrapping ErrSinkFull", err)
	}
	if st.Samples != 10 {
		t.Errorf("Stats.Samples = %d, want 10", st.Samples)
	}
	if sink.Attempts != 11 {
		t.Errorf("push attempts = %d, want 11", sink.Attempts)
	}
	if sink.Closes != 1 {
		t.Errorf("sink closed %d times, want 1", sink.Closes)
	}
}

func TestPipeline_SourceFailure(t *testing.T) {
	t.Parallel()

	errDecode := errors.New("corrupt frame")
	src := audiotest.NewBlockSource(audiotest.Sine(300, 8000, 0.5, 100), 8000, 10)
	src.Err = errDecode
	src.FailAt = 30

	sink := &audiotest.CaptureSink{}
	p := Pipeline{
		Source:   src,
		Inverter: newInverter(t, 8000, 1000, true),
		Sink:     sink,
	}

	st, err := p.Run()
	if !errors.Is(err, ErrSourceFailed) || !errors.Is(err, errDecode) {
		t.Fatalf("Run() error = %v, want ErrSourceFailed wrapping the decode error", err)
	}
	if st.Samples != 30 || len(sink.Samples) != 30 {
		t.Errorf("pushed %d samples (stats %d), want 30", len(sink.Samples), st.Samples)
	}
	if sink.Closes != 1 {
		t.Errorf("sink closed %d times, want 1", sink.Closes)
	}
}

type closeFailSink struct {
	audiotest.CaptureSink
	err error
}

func (c *closeFailSink) Close() error {
	c.Closes++
	return c.err
}

func TestPipeline_CloseFailure(t *testing.T) {
	t.Parallel()

	errDiskFull := errors.New("disk full")
	sink := &closeFailSink{err: errDiskFull}
	p := Pipeline{
		Source:   audiotest.NewBlockSource(make([]float32, 10), 8000),
		Inverter: newInverter(t, 8000, 1000, true),
		Sink:     sink,
	}

	if _, err := p.Run(); !errors.Is(err, ErrSinkFailed) || !errors.Is(err, errDiskFull) {
		t.Errorf("Run() error = %v, want ErrSinkFailed wrapping the close error", err)
	}
	if sink.Closes != 1 {
		t.Errorf("sink closed %d times, want 1", sink.Closes)
	}
}

// stalledSource hands out empty blocks without ever reporting AtEnd.
type stalledSource struct {
	reads int
}

func (s *stalledSource) ReadBlock() ([]float32, error) {
	s.reads++
	return nil, nil
}

func (s *stalledSource) AtEnd() bool         { return false }
func (s *stalledSource) SampleRate() float64 { return 8000 }

func TestPipeline_EmptyBlockEndsRun(t *testing.T) {
	t.Parallel()

	src := &stalledSource{}
	sink := &audiotest.CaptureSink{}
	p := Pipeline{
		Source:   src,
		Inverter: newInverter(t, 8000, 1000, true),
		Sink:     sink,
	}

	st, err := p.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if st != (Stats{}) {
		t.Errorf("Run() stats = %+v, want zero", st)
	}
	if src.reads != 1 {
		t.Errorf("source read %d times, want 1", src.reads)
	}
	if sink.Closes != 1 {
		t.Errorf("sink closed %d times, want 1", sink.Closes)
	}
}

func TestPipeline_LogsSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := Pipeline{
		Source:   audiotest.NewBlockSource(make([]float32, 50), 8000, 20),
		Inverter: newInverter(t, 8000, 1000, true),
		Sink:     &audiotest.CaptureSink{},
		Logger:   logger,
	}
	if _, err := p.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"pipeline finished", "blocks=3", "samples=50"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

// A 300 Hz tone scrambled around 1000 Hz must come back at 700 Hz.
func TestPipeline_EndToEndMirror(t *testing.T) {
	t.Parallel()

	sink := &audiotest.CaptureSink{}
	p := Pipeline{
		Source:   audiotest.NewBlockSource(audiotest.Sine(300, 8000, 0.5, 16000), 8000, 4096),
		Inverter: newInverter(t, 8000, 1000, true),
		Sink:     sink,
	}
	if _, err := p.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := sink.Samples[4000:12000]
	if got := audiotest.DominantFrequency(out, 8000, 50, 3950, 50); got != 700 {
		t.Errorf("dominant frequency = %v Hz, want 700", got)
	}
	if m700, m1300 := audiotest.ToneMagnitude(out, 700, 8000), audiotest.ToneMagnitude(out, 1300, 8000); m700 < 10*m1300 {
		t.Errorf("700 Hz magnitude %v not 10x above 1300 Hz magnitude %v", m700, m1300)
	}
}

func BenchmarkPipeline_Run(b *testing.B) {
	in := audiotest.Sine(440, 44100, 0.5, 44100)

	b.ReportAllocs()
	for b.Loop() {
		inv, err := invert.New(invert.Params{SampleRate: 44100, Frequency: 2632, Filter: true})
		if err != nil {
			b.Fatalf("invert.New() error = %v", err)
		}
		p := Pipeline{
			Source:   audiotest.NewBlockSource(in, 44100, 4096),
			Inverter: inv,
			Sink:     &audiotest.CaptureSink{Samples: make([]float32, 0, len(in))},
		}
		if _, err := p.Run(); err != nil {
			b.Fatalf("Run() error = %v", err)
		}
	}
}
