// SPDX-License-Identifier: EPL-2.0

package audiotest

// BlockSource serves a fixed sample slice as blocks whose sizes follow a
// repeating pattern. It implements audio.SampleSource.
type BlockSource struct {
	samples []float32
	rate    float64
	sizes   []int
	pos     int
	next    int
	atEnd   bool

	// Err, when set, is returned by the read that would start at FailAt.
	Err    error
	FailAt int
}

// NewBlockSource splits samples into blocks of sizes[0], sizes[1], ...,
// cycling through sizes. Non-positive sizes are treated as 1.
func NewBlockSource(samples []float32, rate float64, sizes ...int) *BlockSource {
	if len(sizes) == 0 {
		sizes = []int{4096}
	}

	return &BlockSource{
		samples: samples,
		rate:    rate,
		sizes:   sizes,
		FailAt:  -1,
	}
}

func (b *BlockSource) SampleRate() float64 { return b.rate }
func (b *BlockSource) AtEnd() bool         { return b.atEnd }

func (b *BlockSource) ReadBlock() ([]float32, error) {
	if b.Err != nil && b.pos >= b.FailAt && b.FailAt >= 0 {
		return nil, b.Err
	}
	if b.pos >= len(b.samples) {
		b.atEnd = true
		return nil, nil
	}

	size := max(b.sizes[b.next%len(b.sizes)], 1)
	b.next++

	end := min(b.pos+size, len(b.samples))
	block := make([]float32, end-b.pos)
	copy(block, b.samples[b.pos:end])
	b.pos = end

	return block, nil
}
