package rbm

import (
	"fmt"
	"sync"

	"github.com/kumarsameer/rdbn/blas64/tensor/2d"
	"github.com/kumarsameer/rdbn/mathx/randx"
	"gonum.org/v1/gonum/blas/blas64"
)

// ShardSizes splits batchSize contiguous examples into p ordered shards.
// Every shard gets floor(batchSize/p) examples and the last shard
// absorbs the remainder, so the sizes always sum to batchSize.
func ShardSizes(batchSize, p int) []int {
	if p <= 0 {
		return []int{batchSize}
	}
	per := batchSize / p
	sizes := make([]int, p)
	for i := 0; i < p-1; i++ {
		sizes[i] = per
	}
	sizes[p-1] = batchSize - (p-1)*per
	return sizes
}

// partialMinibatch accumulates the gradient contributions of n
// contiguous examples into g. pos is the sampling-stream position of
// the first example.
func (m *Model) partialMinibatch(batch []float64, n int, pos int64, g *GradBuffer) {
	for k := 0; k < n; k++ {
		v0 := m.exampleAt(batch, k)
		rng := randx.NewMt19937(m.SampleSeed + pos + int64(k))
		m.accumulateExample(v0, g, rng)
	}
}

// InitialMomentumStep decays the velocity and advances the weights
// speculatively along it, before the minibatch gradient is measured.
// Nesterov momentum as adapted by Sutskever (thesis pp. 75, eq.
// 7.10-7.11, first halves).
func (m *Model) InitialMomentumStep() {
	tensor2d.Scal(m.MomentumDecay, m.Momentum)
	tensor2d.Axpy(1.0, m.Momentum, m.Weight)
}

// ApplyGrad consumes a reduced accumulator and steps the parameters by
// LearningRate * delta / BatchSize. In momentum mode the same step also
// corrects the velocity (eq. 7.10-7.11, second halves). Biases never
// carry velocity; the input bias is only applied when the accumulator
// is its designated contributor.
func (m *Model) ApplyGrad(g *GradBuffer) {
	scale := m.LearningRate / float64(g.BatchSize)
	tensor2d.Axpy(scale, g.DeltaWeight, m.Weight)
	if m.UseMomentum {
		tensor2d.Axpy(scale, g.DeltaWeight, m.Momentum)
	}
	blas64.Axpy(scale, g.DeltaBiasOutput, m.BiasOutput)
	if g.UpdateInputBias {
		blas64.Axpy(scale, g.DeltaBiasInput, m.BiasInput)
	}
}

// MiniBatch runs one parameter update over BatchSize contiguous
// examples. pos is the sampling-stream position of the batch's first
// example (Train passes epoch*nExamples + batchStart). p is the worker
// count; p <= 0 runs inline on a single shard with no goroutines,
// producing the same update as p = 1.
//
// The model is read-only while the workers run; it is mutated only by
// the serial half-steps bracketing the fan-out.
func (m *Model) MiniBatch(batch []float64, pos int64, p int) error {
	if err := m.validate(); err != nil {
		return err
	}
	ni := m.NInputs()
	if len(batch) != m.BatchSize*ni {
		return fmt.Errorf("ミニバッチの長さがバッチサイズ×入力数と一致しません。")
	}

	// Must complete before any worker reads Weight.
	if m.UseMomentum {
		m.InitialMomentumStep()
	}

	if p <= 0 {
		g := m.NewGradBuffer()
		g.UpdateInputBias = true
		m.partialMinibatch(batch, m.BatchSize, pos, g)
		m.ApplyGrad(g)
		return nil
	}

	sizes := ShardSizes(m.BatchSize, p)
	grads := make([]*GradBuffer, p)
	for i := range grads {
		grads[i] = m.NewGradBuffer()
	}
	grads[0].UpdateInputBias = true

	var wg sync.WaitGroup
	start := 0
	for i, size := range sizes {
		// p > BatchSize leaves leading shards empty; nothing to spawn.
		if size == 0 {
			continue
		}
		wg.Add(1)
		go func(shard []float64, n int, shardPos int64, g *GradBuffer) {
			defer wg.Done()
			m.partialMinibatch(shard, n, shardPos, g)
		}(batch[start*ni:(start+size)*ni], size, pos+int64(start), grads[i])
		start += size
	}
	wg.Wait()

	// Reduce in ascending shard order, then apply exactly once.
	for i := 1; i < p; i++ {
		grads[0].Add(grads[i])
	}
	m.ApplyGrad(grads[0])
	return nil
}

// Train walks the training buffer in BatchSize strides for nEpochs
// passes, in the same order every epoch. Trailing examples beyond the
// last full minibatch are ignored.
func (m *Model) Train(data []float64, nEpochs, p int) error {
	if err := m.validate(); err != nil {
		return err
	}
	ni := m.NInputs()
	if len(data)%ni != 0 {
		return fmt.Errorf("訓練データの長さが入力数の倍数ではありません。")
	}
	n := len(data) / ni
	if n < m.BatchSize {
		return fmt.Errorf("データ数 < バッチサイズである為、モデルの訓練を出来ません。")
	}
	if nEpochs <= 0 {
		return fmt.Errorf("エポック数が0以下である為、モデルの訓練を開始出来ません。")
	}

	iters := n / m.BatchSize
	for e := 0; e < nEpochs; e++ {
		for j := 0; j < iters; j++ {
			start := j * m.BatchSize
			batch := data[start*ni : (start+m.BatchSize)*ni]
			pos := int64(e)*int64(n) + int64(start)
			if err := m.MiniBatch(batch, pos, p); err != nil {
				return err
			}
		}
	}
	return nil
}
