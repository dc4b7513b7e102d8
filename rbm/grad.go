package rbm

import (
	"math/rand"

	"github.com/kumarsameer/rdbn/blas64/tensor/2d"
	"github.com/kumarsameer/rdbn/blas64/vector"
	"github.com/kumarsameer/rdbn/mathx/randx"
	"gonum.org/v1/gonum/blas/blas64"
)

// GradBuffer accumulates the weight and bias gradient sums of one
// minibatch, or of one shard of a minibatch during parallel execution.
// BatchSize is the divisor used when the buffer is applied; it is the
// declared minibatch size even when the buffer only saw a shard's worth
// of examples. UpdateInputBias marks the single buffer per minibatch
// that carries the input-bias update.
type GradBuffer struct {
	DeltaWeight     blas64.General
	DeltaBiasInput  blas64.Vector
	DeltaBiasOutput blas64.Vector
	BatchSize       int
	UpdateInputBias bool
}

// NewGradBuffer returns a zeroed accumulator shaped like the model's
// parameters, with BatchSize taken from the model.
func (m *Model) NewGradBuffer() *GradBuffer {
	return &GradBuffer{
		DeltaWeight:     tensor2d.NewZerosLike(m.Weight),
		DeltaBiasInput:  vector.NewZerosLike(m.BiasInput),
		DeltaBiasOutput: vector.NewZerosLike(m.BiasOutput),
		BatchSize:       m.BatchSize,
	}
}

// Add merges other into g element-wise. BatchSize and UpdateInputBias
// are left untouched.
func (g *GradBuffer) Add(other *GradBuffer) {
	tensor2d.Axpy(1.0, other.DeltaWeight, g.DeltaWeight)
	blas64.Axpy(1.0, other.DeltaBiasInput, g.DeltaBiasInput)
	blas64.Axpy(1.0, other.DeltaBiasOutput, g.DeltaBiasOutput)
}

// accumulateExample runs CD-k Gibbs sampling for one training example
// and adds its gradient contribution into g.
//
// The positive phase <v_i h_j>_data uses a stochastically binarized
// hidden state, one Bernoulli draw per hidden unit; the negative phase
// <v_i h_j>_recon uses the raw reconstructed probabilities of both
// layers.
func (m *Model) accumulateExample(v0 blas64.Vector, g *GradBuffer, rng *rand.Rand) {
	h0 := m.ClampInput(v0)
	hRecon := vector.Clone(h0)
	var vRecon blas64.Vector
	for cd := 0; cd < m.CDN; cd++ {
		vRecon = m.ClampOutput(hRecon)
		hRecon = m.ClampInput(vRecon)
	}

	h0Sampled := vector.NewZerosLike(h0)
	for i, p := range h0.Data {
		h0Sampled.Data[i] = randx.UnitState(p, rng)
	}

	blas64.Ger(1.0, h0Sampled, v0, g.DeltaWeight)
	blas64.Ger(-1.0, hRecon, vRecon, g.DeltaWeight)

	blas64.Axpy(1.0, h0, g.DeltaBiasOutput)
	blas64.Axpy(-1.0, hRecon, g.DeltaBiasOutput)

	// The input-bias term is per example, not per (i, j) pair.
	blas64.Axpy(1.0, v0, g.DeltaBiasInput)
	blas64.Axpy(-1.0, vRecon, g.DeltaBiasInput)
}
