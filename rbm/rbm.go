package rbm

import (
	"fmt"
	"math/rand"

	"github.com/kumarsameer/rdbn/blas64/tensor/2d"
	"github.com/kumarsameer/rdbn/blas64/vector"
	"github.com/kumarsameer/rdbn/mathx"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Model is a restricted Boltzmann machine. Weight couples every
// (hidden, visible) unit pair and has shape [NOutputs x NInputs].
// Momentum is the velocity state for Nesterov updates and always shares
// Weight's shape, whether or not UseMomentum is set.
//
// The model is mutated in place by training; it must not be copied
// mid-training.
type Model struct {
	Weight     blas64.General
	BiasInput  blas64.Vector
	BiasOutput blas64.Vector
	Momentum   blas64.General

	LearningRate  float64
	CDN           int
	BatchSize     int
	UseMomentum   bool
	MomentumDecay float64

	// SampleSeed is the base of the sampling stream. The example at
	// stream position pos draws its unit states from an MT19937 seeded
	// with SampleSeed+pos, so the draws never depend on how a minibatch
	// was sharded.
	SampleSeed int64
}

func New(nInputs, nOutputs int) (*Model, error) {
	if nInputs <= 0 || nOutputs <= 0 {
		return nil, fmt.Errorf("入力数と出力数は1以上でなければなりません。")
	}
	return &Model{
		Weight:     tensor2d.NewZeros(nOutputs, nInputs),
		BiasInput:  vector.NewZeros(nInputs),
		BiasOutput: vector.NewZeros(nOutputs),
		Momentum:   tensor2d.NewZeros(nOutputs, nInputs),

		LearningRate: 0.1,
		CDN:          1,
		BatchSize:    1,
	}, nil
}

// NewGaussian is New with the initial weights drawn from N(0, std).
func NewGaussian(nInputs, nOutputs int, std float64, rng *rand.Rand) (*Model, error) {
	m, err := New(nInputs, nOutputs)
	if err != nil {
		return nil, err
	}
	m.Weight = tensor2d.NewGaussian(nOutputs, nInputs, std, rng)
	return m, nil
}

func (m *Model) NInputs() int {
	return m.Weight.Cols
}

func (m *Model) NOutputs() int {
	return m.Weight.Rows
}

func (m *Model) validate() error {
	if m.Weight.Rows != m.Momentum.Rows || m.Weight.Cols != m.Momentum.Cols {
		return fmt.Errorf("重み行列とモメンタム行列の形状が一致しません。")
	}
	if m.BiasInput.N != m.NInputs() || m.BiasOutput.N != m.NOutputs() {
		return fmt.Errorf("バイアスベクトルの長さが層のサイズと一致しません。")
	}
	if m.LearningRate <= 0.0 {
		return fmt.Errorf("学習率は0より大きくなければなりません。")
	}
	if m.CDN < 1 {
		return fmt.Errorf("CDのステップ数は1以上でなければなりません。")
	}
	if m.BatchSize < 1 {
		return fmt.Errorf("バッチサイズは1以上でなければなりません。")
	}
	return nil
}

// ClampInput computes the hidden activation probabilities
// p(h_i = 1 | v) = sigmoid(BiasOutput_i + sum_j Weight_ij * v_j).
func (m *Model) ClampInput(v blas64.Vector) blas64.Vector {
	h := vector.Clone(m.BiasOutput)
	blas64.Gemv(blas.NoTrans, 1.0, m.Weight, v, 1.0, h)
	for i, e := range h.Data {
		h.Data[i] = mathx.LogisticSigmoid(e)
	}
	return h
}

// ClampOutput computes the visible activation probabilities
// p(v_j = 1 | h) = sigmoid(BiasInput_j + sum_i h_i * Weight_ij).
func (m *Model) ClampOutput(h blas64.Vector) blas64.Vector {
	v := vector.Clone(m.BiasInput)
	blas64.Gemv(blas.Trans, 1.0, m.Weight, h, 1.0, v)
	for j, e := range v.Data {
		v.Data[j] = mathx.LogisticSigmoid(e)
	}
	return v
}

// exampleAt views example k of a flat buffer without copying.
func (m *Model) exampleAt(data []float64, k int) blas64.Vector {
	ni := m.NInputs()
	return blas64.Vector{
		N:    ni,
		Inc:  1,
		Data: data[k*ni : (k+1)*ni],
	}
}
