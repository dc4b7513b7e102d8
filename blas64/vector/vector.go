package vector

import (
	"math/rand"
	"slices"

	"gonum.org/v1/gonum/blas/blas64"
)

func NewZeros(n int) blas64.Vector {
	return blas64.Vector{
		N:    n,
		Inc:  1,
		Data: make([]float64, n),
	}
}

func NewZerosLike(vec blas64.Vector) blas64.Vector {
	return NewZeros(vec.N)
}

func NewGaussian(n int, std float64, rng *rand.Rand) blas64.Vector {
	vec := NewZeros(n)
	for i := range vec.Data {
		vec.Data[i] = rng.NormFloat64() * std
	}
	return vec
}

func Clone(vec blas64.Vector) blas64.Vector {
	return blas64.Vector{
		N:    vec.N,
		Inc:  vec.Inc,
		Data: slices.Clone(vec.Data),
	}
}
