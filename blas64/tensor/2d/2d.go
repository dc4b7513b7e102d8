package tensor2d

import (
	"math/rand"
	"slices"

	"gonum.org/v1/gonum/blas/blas64"
)

func NewZeros(rows, cols int) blas64.General {
	return blas64.General{
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
		Data:   make([]float64, rows*cols),
	}
}

func NewZerosLike(gen blas64.General) blas64.General {
	return NewZeros(gen.Rows, gen.Cols)
}

func NewGaussian(rows, cols int, std float64, rng *rand.Rand) blas64.General {
	gen := NewZeros(rows, cols)
	for i := range gen.Data {
		gen.Data[i] = rng.NormFloat64() * std
	}
	return gen
}

func N(gen blas64.General) int {
	return gen.Rows * gen.Cols
}

func Clone(gen blas64.General) blas64.General {
	return blas64.General{
		Rows:   gen.Rows,
		Cols:   gen.Cols,
		Stride: gen.Stride,
		Data:   slices.Clone(gen.Data),
	}
}

func At(gen blas64.General, row, col int) int {
	return row*gen.Stride + col
}

func ToVector(gen blas64.General) blas64.Vector {
	return blas64.Vector{
		N:    N(gen),
		Inc:  1,
		Data: gen.Data,
	}
}

func Scal(alpha float64, gen blas64.General) {
	vec := ToVector(gen)
	blas64.Scal(alpha, vec)
}

func Axpy(alpha float64, x, y blas64.General) {
	xv := ToVector(x)
	yv := ToVector(y)
	blas64.Axpy(alpha, xv, yv)
}
