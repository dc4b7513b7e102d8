package vector_test

import (
	"testing"

	"github.com/kumarsameer/rdbn/blas64/vector"
	"github.com/kumarsameer/rdbn/mathx/randx"
	"gonum.org/v1/gonum/blas/blas64"
)

func TestNewZeros(t *testing.T) {
	result := vector.NewZeros(7)
	if result.N != 7 || result.Inc != 1 || len(result.Data) != 7 {
		t.Errorf("NewZeros(7) = %v", result)
	}
	for _, e := range result.Data {
		if e != 0.0 {
			t.Errorf("NewZeros(7) = %v", result)
		}
	}
}

func TestNewZerosLike(t *testing.T) {
	vec := blas64.Vector{
		N:    3,
		Inc:  1,
		Data: []float64{100.0, -200.0, 300.0},
	}
	result := vector.NewZerosLike(vec)
	if result.N != 3 {
		t.Errorf("NewZerosLike = %v", result)
	}
}

func TestNewGaussian(t *testing.T) {
	rng := randx.NewMt19937(1)
	result := vector.NewGaussian(10, 0.01, rng)
	allZero := true
	for _, e := range result.Data {
		if e != 0.0 {
			allZero = false
		}
	}
	if allZero {
		t.Errorf("NewGaussian = %v", result)
	}
}

func TestClone(t *testing.T) {
	vec := blas64.Vector{
		N:    4,
		Inc:  1,
		Data: []float64{-1.0, -2.0, 1.0, 2.0},
	}

	result := vector.Clone(vec)
	result.Data[0] = 1000.0

	if vec.Data[0] != -1.0 {
		t.Errorf("Cloneが元のベクトルを共有しています。")
	}
}
