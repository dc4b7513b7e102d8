package randx_test

import (
	"testing"

	"github.com/kumarsameer/rdbn/mathx/randx"
)

func TestNewMt19937(t *testing.T) {
	rng1 := randx.NewMt19937(12345)
	rng2 := randx.NewMt19937(12345)
	for i := 0; i < 100; i++ {
		if rng1.Float64() != rng2.Float64() {
			t.Fatalf("同じシードの生成列が一致しません。i = %d", i)
		}
	}
}

func TestUnitState(t *testing.T) {
	rng := randx.NewMt19937(1)

	if randx.UnitState(1.0, rng) != 1.0 {
		t.Errorf("UnitState(1.0) != 1.0")
	}
	if randx.UnitState(0.0, rng) != 0.0 {
		t.Errorf("UnitState(0.0) != 0.0")
	}

	n := 10000
	sum := 0.0
	for i := 0; i < n; i++ {
		state := randx.UnitState(0.5, rng)
		if state != 0.0 && state != 1.0 {
			t.Fatalf("UnitState = %v", state)
		}
		sum += state
	}
	mean := sum / float64(n)
	if mean < 0.45 || mean > 0.55 {
		t.Errorf("UnitState(0.5)の平均 = %v", mean)
	}
}
