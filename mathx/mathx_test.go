package mathx_test

import (
	"math"
	"testing"

	"github.com/kumarsameer/rdbn/mathx"
)

func TestLogisticSigmoid(t *testing.T) {
	if mathx.LogisticSigmoid(0.0) != 0.5 {
		t.Errorf("LogisticSigmoid(0) = %v", mathx.LogisticSigmoid(0.0))
	}

	sum := mathx.LogisticSigmoid(2.5) + mathx.LogisticSigmoid(-2.5)
	if math.Abs(sum-1.0) > 1e-15 {
		t.Errorf("LogisticSigmoid(x) + LogisticSigmoid(-x) = %v", sum)
	}

	if mathx.LogisticSigmoid(100.0) > 1.0 || mathx.LogisticSigmoid(-100.0) < 0.0 {
		t.Errorf("LogisticSigmoidが[0, 1]の範囲外です。")
	}
}
