package rbm

import (
	"fmt"
	"sync"

	"github.com/sw965/omw/parallel"
	"gonum.org/v1/gonum/floats"
)

// MeanReconstructionError is the mean squared error between each
// example and its reconstruction after one deterministic Gibbs
// half-cycle. No unit states are sampled, so the result is
// deterministic for a fixed worker count.
func (m *Model) MeanReconstructionError(data []float64, p int) (float64, error) {
	ni := m.NInputs()
	if len(data)%ni != 0 {
		return 0.0, fmt.Errorf("訓練データの長さが入力数の倍数ではありません。")
	}
	n := len(data) / ni
	if n == 0 {
		return 0.0, fmt.Errorf("データ数が0である為、再構成誤差を計算出来ません。")
	}
	if p <= 0 {
		p = 1
	}

	sums := make([]float64, p)
	var wg sync.WaitGroup
	for workerIdx, idxs := range parallel.DistributeIndicesEvenly(n, p) {
		wg.Add(1)
		go func(workerIdx int, idxs []int) {
			defer wg.Done()
			sum := 0.0
			for _, idx := range idxs {
				v0 := m.exampleAt(data, idx)
				v1 := m.ClampOutput(m.ClampInput(v0))
				floats.Sub(v1.Data, v0.Data)
				sum += floats.Dot(v1.Data, v1.Data)
			}
			sums[workerIdx] = sum
		}(workerIdx, idxs)
	}
	wg.Wait()

	total := 0.0
	for _, sum := range sums {
		total += sum
	}
	return total / float64(n), nil
}
