package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"
	"phish-lab/domain"
	"phish-lab/errors"

	"github.com/samber/lo"
)

const (
	DefaultTestSize  = 0.2
	DefaultSplitSeed = 42
)

type Split struct {
	Train []domain.Sample
	Test  []domain.Sample
}

// SplitIndices shuffles 0..n-1 with a fixed seed and holds out the first
// ceil(testSize*n) positions. The same n, size and seed always yield the same
// partition.
func SplitIndices(n int, testSize float64, seed uint64) (train, test []int, err error) {
	if !(testSize > 0 && testSize < 1) {
		return nil, nil, fmt.Errorf("%w: test size %v not in (0, 1)", errors.ErrInvalidSplit, testSize)
	}
	nTest := int(math.Ceil(testSize * float64(n)))
	nTrain := n - nTest
	if nTest == 0 || nTrain == 0 {
		return nil, nil, fmt.Errorf("%w: %d samples give %d train and %d test",
			errors.ErrInvalidSplit, n, nTrain, nTest)
	}

	perm := rand.New(rand.NewPCG(seed, 0)).Perm(n)
	return perm[nTest:], perm[:nTest], nil
}

func TrainTestSplit(samples []domain.Sample, testSize float64, seed uint64) (Split, error) {
	train, test, err := SplitIndices(len(samples), testSize, seed)
	if err != nil {
		return Split{}, err
	}
	return Split{
		Train: Pick(samples, train),
		Test:  Pick(samples, test),
	}, nil
}

// Pick returns the elements of items at the given positions, in that order.
func Pick[T any](items []T, indices []int) []T {
	return lo.Map(indices, func(idx int, _ int) T {
		return items[idx]
	})
}
