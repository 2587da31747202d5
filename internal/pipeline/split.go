package pipeline

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// ErrStratify reports that a label class is too small to stratify the
// requested split. It is fatal: the caller must not proceed on a
// non-stratified dataset silently.
var ErrStratify = errors.New("stratified split infeasible")

// Split holds sample indices for each partition of a dataset.
type Split struct {
	Train []int
	Val   []int
	Test  []int
}

// StratifiedSplit partitions sample indices 70/15/15 by label, two-stage:
// first a stratified holdout of holdoutFrac (0.30), then the holdout halved
// (stratified) into validation and test. The shuffle is seeded, so identical
// input yields an identical split.
func StratifiedSplit(labels []int, holdoutFrac float64, seed int64) (*Split, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrStratify)
	}
	if holdoutFrac <= 0 || holdoutFrac >= 1 {
		return nil, fmt.Errorf("holdout fraction %v out of range (0,1)", holdoutFrac)
	}

	byClass := make(map[int][]int)
	for i, y := range labels {
		byClass[y] = append(byClass[y], i)
	}

	// Deterministic class order: one shared RNG consumed class by class.
	classes := make([]int, 0, len(byClass))
	for c := range byClass {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	rng := rand.New(rand.NewSource(seed))
	split := &Split{}

	// Balance odd holdout counts across classes so val and test stay
	// within one sample of each other overall.
	extraToVal := false

	for _, c := range classes {
		idx := byClass[c]
		n := len(idx)

		nHold := int(math.Round(holdoutFrac * float64(n)))
		if nHold < 2 {
			return nil, fmt.Errorf("%w: class %d has %d samples, need a holdout of at least 2", ErrStratify, c, n)
		}
		if n-nHold < 1 {
			return nil, fmt.Errorf("%w: class %d has no samples left for training", ErrStratify, c)
		}

		rng.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

		hold := idx[:nHold]
		split.Train = append(split.Train, idx[nHold:]...)

		nVal := len(hold) / 2
		if len(hold)%2 == 1 {
			if extraToVal {
				nVal++
			}
			extraToVal = !extraToVal
		}
		split.Val = append(split.Val, hold[:nVal]...)
		split.Test = append(split.Test, hold[nVal:]...)
	}

	return split, nil
}

// Take materializes the rows of X selected by idx, preserving idx order.
func Take(X [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for i, j := range idx {
		out[i] = X[j]
	}
	return out
}

// TakeLabels does the same for a label vector.
func TakeLabels(y []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, j := range idx {
		out[i] = y[j]
	}
	return out
}
