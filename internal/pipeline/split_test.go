package pipeline

import (
	"errors"
	"math"
	"reflect"
	"sort"
	"testing"
)

func makeLabels(zeros, ones int) []int {
	labels := make([]int, 0, zeros+ones)
	for i := 0; i < zeros; i++ {
		labels = append(labels, 0)
	}
	for i := 0; i < ones; i++ {
		labels = append(labels, 1)
	}
	return labels
}

func classCounts(labels []int, idx []int) map[int]int {
	counts := make(map[int]int)
	for _, i := range idx {
		counts[labels[i]]++
	}
	return counts
}

func TestStratifiedSplitSizes(t *testing.T) {
	labels := makeLabels(60, 40)

	split, err := StratifiedSplit(labels, 0.30, 42)
	if err != nil {
		t.Fatalf("StratifiedSplit() error = %v", err)
	}

	total := len(split.Train) + len(split.Val) + len(split.Test)
	if total != len(labels) {
		t.Errorf("split covers %d samples, want %d", total, len(labels))
	}
	if diff := len(split.Val) - len(split.Test); diff < -1 || diff > 1 {
		t.Errorf("val size %d and test size %d differ by more than 1", len(split.Val), len(split.Test))
	}
	if len(split.Train) != 70 {
		t.Errorf("train size = %d, want 70", len(split.Train))
	}

	// No index may appear twice across partitions.
	seen := make(map[int]bool)
	for _, part := range [][]int{split.Train, split.Val, split.Test} {
		for _, i := range part {
			if seen[i] {
				t.Fatalf("index %d assigned to more than one partition", i)
			}
			seen[i] = true
		}
	}
}

func TestStratifiedSplitPreservesProportions(t *testing.T) {
	labels := makeLabels(300, 100) // 25% positives

	split, err := StratifiedSplit(labels, 0.30, 42)
	if err != nil {
		t.Fatalf("StratifiedSplit() error = %v", err)
	}

	for name, part := range map[string][]int{"train": split.Train, "val": split.Val, "test": split.Test} {
		counts := classCounts(labels, part)
		frac := float64(counts[1]) / float64(len(part))
		if math.Abs(frac-0.25) > 0.05 {
			t.Errorf("%s positive fraction = %v, want ~0.25", name, frac)
		}
	}
}

func TestStratifiedSplitDeterministic(t *testing.T) {
	labels := makeLabels(40, 30)

	s1, err := StratifiedSplit(labels, 0.30, 42)
	if err != nil {
		t.Fatalf("StratifiedSplit() error = %v", err)
	}
	s2, err := StratifiedSplit(labels, 0.30, 42)
	if err != nil {
		t.Fatalf("StratifiedSplit() error = %v", err)
	}

	if !reflect.DeepEqual(s1, s2) {
		t.Error("same seed must produce an identical split")
	}

	s3, err := StratifiedSplit(labels, 0.30, 7)
	if err != nil {
		t.Fatalf("StratifiedSplit() error = %v", err)
	}
	if reflect.DeepEqual(sorted(s1.Train), sorted(s3.Train)) {
		t.Log("different seeds produced the same train set; suspicious but not impossible")
	}
}

func sorted(idx []int) []int {
	out := append([]int(nil), idx...)
	sort.Ints(out)
	return out
}

func TestStratifiedSplitInfeasible(t *testing.T) {
	tests := []struct {
		name   string
		labels []int
	}{
		{name: "Empty", labels: nil},
		{name: "TinyClass", labels: makeLabels(50, 2)},
		{name: "SingleSampleClass", labels: makeLabels(20, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := StratifiedSplit(tt.labels, 0.30, 42)
			if !errors.Is(err, ErrStratify) {
				t.Errorf("StratifiedSplit() error = %v, want ErrStratify", err)
			}
		})
	}
}

func TestTake(t *testing.T) {
	X := [][]float64{{0}, {1}, {2}, {3}}
	y := []int{10, 11, 12, 13}

	if got := Take(X, []int{3, 1}); !reflect.DeepEqual(got, [][]float64{{3}, {1}}) {
		t.Errorf("Take() = %v", got)
	}
	if got := TakeLabels(y, []int{0, 2}); !reflect.DeepEqual(got, []int{10, 12}) {
		t.Errorf("TakeLabels() = %v", got)
	}
}
