package ml

import "fmt"

// Tree is a single regression tree in flattened array form. Internal nodes
// carry a feature index and threshold; leaves have ChildrenLeft[i] == -1 and
// their prediction in Value[i].
type Tree struct {
	ChildrenLeft  []int     `json:"children_left"`
	ChildrenRight []int     `json:"children_right"`
	Feature       []int     `json:"feature"`
	Threshold     []float64 `json:"threshold"`
	Value         []float64 `json:"value"`
}

// Predict walks the tree from the root for one feature vector
func (t *Tree) Predict(features []float64) float64 {
	node := 0
	for t.ChildrenLeft[node] != -1 {
		if features[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.Value[node]
}

// TreeEnsemble is a bagged regression forest; its prediction is the mean
// of the member tree predictions.
type TreeEnsemble struct {
	NumFeatures int    `json:"n_features"`
	Trees       []Tree `json:"trees"`
}

// Validate checks structural consistency of the loaded ensemble against the
// expected feature count, so a malformed artifact fails the request instead
// of panicking inside Predict.
func (e *TreeEnsemble) Validate(numFeatures int) error {
	if e.NumFeatures != numFeatures {
		return fmt.Errorf("ensemble has %d features, want %d", e.NumFeatures, numFeatures)
	}
	if len(e.Trees) == 0 {
		return fmt.Errorf("ensemble has no trees")
	}
	for i, t := range e.Trees {
		n := len(t.ChildrenLeft)
		if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
			return fmt.Errorf("tree %d has inconsistent node arrays", i)
		}
		if n == 0 {
			return fmt.Errorf("tree %d is empty", i)
		}
		for node := 0; node < n; node++ {
			if t.ChildrenLeft[node] == -1 {
				continue
			}
			if t.Feature[node] < 0 || t.Feature[node] >= numFeatures {
				return fmt.Errorf("tree %d node %d splits on feature %d of %d", i, node, t.Feature[node], numFeatures)
			}
			if t.ChildrenLeft[node] < 0 || t.ChildrenLeft[node] >= n ||
				t.ChildrenRight[node] < 0 || t.ChildrenRight[node] >= n {
				return fmt.Errorf("tree %d node %d has out-of-range children", i, node)
			}
		}
	}
	return nil
}

// Predict returns the ensemble mean for one feature vector
func (e *TreeEnsemble) Predict(features []float64) float64 {
	var sum float64
	for i := range e.Trees {
		sum += e.Trees[i].Predict(features)
	}
	return sum / float64(len(e.Trees))
}
