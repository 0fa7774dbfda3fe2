// Package mlmodel loads the pre-trained fraud classifier artifact and
// runs inference. The artifact is a JSON-serialized random forest; this
// package owns no training logic.
package mlmodel

import (
	"encoding/json"
	"fmt"
	"os"
)

// Node is a single decision node in a tree. Leaf nodes carry the voted
// class; internal nodes route on vector[Feature] <= Threshold.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Leaf      bool    `json:"leaf"`
	Class     int     `json:"class"`
}

// Tree is a decision tree rooted at node 0
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Forest is the loaded classifier artifact. It is read-only after Load
// and safe for concurrent use.
type Forest struct {
	NumFeatures int    `json:"num_features"`
	Trees       []Tree `json:"trees"`
}

// Load reads and validates a forest artifact from disk
func Load(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var forest Forest
	if err := json.Unmarshal(data, &forest); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}

	if err := forest.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact: %w", err)
	}

	return &forest, nil
}

func (f *Forest) validate() error {
	if f.NumFeatures <= 0 {
		return fmt.Errorf("num_features must be positive, got %d", f.NumFeatures)
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("forest contains no trees")
	}

	for i, tree := range f.Trees {
		if len(tree.Nodes) == 0 {
			return fmt.Errorf("tree %d has no nodes", i)
		}
		for j, node := range tree.Nodes {
			if node.Leaf {
				continue
			}
			if node.Feature < 0 || node.Feature >= f.NumFeatures {
				return fmt.Errorf("tree %d node %d references feature %d", i, j, node.Feature)
			}
			if node.Left < 0 || node.Left >= len(tree.Nodes) || node.Right < 0 || node.Right >= len(tree.Nodes) {
				return fmt.Errorf("tree %d node %d has out-of-range children", i, j)
			}
		}
	}

	return nil
}

// Predict runs the feature vector through every tree and returns the
// majority-vote label and the positive-class vote share as probability.
func (f *Forest) Predict(vector []float64) (int, float64, error) {
	if len(vector) != f.NumFeatures {
		return 0, 0, fmt.Errorf("expected %d features, got %d", f.NumFeatures, len(vector))
	}

	positive := 0
	for i := range f.Trees {
		class, err := f.Trees[i].evaluate(vector)
		if err != nil {
			return 0, 0, err
		}
		if class == 1 {
			positive++
		}
	}

	probability := float64(positive) / float64(len(f.Trees))

	// Majority vote; ties resolve to the negative class
	label := 0
	if positive*2 > len(f.Trees) {
		label = 1
	}

	return label, probability, nil
}

func (t *Tree) evaluate(vector []float64) (int, error) {
	index := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		node := t.Nodes[index]
		if node.Leaf {
			return node.Class, nil
		}
		if vector[node.Feature] <= node.Threshold {
			index = node.Left
		} else {
			index = node.Right
		}
	}
	return 0, fmt.Errorf("tree traversal did not reach a leaf")
}
