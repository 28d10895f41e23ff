// Package artifact loads and evaluates exported classification models.
//
// The trained estimator is exported from the training notebook as a versioned JSON
// document. The document carries its own ordered feature schema; nothing in this
// repository decides which columns the model expects.
package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/yanqian/depression-screener/pkg/errors"
)

// FormatV1 is the only artifact format understood by this package.
const FormatV1 = "screening-model/v1"

// Kind identifies the estimator family stored in an artifact.
type Kind string

const (
	KindRandomForest       Kind = "random_forest"
	KindLogisticRegression Kind = "logistic_regression"
)

// Document is the on-disk artifact.
type Document struct {
	Format       string    `json:"format"`
	Name         string    `json:"name"`
	Version      string    `json:"version"`
	Kind         Kind      `json:"kind"`
	FeatureNames []string  `json:"featureNames"`
	Classes      []int     `json:"classes,omitempty"`
	Trees        []Tree    `json:"trees,omitempty"`
	Coefficients []float64 `json:"coefficients,omitempty"`
	Intercept    float64   `json:"intercept,omitempty"`
}

// Tree is one fitted decision tree in array form: node 0 is the root and a node whose
// Left is -1 is a leaf.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Node mirrors one entry of a fitted tree's parallel arrays.
type Node struct {
	Feature   int        `json:"feature"`
	Threshold float64    `json:"threshold"`
	Left      int        `json:"left"`
	Right     int        `json:"right"`
	Value     [2]float64 `json:"value"`
}

func (n Node) isLeaf() bool {
	return n.Left == -1
}

// Decode validates raw artifact bytes and builds a ready-to-use Model.
func Decode(data []byte) (*Model, error) {
	if err := validateDocument(data); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeModelInvalid, "model artifact failed schema validation", err)
	}

	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeModelInvalid, "decode model artifact", err)
	}
	if err := doc.check(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeModelInvalid, "model artifact is inconsistent", err)
	}
	return newModel(doc)
}

// check covers the structural rules a JSON schema cannot express.
func (d Document) check() error {
	if len(d.Classes) != 0 && len(d.Classes) != 2 {
		return fmt.Errorf("expected 2 classes, got %d", len(d.Classes))
	}
	for _, name := range d.FeatureNames {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("blank feature name")
		}
	}
	width := len(d.FeatureNames)
	switch d.Kind {
	case KindRandomForest:
		for ti, tree := range d.Trees {
			if err := tree.check(width); err != nil {
				return fmt.Errorf("tree %d: %w", ti, err)
			}
		}
	case KindLogisticRegression:
		if len(d.Coefficients) != width {
			return fmt.Errorf("expected %d coefficients, got %d", width, len(d.Coefficients))
		}
	default:
		return fmt.Errorf("unsupported kind %q", d.Kind)
	}
	return nil
}

// check enforces children stored after their parent, which keeps traversal acyclic.
func (t Tree) check(width int) error {
	for i, node := range t.Nodes {
		if node.isLeaf() {
			if node.Value[0]+node.Value[1] <= 0 {
				return fmt.Errorf("leaf %d has no class weight", i)
			}
			continue
		}
		if node.Feature < 0 || node.Feature >= width {
			return fmt.Errorf("node %d references feature %d outside [0,%d)", i, node.Feature, width)
		}
		if node.Left <= i || node.Left >= len(t.Nodes) {
			return fmt.Errorf("node %d has invalid left child %d", i, node.Left)
		}
		if node.Right <= i || node.Right >= len(t.Nodes) {
			return fmt.Errorf("node %d has invalid right child %d", i, node.Right)
		}
	}
	return nil
}
