package artifact

// forest averages the normalized leaf distributions of its trees, which is how a fitted
// random forest computes class probabilities.
type forest struct {
	trees []Tree
}

func (f forest) score(row []float64) [2]float64 {
	var sum [2]float64
	for _, tree := range f.trees {
		leaf := tree.leaf(row)
		total := leaf.Value[0] + leaf.Value[1]
		sum[0] += leaf.Value[0] / total
		sum[1] += leaf.Value[1] / total
	}
	n := float64(len(f.trees))
	return [2]float64{sum[0] / n, sum[1] / n}
}

func (t Tree) leaf(row []float64) Node {
	idx := 0
	for {
		node := t.Nodes[idx]
		if node.isLeaf() {
			return node
		}
		if row[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
}
