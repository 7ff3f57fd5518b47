package main

import (
	"math"
	"math/rand"
)

// treeNode is one node of a fitted decision tree, stored flat so a whole
// tree serializes as JSON. Feature -1 marks a leaf; Class is the majority
// class of the node's training rows.
type treeNode struct {
	Feature int `json:"f"`
	Left    int `json:"l,omitempty"`
	Right   int `json:"r,omitempty"`
	Class   int `json:"c"`
}

type decisionTree struct {
	Nodes []treeNode `json:"nodes"`
}

// Forest is a random forest over one-hot feature vectors: CART trees split
// on Gini impurity, each fitted to a bootstrap sample of the rows with a
// sqrt-sized random feature subset considered per split.
type Forest struct {
	Trees      []decisionTree `json:"trees"`
	NumClasses int            `json:"num_classes"`
}

// TrainForest fits an ensemble of the given size. All randomness comes from
// rng, so a fixed seed reproduces the forest exactly.
func TrainForest(x [][]float64, y []int, trees int, rng *rand.Rand) *Forest {
	numClasses := 0
	for _, c := range y {
		if c+1 > numClasses {
			numClasses = c + 1
		}
	}

	numFeatures := 0
	if len(x) > 0 {
		numFeatures = len(x[0])
	}
	mtry := int(math.Sqrt(float64(numFeatures)))
	if mtry < 1 {
		mtry = 1
	}

	forest := &Forest{NumClasses: numClasses}
	for i := 0; i < trees; i++ {
		rows := make([]int, len(x))
		for j := range rows {
			rows[j] = rng.Intn(len(x))
		}
		b := &treeBuilder{x: x, y: y, numClasses: numClasses, mtry: mtry, rng: rng}
		b.grow(rows)
		forest.Trees = append(forest.Trees, decisionTree{Nodes: b.nodes})
	}
	return forest
}

// Vote returns the per-class probability estimate for one encoded report:
// the fraction of trees voting for each class.
func (f *Forest) Vote(x []float64) []float64 {
	votes := make([]float64, f.NumClasses)
	if len(f.Trees) == 0 {
		return votes
	}
	for _, t := range f.Trees {
		votes[t.classify(x)]++
	}
	for i := range votes {
		votes[i] /= float64(len(f.Trees))
	}
	return votes
}

// Predict returns the majority class and its vote share as confidence.
func (f *Forest) Predict(x []float64) (int, float64) {
	votes := f.Vote(x)
	class := 0
	for i := range votes {
		if votes[i] > votes[class] {
			class = i
		}
	}
	return class, votes[class]
}

func (t decisionTree) classify(x []float64) int {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Feature < 0 || n.Feature >= len(x) {
			return n.Class
		}
		if x[n.Feature] < 0.5 {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

type treeBuilder struct {
	x          [][]float64
	y          []int
	numClasses int
	mtry       int
	rng        *rand.Rand
	nodes      []treeNode
}

func (b *treeBuilder) grow(rows []int) int {
	counts := make([]int, b.numClasses)
	for _, i := range rows {
		counts[b.y[i]]++
	}
	idx := len(b.nodes)
	b.nodes = append(b.nodes, treeNode{Feature: -1, Class: majorityClass(counts)})

	if len(rows) < 2 || gini(counts, len(rows)) == 0 {
		return idx
	}

	feature, left, right := b.bestSplit(rows, counts)
	if feature < 0 {
		return idx
	}

	leftIdx := b.grow(left)
	rightIdx := b.grow(right)
	b.nodes[idx].Feature = feature
	b.nodes[idx].Left = leftIdx
	b.nodes[idx].Right = rightIdx
	return idx
}

// bestSplit evaluates a random mtry-sized feature subset and returns the
// feature with the lowest weighted child impurity, or -1 when no candidate
// improves on the parent.
func (b *treeBuilder) bestSplit(rows []int, parentCounts []int) (int, []int, []int) {
	parent := gini(parentCounts, len(rows))
	bestFeature := -1
	bestImpurity := parent
	var bestLeft, bestRight []int

	candidates := b.rng.Perm(len(b.x[rows[0]]))
	if len(candidates) > b.mtry {
		candidates = candidates[:b.mtry]
	}
	for _, f := range candidates {
		var left, right []int
		leftCounts := make([]int, b.numClasses)
		rightCounts := make([]int, b.numClasses)
		for _, i := range rows {
			if b.x[i][f] < 0.5 {
				left = append(left, i)
				leftCounts[b.y[i]]++
			} else {
				right = append(right, i)
				rightCounts[b.y[i]]++
			}
		}
		if len(left) == 0 || len(right) == 0 {
			continue
		}
		impurity := (float64(len(left))*gini(leftCounts, len(left)) +
			float64(len(right))*gini(rightCounts, len(right))) / float64(len(rows))
		if impurity < bestImpurity {
			bestFeature, bestImpurity = f, impurity
			bestLeft, bestRight = left, right
		}
	}
	return bestFeature, bestLeft, bestRight
}

func gini(counts []int, total int) float64 {
	if total == 0 {
		return 0
	}
	g := 1.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		g -= p * p
	}
	return g
}

func majorityClass(counts []int) int {
	class := 0
	for i, c := range counts {
		if c > counts[class] {
			class = i
		}
	}
	return class
}
