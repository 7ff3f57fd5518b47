package main

import (
	"fmt"
	"strings"
)

// Evaluation holds the quality of a fitted forest measured on its own
// training set: overall accuracy plus a confusion matrix with actual
// classes as rows and predicted classes as columns.
type Evaluation struct {
	Accuracy  float64
	Confusion [][]int
}

// Evaluate runs the forest over every encoded row and tallies the result.
func Evaluate(f *Forest, x [][]float64, y []int) Evaluation {
	cm := make([][]int, f.NumClasses)
	for i := range cm {
		cm[i] = make([]int, f.NumClasses)
	}
	correct := 0
	for i := range x {
		pred, _ := f.Predict(x[i])
		if y[i] < f.NumClasses {
			cm[y[i]][pred]++
		}
		if pred == y[i] {
			correct++
		}
	}
	acc := 0.0
	if len(x) > 0 {
		acc = float64(correct) / float64(len(x))
	}
	return Evaluation{Accuracy: acc, Confusion: cm}
}

// precisionRecall derives the per-class metrics from the confusion matrix.
func (e Evaluation) precisionRecall(class int) (precision, recall, support float64) {
	var colSum, rowSum int
	for i := range e.Confusion {
		colSum += e.Confusion[i][class]
		rowSum += e.Confusion[class][i]
	}
	tp := e.Confusion[class][class]
	if colSum > 0 {
		precision = float64(tp) / float64(colSum)
	}
	if rowSum > 0 {
		recall = float64(tp) / float64(rowSum)
	}
	return precision, recall, float64(rowSum)
}

// FormatReport renders the human-readable metrics file persisted with every
// training run.
func (e Evaluation) FormatReport() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Accuracy: %.4f\n\n", e.Accuracy)

	b.WriteString("Classification Report:\n")
	b.WriteString("level  label     precision  recall  f1-score  support\n")
	for class := range e.Confusion {
		precision, recall, support := e.precisionRecall(class)
		f1 := 0.0
		if precision+recall > 0 {
			f1 = 2 * precision * recall / (precision + recall)
		}
		fmt.Fprintf(&b, "%-6d %-9s %9.2f %7.2f %9.2f %8.0f\n",
			class, PriorityLevels[class], precision, recall, f1, support)
	}

	b.WriteString("\nConfusion Matrix (rows actual, cols predicted):\n")
	for _, row := range e.Confusion {
		for j, v := range row {
			if j > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%5d", v)
		}
		b.WriteString("\n")
	}
	return b.String()
}
