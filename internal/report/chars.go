package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/vzemtsov/typeline/internal/textseg"
)

// CharAccuracy aggregates correctness for one distinct target cluster.
type CharAccuracy struct {
	Char      string
	Correct   int
	Incorrect int
}

// Accuracy returns the fraction of correct occurrences.
func (c CharAccuracy) Accuracy() float64 {
	total := c.Correct + c.Incorrect
	if total == 0 {
		return 0
	}
	return float64(c.Correct) / float64(total)
}

// CharAccuracies aggregates per-cluster correctness over the whole target,
// comparing each target cluster to the input bytes at its position.
func CharAccuracies(target, input string) []CharAccuracy {
	byChar := map[string]*CharAccuracy{}
	for i := 0; i < len(target); {
		end := textseg.ClusterEnd(target, i)
		cluster := target[i:end]
		entry, ok := byChar[cluster]
		if !ok {
			entry = &CharAccuracy{Char: cluster}
			byChar[cluster] = entry
		}
		if end <= len(input) && input[i:end] == cluster {
			entry.Correct++
		} else {
			entry.Incorrect++
		}
		i = end
	}
	out := make([]CharAccuracy, 0, len(byChar))
	for _, entry := range byChar {
		out = append(out, *entry)
	}
	// Weakest characters first.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Accuracy() == out[j].Accuracy() {
			return out[i].Char < out[j].Char
		}
		return out[i].Accuracy() < out[j].Accuracy()
	})
	return out
}

// RenderCharTable prints a per-character accuracy table for the session.
func RenderCharTable(w io.Writer, aggs []CharAccuracy) error {
	if len(aggs) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "\nPer-Character"); err != nil {
		return err
	}
	headers := []string{"Char", "Accuracy", "Correct", "Incorrect"}
	rows := make([][]string, 0, len(aggs))
	for _, agg := range aggs {
		rows = append(rows, []string{
			charLabel(agg.Char),
			fmt.Sprintf("%.2f%%", agg.Accuracy()*100),
			fmt.Sprintf("%d", agg.Correct),
			fmt.Sprintf("%d", agg.Incorrect),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func charLabel(char string) string {
	switch char {
	case " ":
		return "<space>"
	case "\t":
		return "<tab>"
	case "\n":
		return "<newline>"
	}
	return char
}
