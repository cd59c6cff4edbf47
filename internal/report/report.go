// Package report computes end-of-session timing, accuracy, and misspelled
// word statistics.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// Report holds the final statistics of a completed session.
type Report struct {
	Elapsed    time.Duration
	WPM        float64
	CPM        float64
	Accuracy   float64
	Misspelled []string
}

// Build computes statistics from the target text and the final input buffer.
// Both must share the same normalization; correctness is byte-position
// agreement. A zero elapsed time yields zero WPM/CPM rather than dividing.
func Build(target, input string, elapsed time.Duration) Report {
	var wpm, cpm float64
	if minutes := elapsed.Minutes(); minutes > 0 {
		wpm = (float64(len(target)) / 5.0) / minutes
		cpm = float64(len(target)) / minutes
	}
	correct := 0
	for i := 0; i < len(target); i++ {
		if i < len(input) && input[i] == target[i] {
			correct++
		}
	}
	accuracy := 0.0
	if len(target) > 0 {
		accuracy = float64(correct) / float64(len(target)) * 100
	}
	return Report{
		Elapsed:    elapsed,
		WPM:        wpm,
		CPM:        cpm,
		Accuracy:   accuracy,
		Misspelled: MisspelledWords(target, input),
	}
}

// MisspelledWords returns the distinct whitespace-delimited target words
// with at least one byte position disagreeing with input, sorted.
func MisspelledWords(target, input string) []string {
	seen := map[string]struct{}{}
	var words []string
	i := 0
	for i < len(target) {
		for i < len(target) && isSpace(target[i]) {
			i++
		}
		start := i
		for i < len(target) && !isSpace(target[i]) {
			i++
		}
		if start == i {
			continue
		}
		misspelled := false
		for j := start; j < i; j++ {
			if j >= len(input) || input[j] != target[j] {
				misspelled = true
				break
			}
		}
		if !misspelled {
			continue
		}
		word := target[start:i]
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// Render writes the final report block.
func (r Report) Render(w io.Writer) error {
	total := int(r.Elapsed.Seconds())
	if _, err := fmt.Fprintf(w, "\n\nTime: %d:%02d\n", total/60, total%60); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "WPM: %.0f\n", r.WPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "CPM: %.0f\n", r.CPM); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Accuracy: %.2f%%\n", r.Accuracy); err != nil {
		return err
	}
	if len(r.Misspelled) == 0 {
		_, err := fmt.Fprintln(w, "No mistakes! 🎉")
		return err
	}
	quoted := make([]string, len(r.Misspelled))
	for i, word := range r.Misspelled {
		quoted[i] = fmt.Sprintf("%q", word)
	}
	_, err := fmt.Fprintf(w, "Misspelled words: %s\n", strings.Join(quoted, ", "))
	return err
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
