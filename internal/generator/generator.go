// Package generator builds randomized practice text from word lists.
package generator

import (
	"math/rand"
	"unicode"
)

// Generator produces randomized typing text. The random source is injected
// so callers control seeding and no global generator is shared.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator backed by the given random source.
func New(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Generate selects words uniformly and applies caps/punctuation rules.
func (g *Generator) Generate(words []string, count int, capsPct, punctPct float64, punctSet []rune) []string {
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		word := words[g.rnd.Intn(len(words))]
		word = applyCaps(g.rnd, word, capsPct)
		word = applyPunct(g.rnd, word, punctPct, punctSet)
		result = append(result, word)
	}
	return result
}

// Pick returns one element of items chosen uniformly.
func (g *Generator) Pick(items []string) string {
	return items[g.rnd.Intn(len(items))]
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}
