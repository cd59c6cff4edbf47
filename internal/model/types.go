// Package model defines shared data structures.
package model

// Config defines practice settings for a typing session.
type Config struct {
	Lang      string
	Words     int
	CapsPct   float64
	PunctPct  float64
	PunctSet  string
	WrapWidth int
	TabWidth  int
	Quotes    string
	Chars     bool
}
