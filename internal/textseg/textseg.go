// Package textseg provides UTF-8 segmentation, grapheme cluster boundaries,
// and terminal display width computation.
package textseg

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// DefaultTabWidth is the display width of a tab when none is configured.
const DefaultTabWidth = 4

// emojiBase is the first codepoint of the pictographic planes; everything at
// or above it occupies two columns.
const emojiBase = 0x1F300

// Config carries segmentation settings. Settings are passed explicitly so
// that no package-level state leaks between callers.
type Config struct {
	TabWidth int
}

// NewConfig returns a Config with the given tab width, falling back to
// DefaultTabWidth when tabWidth is not positive.
func NewConfig(tabWidth int) Config {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return Config{TabWidth: tabWidth}
}

// Normalize converts s to canonical decomposed form (NFD). Target text and
// typed input must pass through the same normalization before any
// byte-position comparison.
func Normalize(s string) string {
	return norm.NFD.String(s)
}

// IsContinuation reports whether b is a UTF-8 continuation byte.
func IsContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// RuneLen returns the byte length of the codepoint starting at offset i.
// An invalid leading byte counts as a single-byte character.
func RuneLen(s string, i int) int {
	if i < 0 || i >= len(s) {
		return 0
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	if size <= 0 {
		return 1
	}
	return size
}

// IsCombiningMark reports whether r falls in one of the Unicode combining
// mark blocks.
func IsCombiningMark(r rune) bool {
	switch {
	case r >= 0x0300 && r <= 0x036F:
	case r >= 0x1AB0 && r <= 0x1AFF:
	case r >= 0x1DC0 && r <= 0x1DFF:
	case r >= 0x20D0 && r <= 0x20FF:
	case r >= 0xFE20 && r <= 0xFE2F:
	default:
		return false
	}
	return true
}

// ClusterEnd returns the end offset of the grapheme cluster starting at i:
// the base codepoint plus trailing combining marks and emoji/ZWJ
// continuation sequences. Malformed bytes advance by one.
func ClusterEnd(s string, i int) int {
	if i < 0 {
		i = 0
	}
	if i >= len(s) {
		return len(s)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
	if len(cluster) == 0 {
		return i + 1
	}
	return i + len(cluster)
}

// NextCluster returns the start offset of the grapheme cluster following the
// one at i.
func NextCluster(s string, i int) int {
	return ClusterEnd(s, i)
}

// LastClusterStart returns the start offset of the final grapheme cluster in
// s, or 0 when s is empty.
func LastClusterStart(s string) int {
	start := 0
	for i := 0; i < len(s); {
		start = i
		i = ClusterEnd(s, i)
	}
	return start
}

// PrevRuneStart returns the start offset of the codepoint ending before i,
// skipping backward over continuation bytes.
func PrevRuneStart(s string, i int) int {
	if i > len(s) {
		i = len(s)
	}
	if i <= 0 {
		return 0
	}
	i--
	for i > 0 && IsContinuation(s[i]) {
		i--
	}
	return i
}

// Clusters splits s into its grapheme clusters.
func Clusters(s string) []string {
	var out []string
	for i := 0; i < len(s); {
		end := ClusterEnd(s, i)
		out = append(out, s[i:end])
		i = end
	}
	return out
}

// ClusterWidth returns the display column width of a grapheme cluster. Tabs
// expand to the configured tab width, codepoints at or above U+1F300 occupy
// two columns, combining marks fold into the preceding codepoint, everything
// else follows the East-Asian-width table with a fallback of one column for
// malformed or unknown input.
func (c Config) ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	if cluster[0] == '\t' {
		return c.TabWidth
	}
	r, size := utf8.DecodeRuneInString(cluster)
	if r == utf8.RuneError && size <= 1 {
		return 1
	}
	if IsCombiningMark(r) {
		return 0
	}
	if r >= emojiBase {
		return 2
	}
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// StringWidth sums the display widths of the grapheme clusters in s.
func (c Config) StringWidth(s string) int {
	total := 0
	for i := 0; i < len(s); {
		end := ClusterEnd(s, i)
		total += c.ClusterWidth(s[i:end])
		i = end
	}
	return total
}
