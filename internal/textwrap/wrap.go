// Package textwrap reflows text to a display width while preserving
// paragraphs and grapheme clusters.
package textwrap

import (
	"strings"

	"github.com/vzemtsov/typeline/internal/textseg"
)

// Wrap reflows text paragraph by paragraph into lines whose display width
// does not exceed wrapWidth columns. Paragraph breaks (embedded newlines)
// are preserved exactly once per paragraph. Words wider than wrapWidth are
// broken at grapheme cluster boundaries; a single cluster wider than the
// wrap width overflows on its own line since it cannot be split further.
// A non-positive wrapWidth returns text unmodified.
func Wrap(text string, wrapWidth int, cfg textseg.Config) string {
	if wrapWidth <= 0 {
		return text
	}
	paragraphs := strings.Split(text, "\n")
	var b strings.Builder
	for i, paragraph := range paragraphs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(wrapParagraph(paragraph, wrapWidth, cfg))
	}
	return b.String()
}

func wrapParagraph(paragraph string, wrapWidth int, cfg textseg.Config) string {
	var b strings.Builder
	lineWidth := 0
	for _, word := range strings.Fields(paragraph) {
		for _, chunk := range breakWord(word, wrapWidth, cfg) {
			w := cfg.StringWidth(chunk)
			switch {
			case lineWidth == 0:
			case lineWidth+1+w <= wrapWidth:
				b.WriteByte(' ')
				lineWidth++
			default:
				b.WriteByte('\n')
				lineWidth = 0
			}
			b.WriteString(chunk)
			lineWidth += w
		}
	}
	return b.String()
}

// breakWord splits a word wider than wrapWidth into chunks at grapheme
// cluster boundaries. Combining sequences are never split.
func breakWord(word string, wrapWidth int, cfg textseg.Config) []string {
	if cfg.StringWidth(word) <= wrapWidth {
		return []string{word}
	}
	var chunks []string
	var chunk strings.Builder
	chunkWidth := 0
	for i := 0; i < len(word); {
		end := textseg.ClusterEnd(word, i)
		cluster := word[i:end]
		w := cfg.ClusterWidth(cluster)
		if chunkWidth > 0 && chunkWidth+w > wrapWidth {
			chunks = append(chunks, chunk.String())
			chunk.Reset()
			chunkWidth = 0
		}
		chunk.WriteString(cluster)
		chunkWidth += w
		i = end
	}
	if chunk.Len() > 0 {
		chunks = append(chunks, chunk.String())
	}
	return chunks
}
