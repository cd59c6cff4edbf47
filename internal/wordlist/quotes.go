package wordlist

import (
	"fmt"
	"os"
	"strings"
)

// LoadQuotes reads blank-line separated quotes from the provided file path.
// Newlines inside a quote are preserved.
func LoadQuotes(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var quotes []string
	for _, block := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n\n") {
		quote := strings.TrimSpace(block)
		if quote == "" {
			continue
		}
		quotes = append(quotes, quote)
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("quote list is empty")
	}
	return quotes, nil
}
