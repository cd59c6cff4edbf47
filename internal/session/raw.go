package session

import (
	"fmt"

	"golang.org/x/term"
)

// WithRawMode puts fd into raw mode, runs body, and restores the original
// terminal state on every exit path, including errors and cancellation.
func WithRawMode(fd int, body func() error) error {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if rerr := term.Restore(fd, state); rerr != nil {
			// Best-effort restore; there is no terminal left to complain to.
			_ = rerr
		}
	}()
	return body()
}
