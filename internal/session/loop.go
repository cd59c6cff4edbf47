package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/vzemtsov/typeline/internal/render"
)

// Run executes the blocking event loop: read one input unit, mutate the
// machine, redraw the block, until the input reaches the expected length or
// the user cancels. Each iteration completes fully before the next read;
// there is no other suspension point.
func Run(r *Reader, m *Machine, e *render.Engine) (State, error) {
	for {
		unit, err := r.ReadUnit()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return m.State(), fmt.Errorf("input stream closed")
			}
			return m.State(), fmt.Errorf("failed to read input: %w", err)
		}
		state := m.HandleUnit(unit)
		if state == StateCancelled {
			return state, nil
		}
		if err := e.Redraw(m.Target(), m.Input()); err != nil {
			return state, fmt.Errorf("failed to redraw: %w", err)
		}
		if state == StateComplete {
			return state, nil
		}
	}
}
