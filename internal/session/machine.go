package session

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/vzemtsov/typeline/internal/render"
	"github.com/vzemtsov/typeline/internal/textseg"
)

// State enumerates the phases of the input state machine.
type State int

// Idle precedes the first keystroke; Typing runs the clock; Complete and
// Cancelled are terminal.
const (
	StateIdle State = iota
	StateTyping
	StateComplete
	StateCancelled
)

const (
	keyCtrlC     = 0x03
	keyBS        = 0x08
	keyCtrlW     = 0x17
	keyEsc       = 0x1b
	keyBackspace = 0x7f
)

// Machine consumes classified keystrokes and exclusively owns the growing
// user input buffer. Input is kept NFD-normalized so byte positions stay
// aligned with the target.
type Machine struct {
	target    *render.Target
	joined    string
	input     []byte
	state     State
	startedAt time.Time
	endedAt   time.Time
}

// NewMachine builds a machine for the given target.
func NewMachine(t *render.Target) *Machine {
	return &Machine{target: t, joined: t.Joined()}
}

// Target returns the target text the machine types against.
func (m *Machine) Target() *render.Target {
	return m.target
}

// Input returns the current input buffer.
func (m *Machine) Input() string {
	return string(m.input)
}

// State returns the current phase.
func (m *Machine) State() State {
	return m.state
}

// Elapsed returns the time between the first keystroke and completion.
func (m *Machine) Elapsed() time.Duration {
	if m.startedAt.IsZero() || m.endedAt.IsZero() {
		return 0
	}
	return m.endedAt.Sub(m.startedAt)
}

// HandleUnit applies one input unit and returns the resulting state. The
// session clock starts on the first non-cancel keystroke, not at draw time.
func (m *Machine) HandleUnit(unit string) State {
	if m.state == StateComplete || m.state == StateCancelled || unit == "" {
		return m.state
	}
	switch unit[0] {
	case keyEsc, keyCtrlC:
		m.state = StateCancelled
		return m.state
	}
	if m.state == StateIdle {
		m.state = StateTyping
		m.startedAt = time.Now()
	}
	switch unit[0] {
	case keyBackspace, keyBS:
		m.deleteCluster()
	case keyCtrlW:
		m.deleteWord()
	default:
		m.append(unit)
	}
	if len(m.input) >= m.target.Total() {
		m.state = StateComplete
		m.endedAt = time.Now()
	}
	return m.state
}

func (m *Machine) append(unit string) {
	pos := len(m.input)
	if pos < len(m.joined) && m.joined[pos] == '\n' && isWhitespaceUnit(unit) {
		// Space and enter both advance past a line break; the next line's
		// indentation is typed for the user.
		m.input = append(m.input, '\n')
		m.appendIndent()
		return
	}
	if isWhitespaceUnit(unit) {
		// Typed whitespace never breaks byte alignment with the target.
		m.input = append(m.input, ' ')
		return
	}
	m.input = append(m.input, textseg.Normalize(unit)...)
}

func (m *Machine) appendIndent() {
	line := strings.Count(string(m.input), "\n")
	if line < len(m.target.Lines) {
		m.input = append(m.input, m.target.IndentRun(line)...)
	}
}

// deleteCluster removes the last full grapheme cluster, not just the last
// byte, so a base letter and its combining marks go together.
func (m *Machine) deleteCluster() {
	if len(m.input) == 0 {
		return
	}
	m.input = m.input[:textseg.LastClusterStart(string(m.input))]
}

// deleteWord removes trailing whitespace, then the trailing word.
func (m *Machine) deleteWord() {
	for len(m.input) > 0 && isSpaceByte(m.input[len(m.input)-1]) {
		m.input = m.input[:len(m.input)-1]
	}
	for len(m.input) > 0 && !isSpaceByte(m.input[len(m.input)-1]) {
		m.input = m.input[:textseg.LastClusterStart(string(m.input))]
	}
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isWhitespaceUnit(unit string) bool {
	r, size := utf8.DecodeRuneInString(unit)
	if size == 0 {
		return false
	}
	return unicode.IsSpace(r)
}
