package selection

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/ecoring/constellation"
)

// ErrNotAwaitingCategory is returned when a category arrives without a pending pair
var ErrNotAwaitingCategory = errors.New("no pair awaiting a category")

// Phase tracks the pairing interaction
type Phase uint8

const (
	PhaseIdle             Phase = iota // No node selected
	PhaseOneSelected                   // First node chosen
	PhaseAwaitingCategory              // Two distinct nodes passed pair checks, menu open
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseOneSelected:
		return "one-selected"
	case PhaseAwaitingCategory:
		return "awaiting-category"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// OutcomeKind classifies what an input did
type OutcomeKind uint8

const (
	OutcomeIgnored   OutcomeKind = iota // Input not meaningful in the current phase
	OutcomeSelected                     // First node chosen
	OutcomeCancelled                    // Same node clicked again or menu closed
	OutcomePairReady                    // Pair passed, category menu should open
	OutcomeRejected                     // Rule rejection, see Reason
	OutcomeAccepted                     // Connection recorded, see Decision
)

// Outcome reports the effect of one input on the machine
type Outcome struct {
	Kind     OutcomeKind
	Node     constellation.Node // Node that triggered the outcome
	Pair     constellation.Pair // Set for PairReady, Rejected, Accepted
	Reason   constellation.Reason
	Decision constellation.Decision // Set for Accepted
}

// Machine is the caller-side pairing state machine around the rule engine.
// The engine is only invoked once two distinct nodes are chosen.
type Machine struct {
	engine *constellation.Engine
	state  constellation.State

	phase Phase
	first constellation.Node
	pair  constellation.Pair
	a, b  constellation.Node // Pair in click order, for feedback drawing
}

// NewMachine creates an idle machine with an empty session
func NewMachine(engine *constellation.Engine) *Machine {
	return &Machine{
		engine: engine,
		state:  constellation.NewState(),
	}
}

// Engine returns the rule engine in use
func (m *Machine) Engine() *constellation.Engine {
	return m.engine
}

// State returns the current session state
func (m *Machine) State() constellation.State {
	return m.state
}

// Phase returns the current interaction phase
func (m *Machine) Phase() Phase {
	return m.phase
}

// Selected returns the first selected node while one is held
func (m *Machine) Selected() (constellation.Node, bool) {
	if m.phase == PhaseIdle {
		return 0, false
	}
	return m.first, true
}

// Pending returns the pair awaiting a category, in click order
func (m *Machine) Pending() (a, b constellation.Node, ok bool) {
	if m.phase != PhaseAwaitingCategory {
		return 0, 0, false
	}
	return m.a, m.b, true
}

// Click feeds a node selection
func (m *Machine) Click(n constellation.Node) (Outcome, error) {
	switch m.phase {
	case PhaseIdle:
		if n < 0 || int(n) >= m.engine.Size() {
			return Outcome{}, fmt.Errorf("%w: %d", constellation.ErrNodeOutOfRange, n)
		}
		m.first = n
		m.phase = PhaseOneSelected
		return Outcome{Kind: OutcomeSelected, Node: n}, nil

	case PhaseOneSelected:
		if n == m.first {
			m.reset()
			return Outcome{Kind: OutcomeCancelled, Node: n}, nil
		}
		reason, err := m.engine.CheckPair(m.state, m.first, n)
		if err != nil {
			return Outcome{}, err
		}
		pair := constellation.NewPair(m.first, n)
		if reason != constellation.ReasonNone {
			m.reset()
			return Outcome{Kind: OutcomeRejected, Node: n, Pair: pair, Reason: reason}, nil
		}
		m.a, m.b = m.first, n
		m.pair = pair
		m.phase = PhaseAwaitingCategory
		return Outcome{Kind: OutcomePairReady, Node: n, Pair: pair}, nil
	}

	return Outcome{Kind: OutcomeIgnored, Node: n}, nil
}

// Choose submits a category for the pending pair. A sequence mismatch keeps
// the pair pending so another category can be tried.
func (m *Machine) Choose(c constellation.Category) (Outcome, error) {
	if m.phase != PhaseAwaitingCategory {
		return Outcome{}, ErrNotAwaitingCategory
	}

	d, err := m.engine.Evaluate(m.state, m.a, m.b, c)
	if err != nil {
		return Outcome{}, err
	}

	if !d.Accepted {
		if d.Reason != constellation.SequenceMismatch {
			m.reset()
		}
		return Outcome{Kind: OutcomeRejected, Node: m.b, Pair: m.pair, Reason: d.Reason}, nil
	}

	m.state = d.State
	out := Outcome{Kind: OutcomeAccepted, Node: m.b, Pair: m.pair, Decision: d}
	m.reset()
	return out, nil
}

// Close dismisses the category menu without evaluating
func (m *Machine) Close() Outcome {
	if m.phase != PhaseAwaitingCategory {
		return Outcome{Kind: OutcomeIgnored}
	}
	out := Outcome{Kind: OutcomeCancelled, Node: m.b, Pair: m.pair}
	m.reset()
	return out
}

// Deselect clears a single held node, as a click on empty space does
func (m *Machine) Deselect() {
	if m.phase == PhaseOneSelected {
		m.reset()
	}
}

// Restart discards the session and returns to idle
func (m *Machine) Restart() {
	m.state = constellation.NewState()
	m.reset()
}

func (m *Machine) reset() {
	m.phase = PhaseIdle
	m.first = 0
	m.a, m.b = 0, 0
	m.pair = constellation.Pair{}
}
