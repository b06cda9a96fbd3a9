// Package constellation holds the connection rules of the constellation puzzle:
// which ring nodes may be linked, in which category order, and how each accepted
// link advances the session. Evaluation is pure: it takes a State and returns a
// Decision carrying the next State, leaving the input untouched.
package constellation

import "fmt"

// Engine evaluates candidate connections on a fixed ring
type Engine struct {
	size      int
	adjacency bool
	sequence  []Category
}

// Option configures an Engine
type Option func(*Engine) error

// WithSequence enables the sequence-constrained variant
func WithSequence(seq []Category) Option {
	return func(e *Engine) error {
		if len(seq) != e.size {
			return fmt.Errorf("%w: length %d, ring size %d", ErrInvalidSequence, len(seq), e.size)
		}
		for i, c := range seq {
			if !c.Valid() {
				return fmt.Errorf("%w: step %d: %s", ErrInvalidSequence, i, c)
			}
		}
		e.sequence = append([]Category(nil), seq...)
		return nil
	}
}

// WithoutAdjacency disables the ring-neighbor rule
func WithoutAdjacency() Option {
	return func(e *Engine) error {
		e.adjacency = false
		return nil
	}
}

// NewEngine creates an engine for a RingSize ring with the adjacency rule active
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		size:      RingSize,
		adjacency: true,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Size returns the ring size
func (e *Engine) Size() int {
	return e.size
}

// NeighborRule reports whether ring-neighbor links are forbidden
func (e *Engine) NeighborRule() bool {
	return e.adjacency
}

// Sequenced reports whether the required-sequence rule is active
func (e *Engine) Sequenced() bool {
	return e.sequence != nil
}

// Sequence returns a copy of the required sequence, nil in the free variant
func (e *Engine) Sequence() []Category {
	if e.sequence == nil {
		return nil
	}
	return append([]Category(nil), e.sequence...)
}

// Expected returns the category required for the next connection
func (e *Engine) Expected(s State) (Category, bool) {
	if e.sequence == nil || s.cursor >= len(e.sequence) {
		return 0, false
	}
	return e.sequence[s.cursor], true
}

// Adjacent reports whether a and b are immediate ring neighbors
func (e *Engine) Adjacent(a, b Node) bool {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	d %= e.size
	return d == 1 || d == e.size-1
}

// CheckPair runs the pair-level rules (self-pair, adjacency, duplicate) without
// consulting a category. ReasonNone means the pair may go on to category choice.
func (e *Engine) CheckPair(s State, a, b Node) (Reason, error) {
	if err := e.checkNodes(a, b); err != nil {
		return ReasonNone, err
	}
	return e.checkPair(s, a, b), nil
}

// Evaluate decides whether {a, b} may be connected under category c.
// Rejections are returned as Decisions; the error is reserved for
// out-of-domain input.
func (e *Engine) Evaluate(s State, a, b Node, c Category) (Decision, error) {
	if err := e.checkNodes(a, b); err != nil {
		return Decision{}, err
	}
	if !c.Valid() {
		return Decision{}, fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}

	if r := e.checkPair(s, a, b); r != ReasonNone {
		return rejected(r), nil
	}

	if want, ok := e.Expected(s); e.sequence != nil && (!ok || c != want) {
		return rejected(SequenceMismatch), nil
	}

	conn := Connection{Pair: NewPair(a, b), Category: c}
	next := s.with(conn, e.sequence != nil)
	return Decision{
		Accepted:      true,
		State:         next,
		ProgressIndex: next.Count(),
		Connection:    conn,
		size:          e.size,
	}, nil
}

// checkPair applies the rules in fixed order: self-pair, adjacency, duplicate
func (e *Engine) checkPair(s State, a, b Node) Reason {
	switch {
	case a == b:
		return InvalidSelection
	case e.adjacency && e.Adjacent(a, b):
		return AdjacencyViolation
	case s.Has(a, b):
		return Duplicate
	}
	return ReasonNone
}

func (e *Engine) checkNodes(a, b Node) error {
	for _, n := range [2]Node{a, b} {
		if n < 0 || int(n) >= e.size {
			return fmt.Errorf("%w: %d not in [0,%d)", ErrNodeOutOfRange, n, e.size)
		}
	}
	return nil
}
