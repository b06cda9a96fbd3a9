package constellation

import (
	"errors"
	"fmt"
)

// RingSize is the fixed number of nodes in a session
const RingSize = 12

// Sentinel errors for caller contract violations
var (
	ErrNodeOutOfRange  = errors.New("node out of range")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidSequence = errors.New("invalid required sequence")
)

// Node identifies a position on the ring, 0..N-1
type Node int

// Pair is an unordered node pair stored with Lo < Hi
type Pair struct {
	Lo, Hi Node
}

// NewPair canonicalizes {a, b}
func NewPair(a, b Node) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{Lo: a, Hi: b}
}

func (p Pair) String() string {
	return fmt.Sprintf("{%d,%d}", p.Lo, p.Hi)
}

// Connection is an accepted pair tagged with its category
type Connection struct {
	Pair     Pair
	Category Category
}

// State is the session state. Values are treated as immutable: evaluation
// returns a fresh State on accept and never writes through the receiver.
type State struct {
	connections []Connection
	index       map[Pair]struct{}
	cursor      int
}

// NewState returns the empty session state
func NewState() State {
	return State{}
}

// Count returns the number of accepted connections
func (s State) Count() int {
	return len(s.connections)
}

// Cursor returns the position in the required sequence
func (s State) Cursor() int {
	return s.cursor
}

// Has reports whether {a, b} was accepted, in either order
func (s State) Has(a, b Node) bool {
	_, ok := s.index[NewPair(a, b)]
	return ok
}

// Connections returns accepted connections in acceptance order
func (s State) Connections() []Connection {
	out := make([]Connection, len(s.connections))
	copy(out, s.connections)
	return out
}

// with returns a copy of s holding one more connection
func (s State) with(c Connection, advanceCursor bool) State {
	next := State{
		connections: make([]Connection, len(s.connections), len(s.connections)+1),
		index:       make(map[Pair]struct{}, len(s.index)+1),
		cursor:      s.cursor,
	}
	copy(next.connections, s.connections)
	for p := range s.index {
		next.index[p] = struct{}{}
	}
	next.connections = append(next.connections, c)
	next.index[c.Pair] = struct{}{}
	if advanceCursor {
		next.cursor++
	}
	return next
}
