package constellation

import "fmt"

// Reason explains a rejected candidate
type Reason uint8

const (
	ReasonNone Reason = iota
	InvalidSelection
	AdjacencyViolation
	Duplicate
	SequenceMismatch
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case InvalidSelection:
		return "invalid-selection"
	case AdjacencyViolation:
		return "adjacency-violation"
	case Duplicate:
		return "duplicate"
	case SequenceMismatch:
		return "sequence-mismatch"
	default:
		return fmt.Sprintf("reason(%d)", uint8(r))
	}
}

// Feedback reports whether the rejection should produce error feedback.
// A self-pair is a cancel, not a mistake.
func (r Reason) Feedback() bool {
	return r == AdjacencyViolation || r == Duplicate || r == SequenceMismatch
}

// Decision is the outcome of evaluating a candidate
type Decision struct {
	Accepted bool
	Reason   Reason

	// Set only when Accepted
	State         State
	ProgressIndex int
	Connection    Connection

	size int
}

// Complete reports whether this acceptance filled the last slot
func (d Decision) Complete() bool {
	return d.Accepted && d.size > 0 && d.ProgressIndex == d.size
}

func (d Decision) String() string {
	if d.Accepted {
		return fmt.Sprintf("accepted(%s %s, #%d)", d.Connection.Pair, d.Connection.Category, d.ProgressIndex)
	}
	return fmt.Sprintf("rejected(%s)", d.Reason)
}

func rejected(r Reason) Decision {
	return Decision{Reason: r}
}
