package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize buffers terminal events between poller and main loop
	EventQueueSize = 256
)

// Constellation Feedback
const (
	// OracleDelay is the pause between the last connection and the oracle card
	OracleDelay = 1500 * time.Millisecond

	// PulseStart is the selection pulse strength, decayed by PulseDecay per frame
	PulseStart = 1.5
	PulseDecay = 0.1

	// ErrorLineDecay is subtracted from an error line's life (1.0) per frame
	ErrorLineDecay = 0.05
)

// Sorting Pacing
const (
	// NextItemDelay is the pause after a correct drop before the next item
	NextItemDelay = 1500 * time.Millisecond

	// FactDuration is how long an educational fact stays visible
	FactDuration = 3 * time.Second

	// MemoryDuration is how long an unlocked memory card stays visible
	MemoryDuration = 8 * time.Second

	// MessageDuration is how long a transient status message stays visible
	MessageDuration = 2 * time.Second
)
