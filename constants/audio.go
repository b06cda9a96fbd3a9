package constants

import "time"

// Tone Timing (category success, selection blip, oracle)
const (
	ToneDuration = 600 * time.Millisecond
	ToneDecay    = 500 * time.Millisecond // Exponential ramp 0.1 -> 0.001
	ToneGain     = 0.1
	ToneFloor    = 0.001
)

// Frequencies in Hz
const (
	SelectToneFreq = 300.0
	OracleToneFreq = 880.0
	ErrorToneFreq  = 150.0
)

// Error Sound Timing
const (
	ErrorSoundDuration = 400 * time.Millisecond
	ErrorSoundDecay    = 300 * time.Millisecond
)

// Sorting Sweep Timing
const (
	GoodSweepFrom     = 500.0
	GoodSweepTo       = 1000.0
	GoodSweepDuration = 100 * time.Millisecond
	GoodSoundDecay    = 300 * time.Millisecond

	BadSweepFrom     = 200.0
	BadSweepTo       = 100.0
	BadSweepDuration = 200 * time.Millisecond
	BadSoundDecay    = 200 * time.Millisecond

	SweepSoundDuration = 300 * time.Millisecond
	SweepGain          = 1.0
	SweepFloor         = 0.01
)
