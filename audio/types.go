package audio

import "fmt"

// SoundType represents the game's sound cues
type SoundType int

const (
	SoundTone   SoundType = iota // Category success tone, frequency carried by the cue
	SoundSelect                  // First node picked
	SoundError                   // Forbidden or wrong connection
	SoundOracle                  // All connections complete
	SoundGood                    // Correct bin
	SoundBad                     // Wrong bin
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundTone:
		return "tone"
	case SoundSelect:
		return "select"
	case SoundError:
		return "error"
	case SoundOracle:
		return "oracle"
	case SoundGood:
		return "good"
	case SoundBad:
		return "bad"
	default:
		return fmt.Sprintf("sound(%d)", int(s))
	}
}

// Cue is one request to play a sound
type Cue struct {
	Type SoundType
	Freq float64 // Used by SoundTone
}

// Tone builds a SoundTone cue
func Tone(freq float64) Cue {
	return Cue{Type: SoundTone, Freq: freq}
}

// Player plays cues; SoundManager is the real implementation
type Player interface {
	Play(Cue) bool
}
