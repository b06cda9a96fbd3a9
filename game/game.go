// Package game drives the two mini-games frame by frame: it feeds player input
// into the rule packages and keeps the transient presentation state (pulses,
// fading error links, timed cards) that the renderer draws.
package game

import "github.com/lixenwraith/ecoring/audio"

// silent drops every cue when no audio output is available
type silent struct{}

func (silent) Play(audio.Cue) bool { return false }
