package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// soundCache stores pre-rendered unity-gain buffers per cue
type soundCache struct {
	mu    sync.RWMutex
	rate  beep.SampleRate
	store map[Cue]*beep.Buffer
}

func newSoundCache(rate beep.SampleRate) *soundCache {
	return &soundCache{
		rate:  rate,
		store: make(map[Cue]*beep.Buffer),
	}
}

// get returns the cached buffer or renders it on demand, nil for cues with no sound
func (c *soundCache) get(cue Cue) *beep.Buffer {
	if cue.Type != SoundTone {
		cue.Freq = 0 // Only tones are keyed by pitch
	}

	c.mu.RLock()
	buf, ok := c.store[cue]
	c.mu.RUnlock()
	if ok {
		return buf
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if buf, ok := c.store[cue]; ok {
		return buf
	}

	streamer := GetSoundEffect(cue, c.rate, 1.0)
	if streamer != nil {
		buf = beep.NewBuffer(beep.Format{SampleRate: c.rate, NumChannels: 2, Precision: 2})
		buf.Append(streamer)
	}
	c.store[cue] = buf
	return buf
}

// preload renders cues ahead of the first play
func (c *soundCache) preload(cues ...Cue) {
	for _, cue := range cues {
		c.get(cue)
	}
}
