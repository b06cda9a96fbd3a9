package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/ecoring/config"
)

// SoundManager owns the speaker and mixes every game cue into it
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	cache       *soundCache
	initialized bool
	muted       atomic.Bool
	played      atomic.Uint64

	logger *zap.Logger
}

// NewSoundManager creates a sound manager; nothing plays until Initialize
func NewSoundManager(cfg config.AudioConfig, logger *zap.Logger) *SoundManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	sm := &SoundManager{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		cache:  newSoundCache(beep.SampleRate(cfg.SampleRate)),
		logger: logger,
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	bufferSize := sm.rate.N(time.Duration(sm.cfg.BufferMs) * time.Millisecond)
	if err := speaker.Init(sm.rate, bufferSize); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.cache.preload(Cue{Type: SoundSelect}, Cue{Type: SoundError})
	sm.initialized = true
	sm.logger.Debug("audio initialized",
		zap.Int("sample_rate", int(sm.rate)),
		zap.Int("buffer_samples", bufferSize),
	)
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}

// Play queues cue on the mixer. Returns false when nothing was queued.
func (sm *SoundManager) Play(cue Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted.Load() {
		return false
	}

	buf := sm.cache.get(cue)
	if buf == nil {
		sm.logger.Debug("no streamer for cue", zap.Stringer("type", cue.Type))
		return false
	}
	streamer := newVolume(buf.Streamer(0, buf.Len()), sm.cfg.MasterVolume)

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()

	sm.played.Add(1)
	return true
}

// Preload renders cues into the cache so their first play does no synthesis
func (sm *SoundManager) Preload(cues ...Cue) {
	sm.cache.preload(cues...)
}

// ToggleMute toggles mute state, returns true if sound is now on
func (sm *SoundManager) ToggleMute() bool {
	newMute := !sm.muted.Load()
	sm.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Played returns the number of cues queued since start
func (sm *SoundManager) Played() uint64 {
	return sm.played.Load()
}
