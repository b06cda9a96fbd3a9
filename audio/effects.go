package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/ecoring/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a raw wave whose frequency glides from start to end
type oscillator struct {
	start, end float64
	glide      int // Samples spent gliding, 0 for a fixed pitch
	exp        bool
	phase      float64
	duration   int
	position   int
	wave       WaveType
	rate       beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		start:    freq,
		end:      freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

// NewSweep creates an oscillator gliding from -> to over glide, then holding.
// Exponential glides need both frequencies positive.
func NewSweep(from, to float64, glide, duration time.Duration, exponential bool, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		start:    from,
		end:      to,
		glide:    rate.N(glide),
		exp:      exponential && from > 0 && to > 0,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) freq() float64 {
	if o.glide <= 0 || o.position >= o.glide {
		return o.end
	}
	t := float64(o.position) / float64(o.glide)
	if o.exp {
		return o.start * math.Pow(o.end/o.start, t)
	}
	return o.start + (o.end-o.start)*t
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq() / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay applies an exponential gain ramp from gain to floor over ramp, then
// holds floor until the stream ends
type decay struct {
	streamer beep.Streamer
	position int
	ramp     int
	gain     float64
	floor    float64
}

// NewDecay shapes s with an exponential fade, the shape of a struck tone
func NewDecay(s beep.Streamer, gain, floor float64, ramp time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{
		streamer: s,
		ramp:     rate.N(ramp),
		gain:     gain,
		floor:    floor,
	}
}

func (d *decay) level() float64 {
	if d.ramp <= 0 || d.position >= d.ramp {
		return d.floor
	}
	t := float64(d.position) / float64(d.ramp)
	return d.gain * math.Pow(d.floor/d.gain, t)
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := d.level()
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateTone generates the struck sine used for category, selection and oracle cues
func CreateTone(freq float64, rate beep.SampleRate, master float64) beep.Streamer {
	osc := NewOscillator(freq, constants.ToneDuration, WaveSine, rate)
	shaped := NewDecay(osc, constants.ToneGain, constants.ToneFloor, constants.ToneDecay, rate)
	return newVolume(shaped, master)
}

// CreateErrorSound generates the rasping sawtooth for forbidden connections
func CreateErrorSound(rate beep.SampleRate, master float64) beep.Streamer {
	osc := NewOscillator(constants.ErrorToneFreq, constants.ErrorSoundDuration, WaveSaw, rate)
	shaped := NewDecay(osc, constants.ToneGain, constants.ToneFloor, constants.ErrorSoundDecay, rate)
	return newVolume(shaped, master)
}

// CreateGoodSound generates the rising chirp for a correct bin
func CreateGoodSound(rate beep.SampleRate, master float64) beep.Streamer {
	osc := NewSweep(constants.GoodSweepFrom, constants.GoodSweepTo, constants.GoodSweepDuration,
		constants.SweepSoundDuration, true, WaveSine, rate)
	shaped := NewDecay(osc, constants.SweepGain, constants.SweepFloor, constants.GoodSoundDecay, rate)
	return newVolume(shaped, master)
}

// CreateBadSound generates the falling buzz for a wrong bin
func CreateBadSound(rate beep.SampleRate, master float64) beep.Streamer {
	osc := NewSweep(constants.BadSweepFrom, constants.BadSweepTo, constants.BadSweepDuration,
		constants.SweepSoundDuration, false, WaveSaw, rate)
	shaped := NewDecay(osc, constants.SweepGain, constants.SweepFloor, constants.BadSoundDecay, rate)
	return newVolume(shaped, master)
}

// GetSoundEffect returns the streamer for cue, nil for an unknown type
func GetSoundEffect(cue Cue, rate beep.SampleRate, master float64) beep.Streamer {
	switch cue.Type {
	case SoundTone:
		if cue.Freq <= 0 {
			return nil
		}
		return CreateTone(cue.Freq, rate, master)
	case SoundSelect:
		return CreateTone(constants.SelectToneFreq, rate, master)
	case SoundOracle:
		return CreateTone(constants.OracleToneFreq, rate, master)
	case SoundError:
		return CreateErrorSound(rate, master)
	case SoundGood:
		return CreateGoodSound(rate, master)
	case SoundBad:
		return CreateBadSound(rate, master)
	default:
		return nil
	}
}
