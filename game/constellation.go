package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/ecoring/audio"
	"github.com/lixenwraith/ecoring/constants"
	"github.com/lixenwraith/ecoring/constellation"
	"github.com/lixenwraith/ecoring/selection"
)

// lifeEpsilon absorbs float drift when fading by fixed steps
const lifeEpsilon = 1e-9

// ErrorLine is a transient red link drawn after a rejected connection
type ErrorLine struct {
	A, B constellation.Node
	Life float64 // 1.0 fading to 0
}

// Constellation runs one constellation puzzle session and its feedback effects.
// All methods run on the main loop goroutine.
type Constellation struct {
	machine *selection.Machine
	player  audio.Player
	logger  *zap.Logger

	orbitSpeed float64
	orbit      float64

	pulses     [constellation.RingSize]float64
	errorLines []ErrorLine

	oracleIn      time.Duration // Countdown to the oracle card, 0 when idle
	oracleVisible bool

	message   string
	messageIn time.Duration

	started time.Time
}

// NewConstellation creates a session around engine
func NewConstellation(engine *constellation.Engine, player audio.Player, orbitSpeed float64, logger *zap.Logger) *Constellation {
	if logger == nil {
		logger = zap.NewNop()
	}
	if player == nil {
		player = silent{}
	}
	return &Constellation{
		machine:    selection.NewMachine(engine),
		player:     player,
		logger:     logger,
		orbitSpeed: orbitSpeed,
		errorLines: make([]ErrorLine, 0, 8),
		started:    time.Now(),
	}
}

// Hint is the rule reminder shown to the player
func (g *Constellation) Hint() string {
	if g.machine.Engine().Sequenced() {
		return "Regla de la Estrella: no conectes vecinos y sigue la secuencia de hábitos."
	}
	return "Regla de la Estrella: no conectes vecinos. Cruza el centro para tejer la red."
}

// ClickNode routes a node selection through the pairing machine
func (g *Constellation) ClickNode(n constellation.Node) error {
	out, err := g.machine.Click(n)
	if err != nil {
		return err
	}

	switch out.Kind {
	case selection.OutcomeSelected:
		g.pulses[n] = constants.PulseStart
		g.player.Play(audio.Tone(constants.SelectToneFreq))
	case selection.OutcomeRejected:
		g.reject(out)
	case selection.OutcomePairReady:
		g.logger.Debug("pair ready", zap.Stringer("pair", out.Pair))
	}
	return nil
}

// ClickEmpty handles a click away from every node: it drops a single
// selection or dismisses the category menu
func (g *Constellation) ClickEmpty() {
	if g.machine.Phase() == selection.PhaseAwaitingCategory {
		g.machine.Close()
		return
	}
	g.machine.Deselect()
}

// CloseMenu dismisses the category menu without connecting
func (g *Constellation) CloseMenu() {
	g.machine.Close()
}

// ChooseCategory submits c for the pending pair
func (g *Constellation) ChooseCategory(c constellation.Category) error {
	out, err := g.machine.Choose(c)
	if err != nil {
		return err
	}

	switch out.Kind {
	case selection.OutcomeAccepted:
		d := out.Decision
		g.player.Play(audio.Tone(c.Tone()))
		g.logger.Info("connection accepted",
			zap.Stringer("pair", out.Pair),
			zap.Stringer("category", c),
			zap.Int("progress", d.ProgressIndex),
		)
		if d.Complete() {
			g.oracleIn = constants.OracleDelay
		}
	case selection.OutcomeRejected:
		g.reject(out)
	}
	return nil
}

func (g *Constellation) reject(out selection.Outcome) {
	g.logger.Debug("connection rejected",
		zap.Stringer("pair", out.Pair),
		zap.Stringer("reason", out.Reason),
	)
	if !out.Reason.Feedback() {
		return
	}

	g.player.Play(audio.Cue{Type: audio.SoundError})
	g.errorLines = append(g.errorLines, ErrorLine{A: out.Pair.Lo, B: out.Pair.Hi, Life: 1.0})

	switch out.Reason {
	case constellation.AdjacencyViolation:
		g.flash("No conectes vecinos: cruza el centro.")
	case constellation.Duplicate:
		g.flash("Esa conexión ya existe.")
	case constellation.SequenceMismatch:
		if want, ok := g.machine.Engine().Expected(g.machine.State()); ok {
			g.flash(fmt.Sprintf("Ese hábito no toca ahora. Prueba con %s %s.", want.Emoji(), want))
		} else {
			g.flash("La secuencia ya está completa.")
		}
	}
}

func (g *Constellation) flash(msg string) {
	g.message = msg
	g.messageIn = constants.MessageDuration
}

// Restart clears the session and every effect
func (g *Constellation) Restart() {
	g.machine.Restart()
	g.pulses = [constellation.RingSize]float64{}
	g.errorLines = g.errorLines[:0]
	g.oracleIn = 0
	g.oracleVisible = false
	g.message = ""
	g.messageIn = 0
	g.started = time.Now()
}

// Update advances effects by one frame of length dt
func (g *Constellation) Update(dt time.Duration) {
	g.orbit += g.orbitSpeed

	for i := range g.pulses {
		if g.pulses[i] > 0 {
			g.pulses[i] -= constants.PulseDecay
			if g.pulses[i] < 0 {
				g.pulses[i] = 0
			}
		}
	}

	// Fade error lines, compacting in place
	kept := g.errorLines[:0]
	for _, l := range g.errorLines {
		l.Life -= constants.ErrorLineDecay
		if l.Life > lifeEpsilon {
			kept = append(kept, l)
		}
	}
	g.errorLines = kept

	if g.oracleIn > 0 {
		g.oracleIn -= dt
		if g.oracleIn <= 0 {
			g.oracleIn = 0
			g.oracleVisible = true
			g.player.Play(audio.Cue{Type: audio.SoundOracle})
			g.logger.Info("constellation complete", zap.Duration("elapsed", time.Since(g.started)))
		}
	}

	if g.messageIn > 0 {
		g.messageIn -= dt
		if g.messageIn <= 0 {
			g.messageIn = 0
			g.message = ""
		}
	}
}

// State returns the current rule-engine session state
func (g *Constellation) State() constellation.State { return g.machine.State() }

// Engine returns the rule engine
func (g *Constellation) Engine() *constellation.Engine { return g.machine.Engine() }

// Phase returns the pairing phase
func (g *Constellation) Phase() selection.Phase { return g.machine.Phase() }

// Selected returns the held first node
func (g *Constellation) Selected() (constellation.Node, bool) { return g.machine.Selected() }

// Pending returns the pair awaiting a category
func (g *Constellation) Pending() (a, b constellation.Node, ok bool) { return g.machine.Pending() }

// Pulse returns the selection pulse strength of n
func (g *Constellation) Pulse(n constellation.Node) float64 { return g.pulses[n] }

// ErrorLines returns the fading rejection links
func (g *Constellation) ErrorLines() []ErrorLine { return g.errorLines }

// Orbit returns the ring rotation offset in radians
func (g *Constellation) Orbit() float64 { return g.orbit }

// Revealed returns how many mask tiles are uncovered
func (g *Constellation) Revealed() int {
	n := g.machine.State().Count()
	if n > constellation.RingSize {
		return constellation.RingSize
	}
	return n
}

// OracleVisible reports whether the completion card is showing
func (g *Constellation) OracleVisible() bool { return g.oracleVisible }

// Complete reports whether every connection slot has been filled
func (g *Constellation) Complete() bool {
	return g.machine.State().Count() >= constellation.RingSize
}

// Message returns the transient status line
func (g *Constellation) Message() string { return g.message }

// Started returns when the current session began
func (g *Constellation) Started() time.Time { return g.started }

// Variant names the active rule set for the journal
func (g *Constellation) Variant() string {
	e := g.machine.Engine()
	switch {
	case e.Sequenced():
		return "sequence"
	case e.NeighborRule():
		return "star"
	default:
		return "free"
	}
}
