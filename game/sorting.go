package game

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/ecoring/audio"
	"github.com/lixenwraith/ecoring/constants"
	"github.com/lixenwraith/ecoring/memories"
	"github.com/lixenwraith/ecoring/sorting"
)

const mistakeMessage = "¡Ups! Ese no es el contenedor correcto. Intenta de nuevo."

// Sorting runs the trash-sorting game
type Sorting struct {
	round   *sorting.Round
	tracker *memories.Tracker
	player  audio.Player
	logger  *zap.Logger

	nextIn time.Duration // Countdown to the next item, 0 when an item is active

	fact   string
	factIn time.Duration

	memory   memories.Memory
	memoryIn time.Duration

	message   string
	messageIn time.Duration

	showJournal bool
	started     time.Time
}

// NewSorting creates the game and spawns the first item
func NewSorting(rng *rand.Rand, player audio.Player, logger *zap.Logger) *Sorting {
	if logger == nil {
		logger = zap.NewNop()
	}
	if player == nil {
		player = silent{}
	}
	g := &Sorting{
		round:   sorting.NewRound(rng),
		tracker: memories.NewTracker(),
		player:  player,
		logger:  logger,
	}
	g.NewGame()
	return g
}

// NewGame resets score and level and spawns an item. Unlocked memories persist.
func (g *Sorting) NewGame() {
	g.round.Reset()
	g.nextIn = 0
	g.fact, g.factIn = "", 0
	g.message, g.messageIn = "", 0
	g.started = time.Now()
	g.spawn()
}

func (g *Sorting) spawn() {
	if _, err := g.round.Spawn(); err != nil {
		g.logger.Info("sorting level complete",
			zap.Int("score", g.round.Score()),
			zap.Float64("impact_kg", g.round.ImpactKg()),
		)
	}
}

// Drop sorts the active item into bin
func (g *Sorting) Drop(bin sorting.Kind) error {
	res, err := g.round.Drop(bin)
	if err != nil {
		return err
	}

	if !res.Correct {
		g.player.Play(audio.Cue{Type: audio.SoundBad})
		g.message, g.messageIn = mistakeMessage, constants.MessageDuration
		return nil
	}

	g.player.Play(audio.Cue{Type: audio.SoundGood})
	g.logger.Debug("item sorted",
		zap.String("item", res.Item.Name),
		zap.Stringer("bin", bin),
		zap.Int("score", g.round.Score()),
	)

	if res.Fact != "" {
		g.fact, g.factIn = res.Fact, constants.FactDuration
	}
	if m, ok := g.tracker.Register(res.Item.Kind); ok {
		g.memory, g.memoryIn = m, constants.MemoryDuration
		g.logger.Info("memory unlocked", zap.String("id", m.ID))
	}

	g.nextIn = constants.NextItemDelay
	return nil
}

// DismissMemory closes the memory card early
func (g *Sorting) DismissMemory() {
	g.memoryIn = 0
}

// ToggleJournal shows or hides the memory journal
func (g *Sorting) ToggleJournal() {
	g.showJournal = !g.showJournal
}

// Update advances timers by dt
func (g *Sorting) Update(dt time.Duration) {
	if g.nextIn > 0 {
		g.nextIn -= dt
		if g.nextIn <= 0 {
			g.nextIn = 0
			g.spawn()
		}
	}
	g.factIn = tick(g.factIn, dt)
	if g.factIn == 0 {
		g.fact = ""
	}
	g.memoryIn = tick(g.memoryIn, dt)
	g.messageIn = tick(g.messageIn, dt)
	if g.messageIn == 0 {
		g.message = ""
	}
}

func tick(left, dt time.Duration) time.Duration {
	if left <= dt {
		return 0
	}
	return left - dt
}

// Active returns the item to sort
func (g *Sorting) Active() (sorting.Item, bool) { return g.round.Active() }

// Score returns correct drops this level
func (g *Sorting) Score() int { return g.round.Score() }

// ImpactKg returns the simulated kilograms diverted this level
func (g *Sorting) ImpactKg() float64 { return g.round.ImpactKg() }

// Sorted returns level progress
func (g *Sorting) Sorted() int { return g.round.Sorted() }

// Victory reports whether the level-complete card is showing
func (g *Sorting) Victory() bool { return g.round.Over() && g.nextIn == 0 }

// Fact returns the visible educational fact, empty when hidden
func (g *Sorting) Fact() string { return g.fact }

// Memory returns the visible memory card
func (g *Sorting) Memory() (memories.Memory, bool) {
	return g.memory, g.memoryIn > 0
}

// Message returns the transient status line
func (g *Sorting) Message() string { return g.message }

// JournalVisible reports whether the journal overlay is open
func (g *Sorting) JournalVisible() bool { return g.showJournal }

// Journal returns the memory journal text
func (g *Sorting) Journal() string { return g.tracker.Journal() }

// Started returns when the current level began
func (g *Sorting) Started() time.Time { return g.started }
