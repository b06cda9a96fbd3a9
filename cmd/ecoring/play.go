package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/ecoring/audio"
	"github.com/lixenwraith/ecoring/constellation"
	"github.com/lixenwraith/ecoring/game"
	"github.com/lixenwraith/ecoring/journal"
)

var (
	sequenceFlag bool
	freeFlag     bool
)

var constellationCmd = &cobra.Command{
	Use:   "constellation",
	Short: "Link the twelve-star habit ring",
	Long: `Select two stars, then a habit category, to draw a link.

Keys: 0-9 a b select stars, 1-6 pick a habit while the menu is open,
Esc cancels, r restarts, m toggles sound, q quits. Mouse clicks work too.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := engineOptions(sequenceFlag || cfg.Game.Sequence, freeFlag || !cfg.Game.Adjacency)
		engine, err := constellation.NewEngine(opts...)
		if err != nil {
			return err
		}
		var tones []audio.Cue
		for _, c := range constellation.Categories() {
			tones = append(tones, audio.Tone(c.Tone()))
		}
		return play(cmd.Context(), tones, func(p audio.Player, rec recorder) scene {
			g := game.NewConstellation(engine, p, cfg.Game.OrbitSpeed, logger)
			return newConstellationScene(cmd.Context(), g, rec, logger)
		})
	},
}

var sortingCmd = &cobra.Command{
	Use:   "sorting",
	Short: "Sort trash into bins and unlock ocean memories",
	Long: `Drop each item into its bin: 1 plastic, 2 paper, 3 glass, 4 organic.

j opens the memory journal, n starts a new level, m toggles sound, q quits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		preload := []audio.Cue{{Type: audio.SoundGood}, {Type: audio.SoundBad}}
		return play(cmd.Context(), preload, func(p audio.Player, rec recorder) scene {
			g := game.NewSorting(rand.New(rand.NewSource(time.Now().UnixNano())), p, logger)
			return newSortingScene(cmd.Context(), g, rec, logger)
		})
	},
}

func init() {
	constellationCmd.Flags().BoolVar(&sequenceFlag, "sequence", false, "Require the habit sequence")
	constellationCmd.Flags().BoolVar(&freeFlag, "free", false, "Allow linking neighboring stars")
}

func engineOptions(sequence, free bool) []constellation.Option {
	var opts []constellation.Option
	if sequence {
		opts = append(opts, constellation.WithSequence(constellation.DefaultSequence))
	}
	if free {
		opts = append(opts, constellation.WithoutAdjacency())
	}
	return opts
}

// play owns the terminal, speaker and journal for one game run
func play(ctx context.Context, preload []audio.Cue, build func(audio.Player, recorder) scene) error {
	if ctx == nil {
		ctx = context.Background()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mECORING CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio, logger)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the game runs silent
		logger.Warn("audio initialization failed", zap.Error(err))
	} else {
		sound.Preload(preload...)
	}
	defer sound.Cleanup()

	var rec recorder
	if j, err := journal.Open(cfg.Journal.Path, logger); err != nil {
		logger.Warn("journal unavailable", zap.Error(err))
	} else {
		defer j.Close()
		rec = j
	}

	sc := build(sound, rec)
	runLoop(ctx, screen, sc, loopConfig{
		frame:      time.Second / time.Duration(cfg.Game.FPS),
		muted:      sound.IsMuted,
		toggleMute: sound.ToggleMute,
	})
	sc.finish(ctx)
	return nil
}
