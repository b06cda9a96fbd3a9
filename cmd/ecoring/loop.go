package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ecoring/constants"
	"github.com/lixenwraith/ecoring/render"
)

// scene is one playable screen driven by the main loop
type scene interface {
	update(dt time.Duration)
	draw(s render.Screen, muted bool)
	key(ev *tcell.EventKey)
	click(x, y int, l render.Layout)
	finish(ctx context.Context)
}

type loopConfig struct {
	frame      time.Duration
	muted      func() bool
	toggleMute func() bool
}

func (lc loopConfig) isMuted() bool {
	if lc.muted == nil {
		return true
	}
	return lc.muted()
}

// runLoop polls terminal events on a separate goroutine and advances sc one
// fixed frame per tick until the player quits or ctx ends. The caller owns
// the screen and must Fini it to release the poller.
func runLoop(ctx context.Context, screen tcell.Screen, sc scene, lc loopConfig) {
	if lc.frame <= 0 {
		lc.frame = constants.FrameUpdateInterval
	}

	events := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	ticker := time.NewTicker(lc.frame)
	defer ticker.Stop()

	redraw := func() {
		sc.draw(screen, lc.isMuted())
		screen.Show()
	}
	redraw()

	var buttons tcell.ButtonMask
	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return
				}
				if ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M') {
					if lc.toggleMute != nil {
						lc.toggleMute()
					}
					continue
				}
				sc.key(ev)

			case *tcell.EventMouse:
				// React on the press edge only; drags and releases are ignored
				pressed := ev.Buttons()&tcell.Button1 != 0 && buttons&tcell.Button1 == 0
				buttons = ev.Buttons()
				if pressed {
					x, y := ev.Position()
					sc.click(x, y, render.NewLayout(screen.Size()))
				}

			case *tcell.EventResize:
				screen.Sync()
			}
			redraw()

		case <-ticker.C:
			sc.update(lc.frame)
			redraw()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// pollEvents forwards terminal events until the screen is finalized or the loop exits
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}
