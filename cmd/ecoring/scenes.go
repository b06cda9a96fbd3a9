package main

import (
	"context"
	"errors"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/ecoring/constellation"
	"github.com/lixenwraith/ecoring/game"
	"github.com/lixenwraith/ecoring/journal"
	"github.com/lixenwraith/ecoring/render"
	"github.com/lixenwraith/ecoring/selection"
	"github.com/lixenwraith/ecoring/sorting"
)

// recorder stores finished sessions; *journal.Journal satisfies it
type recorder interface {
	Record(ctx context.Context, s *journal.Session) error
}

func record(ctx context.Context, rec recorder, s *journal.Session, logger *zap.Logger) {
	if rec == nil {
		return
	}
	s.FinishedAt = time.Now()
	if err := rec.Record(ctx, s); err != nil {
		logger.Warn("journal record failed", zap.Error(err))
	}
}

// nodeForKey maps 0-9, a, b to ring nodes
func nodeForKey(r rune) (constellation.Node, bool) {
	switch {
	case r >= '0' && r <= '9':
		return constellation.Node(r - '0'), true
	case r == 'a' || r == 'b':
		return constellation.Node(10 + r - 'a'), true
	}
	return 0, false
}

type constellationScene struct {
	ctx    context.Context
	g      *game.Constellation
	rec    recorder
	logger *zap.Logger
}

func newConstellationScene(ctx context.Context, g *game.Constellation, rec recorder, logger *zap.Logger) *constellationScene {
	return &constellationScene{ctx: ctx, g: g, rec: rec, logger: logger}
}

func (s *constellationScene) update(dt time.Duration) { s.g.Update(dt) }

func (s *constellationScene) draw(scr render.Screen, muted bool) {
	render.DrawConstellation(scr, s.g, muted)
}

func (s *constellationScene) key(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		s.g.ClickEmpty()
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := unicode.ToLower(ev.Rune())
	if r == 'r' {
		s.restart()
		return
	}

	if s.g.Phase() == selection.PhaseAwaitingCategory {
		cats := constellation.Categories()
		if i := int(r - '1'); i >= 0 && i < len(cats) {
			s.choose(cats[i])
		}
		return
	}
	if n, ok := nodeForKey(r); ok {
		s.clickNode(n)
	}
}

func (s *constellationScene) click(x, y int, l render.Layout) {
	orbit := s.g.Orbit()
	if a, b, ok := s.g.Pending(); ok {
		if c, hit := l.MenuItemAt(x, y, l.Midpoint(a, b, orbit)); hit {
			s.choose(c)
			return
		}
		s.g.CloseMenu()
		return
	}
	if n, ok := l.NodeAt(x, y, orbit); ok {
		s.clickNode(n)
		return
	}
	s.g.ClickEmpty()
}

func (s *constellationScene) clickNode(n constellation.Node) {
	if err := s.g.ClickNode(n); err != nil {
		s.logger.Error("node click", zap.Int("node", int(n)), zap.Error(err))
	}
}

func (s *constellationScene) choose(c constellation.Category) {
	if err := s.g.ChooseCategory(c); err != nil {
		s.logger.Error("choose category", zap.Stringer("category", c), zap.Error(err))
	}
}

func (s *constellationScene) restart() {
	s.save()
	s.g.Restart()
}

func (s *constellationScene) finish(ctx context.Context) {
	s.ctx = ctx
	s.save()
}

// save records the current session unless nothing was connected
func (s *constellationScene) save() {
	st := s.g.State()
	if st.Count() == 0 {
		return
	}
	sess := journal.NewSession(journal.GameConstellation, s.g.Variant(), constellation.RingSize, s.g.Started())
	sess.Progress = st.Count()
	sess.Score = st.Count()
	sess.Completed = s.g.Complete()
	sess.Connections = st.Connections()
	record(s.ctx, s.rec, sess, s.logger)
}

type sortingScene struct {
	ctx      context.Context
	g        *game.Sorting
	rec      recorder
	logger   *zap.Logger
	recorded bool // Current level already in the journal
}

func newSortingScene(ctx context.Context, g *game.Sorting, rec recorder, logger *zap.Logger) *sortingScene {
	return &sortingScene{ctx: ctx, g: g, rec: rec, logger: logger}
}

func (s *sortingScene) update(dt time.Duration) {
	s.g.Update(dt)
	if s.g.Victory() && !s.recorded {
		s.save()
	}
}

func (s *sortingScene) draw(scr render.Screen, muted bool) {
	render.DrawSorting(scr, s.g, muted)
}

func (s *sortingScene) key(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		if s.g.JournalVisible() {
			s.g.ToggleJournal()
			return
		}
		s.g.DismissMemory()
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch r := unicode.ToLower(ev.Rune()); r {
	case 'j':
		s.g.ToggleJournal()
	case 'n':
		s.newGame()
	default:
		kinds := sorting.Kinds()
		if i := int(r - '1'); i >= 0 && i < len(kinds) {
			s.drop(kinds[i])
		}
	}
}

func (s *sortingScene) click(x, y int, l render.Layout) {
	if s.g.JournalVisible() {
		s.g.ToggleJournal()
		return
	}
	if _, ok := s.g.Memory(); ok {
		s.g.DismissMemory()
		return
	}
	if k, ok := l.BinAt(x, y); ok {
		s.drop(k)
	}
}

func (s *sortingScene) drop(k sorting.Kind) {
	if s.g.JournalVisible() {
		return
	}
	err := s.g.Drop(k)
	switch {
	case err == nil:
	case errors.Is(err, sorting.ErrNoItem), errors.Is(err, sorting.ErrRoundOver):
		// Between items or after the level
	default:
		s.logger.Error("drop", zap.Stringer("bin", k), zap.Error(err))
	}
}

func (s *sortingScene) newGame() {
	if !s.recorded {
		s.save()
	}
	s.g.NewGame()
	s.recorded = false
}

func (s *sortingScene) finish(ctx context.Context) {
	s.ctx = ctx
	if !s.recorded {
		s.save()
	}
}

func (s *sortingScene) save() {
	s.recorded = true
	if s.g.Sorted() == 0 {
		return
	}
	sess := journal.NewSession(journal.GameSorting, "level", sorting.ItemsPerLevel, s.g.Started())
	sess.Progress = s.g.Sorted()
	sess.Score = s.g.Score()
	sess.ImpactKg = s.g.ImpactKg()
	sess.Completed = s.g.Victory()
	record(s.ctx, s.rec, sess, s.logger)
}
