package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/digger/internal/entity"
	"github.com/samdwyer/digger/internal/gamedata"
	"github.com/samdwyer/digger/internal/logger"
	"github.com/samdwyer/digger/internal/scores"
	"github.com/samdwyer/digger/internal/telemetry"
	"github.com/samdwyer/digger/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	levels   *gamedata.LevelRegistry
	store    scores.Storage
	session  *Session
	running  bool
	log      *logrus.Entry
}

// New creates a new game instance. The store receives a result for every
// finished or abandoned session.
func New(cfg Config, store scores.Storage) (*Game, error) {
	sprites, err := gamedata.LoadSpriteRegistry()
	if err != nil {
		return nil, err
	}
	levels, err := gamedata.LoadLevelRegistry()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, sprites),
		levels:   levels,
		store:    store,
		running:  true,
		log:      logger.Component("game"),
	}, nil
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	if err := g.start(ctx); err != nil {
		return err
	}

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go g.pollEvents(events, done)

	ticker := time.NewTicker(g.cfg.TickInterval)
	defer ticker.Stop()

	g.render()
	for g.running {
		select {
		case <-ctx.Done():
			g.running = false

		case ev := <-events:
			if err := g.handleEvent(ctx, ev); err != nil {
				return err
			}

		case <-ticker.C:
			if _, err := g.session.Tick(ctx); err != nil {
				g.log.WithError(err).Warn("tick finished with conflicts")
			}
		}
		g.render()
	}

	g.finish()
	return nil
}

// start begins a new session on the configured level.
func (g *Game) start(ctx context.Context) error {
	ctx, span := telemetry.Start(ctx, "game", "game.init",
		attribute.String("level.requested", g.cfg.Level))
	defer span.End()

	board, level, err := BuildBoard(ctx, g.cfg, g.levels)
	if err != nil {
		return err
	}
	g.session = NewSession(level, board)

	span.SetAttributes(
		attribute.String("level.id", level),
		attribute.Int("level.width", board.Width()),
		attribute.Int("level.height", board.Height()),
		attribute.Int("level.monsters", board.Count(entity.KindMonster)),
		attribute.Int("level.gold", board.Count(entity.KindGold)),
	)
	g.log.WithField("level_id", level).Info("session started")
	return nil
}

// finish records the current session in the score store.
func (g *Game) finish() {
	if g.session == nil || g.store == nil {
		return
	}

	outcome := scores.OutcomeQuit
	if g.session.IsOver() {
		outcome = scores.OutcomeDied
	}
	result := scores.NewResult(g.session.Level(), g.session.Score(), g.session.Ticks(), outcome)
	if err := g.store.SaveResult(result); err != nil {
		g.log.WithError(err).Error("failed to save result")
		return
	}
	g.log.WithFields(logrus.Fields{
		"id":      result.ID,
		"score":   result.Score,
		"outcome": result.Outcome,
	}).Info("result saved")
}

// pollEvents forwards terminal events until the screen closes or done is closed.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
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

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	if key, ok := DirectionKey(ev); ok {
		g.session.SetKey(key)
		return nil
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'p', 'P':
			g.session.TogglePause()
		case 'r', 'R':
			g.finish()
			return g.start(ctx)
		}
	}
	return nil
}

// DirectionKey maps arrow keys and WASD to the player's key signal.
func DirectionKey(ev *tcell.EventKey) (entity.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return entity.KeyUp, true
	case tcell.KeyDown:
		return entity.KeyDown, true
	case tcell.KeyLeft:
		return entity.KeyLeft, true
	case tcell.KeyRight:
		return entity.KeyRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return entity.KeyUp, true
		case 's', 'S':
			return entity.KeyDown, true
		case 'a', 'A':
			return entity.KeyLeft, true
		case 'd', 'D':
			return entity.KeyRight, true
		}
	}
	return entity.KeyNone, false
}

// render draws the current session.
func (g *Game) render() {
	g.renderer.Render(g.session.Board(), ui.Status{
		Level: g.session.Level(),
		Score: g.session.Score(),
		Tick:  g.session.Ticks(),
		State: g.session.State().String(),
	})
}
