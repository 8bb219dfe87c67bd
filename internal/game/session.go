package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/digger/internal/conflict"
	"github.com/samdwyer/digger/internal/entity"
	"github.com/samdwyer/digger/internal/gamedata"
	"github.com/samdwyer/digger/internal/logger"
	"github.com/samdwyer/digger/internal/telemetry"
	"github.com/samdwyer/digger/internal/world"
)

// Session is one run of a level. It owns the board and implements
// entity.World for the creatures on it.
type Session struct {
	level    string
	board    *world.Map
	key      entity.Key
	score    int
	state    State
	ticks    int
	resolver *conflict.Resolver
	log      *logrus.Entry
}

// NewSession starts a session on the given board.
func NewSession(level string, board *world.Map) *Session {
	return &Session{
		level:    level,
		board:    board,
		state:    StatePlaying,
		resolver: conflict.NewResolver(),
		log:      logger.Component("session").WithField("level_id", level),
	}
}

// BuildBoard creates the board selected by cfg: a built-in level by ID, the
// first built-in level when no ID is set, or a generated one for RandomLevel. It returns the board and the level name
// to record with the result.
func BuildBoard(ctx context.Context, cfg Config, levels *gamedata.LevelRegistry) (*world.Map, string, error) {
	if cfg.Level == RandomLevel {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		board := world.Generate(ctx, cfg.Width, cfg.Height, rand.New(rand.NewSource(seed)))
		return board, fmt.Sprintf("%s-%d", RandomLevel, seed), nil
	}

	def := levels.First()
	if cfg.Level != "" {
		def = levels.GetByID(cfg.Level)
	}
	if def == nil {
		return nil, "", fmt.Errorf("unknown level %q", cfg.Level)
	}
	board, err := world.Parse(def.Rows)
	if err != nil {
		return nil, "", fmt.Errorf("level %q: %w", def.ID, err)
	}
	return board, def.ID, nil
}

// At returns the creature at (x, y), or nil.
func (s *Session) At(x, y int) entity.Creature { return s.board.At(x, y) }

// Width returns the board width.
func (s *Session) Width() int { return s.board.Width() }

// Height returns the board height.
func (s *Session) Height() int { return s.board.Height() }

// KeyPressed returns the direction key for the current tick.
func (s *Session) KeyPressed() entity.Key { return s.key }

// IsOver reports whether the digger has been lost.
func (s *Session) IsOver() bool { return s.state == StateOver }

// AddScore adds points to the session score.
func (s *Session) AddScore(points int) { s.score += points }

// SetKey records the key to be read on the next tick.
func (s *Session) SetKey(k entity.Key) { s.key = k }

// TogglePause pauses or resumes a running session.
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
	case StatePaused:
		s.state = StatePlaying
	}
}

func (s *Session) Score() int        { return s.score }
func (s *Session) Ticks() int        { return s.ticks }
func (s *Session) State() State      { return s.state }
func (s *Session) Level() string     { return s.level }
func (s *Session) Board() *world.Map { return s.board }

// action is one creature's decision for the current tick.
type action struct {
	creature entity.Creature
	cmd      entity.Command
	tx, ty   int // Target tile
}

// TickReport summarizes what happened during one tick.
type TickReport struct {
	Tick       int
	Moves      int
	Transforms int
	Deaths     map[entity.Kind]int
	Score      int
	Over       bool
}

// Tick advances the simulation by one step. Every creature decides against
// the same board snapshot, then moves are applied and each tile's conflict
// is resolved. The key is consumed by the tick. The tick counter stops once
// the session is over, so Ticks reports play time only.
//
// Unresolved conflicts are returned joined in the error; the tick still
// completes with the first survivor on each such tile.
func (s *Session) Tick(ctx context.Context) (TickReport, error) {
	if s.state == StatePaused {
		return TickReport{Tick: s.ticks, Score: s.score}, nil
	}

	_, span := telemetry.Start(ctx, "game", "game.tick")
	defer span.End()

	report := TickReport{Deaths: make(map[entity.Kind]int)}

	actions := s.beginAct()
	for _, a := range actions {
		if a.cmd.DeltaX != 0 || a.cmd.DeltaY != 0 {
			report.Moves++
		}
		if a.cmd.TransformTo != nil {
			report.Transforms++
		}
	}

	errs := s.endAct(actions, report.Deaths)

	s.key = entity.KeyNone

	// Ticks after the digger is lost only let sacks settle; they are not play time.
	if s.state == StatePlaying {
		s.ticks++
		if _, _, alive := s.board.Find(entity.KindPlayer); !alive {
			s.state = StateOver
			s.log.WithFields(logrus.Fields{
				"tick":  s.ticks,
				"score": s.score,
			}).Info("digger lost")
		}
	}

	report.Tick = s.ticks
	report.Score = s.score
	report.Over = s.IsOver()

	span.SetAttributes(
		attribute.Int("tick.number", report.Tick),
		attribute.Int("tick.moves", report.Moves),
		attribute.Int("tick.transforms", report.Transforms),
		attribute.Int("tick.deaths", deathCount(report.Deaths)),
		attribute.Int("session.score", report.Score),
		attribute.Bool("session.over", report.Over),
	)

	s.log.WithFields(logrus.Fields{
		"tick":   report.Tick,
		"moves":  report.Moves,
		"deaths": deathCount(report.Deaths),
		"score":  report.Score,
	}).Debug("tick")

	return report, errors.Join(errs...)
}

// beginAct collects every creature's command, column by column.
// A move that would leave the board is folded into staying put.
func (s *Session) beginAct() []action {
	actions := make([]action, 0, s.board.Width()*s.board.Height())

	s.board.Each(func(x, y int, c entity.Creature) {
		cmd := c.Act(s, x, y)
		tx, ty := cmd.Target(x, y)
		if !s.board.InBounds(tx, ty) {
			s.log.WithFields(logrus.Fields{
				"kind": c.Kind().String(),
				"x":    x,
				"y":    y,
				"dx":   cmd.DeltaX,
				"dy":   cmd.DeltaY,
			}).Warn("move off the board ignored")
			cmd.DeltaX, cmd.DeltaY = 0, 0
			tx, ty = x, y
		}
		actions = append(actions, action{creature: c, cmd: cmd, tx: tx, ty: ty})
	})

	return actions
}

// endAct moves creatures to their targets and settles every tile.
func (s *Session) endAct(actions []action, deaths map[entity.Kind]int) []error {
	w, h := s.board.Width(), s.board.Height()
	candidates := make([][][]entity.Creature, h)
	for y := range candidates {
		candidates[y] = make([][]entity.Creature, w)
	}

	for _, a := range actions {
		next := a.creature
		if a.cmd.TransformTo != nil {
			next = a.cmd.TransformTo
		}
		candidates[a.ty][a.tx] = append(candidates[a.ty][a.tx], next)
	}

	var errs []error
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			outcome, err := s.resolver.Resolve(s, x, y, candidates[y][x])
			if err != nil {
				s.log.WithError(err).Warn("conflict left more than one survivor")
				errs = append(errs, err)
			}
			for _, dead := range outcome.Dead {
				deaths[dead.Kind()]++
			}
			s.board.Set(x, y, outcome.Winner)
		}
	}
	return errs
}

func deathCount(deaths map[entity.Kind]int) int {
	total := 0
	for _, n := range deaths {
		total += n
	}
	return total
}
