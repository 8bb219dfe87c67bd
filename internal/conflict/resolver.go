// Package conflict decides which creature keeps a tile when several end a
// tick on it.
package conflict

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/digger/internal/entity"
	"github.com/samdwyer/digger/internal/logger"
)

// ErrUnresolved is returned when more than one creature survives on a tile.
var ErrUnresolved = errors.New("unresolved conflict")

// Outcome contains the result of resolving one tile.
type Outcome struct {
	Winner entity.Creature   // Creature left on the tile, nil if none survived
	Dead   []entity.Creature // Candidates removed by the conflict
}

// Resolver settles tile conflicts.
type Resolver struct {
	log *logrus.Entry
}

// NewResolver creates a new conflict resolver.
func NewResolver() *Resolver {
	return &Resolver{
		log: logger.Component("conflict"),
	}
}

// Resolve asks every candidate whether it dies against each of its rivals.
// A candidate that dies against any rival is removed. DeadInConflict is
// called for every ordered pair, so side effects such as scoring happen
// even when the candidate survives.
//
// When more than one candidate survives the first survivor wins and the
// returned error wraps ErrUnresolved.
func (r *Resolver) Resolve(w entity.World, x, y int, candidates []entity.Creature) (Outcome, error) {
	switch len(candidates) {
	case 0:
		return Outcome{}, nil
	case 1:
		return Outcome{Winner: candidates[0]}, nil
	}

	var outcome Outcome
	alive := make([]entity.Creature, 0, len(candidates))
	for i, candidate := range candidates {
		dead := false
		for j, rival := range candidates {
			if i != j && candidate.DeadInConflict(w, rival) {
				dead = true
			}
		}
		if dead {
			outcome.Dead = append(outcome.Dead, candidate)
		} else {
			alive = append(alive, candidate)
		}
	}

	if len(alive) > 0 {
		outcome.Winner = alive[0]
	}

	r.log.WithFields(logrus.Fields{
		"x":          x,
		"y":          y,
		"candidates": kinds(candidates),
		"winner":     kindOf(outcome.Winner),
	}).Debug("conflict resolved")

	if len(alive) > 1 {
		return outcome, fmt.Errorf("%w at (%d,%d): %v survived", ErrUnresolved, x, y, kinds(alive))
	}
	return outcome, nil
}

func kinds(cs []entity.Creature) []string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = kindOf(c)
	}
	return names
}

func kindOf(c entity.Creature) string {
	if c == nil {
		return "none"
	}
	return c.Kind().String()
}
