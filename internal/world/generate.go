package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/digger/internal/entity"
	"github.com/samdwyer/digger/internal/telemetry"
)

const (
	// Cave parameters
	maxCaves      = 5
	caveAttempts  = 40
	minCaveWidth  = 3
	maxCaveWidth  = 7
	minCaveHeight = 2
	maxCaveHeight = 3

	// Out of 100, per remaining terrain cell
	sackChance = 6
	goldChance = 5
)

// Generate creates a random level. The same rng seed always yields the same board.
func Generate(ctx context.Context, width, height int, rng *rand.Rand) *Map {
	_, span := telemetry.Start(ctx, "world", "level.generate")
	defer span.End()

	startTime := time.Now()

	m := NewMap(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.cells[y][x] = entity.New(entity.KindTerrain)
		}
	}

	caves := m.digCaves(rng)
	m.connectCaves(caves, rng)

	// Player starts in the top-left corner.
	if width > 0 && height > 0 {
		m.cells[0][0] = entity.New(entity.KindPlayer)
	}

	m.scatterLoot(caves, rng)

	// Each cave holds one monster.
	for _, cave := range caves {
		cx, cy := cave.Center()
		m.cells[cy][cx] = entity.New(entity.KindMonster)
	}

	span.SetAttributes(
		attribute.Int("level.width", width),
		attribute.Int("level.height", height),
		attribute.Int("level.caves", len(caves)),
		attribute.Int("level.sacks", m.Count(entity.KindSack)),
		attribute.Int("level.gold", m.Count(entity.KindGold)),
		attribute.Int64("level.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return m
}

// digCaves carves non-overlapping caves below the top two rows.
func (m *Map) digCaves(rng *rand.Rand) []Cave {
	caves := make([]Cave, 0, maxCaves)
	if m.width < maxCaveWidth+2 || m.height < maxCaveHeight+4 {
		return caves
	}

	for i := 0; i < caveAttempts && len(caves) < maxCaves; i++ {
		w := minCaveWidth + rng.Intn(maxCaveWidth-minCaveWidth+1)
		h := minCaveHeight + rng.Intn(maxCaveHeight-minCaveHeight+1)
		cave := Cave{
			X:      1 + rng.Intn(m.width-w-1),
			Y:      2 + rng.Intn(m.height-h-2),
			Width:  w,
			Height: h,
		}

		overlaps := false
		for _, other := range caves {
			if cave.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		caves = append(caves, cave)
		m.carve(cave)
	}
	return caves
}

// carve empties every cell of the cave.
func (m *Map) carve(cave Cave) {
	for y := cave.Y; y < cave.Y+cave.Height; y++ {
		for x := cave.X; x < cave.X+cave.Width; x++ {
			m.Set(x, y, nil)
		}
	}
}

// connectCaves links consecutive caves with L-shaped tunnels.
func (m *Map) connectCaves(caves []Cave, rng *rand.Rand) {
	for i := 1; i < len(caves); i++ {
		x1, y1 := caves[i-1].Center()
		x2, y2 := caves[i].Center()

		if rng.Intn(2) == 0 {
			m.carveHorizontalTunnel(x1, x2, y1)
			m.carveVerticalTunnel(y1, y2, x2)
		} else {
			m.carveVerticalTunnel(y1, y2, x1)
			m.carveHorizontalTunnel(x1, x2, y2)
		}
	}
}

func (m *Map) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		m.Set(x, y, nil)
	}
}

func (m *Map) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		m.Set(x, y, nil)
	}
}

// scatterLoot turns some terrain cells into sacks and gold.
// The top row stays clear so sacks never start next to the player.
func (m *Map) scatterLoot(caves []Cave, rng *rand.Rand) {
	for y := 1; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if !entity.Is(m.cells[y][x], entity.KindTerrain) || inAnyCave(caves, x, y) {
				continue
			}
			roll := rng.Intn(100)
			switch {
			case roll < sackChance:
				m.cells[y][x] = entity.New(entity.KindSack)
			case roll < sackChance+goldChance:
				m.cells[y][x] = entity.New(entity.KindGold)
			}
		}
	}
}

func inAnyCave(caves []Cave, x, y int) bool {
	for _, cave := range caves {
		if cave.Contains(x, y) {
			return true
		}
	}
	return false
}
