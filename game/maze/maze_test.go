package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	t.Run("generated mazes are solvable", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			rng := rand.New(rand.NewSource(seed))
			m, err := Generate(6, 14, rng)
			assert.NoError(t, err)

			walls := NewWallSet()
			for _, w := range m.Walls() {
				walls.Add(w)
			}
			assert.True(t, Reachable(walls, m.Start(), m.Key(), m.Size()))
			assert.True(t, Reachable(walls, m.Key(), m.Door(), m.Size()))
		}
	})

	t.Run("never exceeds the wall target", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		m, err := Generate(4, 6, rng)
		assert.NoError(t, err)
		assert.LessOrEqual(t, m.WallCount(), 6)
	})

	t.Run("small targets are met exactly", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		m, err := Generate(3, 2, rng)
		assert.NoError(t, err)
		assert.Equal(t, 2, m.WallCount())
	})

	t.Run("zero walls yields a fully open grid", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		m, err := Generate(3, 0, rng)
		assert.NoError(t, err)
		assert.Equal(t, 0, m.WallCount())
		assert.Equal(t, CellPosition{X: 0, Y: 2}, m.Start())
		assert.Equal(t, CellPosition{X: 2, Y: 0}, m.Door())
	})

	t.Run("oversized target under-delivers without error", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		m, err := Generate(3, 1000, rng)
		assert.NoError(t, err)
		// 2·3·2 = 12 candidates total; solvability rules some out.
		assert.Less(t, m.WallCount(), 12)

		walls := NewWallSet()
		for _, w := range m.Walls() {
			walls.Add(w)
		}
		assert.True(t, Reachable(walls, m.Start(), m.Key(), m.Size()))
		assert.True(t, Reachable(walls, m.Key(), m.Door(), m.Size()))
	})

	t.Run("walls are canonical and in bounds", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		m, err := Generate(5, 15, rng)
		assert.NoError(t, err)

		seen := make(map[Wall]struct{})
		for _, w := range m.Walls() {
			_, dup := seen[w]
			assert.False(t, dup, "duplicate canonical wall %v", w)
			seen[w] = struct{}{}
			assert.True(t, w.inBounds(m.Size()), "wall out of bounds %v", w)
		}
	})

	t.Run("key avoids start and door", func(t *testing.T) {
		for seed := int64(0); seed < 50; seed++ {
			rng := rand.New(rand.NewSource(seed))
			m, err := Generate(2, 0, rng)
			assert.NoError(t, err)
			assert.NotEqual(t, m.Start(), m.Key())
			assert.NotEqual(t, m.Door(), m.Key())
		}
	})

	t.Run("rejects invalid dimensions", func(t *testing.T) {
		rng := rand.New(rand.NewSource(0))
		_, err := Generate(1, 0, rng)
		assert.ErrorIs(t, err, ErrInvalidDimension)

		_, err = Generate(21, 0, rng)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("rejects negative wall targets", func(t *testing.T) {
		rng := rand.New(rand.NewSource(0))
		_, err := Generate(4, -1, rng)
		assert.ErrorIs(t, err, ErrNegativeWalls)
	})
}

func TestEdgeBetween(t *testing.T) {
	t.Run("left and right canonicalize to the same wall", func(t *testing.T) {
		right := EdgeBetween(CellPosition{X: 1, Y: 1}, Right)
		left := EdgeBetween(CellPosition{X: 2, Y: 1}, Left)
		assert.Equal(t, right, left)
		assert.Equal(t, Wall{X: 1, Y: 1, Orientation: RightWall}, right)
	})

	t.Run("up and down canonicalize to the same wall", func(t *testing.T) {
		down := EdgeBetween(CellPosition{X: 1, Y: 1}, Down)
		up := EdgeBetween(CellPosition{X: 1, Y: 2}, Up)
		assert.Equal(t, down, up)
		assert.Equal(t, Wall{X: 1, Y: 1, Orientation: BottomWall}, down)
	})
}

func TestNeighbor(t *testing.T) {
	t.Run("interior moves succeed", func(t *testing.T) {
		next, ok := Neighbor(CellPosition{X: 1, Y: 1}, Right, 3)
		assert.True(t, ok)
		assert.Equal(t, CellPosition{X: 2, Y: 1}, next)
	})

	t.Run("moves off the grid fail", func(t *testing.T) {
		_, ok := Neighbor(CellPosition{X: 0, Y: 0}, Left, 3)
		assert.False(t, ok)
		_, ok = Neighbor(CellPosition{X: 0, Y: 0}, Up, 3)
		assert.False(t, ok)
		_, ok = Neighbor(CellPosition{X: 2, Y: 2}, Right, 3)
		assert.False(t, ok)
		_, ok = Neighbor(CellPosition{X: 2, Y: 2}, Down, 3)
		assert.False(t, ok)
	})
}

func TestWallSet(t *testing.T) {
	t.Run("re-adding a wall keeps a single entry", func(t *testing.T) {
		ws := NewWallSet()
		w := Wall{X: 1, Y: 0, Orientation: BottomWall}
		ws.Add(w)
		ws.Add(w)
		assert.Equal(t, 1, ws.Len())
		assert.True(t, ws.Has(w))
	})

	t.Run("remove deletes only the given wall", func(t *testing.T) {
		ws := NewWallSet()
		a := Wall{X: 0, Y: 0, Orientation: RightWall}
		b := Wall{X: 0, Y: 0, Orientation: BottomWall}
		ws.Add(a)
		ws.Add(b)
		ws.Remove(a)
		assert.False(t, ws.Has(a))
		assert.True(t, ws.Has(b))
		assert.Equal(t, 1, ws.Len())
	})
}

func TestParseDirection(t *testing.T) {
	for _, dir := range []Direction{Up, Down, Left, Right} {
		parsed, ok := ParseDirection(dir.String())
		assert.True(t, ok)
		assert.Equal(t, dir, parsed)
	}

	_, ok := ParseDirection("north")
	assert.False(t, ok)
}
