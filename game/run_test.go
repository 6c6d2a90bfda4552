package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/keymaze/keymaze-api/game/maze"
	"github.com/stretchr/testify/assert"
)

// fixtureMaze is a hand-built level with a chosen wall layout, so tests
// can steer the actor into known walls.
type fixtureMaze struct {
	size  int
	walls maze.WallSet
	start maze.CellPosition
	key   maze.CellPosition
	door  maze.CellPosition
}

func (f *fixtureMaze) Size() int                { return f.size }
func (f *fixtureMaze) Start() maze.CellPosition { return f.start }
func (f *fixtureMaze) Key() maze.CellPosition   { return f.key }
func (f *fixtureMaze) Door() maze.CellPosition  { return f.door }
func (f *fixtureMaze) HasWall(w maze.Wall) bool { return f.walls.Has(w) }
func (f *fixtureMaze) WallCount() int           { return f.walls.Len() }

var _ Maze = &fixtureMaze{}

func newFixtureMaze(size int, key maze.CellPosition, walls ...maze.Wall) *fixtureMaze {
	ws := maze.NewWallSet()
	for _, w := range walls {
		ws.Add(w)
	}
	return &fixtureMaze{
		size:  size,
		walls: ws,
		start: maze.CellPosition{X: 0, Y: size - 1},
		key:   key,
		door:  maze.CellPosition{X: size - 1, Y: 0},
	}
}

// fakeClock advances a fixed amount on every reading.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) read() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// walkTo steps the actor one axis at a time toward target, asserting that
// no step collides. Only valid on open layouts.
func walkTo(t *testing.T, r *Run, target maze.CellPosition) []Outcome {
	t.Helper()
	var outcomes []Outcome
	for r.Position() != target {
		var dir maze.Direction
		switch {
		case r.Position().X < target.X:
			dir = maze.Right
		case r.Position().X > target.X:
			dir = maze.Left
		case r.Position().Y < target.Y:
			dir = maze.Down
		default:
			dir = maze.Up
		}
		out := r.AttemptMove(dir)
		assert.NotEqual(t, Collision, out.Kind)
		assert.NotEqual(t, LevelFailed, out.Kind)
		outcomes = append(outcomes, out)
	}
	return outcomes
}

func TestRunAttemptMove(t *testing.T) {
	t.Run("out-of-bounds move is a silent no-op", func(t *testing.T) {
		m := newFixtureMaze(3, maze.CellPosition{X: 1, Y: 1})
		r := NewRun(m, Practice)

		out := r.AttemptMove(maze.Left) // start is on the left edge
		assert.Equal(t, None, out.Kind)
		assert.Equal(t, m.Start(), r.Position())
		assert.Equal(t, 0, r.Attempts())
		assert.Equal(t, 0, r.RevealedCount())
	})

	t.Run("collision reveals the wall and resets the actor", func(t *testing.T) {
		// Wall directly above the start cell of a 4x4 maze.
		blocked := maze.Wall{X: 0, Y: 2, Orientation: maze.BottomWall}
		m := newFixtureMaze(4, maze.CellPosition{X: 2, Y: 2}, blocked)
		r := NewRun(m, Practice)

		out := r.AttemptMove(maze.Up)
		assert.Equal(t, Collision, out.Kind)
		assert.Equal(t, blocked, out.Wall)
		assert.Equal(t, 1, r.Attempts())
		assert.Equal(t, maze.CellPosition{X: 0, Y: 3}, r.Position())
		assert.Equal(t, []maze.Wall{blocked}, r.Revealed())
	})

	t.Run("repeat collision reveals nothing new", func(t *testing.T) {
		blocked := maze.Wall{X: 0, Y: 2, Orientation: maze.BottomWall}
		m := newFixtureMaze(4, maze.CellPosition{X: 2, Y: 2}, blocked)
		r := NewRun(m, Practice)

		r.AttemptMove(maze.Up)
		r.AttemptMove(maze.Up)
		assert.Equal(t, 2, r.Attempts())
		assert.Equal(t, 1, r.RevealedCount())
	})

	t.Run("key survives a collision", func(t *testing.T) {
		// Key next to start; wall above start.
		blocked := maze.Wall{X: 0, Y: 1, Orientation: maze.BottomWall}
		key := maze.CellPosition{X: 1, Y: 2}
		m := newFixtureMaze(3, key, blocked)
		r := NewRun(m, Practice)

		out := r.AttemptMove(maze.Right) // (1,2): the key cell
		assert.Equal(t, KeyAcquired, out.Kind)
		assert.True(t, r.HasKey())

		out = r.AttemptMove(maze.Left) // back to start
		assert.Equal(t, None, out.Kind)
		out = r.AttemptMove(maze.Up) // into the wall
		assert.Equal(t, Collision, out.Kind)
		assert.True(t, r.HasKey(), "collision must not drop the key")
	})

	t.Run("key cell triggers once", func(t *testing.T) {
		key := maze.CellPosition{X: 1, Y: 2}
		m := newFixtureMaze(3, key)
		r := NewRun(m, Practice)

		out := r.AttemptMove(maze.Right)
		assert.Equal(t, KeyAcquired, out.Kind)
		out = r.AttemptMove(maze.Left)
		assert.Equal(t, None, out.Kind)
		out = r.AttemptMove(maze.Right) // standing on the key again
		assert.Equal(t, None, out.Kind)
	})

	t.Run("locked door has no effect", func(t *testing.T) {
		// Key placed far away; walk straight to the door without it.
		m := newFixtureMaze(3, maze.CellPosition{X: 0, Y: 0})
		r := NewRun(m, Practice)

		r.AttemptMove(maze.Right)
		r.AttemptMove(maze.Right)
		r.AttemptMove(maze.Up)
		out := r.AttemptMove(maze.Up) // (2,0): the locked door
		assert.Equal(t, None, out.Kind)
		assert.Equal(t, Playing, r.Status())
		assert.Equal(t, m.Door(), r.Position())
	})

	t.Run("door with key completes the level", func(t *testing.T) {
		clock := &fakeClock{now: time.Unix(0, 0), step: 2 * time.Second}
		key := maze.CellPosition{X: 1, Y: 2}
		m := newFixtureMaze(3, key)
		r := NewRun(m, Practice, WithClock(clock.read))

		walkTo(t, r, key)
		outcomes := walkTo(t, r, m.Door())

		final := outcomes[len(outcomes)-1]
		assert.Equal(t, LevelComplete, final.Kind)
		assert.Equal(t, 0, final.Attempts)
		assert.Equal(t, Complete, r.Status())
		assert.Equal(t, Score(final.ElapsedSeconds, 0), final.Score)
	})
}

func TestRunChallengeMode(t *testing.T) {
	t.Run("first collision fails the run", func(t *testing.T) {
		blocked := maze.Wall{X: 0, Y: 2, Orientation: maze.BottomWall}
		m := newFixtureMaze(4, maze.CellPosition{X: 2, Y: 2}, blocked)
		r := NewRun(m, Challenge)

		out := r.AttemptMove(maze.Up)
		assert.Equal(t, LevelFailed, out.Kind)
		assert.Equal(t, blocked, out.Wall)
		assert.Equal(t, Failed, r.Status())
	})

	t.Run("a failed run ignores further moves", func(t *testing.T) {
		blocked := maze.Wall{X: 0, Y: 2, Orientation: maze.BottomWall}
		m := newFixtureMaze(4, maze.CellPosition{X: 2, Y: 2}, blocked)
		r := NewRun(m, Challenge)

		r.AttemptMove(maze.Up)
		attempts, pos := r.Attempts(), r.Position()

		out := r.AttemptMove(maze.Right)
		assert.Equal(t, None, out.Kind)
		assert.Equal(t, attempts, r.Attempts())
		assert.Equal(t, pos, r.Position())
		assert.Equal(t, Failed, r.Status())
	})

	t.Run("practice mode survives collisions indefinitely", func(t *testing.T) {
		blocked := maze.Wall{X: 0, Y: 2, Orientation: maze.BottomWall}
		m := newFixtureMaze(4, maze.CellPosition{X: 2, Y: 2}, blocked)
		r := NewRun(m, Practice)

		for range [5]struct{}{} {
			out := r.AttemptMove(maze.Up)
			assert.Equal(t, Collision, out.Kind)
		}
		assert.Equal(t, 5, r.Attempts())
		assert.Equal(t, Playing, r.Status())
	})
}

func TestScore(t *testing.T) {
	assert.Equal(t, 850, Score(10, 2))
	assert.Equal(t, 1000, Score(0, 0))
	assert.Equal(t, 0, Score(300, 0))
	assert.Equal(t, 0, Score(10, 100))
}

func TestRunOnGeneratedMaze(t *testing.T) {
	t.Run("zero-wall level completes with zero collisions", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		m, err := maze.Generate(3, 0, rng)
		assert.NoError(t, err)

		r := NewRun(m, Practice)
		assert.Equal(t, maze.CellPosition{X: 0, Y: 2}, r.Position())

		walkTo(t, r, m.Key())
		assert.True(t, r.HasKey())
		outcomes := walkTo(t, r, m.Door())

		final := outcomes[len(outcomes)-1]
		assert.Equal(t, LevelComplete, final.Kind)
		assert.Equal(t, 0, final.Attempts)
	})

	t.Run("generated walls register as collisions", func(t *testing.T) {
		rng := rand.New(rand.NewSource(9))
		m, err := maze.Generate(4, 6, rng)
		assert.NoError(t, err)

		// Walk the revealed-by-collision contract against a wall we can
		// reach: breadth-first over open edges from start until a cell
		// with an adjacent in-maze wall shows up.
		type step struct {
			pos  maze.CellPosition
			path []maze.Direction
		}
		visited := map[maze.CellPosition]struct{}{m.Start(): {}}
		queue := []step{{pos: m.Start()}}
		var path []maze.Direction
		var into maze.Direction
		found := false
		for len(queue) > 0 && !found {
			cur := queue[0]
			queue = queue[1:]
			for _, dir := range []maze.Direction{maze.Up, maze.Down, maze.Left, maze.Right} {
				next, ok := maze.Neighbor(cur.pos, dir, m.Size())
				if !ok {
					continue
				}
				if m.HasWall(maze.EdgeBetween(cur.pos, dir)) {
					path = cur.path
					into = dir
					found = true
					break
				}
				if _, seen := visited[next]; seen {
					continue
				}
				visited[next] = struct{}{}
				nextPath := append(append([]maze.Direction{}, cur.path...), dir)
				queue = append(queue, step{pos: next, path: nextPath})
			}
		}
		if !found {
			t.Skip("seed produced no wall reachable from start")
		}

		r := NewRun(m, Practice)
		for _, dir := range path {
			out := r.AttemptMove(dir)
			assert.NotEqual(t, Collision, out.Kind)
		}
		out := r.AttemptMove(into)
		assert.Equal(t, Collision, out.Kind)
		assert.Equal(t, 1, r.Attempts())
		assert.Equal(t, maze.CellPosition{X: 0, Y: 3}, r.Position())
		assert.Equal(t, 1, r.RevealedCount())
	})
}
