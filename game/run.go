/*
Package game implements the navigation engine for a key-and-door maze
level: a Run tracks the actor through a generated maze, resolves move
requests against the wall set, and grows the set of walls the player has
discovered by collision.

A Run is plain state with no goroutines of its own. Move requests are
resolved to completion one at a time; the caller owns serialization.
*/
package game

import (
	"time"

	"github.com/keymaze/keymaze-api/game/maze"
)

// Mode selects the collision policy of a run.
type Mode int

const (
	// Practice runs tolerate any number of collisions; the actor is put
	// back on start and play continues.
	Practice Mode = iota
	// Challenge runs end on the first collision.
	Challenge
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	if m == Challenge {
		return "challenge"
	}
	return "practice"
}

// Status is the lifecycle state of a run.
type Status int

const (
	Playing Status = iota
	Complete
	Failed
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case Complete:
		return "complete"
	case Failed:
		return "failed"
	default:
		return "playing"
	}
}

// OutcomeKind classifies the result of a move request.
type OutcomeKind int

const (
	// None: nothing notable happened. Also returned for out-of-bounds
	// requests and for moves after the run has ended.
	None OutcomeKind = iota
	// Collision: the move crossed a wall. The wall is now revealed.
	Collision
	// KeyAcquired: the move landed the actor on the key cell.
	KeyAcquired
	// LevelComplete: the actor reached the door holding the key.
	LevelComplete
	// LevelFailed: a challenge-mode collision ended the run.
	LevelFailed
)

// Outcome reports what a move request did. Wall is set for Collision and
// LevelFailed; ElapsedSeconds, Attempts, and Score for LevelComplete.
type Outcome struct {
	Kind           OutcomeKind
	Wall           maze.Wall
	ElapsedSeconds int
	Attempts       int
	Score          int
}

// Run is the live state of one level attempt. Its revealed wall set only
// grows within a level; a new level means a new Run. A Run belongs to a
// single session and is not safe for concurrent use.
type Run struct {
	maze     Maze
	mode     Mode
	status   Status
	pos      maze.CellPosition
	hasKey   bool
	attempts int
	revealed maze.WallSet
	started  time.Time
	now      func() time.Time
}

// RunOption customizes a new Run.
type RunOption func(*Run)

// WithClock overrides the wall clock, mainly for tests.
func WithClock(now func() time.Time) RunOption {
	return func(r *Run) {
		r.now = now
	}
}

// NewRun starts a fresh run on the given maze. The actor begins on the
// maze's start cell with no key, zero attempts, and nothing revealed.
func NewRun(m Maze, mode Mode, opts ...RunOption) *Run {
	r := &Run{
		maze:     m,
		mode:     mode,
		status:   Playing,
		pos:      m.Start(),
		revealed: maze.NewWallSet(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.started = r.now()
	return r
}

// AttemptMove resolves a move request against the maze.
//
// A request whose target lies outside the grid is silently ignored. A
// request that crosses a wall is a collision: the attempt counter goes
// up, the wall joins the revealed set, and the actor is put back on
// start. A collected key survives collisions; it is only lost when a new
// level begins. In Challenge mode a collision additionally ends the run.
// Once the run has ended every further request is a no-op.
func (r *Run) AttemptMove(dir maze.Direction) Outcome {
	if r.status != Playing {
		return Outcome{Kind: None}
	}

	next, ok := maze.Neighbor(r.pos, dir, r.maze.Size())
	if !ok {
		return Outcome{Kind: None}
	}

	edge := maze.EdgeBetween(r.pos, dir)
	if r.maze.HasWall(edge) {
		r.attempts++
		r.revealed.Add(edge)
		r.pos = r.maze.Start()

		if r.mode == Challenge {
			r.status = Failed
			return Outcome{Kind: LevelFailed, Wall: edge}
		}
		return Outcome{Kind: Collision, Wall: edge}
	}

	r.pos = next

	if r.pos == r.maze.Key() && !r.hasKey {
		r.hasKey = true
		return Outcome{Kind: KeyAcquired}
	}

	if r.pos == r.maze.Door() && r.hasKey {
		r.status = Complete
		elapsed := int(r.now().Sub(r.started).Seconds())
		return Outcome{
			Kind:           LevelComplete,
			ElapsedSeconds: elapsed,
			Attempts:       r.attempts,
			Score:          Score(elapsed, r.attempts),
		}
	}

	return Outcome{Kind: None}
}

// Score computes the level score from elapsed time and collision count.
// It never goes below zero.
func Score(elapsedSeconds, attempts int) int {
	score := 1000 - 5*elapsedSeconds - 50*attempts
	if score < 0 {
		return 0
	}
	return score
}

// Position returns the actor's current cell.
func (r *Run) Position() maze.CellPosition {
	return r.pos
}

// HasKey reports whether the key has been collected.
func (r *Run) HasKey() bool {
	return r.hasKey
}

// Attempts returns the number of collisions so far.
func (r *Run) Attempts() int {
	return r.attempts
}

// Revealed returns the walls discovered by collision, in unspecified
// order. Rendering clients draw only these, never the full wall set.
func (r *Run) Revealed() []maze.Wall {
	return r.revealed.Walls()
}

// RevealedCount returns the number of distinct revealed walls.
func (r *Run) RevealedCount() int {
	return r.revealed.Len()
}

// Status returns the lifecycle state of the run.
func (r *Run) Status() Status {
	return r.status
}

// Mode returns the run's collision policy.
func (r *Run) Mode() Mode {
	return r.mode
}

// ElapsedSeconds returns whole seconds since the run started.
func (r *Run) ElapsedSeconds() int {
	return int(r.now().Sub(r.started).Seconds())
}
