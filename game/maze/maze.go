/*
Package maze provides the grid model and the constrained wall-layout
generator behind a key-and-door maze level.

A maze is an N×N lattice of cells with walls on some of the edges between
adjacent cells. Walls are stored canonically so that every edge has a
single identity regardless of which side it is approached from. The
generator places a requested number of walls at random while preserving
the level's solvability: a path of open edges always connects the start
cell to the key cell and the key cell to the door cell.

Utility functions enable neighbor detection, canonical edge lookup,
reachability queries, and ASCII visualization of the maze.
*/
package maze

import (
	"errors"
	"math/rand"
	"strings"
)

const (
	minMazeDimenssion = 2
	maxMazeDimenssion = 20
)

var (
	ErrInvalidDimension = errors.New("invalid maze dimension")
	ErrNegativeWalls    = errors.New("negative wall target")
)

// KeyDoorMaze is a square maze with a fixed start corner, a fixed door
// corner, and a randomly placed key. Its wall set is guaranteed solvable:
// start→key and key→door are connected over open edges.
type KeyDoorMaze struct {
	size  int
	walls WallSet
	start CellPosition
	key   CellPosition
	door  CellPosition
}

// Generate builds a new solvable maze of the given size with at most
// targetWalls walls, drawing all randomness from rng.
//
// The start is the bottom-left corner and the door the top-right corner.
// The key lands uniformly on any other cell. Candidate walls are shuffled
// and inserted one at a time; an insertion that would disconnect
// start→key or key→door is rolled back. Generation stops once the target
// is met or every candidate has been tried, so the returned maze may
// carry fewer walls than requested. That is a best-effort result, not an
// error.
func Generate(size, targetWalls int, rng *rand.Rand) (*KeyDoorMaze, error) {
	if size < minMazeDimenssion || size > maxMazeDimenssion {
		return nil, ErrInvalidDimension
	}
	if targetWalls < 0 {
		return nil, ErrNegativeWalls
	}

	m := &KeyDoorMaze{
		size:  size,
		walls: NewWallSet(),
		start: CellPosition{X: 0, Y: size - 1},
		door:  CellPosition{X: size - 1, Y: 0},
	}
	m.key = m.randomKeyPosition(rng)

	candidates := allCandidateWalls(size)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	kept := 0
	for _, w := range candidates {
		if kept == targetWalls {
			break
		}
		m.walls.Add(w)
		if m.solvable() {
			kept++
			continue
		}
		m.walls.Remove(w)
	}

	return m, nil
}

// randomKeyPosition draws a key cell uniformly among all cells except the
// start and door corners. With at most 2 of size² cells excluded the
// rejection loop terminates in expected O(1) draws.
func (m *KeyDoorMaze) randomKeyPosition(rng *rand.Rand) CellPosition {
	for {
		pos := CellPosition{X: rng.Intn(m.size), Y: rng.Intn(m.size)}
		if pos != m.start && pos != m.door {
			return pos
		}
	}
}

// allCandidateWalls enumerates every canonical wall of a size×size grid:
// all right walls with x < size-1 and all bottom walls with y < size-1,
// 2·size·(size-1) in total.
func allCandidateWalls(size int) []Wall {
	candidates := make([]Wall, 0, 2*size*(size-1))
	for y := 0; y < size; y++ {
		for x := 0; x < size-1; x++ {
			candidates = append(candidates, Wall{X: x, Y: y, Orientation: RightWall})
		}
	}
	for y := 0; y < size-1; y++ {
		for x := 0; x < size; x++ {
			candidates = append(candidates, Wall{X: x, Y: y, Orientation: BottomWall})
		}
	}
	return candidates
}

// solvable reports whether the current wall set keeps both legs of the
// level connected.
func (m *KeyDoorMaze) solvable() bool {
	return Reachable(m.walls, m.start, m.key, m.size) &&
		Reachable(m.walls, m.key, m.door, m.size)
}

// Size returns the maze dimension.
func (m *KeyDoorMaze) Size() int {
	return m.size
}

// Start returns the actor's starting cell, the bottom-left corner.
func (m *KeyDoorMaze) Start() CellPosition {
	return m.start
}

// Key returns the cell holding the key.
func (m *KeyDoorMaze) Key() CellPosition {
	return m.key
}

// Door returns the door cell, the top-right corner.
func (m *KeyDoorMaze) Door() CellPosition {
	return m.door
}

// HasWall reports whether the canonical wall is part of the maze.
func (m *KeyDoorMaze) HasWall(w Wall) bool {
	return m.walls.Has(w)
}

// WallCount returns the number of walls placed by the generator.
func (m *KeyDoorMaze) WallCount() int {
	return m.walls.Len()
}

// Walls returns the full wall set as a slice in unspecified order.
func (m *KeyDoorMaze) Walls() []Wall {
	return m.walls.Walls()
}

// String provides a textual representation of the maze. The start, key,
// and door cells are marked S, K, and D.
func (m *KeyDoorMaze) String() string {
	var output string

	// Top boundary
	output += "+" + strings.Repeat("---+", m.size) + "\n"

	for y := 0; y < m.size; y++ {
		cellRow := "|"
		for x := 0; x < m.size; x++ {
			pos := CellPosition{X: x, Y: y}
			switch pos {
			case m.start:
				cellRow += " S "
			case m.key:
				cellRow += " K "
			case m.door:
				cellRow += " D "
			default:
				cellRow += "   "
			}

			// Add east wall, grid boundary, or space
			if x == m.size-1 || m.walls.Has(Wall{X: x, Y: y, Orientation: RightWall}) {
				cellRow += "|"
			} else {
				cellRow += " "
			}
		}
		output += cellRow + "\n"

		wallRow := "+"
		for x := 0; x < m.size; x++ {
			if y == m.size-1 || m.walls.Has(Wall{X: x, Y: y, Orientation: BottomWall}) {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output += wallRow + "\n"
	}

	return output
}
