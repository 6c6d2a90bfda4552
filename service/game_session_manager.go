package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	dmn "github.com/keymaze/keymaze-api/domain"
	"github.com/keymaze/keymaze-api/game"
	"github.com/keymaze/keymaze-api/game/maze"
	"github.com/keymaze/keymaze-api/service/i"
)

const (
	defaultMazeSize   = 6
	defaultWallTarget = 12

	scoreHistoryTimeout = 2 * time.Second
)

var (
	ErrNoActiveRun = errors.New("player has no active run")
)

// session pairs a player's live run with the maze it is played on.
type session struct {
	maze game.Maze
	run  *game.Run
	size int
}

// GameSessionManager keeps the single live run of every player and
// drives the navigation engine on their behalf. Each player request is
// resolved to completion under the lock, so runs never see overlapping
// moves.
type GameSessionManager struct {
	sessions     map[uuid.UUID]*session
	mazeFactory  func(size, targetWalls int) (game.Maze, error)
	scoreRepo    i.ScoreRepo
	leaderboard  i.Leaderboard
	logger       i.Logger
	defaultSize  int
	defaultWalls int
	sync.RWMutex
}

// Config holds configuration settings for creating a GameSessionManager.
type Config struct {
	MazeFactory func(size, targetWalls int) (game.Maze, error)
	ScoreRepo   i.ScoreRepo
	Leaderboard i.Leaderboard
	Logger      i.Logger
	// DefaultSize and DefaultWalls apply when a start request leaves
	// them unset. Zero values fall back to the package defaults.
	DefaultSize  int
	DefaultWalls int
}

// NewGameSessionManager creates a GameSessionManager from the config.
func NewGameSessionManager(c *Config) (*GameSessionManager, error) {
	if c.MazeFactory == nil {
		return nil, errors.New("maze factory is required")
	}

	g := &GameSessionManager{
		sessions:     make(map[uuid.UUID]*session),
		mazeFactory:  c.MazeFactory,
		scoreRepo:    c.ScoreRepo,
		leaderboard:  c.Leaderboard,
		logger:       c.Logger,
		defaultSize:  c.DefaultSize,
		defaultWalls: c.DefaultWalls,
	}
	if g.defaultSize <= 0 {
		g.defaultSize = defaultMazeSize
	}
	if g.defaultWalls <= 0 {
		g.defaultWalls = defaultWallTarget
	}
	return g, nil
}

// StartLevel generates a maze and opens a fresh run for the player. Any
// previous run, finished or not, is replaced wholesale: new maze, empty
// revealed set, key back in the maze.
func (g *GameSessionManager) StartLevel(playerID uuid.UUID, size, targetWalls int, challenge bool) (*i.LevelInfo, error) {
	if size <= 0 {
		size = g.defaultSize
	}
	if targetWalls < 0 {
		targetWalls = g.defaultWalls
	}

	m, err := g.mazeFactory(size, targetWalls)
	if err != nil {
		g.logger.Error(fmt.Sprintf("creating maze for player %s: %s", playerID, err))
		return nil, err
	}

	mode := game.Practice
	if challenge {
		mode = game.Challenge
	}

	g.Lock()
	g.sessions[playerID] = &session{
		maze: m,
		run:  game.NewRun(m, mode),
		size: size,
	}
	g.Unlock()

	g.logger.Info(fmt.Sprintf("started %s level for player %s: size=%d walls=%d", mode, playerID, size, m.WallCount()))

	return &i.LevelInfo{
		Size:      size,
		WallCount: m.WallCount(),
		Mode:      mode.String(),
		Start:     m.Start(),
		Key:       m.Key(),
		Door:      m.Door(),
	}, nil
}

// Move resolves one move request for the player's live run.
func (g *GameSessionManager) Move(playerID uuid.UUID, dir maze.Direction) (*i.MoveResult, error) {
	g.Lock()
	s, ok := g.sessions[playerID]
	if !ok {
		g.Unlock()
		return nil, ErrNoActiveRun
	}

	outcome := s.run.AttemptMove(dir)
	g.Unlock()

	result := &i.MoveResult{
		Outcome:        outcomeName(outcome.Kind),
		ElapsedSeconds: outcome.ElapsedSeconds,
		Attempts:       outcome.Attempts,
		Score:          outcome.Score,
	}
	if outcome.Kind == game.Collision || outcome.Kind == game.LevelFailed {
		wall := outcome.Wall
		result.Wall = &wall
	}

	if outcome.Kind == game.LevelComplete {
		g.recordCompletion(playerID, s, outcome)
	}

	return result, nil
}

// State returns the render snapshot of the player's live run. Only the
// revealed walls are included; the full layout stays server-side.
func (g *GameSessionManager) State(playerID uuid.UUID) (*i.RunSnapshot, error) {
	g.RLock()
	defer g.RUnlock()

	s, ok := g.sessions[playerID]
	if !ok {
		return nil, ErrNoActiveRun
	}

	return &i.RunSnapshot{
		Status:         s.run.Status().String(),
		Position:       s.run.Position(),
		HasKey:         s.run.HasKey(),
		Attempts:       s.run.Attempts(),
		ElapsedSeconds: s.run.ElapsedSeconds(),
		Revealed:       s.run.Revealed(),
	}, nil
}

// Abandon discards the player's live run, if any.
func (g *GameSessionManager) Abandon(playerID uuid.UUID) {
	g.Lock()
	defer g.Unlock()
	delete(g.sessions, playerID)
}

// recordCompletion persists the finished level and pushes the score to
// the leaderboard. Persistence failures are logged, not surfaced; the
// player already has their result.
func (g *GameSessionManager) recordCompletion(playerID uuid.UUID, s *session, outcome game.Outcome) {
	if g.scoreRepo != nil {
		record := &dmn.ScoreRecord{
			ID:             uuid.New(),
			PlayerID:       playerID,
			MazeSize:       s.size,
			WallCount:      s.maze.WallCount(),
			Mode:           s.run.Mode().String(),
			Attempts:       outcome.Attempts,
			ElapsedSeconds: outcome.ElapsedSeconds,
			Score:          outcome.Score,
			RecordedAt:     time.Now().UTC(),
		}
		if err := g.scoreRepo.Save(record); err != nil {
			g.logger.Error(fmt.Sprintf("saving score record for player %s: %s", playerID, err))
		}
	}

	if g.leaderboard != nil {
		ctx, cancel := context.WithTimeout(context.Background(), scoreHistoryTimeout)
		defer cancel()
		if err := g.leaderboard.Submit(ctx, playerID, outcome.Score); err != nil {
			g.logger.Error(fmt.Sprintf("submitting score to leaderboard for player %s: %s", playerID, err))
		}
	}

	g.logger.Info(fmt.Sprintf("player %s completed level: score=%d attempts=%d", playerID, outcome.Score, outcome.Attempts))
}

// outcomeName maps an outcome kind to its wire name.
func outcomeName(k game.OutcomeKind) string {
	switch k {
	case game.Collision:
		return "collision"
	case game.KeyAcquired:
		return "key_acquired"
	case game.LevelComplete:
		return "level_complete"
	case game.LevelFailed:
		return "level_failed"
	default:
		return "none"
	}
}
