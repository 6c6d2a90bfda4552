package gameapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/keymaze/keymaze-api/api/identity"
	"github.com/keymaze/keymaze-api/game/maze"
	"github.com/keymaze/keymaze-api/service/i"
)

const (
	defaultLeaderboardSize = 10
	maxLeaderboardSize     = 100

	leaderboardTimeout = 500 * time.Millisecond
)

// PlayController manages level play for authenticated players.
type PlayController struct {
	sessionManager i.GameSessionManager
	leaderboard    i.Leaderboard
}

// NewPlayController initializes a PlayController.
func NewPlayController(gsm i.GameSessionManager, lb i.Leaderboard) (*PlayController, error) {
	return &PlayController{
		sessionManager: gsm,
		leaderboard:    lb,
	}, nil
}

// RegisterPublic registers public routes.
func (pc *PlayController) RegisterPublic(route *gin.RouterGroup) {
	game := route.Group("/game")
	{
		game.GET("/leaderboard", pc.topScores)
	}
}

// RegisterProtected registers protected routes.
func (pc *PlayController) RegisterProtected(route *gin.RouterGroup) {
	game := route.Group("/game")
	{
		game.POST("/level", pc.startLevel)
		game.POST("/move", pc.move)
		game.GET("/state", pc.state)
		game.DELETE("/level", pc.abandon)
	}
}

// startLevel handles new-level requests.
func (pc *PlayController) startLevel(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request StartLevelRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := pc.sessionManager.StartLevel(playerID, request.Size, request.WallCount, request.Challenge)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response := &StartLevelResponse{
		Size:      info.Size,
		WallCount: info.WallCount,
		Mode:      info.Mode,
		Start:     info.Start,
		Key:       info.Key,
		Door:      info.Door,
	}
	ctx.JSON(http.StatusCreated, response)
}

// move handles move requests for the live run.
func (pc *PlayController) move(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request MoveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dir, ok := maze.ParseDirection(request.Direction)
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown direction"})
		return
	}

	result, err := pc.sessionManager.Move(playerID, dir)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	response := &MoveResponse{
		Outcome:        result.Outcome,
		Wall:           result.Wall,
		ElapsedSeconds: result.ElapsedSeconds,
		Attempts:       result.Attempts,
		Score:          result.Score,
	}
	ctx.JSON(http.StatusOK, response)
}

// state returns the render snapshot of the live run.
func (pc *PlayController) state(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	snapshot, err := pc.sessionManager.State(playerID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	response := &StateResponse{
		Status:         snapshot.Status,
		Position:       snapshot.Position,
		HasKey:         snapshot.HasKey,
		Attempts:       snapshot.Attempts,
		ElapsedSeconds: snapshot.ElapsedSeconds,
		Revealed:       snapshot.Revealed,
	}
	ctx.JSON(http.StatusOK, response)
}

// abandon discards the live run.
func (pc *PlayController) abandon(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	pc.sessionManager.Abandon(playerID)
	ctx.Status(http.StatusNoContent)
}

// topScores returns the best scores, highest first.
func (pc *PlayController) topScores(ctx *gin.Context) {
	n := defaultLeaderboardSize
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxLeaderboardSize {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		n = parsed
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, leaderboardTimeout)
	defer cancel()

	entries, err := pc.leaderboard.Top(timeoutCtx, int64(n))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while reading leaderboard"})
		return
	}

	response := make([]LeaderboardEntryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, LeaderboardEntryResponse{
			PlayerID: e.PlayerID.String(),
			Score:    e.Score,
		})
	}
	ctx.JSON(http.StatusOK, response)
}
