package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/keymaze/keymaze-api/api"
	gameapi "github.com/keymaze/keymaze-api/api/game"
	api_i "github.com/keymaze/keymaze-api/api/i"
	"github.com/keymaze/keymaze-api/api/identity"
	"github.com/keymaze/keymaze-api/config"
	"github.com/keymaze/keymaze-api/game"
	"github.com/keymaze/keymaze-api/game/maze"
	logger "github.com/keymaze/keymaze-api/infrastruture/log"
	"github.com/keymaze/keymaze-api/infrastruture/repo"
	"github.com/keymaze/keymaze-api/infrastruture/sortedstorage"
	"github.com/keymaze/keymaze-api/infrastruture/token"
	"github.com/keymaze/keymaze-api/service"
	"github.com/keymaze/keymaze-api/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient        *mongo.Client
	redisClient        *redis.Client
	userRepo           i.UserRepo
	scoreRepo          i.ScoreRepo
	sortedQueue        i.SortedQueue
	leaderboard        i.Leaderboard
	gameSessionManager i.GameSessionManager
	jwtTokenizer       i.Tokenizer
	authService        i.Authenticator
	authController     api_i.Controller
	playController     api_i.Controller
	router             *api.Router
	appLogger          i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	scoreRepo = repo.NewScoreRepo(client, config.Envs.DBName, "scores")
	appLogger.Info("Repositories initialized")
}

func initLeaderboard() {
	var err error
	sortedQueue, err = sortedstorage.NewRedisSortedQueue(redisClient, 0)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating redis sorted queue: %v", err))
		os.Exit(1)
	}

	leaderboardLogger, err := logger.New("LEADERBOARD", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating leaderboard logger: %v", err))
		os.Exit(1)
	}

	leaderboard, err = service.NewLeaderboard(sortedQueue, leaderboardLogger, nil)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating leaderboard: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Leaderboard initialized")
}

func initSessionManager() {
	sessionLogger, err := logger.New("SESSION-MANAGER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager logger: %v", err))
		os.Exit(1)
	}

	// A fresh rng per level keeps the factory safe under concurrent
	// StartLevel calls.
	mazeFactory := func(size, targetWalls int) (game.Maze, error) {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		return maze.Generate(size, targetWalls, rng)
	}

	gameSessionManager, err = service.NewGameSessionManager(&service.Config{
		MazeFactory:  mazeFactory,
		ScoreRepo:    scoreRepo,
		Leaderboard:  leaderboard,
		Logger:       sessionLogger,
		DefaultSize:  config.Envs.MazeSize,
		DefaultWalls: config.Envs.MazeWallCount,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game session manager: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Game session manager initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	playController, err = gameapi.NewPlayController(gameSessionManager, leaderboard)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating play controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, playController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos(mongoClient)
	initLeaderboard()
	initSessionManager()
	initJWTTokenizer()
	initAuthService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
