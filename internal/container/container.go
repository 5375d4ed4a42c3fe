package container

import (
	"context"
	"time"

	"voting-be/internal/config"
	"voting-be/internal/repository"
	"voting-be/internal/service"
	"voting-be/internal/service/auth"
	"voting-be/pkg/database"
	"voting-be/pkg/logger"
	"voting-be/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           *database.PostgresDB
	RedisClient  *redis.Client
	Repositories *repository.Repositories
	Services     *service.Services
}

// New creates a new dependency injection container. Redis is optional:
// when it is not configured (or unreachable) the services read straight
// from the database.
func New(ctx context.Context, cfg *config.Config, logger *logger.Logger) (*Container, error) {
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL, logger.Logger)
		if err != nil {
			logger.WithError(err).Warn("Failed to initialize Redis client, proceeding without caching")
		} else {
			redisClient = client
			logger.Info("Redis client initialized successfully")
		}
	} else {
		logger.Info("Redis URL not configured, proceeding without caching")
	}

	userRepo := repository.NewUserRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	repos := &repository.Repositories{
		User: userRepo,
		Vote: voteRepo,
	}

	var cache *service.CacheService
	if redisClient != nil {
		cache = service.NewCacheService(redisClient, logger.Logger)
	}

	authService := auth.NewService(auth.Config{
		Secret:        cfg.JWTSecret,
		TokenTTL:      time.Duration(cfg.TokenTTLHours) * time.Hour,
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
		BcryptCost:    cfg.BcryptCost,
	}, userRepo, logger)

	services := &service.Services{
		Auth:   authService,
		Voting: service.NewVotingService(voteRepo, cache, logger.Logger),
		Admin:  service.NewAdminService(userRepo, voteRepo, authService, cache, logger.Logger),
	}

	return &Container{
		Config:       cfg,
		Logger:       logger,
		DB:           db,
		RedisClient:  redisClient,
		Repositories: repos,
		Services:     services,
	}, nil
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// GetAuthService returns the auth service
func (c *Container) GetAuthService() service.AuthService {
	return c.Services.Auth
}

// GetVotingService returns the voting service
func (c *Container) GetVotingService() service.VotingService {
	return c.Services.Voting
}

// GetAdminService returns the admin service
func (c *Container) GetAdminService() service.AdminService {
	return c.Services.Admin
}

// GetRedisClient returns the Redis client (may be nil if not configured)
func (c *Container) GetRedisClient() *redis.Client {
	return c.RedisClient
}

// HasRedis returns true if Redis client is available
func (c *Container) HasRedis() bool {
	return c.RedisClient != nil
}
