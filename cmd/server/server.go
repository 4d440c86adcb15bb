package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/jinwoo-p/sociogram/internal/chat"
	"github.com/jinwoo-p/sociogram/internal/config"
	"github.com/jinwoo-p/sociogram/internal/database"
	"github.com/jinwoo-p/sociogram/internal/handlers"
	"github.com/jinwoo-p/sociogram/internal/social"
	"github.com/jinwoo-p/sociogram/pkg/auth"
	"github.com/jinwoo-p/sociogram/pkg/logger"
)

type Server struct {
	Router *gin.Engine
	DB     *database.Database
	Redis  *redis.Client
	Hub    *chat.Hub
	cfg    *config.Config
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			logger.Info(".env not found, using environment variables")
		}
	}

	logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("APP_ENV") != "production")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(cfg.DatabaseURL); err != nil {
		logger.Fatal("postgres connect failed", "error", err)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Fatal("invalid REDIS_URL", "error", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("redis connect failed", "error", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Fatal("cannot create upload dir", "error", err)
	}

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	hub := chat.NewHub(chat.NewDirectory())
	go hub.Run()

	friendMgr := social.NewFriendManager(dbConn)
	feedAgg := social.NewFeedAggregator(dbConn)
	postSvc := social.NewPostService(dbConn)

	authH := handlers.NewAuthHandler(dbConn, jwtMgr, rdb, cfg)
	userH := handlers.NewUserHandler(dbConn, friendMgr, hub)
	postH := handlers.NewPostHandler(postSvc, feedAgg, cfg)
	wsH := handlers.NewWebSocketHandler(hub)

	router := gin.Default()
	APIEndpoints(router, cfg, jwtMgr, rdb, authH, userH, postH, wsH)

	return &Server{
		Router: router,
		DB:     dbConn,
		Redis:  rdb,
		Hub:    hub,
		cfg:    cfg,
	}
}

func (s *Server) Run() {
	logger.Info("server starting", "port", s.cfg.Port)
	if err := s.Router.Run(":" + s.cfg.Port); err != nil {
		logger.Fatal("server run error", "error", err)
	}
}
