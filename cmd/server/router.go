package main

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/jinwoo-p/sociogram/internal/config"
	"github.com/jinwoo-p/sociogram/internal/handlers"
	"github.com/jinwoo-p/sociogram/internal/middleware"
	"github.com/jinwoo-p/sociogram/pkg/auth"
)

func APIEndpoints(
	r *gin.Engine,
	cfg *config.Config,
	jwtMgr *auth.JWTManager,
	rdb *redis.Client,
	authH *handlers.AuthHandler,
	userH *handlers.UserHandler,
	postH *handlers.PostHandler,
	wsH *handlers.WebSocketHandler,
) {
	r.Static("/uploads", cfg.UploadDir)

	// Auth endpoints
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/logout", authH.Logout)
	}

	// API endpoints
	api := r.Group("/api/v1")
	api.Use(middleware.Auth(jwtMgr, rdb, false))
	{
		api.GET("/feed", postH.GetFeed)

		api.GET("/users", userH.ListUsers)
		api.GET("/users/me", userH.GetMe)
		api.GET("/users/:id", userH.GetUser)
		api.POST("/users/:id/request", userH.SendFriendRequest)
		api.POST("/users/:id/accept", userH.AcceptFriendRequest)
		api.POST("/users/:id/decline", userH.DeclineFriendRequest)

		api.POST("/posts", postH.CreatePost)
		api.GET("/posts/:id", postH.GetPost)
		api.POST("/posts/:id/like", postH.LikePost)
		api.POST("/posts/:id/comments", postH.AddComment)
		api.POST("/comments/:id/like", postH.LikeComment)

		api.GET("/chat/friends", userH.ChatFriends)
	}

	// Websocket endpoint, token may come in via query string
	ws := r.Group("/ws")
	ws.Use(middleware.Auth(jwtMgr, rdb, true))
	{
		ws.GET("", wsH.HandleWebSocket)
	}
}
