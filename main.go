package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"socialword/config"
	"socialword/database"
	"socialword/handlers"
	"socialword/mailer"
	"socialword/middleware"
	"socialword/social"
	"socialword/storage"
	"socialword/websocket"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.CreateTables(); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	mailer.Init(config.Cfg.ResendAPIKey)
	if err := storage.Init(config.Cfg.CloudinaryURL); err != nil {
		log.Fatalf("Failed to configure media storage: %v", err)
	}

	websocket.InitHub()

	store := social.NewStore(database.DB)
	handlers.Social = store
	websocket.Social = store

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/api/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})

	auth := r.Group("/api")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/verify", handlers.Verify)
		auth.POST("/login", handlers.Login)
	}

	posts := r.Group("/api/posts")
	{
		posts.GET("", handlers.GetPosts)
		posts.POST("", middleware.AuthMiddleware(), handlers.CreatePost)
		posts.GET("/:post_id/comments", handlers.GetComments)
		posts.POST("/:post_id/comments", middleware.AuthMiddleware(), handlers.CreateComment)
	}

	likes := r.Group("/api/likes")
	likes.Use(middleware.AuthMiddleware())
	{
		likes.GET("", handlers.GetLikes)
		likes.POST("/:post_id", handlers.LikePost)
		likes.DELETE("/:post_id", handlers.UnlikePost)
	}

	me := r.Group("/api")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/me", handlers.GetCurrentUser)
		me.GET("/users/search", handlers.SearchUsers)
	}

	user := r.Group("/api/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.PUT("/update", handlers.UpdateCurrentUser)
		user.POST("/media/add", handlers.AddMedia)
		user.GET("/user/:username", handlers.GetProfile)

		user.POST("/friends/request", handlers.SendFriendRequest)
		user.GET("/friends/requests", handlers.GetFriendRequests)
		user.POST("/friends/respond", handlers.RespondFriendRequest)
		user.GET("/friends/list", handlers.GetFriends)
	}

	messages := r.Group("/api/messages")
	messages.Use(middleware.AuthMiddleware())
	{
		messages.GET("/conversations", handlers.GetConversations)
		messages.POST("/send", handlers.SendMessage)
		messages.GET("/:user_id", handlers.GetMessages)
	}

	follow := r.Group("/api/follow")
	follow.Use(middleware.AuthMiddleware())
	{
		follow.POST("", handlers.Follow)
		follow.DELETE("", handlers.Unfollow)
		follow.GET("/status/:target_user_id", handlers.FollowStatus)
	}

	upload := r.Group("/api/upload")
	upload.Use(middleware.AuthMiddleware())
	{
		upload.POST("", handlers.UploadFile)
	}

	r.GET("/ws", websocket.HandleWebSocket)

	log.Printf("Server starting on %s", config.Cfg.ServerAddr)
	if err := r.Run(config.Cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
