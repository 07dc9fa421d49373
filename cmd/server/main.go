package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/natsukih/notes-api/internal/auth"
	"github.com/natsukih/notes-api/internal/config"
	"github.com/natsukih/notes-api/internal/database"
	"github.com/natsukih/notes-api/internal/handlers"
	"github.com/natsukih/notes-api/internal/middleware"
	"github.com/natsukih/notes-api/internal/repository"
	"github.com/natsukih/notes-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.MigrateDatabase(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	// Initialize AI service
	var completion services.CompletionClient
	if cfg.OpenAIAPIKey != "" {
		completion = services.NewAIService(cfg.OpenAIAPIKey)
	}

	// Initialize repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	chatRepo := repository.NewChatRepository(db)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo)
	noteService := services.NewNoteService(noteRepo)
	chatService := services.NewChatService(chatRepo, completion)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, jwtService)
	noteHandler := handlers.NewNoteHandler(noteService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Notes API is running",
		})
	})

	// Auth routes (public)
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// Note routes (protected)
	notes := r.Group("/notes")
	notes.Use(middleware.RequireAuth(jwtService))
	{
		notes.GET("", noteHandler.ListNotes)
		notes.POST("", noteHandler.CreateNote)
		notes.GET("/:id", middleware.RequireNoteAccess(), noteHandler.GetNote)
		notes.PUT("/:id", middleware.RequireNoteAccess(), noteHandler.UpdateNote)
		notes.DELETE("/:id", middleware.RequireNoteAccess(), noteHandler.DeleteNote)
		notes.GET("/:id/chats", middleware.RequireNoteAccess(), chatHandler.ListChats)
		notes.POST("/:id/chats", middleware.RequireNoteAccess(), chatHandler.CreateChat)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
