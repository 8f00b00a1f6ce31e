package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"gamelist/backend/internal/auth"
	"gamelist/backend/internal/config"
	"gamelist/backend/internal/database"
	"gamelist/backend/internal/handler"
	"gamelist/backend/pkg/jwt"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gamelist/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const tokenTTL = 7 * 24 * time.Hour

// @title           Game List API
// @version         1.0
// @description     API for managing named, user-owned, optionally-private game lists.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Unable to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	tokens := jwt.NewManager(cfg.JWTSecret, tokenTTL)
	h := handler.New(db, tokens)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Auth routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", h.RegisterUser)
		authRoutes.POST("/login", h.LoginUser)
	}

	// List routes; /me must be registered before /:id
	listRoutes := router.Group("/list")
	{
		listRoutes.POST("", auth.Middleware(tokens), h.CreateList)
		listRoutes.GET("", h.GetPublicLists)
		listRoutes.GET("/me", auth.Middleware(tokens), h.GetMyLists)
		listRoutes.GET("/:id", auth.OptionalMiddleware(tokens), h.GetList)
		listRoutes.PUT("/:id", auth.Middleware(tokens), h.UpdateList)
		listRoutes.DELETE("/:id", auth.Middleware(tokens), h.DeleteList)
	}

	// Read-only game catalog
	gameRoutes := router.Group("/game")
	{
		gameRoutes.GET("", h.GetGames)
		gameRoutes.GET("/:id", h.GetGameByID)
	}

	fmt.Printf("Server is running on :%s\n", cfg.Port)
	fmt.Printf("Swagger UI is available at http://localhost:%s/swagger/index.html\n", cfg.Port)
	log.Fatal(router.Run(":" + cfg.Port))
}
