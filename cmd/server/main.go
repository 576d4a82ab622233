package main

import (
	"fmt"
	"log"
	"net/http"

	"moodlink/backend/internal/auth"
	"moodlink/backend/internal/config"
	"moodlink/backend/internal/database"
	"moodlink/backend/internal/handler"
	"moodlink/backend/internal/service"
	"moodlink/backend/internal/store"

	"github.com/gin-gonic/gin"

	_ "moodlink/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Moodlink API
// @version         1.0
// @description     This is the API for the Moodlink social service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	db := database.Connect(config.AppConfig.DatabaseURL)

	userStore := store.NewGorm(db)
	social := service.NewSocial(userStore)
	h := handler.New(social)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	apiV1 := router.Group("/api/v1")
	h.Register(apiV1, auth.Middleware(config.AppConfig.JWTSecret, userStore))

	fmt.Printf("Server is running on %s\n", config.AppConfig.ListenAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ListenAddr))
}
