package main

import (
	"fmt"
	"log"

	"gameregistry/backend/internal/config"
	"gameregistry/backend/internal/database"
	"gameregistry/backend/internal/handler"

	// Swagger imports
	_ "gameregistry/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Game Server Registry API
// @version         1.0
// @description     HTTP/JSON registry for game server instances.
// @host            localhost:8080
// @BasePath        /
func main() {
	// Connect to the database
	db := database.Connect(config.AppConfig.DatabaseURL)

	h := handler.New(db)
	router := handler.NewRouter(h)

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("Server is running on :8080")
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(":8080"))
}
