package main

import (
	"log"
	"net/http"

	"camp-signup-backend/internal/config"
	"camp-signup-backend/internal/database"
	"camp-signup-backend/internal/handlers"
	"camp-signup-backend/internal/services"
	"camp-signup-backend/internal/ws"

	_ "camp-signup-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Camp Signup API
// @version         1.0
// @description     REST API for summer-camp signups: campers, activities, and the signups joining them
// @host            localhost:5555
// @BasePath        /

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	camperService := services.NewCamperService(db)
	activityService := services.NewActivityService(db)
	signupService := services.NewSignupService(db)

	camperHandler := handlers.NewCamperHandler(camperService)
	activityHandler := handlers.NewActivityHandler(activityService, hub)
	signupHandler := handlers.NewSignupHandler(signupService, hub)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/activities/:id", wsHandler.HandleRosterFeed)

	campers := r.Group("/campers")
	{
		campers.GET("", camperHandler.ListCampers)
		campers.POST("", camperHandler.CreateCamper)
		campers.GET("/:id", camperHandler.GetCamper)
		campers.PATCH("/:id", camperHandler.UpdateCamper)
	}

	activities := r.Group("/activities")
	{
		activities.GET("", activityHandler.ListActivities)
		activities.GET("/:id", activityHandler.GetActivity)
		activities.DELETE("/:id", activityHandler.DeleteActivity)
	}

	r.POST("/signups", signupHandler.CreateSignup)

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
