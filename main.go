package main

import (
	"fmt"

	"sejenak-backend/config"
	"sejenak-backend/controllers"
	"sejenak-backend/models"
	"sejenak-backend/routes"
	"sejenak-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	config.SetupLogger(cfg.Log)
	config.ConnectDB(cfg.DB)

	config.DB.AutoMigrate(
		&models.Branch{},
		&models.User{},
		&models.Customer{},
		&models.Treatment{},
		&models.Therapist{},
		&models.Booking{},
		&models.Member{},
		&models.PointRule{},
		&models.TierDefinition{},
		&models.Reward{},
		&models.RedemptionRecord{},
		&models.PointsHistoryEntry{},
		&models.CampaignLog{},
	)

	controllers.InitServices(*cfg)

	tierService := services.NewTierService(config.DB)
	tierService.StartScheduler()

	campaignService := services.NewCampaignService(config.DB, *cfg)
	campaignService.StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + cfg.Server.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
