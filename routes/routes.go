package routes

import (
	"sejenak-backend/config"
	"sejenak-backend/controllers"
	"sejenak-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://admin.sejenak.id",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Treatment catalog routes
		treatments := api.Group("/treatments")
		{
			treatments.POST("", controllers.CreateTreatment)
			treatments.GET("", controllers.GetTreatments)
			treatments.GET("/:id", controllers.GetTreatment)
			treatments.PUT("/:id", controllers.UpdateTreatment)
			treatments.DELETE("/:id", controllers.DeleteTreatment)
		}

		// Therapist routes
		therapists := api.Group("/therapists")
		{
			therapists.GET("", controllers.GetTherapists)
			therapists.POST("", controllers.AddTherapist)
			therapists.PUT("/:id", controllers.UpdateTherapist)
			therapists.DELETE("/:id", controllers.DeleteTherapist)
		}

		// Booking routes
		bookings := api.Group("/bookings")
		{
			bookings.POST("", controllers.CreateBooking)
			bookings.GET("", controllers.GetBookings)
			bookings.GET("/:id", controllers.GetBooking)
			bookings.PUT("/:id", controllers.UpdateBooking)
			bookings.DELETE("/:id", controllers.DeleteBooking)
		}

		// Loyalty configuration routes
		rules := api.Group("/point-rules")
		{
			rules.POST("", controllers.CreatePointRule)
			rules.GET("", controllers.GetPointRules)
			rules.PUT("/:id", controllers.UpdatePointRule)
			rules.DELETE("/:id", controllers.DeletePointRule)
		}

		tiers := api.Group("/tiers")
		{
			tiers.POST("", controllers.CreateTier)
			tiers.GET("", controllers.GetTiers)
			tiers.PUT("/:id", controllers.UpdateTier)
			tiers.DELETE("/:id", controllers.DeleteTier)
		}

		rewards := api.Group("/rewards")
		{
			rewards.POST("", controllers.CreateReward)
			rewards.GET("", controllers.GetRewards)
			rewards.PUT("/:id", controllers.UpdateReward)
			rewards.DELETE("/:id", controllers.DeleteReward)
		}

		// Member routes
		members := api.Group("/members")
		{
			members.GET("", controllers.GetMembers)
			members.GET("/:id", controllers.GetMember)
			members.GET("/:id/ledger", controllers.GetMemberLedger)
			members.POST("/earn", controllers.EarnPoints)
			members.POST("/:id/redeem", controllers.RedeemReward)
		}

		// Program reset is owner-only and irreversible
		api.POST("/loyalty/reset", utils.RequireRole("owner"), controllers.ResetLoyaltyProgram)

		// Campaign routes
		campaigns := api.Group("/campaigns")
		{
			campaigns.POST("/blast", controllers.SendCampaignBlast)
			campaigns.GET("/logs", controllers.GetCampaignLogs)
		}

		// Reports routes
		reportController := controllers.ReportController{}
		api.GET("/reports/trends", reportController.GetTrendAnalytics)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
