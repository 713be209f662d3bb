// Package routes wires the development backend: the same REST contract the
// real café service exposes, served from in-memory data so the storefront
// core can run and be tested without it.
package routes

import (
	"github.com/gin-gonic/gin"

	"cafe-storefront/config"
	"cafe-storefront/controllers"
	"cafe-storefront/middleware"
	"cafe-storefront/models"
	"cafe-storefront/repositories"
)

func New(cfg *config.Config, repo *repositories.MemoryRepository, email *models.EmailService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())

	authCtrl := controllers.NewAuthController(cfg, repo)
	productCtrl := controllers.NewProductController(repo)
	orderCtrl := controllers.NewOrderController(cfg, repo, email)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

		api.POST("/auth/register", authCtrl.Register)
		api.POST("/auth/login", authCtrl.Login)
		api.POST("/auth/admin-login", authCtrl.AdminLogin)

		api.GET("/products/", productCtrl.GetAllProducts)
		api.GET("/events/", productCtrl.GetAllEvents)
		api.GET("/events/upcoming", productCtrl.GetUpcomingEvents)

		api.POST("/orders/", middleware.OptionalAuthMiddleware(cfg.JWTSecret), orderCtrl.CreateOrder)
		api.GET("/orders/", middleware.AuthMiddleware(cfg.JWTSecret), orderCtrl.GetAllOrders)
		api.POST("/orders/:id/payment-intent", orderCtrl.CreatePaymentIntent)
		api.POST("/orders/:id/confirm-payment", orderCtrl.ConfirmPayment)
	}

	return router
}
