package routes

import (
	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	// Inicializar repositorios
	middleware.InitAuth()
	middleware.InitTransactions()

	// Rutas públicas
	router.GET("/users/:id", middleware.GetUser)
	router.GET("/coins", middleware.GetCoins)
	router.GET("/cryptos/:limit", middleware.GetCryptos)

	// Modo local: registro y login propios
	router.POST("/signup", middleware.Signup)
	router.POST("/login", middleware.Login)

	// Sincronización de usuarios desde el proveedor de identidad
	router.POST("/webhook/clerk", middleware.ClerkWebhookHandler)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/transactions/:userId", middleware.GetUserTransactions)
		protected.POST("/transaction", middleware.CreateTransaction)
		protected.PUT("/transaction/:transId", middleware.UpdateTransaction)
		protected.DELETE("/transaction/:transId", middleware.DeleteTransaction)

		protected.GET("/portfolio", middleware.GetPortfolio)
		protected.GET("/portfolio/summary", middleware.GetPortfolioSummary)
	}
}
