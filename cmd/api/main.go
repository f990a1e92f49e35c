package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/database"
	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/middleware"
	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/repository"
	routes "github.com/AgusMolinaCode/Coinfolio_Api.git/internal/server"
	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Instancia global del actualizador de precios
var priceUpdater *services.PriceUpdater

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("No se pudo cargar el archivo .env: %v", err)
	}

	// Crear el router de Gin
	router := gin.Default()

	// Configurar CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-Id"}
	config.AllowCredentials = true
	config.ExposeHeaders = []string{"Content-Length"}
	router.Use(cors.New(config))

	// Inicializar base de datos
	if err := database.InitDB(); err != nil {
		log.Fatalf("Error al inicializar la base de datos: %v", err)
	}
	defer database.DB.Close()

	// Inicializar el proveedor de identidad
	middleware.InitClerk()

	// Iniciar el servicio de actualización de precios si está configurado
	if intervalStr := os.Getenv("PRICE_REFRESH_INTERVAL"); intervalStr != "" {
		interval, err := time.ParseDuration(intervalStr)
		if err != nil {
			log.Fatalf("PRICE_REFRESH_INTERVAL inválido: %v", err)
		}
		if interval <= 0 {
			log.Fatalf("PRICE_REFRESH_INTERVAL debe ser positivo, recibido %v", interval)
		}

		limit := 100
		if limitStr := os.Getenv("PRICE_REFRESH_LIMIT"); limitStr != "" {
			if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		priceUpdater = services.NewPriceUpdater(interval, limit, repository.NewCoinRepository(database.DB))
		priceUpdater.Start()
		defer priceUpdater.Stop()
	}

	// Configurar las rutas
	routes.RegisterRoutes(router)

	// Iniciar el servidor
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
