package middleware

import (
	"net/http"
	"strconv"

	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/services"
	"github.com/gin-gonic/gin"
)

var fetchListings = services.GetTopListings

// GetCryptos proxyea los precios en vivo de las primeras N criptomonedas
// desde el proveedor externo (GET /cryptos/:limit)
func GetCryptos(c *gin.Context) {
	limitStr := c.Param("limit")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El límite debe ser un número positivo"})
		return
	}

	listings, err := fetchListings(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener datos de CoinMarketCap"})
		return
	}

	c.JSON(http.StatusOK, listings)
}

// GetCoins devuelve las monedas guardadas en el almacén con su último precio
// de mercado (GET /coins). Es lo que el cliente usa para poblar el selector
// de monedas al cargar una transacción.
func GetCoins(c *gin.Context) {
	coins, err := coinRepo.GetAllCoins()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, coins)
}
