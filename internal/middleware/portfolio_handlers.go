package middleware

import (
	"net/http"

	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/services"
	"github.com/gin-gonic/gin"
)

// GetPortfolio devuelve las entradas del portafolio del usuario autenticado:
// cada transacción junto con los detalles actuales de su moneda. El cliente
// arma con esto las tablas y los gráficos.
func GetPortfolio(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	entries, err := transactionRepo.GetPortfolioEntries(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetPortfolioSummary reduce las entradas del portafolio a las cifras de
// resumen: valor de mercado, costo base y rendimiento. Se recalcula completo
// en cada consulta, nunca se cachea.
func GetPortfolioSummary(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	entries, err := transactionRepo.GetPortfolioEntries(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.Summarize(entries))
}
