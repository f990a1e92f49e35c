package middleware

import (
	"errors"
	"net/http"

	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/database"
	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/models"
	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TransactionStoreInterface define las operaciones que necesitamos del repositorio
type TransactionStoreInterface interface {
	CreateTransaction(tx *models.Transaction) error
	GetTransaction(id string) (*models.Transaction, error)
	UpdateTransaction(tx *models.Transaction) error
	DeleteTransaction(id string) (*models.Transaction, error)
	GetUserWithTransactions(userID string) (*models.UserWithTransactions, error)
	GetPortfolioEntries(userID string) ([]models.PortfolioEntry, error)
}

// CoinStoreInterface define las operaciones que necesitamos del repositorio de monedas
type CoinStoreInterface interface {
	GetCoinById(id string) (*models.Coin, error)
	GetAllCoins() ([]models.Coin, error)
}

var (
	transactionRepo TransactionStoreInterface
	coinRepo        CoinStoreInterface
)

func InitTransactions() {
	transactionRepo = repository.NewTransactionRepository(database.DB)
	coinRepo = repository.NewCoinRepository(database.DB)
}

// CreateTransaction crea una nueva transacción para el usuario autenticado.
// Los campos derivados (cantidad con signo y costo en USD con signo) se
// calculan acá según la dirección de la transferencia.
func CreateTransaction(c *gin.Context) {
	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// El dueño de la transacción es siempre el usuario autenticado
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	// Validar que la moneda referenciada exista. Un fallo del almacén no es
	// lo mismo que una referencia inválida: ese caso es un 500.
	if _, err := coinRepo.GetCoinById(req.CoinID); err != nil {
		if errors.Is(err, repository.ErrCoinNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Criptomoneda no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	tx := models.Transaction{
		ID:            uuid.NewString(),
		UserID:        userID,
		CoinID:        req.CoinID,
		CoinPriceCost: req.CoinPriceCost,
		TransferIn:    req.TransferIn,
	}
	tx.ApplyDerivedFields(req.Amount)

	if err := transactionRepo.CreateTransaction(&tx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Transacción creada exitosamente", "transaction": tx})
}

// GetUserTransactions devuelve el usuario con sus transacciones y los
// detalles de cada moneda (GET /transactions/:userId)
func GetUserTransactions(c *gin.Context) {
	principalID := c.GetString("userId")
	if principalID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	// Solo el dueño puede leer su lista de transacciones
	userID := c.Param("userId")
	if userID != principalID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permiso para ver estas transacciones"})
		return
	}

	userData, err := transactionRepo.GetUserWithTransactions(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, userData)
}

// UpdateTransaction actualiza una transacción existente recalculando todos
// los campos derivados desde cero
func UpdateTransaction(c *gin.Context) {
	principalID := c.GetString("userId")
	if principalID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	transactionID := c.Param("transId")

	existing, err := transactionRepo.GetTransaction(transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transacción no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Verificar que la transacción pertenezca al usuario
	if existing.UserID != principalID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permiso para modificar esta transacción"})
		return
	}

	var req models.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing.CoinPriceCost = req.CoinPriceCost
	existing.TransferIn = req.TransferIn
	existing.ApplyDerivedFields(req.Amount)

	if err := transactionRepo.UpdateTransaction(existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transacción actualizada exitosamente", "transaction": existing})
}

// DeleteTransaction elimina una transacción existente y la devuelve
func DeleteTransaction(c *gin.Context) {
	principalID := c.GetString("userId")
	if principalID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	transactionID := c.Param("transId")

	existing, err := transactionRepo.GetTransaction(transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transacción no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Verificar que la transacción pertenezca al usuario
	if existing.UserID != principalID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permiso para eliminar esta transacción"})
		return
	}

	deleted, err := transactionRepo.DeleteTransaction(transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transacción no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transacción eliminada exitosamente", "transaction": deleted})
}
