package middleware

import (
	"errors"
	"net/http"

	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/repository"
	"github.com/gin-gonic/gin"
)

// GetUser devuelve un usuario por su identificador (GET /users/:id)
func GetUser(c *gin.Context) {
	id := c.Param("id")

	user, err := userRepo.GetUserById(id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
