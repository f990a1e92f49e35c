package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id"`
	SubjectID string    `json:"subjectId"` // "sub" del proveedor de identidad
	Email     string    `json:"email"`
	Password  string    `json:"-"` // El "-" evita que se serialice en JSON (solo modo local)
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserWithTransactions es la respuesta de GET /transactions/:userId:
// el usuario con todas sus transacciones y los detalles de cada moneda.
type UserWithTransactions struct {
	User
	Transactions []Transaction `json:"transactions"`
}
