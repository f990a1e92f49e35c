package repository

import "errors"

var (
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrCoinNotFound        = errors.New("moneda no encontrada")
	ErrTransactionNotFound = errors.New("transacción no encontrada")
)
