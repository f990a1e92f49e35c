package models

import "time"

// Coin representa una criptomoneda con su precio de mercado actual.
// El precio viene de CoinMarketCap y no es autoritativo: se refresca
// siempre que el actualizador de precios corre.
type Coin struct {
	ID          string    `json:"id"`
	Symbol      string    `json:"symbol"`
	Name        string    `json:"name"`
	MarketPrice float64   `json:"marketPrice"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
