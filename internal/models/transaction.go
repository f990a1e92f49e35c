package models

import "time"

// Transaction es una entrada del libro del usuario. Amount y AmountInUSD se
// guardan CON SIGNO: negativos cuando TransferIn es false (salida de fondos).
// Ambos campos derivados deben compartir siempre el signo que implica la
// dirección de la transferencia.
type Transaction struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	CoinID        string    `json:"coinId"`
	CoinPriceCost float64   `json:"coinPriceCost"`
	TransferIn    bool      `json:"transferIn"`
	Amount        float64   `json:"amount"`
	AmountInUSD   float64   `json:"amountInUSD"`
	CreatedAt     time.Time `json:"createdAt"`
	Coin          *Coin     `json:"coin,omitempty"`
}

// ApplyDerivedFields recalcula los campos derivados desde cero a partir de la
// cantidad cruda (siempre positiva) y la dirección de la transferencia.
func (t *Transaction) ApplyDerivedFields(rawAmount float64) {
	if t.TransferIn {
		t.Amount = rawAmount
	} else {
		t.Amount = -rawAmount
	}
	t.AmountInUSD = t.Amount * t.CoinPriceCost
}

type CreateTransactionRequest struct {
	UserID        string  `json:"userId"`
	CoinID        string  `json:"coinId" binding:"required"`
	CoinPriceCost float64 `json:"coinPriceCost" binding:"required,gt=0"`
	TransferIn    bool    `json:"transferIn"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
}

// El dueño de la transacción sale siempre del principal autenticado, nunca
// del cuerpo; un userId enviado por el cliente simplemente se ignora.
type UpdateTransactionRequest struct {
	CoinPriceCost float64 `json:"coinPriceCost" binding:"required,gt=0"`
	TransferIn    bool    `json:"transferIn"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
}
