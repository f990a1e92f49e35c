package models

// PortfolioEntry es una transacción junto con los detalles actuales de la
// moneda, tal como la consume el cliente para armar tablas y gráficos.
type PortfolioEntry struct {
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	AmountInUSD   float64 `json:"amountInUSD"`
	CoinDetails   Coin    `json:"coinDetails"`
}

// PortfolioSummary es el agregado derivado de todas las transacciones del
// usuario. Nunca se persiste: se recalcula completo en cada consulta.
type PortfolioSummary struct {
	MarketValue float64     `json:"marketValue"` // Σ amount × precio actual
	CostBasis   float64     `json:"costBasis"`   // Σ amountInUSD
	Performance Performance `json:"performance"`
}

// Performance describe la ganancia o pérdida del portafolio.
// Cuando CostBasis es cero el porcentaje no está definido: Percent queda en 0,
// PercentDefined en false y Formatted muestra "N/A" en lugar del porcentaje.
type Performance struct {
	Diff           float64 `json:"diff"`
	Percent        float64 `json:"percent"`
	PercentDefined bool    `json:"percentDefined"`
	Sign           string  `json:"sign"`
	Arrow          string  `json:"arrow"`
	Formatted      string  `json:"formatted"`
}
