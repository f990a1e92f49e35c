package services

import (
	"fmt"
	"math"

	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/models"
)

// Funciones puras de agregación del portafolio. Sin estado ni I/O: se
// recalculan completas en cada consulta a partir de lo leído del almacén.

// MarketValue es el valor actual de las posiciones: Σ amount × precio de mercado.
func MarketValue(entries []models.PortfolioEntry) float64 {
	total := 0.0
	for _, entry := range entries {
		total += entry.Amount * entry.CoinDetails.MarketPrice
	}
	return total
}

// CostBasis es el costo acumulado en USD: Σ amountInUSD.
func CostBasis(entries []models.PortfolioEntry) float64 {
	total := 0.0
	for _, entry := range entries {
		total += entry.AmountInUSD
	}
	return total
}

// CalculatePerformance calcula la ganancia o pérdida del portafolio.
// Con costo base cero el porcentaje no está definido: se informa 0 con
// PercentDefined en false y "N/A" en el texto, nunca NaN ni Inf.
func CalculatePerformance(marketValue, costBasis float64) models.Performance {
	diff := marketValue - costBasis

	sign := "-"
	arrow := "↓"
	if diff > 0 {
		sign = "+"
		arrow = "↑"
	}

	performance := models.Performance{
		Diff:  diff,
		Sign:  sign,
		Arrow: arrow,
	}

	if costBasis == 0 {
		performance.Formatted = fmt.Sprintf("%s $%.2f %s N/A", sign, math.Abs(diff), arrow)
		return performance
	}

	performance.Percent = (diff / costBasis) * 100
	performance.PercentDefined = true
	performance.Formatted = fmt.Sprintf("%s $%.2f %s %.2f%%", sign, math.Abs(diff), arrow, math.Abs(performance.Percent))
	return performance
}

// Summarize reduce la lista de entradas del portafolio a las cifras de resumen.
func Summarize(entries []models.PortfolioEntry) models.PortfolioSummary {
	marketValue := MarketValue(entries)
	costBasis := CostBasis(entries)

	return models.PortfolioSummary{
		MarketValue: marketValue,
		CostBasis:   costBasis,
		Performance: CalculatePerformance(marketValue, costBasis),
	}
}
