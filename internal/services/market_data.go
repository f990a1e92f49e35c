package services

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/models"
)

var cmcBaseURL = "https://pro-api.coinmarketcap.com"

// GetTopListings obtiene los precios actuales de las primeras N criptomonedas
// desde CoinMarketCap. No hay reintentos ni datos de respaldo: si el proveedor
// falla, el error llega tal cual al caller.
func GetTopListings(limit int) (models.CmcListings, error) {
	url := fmt.Sprintf("%s/v1/cryptocurrency/listings/latest?start=1&limit=%d&convert=USD", cmcBaseURL, limit)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return models.CmcListings{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-CMC_PRO_API_KEY", os.Getenv("CMC_API_KEY"))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("Error al consultar CoinMarketCap: %v", err)
		return models.CmcListings{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Error al leer respuesta de CoinMarketCap: %v", err)
		return models.CmcListings{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return models.CmcListings{}, fmt.Errorf("CoinMarketCap respondió %d: %s", resp.StatusCode, string(body))
	}

	listings, err := models.UnmarshalListings(body)
	if err != nil {
		log.Printf("Error al parsear respuesta de CoinMarketCap: %v", err)
		return models.CmcListings{}, err
	}

	if listings.Status.ErrorCode != 0 {
		return models.CmcListings{}, fmt.Errorf("CoinMarketCap error %d: %s", listings.Status.ErrorCode, listings.Status.ErrorMessage)
	}

	return listings, nil
}

// ListingsToCoins convierte la respuesta del proveedor a la forma Coin.
func ListingsToCoins(listings models.CmcListings) []models.Coin {
	coins := make([]models.Coin, 0, len(listings.Data))
	for _, listing := range listings.Data {
		quote, ok := listing.Quote["USD"]
		if !ok {
			continue
		}
		coins = append(coins, models.Coin{
			ID:          fmt.Sprintf("cmc-%d", listing.ID),
			Symbol:      listing.Symbol,
			Name:        listing.Name,
			MarketPrice: quote.Price,
		})
	}
	return coins
}
