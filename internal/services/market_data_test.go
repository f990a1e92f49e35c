package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/models"
)

const listingsPayload = `{
	"status": {"error_code": 0, "error_message": ""},
	"data": [
		{"id": 1, "name": "Bitcoin", "symbol": "BTC", "quote": {"USD": {"price": 65000.5, "percent_change_24h": 1.2}}},
		{"id": 1027, "name": "Ethereum", "symbol": "ETH", "quote": {"USD": {"price": 3100.25, "percent_change_24h": -0.8}}},
		{"id": 825, "name": "Tether", "symbol": "USDT", "quote": {"EUR": {"price": 0.93}}}
	]
}`

func TestGetTopListings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/cryptocurrency/listings/latest" {
			t.Errorf("path inesperado: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "3" {
			t.Errorf("limit = %s, quiere 3", got)
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("header Accept = %q", r.Header.Get("Accept"))
		}
		w.Write([]byte(listingsPayload))
	}))
	defer server.Close()

	oldBase := cmcBaseURL
	cmcBaseURL = server.URL
	defer func() { cmcBaseURL = oldBase }()

	listings, err := GetTopListings(3)
	if err != nil {
		t.Fatalf("GetTopListings: %v", err)
	}
	if len(listings.Data) != 3 {
		t.Fatalf("len(Data) = %d, quiere 3", len(listings.Data))
	}
	if listings.Data[0].Symbol != "BTC" || listings.Data[0].Quote["USD"].Price != 65000.5 {
		t.Fatalf("primera entrada inesperada: %+v", listings.Data[0])
	}
}

func TestGetTopListingsUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status": {"error_code": 500, "error_message": "upstream down"}}`))
	}))
	defer server.Close()

	oldBase := cmcBaseURL
	cmcBaseURL = server.URL
	defer func() { cmcBaseURL = oldBase }()

	if _, err := GetTopListings(5); err == nil {
		t.Fatalf("se esperaba error con el proveedor caído")
	}
}

func TestGetTopListingsProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": {"error_code": 1001, "error_message": "API key invalid"}, "data": []}`))
	}))
	defer server.Close()

	oldBase := cmcBaseURL
	cmcBaseURL = server.URL
	defer func() { cmcBaseURL = oldBase }()

	if _, err := GetTopListings(5); err == nil {
		t.Fatalf("se esperaba error con error_code != 0")
	}
}

func TestListingsToCoins(t *testing.T) {
	listings, err := models.UnmarshalListings([]byte(listingsPayload))
	if err != nil {
		t.Fatalf("UnmarshalListings: %v", err)
	}

	coins := ListingsToCoins(listings)

	// USDT no tiene cotización en USD, así que se descarta
	if len(coins) != 2 {
		t.Fatalf("len(coins) = %d, quiere 2", len(coins))
	}
	if coins[0].ID != "cmc-1" || coins[0].Symbol != "BTC" || coins[0].MarketPrice != 65000.5 {
		t.Fatalf("coin inesperada: %+v", coins[0])
	}
	if coins[1].Symbol != "ETH" || coins[1].Name != "Ethereum" {
		t.Fatalf("coin inesperada: %+v", coins[1])
	}
}

type fakeCoinStore struct {
	upserted []models.Coin
	err      error
}

func (f *fakeCoinStore) UpsertCoin(coin *models.Coin) error {
	if f.err != nil {
		return f.err
	}
	f.upserted = append(f.upserted, *coin)
	return nil
}

// Un intervalo no positivo haría entrar en pánico a time.NewTicker: Start
// debe rechazarlo sin arrancar el servicio.
func TestPriceUpdaterStartRejectsNonPositiveInterval(t *testing.T) {
	updater := NewPriceUpdater(0, 3, &fakeCoinStore{})

	updater.Start()

	updater.mutex.Lock()
	running := updater.isRunning
	updater.mutex.Unlock()
	if running {
		t.Fatalf("el servicio no debía arrancar con intervalo 0")
	}

	// Stop sobre un servicio que nunca arrancó tampoco debe fallar
	updater.Stop()
}

func TestPriceUpdaterRefreshPrices(t *testing.T) {
	store := &fakeCoinStore{}
	updater := NewPriceUpdater(0, 3, store)
	updater.fetch = func(limit int) (models.CmcListings, error) {
		if limit != 3 {
			t.Errorf("limit = %d, quiere 3", limit)
		}
		return models.UnmarshalListings([]byte(listingsPayload))
	}

	updater.refreshPrices()

	if len(store.upserted) != 2 {
		t.Fatalf("se guardaron %d monedas, quiere 2", len(store.upserted))
	}
	if updater.GetLastUpdated().IsZero() {
		t.Fatalf("lastUpdated no se actualizó")
	}
}
