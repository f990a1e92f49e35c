package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/models"
	"github.com/gin-gonic/gin"
)

func setupCryptoRouter(fetch func(limit int) (models.CmcListings, error)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	fetchListings = fetch

	router := gin.New()
	router.GET("/cryptos/:limit", GetCryptos)
	return router
}

func TestGetCryptosProxiesProvider(t *testing.T) {
	var gotLimit int
	router := setupCryptoRouter(func(limit int) (models.CmcListings, error) {
		gotLimit = limit
		return models.CmcListings{
			Data: []models.CmcListing{{ID: 1, Symbol: "BTC", Name: "Bitcoin"}},
		}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/cryptos/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, quiere 200", w.Code)
	}
	if gotLimit != 5 {
		t.Fatalf("limit = %d, quiere 5", gotLimit)
	}
}

func TestGetCryptosUpstreamFailure(t *testing.T) {
	router := setupCryptoRouter(func(limit int) (models.CmcListings, error) {
		return models.CmcListings{}, errors.New("proveedor caído")
	})

	req := httptest.NewRequest(http.MethodGet, "/cryptos/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, quiere 500", w.Code)
	}
}

func TestGetCryptosRejectsBadLimit(t *testing.T) {
	router := setupCryptoRouter(func(limit int) (models.CmcListings, error) {
		t.Fatalf("no se debía llamar al proveedor")
		return models.CmcListings{}, nil
	})

	for _, path := range []string{"/cryptos/abc", "/cryptos/0", "/cryptos/-2"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, quiere 400 para %s", w.Code, path)
		}
	}
}
