package models

import "encoding/json"

func UnmarshalListings(data []byte) (CmcListings, error) {
	var r CmcListings
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *CmcListings) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// CmcListings es la respuesta de /v1/cryptocurrency/listings/latest de CoinMarketCap.
type CmcListings struct {
	Status CmcStatus    `json:"status"`
	Data   []CmcListing `json:"data"`
}

type CmcStatus struct {
	ErrorCode    int    `json:"error_code"`
	ErrorMessage string `json:"error_message"`
	Timestamp    string `json:"timestamp"`
}

type CmcListing struct {
	ID     int                 `json:"id"`
	Name   string              `json:"name"`
	Symbol string              `json:"symbol"`
	Quote  map[string]CmcQuote `json:"quote"`
}

type CmcQuote struct {
	Price            float64 `json:"price"`
	MarketCap        float64 `json:"market_cap"`
	Volume24h        float64 `json:"volume_24h"`
	PercentChange24h float64 `json:"percent_change_24h"`
	LastUpdated      string  `json:"last_updated"`
}
