package repository

import (
	"database/sql"
	"time"

	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/models"
)

type CoinRepository struct {
	db *sql.DB
}

func NewCoinRepository(db *sql.DB) *CoinRepository {
	return &CoinRepository{db: db}
}

func (r *CoinRepository) GetCoinById(id string) (*models.Coin, error) {
	coin := &models.Coin{}
	query := `SELECT id, symbol, name, market_price, updated_at FROM coins WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(
		&coin.ID,
		&coin.Symbol,
		&coin.Name,
		&coin.MarketPrice,
		&coin.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCoinNotFound
	}

	return coin, err
}

func (r *CoinRepository) GetAllCoins() ([]models.Coin, error) {
	coins := []models.Coin{}
	query := `SELECT id, symbol, name, market_price, updated_at FROM coins ORDER BY symbol`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var coin models.Coin
		err := rows.Scan(
			&coin.ID,
			&coin.Symbol,
			&coin.Name,
			&coin.MarketPrice,
			&coin.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		coins = append(coins, coin)
	}

	return coins, nil
}

// UpsertCoin inserta la moneda o actualiza su precio si ya existe.
// Lo usa el actualizador de precios con los datos frescos del proveedor.
func (r *CoinRepository) UpsertCoin(coin *models.Coin) error {
	query := `
		INSERT INTO coins (id, symbol, name, market_price, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (symbol) DO UPDATE
		SET name = EXCLUDED.name,
		    market_price = EXCLUDED.market_price,
		    updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(query, coin.ID, coin.Symbol, coin.Name, coin.MarketPrice, time.Now())
	return err
}
