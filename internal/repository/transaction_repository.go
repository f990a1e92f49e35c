package repository

import (
	"database/sql"
	"errors"

	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/models"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) CreateTransaction(tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, coin_id, coin_price_cost, transfer_in, amount, amount_in_usd)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	return r.db.QueryRow(query,
		tx.ID,
		tx.UserID,
		tx.CoinID,
		tx.CoinPriceCost,
		tx.TransferIn,
		tx.Amount,
		tx.AmountInUSD,
	).Scan(&tx.CreatedAt)
}

func (r *TransactionRepository) GetTransaction(id string) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, coin_id, coin_price_cost, transfer_in, amount, amount_in_usd, created_at
		FROM transactions
		WHERE id = $1`

	var tx models.Transaction
	err := r.db.QueryRow(query, id).Scan(
		&tx.ID,
		&tx.UserID,
		&tx.CoinID,
		&tx.CoinPriceCost,
		&tx.TransferIn,
		&tx.Amount,
		&tx.AmountInUSD,
		&tx.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}

	return &tx, nil
}

// UpdateTransaction sobreescribe todos los campos derivados; no los ajusta
// incrementalmente.
func (r *TransactionRepository) UpdateTransaction(tx *models.Transaction) error {
	query := `
		UPDATE transactions
		SET coin_price_cost = $1, transfer_in = $2, amount = $3, amount_in_usd = $4
		WHERE id = $5`

	result, err := r.db.Exec(query,
		tx.CoinPriceCost,
		tx.TransferIn,
		tx.Amount,
		tx.AmountInUSD,
		tx.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// DeleteTransaction elimina la fila y devuelve la transacción eliminada.
// Si no existe, falla con ErrTransactionNotFound en lugar de terminar en silencio.
func (r *TransactionRepository) DeleteTransaction(id string) (*models.Transaction, error) {
	query := `
		DELETE FROM transactions
		WHERE id = $1
		RETURNING id, user_id, coin_id, coin_price_cost, transfer_in, amount, amount_in_usd, created_at`

	var tx models.Transaction
	err := r.db.QueryRow(query, id).Scan(
		&tx.ID,
		&tx.UserID,
		&tx.CoinID,
		&tx.CoinPriceCost,
		&tx.TransferIn,
		&tx.Amount,
		&tx.AmountInUSD,
		&tx.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}

	return &tx, nil
}

// GetUserWithTransactions devuelve el usuario con todas sus transacciones y
// los detalles de cada moneda, todo en una sola consulta con join.
func (r *TransactionRepository) GetUserWithTransactions(userID string) (*models.UserWithTransactions, error) {
	userQuery := `SELECT id, COALESCE(subject_id, ''), email, name, created_at FROM users WHERE id = $1`

	var result models.UserWithTransactions
	err := r.db.QueryRow(userQuery, userID).Scan(
		&result.ID,
		&result.SubjectID,
		&result.Email,
		&result.Name,
		&result.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	query := `
		SELECT t.id, t.user_id, t.coin_id, t.coin_price_cost, t.transfer_in, t.amount, t.amount_in_usd, t.created_at,
		       c.id, c.symbol, c.name, c.market_price, c.updated_at
		FROM transactions t
		JOIN coins c ON c.id = t.coin_id
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result.Transactions = []models.Transaction{}
	for rows.Next() {
		var tx models.Transaction
		var coin models.Coin
		err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&tx.CoinID,
			&tx.CoinPriceCost,
			&tx.TransferIn,
			&tx.Amount,
			&tx.AmountInUSD,
			&tx.CreatedAt,
			&coin.ID,
			&coin.Symbol,
			&coin.Name,
			&coin.MarketPrice,
			&coin.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		tx.Coin = &coin
		result.Transactions = append(result.Transactions, tx)
	}

	return &result, rows.Err()
}

// GetPortfolioEntries devuelve las transacciones del usuario en la forma que
// consume el agregador de portafolio: cantidad con signo, costo en USD y
// detalles de la moneda con su precio actual.
func (r *TransactionRepository) GetPortfolioEntries(userID string) ([]models.PortfolioEntry, error) {
	query := `
		SELECT t.id, t.amount, t.amount_in_usd,
		       c.id, c.symbol, c.name, c.market_price, c.updated_at
		FROM transactions t
		JOIN coins c ON c.id = t.coin_id
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.PortfolioEntry{}
	for rows.Next() {
		var entry models.PortfolioEntry
		err := rows.Scan(
			&entry.TransactionID,
			&entry.Amount,
			&entry.AmountInUSD,
			&entry.CoinDetails.ID,
			&entry.CoinDetails.Symbol,
			&entry.CoinDetails.Name,
			&entry.CoinDetails.MarketPrice,
			&entry.CoinDetails.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
