package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

var DB *sql.DB

func InitDB() error {
	// La URL completa tiene prioridad; si no, armamos el DSN por partes
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getEnv("DB_NAME", "coinfolio"),
		)
	}

	var err error
	DB, err = sql.Open("postgres", dsn)
	if err != nil {
		return err
	}

	if err := DB.Ping(); err != nil {
		return err
	}

	// Crear tabla de usuarios si no existe
	createUsersTableSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		subject_id TEXT UNIQUE,
		email TEXT,
		password TEXT,
		name TEXT,
		created_at TIMESTAMPTZ DEFAULT NOW()
	);`

	_, err = DB.Exec(createUsersTableSQL)
	if err != nil {
		return err
	}

	// Crear tabla de monedas
	createCoinsTableSQL := `
	CREATE TABLE IF NOT EXISTS coins (
		id TEXT PRIMARY KEY,
		symbol TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		market_price DOUBLE PRECISION NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ DEFAULT NOW()
	);`

	_, err = DB.Exec(createCoinsTableSQL)
	if err != nil {
		return err
	}

	// Crear tabla de transacciones
	createTransactionsTableSQL := `
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id),
		coin_id TEXT NOT NULL REFERENCES coins(id),
		coin_price_cost DOUBLE PRECISION NOT NULL,
		transfer_in BOOLEAN NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		amount_in_usd DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ DEFAULT NOW()
	);`

	_, err = DB.Exec(createTransactionsTableSQL)
	if err != nil {
		return err
	}

	// Índice para la consulta principal (transacciones por usuario)
	createTransactionsIndexSQL := `
	CREATE INDEX IF NOT EXISTS idx_transactions_user
	ON transactions(user_id, created_at);`

	_, err = DB.Exec(createTransactionsIndexSQL)
	if err != nil {
		return err
	}

	// Ejecutar migraciones para actualizar el esquema
	err = RunMigrations()
	return err
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
