package repository

import (
	"database/sql"

	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/database"
	"github.com/AgusMolinaCode/Coinfolio_Api.git/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		db: database.DB,
	}
}

func (r *UserRepository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO users (id, subject_id, email, password, name)
		VALUES ($1, $2, $3, $4, $5)`

	// Los usuarios del modo local no tienen subject del proveedor de
	// identidad: guardamos NULL en lugar de "" para no chocar con el
	// índice UNIQUE de subject_id
	_, err := r.db.Exec(query, user.ID, nullIfEmpty(user.SubjectID), user.Email, user.Password, user.Name)
	return err
}

// nullIfEmpty convierte "" en NULL para columnas con índice UNIQUE.
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func (r *UserRepository) GetUserById(id string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, COALESCE(subject_id, ''), email, name, created_at FROM users WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.SubjectID,
		&user.Email,
		&user.Name,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

// GetUserBySubjectId busca al usuario por el "sub" del proveedor de identidad.
func (r *UserRepository) GetUserBySubjectId(subjectID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, COALESCE(subject_id, ''), email, name, created_at FROM users WHERE subject_id = $1`

	err := r.db.QueryRow(query, subjectID).Scan(
		&user.ID,
		&user.SubjectID,
		&user.Email,
		&user.Name,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, name, created_at FROM users WHERE email = $1`

	err := r.db.QueryRow(query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Name,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *UserRepository) UpdateUser(user *models.User) error {
	query := `
		UPDATE users
		SET email = $1, name = $2
		WHERE id = $3`

	_, err := r.db.Exec(query, user.Email, user.Name, user.ID)
	return err
}

func (r *UserRepository) DeleteUser(id string) error {
	query := `DELETE FROM users WHERE id = $1`

	_, err := r.db.Exec(query, id)
	return err
}
