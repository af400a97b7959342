package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"project_manager/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Authorization interface at compile time.
var _ Authorization = (*UserRepository)(nil)

const (
	insertUserSQL          = `INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`
	selectUserByLoginSQL   = `SELECT id, username, email, password_hash FROM users WHERE username = ? OR email = ?`
	selectUsernameTakenSQL = `SELECT COUNT(1) FROM users WHERE username = ?`
)

// Create inserts a new user and returns its ID.
func (r *UserRepository) Create(username, email, passwordHash string) (int, error) {
	res, err := r.db.Exec(insertUserSQL, username, email, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByLogin fetches a user by username or email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByLogin(usernameOrEmail string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(selectUserByLoginSQL, usernameOrEmail, usernameOrEmail).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", usernameOrEmail, err)
	}
	return &u, nil
}

// UsernameExists reports whether a user with the given username is registered.
func (r *UserRepository) UsernameExists(username string) (bool, error) {
	var n int
	if err := r.db.QueryRow(selectUsernameTakenSQL, username).Scan(&n); err != nil {
		return false, fmt.Errorf("count username %q: %w", username, err)
	}
	return n > 0, nil
}
