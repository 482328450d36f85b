package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/minesight/rockfall-backend-go/internal/models"
)

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, username, email, password_hash, first_name, last_name, role, COALESCE(phone_number, ''), created_at"

func scanUser(scanner interface{ Scan(...interface{}) error }) (*models.User, error) {
	var u models.User
	var createdAt string

	err := scanner.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Role, &u.PhoneNumber, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if t, err := time.Parse(timeLayout, createdAt); err == nil {
		u.CreatedAt = t
	}

	return &u, nil
}

// Create inserts a user and fills in its assigned id
func (r *UserRepository) Create(user *models.User) error {
	query := `INSERT INTO users (username, email, password_hash, first_name, last_name, role, phone_number)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := r.db.Exec(query,
		user.Username, user.Email, user.PasswordHash,
		user.FirstName, user.LastName, user.Role, user.PhoneNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get user id: %w", err)
	}
	user.ID = id

	return nil
}

// GetByEmail retrieves a user by email; returns nil when not found
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow("SELECT "+userColumns+" FROM users WHERE email = ?", email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// GetByID retrieves a user by id; returns nil when not found
func (r *UserRepository) GetByID(id int64) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow("SELECT "+userColumns+" FROM users WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}
