package models

import "time"

// User represents an account with a coarse authorization role
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Role         string    `json:"role" db:"role"`
	PhoneNumber  string    `json:"phone_number,omitempty" db:"phone_number"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Role constants
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
)

// LoginRequest is the body of POST /auth/login/
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// TokenPair holds the access/refresh token pair issued on login
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginResponse is the success payload of POST /auth/login/
type LoginResponse struct {
	User   User      `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// RefreshRequest is the body of POST /auth/token/refresh/
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}
