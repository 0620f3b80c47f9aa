package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User roles recognised by the platform.
const (
	RoleStudent = "Student"
	RoleTeacher = "Teacher"
	RoleStaff   = "Staff"
)

// User represents a registered user stored in MongoDB.
type User struct {
	ID           string    `json:"id" bson:"id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Password     string    `json:"-" bson:"password"` // bcrypt hash, never serialized
	Role         string    `json:"role" bson:"role"`
	AnonymousTag string    `json:"anonymous_tag" bson:"anonymous_tag"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// RegisterRequest defines the request body for user registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=Student Teacher Staff"`
}

// LoginRequest defines the request body for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SearchResult is the privacy-preserving projection returned by user
// search. The anonymous tag doubles as the displayed name; the real
// name and email are never included.
type SearchResult struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	AnonymousTag string    `json:"anonymous_tag"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
