package models

import (
	"github.com/alexedwards/argon2id"
	"github.com/pkg/errors"
)

// RoleAdmin is the role of every account created without an explicit one.
const RoleAdmin = "admin"

// Admin represents an account allowed into the admin area.
type Admin struct {
	// ID is the unique identifier for the admin.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Username is the unique login name.
	Username string `gorm:"unique;size:100;not null" json:"username"`
	// Password is the Argon2id hash. It never leaves the server.
	Password string `gorm:"size:255;not null" json:"-"`
	// Email is the admin's contact address.
	Email string `gorm:"size:255;not null" json:"email"`
	// Role of the account, "admin" unless set otherwise.
	Role string `gorm:"size:50;not null;default:'admin'" json:"role"`
}

// AdminProfile is the projection of an admin stored in sessions and
// returned by the API.
type AdminProfile struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Profile returns the password-free projection of a.
func (a *Admin) Profile() AdminProfile {
	return AdminProfile{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Role:     a.Role,
	}
}

// AdminInput is the payload for creating an admin account.
type AdminInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email"    validate:"required,email"`
	Role     string `json:"role"`
}

// Admin builds the entity to persist with the password hashed.
func (in *AdminInput) Admin() (Admin, error) {
	hash, err := HashPassword(in.Password)
	if err != nil {
		return Admin{}, err
	}

	role := in.Role
	if role == "" {
		role = RoleAdmin
	}

	return Admin{
		Username: in.Username,
		Password: hash,
		Email:    in.Email,
		Role:     role,
	}, nil
}

// HashPassword hashes a plaintext password using the Argon2id algorithm
// with the library's default parameters.
func HashPassword(password string) (string, error) {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return hashedPassword, nil
}

// VerifyPassword verifies a plaintext password against the stored hash in
// constant time. A malformed hash never matches.
func (a *Admin) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, a.Password)
	if err != nil {
		return false
	}

	return match
}
