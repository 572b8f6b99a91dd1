package auth

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/xcelliti/website/internal/db/models"
	"github.com/xcelliti/website/internal/store"
)

// Service provides admin authentication and account provisioning.
type Service struct {
	admins   store.AdminStore
	local    *LocalProvider
	validate *validator.Validate
}

// NewService creates a new auth service.
func NewService(admins store.AdminStore) (*Service, error) {
	if admins == nil {
		return nil, ErrStoreNil
	}

	return &Service{
		admins:   admins,
		local:    NewLocalProvider(admins),
		validate: validator.New(),
	}, nil
}

// Login verifies the credentials and returns the admin's session projection.
func (s *Service) Login(ctx context.Context, username, password string) (models.AdminProfile, error) {
	admin, err := s.local.Authenticate(ctx, username, password)
	if err != nil {
		return models.AdminProfile{}, err
	}

	log.Info().Str("username", admin.Username).Msg("admin logged in")

	return admin.Profile(), nil
}

// CreateAdmin validates the input, hashes the password and stores the account.
// A taken username yields store.ErrAdminExists.
func (s *Service) CreateAdmin(ctx context.Context, in *models.AdminInput) (models.AdminProfile, error) {
	if err := s.validate.Struct(in); err != nil {
		return models.AdminProfile{}, fmt.Errorf("invalid admin: %w", err)
	}

	admin, err := in.Admin()
	if err != nil {
		return models.AdminProfile{}, err
	}

	admin, err = s.admins.CreateAdmin(ctx, admin)
	if err != nil {
		return models.AdminProfile{}, err
	}

	return admin.Profile(), nil
}

// EnsureAdmin creates the account unless its username is already taken.
// It reports whether an account was created.
func (s *Service) EnsureAdmin(ctx context.Context, in *models.AdminInput) (bool, error) {
	if _, err := s.admins.GetAdminByUsername(ctx, in.Username); err == nil {
		return false, nil
	}

	if _, err := s.CreateAdmin(ctx, in); err != nil {
		return false, err
	}

	return true, nil
}
