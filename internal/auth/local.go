package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/xcelliti/website/internal/db/models"
	"github.com/xcelliti/website/internal/store"
)

// LocalProvider checks credentials against the admin store.
type LocalProvider struct {
	admins store.AdminStore

	dummyOnce sync.Once
	dummy     models.Admin
}

// NewLocalProvider creates a new local authentication provider.
func NewLocalProvider(admins store.AdminStore) *LocalProvider {
	return &LocalProvider{admins: admins}
}

// Authenticate returns the admin when username and password match.
func (p *LocalProvider) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	admin, err := p.admins.GetAdminByUsername(ctx, username)

	if errors.Is(err, store.ErrNotFound) {
		// burn the same hashing work as a real comparison
		p.dummyAdmin().VerifyPassword(password)

		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query admin: %w", err)
	}

	if !admin.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return &admin, nil
}

func (p *LocalProvider) dummyAdmin() *models.Admin {
	p.dummyOnce.Do(func() {
		hash, err := models.HashPassword("dummy-password-for-unknown-users")
		if err == nil {
			p.dummy.Password = hash
		}
	})

	return &p.dummy
}
