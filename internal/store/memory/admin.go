package memory

import (
	"context"

	"github.com/xcelliti/website/internal/db/models"
	"github.com/xcelliti/website/internal/store"
)

// GetAdminByUsername implements store.AdminStore.
func (s *Store) GetAdminByUsername(_ context.Context, username string) (models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.admins.records {
		if a.Username == username {
			return a, nil
		}
	}

	return models.Admin{}, store.ErrNotFound
}

// CreateAdmin implements store.AdminStore.
func (s *Store) CreateAdmin(_ context.Context, a models.Admin) (models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.admins.records {
		if existing.Username == a.Username {
			return models.Admin{}, store.ErrAdminExists
		}
	}

	if a.Role == "" {
		a.Role = models.RoleAdmin
	}

	a.ID = s.admins.nextID()
	s.admins.records[a.ID] = a

	return a, nil
}
