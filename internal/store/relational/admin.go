package relational

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/xcelliti/website/internal/db/models"
	"github.com/xcelliti/website/internal/store"
)

// GetAdminByUsername implements store.AdminStore.
func (s *Store) GetAdminByUsername(ctx context.Context, username string) (models.Admin, error) {
	var admin models.Admin

	err := s.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return admin, store.ErrNotFound
	}

	if err != nil {
		return admin, pkgerrors.Wrap(err, "failed to get admin")
	}

	return admin, nil
}

// CreateAdmin implements store.AdminStore. The existence check and the
// insert share a transaction, the unique index catches concurrent inserts.
func (s *Store) CreateAdmin(ctx context.Context, a models.Admin) (models.Admin, error) {
	a.ID = 0
	if a.Role == "" {
		a.Role = models.RoleAdmin
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Admin{}).Where("username = ?", a.Username).Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return store.ErrAdminExists
		}

		return tx.Create(&a).Error
	})

	switch {
	case errors.Is(err, store.ErrAdminExists), errors.Is(err, gorm.ErrDuplicatedKey):
		return models.Admin{}, store.ErrAdminExists
	case err != nil:
		return models.Admin{}, pkgerrors.Wrap(err, "failed to create admin")
	}

	return a, nil
}
