package auth

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcelliti/website/internal/db/models"
	"github.com/xcelliti/website/internal/store"
	"github.com/xcelliti/website/internal/store/memory"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	svc, err := NewService(memory.New())
	require.NoError(t, err)

	_, err = svc.CreateAdmin(context.Background(), &models.AdminInput{
		Username: "admin",
		Password: "admin123",
		Email:    "admin@xcelliti.com",
	})
	require.NoError(t, err)

	return svc
}

func TestNewServiceNilStore(t *testing.T) {
	_, err := NewService(nil)
	assert.ErrorIs(t, err, ErrStoreNil)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid", username: "admin", password: "admin123"},
		{name: "wrong password", username: "admin", password: "admin124", wantErr: ErrInvalidCredentials},
		{name: "unknown user", username: "nobody", password: "admin123", wantErr: ErrInvalidCredentials},
		{name: "empty", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, models.AdminProfile{}, profile)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "admin", profile.Username)
			assert.Equal(t, "admin@xcelliti.com", profile.Email)
			assert.Equal(t, models.RoleAdmin, profile.Role)
			assert.NotZero(t, profile.ID)
		})
	}
}

func TestCreateAdmin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateAdmin(ctx, &models.AdminInput{Username: "admin", Password: "password1", Email: "x@example.com"})
	assert.ErrorIs(t, err, store.ErrAdminExists)

	_, err = svc.CreateAdmin(ctx, &models.AdminInput{Username: "editor", Password: "short", Email: "x@example.com"})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestEnsureAdmin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, &models.AdminInput{Username: "admin", Password: "changed-password", Email: "a@example.com"})
	require.NoError(t, err)
	assert.False(t, created)

	// the existing password is kept
	_, err = svc.Login(ctx, "admin", "admin123")
	assert.NoError(t, err)

	created, err = svc.EnsureAdmin(ctx, &models.AdminInput{Username: "editor", Password: "editor-password", Email: "e@example.com"})
	require.NoError(t, err)
	assert.True(t, created)

	_, err = svc.Login(ctx, "editor", "editor-password")
	assert.NoError(t, err)
}
