package daemon

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xcelliti/website/internal/auth"
	"github.com/xcelliti/website/internal/config"
	"github.com/xcelliti/website/internal/db/models"
	"github.com/xcelliti/website/internal/store"
)

const seedTimeout = 30 * time.Second

// seed creates the configured admin account when it does not exist yet.
// Nothing is seeded without a configured password.
func seed(cfg *config.Config, st store.Store) error {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		log.Debug().Msg("no admin configured, skipping seed")

		return nil
	}

	authService, err := auth.NewService(st)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	created, err := authService.EnsureAdmin(ctx, &models.AdminInput{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
		Email:    cfg.Admin.Email,
	})
	if err != nil {
		return err
	}

	if created {
		log.Info().Str("username", cfg.Admin.Username).Msg("seeded admin account")
	}

	return nil
}
