package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xcelliti/website/internal/auth"
	"github.com/xcelliti/website/internal/db/models"
	"github.com/xcelliti/website/internal/logger"
	"github.com/xcelliti/website/internal/store/backend"
)

func init() { //nolint: gochecknoinits
	adminCreateCmd.Flags().StringVar(&adminInput.Username, "username", "", "Admin username")
	adminCreateCmd.Flags().StringVar(&adminInput.Password, "password", "", "Admin password, at least 8 characters")
	adminCreateCmd.Flags().StringVar(&adminInput.Email, "email", "", "Admin email address")

	for _, f := range []string{"username", "password", "email"} {
		_ = adminCreateCmd.MarkFlagRequired(f)
	}

	adminCmd.AddCommand(adminCreateCmd)
	rootCmd.AddCommand(adminCmd)
}

var (
	adminInput models.AdminInput

	adminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
	}

	adminCreateCmd = &cobra.Command{
		Use:   "create",
		Short: "Create an admin account in the configured store",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if cfg, err = loadConfig(); err != nil {
				return err
			}

			return logger.Init(cfg.Log)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := backend.Open(&cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			authService, err := auth.NewService(st)
			if err != nil {
				return err
			}

			admin, err := authService.CreateAdmin(context.Background(), &adminInput)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created admin %q (id %d)\n", admin.Username, admin.ID)

			return err
		},
	}
)
