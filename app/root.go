// Package app implements the main application commands.
package app

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xcelliti/website/internal/config"
)

const (
	envDatabaseURL   = "DATABASE_URL"
	envSessionSecret = "SESSION_SECRET"
)

var (
	configPath string // Path to the configuration directory

	cfg     config.Config
	err     error
	devMode bool

	rootCmd = &cobra.Command{
		Use:   "xcelliti",
		Short: "Xcelliti website backend",
		Long: `Xcelliti website backend serves the JSON API behind the marketing site:
services, blog posts, jobs, clients, partners and contact submissions,
plus the admin login used to manage them.`,
		Args: cobra.OnlyValidArgs,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./etc/", "Path to the configuration directory")
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the TOML config and applies the environment and flag overrides.
func loadConfig() (config.Config, error) {
	return config.ReadConfig(configPath, envOverrides, flagOverrides)
}

func envOverrides(c *config.Config) {
	if url := viper.GetString(envDatabaseURL); url != "" {
		c.DB.URL = url
	}

	if secret := viper.GetString(envSessionSecret); secret != "" {
		c.Webserver.Session.Secret = secret
	}
}

func flagOverrides(c *config.Config) {
	if devMode {
		c.DevMode = true
	}
}
