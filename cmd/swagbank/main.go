// Command swagbank runs and administers the swag ledger.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-petr/swagbank/internal/blockrepo"
	"github.com/go-petr/swagbank/internal/middleware"
	"github.com/go-petr/swagbank/pkg/configpkg"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:           "swagbank",
	Short:         "Swag ledger server and tools",
	Long:          "Command line interface for running the swag ledger API and managing its block log.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", "./configs", "directory holding app.env")
}

// env is what every command needs: the configuration, a logger and a
// context carrying it.
type env struct {
	config configpkg.Config
	logger zerolog.Logger
	ctx    context.Context
}

func loadEnv(ctx context.Context) (env, error) {
	config, err := configpkg.Load(configDir)
	if err != nil {
		return env{}, err
	}

	logger := middleware.GetLogger(config)

	return env{config: config, logger: logger, ctx: logger.WithContext(ctx)}, nil
}

func (e env) openRepo() (blockrepo.Repo, error) {
	return blockrepo.Open(e.ctx, e.config.DBDriver, e.config.DBSource)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger := zerolog.New(os.Stderr)
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
