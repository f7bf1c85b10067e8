package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-petr/swagbank/cmd/httpserver"
	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/internal/ledgerservice"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the ledger HTTP API",
	Long: `Replays the block log, then serves the ledger API. A new day block is
appended at every midnight of the default time zone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	e, err := loadEnv(ctx)
	if err != nil {
		return err
	}

	repo, err := e.openRepo()
	if err != nil {
		e.logger.Error().Err(err).Msg("cannot open block store")
		return err
	}
	defer repo.Close()

	service := ledgerservice.New(repo, ledgerservice.OptionsFromConfig(e.config))
	if err := service.Restore(e.ctx); err != nil {
		e.logger.Error().Err(err).Msg("cannot restore ledger")
		return err
	}

	server, err := httpserver.New(service, e.logger, e.config)
	if err != nil {
		e.logger.Error().Err(err).Msg("cannot create server")
		return err
	}

	loc, err := domain.LoadTimezone(e.config.DefaultTimezone)
	if err != nil {
		return err
	}

	go runDays(e.ctx, service, loc)

	srv := &http.Server{
		Addr:              e.config.ServerAddress,
		Handler:           server,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		e.logger.Info().Str("address", srv.Addr).Msg("SWAG LEDGER SERVER HAS STARTED")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			e.logger.Error().Err(err).Msg("cannot start server")
			return err
		}

		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	e.logger.Info().Msg("shutting down")

	return srv.Shutdown(shutdownCtx)
}

// nextMidnight returns the first midnight in loc strictly after t.
func nextMidnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, loc)
}

// runDays appends a new day block at every midnight in loc until ctx ends.
func runDays(ctx context.Context, service *ledgerservice.Service, loc *time.Location) {
	for {
		timer := time.NewTimer(time.Until(nextMidnight(time.Now(), loc)))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		// Rejections are logged by the service.
		_, _ = service.NewDay(ctx)
	}
}
