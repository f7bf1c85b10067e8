package main

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/go-petr/swagbank/internal/ledger"
	"github.com/go-petr/swagbank/internal/monitoring"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Replay the block log and report whether it is consistent",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := replayStore(cmd)
		return err
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

// replayStore rebuilds the ledger from the configured block store.
func replayStore(cmd *cobra.Command) (*ledger.Ledger, error) {
	e, err := loadEnv(cmd.Context())
	if err != nil {
		return nil, err
	}

	repo, err := e.openRepo()
	if err != nil {
		return nil, err
	}
	defer repo.Close()

	spinner, _ := pterm.DefaultSpinner.Start("Replaying the block log ...")

	blocks, err := repo.List(e.ctx)
	if err != nil {
		spinner.Fail("Cannot read the block log")
		return nil, err
	}

	start := time.Now()

	l, err := ledger.Replay(blocks)
	if err != nil {
		spinner.Fail("The block log does not replay")
		return nil, err
	}

	monitoring.RecordReplay(time.Since(start))

	spinner.Success(pterm.Sprintf("Replayed %d blocks into %d accounts and %d cagnottes",
		l.Len(), len(l.Registry().Users()), len(l.Registry().Cagnottes())))

	return l, nil
}
