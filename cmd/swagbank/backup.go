package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/go-petr/swagbank/internal/backup"
	"github.com/go-petr/swagbank/internal/ledger"
)

var (
	backupOut string
	restoreIn string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write the whole block log to a CBOR archive",
	Example: `  # Save the log of the configured store
  swagbank backup -o swag-2024-05-01.cbor`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd.Context())
		if err != nil {
			return err
		}

		repo, err := e.openRepo()
		if err != nil {
			return err
		}
		defer repo.Close()

		blocks, err := repo.List(e.ctx)
		if err != nil {
			return err
		}

		f, err := os.Create(backupOut)
		if err != nil {
			return err
		}

		if err := backup.Write(f, blocks, time.Now()); err != nil {
			f.Close()
			return err
		}

		if err := f.Close(); err != nil {
			return err
		}

		pterm.Success.Printfln("Saved %d blocks to %s", len(blocks), backupOut)

		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Load a CBOR archive into an empty block store",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd.Context())
		if err != nil {
			return err
		}

		f, err := os.Open(restoreIn)
		if err != nil {
			return err
		}
		defer f.Close()

		blocks, err := backup.Read(f)
		if err != nil {
			return err
		}

		if _, err := ledger.Replay(blocks); err != nil {
			return fmt.Errorf("archive does not replay: %w", err)
		}

		repo, err := e.openRepo()
		if err != nil {
			return err
		}
		defer repo.Close()

		existing, err := repo.List(e.ctx)
		if err != nil {
			return err
		}

		if len(existing) > 0 {
			return fmt.Errorf("block store already holds %d blocks", len(existing))
		}

		progress, _ := pterm.DefaultProgressbar.WithTotal(len(blocks)).WithTitle("Restoring blocks").Start()

		for _, b := range blocks {
			if err := repo.Append(e.ctx, b); err != nil {
				_, _ = progress.Stop()
				return err
			}

			progress.Increment()
		}

		_, _ = progress.Stop()
		pterm.Success.Printfln("Restored %d blocks from %s", len(blocks), restoreIn)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd, restoreCmd)

	backupCmd.Flags().StringVarP(&backupOut, "out", "o", "swag-backup.cbor", "archive to write")
	restoreCmd.Flags().StringVarP(&restoreIn, "in", "i", "", "archive to read")
	_ = restoreCmd.MarkFlagRequired("in")
}
