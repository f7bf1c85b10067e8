package main

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/internal/ledger"
)

var (
	inspectUser  uint64
	inspectLimit int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show an account and its history, or the ranking of all accounts",
	Example: `  # Ranking of the ten richest accounts
  swagbank inspect
  # One account with its last twenty blocks
  swagbank inspect --user 4242 --limit 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := replayStore(cmd)
		if err != nil {
			return err
		}

		if inspectUser == 0 {
			return pterm.DefaultTable.WithHasHeader().WithData(forbesTable(l, inspectLimit)).Render()
		}

		a, err := l.AccountInfo(domain.UserID(inspectUser), time.Now())
		if err != nil {
			return err
		}

		if err := pterm.DefaultTable.WithData(accountTable(a)).Render(); err != nil {
			return err
		}

		pterm.Println()

		return pterm.DefaultTable.WithHasHeader().WithData(historyTable(l, a.Address(), inspectLimit)).Render()
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Uint64VarP(&inspectUser, "user", "u", 0, "user id to inspect")
	inspectCmd.Flags().IntVarP(&inspectLimit, "limit", "n", 10, "number of rows to show")
}

func forbesTable(l *ledger.Ledger, limit int) pterm.TableData {
	data := pterm.TableData{{"Rank", "User", "Swag", "Style"}}

	for i, a := range l.Registry().Ranking() {
		if i == limit {
			break
		}

		data = append(data, []string{fmt.Sprint(i + 1), fmt.Sprint(a.ID), a.SwagBalance.String(), a.StyleBalance.String()})
	}

	return data
}

func accountTable(a domain.PersonalAccount) pterm.TableData {
	date := func(t *time.Time) string {
		if t == nil {
			return "-"
		}

		return t.Format(time.RFC3339)
	}

	return pterm.TableData{
		{"User", fmt.Sprint(a.ID)},
		{"Created", a.CreationDate.Format(time.RFC3339)},
		{"Time zone", a.Timezone},
		{"Swag", a.SwagBalance.String()},
		{"Style", a.StyleBalance.String()},
		{"Style rate", a.StyleRate.String() + "%"},
		{"Blocked swag", a.BlockedSwag.String()},
		{"Pending style", a.PendingStyle.String()},
		{"Unblocking", date(a.UnblockingDate)},
		{"Last mining", date(a.LastMiningDate)},
	}
}

func historyTable(l *ledger.Ledger, addr domain.Address, limit int) pterm.TableData {
	var blocks []domain.Block
	for b := range l.History(addr) {
		blocks = append(blocks, b)
	}

	data := pterm.TableData{{"Time", "Issuer", "Kind"}}

	for i := len(blocks) - 1; i >= 0 && len(data) <= limit; i-- {
		b := blocks[i]
		data = append(data, []string{b.Timestamp.Format(time.RFC3339), fmt.Sprint(b.Issuer), string(b.Kind())})
	}

	return data
}
