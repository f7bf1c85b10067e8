package main

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/go-petr/swagbank/pkg/tokenpkg"
)

var (
	tokenSubject  string
	tokenDuration time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the ledger API",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd.Context())
		if err != nil {
			return err
		}

		maker, err := tokenpkg.NewMaker(e.config.TokenKind, e.config.TokenSymmetricKey)
		if err != nil {
			return err
		}

		if tokenDuration == 0 {
			tokenDuration = e.config.AccessTokenDuration
		}

		token, payload, err := maker.CreateToken(tokenSubject, tokenDuration)
		if err != nil {
			return err
		}

		pterm.Info.Printfln("Token for %s, valid until %s", payload.Subject, payload.ExpiredAt.Format(time.RFC3339))
		pterm.Println(token)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVarP(&tokenSubject, "subject", "s", "bot", "name the token is issued to")
	tokenCmd.Flags().DurationVarP(&tokenDuration, "duration", "d", 0, "token lifetime, defaults to ACCESS_TOKEN_DURATION")
}
