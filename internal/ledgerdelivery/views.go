package ledgerdelivery

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/currencypkg"
)

type accountView struct {
	ID               domain.UserID     `json:"id"`
	CreationDate     time.Time         `json:"creation_date"`
	Timezone         string            `json:"timezone"`
	Swag             currencypkg.Swag  `json:"swag"`
	Style            currencypkg.Style `json:"style"`
	StyleRate        decimal.Decimal   `json:"style_rate"`
	BlockedSwag      currencypkg.Swag  `json:"blocked_swag"`
	PendingStyle     currencypkg.Style `json:"pending_style"`
	LastMiningDate   *time.Time        `json:"last_mining_date,omitempty"`
	BlockingDate     *time.Time        `json:"blocking_date,omitempty"`
	UnblockingDate   *time.Time        `json:"unblocking_date,omitempty"`
	TimezoneLockDate *time.Time        `json:"timezone_lock_date,omitempty"`
}

func newAccountView(a domain.PersonalAccount) accountView {
	return accountView{
		ID:               a.ID,
		CreationDate:     a.CreationDate,
		Timezone:         a.Timezone,
		Swag:             a.SwagBalance,
		Style:            a.StyleBalance,
		StyleRate:        a.StyleRate,
		BlockedSwag:      a.BlockedSwag,
		PendingStyle:     a.PendingStyle,
		LastMiningDate:   a.LastMiningDate,
		BlockingDate:     a.BlockingDate,
		UnblockingDate:   a.UnblockingDate,
		TimezoneLockDate: a.TimezoneLockDate,
	}
}

type cagnotteView struct {
	ID           domain.CagnotteID  `json:"id"`
	Label        string             `json:"label"`
	Name         string             `json:"name"`
	Balance      currencypkg.Amount `json:"balance"`
	Managers     []domain.UserID    `json:"managers"`
	Participants []domain.UserID    `json:"participants"`
}

func newCagnotteView(c domain.CagnotteAccount) cagnotteView {
	return cagnotteView{
		ID:           c.ID,
		Label:        c.ID.String(),
		Name:         c.Name,
		Balance:      c.Balance,
		Managers:     c.Managers,
		Participants: c.Participants,
	}
}

type forbesEntry struct {
	Rank  int               `json:"rank"`
	User  domain.UserID     `json:"user"`
	Swag  currencypkg.Swag  `json:"swag"`
	Style currencypkg.Style `json:"style"`
}
