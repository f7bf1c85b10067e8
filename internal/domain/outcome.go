package domain

import (
	"math/bits"
	"time"

	"github.com/go-petr/swagbank/pkg/currencypkg"
)

// Outcome describes what executing a block did, for the caller to report.
type Outcome struct {
	Block   Block     `json:"block"`
	Touched []Address `json:"touched"`

	// Set by the block kinds that produce them.
	CagnotteID   CagnotteID       `json:"cagnotte_id,omitempty"`
	Mined        currencypkg.Swag `json:"mined"`
	Released     *StakeRelease    `json:"released,omitempty"`
	TimezoneLock *time.Time       `json:"timezone_lock,omitempty"`
	Share        *ShareResult     `json:"share,omitempty"`
	Lottery      *LotteryResult   `json:"lottery,omitempty"`
	Loot         *LootResult      `json:"loot,omitempty"`
	DelayDays    int              `json:"delay_days,omitempty"`
}

// StakeRelease is what a matured stake returned to its owner.
type StakeRelease struct {
	Swag  currencypkg.Swag  `json:"swag"`
	Style currencypkg.Style `json:"style"`
}

// ShareResult lists how a cagnotte balance was split.
type ShareResult struct {
	Participants       []UserID           `json:"participants"`
	Share              currencypkg.Amount `json:"share"`
	RemainderRecipient UserID             `json:"remainder_recipient"`
	Remainder          currencypkg.Amount `json:"remainder"`
}

// LotteryResult names the winner of a cagnotte lottery.
type LotteryResult struct {
	Winner UserID             `json:"winner"`
	Amount currencypkg.Amount `json:"amount"`
}

// LootResult details one looting activation.
type LootResult struct {
	Target     currencypkg.Swag `json:"target"`
	Looted     currencypkg.Swag `json:"looted"`
	Unresolved currencypkg.Swag `json:"unresolved"`
	Victims    []Address        `json:"victims"`
	SinkUsed   bool             `json:"sink_used"`
}

// Stylog returns floor(log2(1+x)), the strength of a power charged with x.
func Stylog(x uint64) int {
	if x == ^uint64(0) {
		return 64
	}

	return bits.Len64(x+1) - 1
}
