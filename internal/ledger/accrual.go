package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/currencypkg"
)

// AccrualPeriod is the unit of time a stake earns Style for.
const AccrualPeriod = time.Hour

// StyleYield is the Style one blocked Swag earns per period at a 100% rate.
var StyleYield = decimal.New(1, -4)

// accrualSince returns the Style earned between the stake's BlockingDate and
// at, capped at UnblockingDate, counting whole periods only, and the number
// of periods counted.
func accrualSince(a *domain.PersonalAccount, at time.Time) (currencypkg.Style, int64) {
	if !a.Staking() || a.BlockingDate == nil || a.UnblockingDate == nil {
		return currencypkg.Style{}, 0
	}

	end := at
	if end.After(*a.UnblockingDate) {
		end = *a.UnblockingDate
	}

	if !end.After(*a.BlockingDate) {
		return currencypkg.Style{}, 0
	}

	periods := int64(end.Sub(*a.BlockingDate) / AccrualPeriod)
	if periods == 0 {
		return currencypkg.Style{}, 0
	}

	blocked := decimal.RequireFromString(a.BlockedSwag.String())
	v := blocked.Mul(a.StyleRate).Shift(-2).Mul(StyleYield).Mul(decimal.NewFromInt(periods))

	s, err := currencypkg.NewStyle(v)
	if err != nil {
		return currencypkg.Style{}, 0
	}

	return s, periods
}

// accruedStyle returns the Style a's stake has earned as of at, including
// what was already settled into PendingStyle.
func accruedStyle(a *domain.PersonalAccount, at time.Time) currencypkg.Style {
	s, _ := accrualSince(a, at)
	return a.PendingStyle.Add(s)
}

// settleAccrual moves the Style earned up to at into PendingStyle and
// advances BlockingDate by the periods counted.
func settleAccrual(a *domain.PersonalAccount, at time.Time) {
	s, periods := accrualSince(a, at)
	if periods == 0 {
		return
	}

	a.PendingStyle = a.PendingStyle.Add(s)
	next := a.BlockingDate.Add(time.Duration(periods) * AccrualPeriod)
	a.BlockingDate = &next
}

// releaseStake returns the blocked Swag and all accrued Style as of at to
// the liquid balances and clears the stake.
func releaseStake(a *domain.PersonalAccount, at time.Time) (domain.StakeRelease, error) {
	settleAccrual(a, at)

	rel := domain.StakeRelease{Swag: a.BlockedSwag, Style: a.PendingStyle}

	swag, err := a.SwagBalance.Add(a.BlockedSwag)
	if err != nil {
		return domain.StakeRelease{}, err
	}

	a.SwagBalance = swag
	a.StyleBalance = a.StyleBalance.Add(a.PendingStyle)
	clearStake(a)

	return rel, nil
}

func clearStake(a *domain.PersonalAccount) {
	a.BlockedSwag = currencypkg.Swag{}
	a.BlockingDate = nil
	a.UnblockingDate = nil
	a.PendingStyle = currencypkg.Style{}
}

func matured(a *domain.PersonalAccount, at time.Time) bool {
	return a.Staking() && a.UnblockingDate != nil && !at.Before(*a.UnblockingDate)
}
