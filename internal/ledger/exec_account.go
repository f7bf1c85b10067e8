package ledger

import (
	"time"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/currencypkg"
)

// TimezoneLockDuration is how long a time zone stays locked after a change.
const TimezoneLockDuration = 24 * time.Hour

func (r *Registry) execAccountCreation(b domain.Block, p domain.AccountCreation) error {
	if _, ok := r.users[p.User]; ok {
		return domain.ErrAccountAlreadyExists
	}

	tz := p.Timezone
	if tz == "" {
		if g, ok := r.guilds[p.Guild]; ok && g.Timezone != "" {
			tz = g.Timezone
		} else {
			tz = domain.DefaultTimezone
		}
	}

	if _, err := domain.LoadTimezone(tz); err != nil {
		return err
	}

	a := &domain.PersonalAccount{
		ID:           p.User,
		CreationDate: b.Timestamp,
		Timezone:     tz,
		StyleRate:    domain.DefaultStyleRate,
	}

	r.users[a.ID] = a
	r.userOrder = append(r.userOrder, a.ID)
	r.touch(a.Address())

	return nil
}

func (r *Registry) execUserTimezone(b domain.Block, p domain.UserTimezoneUpdate) (*time.Time, error) {
	if _, err := domain.LoadTimezone(p.Timezone); err != nil {
		return nil, err
	}

	a, err := r.user(p.User)
	if err != nil {
		return nil, err
	}

	if a.TimezoneLockDate != nil && !b.Timestamp.After(*a.TimezoneLockDate) {
		return nil, &domain.TimeZoneLockedError{Until: *a.TimezoneLockDate}
	}

	lock := b.Timestamp.Add(TimezoneLockDuration)
	a.Timezone = p.Timezone
	a.TimezoneLockDate = &lock

	return &lock, nil
}

func (r *Registry) execGuildTimezone(p domain.GuildTimezoneUpdate) error {
	if _, err := domain.LoadTimezone(p.Timezone); err != nil {
		return err
	}

	r.guild(p.Guild).Timezone = p.Timezone

	return nil
}

func (r *Registry) execGiveaway(p domain.EventGiveaway) error {
	if err := requirePositive(p.Amount); err != nil {
		return err
	}

	a, err := r.user(p.User)
	if err != nil {
		return err
	}

	return a.Credit(p.Amount)
}

func (r *Registry) execNewDay(b domain.Block) error {
	for _, id := range r.userOrder {
		a := r.users[id]
		if !a.Staking() {
			continue
		}

		r.touch(a.Address())

		if matured(a, b.Timestamp) {
			if _, err := releaseStake(a, b.Timestamp); err != nil {
				return err
			}

			continue
		}

		settleAccrual(a, b.Timestamp)
	}

	return nil
}

// minedOn reports whether a last mined on the local calendar day of at or later.
func minedOn(a *domain.PersonalAccount, at time.Time) (bool, error) {
	if a.LastMiningDate == nil {
		return false, nil
	}

	loc, err := domain.LoadTimezone(a.Timezone)
	if err != nil {
		return false, err
	}

	return !domain.LocalDate(*a.LastMiningDate, loc).Before(domain.LocalDate(at, loc)), nil
}

func (r *Registry) execMining(b domain.Block, p domain.Mining) error {
	a, err := r.user(p.User)
	if err != nil {
		return err
	}

	mined, err := minedOn(a, b.Timestamp)
	if err != nil {
		return err
	}

	if mined {
		return domain.ErrAlreadyMinedToday
	}

	if err := a.Credit(currencypkg.SwagAmount(p.Amount)); err != nil {
		return err
	}

	at := b.Timestamp
	a.LastMiningDate = &at

	return nil
}

func (r *Registry) execTransfer(p domain.Transfer) error {
	if err := requirePositive(p.Amount); err != nil {
		return err
	}

	from, err := r.user(p.From)
	if err != nil {
		return err
	}

	to, err := r.user(p.To)
	if err != nil {
		return err
	}

	if err := from.Debit(p.Amount); err != nil {
		return err
	}

	return to.Credit(p.Amount)
}

func (r *Registry) execSwagBlocking(b domain.Block, p domain.SwagBlocking) (*domain.StakeRelease, error) {
	if p.Amount.IsZero() || p.Days <= 0 {
		return nil, domain.ErrInvalidCurrencyValue
	}

	a, err := r.user(p.User)
	if err != nil {
		return nil, err
	}

	var released *domain.StakeRelease

	if matured(a, b.Timestamp) {
		rel, err := releaseStake(a, b.Timestamp)
		if err != nil {
			return nil, err
		}

		released = &rel
	}

	if a.Staking() {
		return nil, domain.ErrStillBlocked
	}

	if err := a.Debit(currencypkg.SwagAmount(p.Amount)); err != nil {
		return nil, err
	}

	start := b.Timestamp
	end := start.Add(time.Duration(p.Days) * 24 * time.Hour)

	a.BlockedSwag = p.Amount
	a.BlockingDate = &start
	a.UnblockingDate = &end
	a.PendingStyle = currencypkg.Style{}

	return released, nil
}

func (r *Registry) execSwagRelease(b domain.Block, p domain.SwagRelease) (*domain.StakeRelease, error) {
	a, err := r.user(p.User)
	if err != nil {
		return nil, err
	}

	if !a.Staking() {
		return nil, domain.ErrNothingBlocked
	}

	if !matured(a, b.Timestamp) {
		return nil, domain.ErrStillBlocked
	}

	rel, err := releaseStake(a, b.Timestamp)
	if err != nil {
		return nil, err
	}

	return &rel, nil
}

func (r *Registry) execImmunity(p domain.ImmunityUpdate) error {
	if !p.Power.IsValid() {
		return domain.ErrPowerNotApplicable
	}

	if id, ok := p.Target.Cagnotte(); ok {
		c, err := r.cagnotte(id)
		if err != nil {
			return err
		}

		c.SetImmunity(p.Power, p.Immune)

		return nil
	}

	id, ok := p.Target.User()
	if !ok {
		return domain.NotFound(p.Target)
	}

	a, err := r.user(id)
	if err != nil {
		return err
	}

	a.SetImmunity(p.Power, p.Immune)

	return nil
}
