package ledger

import (
	"time"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/currencypkg"
)

// lootee is an account looting can take Swag from.
type lootee struct {
	personal *domain.PersonalAccount
	cagnotte *domain.CagnotteAccount
}

func (l lootee) address() domain.Address {
	if l.cagnotte != nil {
		return l.cagnotte.Address()
	}

	return l.personal.Address()
}

// takeLiquid removes up to max from the liquid Swag balance.
func (l lootee) takeLiquid(max currencypkg.Swag) currencypkg.Swag {
	if l.cagnotte != nil {
		bal, _ := l.cagnotte.Balance.Swag()
		got := bal.Min(max)
		rest, _ := bal.Sub(got)
		l.cagnotte.Balance = currencypkg.SwagAmount(rest)

		return got
	}

	got := l.personal.SwagBalance.Min(max)
	l.personal.SwagBalance, _ = l.personal.SwagBalance.Sub(got)

	return got
}

// takeBlocked removes up to max from a stake. A stake drained to zero
// releases the Style it accrued so far.
func (l lootee) takeBlocked(max currencypkg.Swag, at time.Time) currencypkg.Swag {
	a := l.personal
	if a == nil || !a.Staking() {
		return currencypkg.Swag{}
	}

	settleAccrual(a, at)

	got := a.BlockedSwag.Min(max)
	if err := a.DebitBlocked(got); err != nil {
		return currencypkg.Swag{}
	}

	if a.BlockedSwag.IsZero() {
		a.StyleBalance = a.StyleBalance.Add(a.PendingStyle)
		clearStake(a)
	}

	return got
}

// lootBuckets groups the accounts looting visits, in the order it visits them.
func (r *Registry) lootBuckets(owner domain.UserID) [][]lootee {
	var exposed, immune, pools, immunePools []lootee

	for _, id := range r.userOrder {
		if id == owner {
			continue
		}

		a := r.users[id]
		if a.IsImmune(domain.PowerLooting) {
			immune = append(immune, lootee{personal: a})
		} else {
			exposed = append(exposed, lootee{personal: a})
		}
	}

	for _, id := range r.cagnotteOrder {
		c := r.cagnottes[id]
		if c.Destroyed || c.Currency != currencypkg.SWAG {
			continue
		}

		if c.IsImmune(domain.PowerLooting) {
			immunePools = append(immunePools, lootee{cagnotte: c})
		} else {
			pools = append(pools, lootee{cagnotte: c})
		}
	}

	return [][]lootee{exposed, immune, pools, immunePools}
}

type looter struct {
	r     *Registry
	owner *domain.PersonalAccount
	rest  currencypkg.Swag
	res   *domain.LootResult
}

func (l *looter) collect(from lootee, got currencypkg.Swag) error {
	if got.IsZero() {
		return nil
	}

	bal, err := l.owner.SwagBalance.Add(got)
	if err != nil {
		return err
	}

	l.owner.SwagBalance = bal
	l.rest, _ = l.rest.Sub(got)
	l.res.Looted, _ = l.res.Looted.Add(got)

	addr := from.address()
	l.r.touch(addr)

	for _, v := range l.res.Victims {
		if v == addr {
			return nil
		}
	}

	l.res.Victims = append(l.res.Victims, addr)

	return nil
}

// round takes an equal cut from every account of pool and returns the
// accounts that could pay it in full. It reports false when the cut rounds
// to zero.
func (l *looter) round(pool []lootee, take func(lootee, currencypkg.Swag) currencypkg.Swag) (kept, drained []lootee, ok bool, err error) {
	cut, _ := l.rest.DivMod(uint64(len(pool)))
	if cut.IsZero() {
		return nil, nil, false, nil
	}

	for _, t := range pool {
		got := take(t, cut)
		if err := l.collect(t, got); err != nil {
			return nil, nil, false, err
		}

		if got == cut {
			kept = append(kept, t)
		} else {
			drained = append(drained, t)
		}
	}

	return kept, drained, true, nil
}

// drainSink takes what is left to loot from the sink's liquid balance.
func (l *looter) drainSink(sink domain.UserID) error {
	a, ok := l.r.users[sink]
	if !ok || sink == l.owner.ID {
		return nil
	}

	t := lootee{personal: a}
	if err := l.collect(t, t.takeLiquid(l.rest)); err != nil {
		return err
	}

	l.res.SinkUsed = true

	return nil
}

// run loots the buckets in order and reports whether it stopped on the sink.
func (l *looter) run(buckets [][]lootee, sink domain.UserID, at time.Time) error {
	liquid := func(t lootee, cut currencypkg.Swag) currencypkg.Swag { return t.takeLiquid(cut) }
	blocked := func(t lootee, cut currencypkg.Swag) currencypkg.Swag { return t.takeBlocked(cut, at) }

	for _, active := range buckets {
		var dry []lootee

		for !l.rest.IsZero() && len(active) > 0 {
			kept, drained, ok, err := l.round(active, liquid)
			if err != nil {
				return err
			}

			if !ok {
				return l.drainSink(sink)
			}

			active = kept
			dry = append(dry, drained...)
		}

		for !l.rest.IsZero() && len(dry) > 0 {
			kept, _, ok, err := l.round(dry, blocked)
			if err != nil {
				return err
			}

			if !ok {
				return l.drainSink(sink)
			}

			dry = kept
		}

		if l.rest.IsZero() {
			return nil
		}
	}

	return nil
}

func (r *Registry) execLooting(b domain.Block, p domain.Looting) (*domain.LootResult, error) {
	owner, err := r.user(p.Owner)
	if err != nil {
		return nil, err
	}

	state := r.power(p.Owner, domain.PowerLooting)

	target, err := currencypkg.SwagFromUint64(p.Charge).Add(state.Unresolved)
	if err != nil {
		return nil, err
	}

	l := &looter{r: r, owner: owner, rest: target, res: &domain.LootResult{Target: target}}
	if err := l.run(r.lootBuckets(p.Owner), p.Sink, b.Timestamp); err != nil {
		return nil, err
	}

	at := b.Timestamp
	state.Unresolved = l.rest
	state.Activations++
	state.LastUsed = &at
	l.res.Unresolved = l.rest

	return l.res, nil
}

func (r *Registry) execFiredamp(b domain.Block, p domain.Firedamp) (int, error) {
	if _, err := r.user(p.Owner); err != nil {
		return 0, err
	}

	days := domain.Stylog(p.Charge)
	shift := time.Duration(days) * 24 * time.Hour

	if days > 0 {
		for _, id := range r.userOrder {
			a := r.users[id]
			if id == p.Owner || a.LastMiningDate == nil || a.IsImmune(domain.PowerFiredamp) {
				continue
			}

			next := a.LastMiningDate.Add(shift)
			a.LastMiningDate = &next
			r.touch(a.Address())
		}
	}

	at := b.Timestamp
	state := r.power(p.Owner, domain.PowerFiredamp)
	state.Activations++
	state.LastUsed = &at

	return days, nil
}

func (r *Registry) execTaxEvasion(b domain.Block, p domain.TaxEvasion) (currencypkg.Swag, error) {
	a, err := r.user(p.Owner)
	if err != nil {
		return currencypkg.Swag{}, err
	}

	mined, err := minedOn(a, b.Timestamp)
	if err != nil {
		return currencypkg.Swag{}, err
	}

	if mined {
		return currencypkg.Swag{}, domain.ErrPowerNotApplicable
	}

	var total currencypkg.Swag

	for _, roll := range p.Rolls {
		total, err = total.Add(currencypkg.SwagFromUint64(roll))
		if err != nil {
			return currencypkg.Swag{}, err
		}
	}

	if err := a.Credit(currencypkg.SwagAmount(total)); err != nil {
		return currencypkg.Swag{}, err
	}

	at := b.Timestamp
	state := r.power(p.Owner, domain.PowerTaxEvasion)
	state.Activations++
	state.LastUsed = &at

	return total, nil
}
