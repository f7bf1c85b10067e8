package ledger

import (
	"fmt"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/currencypkg"
)

// number fills in the ids r assigns to b.
func (r *Registry) number(b domain.Block) domain.Block {
	if p, ok := b.Payload.(domain.CagnotteCreation); ok && p.ID == 0 {
		p.ID = r.NextCagnotteID()
		b.Payload = p
	}

	return b
}

// apply executes b against r, mutating r in place. On error r may be left
// partially modified and must be discarded.
func (r *Registry) apply(b domain.Block) (domain.Outcome, error) {
	r.touched = nil
	out := domain.Outcome{Block: b}

	var err error

	switch p := b.Payload.(type) {
	case domain.AccountCreation:
		err = r.execAccountCreation(b, p)
	case domain.UserTimezoneUpdate:
		out.TimezoneLock, err = r.execUserTimezone(b, p)
	case domain.GuildTimezoneUpdate:
		err = r.execGuildTimezone(p)
	case domain.GuildSystemChannelUpdate:
		r.guild(p.Guild).SystemChannel = p.Channel
	case domain.GuildForbesChannelUpdate:
		r.guild(p.Guild).ForbesChannel = p.Channel
	case domain.EventGiveaway:
		err = r.execGiveaway(p)
	case domain.AssetUpload:
		r.assets[p.Key] = p.Path
	case domain.NewDay:
		err = r.execNewDay(b)
	case domain.Mining:
		err = r.execMining(b, p)
		out.Mined = p.Amount
	case domain.Transfer:
		err = r.execTransfer(p)
	case domain.SwagBlocking:
		out.Released, err = r.execSwagBlocking(b, p)
	case domain.SwagRelease:
		out.Released, err = r.execSwagRelease(b, p)
	case domain.ImmunityUpdate:
		err = r.execImmunity(p)
	case domain.CagnotteCreation:
		out.CagnotteID, err = r.execCagnotteCreation(p)
	case domain.CagnotteContribution:
		err = r.execCagnotteContribution(p)
	case domain.CagnotteDisbursement:
		err = r.execCagnotteDisbursement(p)
	case domain.CagnotteShare:
		out.Share, err = r.execCagnotteShare(p)
	case domain.CagnotteLottery:
		out.Lottery, err = r.execCagnotteLottery(p)
	case domain.CagnotteRename:
		err = r.execCagnotteRename(p)
	case domain.CagnotteParticipantsReset:
		err = r.execCagnotteReset(p)
	case domain.CagnotteDestruction:
		err = r.execCagnotteDestruction(p)
	case domain.Looting:
		out.Loot, err = r.execLooting(b, p)
	case domain.Firedamp:
		out.DelayDays, err = r.execFiredamp(b, p)
	case domain.TaxEvasion:
		out.Mined, err = r.execTaxEvasion(b, p)
	default:
		err = fmt.Errorf("%w: %T", domain.ErrUnknownBlockKind, b.Payload)
	}

	if err != nil {
		return domain.Outcome{}, err
	}

	out.Touched = r.touched
	r.touched = nil

	return out, nil
}

func requirePositive(a currencypkg.Amount) error {
	if a.Kind() == "" {
		return currencypkg.ErrUnsupportedCurrency
	}

	if a.IsZero() {
		return domain.ErrInvalidCurrencyValue
	}

	return nil
}
