package ledgerservice

import (
	"context"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/currencypkg"
)

// CreateAccount opens the personal account of user. An empty timezone falls
// back to the guild's, then to the configured default.
func (s *Service) CreateAccount(ctx context.Context, user domain.UserID, guild domain.GuildID, timezone string) (domain.PersonalAccount, error) {
	if timezone == "" {
		if g, ok := s.ledger.Load().Registry().Guild(guild); !ok || g.Timezone == "" {
			timezone = s.opts.DefaultTimezone
		}
	}

	if _, err := s.submit(ctx, user, domain.AccountCreation{User: user, Guild: guild, Timezone: timezone}); err != nil {
		return domain.PersonalAccount{}, err
	}

	return s.ledger.Load().Personal(user)
}

// Mine credits user with a random amount of Swag, once per local day.
func (s *Service) Mine(ctx context.Context, user domain.UserID) (currencypkg.Swag, error) {
	amount := currencypkg.SwagFromUint64(s.opts.Rand.Between(s.opts.MiningMin, s.opts.MiningMax))

	out, err := s.submit(ctx, user, domain.Mining{User: user, Amount: amount})
	if err != nil {
		return currencypkg.Swag{}, err
	}

	return out.Mined, nil
}

// Transfer moves amount from one personal account to another.
func (s *Service) Transfer(ctx context.Context, from, to domain.UserID, amount currencypkg.Amount) (domain.Outcome, error) {
	return s.submit(ctx, from, domain.Transfer{From: from, To: to, Amount: amount})
}

// Stake blocks amount of user's Swag for the configured number of days.
func (s *Service) Stake(ctx context.Context, user domain.UserID, amount currencypkg.Swag) (domain.Outcome, error) {
	return s.submit(ctx, user, domain.SwagBlocking{User: user, Amount: amount, Days: s.opts.BlockingDays})
}

// Release returns a matured stake to user.
func (s *Service) Release(ctx context.Context, user domain.UserID) (domain.Outcome, error) {
	return s.submit(ctx, user, domain.SwagRelease{User: user})
}

// SetTimezone changes the time zone of user.
func (s *Service) SetTimezone(ctx context.Context, user domain.UserID, timezone string) (domain.Outcome, error) {
	return s.submit(ctx, user, domain.UserTimezoneUpdate{User: user, Timezone: timezone})
}

// SetGuildTimezone changes the default time zone of guild.
func (s *Service) SetGuildTimezone(ctx context.Context, guild domain.GuildID, timezone string) (domain.Outcome, error) {
	return s.submit(ctx, s.opts.BotID, domain.GuildTimezoneUpdate{Guild: guild, Timezone: timezone})
}

// SetSystemChannel changes the channel guild announcements go to.
func (s *Service) SetSystemChannel(ctx context.Context, guild domain.GuildID, channel domain.ChannelID) (domain.Outcome, error) {
	return s.submit(ctx, s.opts.BotID, domain.GuildSystemChannelUpdate{Guild: guild, Channel: channel})
}

// SetForbesChannel changes the channel the ranking is posted to.
func (s *Service) SetForbesChannel(ctx context.Context, guild domain.GuildID, channel domain.ChannelID) (domain.Outcome, error) {
	return s.submit(ctx, s.opts.BotID, domain.GuildForbesChannelUpdate{Guild: guild, Channel: channel})
}

// Giveaway credits user from nowhere.
func (s *Service) Giveaway(ctx context.Context, user domain.UserID, amount currencypkg.Amount) (domain.Outcome, error) {
	return s.submit(ctx, s.opts.BotID, domain.EventGiveaway{User: user, Amount: amount})
}

// SetImmunity grants or revokes the immunity of target to power.
func (s *Service) SetImmunity(ctx context.Context, target domain.Address, power domain.PowerKind, immune bool) (domain.Outcome, error) {
	return s.submit(ctx, s.opts.BotID, domain.ImmunityUpdate{Target: target, Power: power, Immune: immune})
}

// RegisterAsset records the local path of an uploaded asset.
func (s *Service) RegisterAsset(ctx context.Context, key, path string) (domain.Outcome, error) {
	return s.submit(ctx, s.opts.BotID, domain.AssetUpload{Key: key, Path: path})
}

// NewDay releases matured stakes and settles the others.
func (s *Service) NewDay(ctx context.Context) (domain.Outcome, error) {
	return s.submit(ctx, s.opts.BotID, domain.NewDay{})
}
