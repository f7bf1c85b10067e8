package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/currencypkg"
)

func TestAccountCreation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.must(domain.GuildTimezoneUpdate{Guild: 7, Timezone: "America/New_York"})
	f.must(domain.AccountCreation{User: 1, Guild: 7})
	f.must(domain.AccountCreation{User: 2, Guild: 8})
	f.must(domain.AccountCreation{User: 3, Guild: 7, Timezone: "Asia/Tokyo"})

	require.Equal(t, "America/New_York", f.user(1).Timezone)
	require.Equal(t, domain.DefaultTimezone, f.user(2).Timezone)
	require.Equal(t, "Asia/Tokyo", f.user(3).Timezone)
	require.True(t, f.user(1).StyleRate.Equal(domain.DefaultStyleRate))

	_, err := f.append(domain.AccountCreation{User: 1})
	require.ErrorIs(t, err, domain.ErrAccountAlreadyExists)

	_, err = f.append(domain.AccountCreation{User: 4, Timezone: "Nowhere/Land"})
	require.ErrorIs(t, err, domain.ErrInvalidTimeZone)

	_, err = f.l.Personal(4)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestMining(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.account(1, "UTC")

	out := f.must(domain.Mining{User: 1, Amount: currencypkg.MustSwag(42)})
	require.Equal(t, "42", out.Mined.String())
	require.Equal(t, "42", f.swagOf(1))

	_, err := f.append(domain.Mining{User: 1, Amount: currencypkg.MustSwag(1)})
	require.ErrorIs(t, err, domain.ErrAlreadyMinedToday)

	f.advance(24 * time.Hour)
	f.must(domain.Mining{User: 1, Amount: currencypkg.MustSwag(8)})
	require.Equal(t, "50", f.swagOf(1))

	_, err = f.append(domain.Mining{User: 2, Amount: currencypkg.MustSwag(1)})
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestMiningUsesLocalDay(t *testing.T) {
	t.Parallel()

	l := New()
	at := func(h, m int) time.Time { return time.Date(2024, 1, 10, h, m, 0, 0, time.UTC) }

	_, err := l.Append(domain.Block{Timestamp: at(0, 0), Issuer: 1, Payload: domain.AccountCreation{User: 1, Timezone: "Asia/Tokyo"}})
	require.NoError(t, err)

	// 14:00 UTC is 23:00 in Tokyo (UTC+9).
	_, err = l.Append(domain.Block{Timestamp: at(14, 0), Issuer: 1, Payload: domain.Mining{User: 1, Amount: currencypkg.MustSwag(1)}})
	require.NoError(t, err)

	_, err = l.Append(domain.Block{Timestamp: at(14, 30), Issuer: 1, Payload: domain.Mining{User: 1, Amount: currencypkg.MustSwag(1)}})
	require.ErrorIs(t, err, domain.ErrAlreadyMinedToday)

	// 15:00 UTC is midnight in Tokyo.
	_, err = l.Append(domain.Block{Timestamp: at(15, 0), Issuer: 1, Payload: domain.Mining{User: 1, Amount: currencypkg.MustSwag(1)}})
	require.NoError(t, err)
}

func TestTimezoneLock(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.account(1, "UTC")

	out := f.must(domain.UserTimezoneUpdate{User: 1, Timezone: "Europe/London"})
	require.NotNil(t, out.TimezoneLock)
	require.Equal(t, out.Block.Timestamp.Add(24*time.Hour), *out.TimezoneLock)

	f.advance(12 * time.Hour)

	_, err := f.append(domain.UserTimezoneUpdate{User: 1, Timezone: "Europe/Berlin"})
	require.ErrorIs(t, err, domain.ErrTimeZoneFieldLocked)

	var locked *domain.TimeZoneLockedError
	require.ErrorAs(t, err, &locked)
	require.Equal(t, *out.TimezoneLock, locked.Until)

	// The lock date itself is still locked.
	_, err = f.l.Append(domain.Block{Timestamp: *out.TimezoneLock, Issuer: 1, Payload: domain.UserTimezoneUpdate{User: 1, Timezone: "Europe/Berlin"}})
	require.ErrorIs(t, err, domain.ErrTimeZoneFieldLocked)
	require.Equal(t, "Europe/London", f.user(1).Timezone)

	f.now = *out.TimezoneLock
	f.must(domain.UserTimezoneUpdate{User: 1, Timezone: "Europe/Berlin"})
	require.Equal(t, "Europe/Berlin", f.user(1).Timezone)

	_, err = f.append(domain.UserTimezoneUpdate{User: 1, Timezone: "Bad/Zone"})
	require.ErrorIs(t, err, domain.ErrInvalidTimeZone)
}

func TestTransferStyle(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.account(1, "UTC")
	f.account(2, "UTC")
	f.must(domain.EventGiveaway{User: 1, Amount: style("1.5")})

	f.must(domain.Transfer{From: 1, To: 2, Amount: style("0.25")})
	require.Equal(t, "1.25", f.user(1).StyleBalance.String())
	require.Equal(t, "0.25", f.user(2).StyleBalance.String())

	_, err := f.append(domain.Transfer{From: 2, To: 1, Amount: style("1")})
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	_, err = f.append(domain.Transfer{From: 1, To: 2, Amount: swag(0)})
	require.ErrorIs(t, err, domain.ErrInvalidCurrencyValue)

	_, err = f.append(domain.Transfer{From: 1, To: 3, Amount: style("1")})
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestStaking(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.funded(1, 1000)

	f.must(domain.SwagBlocking{User: 1, Amount: currencypkg.MustSwag(100), Days: 1})

	a := f.user(1)
	require.Equal(t, "900", a.SwagBalance.String())
	require.Equal(t, "100", a.BlockedSwag.String())
	require.NotNil(t, a.BlockingDate)
	require.Equal(t, a.BlockingDate.Add(24*time.Hour), *a.UnblockingDate)

	_, err := f.append(domain.SwagBlocking{User: 1, Amount: currencypkg.MustSwag(1), Days: 1})
	require.ErrorIs(t, err, domain.ErrStillBlocked)

	_, err = f.append(domain.SwagRelease{User: 1})
	require.ErrorIs(t, err, domain.ErrStillBlocked)

	// 10 whole periods at 100%: 100 * 0.0001 * 10.
	f.advance(10*time.Hour + 30*time.Minute)
	info, err := f.l.AccountInfo(1, f.now)
	require.NoError(t, err)
	require.Equal(t, "0.1", info.PendingStyle.String())

	f.advance(20 * time.Hour)

	out := f.must(domain.SwagRelease{User: 1})
	require.Equal(t, "100", out.Released.Swag.String())
	require.Equal(t, "0.24", out.Released.Style.String())

	a = f.user(1)
	require.Equal(t, "1000", a.SwagBalance.String())
	require.Equal(t, "0.24", a.StyleBalance.String())
	require.False(t, a.Staking())
	require.Nil(t, a.BlockingDate)
	require.Nil(t, a.UnblockingDate)

	_, err = f.append(domain.SwagRelease{User: 1})
	require.ErrorIs(t, err, domain.ErrNothingBlocked)

	_, err = f.append(domain.SwagBlocking{User: 1, Amount: currencypkg.MustSwag(5000), Days: 1})
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestNewDaySettlesAndReleases(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.funded(1, 1000)
	f.funded(2, 1000)

	f.must(domain.SwagBlocking{User: 1, Amount: currencypkg.MustSwag(1000), Days: 1})
	f.must(domain.SwagBlocking{User: 2, Amount: currencypkg.MustSwag(1000), Days: 3})

	f.advance(25 * time.Hour)
	out := f.must(domain.NewDay{})
	require.ElementsMatch(t, []domain.Address{domain.UserAddress(1), domain.UserAddress(2)}, out.Touched)

	// Matured: 24 periods * 1000 * 0.0001.
	a := f.user(1)
	require.False(t, a.Staking())
	require.Equal(t, "1000", a.SwagBalance.String())
	require.Equal(t, "2.4", a.StyleBalance.String())

	// Still running: 25 periods settled into the pending balance.
	b := f.user(2)
	require.True(t, b.Staking())
	require.Equal(t, "2.5", b.PendingStyle.String())
	require.True(t, b.StyleBalance.IsZero())

	// Settling keeps whole periods, so the final release is exact.
	f.advance(48 * time.Hour)
	f.must(domain.NewDay{})

	b = f.user(2)
	require.False(t, b.Staking())
	require.Equal(t, "7.2", b.StyleBalance.String())
}

func TestStakeAfterMaturitySettlesFirst(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.funded(1, 200)

	f.must(domain.SwagBlocking{User: 1, Amount: currencypkg.MustSwag(100), Days: 1})
	f.advance(48 * time.Hour)

	out := f.must(domain.SwagBlocking{User: 1, Amount: currencypkg.MustSwag(150), Days: 2})
	require.NotNil(t, out.Released)
	require.Equal(t, "0.24", out.Released.Style.String())

	a := f.user(1)
	require.Equal(t, "50", a.SwagBalance.String())
	require.Equal(t, "150", a.BlockedSwag.String())
	require.True(t, a.PendingStyle.IsZero())
}

func TestGuildSettingsAndAssets(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.must(domain.GuildSystemChannelUpdate{Guild: 3, Channel: 30})
	f.must(domain.GuildForbesChannelUpdate{Guild: 3, Channel: 31})
	f.must(domain.AssetUpload{Key: "forbes_template", Path: "assets/forbes.png"})

	g, ok := f.l.Registry().Guild(3)
	require.True(t, ok)
	require.Equal(t, domain.ChannelID(30), g.SystemChannel)
	require.Equal(t, domain.ChannelID(31), g.ForbesChannel)

	p, ok := f.l.Registry().Asset("forbes_template")
	require.True(t, ok)
	require.Equal(t, "assets/forbes.png", p)

	_, err := f.append(domain.GuildTimezoneUpdate{Guild: 3, Timezone: "Moon/Base"})
	require.ErrorIs(t, err, domain.ErrInvalidTimeZone)
}

func TestImmunityUpdate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.account(1, "UTC")
	f.must(domain.CagnotteCreation{Creator: 1, Name: "pot", Currency: currencypkg.SWAG})

	f.must(domain.ImmunityUpdate{Target: domain.UserAddress(1), Power: domain.PowerLooting, Immune: true})
	f.must(domain.ImmunityUpdate{Target: domain.UserAddress(1), Power: domain.PowerLooting, Immune: true})
	require.Equal(t, []domain.PowerKind{domain.PowerLooting}, f.user(1).Immunities)

	f.must(domain.ImmunityUpdate{Target: domain.UserAddress(1), Power: domain.PowerLooting, Immune: false})
	require.Empty(t, f.user(1).Immunities)

	f.must(domain.ImmunityUpdate{Target: domain.CagnotteAddressOf(1), Power: domain.PowerFiredamp, Immune: true})
	c, err := f.l.Cagnotte(1)
	require.NoError(t, err)
	require.True(t, c.IsImmune(domain.PowerFiredamp))

	_, err = f.append(domain.ImmunityUpdate{Target: domain.CagnotteAddressOf(9), Power: domain.PowerLooting, Immune: true})
	require.ErrorIs(t, err, domain.ErrCagnotteNotFound)

	_, err = f.append(domain.ImmunityUpdate{Target: domain.UserAddress(1), Power: "teleport", Immune: true})
	require.ErrorIs(t, err, domain.ErrPowerNotApplicable)
}
