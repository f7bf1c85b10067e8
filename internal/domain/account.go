package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/swagbank/pkg/currencypkg"
)

// DefaultStyleRate is the staking yield multiplier, in percent, new accounts get.
var DefaultStyleRate = decimal.NewFromInt(100)

// PowerKind names a special ability an account can activate or be immune to.
type PowerKind string

// Powers.
const (
	PowerLooting    PowerKind = "looting"
	PowerFiredamp   PowerKind = "firedamp"
	PowerTaxEvasion PowerKind = "tax_evasion"
)

// IsValid reports whether p is a known power.
func (p PowerKind) IsValid() bool {
	switch p {
	case PowerLooting, PowerFiredamp, PowerTaxEvasion:
		return true
	}

	return false
}

// PersonalAccount is the balance sheet of one user.
//
// A stake is active iff BlockedSwag is positive; BlockingDate and
// UnblockingDate are set exactly when a stake is active. PendingStyle holds
// the Style accrued up to BlockingDate, which advances by whole accrual
// periods as accrual is settled.
type PersonalAccount struct {
	ID               UserID
	CreationDate     time.Time
	Timezone         string
	SwagBalance      currencypkg.Swag
	StyleBalance     currencypkg.Style
	LastMiningDate   *time.Time
	StyleRate        decimal.Decimal
	BlockedSwag      currencypkg.Swag
	BlockingDate     *time.Time
	UnblockingDate   *time.Time
	PendingStyle     currencypkg.Style
	TimezoneLockDate *time.Time
	Immunities       []PowerKind
}

// Address returns the address of a.
func (a *PersonalAccount) Address() Address {
	return UserAddress(a.ID)
}

// Clone returns a deep copy of a.
func (a *PersonalAccount) Clone() *PersonalAccount {
	c := *a
	c.LastMiningDate = cloneTime(a.LastMiningDate)
	c.BlockingDate = cloneTime(a.BlockingDate)
	c.UnblockingDate = cloneTime(a.UnblockingDate)
	c.TimezoneLockDate = cloneTime(a.TimezoneLockDate)
	c.Immunities = slices.Clone(a.Immunities)

	return &c
}

// Staking reports whether a has an active stake.
func (a *PersonalAccount) Staking() bool {
	return !a.BlockedSwag.IsZero()
}

// IsImmune reports whether a is immune to p.
func (a *PersonalAccount) IsImmune(p PowerKind) bool {
	return slices.Contains(a.Immunities, p)
}

// SetImmunity grants or revokes immunity to p.
func (a *PersonalAccount) SetImmunity(p PowerKind, immune bool) {
	a.Immunities = setImmunity(a.Immunities, p, immune)
}

// Credit adds amt to the liquid balance of its currency.
func (a *PersonalAccount) Credit(amt currencypkg.Amount) error {
	if s, ok := amt.Swag(); ok {
		v, err := a.SwagBalance.Add(s)
		if err != nil {
			return err
		}

		a.SwagBalance = v

		return nil
	}

	if s, ok := amt.Style(); ok {
		a.StyleBalance = a.StyleBalance.Add(s)
		return nil
	}

	return currencypkg.ErrUnsupportedCurrency
}

// Debit removes amt from the liquid balance of its currency.
func (a *PersonalAccount) Debit(amt currencypkg.Amount) error {
	if s, ok := amt.Swag(); ok {
		v, err := a.SwagBalance.Sub(s)
		if err != nil {
			return &InsufficientBalanceError{Address: a.Address(), Field: SwagField}
		}

		a.SwagBalance = v

		return nil
	}

	if s, ok := amt.Style(); ok {
		v, err := a.StyleBalance.Sub(s)
		if err != nil {
			return &InsufficientBalanceError{Address: a.Address(), Field: StyleField}
		}

		a.StyleBalance = v

		return nil
	}

	return currencypkg.ErrUnsupportedCurrency
}

// DebitBlocked removes s from the staked Swag. The stake dates are left
// for the caller to settle.
func (a *PersonalAccount) DebitBlocked(s currencypkg.Swag) error {
	if a.BlockedSwag.LessThan(s) {
		return &InsufficientBalanceError{Address: a.Address(), Field: BlockedSwagField}
	}

	a.BlockedSwag, _ = a.BlockedSwag.Sub(s)

	return nil
}

// CagnotteAccount is a named pooled fund holding a single currency.
type CagnotteAccount struct {
	ID           CagnotteID
	Name         string
	Currency     currencypkg.Kind
	Balance      currencypkg.Amount
	Managers     []UserID
	Participants []UserID
	Immunities   []PowerKind
	Destroyed    bool
}

// Address returns the address of c.
func (c *CagnotteAccount) Address() Address {
	return CagnotteAddressOf(c.ID)
}

// Clone returns a deep copy of c.
func (c *CagnotteAccount) Clone() *CagnotteAccount {
	n := *c
	n.Managers = slices.Clone(c.Managers)
	n.Participants = slices.Clone(c.Participants)
	n.Immunities = slices.Clone(c.Immunities)

	return &n
}

// IsManager reports whether u manages c.
func (c *CagnotteAccount) IsManager(u UserID) bool {
	return slices.Contains(c.Managers, u)
}

// AddParticipant records u as a contributor unless it already is one.
func (c *CagnotteAccount) AddParticipant(u UserID) {
	if !slices.Contains(c.Participants, u) {
		c.Participants = append(c.Participants, u)
	}
}

// IsImmune reports whether c is immune to p.
func (c *CagnotteAccount) IsImmune(p PowerKind) bool {
	return slices.Contains(c.Immunities, p)
}

// SetImmunity grants or revokes immunity to p.
func (c *CagnotteAccount) SetImmunity(p PowerKind, immune bool) {
	c.Immunities = setImmunity(c.Immunities, p, immune)
}

// Credit adds amt to the balance.
func (c *CagnotteAccount) Credit(amt currencypkg.Amount) error {
	if amt.Kind() != c.Currency {
		return ErrCurrencyMismatch
	}

	v, err := c.Balance.Add(amt)
	if err != nil {
		return err
	}

	c.Balance = v

	return nil
}

// Debit removes amt from the balance.
func (c *CagnotteAccount) Debit(amt currencypkg.Amount) error {
	if amt.Kind() != c.Currency {
		return ErrCurrencyMismatch
	}

	v, err := c.Balance.Sub(amt)
	if err != nil {
		return &InsufficientBalanceError{Address: c.Address(), Field: CagnotteField}
	}

	c.Balance = v

	return nil
}

// Guild holds per-server settings.
type Guild struct {
	ID            GuildID
	Timezone      string
	SystemChannel ChannelID
	ForbesChannel ChannelID
}

// PowerState is the per-owner bookkeeping of a power.
type PowerState struct {
	Owner       UserID
	Kind        PowerKind
	Activations int
	Unresolved  currencypkg.Swag
	LastUsed    *time.Time
}

func setImmunity(list []PowerKind, p PowerKind, immune bool) []PowerKind {
	i := slices.Index(list, p)

	switch {
	case immune && i < 0:
		return append(list, p)
	case !immune && i >= 0:
		return slices.Delete(list, i, i+1)
	}

	return list
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	v := *t

	return &v
}
