package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-petr/swagbank/pkg/currencypkg"
)

var (
	// ErrInvalidCurrencyValue indicates that an amount is negative, zero
	// where a positive value is required, or not a valid number.
	ErrInvalidCurrencyValue = currencypkg.ErrInvalidCurrencyValue
	// ErrCurrencyMismatch indicates that an amount's currency differs from
	// the currency of the balance it is applied to.
	ErrCurrencyMismatch = currencypkg.ErrCurrencyMismatch
	// ErrInsufficientBalance indicates that a debited balance is too low.
	// Concrete errors are *InsufficientBalanceError values.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrAccountNotFound indicates that no personal account is registered
	// for the user.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountAlreadyExists indicates that the user already has an account.
	ErrAccountAlreadyExists = errors.New("account already exists")
	// ErrCagnotteNotFound indicates that no active cagnotte has the id.
	ErrCagnotteNotFound = errors.New("cagnotte not found")
	// ErrCagnotteNameAlreadyExists indicates that another active cagnotte
	// uses the name.
	ErrCagnotteNameAlreadyExists = errors.New("cagnotte name already exists")
	// ErrCagnotteAlreadyExists indicates a creation reusing the id of another cagnotte.
	ErrCagnotteAlreadyExists = errors.New("cagnotte already exists")
	// ErrCagnotteUnspecified indicates that no cagnotte or no participant
	// was given where one is required.
	ErrCagnotteUnspecified = errors.New("cagnotte unspecified")
	// ErrNotCagnotteManager indicates that the requester does not manage
	// the cagnotte.
	ErrNotCagnotteManager = errors.New("not a cagnotte manager")
	// ErrCagnotteDestructionForbidden indicates that the cagnotte still
	// holds a balance.
	ErrCagnotteDestructionForbidden = errors.New("cagnotte destruction forbidden")
	// ErrInvalidTimeZone indicates an unknown IANA time zone name.
	ErrInvalidTimeZone = errors.New("invalid time zone")
	// ErrTimeZoneFieldLocked indicates that the time zone was changed less
	// than a day ago. Concrete errors are *TimeZoneLockedError values.
	ErrTimeZoneFieldLocked = errors.New("time zone field locked")
	// ErrAlreadyMinedToday indicates that the account already mined on the
	// current local calendar day.
	ErrAlreadyMinedToday = errors.New("already mined today")
	// ErrStillBlocked indicates that a stake has not reached its unblocking date.
	ErrStillBlocked = errors.New("swag still blocked")
	// ErrNothingBlocked indicates that the account has no active stake.
	ErrNothingBlocked = errors.New("no swag blocked")
	// ErrPowerNotApplicable indicates that a power cannot be used right now.
	ErrPowerNotApplicable = errors.New("power not applicable")
	// ErrNonMonotonic indicates that a block is older than the ledger's
	// latest block.
	ErrNonMonotonic = errors.New("block timestamp before ledger head")
	// ErrDuplicateBlock indicates that a block with the same timestamp and
	// issuer is already in the ledger.
	ErrDuplicateBlock = errors.New("duplicate block")
	// ErrBlockNotFound indicates that no block has the given identity.
	ErrBlockNotFound = errors.New("block not found")
	// ErrUnknownBlockKind indicates a block kind that cannot be decoded or executed.
	ErrUnknownBlockKind = errors.New("unknown block kind")
)

// BalanceField names the balance an InsufficientBalanceError refers to.
type BalanceField string

// Balance fields.
const (
	SwagField        BalanceField = "swag"
	StyleField       BalanceField = "style"
	BlockedSwagField BalanceField = "blocked_swag"
	CagnotteField    BalanceField = "cagnotte"
)

// InsufficientBalanceError reports which balance of which account was too
// low. It matches ErrInsufficientBalance with errors.Is.
type InsufficientBalanceError struct {
	Address Address
	Field   BalanceField
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s balance on %s", e.Field, e.Address)
}

// Is reports whether target is ErrInsufficientBalance.
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// TimeZoneLockedError carries the date after which the time zone can be
// changed again. It matches ErrTimeZoneFieldLocked with errors.Is.
type TimeZoneLockedError struct {
	Until time.Time
}

func (e *TimeZoneLockedError) Error() string {
	return "time zone field locked until " + e.Until.Format(time.RFC3339)
}

// Is reports whether target is ErrTimeZoneFieldLocked.
func (e *TimeZoneLockedError) Is(target error) bool {
	return target == ErrTimeZoneFieldLocked
}

// NotFound returns the not-found error matching the kind of a.
func NotFound(a Address) error {
	if a.Kind == CagnotteAddress {
		return fmt.Errorf("%w: %s", ErrCagnotteNotFound, a)
	}

	return fmt.Errorf("%w: %s", ErrAccountNotFound, a)
}
