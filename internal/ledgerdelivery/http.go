// Package ledgerdelivery manages the HTTP delivery layer of the ledger.
package ledgerdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/currencypkg"
	"github.com/go-petr/swagbank/pkg/errorspkg"
	"github.com/go-petr/swagbank/pkg/web"
)

// Service provides service layer interface needed by ledger delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ledgerdelivery
type Service interface {
	CreateAccount(ctx context.Context, user domain.UserID, guild domain.GuildID, timezone string) (domain.PersonalAccount, error)
	AccountInfo(ctx context.Context, user domain.UserID) (domain.PersonalAccount, error)
	History(ctx context.Context, a domain.Address, limit, offset int) ([]domain.Block, error)
	Forbes(ctx context.Context, limit int) []domain.PersonalAccount
	Mine(ctx context.Context, user domain.UserID) (currencypkg.Swag, error)
	Transfer(ctx context.Context, from, to domain.UserID, amount currencypkg.Amount) (domain.Outcome, error)
	Stake(ctx context.Context, user domain.UserID, amount currencypkg.Swag) (domain.Outcome, error)
	Release(ctx context.Context, user domain.UserID) (domain.Outcome, error)
	SetTimezone(ctx context.Context, user domain.UserID, timezone string) (domain.Outcome, error)

	CreateCagnotte(ctx context.Context, creator domain.UserID, name string, currency currencypkg.Kind) (domain.CagnotteAccount, error)
	Cagnotte(ctx context.Context, id domain.CagnotteID) (domain.CagnotteAccount, error)
	Contribute(ctx context.Context, user domain.UserID, cagnotte domain.CagnotteID, amount currencypkg.Amount) (domain.Outcome, error)
	Disburse(ctx context.Context, requester domain.UserID, cagnotte domain.CagnotteID, recipient domain.UserID, amount currencypkg.Amount) (domain.Outcome, error)
	Share(ctx context.Context, requester domain.UserID, cagnotte domain.CagnotteID, participants []domain.UserID) (domain.Outcome, error)
	Lottery(ctx context.Context, requester domain.UserID, cagnotte domain.CagnotteID, participants []domain.UserID) (domain.Outcome, error)
	RenameCagnotte(ctx context.Context, requester domain.UserID, cagnotte domain.CagnotteID, name string) (domain.Outcome, error)
	ResetParticipants(ctx context.Context, requester domain.UserID, cagnotte domain.CagnotteID) (domain.Outcome, error)
	DestroyCagnotte(ctx context.Context, requester domain.UserID, cagnotte domain.CagnotteID) (domain.Outcome, error)

	Loot(ctx context.Context, owner domain.UserID, charge uint64) (domain.Outcome, error)
	Firedamp(ctx context.Context, owner domain.UserID, charge uint64) (domain.Outcome, error)
	TaxEvasion(ctx context.Context, owner domain.UserID, charge uint64) (domain.Outcome, error)

	NewDay(ctx context.Context) (domain.Outcome, error)
	Giveaway(ctx context.Context, user domain.UserID, amount currencypkg.Amount) (domain.Outcome, error)
	SetImmunity(ctx context.Context, target domain.Address, power domain.PowerKind, immune bool) (domain.Outcome, error)
	RegisterAsset(ctx context.Context, key, path string) (domain.Outcome, error)
	SetGuildTimezone(ctx context.Context, guild domain.GuildID, timezone string) (domain.Outcome, error)
	SetSystemChannel(ctx context.Context, guild domain.GuildID, channel domain.ChannelID) (domain.Outcome, error)
	SetForbesChannel(ctx context.Context, guild domain.GuildID, channel domain.ChannelID) (domain.Outcome, error)
	Remove(ctx context.Context, id domain.BlockID) error
}

// Handler facilitates ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns ledger handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// statusOf maps a service error to its HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrCagnotteNotFound),
		errors.Is(err, domain.ErrBlockNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccountAlreadyExists),
		errors.Is(err, domain.ErrCagnotteNameAlreadyExists),
		errors.Is(err, domain.ErrCagnotteAlreadyExists),
		errors.Is(err, domain.ErrDuplicateBlock):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotCagnotteManager),
		errors.Is(err, domain.ErrCagnotteDestructionForbidden),
		errors.Is(err, domain.ErrTimeZoneFieldLocked):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInvalidCurrencyValue),
		errors.Is(err, domain.ErrCurrencyMismatch),
		errors.Is(err, domain.ErrInvalidTimeZone),
		errors.Is(err, domain.ErrCagnotteUnspecified),
		errors.Is(err, domain.ErrAlreadyMinedToday),
		errors.Is(err, domain.ErrStillBlocked),
		errors.Is(err, domain.ErrNothingBlocked),
		errors.Is(err, domain.ErrPowerNotApplicable),
		errors.Is(err, domain.ErrNonMonotonic),
		errors.Is(err, domain.ErrUnknownBlockKind):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func fail(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())

	status := statusOf(err)
	if status == http.StatusInternalServerError {
		l.Error().Err(err).Send()
		gctx.JSON(status, web.Error(errorspkg.ErrInternal))

		return
	}

	l.Info().Err(err).Send()
	gctx.JSON(status, web.Error(err))
}

func badRequest(gctx *gin.Context, err error) {
	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
	gctx.JSON(http.StatusBadRequest, web.Error(web.BindingError(err)))
}

func bindJSON(gctx *gin.Context, req any) bool {
	if err := gctx.ShouldBindJSON(req); err != nil {
		badRequest(gctx, err)
		return false
	}

	return true
}

func bindURI(gctx *gin.Context, req any) bool {
	if err := gctx.ShouldBindUri(req); err != nil {
		badRequest(gctx, err)
		return false
	}

	return true
}

func bindQuery(gctx *gin.Context, req any) bool {
	if err := gctx.ShouldBindQuery(req); err != nil {
		badRequest(gctx, err)
		return false
	}

	return true
}

// parseAmount reads an amount of the given currency.
func parseAmount(gctx *gin.Context, currency, value string) (currencypkg.Amount, bool) {
	kind, err := currencypkg.ParseKind(currency)
	if err != nil {
		badRequest(gctx, err)
		return currencypkg.Amount{}, false
	}

	amount, err := currencypkg.ParseAmount(kind, value)
	if err != nil {
		badRequest(gctx, err)
		return currencypkg.Amount{}, false
	}

	return amount, true
}

func respondOutcome(gctx *gin.Context, out domain.Outcome, err error) {
	if err != nil {
		fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Data(gin.H{"outcome": out}))
}

type idURI struct {
	ID uint64 `uri:"id" binding:"required,min=1"`
}

type pageQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

func (q pageQuery) limit() int {
	if q.Limit == 0 {
		return 10
	}

	return q.Limit
}

func userIDs(ids []uint64) []domain.UserID {
	if ids == nil {
		return nil
	}

	out := make([]domain.UserID, len(ids))
	for i, id := range ids {
		out[i] = domain.UserID(id)
	}

	return out
}
