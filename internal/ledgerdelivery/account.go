package ledgerdelivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/currencypkg"
	"github.com/go-petr/swagbank/pkg/web"
)

type createAccountRequest struct {
	UserID   uint64 `json:"user_id" binding:"required,min=1"`
	GuildID  uint64 `json:"guild_id"`
	Timezone string `json:"timezone" binding:"omitempty,timezone"`
}

// CreateAccount handles http request to open a personal account.
func (h *Handler) CreateAccount(gctx *gin.Context) {
	var req createAccountRequest
	if !bindJSON(gctx, &req) {
		return
	}

	a, err := h.service.CreateAccount(gctx.Request.Context(), domain.UserID(req.UserID), domain.GuildID(req.GuildID), req.Timezone)
	if err != nil {
		fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Data(gin.H{"account": newAccountView(a)}))
}

// GetAccount handles http request to get an account with its pending style.
func (h *Handler) GetAccount(gctx *gin.Context) {
	var uri idURI
	if !bindURI(gctx, &uri) {
		return
	}

	a, err := h.service.AccountInfo(gctx.Request.Context(), domain.UserID(uri.ID))
	if err != nil {
		fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Data(gin.H{"account": newAccountView(a)}))
}

// AccountHistory handles http request to list the blocks of an account,
// newest first.
func (h *Handler) AccountHistory(gctx *gin.Context) {
	var uri idURI
	if !bindURI(gctx, &uri) {
		return
	}

	h.history(gctx, domain.UserAddress(domain.UserID(uri.ID)))
}

func (h *Handler) history(gctx *gin.Context, a domain.Address) {
	var q pageQuery
	if !bindQuery(gctx, &q) {
		return
	}

	blocks, err := h.service.History(gctx.Request.Context(), a, q.limit(), q.Offset)
	if err != nil {
		fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Data(gin.H{"blocks": blocks}))
}

type forbesQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Forbes handles http request to rank the richest accounts.
func (h *Handler) Forbes(gctx *gin.Context) {
	var q forbesQuery
	if !bindQuery(gctx, &q) {
		return
	}

	if q.Limit == 0 {
		q.Limit = 10
	}

	ranking := h.service.Forbes(gctx.Request.Context(), q.Limit)

	entries := make([]forbesEntry, len(ranking))
	for i, a := range ranking {
		entries[i] = forbesEntry{Rank: i + 1, User: a.ID, Swag: a.SwagBalance, Style: a.StyleBalance}
	}

	gctx.JSON(http.StatusOK, web.Data(gin.H{"forbes": entries}))
}

type userRequest struct {
	UserID uint64 `json:"user_id" binding:"required,min=1"`
}

// Mine handles http request to mine the daily Swag.
func (h *Handler) Mine(gctx *gin.Context) {
	var req userRequest
	if !bindJSON(gctx, &req) {
		return
	}

	mined, err := h.service.Mine(gctx.Request.Context(), domain.UserID(req.UserID))
	if err != nil {
		fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Data(gin.H{"mined": mined}))
}

type transferRequest struct {
	From     uint64 `json:"from" binding:"required,min=1"`
	To       uint64 `json:"to" binding:"required,min=1"`
	Amount   string `json:"amount" binding:"required"`
	Currency string `json:"currency" binding:"required,currency"`
}

// Transfer handles http request to move funds between two accounts.
func (h *Handler) Transfer(gctx *gin.Context) {
	var req transferRequest
	if !bindJSON(gctx, &req) {
		return
	}

	amount, ok := parseAmount(gctx, req.Currency, req.Amount)
	if !ok {
		return
	}

	out, err := h.service.Transfer(gctx.Request.Context(), domain.UserID(req.From), domain.UserID(req.To), amount)
	respondOutcome(gctx, out, err)
}

type stakeRequest struct {
	UserID uint64 `json:"user_id" binding:"required,min=1"`
	Amount string `json:"amount" binding:"required"`
}

// Stake handles http request to block Swag.
func (h *Handler) Stake(gctx *gin.Context) {
	var req stakeRequest
	if !bindJSON(gctx, &req) {
		return
	}

	amount, err := currencypkg.ParseSwag(req.Amount)
	if err != nil {
		badRequest(gctx, err)
		return
	}

	out, err := h.service.Stake(gctx.Request.Context(), domain.UserID(req.UserID), amount)
	respondOutcome(gctx, out, err)
}

// Release handles http request to release a matured stake.
func (h *Handler) Release(gctx *gin.Context) {
	var req userRequest
	if !bindJSON(gctx, &req) {
		return
	}

	out, err := h.service.Release(gctx.Request.Context(), domain.UserID(req.UserID))
	respondOutcome(gctx, out, err)
}

type timezoneRequest struct {
	UserID   uint64 `json:"user_id" binding:"required,min=1"`
	Timezone string `json:"timezone" binding:"required,timezone"`
}

// SetTimezone handles http request to change the time zone of an account.
func (h *Handler) SetTimezone(gctx *gin.Context) {
	var req timezoneRequest
	if !bindJSON(gctx, &req) {
		return
	}

	out, err := h.service.SetTimezone(gctx.Request.Context(), domain.UserID(req.UserID), req.Timezone)
	respondOutcome(gctx, out, err)
}
