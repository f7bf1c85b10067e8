package ledgerdelivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/currencypkg"
	"github.com/go-petr/swagbank/pkg/web"
)

type createCagnotteRequest struct {
	UserID   uint64 `json:"user_id" binding:"required,min=1"`
	Name     string `json:"name" binding:"required"`
	Currency string `json:"currency" binding:"required,currency"`
}

// CreateCagnotte handles http request to open a cagnotte.
func (h *Handler) CreateCagnotte(gctx *gin.Context) {
	var req createCagnotteRequest
	if !bindJSON(gctx, &req) {
		return
	}

	c, err := h.service.CreateCagnotte(gctx.Request.Context(), domain.UserID(req.UserID), req.Name, currencypkg.Kind(req.Currency))
	if err != nil {
		fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Data(gin.H{"cagnotte": newCagnotteView(c)}))
}

// GetCagnotte handles http request to get a cagnotte.
func (h *Handler) GetCagnotte(gctx *gin.Context) {
	var uri idURI
	if !bindURI(gctx, &uri) {
		return
	}

	c, err := h.service.Cagnotte(gctx.Request.Context(), domain.CagnotteID(uri.ID))
	if err != nil {
		fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Data(gin.H{"cagnotte": newCagnotteView(c)}))
}

// CagnotteHistory handles http request to list the blocks of a cagnotte,
// newest first.
func (h *Handler) CagnotteHistory(gctx *gin.Context) {
	var uri idURI
	if !bindURI(gctx, &uri) {
		return
	}

	h.history(gctx, domain.CagnotteAddressOf(domain.CagnotteID(uri.ID)))
}

type contributionRequest struct {
	UserID   uint64 `json:"user_id" binding:"required,min=1"`
	Amount   string `json:"amount" binding:"required"`
	Currency string `json:"currency" binding:"required,currency"`
}

// Contribute handles http request to pay into a cagnotte.
func (h *Handler) Contribute(gctx *gin.Context) {
	var uri idURI
	if !bindURI(gctx, &uri) {
		return
	}

	var req contributionRequest
	if !bindJSON(gctx, &req) {
		return
	}

	amount, ok := parseAmount(gctx, req.Currency, req.Amount)
	if !ok {
		return
	}

	out, err := h.service.Contribute(gctx.Request.Context(), domain.UserID(req.UserID), domain.CagnotteID(uri.ID), amount)
	respondOutcome(gctx, out, err)
}

type disbursementRequest struct {
	UserID    uint64 `json:"user_id" binding:"required,min=1"`
	Recipient uint64 `json:"recipient" binding:"required,min=1"`
	Amount    string `json:"amount" binding:"required"`
	Currency  string `json:"currency" binding:"required,currency"`
}

// Disburse handles http request from a manager to pay out of a cagnotte.
func (h *Handler) Disburse(gctx *gin.Context) {
	var uri idURI
	if !bindURI(gctx, &uri) {
		return
	}

	var req disbursementRequest
	if !bindJSON(gctx, &req) {
		return
	}

	amount, ok := parseAmount(gctx, req.Currency, req.Amount)
	if !ok {
		return
	}

	out, err := h.service.Disburse(gctx.Request.Context(), domain.UserID(req.UserID), domain.CagnotteID(uri.ID), domain.UserID(req.Recipient), amount)
	respondOutcome(gctx, out, err)
}

type participantsRequest struct {
	UserID       uint64   `json:"user_id" binding:"required,min=1"`
	Participants []uint64 `json:"participants" binding:"omitempty,dive,min=1"`
}

// Share handles http request to split a cagnotte between participants.
func (h *Handler) Share(gctx *gin.Context) {
	var uri idURI
	if !bindURI(gctx, &uri) {
		return
	}

	var req participantsRequest
	if !bindJSON(gctx, &req) {
		return
	}

	out, err := h.service.Share(gctx.Request.Context(), domain.UserID(req.UserID), domain.CagnotteID(uri.ID), userIDs(req.Participants))
	respondOutcome(gctx, out, err)
}

// Lottery handles http request to give a cagnotte to one participant.
func (h *Handler) Lottery(gctx *gin.Context) {
	var uri idURI
	if !bindURI(gctx, &uri) {
		return
	}

	var req participantsRequest
	if !bindJSON(gctx, &req) {
		return
	}

	out, err := h.service.Lottery(gctx.Request.Context(), domain.UserID(req.UserID), domain.CagnotteID(uri.ID), userIDs(req.Participants))
	respondOutcome(gctx, out, err)
}

type renameRequest struct {
	UserID uint64 `json:"user_id" binding:"required,min=1"`
	Name   string `json:"name" binding:"required"`
}

// RenameCagnotte handles http request to rename a cagnotte.
func (h *Handler) RenameCagnotte(gctx *gin.Context) {
	var uri idURI
	if !bindURI(gctx, &uri) {
		return
	}

	var req renameRequest
	if !bindJSON(gctx, &req) {
		return
	}

	out, err := h.service.RenameCagnotte(gctx.Request.Context(), domain.UserID(req.UserID), domain.CagnotteID(uri.ID), req.Name)
	respondOutcome(gctx, out, err)
}

// ResetParticipants handles http request to clear the participants of a
// cagnotte.
func (h *Handler) ResetParticipants(gctx *gin.Context) {
	var uri idURI
	if !bindURI(gctx, &uri) {
		return
	}

	var req userRequest
	if !bindJSON(gctx, &req) {
		return
	}

	out, err := h.service.ResetParticipants(gctx.Request.Context(), domain.UserID(req.UserID), domain.CagnotteID(uri.ID))
	respondOutcome(gctx, out, err)
}

type requesterQuery struct {
	UserID uint64 `form:"user_id" binding:"required,min=1"`
}

// DestroyCagnotte handles http request to close an empty cagnotte.
func (h *Handler) DestroyCagnotte(gctx *gin.Context) {
	var uri idURI
	if !bindURI(gctx, &uri) {
		return
	}

	var q requesterQuery
	if !bindQuery(gctx, &q) {
		return
	}

	out, err := h.service.DestroyCagnotte(gctx.Request.Context(), domain.UserID(q.UserID), domain.CagnotteID(uri.ID))
	respondOutcome(gctx, out, err)
}
