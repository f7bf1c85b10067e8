package ledgerdelivery

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/web"
)

// NewDay handles http request to run the daily stake settlement.
func (h *Handler) NewDay(gctx *gin.Context) {
	out, err := h.service.NewDay(gctx.Request.Context())
	respondOutcome(gctx, out, err)
}

type giveawayRequest struct {
	UserID   uint64 `json:"user_id" binding:"required,min=1"`
	Amount   string `json:"amount" binding:"required"`
	Currency string `json:"currency" binding:"required,currency"`
}

// Giveaway handles http request to credit an account from an event.
func (h *Handler) Giveaway(gctx *gin.Context) {
	var req giveawayRequest
	if !bindJSON(gctx, &req) {
		return
	}

	amount, ok := parseAmount(gctx, req.Currency, req.Amount)
	if !ok {
		return
	}

	out, err := h.service.Giveaway(gctx.Request.Context(), domain.UserID(req.UserID), amount)
	respondOutcome(gctx, out, err)
}

type immunityRequest struct {
	Kind   string `json:"kind" binding:"required,oneof=user cagnotte"`
	ID     uint64 `json:"id" binding:"required,min=1"`
	Power  string `json:"power" binding:"required,power"`
	Immune bool   `json:"immune"`
}

// SetImmunity handles http request to grant or revoke a power immunity.
func (h *Handler) SetImmunity(gctx *gin.Context) {
	var req immunityRequest
	if !bindJSON(gctx, &req) {
		return
	}

	target := domain.Address{Kind: domain.AddressKind(req.Kind), ID: req.ID}

	out, err := h.service.SetImmunity(gctx.Request.Context(), target, domain.PowerKind(req.Power), req.Immune)
	respondOutcome(gctx, out, err)
}

type assetRequest struct {
	Key  string `json:"key" binding:"required"`
	Path string `json:"path" binding:"required"`
}

// RegisterAsset handles http request to record an uploaded asset.
func (h *Handler) RegisterAsset(gctx *gin.Context) {
	var req assetRequest
	if !bindJSON(gctx, &req) {
		return
	}

	out, err := h.service.RegisterAsset(gctx.Request.Context(), req.Key, req.Path)
	respondOutcome(gctx, out, err)
}

type guildTimezoneRequest struct {
	Timezone string `json:"timezone" binding:"required,timezone"`
}

// SetGuildTimezone handles http request to change a guild default time zone.
func (h *Handler) SetGuildTimezone(gctx *gin.Context) {
	var uri idURI
	if !bindURI(gctx, &uri) {
		return
	}

	var req guildTimezoneRequest
	if !bindJSON(gctx, &req) {
		return
	}

	out, err := h.service.SetGuildTimezone(gctx.Request.Context(), domain.GuildID(uri.ID), req.Timezone)
	respondOutcome(gctx, out, err)
}

type channelRequest struct {
	ChannelID uint64 `json:"channel_id" binding:"required,min=1"`
}

// SetSystemChannel handles http request to change a guild system channel.
func (h *Handler) SetSystemChannel(gctx *gin.Context) {
	var uri idURI
	if !bindURI(gctx, &uri) {
		return
	}

	var req channelRequest
	if !bindJSON(gctx, &req) {
		return
	}

	out, err := h.service.SetSystemChannel(gctx.Request.Context(), domain.GuildID(uri.ID), domain.ChannelID(req.ChannelID))
	respondOutcome(gctx, out, err)
}

// SetForbesChannel handles http request to change a guild ranking channel.
func (h *Handler) SetForbesChannel(gctx *gin.Context) {
	var uri idURI
	if !bindURI(gctx, &uri) {
		return
	}

	var req channelRequest
	if !bindJSON(gctx, &req) {
		return
	}

	out, err := h.service.SetForbesChannel(gctx.Request.Context(), domain.GuildID(uri.ID), domain.ChannelID(req.ChannelID))
	respondOutcome(gctx, out, err)
}

type removeBlockRequest struct {
	Timestamp time.Time `json:"timestamp" binding:"required"`
	Issuer    uint64    `json:"issuer" binding:"required,min=1"`
}

// RemoveBlock handles http request to delete a block from the ledger.
func (h *Handler) RemoveBlock(gctx *gin.Context) {
	var req removeBlockRequest
	if !bindJSON(gctx, &req) {
		return
	}

	id := domain.BlockID{Timestamp: req.Timestamp.UTC(), Issuer: domain.UserID(req.Issuer)}

	if err := h.service.Remove(gctx.Request.Context(), id); err != nil {
		fail(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Data(gin.H{"removed": id}))
}
