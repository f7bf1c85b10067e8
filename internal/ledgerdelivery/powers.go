package ledgerdelivery

import (
	"github.com/gin-gonic/gin"

	"github.com/go-petr/swagbank/internal/domain"
)

type powerRequest struct {
	UserID uint64 `json:"user_id" binding:"required,min=1"`
	Charge uint64 `json:"charge"`
}

func (h *Handler) activate(gctx *gin.Context, kind domain.PowerKind) {
	var req powerRequest
	if !bindJSON(gctx, &req) {
		return
	}

	ctx := gctx.Request.Context()
	owner := domain.UserID(req.UserID)

	var (
		out domain.Outcome
		err error
	)

	switch kind {
	case domain.PowerLooting:
		out, err = h.service.Loot(ctx, owner, req.Charge)
	case domain.PowerFiredamp:
		out, err = h.service.Firedamp(ctx, owner, req.Charge)
	case domain.PowerTaxEvasion:
		out, err = h.service.TaxEvasion(ctx, owner, req.Charge)
	}

	respondOutcome(gctx, out, err)
}

// Loot handles http request to activate the looting power.
func (h *Handler) Loot(gctx *gin.Context) {
	h.activate(gctx, domain.PowerLooting)
}

// Firedamp handles http request to activate the firedamp power.
func (h *Handler) Firedamp(gctx *gin.Context) {
	h.activate(gctx, domain.PowerFiredamp)
}

// TaxEvasion handles http request to activate the tax evasion power.
func (h *Handler) TaxEvasion(gctx *gin.Context) {
	h.activate(gctx, domain.PowerTaxEvasion)
}
