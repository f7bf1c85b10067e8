package ledgerdelivery

import "github.com/gin-gonic/gin"

// Register mounts the ledger routes. Reads go on public; writes and the
// admin routes go on private, which the caller guards with authentication.
func (h *Handler) Register(public, private gin.IRouter) {
	public.GET("/accounts/:id", h.GetAccount)
	public.GET("/accounts/:id/history", h.AccountHistory)
	public.GET("/forbes", h.Forbes)
	public.GET("/cagnottes/:id", h.GetCagnotte)
	public.GET("/cagnottes/:id/history", h.CagnotteHistory)

	private.POST("/accounts", h.CreateAccount)
	private.POST("/mining", h.Mine)
	private.POST("/transfers", h.Transfer)
	private.POST("/stakes", h.Stake)
	private.POST("/stakes/release", h.Release)
	private.PUT("/timezone", h.SetTimezone)

	private.POST("/cagnottes", h.CreateCagnotte)
	private.POST("/cagnottes/:id/contributions", h.Contribute)
	private.POST("/cagnottes/:id/disbursements", h.Disburse)
	private.POST("/cagnottes/:id/share", h.Share)
	private.POST("/cagnottes/:id/lottery", h.Lottery)
	private.PUT("/cagnottes/:id/name", h.RenameCagnotte)
	private.POST("/cagnottes/:id/reset", h.ResetParticipants)
	private.DELETE("/cagnottes/:id", h.DestroyCagnotte)

	private.POST("/powers/looting", h.Loot)
	private.POST("/powers/firedamp", h.Firedamp)
	private.POST("/powers/tax-evasion", h.TaxEvasion)

	admin := private.Group("/admin")
	admin.POST("/new-day", h.NewDay)
	admin.POST("/giveaways", h.Giveaway)
	admin.POST("/immunities", h.SetImmunity)
	admin.POST("/assets", h.RegisterAsset)
	admin.PUT("/guilds/:id/timezone", h.SetGuildTimezone)
	admin.PUT("/guilds/:id/system-channel", h.SetSystemChannel)
	admin.PUT("/guilds/:id/forbes-channel", h.SetForbesChannel)
	admin.DELETE("/blocks", h.RemoveBlock)
}
