package ledgerservice

import (
	"context"

	"github.com/go-petr/swagbank/internal/domain"
)

// Loot activates owner's looting power with charge.
func (s *Service) Loot(ctx context.Context, owner domain.UserID, charge uint64) (domain.Outcome, error) {
	return s.submit(ctx, owner, domain.Looting{Owner: owner, Charge: charge, Sink: s.opts.LootSink})
}

// Firedamp activates owner's firedamp power with charge.
func (s *Service) Firedamp(ctx context.Context, owner domain.UserID, charge uint64) (domain.Outcome, error) {
	return s.submit(ctx, owner, domain.Firedamp{Owner: owner, Charge: charge})
}

// TaxEvasion activates owner's tax evasion power. One mining roll is drawn
// per point of power strength.
func (s *Service) TaxEvasion(ctx context.Context, owner domain.UserID, charge uint64) (domain.Outcome, error) {
	rolls := make([]uint64, domain.Stylog(charge))
	for i := range rolls {
		rolls[i] = s.opts.Rand.Between(s.opts.MiningMin, s.opts.MiningMax)
	}

	return s.submit(ctx, owner, domain.TaxEvasion{Owner: owner, Charge: charge, Rolls: rolls})
}
