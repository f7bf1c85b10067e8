package ledgerservice

import (
	"context"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/currencypkg"
)

// CreateCagnotte opens a cagnotte managed by creator.
func (s *Service) CreateCagnotte(ctx context.Context, creator domain.UserID, name string, currency currencypkg.Kind) (domain.CagnotteAccount, error) {
	out, err := s.submit(ctx, creator, domain.CagnotteCreation{Creator: creator, Name: name, Currency: currency})
	if err != nil {
		return domain.CagnotteAccount{}, err
	}

	return s.ledger.Load().Cagnotte(out.CagnotteID)
}

// Contribute moves amount from user to the cagnotte.
func (s *Service) Contribute(ctx context.Context, user domain.UserID, cagnotte domain.CagnotteID, amount currencypkg.Amount) (domain.Outcome, error) {
	return s.submit(ctx, user, domain.CagnotteContribution{User: user, Cagnotte: cagnotte, Amount: amount})
}

// Disburse pays amount from the cagnotte to recipient.
func (s *Service) Disburse(ctx context.Context, requester domain.UserID, cagnotte domain.CagnotteID, recipient domain.UserID, amount currencypkg.Amount) (domain.Outcome, error) {
	return s.submit(ctx, requester, domain.CagnotteDisbursement{
		Requester: requester,
		Cagnotte:  cagnotte,
		Recipient: recipient,
		Amount:    amount,
	})
}

// Share splits the cagnotte between participants, or between its recorded
// participants when none are given.
func (s *Service) Share(ctx context.Context, requester domain.UserID, cagnotte domain.CagnotteID, participants []domain.UserID) (domain.Outcome, error) {
	return s.submit(ctx, requester, domain.NewCagnotteShare(requester, cagnotte, participants))
}

// Lottery gives the whole cagnotte to one participant drawn at random.
func (s *Service) Lottery(ctx context.Context, requester domain.UserID, cagnotte domain.CagnotteID, participants []domain.UserID) (domain.Outcome, error) {
	return s.submit(ctx, requester, domain.NewCagnotteLottery(requester, cagnotte, participants, s.opts.Rand.Seed()))
}

// RenameCagnotte changes the name of the cagnotte.
func (s *Service) RenameCagnotte(ctx context.Context, requester domain.UserID, cagnotte domain.CagnotteID, name string) (domain.Outcome, error) {
	return s.submit(ctx, requester, domain.CagnotteRename{Requester: requester, Cagnotte: cagnotte, Name: name})
}

// ResetParticipants forgets who contributed to the cagnotte.
func (s *Service) ResetParticipants(ctx context.Context, requester domain.UserID, cagnotte domain.CagnotteID) (domain.Outcome, error) {
	return s.submit(ctx, requester, domain.CagnotteParticipantsReset{Requester: requester, Cagnotte: cagnotte})
}

// DestroyCagnotte closes an empty cagnotte.
func (s *Service) DestroyCagnotte(ctx context.Context, requester domain.UserID, cagnotte domain.CagnotteID) (domain.Outcome, error) {
	return s.submit(ctx, requester, domain.CagnotteDestruction{Requester: requester, Cagnotte: cagnotte})
}
