package ledger

import (
	"math/rand"
	"slices"
	"strings"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/currencypkg"
)

func (r *Registry) execCagnotteCreation(p domain.CagnotteCreation) (domain.CagnotteID, error) {
	if p.ID == 0 || strings.TrimSpace(p.Name) == "" {
		return 0, domain.ErrCagnotteUnspecified
	}

	if !currencypkg.IsSupportedCurrency(string(p.Currency)) {
		return 0, currencypkg.ErrUnsupportedCurrency
	}

	if _, err := r.user(p.Creator); err != nil {
		return 0, err
	}

	// Destroyed cagnottes keep their id.
	if _, ok := r.cagnottes[p.ID]; ok {
		return 0, domain.ErrCagnotteAlreadyExists
	}

	if _, ok := r.cagnotteNamed(p.Name); ok {
		return 0, domain.ErrCagnotteNameAlreadyExists
	}

	c := &domain.CagnotteAccount{
		ID:       p.ID,
		Name:     p.Name,
		Currency: p.Currency,
		Balance:  currencypkg.ZeroAmount(p.Currency),
		Managers: []domain.UserID{p.Creator},
	}

	r.cagnottes[c.ID] = c
	r.cagnotteOrder = append(r.cagnotteOrder, c.ID)
	r.touch(c.Address())

	return c.ID, nil
}

func (r *Registry) execCagnotteContribution(p domain.CagnotteContribution) error {
	if err := requirePositive(p.Amount); err != nil {
		return err
	}

	c, err := r.cagnotte(p.Cagnotte)
	if err != nil {
		return err
	}

	if p.Amount.Kind() != c.Currency {
		return domain.ErrCurrencyMismatch
	}

	a, err := r.user(p.User)
	if err != nil {
		return err
	}

	if err := a.Debit(p.Amount); err != nil {
		return err
	}

	if err := c.Credit(p.Amount); err != nil {
		return err
	}

	c.AddParticipant(p.User)

	return nil
}

func (r *Registry) execCagnotteDisbursement(p domain.CagnotteDisbursement) error {
	if err := requirePositive(p.Amount); err != nil {
		return err
	}

	c, err := r.managedCagnotte(p.Cagnotte, p.Requester)
	if err != nil {
		return err
	}

	to, err := r.user(p.Recipient)
	if err != nil {
		return err
	}

	if err := c.Debit(p.Amount); err != nil {
		return err
	}

	return to.Credit(p.Amount)
}

// participants resolves the accounts a cagnotte payout goes to: the given
// list, or the recorded participants when it is empty, deduplicated in
// first-seen order.
func (r *Registry) participants(c *domain.CagnotteAccount, given []domain.UserID) ([]*domain.PersonalAccount, error) {
	ids := given
	if len(ids) == 0 {
		ids = c.Participants
	}

	seen := make(map[domain.UserID]struct{}, len(ids))
	out := make([]*domain.PersonalAccount, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}

		a, err := r.user(id)
		if err != nil {
			return nil, err
		}

		out = append(out, a)
	}

	if len(out) == 0 {
		return nil, domain.ErrCagnotteUnspecified
	}

	return out, nil
}

func (r *Registry) execCagnotteShare(p domain.CagnotteShare) (*domain.ShareResult, error) {
	c, err := r.managedCagnotte(p.Cagnotte, p.Requester)
	if err != nil {
		return nil, err
	}

	parts, err := r.participants(c, p.Participants)
	if err != nil {
		return nil, err
	}

	share, rest := c.Balance.Split(uint64(len(parts)))
	res := &domain.ShareResult{Share: share, Remainder: rest}

	for _, a := range parts {
		if err := a.Credit(share); err != nil {
			return nil, err
		}

		res.Participants = append(res.Participants, a.ID)
	}

	if !rest.IsZero() {
		lucky := parts[0]
		if i := slices.Index(res.Participants, p.Requester); i >= 0 {
			lucky = parts[i]
		}

		if err := lucky.Credit(rest); err != nil {
			return nil, err
		}

		res.RemainderRecipient = lucky.ID
	}

	c.Balance = currencypkg.ZeroAmount(c.Currency)

	return res, nil
}

func (r *Registry) execCagnotteLottery(p domain.CagnotteLottery) (*domain.LotteryResult, error) {
	c, err := r.managedCagnotte(p.Cagnotte, p.Requester)
	if err != nil {
		return nil, err
	}

	ids := p.Participants
	if len(ids) == 0 {
		ids = c.Participants
	}

	ids = dedup(ids)
	if len(ids) == 0 {
		return nil, domain.ErrCagnotteUnspecified
	}

	// The seed is drawn when the block is issued.
	winner := ids[rand.New(rand.NewSource(p.Seed)).Intn(len(ids))]

	a, err := r.user(winner)
	if err != nil {
		return nil, err
	}

	prize := c.Balance
	if err := a.Credit(prize); err != nil {
		return nil, err
	}

	c.Balance = currencypkg.ZeroAmount(c.Currency)

	return &domain.LotteryResult{Winner: winner, Amount: prize}, nil
}

func (r *Registry) execCagnotteRename(p domain.CagnotteRename) error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.ErrCagnotteUnspecified
	}

	c, err := r.managedCagnotte(p.Cagnotte, p.Requester)
	if err != nil {
		return err
	}

	if other, ok := r.cagnotteNamed(p.Name); ok && other.ID != c.ID {
		return domain.ErrCagnotteNameAlreadyExists
	}

	c.Name = p.Name

	return nil
}

func (r *Registry) execCagnotteReset(p domain.CagnotteParticipantsReset) error {
	c, err := r.managedCagnotte(p.Cagnotte, p.Requester)
	if err != nil {
		return err
	}

	c.Participants = nil

	return nil
}

func (r *Registry) execCagnotteDestruction(p domain.CagnotteDestruction) error {
	c, err := r.managedCagnotte(p.Cagnotte, p.Requester)
	if err != nil {
		return err
	}

	if !c.Balance.IsZero() {
		return domain.ErrCagnotteDestructionForbidden
	}

	c.Destroyed = true

	return nil
}

func dedup(ids []domain.UserID) []domain.UserID {
	out := make([]domain.UserID, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}

	return out
}
