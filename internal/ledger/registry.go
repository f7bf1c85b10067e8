package ledger

import (
	"maps"
	"slices"

	"github.com/go-petr/swagbank/internal/domain"
)

type powerKey struct {
	owner domain.UserID
	kind  domain.PowerKind
}

// Registry is the state derived from executing blocks in order.
//
// Accounts live in id-keyed maps; the order slices keep creation order so
// that every iteration is deterministic.
type Registry struct {
	users         map[domain.UserID]*domain.PersonalAccount
	userOrder     []domain.UserID
	cagnottes     map[domain.CagnotteID]*domain.CagnotteAccount
	cagnotteOrder []domain.CagnotteID
	guilds        map[domain.GuildID]*domain.Guild
	powers        map[powerKey]*domain.PowerState
	assets        map[string]string

	touched []domain.Address
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		users:     make(map[domain.UserID]*domain.PersonalAccount),
		cagnottes: make(map[domain.CagnotteID]*domain.CagnotteAccount),
		guilds:    make(map[domain.GuildID]*domain.Guild),
		powers:    make(map[powerKey]*domain.PowerState),
		assets:    make(map[string]string),
	}
}

// Clone returns a deep copy of r.
func (r *Registry) Clone() *Registry {
	c := &Registry{
		users:         make(map[domain.UserID]*domain.PersonalAccount, len(r.users)),
		userOrder:     slices.Clip(r.userOrder),
		cagnottes:     make(map[domain.CagnotteID]*domain.CagnotteAccount, len(r.cagnottes)),
		cagnotteOrder: slices.Clip(r.cagnotteOrder),
		guilds:        make(map[domain.GuildID]*domain.Guild, len(r.guilds)),
		powers:        make(map[powerKey]*domain.PowerState, len(r.powers)),
		assets:        maps.Clone(r.assets),
	}

	for id, a := range r.users {
		c.users[id] = a.Clone()
	}

	for id, a := range r.cagnottes {
		c.cagnottes[id] = a.Clone()
	}

	for id, g := range r.guilds {
		v := *g
		c.guilds[id] = &v
	}

	for k, p := range r.powers {
		v := *p
		c.powers[k] = &v
	}

	return c
}

// touch records that the block being executed changed a.
func (r *Registry) touch(a domain.Address) {
	if !slices.Contains(r.touched, a) {
		r.touched = append(r.touched, a)
	}
}

// user returns the account of id for mutation.
func (r *Registry) user(id domain.UserID) (*domain.PersonalAccount, error) {
	a, ok := r.users[id]
	if !ok {
		return nil, domain.NotFound(domain.UserAddress(id))
	}

	r.touch(a.Address())

	return a, nil
}

// cagnotte returns the active cagnotte id for mutation.
func (r *Registry) cagnotte(id domain.CagnotteID) (*domain.CagnotteAccount, error) {
	if id == 0 {
		return nil, domain.ErrCagnotteUnspecified
	}

	c, ok := r.cagnottes[id]
	if !ok || c.Destroyed {
		return nil, domain.NotFound(domain.CagnotteAddressOf(id))
	}

	r.touch(c.Address())

	return c, nil
}

// managedCagnotte returns the cagnotte id if requester manages it.
func (r *Registry) managedCagnotte(id domain.CagnotteID, requester domain.UserID) (*domain.CagnotteAccount, error) {
	c, err := r.cagnotte(id)
	if err != nil {
		return nil, err
	}

	if !c.IsManager(requester) {
		return nil, domain.ErrNotCagnotteManager
	}

	return c, nil
}

func (r *Registry) guild(id domain.GuildID) *domain.Guild {
	g, ok := r.guilds[id]
	if !ok {
		g = &domain.Guild{ID: id}
		r.guilds[id] = g
	}

	return g
}

func (r *Registry) power(owner domain.UserID, kind domain.PowerKind) *domain.PowerState {
	k := powerKey{owner: owner, kind: kind}

	p, ok := r.powers[k]
	if !ok {
		p = &domain.PowerState{Owner: owner, Kind: kind}
		r.powers[k] = p
	}

	return p
}

// cagnotteNamed returns the active cagnotte called name, if any.
func (r *Registry) cagnotteNamed(name string) (*domain.CagnotteAccount, bool) {
	for _, id := range r.cagnotteOrder {
		if c := r.cagnottes[id]; !c.Destroyed && c.Name == name {
			return c, true
		}
	}

	return nil, false
}

// NextCagnotteID returns the id the next cagnotte creation gets. Ids of
// destroyed cagnottes are never handed out again.
func (r *Registry) NextCagnotteID() domain.CagnotteID {
	var last domain.CagnotteID
	for id := range r.cagnottes {
		last = max(last, id)
	}

	return last + 1
}

// Personal returns a copy of the account of id.
func (r *Registry) Personal(id domain.UserID) (domain.PersonalAccount, bool) {
	a, ok := r.users[id]
	if !ok {
		return domain.PersonalAccount{}, false
	}

	return *a.Clone(), true
}

// Cagnotte returns a copy of the active cagnotte id.
func (r *Registry) Cagnotte(id domain.CagnotteID) (domain.CagnotteAccount, bool) {
	c, ok := r.cagnottes[id]
	if !ok || c.Destroyed {
		return domain.CagnotteAccount{}, false
	}

	return *c.Clone(), true
}

// CagnotteByName returns a copy of the active cagnotte called name.
func (r *Registry) CagnotteByName(name string) (domain.CagnotteAccount, bool) {
	c, ok := r.cagnotteNamed(name)
	if !ok {
		return domain.CagnotteAccount{}, false
	}

	return *c.Clone(), true
}

// Guild returns a copy of the settings of id.
func (r *Registry) Guild(id domain.GuildID) (domain.Guild, bool) {
	g, ok := r.guilds[id]
	if !ok {
		return domain.Guild{}, false
	}

	return *g, true
}

// Power returns the bookkeeping of owner's kind power.
func (r *Registry) Power(owner domain.UserID, kind domain.PowerKind) (domain.PowerState, bool) {
	p, ok := r.powers[powerKey{owner: owner, kind: kind}]
	if !ok {
		return domain.PowerState{}, false
	}

	return *p, true
}

// Asset returns the path registered for key.
func (r *Registry) Asset(key string) (string, bool) {
	p, ok := r.assets[key]
	return p, ok
}

// Users returns copies of all personal accounts in creation order.
func (r *Registry) Users() []domain.PersonalAccount {
	out := make([]domain.PersonalAccount, 0, len(r.userOrder))
	for _, id := range r.userOrder {
		out = append(out, *r.users[id].Clone())
	}

	return out
}

// Cagnottes returns copies of all active cagnottes in creation order.
func (r *Registry) Cagnottes() []domain.CagnotteAccount {
	out := make([]domain.CagnotteAccount, 0, len(r.cagnotteOrder))
	for _, id := range r.cagnotteOrder {
		if c := r.cagnottes[id]; !c.Destroyed {
			out = append(out, *c.Clone())
		}
	}

	return out
}

// Ranking returns copies of all personal accounts ordered by Swag then
// Style, richest first. Ties keep creation order.
func (r *Registry) Ranking() []domain.PersonalAccount {
	users := r.Users()

	slices.SortStableFunc(users, func(a, b domain.PersonalAccount) int {
		if c := b.SwagBalance.Cmp(a.SwagBalance); c != 0 {
			return c
		}

		return b.StyleBalance.Cmp(a.StyleBalance)
	})

	return users
}
