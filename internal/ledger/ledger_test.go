package ledger

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/currencypkg"
	"github.com/go-petr/swagbank/pkg/jsonpkg"
)

var epoch = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	t   *testing.T
	l   *Ledger
	now time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{t: t, l: New(), now: epoch}
}

func (f *fixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func (f *fixture) block(p domain.Payload) domain.Block {
	f.now = f.now.Add(time.Second)
	return domain.Block{Timestamp: f.now, Issuer: 1, Payload: p}
}

func (f *fixture) append(p domain.Payload) (domain.Outcome, error) {
	return f.l.Append(f.block(p))
}

func (f *fixture) must(p domain.Payload) domain.Outcome {
	f.t.Helper()

	out, err := f.append(p)
	require.NoError(f.t, err)

	return out
}

func (f *fixture) account(id domain.UserID, tz string) {
	f.t.Helper()
	f.must(domain.AccountCreation{User: id, Timezone: tz})
}

func (f *fixture) funded(id domain.UserID, n int64) {
	f.t.Helper()
	f.account(id, "UTC")

	if n > 0 {
		f.must(domain.EventGiveaway{User: id, Amount: swag(n)})
	}
}

func (f *fixture) user(id domain.UserID) domain.PersonalAccount {
	f.t.Helper()

	a, err := f.l.Personal(id)
	require.NoError(f.t, err)

	return a
}

func (f *fixture) swagOf(id domain.UserID) string {
	f.t.Helper()
	return f.user(id).SwagBalance.String()
}

func swag(n int64) currencypkg.Amount {
	return currencypkg.SwagAmount(currencypkg.MustSwag(n))
}

func style(s string) currencypkg.Amount {
	return currencypkg.StyleAmount(currencypkg.MustStyle(s))
}

// encodeState renders the registry in a comparable form.
func encodeState(t *testing.T, r *Registry) string {
	t.Helper()

	data, err := jsonpkg.Marshal(struct {
		Users     []domain.PersonalAccount
		Cagnottes []domain.CagnotteAccount
	}{r.Users(), r.Cagnottes()})
	require.NoError(t, err)

	return string(data)
}

func TestAppendOrdering(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.account(1, "UTC")

	head, ok := f.l.Head()
	require.True(t, ok)

	testCases := []struct {
		name      string
		block     domain.Block
		wantError error
	}{
		{
			name:      "BeforeHead",
			block:     domain.Block{Timestamp: head.Timestamp.Add(-time.Millisecond), Issuer: 1, Payload: domain.NewDay{}},
			wantError: domain.ErrNonMonotonic,
		},
		{
			name:      "SameIdentity",
			block:     domain.Block{Timestamp: head.Timestamp, Issuer: head.Issuer, Payload: domain.NewDay{}},
			wantError: domain.ErrDuplicateBlock,
		},
		{
			name:      "NoPayload",
			block:     domain.Block{Timestamp: head.Timestamp.Add(time.Second), Issuer: 1},
			wantError: domain.ErrUnknownBlockKind,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			_, err := f.l.Append(tc.block)
			require.ErrorIs(t, err, tc.wantError)
			require.Equal(t, 1, f.l.Len())
		})
	}

	// Same timestamp, different issuer is accepted.
	_, err := f.l.Append(domain.Block{Timestamp: head.Timestamp, Issuer: 2, Payload: domain.NewDay{}})
	require.NoError(t, err)
	require.Equal(t, 2, f.l.Len())
}

func TestAppendRejectedLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.funded(1, 100)
	f.funded(2, 0)

	out := f.must(domain.Transfer{From: 1, To: 2, Amount: swag(30)})
	require.ElementsMatch(t, []domain.Address{domain.UserAddress(1), domain.UserAddress(2)}, out.Touched)
	require.Equal(t, "70", f.swagOf(1))
	require.Equal(t, "30", f.swagOf(2))

	before := encodeState(t, f.l.Registry())
	n := f.l.Len()

	_, err := f.append(domain.Transfer{From: 1, To: 2, Amount: swag(80)})
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	var ib *domain.InsufficientBalanceError
	require.ErrorAs(t, err, &ib)
	require.Equal(t, domain.SwagField, ib.Field)

	require.Equal(t, before, encodeState(t, f.l.Registry()))
	require.Equal(t, n, f.l.Len())
}

func TestAppendWithCommitFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.funded(1, 10)

	before := encodeState(t, f.l.Registry())
	boom := errors.New("disk full")

	_, err := f.l.AppendWith(f.block(domain.EventGiveaway{User: 1, Amount: swag(5)}), func(domain.Block) error {
		return boom
	})
	require.ErrorIs(t, err, ErrCommit)
	require.ErrorIs(t, err, boom)
	require.Equal(t, before, encodeState(t, f.l.Registry()))

	var committed []domain.Block

	_, err = f.l.AppendWith(f.block(domain.EventGiveaway{User: 1, Amount: swag(5)}), func(b domain.Block) error {
		committed = append(committed, b)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, committed, 1)
	require.Equal(t, "15", f.swagOf(1))
}

func TestRemoveIsInverseOfAppend(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.funded(1, 100)
	f.funded(2, 50)
	f.funded(3, 10)

	before := encodeState(t, f.l.Registry())

	out := f.must(domain.Transfer{From: 1, To: 2, Amount: swag(40)})
	f.must(domain.Transfer{From: 3, To: 3, Amount: swag(1)})
	third := f.l.Blocks()[f.l.Len()-1]

	require.NoError(t, f.l.Remove(third.ID()))
	require.NoError(t, f.l.Remove(out.Block.ID()))

	require.Equal(t, before, encodeState(t, f.l.Registry()))
	require.Equal(t, "10", f.swagOf(3))

	require.ErrorIs(t, f.l.Remove(out.Block.ID()), domain.ErrBlockNotFound)
}

func TestRemoveKeepsCagnotteIDs(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.funded(1, 100)

	first := f.must(domain.CagnotteCreation{Creator: 1, Name: "A", Currency: currencypkg.SWAG})
	f.must(domain.CagnotteCreation{Creator: 1, Name: "B", Currency: currencypkg.SWAG})
	f.must(domain.CagnotteCreation{Creator: 1, Name: "C", Currency: currencypkg.SWAG})
	f.must(domain.CagnotteContribution{User: 1, Cagnotte: 2, Amount: swag(40)})

	require.Equal(t, domain.CagnotteCreation{ID: 1, Creator: 1, Name: "A", Currency: currencypkg.SWAG}, first.Block.Payload)
	require.Equal(t, first.Block, f.l.Blocks()[2])

	require.NoError(t, f.l.Remove(first.Block.ID()))

	_, err := f.l.Cagnotte(1)
	require.ErrorIs(t, err, domain.ErrCagnotteNotFound)

	b, err := f.l.Cagnotte(2)
	require.NoError(t, err)
	require.Equal(t, "B", b.Name)
	require.Equal(t, "40 SWAG", b.Balance.String())

	c, err := f.l.Cagnotte(3)
	require.NoError(t, err)
	require.Equal(t, "C", c.Name)
	require.True(t, c.Balance.IsZero())

	// The contribution to B keeps B's creation from being removed.
	second := f.l.Blocks()[2]
	require.Equal(t, domain.KindCagnotteCreation, second.Kind())

	err = f.l.Remove(second.ID())
	require.ErrorIs(t, err, domain.ErrCagnotteNotFound)
}

func TestCagnotteCreationRejectsTakenID(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.funded(1, 0)
	f.must(domain.CagnotteCreation{ID: 5, Creator: 1, Name: "A", Currency: currencypkg.SWAG})
	f.must(domain.CagnotteDestruction{Requester: 1, Cagnotte: 5})

	_, err := f.append(domain.CagnotteCreation{ID: 5, Creator: 1, Name: "B", Currency: currencypkg.SWAG})
	require.ErrorIs(t, err, domain.ErrCagnotteAlreadyExists)

	out := f.must(domain.CagnotteCreation{Creator: 1, Name: "B", Currency: currencypkg.SWAG})
	require.Equal(t, domain.CagnotteID(6), out.CagnotteID)
}

func TestRemoveBreakingRemainderIsRejected(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.funded(1, 0)
	f.funded(2, 0)

	gift := f.must(domain.EventGiveaway{User: 1, Amount: swag(20)})
	f.must(domain.Transfer{From: 1, To: 2, Amount: swag(20)})

	before := encodeState(t, f.l.Registry())
	n := f.l.Len()

	err := f.l.Remove(gift.Block.ID())
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
	require.Equal(t, before, encodeState(t, f.l.Registry()))
	require.Equal(t, n, f.l.Len())
}

func TestReplayIsDeterministic(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.funded(1, 500)
	f.funded(2, 20)
	f.must(domain.SwagBlocking{User: 1, Amount: currencypkg.MustSwag(200), Days: 2})
	f.must(domain.CagnotteCreation{Creator: 2, Name: "pot", Currency: currencypkg.SWAG})
	f.must(domain.CagnotteContribution{User: 2, Cagnotte: 1, Amount: swag(20)})
	f.advance(30 * time.Hour)
	f.must(domain.NewDay{})
	f.must(domain.Looting{Owner: 2, Charge: 77})

	replayed, err := Replay(f.l.Blocks())
	require.NoError(t, err)
	require.Equal(t, encodeState(t, f.l.Registry()), encodeState(t, replayed.Registry()))

	again, err := Replay(replayed.Blocks())
	require.NoError(t, err)
	require.Equal(t, encodeState(t, replayed.Registry()), encodeState(t, again.Registry()))
}

func TestReplayFailsOnInvalidBlock(t *testing.T) {
	t.Parallel()

	blocks := []domain.Block{
		{Timestamp: epoch, Issuer: 1, Payload: domain.AccountCreation{User: 1, Timezone: "UTC"}},
		{Timestamp: epoch.Add(time.Second), Issuer: 1, Payload: domain.Mining{User: 2, Amount: currencypkg.MustSwag(1)}},
	}

	_, err := Replay(blocks)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = Replay([]domain.Block{blocks[0], {Timestamp: epoch.Add(-time.Second), Issuer: 1, Payload: domain.NewDay{}}})
	require.ErrorIs(t, err, domain.ErrNonMonotonic)
}

func TestHistory(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.funded(1, 100)
	f.funded(2, 0)
	f.funded(3, 0)
	f.must(domain.Transfer{From: 1, To: 2, Amount: swag(10)})
	f.must(domain.Transfer{From: 1, To: 3, Amount: swag(10)})

	kinds := func(a domain.Address) []domain.BlockKind {
		var out []domain.BlockKind
		for b := range f.l.History(a) {
			out = append(out, b.Kind())
		}

		return out
	}

	seq := f.l.History(domain.UserAddress(2))
	first := slices.Collect(seq)
	require.Equal(t, []domain.BlockKind{domain.KindAccountCreation, domain.KindTransfer}, kinds(domain.UserAddress(2)))
	require.Equal(t, []domain.BlockKind{
		domain.KindAccountCreation, domain.KindEventGiveaway, domain.KindTransfer, domain.KindTransfer,
	}, kinds(domain.UserAddress(1)))

	// The same sequence can be iterated again and reflects later appends.
	f.must(domain.Transfer{From: 1, To: 2, Amount: swag(1)})
	require.Len(t, slices.Collect(seq), len(first)+1)

	// Early exit.
	for range f.l.History(domain.UserAddress(1)) {
		break
	}

	require.Empty(t, kinds(domain.UserAddress(99)))
}
