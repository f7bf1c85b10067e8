// Package ledger executes blocks against the account registry.
//
// A Ledger is the ordered list of accepted blocks together with the
// registry they produce. Appends are serialized; reads work on an immutable
// snapshot and never wait for a writer.
package ledger

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-petr/swagbank/internal/domain"
)

// ErrCommit wraps the error returned by the commit hook of AppendWith.
var ErrCommit = errors.New("commit block")

type entry struct {
	block   domain.Block
	touched []domain.Address
}

type snapshot struct {
	entries  []entry
	registry *Registry
}

// Ledger is an append-only, replayable block log with its derived registry.
type Ledger struct {
	mu    sync.Mutex
	state atomic.Pointer[snapshot]
}

// New returns an empty ledger.
func New() *Ledger {
	l := &Ledger{}
	l.state.Store(&snapshot{registry: NewRegistry()})

	return l
}

// Replay builds a ledger by executing blocks in order. Blocks come from a
// trusted store, so the first rejected block aborts the replay.
func Replay(blocks []domain.Block) (*Ledger, error) {
	s, err := replay(blocks)
	if err != nil {
		return nil, err
	}

	l := &Ledger{}
	l.state.Store(s)

	return l, nil
}

func replay(blocks []domain.Block) (*snapshot, error) {
	s := &snapshot{registry: NewRegistry(), entries: make([]entry, 0, len(blocks))}

	for i, b := range blocks {
		b = s.registry.number(b)

		if err := s.check(b); err != nil {
			return nil, fmt.Errorf("replay block %d (%s): %w", i, b.ID(), err)
		}

		out, err := s.registry.apply(b)
		if err != nil {
			return nil, fmt.Errorf("replay block %d (%s, %s): %w", i, b.ID(), b.Kind(), err)
		}

		s.entries = append(s.entries, entry{block: b, touched: out.Touched})
	}

	return s, nil
}

// check validates that b can follow the blocks of s.
func (s *snapshot) check(b domain.Block) error {
	if b.Payload == nil {
		return domain.ErrUnknownBlockKind
	}

	if len(s.entries) == 0 {
		return nil
	}

	head := s.entries[len(s.entries)-1].block
	if b.Timestamp.Before(head.Timestamp) {
		return domain.ErrNonMonotonic
	}

	id := b.ID()
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i].block
		if e.Timestamp.Before(b.Timestamp) {
			break
		}

		if e.ID().Equal(id) {
			return domain.ErrDuplicateBlock
		}
	}

	return nil
}

// Append executes b and adds it to the ledger. On error the ledger is unchanged.
// A cagnotte creation without an id gets the next free one; the returned
// Outcome.Block is the block as stored.
func (l *Ledger) Append(b domain.Block) (domain.Outcome, error) {
	return l.AppendWith(b, nil)
}

// AppendWith is like Append but calls commit after b executed successfully
// and before the new state becomes visible. A commit error discards b and is
// returned wrapped in ErrCommit.
func (l *Ledger) AppendWith(b domain.Block, commit func(domain.Block) error) (domain.Outcome, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cur := l.state.Load()

	b = cur.registry.number(b)
	if err := cur.check(b); err != nil {
		return domain.Outcome{}, err
	}

	next := cur.registry.Clone()

	out, err := next.apply(b)
	if err != nil {
		return domain.Outcome{}, err
	}

	if commit != nil {
		if err := commit(b); err != nil {
			return domain.Outcome{}, fmt.Errorf("%w: %w", ErrCommit, err)
		}
	}

	l.state.Store(&snapshot{
		entries:  append(cur.entries, entry{block: b, touched: out.Touched}),
		registry: next,
	})

	return out, nil
}

// Remove deletes the block id and rebuilds the registry from the remaining
// blocks. If the remaining blocks no longer replay, the ledger is unchanged
// and the replay error is returned.
func (l *Ledger) Remove(id domain.BlockID) error {
	return l.RemoveWith(id, nil)
}

// RemoveWith is like Remove but calls commit once the remaining blocks
// replayed and before the new state becomes visible.
func (l *Ledger) RemoveWith(id domain.BlockID, commit func(domain.BlockID) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	cur := l.state.Load()

	i := slices.IndexFunc(cur.entries, func(e entry) bool { return e.block.ID().Equal(id) })
	if i < 0 {
		return domain.ErrBlockNotFound
	}

	rest := make([]domain.Block, 0, len(cur.entries)-1)
	for j, e := range cur.entries {
		if j != i {
			rest = append(rest, e.block)
		}
	}

	next, err := replay(rest)
	if err != nil {
		return err
	}

	if commit != nil {
		if err := commit(id); err != nil {
			return fmt.Errorf("%w: %w", ErrCommit, err)
		}
	}

	l.state.Store(next)

	return nil
}

// Len returns the number of blocks in the ledger.
func (l *Ledger) Len() int {
	return len(l.state.Load().entries)
}

// Head returns the latest block, if any.
func (l *Ledger) Head() (domain.Block, bool) {
	s := l.state.Load()
	if len(s.entries) == 0 {
		return domain.Block{}, false
	}

	return s.entries[len(s.entries)-1].block, true
}

// Latest returns the timestamp of the latest block, or the zero time.
func (l *Ledger) Latest() time.Time {
	b, _ := l.Head()
	return b.Timestamp
}

// Blocks returns the blocks in ledger order.
func (l *Ledger) Blocks() []domain.Block {
	s := l.state.Load()

	out := make([]domain.Block, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.block
	}

	return out
}

// History yields, oldest first, the blocks whose execution touched a. Each
// iteration reads the ledger as it is when the iteration starts.
func (l *Ledger) History(a domain.Address) iter.Seq[domain.Block] {
	return func(yield func(domain.Block) bool) {
		for _, e := range l.state.Load().entries {
			if slices.Contains(e.touched, a) && !yield(e.block) {
				return
			}
		}
	}
}

// Registry returns the current registry. It must not be mutated.
func (l *Ledger) Registry() *Registry {
	return l.state.Load().registry
}

// Personal returns the account of id.
func (l *Ledger) Personal(id domain.UserID) (domain.PersonalAccount, error) {
	a, ok := l.Registry().Personal(id)
	if !ok {
		return domain.PersonalAccount{}, domain.NotFound(domain.UserAddress(id))
	}

	return a, nil
}

// AccountInfo returns the account of id with PendingStyle set to the Style
// its stake has accrued as of at.
func (l *Ledger) AccountInfo(id domain.UserID, at time.Time) (domain.PersonalAccount, error) {
	a, err := l.Personal(id)
	if err != nil {
		return domain.PersonalAccount{}, err
	}

	a.PendingStyle = accruedStyle(&a, at)

	return a, nil
}

// Cagnotte returns the active cagnotte id.
func (l *Ledger) Cagnotte(id domain.CagnotteID) (domain.CagnotteAccount, error) {
	if id == 0 {
		return domain.CagnotteAccount{}, domain.ErrCagnotteUnspecified
	}

	c, ok := l.Registry().Cagnotte(id)
	if !ok {
		return domain.CagnotteAccount{}, domain.NotFound(domain.CagnotteAddressOf(id))
	}

	return c, nil
}
