// Package ledgerservice turns user requests into blocks, persists them and
// answers queries on the ledger state.
package ledgerservice

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/internal/ledger"
	"github.com/go-petr/swagbank/internal/monitoring"
	"github.com/go-petr/swagbank/pkg/configpkg"
	"github.com/go-petr/swagbank/pkg/errorspkg"
	"github.com/go-petr/swagbank/pkg/randompkg"
)

// Repo provides the block storage needed by the ledger service.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type Repo interface {
	Append(ctx context.Context, b domain.Block) error
	Delete(ctx context.Context, id domain.BlockID) error
	List(ctx context.Context) ([]domain.Block, error)
}

// Rand draws the random inputs recorded into blocks.
type Rand interface {
	Between(min, max uint64) uint64
	Seed() int64
}

// Options configures the constants the service copies into blocks.
type Options struct {
	BotID           domain.UserID
	LootSink        domain.UserID
	BlockingDays    int
	MiningMin       uint64
	MiningMax       uint64
	DefaultTimezone string
	Clock           func() time.Time
	Rand            Rand
}

// OptionsFromConfig builds production options from config.
func OptionsFromConfig(config configpkg.Config) Options {
	return Options{
		BotID:           domain.UserID(config.BotID),
		LootSink:        domain.UserID(config.LootSinkID),
		BlockingDays:    config.BlockingDays,
		MiningMin:       config.MiningMin,
		MiningMax:       config.MiningMax,
		DefaultTimezone: config.DefaultTimezone,
		Clock:           time.Now,
		Rand:            randompkg.Source{},
	}
}

// Service facilitates the ledger service layer logic.
type Service struct {
	repo Repo
	opts Options

	// mu orders timestamping and appending so block timestamps follow the
	// order in which blocks reach the ledger.
	mu     sync.Mutex
	ledger atomic.Pointer[ledger.Ledger]
}

// New returns a service over an empty ledger. Call Restore to load the
// blocks already in repo.
func New(repo Repo, opts Options) *Service {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	if opts.Rand == nil {
		opts.Rand = randompkg.Source{}
	}

	if opts.BlockingDays <= 0 {
		opts.BlockingDays = 1
	}

	s := &Service{repo: repo, opts: opts}
	s.ledger.Store(ledger.New())

	return s
}

// Restore replays every stored block. A block that no longer executes means
// the store is corrupt; the error is returned and the ledger left empty.
func (s *Service) Restore(ctx context.Context) error {
	l := zerolog.Ctx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	blocks, err := s.repo.List(ctx)
	if err != nil {
		l.Error().Err(err).Msg("cannot list blocks")
		return errorspkg.ErrInternal
	}

	start := time.Now()

	restored, err := ledger.Replay(blocks)
	if err != nil {
		l.Error().Err(err).Msg("cannot replay blocks")
		return err
	}

	took := time.Since(start)
	monitoring.RecordReplay(took)
	monitoring.SetLedgerHeight(restored.Len())

	s.ledger.Store(restored)
	l.Info().Int("blocks", restored.Len()).Dur("took", took).Msg("ledger restored")

	return nil
}

// timestamp returns the time of the next block: now, truncated to the
// millisecond and strictly after the latest block.
func (s *Service) timestamp(led *ledger.Ledger) time.Time {
	ts := s.opts.Clock().UTC().Truncate(time.Millisecond)

	if latest := led.Latest(); !ts.After(latest) && !latest.IsZero() {
		ts = latest.Add(time.Millisecond)
	}

	return ts
}

func (s *Service) submit(ctx context.Context, issuer domain.UserID, p domain.Payload) (domain.Outcome, error) {
	l := zerolog.Ctx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	led := s.ledger.Load()
	b := domain.Block{Timestamp: s.timestamp(led), Issuer: issuer, Payload: p}
	start := time.Now()

	out, err := led.AppendWith(b, func(b domain.Block) error {
		return s.repo.Append(ctx, b)
	})
	if err != nil {
		if errors.Is(err, ledger.ErrCommit) {
			l.Error().Err(err).Str("kind", string(b.Kind())).Send()
			monitoring.RecordRejected(b.Kind(), monitoring.RejectedStorage)

			return domain.Outcome{}, errorspkg.ErrInternal
		}

		l.Info().Err(err).Str("kind", string(b.Kind())).Send()
		monitoring.RecordRejected(b.Kind(), monitoring.ReasonOf(err))

		return domain.Outcome{}, err
	}

	monitoring.RecordAppended(b.Kind(), time.Since(start))
	monitoring.SetLedgerHeight(led.Len())

	l.Debug().Str("kind", string(b.Kind())).Stringer("block", b.ID()).Send()

	return out, nil
}

// Remove deletes block id from the ledger and the store.
func (s *Service) Remove(ctx context.Context, id domain.BlockID) error {
	l := zerolog.Ctx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	led := s.ledger.Load()

	err := led.RemoveWith(id, func(id domain.BlockID) error {
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, ledger.ErrCommit) {
			l.Error().Err(err).Send()
			return errorspkg.ErrInternal
		}

		l.Info().Err(err).Stringer("block", id).Send()

		return err
	}

	monitoring.SetLedgerHeight(led.Len())
	l.Info().Stringer("block", id).Msg("block removed")

	return nil
}

// Blocks returns every block in ledger order.
func (s *Service) Blocks(ctx context.Context) []domain.Block {
	return s.ledger.Load().Blocks()
}

// Ledger returns the current ledger.
func (s *Service) Ledger() *ledger.Ledger {
	return s.ledger.Load()
}

// AccountInfo returns the account of user with the Style accrued so far by
// its stake.
func (s *Service) AccountInfo(ctx context.Context, user domain.UserID) (domain.PersonalAccount, error) {
	return s.ledger.Load().AccountInfo(user, s.opts.Clock().UTC())
}

// Cagnotte returns the active cagnotte id.
func (s *Service) Cagnotte(ctx context.Context, id domain.CagnotteID) (domain.CagnotteAccount, error) {
	return s.ledger.Load().Cagnotte(id)
}

// History returns, newest first, a page of the blocks that touched a.
func (s *Service) History(ctx context.Context, a domain.Address, limit, offset int) ([]domain.Block, error) {
	led := s.ledger.Load()

	switch a.Kind {
	case domain.PersonalAddress:
		if _, err := led.Personal(domain.UserID(a.ID)); err != nil {
			return nil, err
		}
	case domain.CagnotteAddress:
		if a.ID == 0 {
			return nil, domain.ErrCagnotteUnspecified
		}
	}

	var all []domain.Block
	for b := range led.History(a) {
		all = append(all, b)
	}

	// Destroyed cagnottes keep their history; only never seen ones are unknown.
	if len(all) == 0 && a.Kind == domain.CagnotteAddress {
		return nil, domain.NotFound(a)
	}

	slices.Reverse(all)

	if offset >= len(all) {
		return []domain.Block{}, nil
	}

	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}

	return all, nil
}

// Forbes ranks accounts by Swag then Style, richest first.
func (s *Service) Forbes(ctx context.Context, limit int) []domain.PersonalAccount {
	users := s.ledger.Load().Registry().Ranking()

	if limit > 0 && limit < len(users) {
		users = users[:limit]
	}

	return users
}
