package session

import (
	"context"
	"errors"
	"time"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/logger"
	storerrros "github.com/azaliaz/bookly-storefront/storefront-service/internal/storage/errors"
)

//go:generate mockgen -source=sweeper.go -destination=./mocks/sweeper_mock.go -package=mocks

// SweepStore is the part of session storage the sweeper reclaims from.
type SweepStore interface {
	ExpiredSessions(ctx context.Context, before time.Time, limit int) ([]string, error)
	DeleteSession(ctx context.Context, sid string) error
	ExpireDrafts(ctx context.Context, before time.Time) (int64, error)
}

const sweepBatch = 500

type SweepConfig struct {
	// SessionTTL is how long a session lives after its last write.
	SessionTTL time.Duration
	// DraftTTL is how long an untouched registration draft is kept.
	DraftTTL time.Duration
	Interval time.Duration
}

// Swept counts what one sweep reclaimed.
type Swept struct {
	Drafts   int64
	Sessions int
	Counts   int
}

// Sweeper deletes stale sessions and registration drafts and prunes the bus.
type Sweeper struct {
	store SweepStore
	bus   *Bus
	cfg   SweepConfig
	now   func() time.Time
}

func NewSweeper(store SweepStore, bus *Bus, cfg SweepConfig, now func() time.Time) *Sweeper {
	return &Sweeper{store: store, bus: bus, cfg: cfg, now: now}
}

// Sweep runs one pass.
func (s *Sweeper) Sweep(ctx context.Context) (Swept, error) {
	var res Swept
	now := s.now()

	drafts, err := s.store.ExpireDrafts(ctx, now.Add(-s.cfg.DraftTTL))
	if err != nil {
		return res, err
	}
	res.Drafts = drafts

	cutoff := now.Add(-s.cfg.SessionTTL)
	for {
		sids, err := s.store.ExpiredSessions(ctx, cutoff, sweepBatch)
		if err != nil {
			return res, err
		}
		for _, sid := range sids {
			if err := s.store.DeleteSession(ctx, sid); err != nil && !errors.Is(err, storerrros.ErrSessionNotFound) {
				return res, err
			}
			s.bus.Forget(sid)
			res.Sessions++
		}
		if len(sids) < sweepBatch {
			break
		}
	}
	res.Counts = s.bus.Prune(cutoff)
	return res, nil
}

// Run sweeps every Interval until ctx is done. A non-positive Interval
// disables sweeping.
func (s *Sweeper) Run(ctx context.Context) error {
	log := logger.Get()
	if s.cfg.Interval <= 0 {
		log.Warn().Msg("session sweeping disabled")
		return nil
	}
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			res, err := s.Sweep(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				log.Error().Err(err).Msg("session sweep failed")
				continue
			}
			if res != (Swept{}) {
				log.Debug().
					Int64("drafts", res.Drafts).
					Int("sessions", res.Sessions).
					Int("counts", res.Counts).
					Msg("session sweep")
			}
		}
	}
}
