package session

import (
	"context"
	"errors"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/logger"
	storerrros "github.com/azaliaz/bookly-storefront/storefront-service/internal/storage/errors"
)

//go:generate mockgen -source=manager.go -destination=./mocks/store_mock.go -package=mocks

// TokenStore keeps the bearer token of each browser session.
type TokenStore interface {
	GetSession(ctx context.Context, sid string) (models.WebSession, error)
	SaveToken(ctx context.Context, sid, token string) error
	ClearToken(ctx context.Context, sid string) error
	DeleteSession(ctx context.Context, sid string) error
}

// Caller is who a flow acts for: the browser session to notify and the
// token to present to the backend.
type Caller struct {
	SessionID string
	Token     string
	Identity  Identity
}

// Manager is the single owner of stored tokens. Anything that changes a
// token goes through it so AuthChanged is always published.
type Manager struct {
	store  TokenStore
	reader *Reader
	bus    Publisher
}

func NewManager(store TokenStore, reader *Reader, bus Publisher) *Manager {
	return &Manager{store: store, reader: reader, bus: bus}
}

// Resolve loads the session's token and decodes it. Missing, malformed and
// expired tokens all yield an anonymous caller; the latter two also clear
// the stored token. Only storage failures are returned as errors.
func (m *Manager) Resolve(ctx context.Context, sid string) (Caller, error) {
	log := logger.Get()
	ws, err := m.store.GetSession(ctx, sid)
	if err != nil {
		return Caller{SessionID: sid}, err
	}
	id, err := m.reader.Decode(ws.Token)
	switch {
	case err == nil:
		return Caller{SessionID: sid, Token: ws.Token, Identity: id}, nil
	case errors.Is(err, ErrNoToken):
		return Caller{SessionID: sid}, nil
	default:
		log.Warn().Err(err).Str("sid", sid).Msg("discarding unusable token")
		if err := m.clear(ctx, sid); err != nil {
			return Caller{SessionID: sid}, err
		}
		return Caller{SessionID: sid}, nil
	}
}

// Decode reads token the way Login will, without storing it.
func (m *Manager) Decode(token string) (Identity, error) {
	return m.reader.Decode(token)
}

// Login stores token for sid. The token must at least decode; an unusable
// token is rejected without touching the stored one.
func (m *Manager) Login(ctx context.Context, sid, token string) (Identity, error) {
	id, err := m.reader.Decode(token)
	if err != nil {
		return Identity{}, err
	}
	if err := m.store.SaveToken(ctx, sid, token); err != nil {
		return Identity{}, err
	}
	m.bus.Publish(sid, Event{Kind: AuthChanged})
	return id, nil
}

// Logout deletes the whole web session, token and registration draft
// alike. A session already gone counts as logged out.
func (m *Manager) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	if err := m.store.DeleteSession(ctx, sid); err != nil && !errors.Is(err, storerrros.ErrSessionNotFound) {
		return err
	}
	m.bus.Publish(sid, Event{Kind: AuthChanged})
	return nil
}

func (m *Manager) clear(ctx context.Context, sid string) error {
	if err := m.store.ClearToken(ctx, sid); err != nil {
		return err
	}
	m.bus.Publish(sid, Event{Kind: AuthChanged})
	return nil
}
