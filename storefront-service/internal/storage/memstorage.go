package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
	storerrros "github.com/azaliaz/bookly-storefront/storefront-service/internal/storage/errors"
)

type MemStorage struct {
	mu       sync.RWMutex
	sessions map[string]models.WebSession
	now      func() time.Time
}

func New() *MemStorage {
	return &MemStorage{
		sessions: make(map[string]models.WebSession),
		now:      time.Now,
	}
}

func (ms *MemStorage) CreateSession(_ context.Context) (string, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	sid := uuid.New().String()
	now := ms.now()
	ms.sessions[sid] = models.WebSession{ID: sid, CreatedAt: now, UpdatedAt: now}
	return sid, nil
}

func (ms *MemStorage) GetSession(_ context.Context, sid string) (models.WebSession, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	ws, ok := ms.sessions[sid]
	if !ok {
		return models.WebSession{}, storerrros.ErrSessionNotFound
	}
	return ws, nil
}

func (ms *MemStorage) SaveToken(_ context.Context, sid, token string) error {
	return ms.update(sid, func(ws *models.WebSession) { ws.Token = token })
}

func (ms *MemStorage) ClearToken(_ context.Context, sid string) error {
	return ms.update(sid, func(ws *models.WebSession) { ws.Token = "" })
}

func (ms *MemStorage) SaveDraft(_ context.Context, sid string, draft []byte) error {
	return ms.update(sid, func(ws *models.WebSession) {
		ws.Draft = draft
		ws.DraftSavedAt = ms.now()
	})
}

func (ms *MemStorage) GetDraft(_ context.Context, sid string) ([]byte, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	ws, ok := ms.sessions[sid]
	if !ok {
		return nil, storerrros.ErrSessionNotFound
	}
	if len(ws.Draft) == 0 {
		return nil, storerrros.ErrDraftNotFound
	}
	return ws.Draft, nil
}

func (ms *MemStorage) DeleteDraft(_ context.Context, sid string) error {
	return ms.update(sid, func(ws *models.WebSession) {
		ws.Draft = nil
		ws.DraftSavedAt = time.Time{}
	})
}

func (ms *MemStorage) DeleteSession(_ context.Context, sid string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if _, ok := ms.sessions[sid]; !ok {
		return storerrros.ErrSessionNotFound
	}
	delete(ms.sessions, sid)
	return nil
}

// ExpiredSessions lists up to limit sessions last written before before.
func (ms *MemStorage) ExpiredSessions(_ context.Context, before time.Time, limit int) ([]string, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	var out []string
	for sid, ws := range ms.sessions {
		if len(out) == limit {
			break
		}
		if ws.UpdatedAt.Before(before) {
			out = append(out, sid)
		}
	}
	return out, nil
}

// ExpireDrafts drops the drafts saved before before and reports how many.
func (ms *MemStorage) ExpireDrafts(_ context.Context, before time.Time) (int64, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	var n int64
	for sid, ws := range ms.sessions {
		if len(ws.Draft) == 0 || !ws.DraftSavedAt.Before(before) {
			continue
		}
		ws.Draft = nil
		ws.DraftSavedAt = time.Time{}
		ms.sessions[sid] = ws
		n++
	}
	return n, nil
}

func (ms *MemStorage) Close() error { return nil }

func (ms *MemStorage) update(sid string, fn func(*models.WebSession)) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ws, ok := ms.sessions[sid]
	if !ok {
		return storerrros.ErrSessionNotFound
	}
	fn(&ws)
	ws.UpdatedAt = ms.now()
	ms.sessions[sid] = ws
	return nil
}
