package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/consts"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
	"github.com/azaliaz/bookly-storefront/storefront-service/internal/logger"
	storerrros "github.com/azaliaz/bookly-storefront/storefront-service/internal/storage/errors"
)

const insertAttempts = 3

type DBStorage struct {
	pool *pgxpool.Pool
}

func NewDB(ctx context.Context, addr string) (*DBStorage, error) {
	pool, err := pgxpool.New(ctx, addr)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, consts.DBCtxTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return &DBStorage{pool: pool}, nil
}

func (dbs *DBStorage) CreateSession(ctx context.Context) (string, error) {
	log := logger.Get()
	ctx, cancel := context.WithTimeout(ctx, consts.DBCtxTimeout)
	defer cancel()

	for range insertAttempts {
		sid := uuid.New().String()
		_, err := dbs.pool.Exec(ctx, "INSERT INTO web_sessions (sid) VALUES ($1)", sid)
		if err == nil {
			return sid, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			log.Warn().Str("sid", sid).Msg("session id collision, retrying")
			continue
		}
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return "", fmt.Errorf("failed to create session after %d attempts", insertAttempts)
}

func (dbs *DBStorage) GetSession(ctx context.Context, sid string) (models.WebSession, error) {
	ctx, cancel := context.WithTimeout(ctx, consts.DBCtxTimeout)
	defer cancel()

	var ws models.WebSession
	var draftSavedAt *time.Time
	err := dbs.pool.QueryRow(ctx,
		"SELECT sid::text, token, draft, draft_saved_at, created_at, updated_at FROM web_sessions WHERE sid = $1", sid).
		Scan(&ws.ID, &ws.Token, &ws.Draft, &draftSavedAt, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.WebSession{}, storerrros.ErrSessionNotFound
		}
		return models.WebSession{}, fmt.Errorf("failed to load session: %w", err)
	}
	if draftSavedAt != nil {
		ws.DraftSavedAt = *draftSavedAt
	}
	return ws, nil
}

func (dbs *DBStorage) SaveToken(ctx context.Context, sid, token string) error {
	return dbs.exec(ctx, "UPDATE web_sessions SET token = $2, updated_at = now() WHERE sid = $1", sid, token)
}

func (dbs *DBStorage) ClearToken(ctx context.Context, sid string) error {
	return dbs.exec(ctx, "UPDATE web_sessions SET token = '', updated_at = now() WHERE sid = $1", sid)
}

func (dbs *DBStorage) SaveDraft(ctx context.Context, sid string, draft []byte) error {
	return dbs.exec(ctx, "UPDATE web_sessions SET draft = $2, draft_saved_at = now(), updated_at = now() WHERE sid = $1", sid, draft)
}

func (dbs *DBStorage) GetDraft(ctx context.Context, sid string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, consts.DBCtxTimeout)
	defer cancel()

	var draft []byte
	err := dbs.pool.QueryRow(ctx, "SELECT draft FROM web_sessions WHERE sid = $1", sid).Scan(&draft)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storerrros.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	if len(draft) == 0 {
		return nil, storerrros.ErrDraftNotFound
	}
	return draft, nil
}

func (dbs *DBStorage) DeleteDraft(ctx context.Context, sid string) error {
	return dbs.exec(ctx, "UPDATE web_sessions SET draft = NULL, draft_saved_at = NULL, updated_at = now() WHERE sid = $1", sid)
}

func (dbs *DBStorage) DeleteSession(ctx context.Context, sid string) error {
	return dbs.exec(ctx, "DELETE FROM web_sessions WHERE sid = $1", sid)
}

// ExpiredSessions lists up to limit sessions last written before before,
// oldest first.
func (dbs *DBStorage) ExpiredSessions(ctx context.Context, before time.Time, limit int) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, consts.DBCtxTimeout)
	defer cancel()

	rows, err := dbs.pool.Query(ctx,
		"SELECT sid::text FROM web_sessions WHERE updated_at < $1 ORDER BY updated_at LIMIT $2", before, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired sessions: %w", err)
	}
	sids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to list expired sessions: %w", err)
	}
	return sids, nil
}

// ExpireDrafts drops the drafts saved before before. Drafts written before
// draft_saved_at existed fall back to the session's last write.
func (dbs *DBStorage) ExpireDrafts(ctx context.Context, before time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, consts.DBCtxTimeout)
	defer cancel()

	tag, err := dbs.pool.Exec(ctx, `UPDATE web_sessions SET draft = NULL, draft_saved_at = NULL
		WHERE draft IS NOT NULL AND COALESCE(draft_saved_at, updated_at) < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to expire drafts: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (dbs *DBStorage) Close() error {
	dbs.pool.Close()
	return nil
}

func (dbs *DBStorage) exec(ctx context.Context, query string, args ...any) error {
	ctx, cancel := context.WithTimeout(ctx, consts.DBCtxTimeout)
	defer cancel()
	tag, err := dbs.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storerrros.ErrSessionNotFound
	}
	return nil
}

func Migrations(dbDsn string, migrationsPath string) error {
	log := logger.Get()
	migratePath := fmt.Sprintf("file://%s", migrationsPath)
	m, err := migrate.New(migratePath, dbDsn)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("no mirations apply")
			return nil
		}
		return err
	}
	log.Info().Msg("all mirations apply")
	return nil
}
