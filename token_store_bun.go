package appclient

import (
	"context"
	"database/sql"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// StoredToken is the single-row model backing BunTokenStore. One well
// known key, one opaque value; no other identity data is persisted.
type StoredToken struct {
	bun.BaseModel `bun:"table:client_tokens,alias:tok"`
	Key           string    `bun:"key,pk" json:"key"`
	Value         string    `bun:"value,notnull" json:"-"`
	UpdatedAt     time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

var _ TokenStore = &BunTokenStore{}

// BunTokenStore persists the token in a SQLite table so a session
// survives process restarts, the way browser storage survives reloads.
// State is scoped to the database file; no cross-instance sync is implied.
type BunTokenStore struct {
	db  *bun.DB
	key string
}

// NewBunTokenStore returns a store persisting under cfg.GetTokenKey().
func NewBunTokenStore(db *bun.DB, cfg Config) *BunTokenStore {
	return &BunTokenStore{
		db:  db,
		key: cfg.GetTokenKey(),
	}
}

// Init creates the backing table when missing. Call once at startup.
func (s *BunTokenStore) Init(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*StoredToken)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to initialize token table")
	}
	return nil
}

func (s *BunTokenStore) Get(ctx context.Context) (string, error) {
	rec := new(StoredToken)
	err := s.db.NewSelect().
		Model(rec).
		Where("key = ?", s.key).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to read token")
	}
	return rec.Value, nil
}

func (s *BunTokenStore) Set(ctx context.Context, token string) error {
	rec := &StoredToken{
		Key:       s.key,
		Value:     token,
		UpdatedAt: time.Now(),
	}

	_, err := s.db.NewInsert().
		Model(rec).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to store token")
	}
	return nil
}

func (s *BunTokenStore) Clear(ctx context.Context) error {
	_, err := s.db.NewDelete().
		Model((*StoredToken)(nil)).
		Where("key = ?", s.key).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to clear token")
	}
	return nil
}

// OpenSQLite opens a Bun handle over the sqliteshim driver. Use
// "file::memory:?cache=shared" for throwaway state.
func OpenSQLite(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to open sqlite database")
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}
