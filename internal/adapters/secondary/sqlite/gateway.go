package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/norce-drilling/field-service/internal/core/domain"

	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

func init() {
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

// Gateway owns the single database handle shared by every repository. The file is
// opened lazily on first use so the service can start before the volume is mounted.
type Gateway struct {
	mu   sync.Mutex
	path string
	db   *sqlx.DB
}

func NewGateway(path string) *Gateway {
	return &Gateway{path: path}
}

// NewGatewayFromDB wraps an already opened handle. The schema is not applied.
func NewGatewayFromDB(db *sqlx.DB) *Gateway {
	return &Gateway{db: db}
}

// Conn returns the open handle, creating the database file and its tables on first call.
func (g *Gateway) Conn(ctx context.Context) (*sqlx.DB, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.db != nil {
		return g.db, nil
	}

	db, err := g.open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNoConnection, err)
	}
	g.db = db
	return db, nil
}

func (g *Gateway) open(ctx context.Context) (*sqlx.DB, error) {
	if dir := filepath.Dir(g.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sqlx.Open(driverName, g.path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// one writer at a time; SQLite serializes anyway
	db.SetMaxOpenConns(1)

	if err := applySchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	log.WithField("path", g.path).Info("database opened")
	return db, nil
}

// WithTx runs fn inside a transaction, committing on success and rolling back on
// error or panic.
func (g *Gateway) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	db, err := g.Conn(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.WithError(rbErr).Warn("rollback failed")
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Ping reports whether the database can be opened and reached.
func (g *Gateway) Ping(ctx context.Context) error {
	db, err := g.Conn(ctx)
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

func (g *Gateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.db == nil {
		return nil
	}
	err := g.db.Close()
	g.db = nil
	return err
}
