// Package relational implements store.Store with gorm on PostgreSQL, MySQL
// or SQLite.
package relational

import (
	"context"
	"errors"
	"time"

	"github.com/glebarez/sqlite"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xcelliti/website/internal/config"
	"github.com/xcelliti/website/internal/db/dsn"
	"github.com/xcelliti/website/internal/db/models"
	"github.com/xcelliti/website/internal/store"
)

// Store implements store.Store on a gorm database.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

var _ store.Store = (*Store)(nil)

// Tables lists every model the store migrates.
func Tables() []any {
	return []any{
		&models.Service{},
		&models.BlogPost{},
		&models.Job{},
		&models.ContactSubmission{},
		&models.Client{},
		&models.Partner{},
		&models.Admin{},
	}
}

// Dialector returns the gorm driver for the configured engine.
func Dialector(cfg *config.DB) (gorm.Dialector, error) {
	switch cfg.Engine {
	case config.EnginePostgres:
		return postgres.Open(dsn.Create(cfg)), nil
	case config.EngineMySQL:
		return mysql.Open(dsn.Create(cfg)), nil
	case config.EngineSQLite:
		return sqlite.Open(dsn.Create(cfg)), nil
	default:
		return nil, pkgerrors.Wrapf(config.ErrUnknownDBEngine, "%q", cfg.Engine)
	}
}

// Open connects to the configured database, migrates the tables and
// returns the store.
func Open(cfg *config.DB, log gormlogger.Interface) (*Store, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         log,
		TranslateError: true,
	})
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to open %s database", cfg.Engine)
	}

	if err = db.AutoMigrate(Tables()...); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to migrate database")
	}

	return New(db)
}

// New wraps an already opened database. Tables are expected to exist.
func New(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, store.ErrDBNil
	}

	return &Store{
		db:  db,
		now: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}, nil
}

// DB returns the underlying gorm handle.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Ping implements store.Store.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to get sql handle")
	}

	return sqlDB.PingContext(ctx)
}

// Close implements store.Store.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to get sql handle")
	}

	return sqlDB.Close()
}

// list loads every row of T matching the optional condition in the given order.
func list[T any](ctx context.Context, db *gorm.DB, order []string, query any, args ...any) ([]T, error) {
	out := []T{}

	tx := db.WithContext(ctx)
	if query != nil {
		tx = tx.Where(query, args...)
	}

	for _, o := range order {
		tx = tx.Order(o)
	}

	if err := tx.Find(&out).Error; err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to list %T", out)
	}

	return out, nil
}

func get[T any](ctx context.Context, db *gorm.DB, id uint64) (T, error) {
	var rec T

	err := db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rec, store.ErrNotFound
	}

	if err != nil {
		return rec, pkgerrors.Wrapf(err, "failed to get %T %d", rec, id)
	}

	return rec, nil
}

func create[T any](ctx context.Context, db *gorm.DB, rec T) (T, error) {
	if err := db.WithContext(ctx).Create(&rec).Error; err != nil {
		return rec, pkgerrors.Wrapf(err, "failed to create %T", rec)
	}

	return rec, nil
}

// update writes only the given columns in a single statement and returns the
// stored row afterwards. An unknown id touches nothing and yields
// store.ErrNotFound from the reload.
func update[T any](ctx context.Context, db *gorm.DB, id uint64, cols map[string]any) (T, error) {
	if len(cols) > 0 {
		err := db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(cols).Error
		if err != nil {
			return *new(T), pkgerrors.Wrapf(err, "failed to update %T %d", *new(T), id)
		}
	}

	return get[T](ctx, db, id)
}

// remove hard deletes the row. Unknown ids are not an error.
func remove[T any](ctx context.Context, db *gorm.DB, id uint64) error {
	if err := db.WithContext(ctx).Delete(new(T), id).Error; err != nil {
		return pkgerrors.Wrapf(err, "failed to delete %T %d", *new(T), id)
	}

	return nil
}

var (
	byOrder = []string{"display_order ASC", "id ASC"}
	byID    = []string{"id ASC"}
)
