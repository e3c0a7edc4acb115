// Package store persists the social graph through gorm.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"instagram/models"
)

// DefaultSQLitePath is used when no connection string is configured.
const DefaultSQLitePath = "/tmp/test.db"

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("record not found")

type Store struct {
	db *gorm.DB
}

// Options tune how the store connects. Log may be nil.
type Options struct {
	Log *log.Logger
}

// Dialector picks a gorm driver from a connection string.
//
//	""                       -> SQLite at DefaultSQLitePath
//	postgres://, postgresql:// -> PostgreSQL
//	mysql://<go-sql-driver DSN> -> MySQL
//	sqlite:///<path>, or a bare path -> SQLite
func Dialector(dsn string) (gorm.Dialector, error) {
	switch {
	case dsn == "":
		return sqlite.Open(sqliteDSN(DefaultSQLitePath)), nil
	case strings.HasPrefix(dsn, "postgres://"):
		return postgres.Open("postgresql://" + strings.TrimPrefix(dsn, "postgres://")), nil
	case strings.HasPrefix(dsn, "postgresql://"):
		return postgres.Open(dsn), nil
	case strings.HasPrefix(dsn, "mysql://"):
		return mysql.Open(strings.TrimPrefix(dsn, "mysql://")), nil
	case strings.HasPrefix(dsn, "sqlite:///"):
		return sqlite.Open(sqliteDSN(strings.TrimPrefix(dsn, "sqlite:///"))), nil
	case strings.Contains(dsn, "://"):
		return nil, fmt.Errorf("unsupported database url scheme in %q", redact(dsn))
	default:
		return sqlite.Open(sqliteDSN(dsn)), nil
	}
}

// SQLite leaves foreign keys off unless asked.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}

func redact(dsn string) string {
	scheme, rest, ok := strings.Cut(dsn, "://")
	if !ok {
		return dsn
	}
	if at := strings.LastIndex(rest, "@"); at >= 0 {
		rest = "***" + rest[at:]
	}
	return scheme + "://" + rest
}

// Open connects to the database named by dsn and migrates the schema.
func Open(dsn string, opts Options) (*Store, error) {
	dialector, err := Dialector(dsn)
	if err != nil {
		return nil, err
	}

	cfg := &gorm.Config{Logger: logger.Discard}
	if opts.Log != nil {
		cfg.Logger = logger.New(opts.Log, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.Migrate(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks the connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
