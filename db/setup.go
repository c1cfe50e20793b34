package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Princegupta101/instinctive/internal/config"
	"github.com/Princegupta101/instinctive/internal/logger"
	"github.com/Princegupta101/instinctive/internal/models"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Pure Go SQLite driver, registered as "sqlite".
	_ "modernc.org/sqlite"
)

const pingTimeout = 5 * time.Second

// Open connects to the configured database. The returned handle is owned by the
// caller and must be released with Close.
func Open(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.NewGormLogger(log, logger.DefaultSlowThreshold),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	if cfg.Driver == "sqlite" {
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		// SQLite allows a single writer at a time.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Ping(context.Background(), gdb); err != nil {
		Close(gdb)
		return nil, fmt.Errorf("connecting to %s database: %w", cfg.Driver, err)
	}

	return gdb, nil
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		pgxConfig, err := pgx.ParseConfig(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing postgres connection string: %w", err)
		}
		return postgres.New(postgres.Config{Conn: stdlib.OpenDB(*pgxConfig)}), nil
	case "mysql":
		mysqlConfig, err := mysqldriver.ParseDSN(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing mysql dsn: %w", err)
		}
		mysqlConfig.ParseTime = true
		mysqlConfig.Loc = time.UTC
		return mysql.Open(mysqlConfig.FormatDSN()), nil
	case "sqlite":
		return sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: SQLiteDSN(cfg.URL)}), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedDriver, cfg.Driver)
	}
}

// SQLiteDSN enables foreign keys and a busy timeout on every pooled connection.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func Migrate(gdb *gorm.DB) error {
	models := []interface{}{
		&models.Camera{},
		&models.Incident{},
	}

	for _, model := range models {
		if err := gdb.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrating %T: %w", model, err)
		}
	}

	return nil
}

// Ping checks that the database answers within a short timeout.
func Ping(ctx context.Context, gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
