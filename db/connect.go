package db

import (
	"context"
	"fmt"

	"diet-server/confs"
	"diet-server/logging"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured backend, tunes the pool and runs the schema
// migrations.
func Connect(ctx context.Context, cfg *confs.Config, log logging.Logger) (Database, error) {
	gormLog := logger.Default.LogMode(logger.Warn)
	if cfg.LogLevel == "debug" {
		gormLog = logger.Default.LogMode(logger.Info)
	}

	var (
		dialector gorm.Dialector
		dialect   string
	)
	switch cfg.StorageBackend {
	case confs.BackendSQLite:
		log.Infof("Opening sqlite database at %s...", cfg.SQLitePath)
		dialector = sqlite.Open(SQLiteDSN(cfg.SQLitePath))
		dialect = "sqlite3"
	default:
		log.Infof("Connecting to postgres database...")
		dialector = postgres.Open(cfg.PostgresDSN())
		dialect = "postgres"
	}

	database, err := open(ctx, dialector, dialect, gormLog, log)
	if err != nil {
		return nil, err
	}

	if dialect == "postgres" {
		sqlDB, err := database.GetDB().DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database instance: %w", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(0)
	}

	log.Infof("Database connection established successfully")
	return database, nil
}

// OpenSQLite opens and migrates a sqlite database, used for local runs and
// tests. Pass a "file:<name>?mode=memory&cache=shared" DSN for an in-memory
// store.
func OpenSQLite(ctx context.Context, dsn string, log logging.Logger) (Database, error) {
	return open(ctx, sqlite.Open(dsn), "sqlite3", logger.Default.LogMode(logger.Silent), log)
}

// SQLiteDSN turns a file path into a DSN with foreign keys enabled.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on", path)
}

func open(ctx context.Context, dialector gorm.Dialector, dialect string, gormLog logger.Interface, log logging.Logger) (Database, error) {
	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLog,
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	if dialect == "sqlite3" {
		// sqlite serializes writers anyway; one connection avoids SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	}

	log.Infof("Running database migrations...")
	if err := Migrate(ctx, sqlDB, dialect, gooseLogger{log}); err != nil {
		return nil, err
	}
	log.Infof("Database migrations completed successfully")

	return &GormDatabase{DB: gdb}, nil
}

// gooseLogger adapts logging.Logger to goose's Printf/Fatalf logger.
type gooseLogger struct {
	l logging.Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) { g.l.Infof(format, v...) }
func (g gooseLogger) Fatalf(format string, v ...interface{}) { g.l.Fatalf(format, v...) }
