package persistence

import (
	"fmt"

	"github.com/MGTheTrain/borica-gateway/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/borica-gateway/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const sqliteInMemoryDSN = ":memory:"

func gormConfig() *gorm.Config {
	// SQL statements carry order numbers and amounts; they stay out of the application log.
	return &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}
}

// NewDBConnection opens the journal database described by settings.
// For postgres the database named by settings.Name is created when missing.
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Type {
	case config.PostgresDbType:
		return openPostgres(settings)
	case config.SqliteDbType:
		return openSQLite(settings.DSN)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
}

func openPostgres(settings config.DatabaseSettings) (*gorm.DB, error) {
	admin, err := gorm.Open(postgres.Open(settings.DSN), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	ensureErr := ensurePostgresDatabase(admin, settings.Name)
	if err := CloseDB(admin); err != nil {
		return nil, err
	}
	if ensureErr != nil {
		return nil, ensureErr
	}

	db, err := gorm.Open(postgres.Open(fmt.Sprintf("%s dbname=%s", settings.DSN, settings.Name)), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database '%s': %w", settings.Name, err)
	}
	return db, nil
}

// ensurePostgresDatabase creates name unless pg_database already lists it.
// name has been checked to be a plain lower-case identifier.
func ensurePostgresDatabase(admin *gorm.DB, name string) error {
	var count int64
	if err := admin.Raw("SELECT count(*) FROM pg_database WHERE datname = ?", name).Scan(&count).Error; err != nil {
		return fmt.Errorf("failed to look up database '%s': %w", name, err)
	}
	if count > 0 {
		return nil
	}
	if err := admin.Exec(fmt.Sprintf(`CREATE DATABASE "%s"`, name)).Error; err != nil {
		return fmt.Errorf("failed to create database '%s': %w", name, err)
	}
	return nil
}

func openSQLite(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	// Every connection to :memory: opens its own empty database.
	if dsn == sqliteInMemoryDSN {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates or updates the journal schema
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.TransactionModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase drops a PostgreSQL database. Integration tests use it for cleanup.
func DropDatabase(adminDSN, dbName string) error {
	db, err := gorm.Open(postgres.Open(adminDSN), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() {
		_ = CloseDB(db)
	}()

	if err := db.Exec(fmt.Sprintf(`DROP DATABASE IF EXISTS "%s"`, dbName)).Error; err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}
	return nil
}
