package config

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Supported journal database types
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
)

// DatabaseSettings configures the transaction journal database.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=sqlite postgres"`
	DSN  string `mapstructure:"dsn" validate:"required"`
	// Name is the postgres database to create on first start. It is used as an SQL identifier.
	Name string `mapstructure:"name" validate:"omitempty,max=63"`
}

var databaseNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	if s.Type == PostgresDbType && s.Name == "" {
		return fmt.Errorf("database name is required for postgres")
	}
	if s.Name != "" && !databaseNamePattern.MatchString(s.Name) {
		return fmt.Errorf("database name %q must be a lower-case SQL identifier", s.Name)
	}
	return nil
}
