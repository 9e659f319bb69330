package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConfig_DSN_Postgres(t *testing.T) {
	cfg := Config{
		Host:     "db",
		Port:     "5432",
		User:     "reporter",
		Password: "p@ss word",
		DBName:   "ecommerce_db",
		SSLMode:  "disable",
	}

	dsn, err := cfg.DSN()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.DriverName())
	assert.Equal(t, "postgres://reporter:p%40ss%20word@db:5432/ecommerce_db?sslmode=disable", dsn)
}

func TestConfig_DSN_MySQL(t *testing.T) {
	cfg := Config{
		Driver:   "MySQL",
		Host:     "localhost",
		Port:     "3306",
		User:     "root",
		Password: "secret",
		DBName:   "ecommerce_db",
	}

	dsn, err := cfg.DSN()
	require.NoError(t, err)

	parsed, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "root", parsed.User)
	assert.Equal(t, "secret", parsed.Passwd)
	assert.Equal(t, "localhost:3306", parsed.Addr)
	assert.Equal(t, "ecommerce_db", parsed.DBName)
	assert.True(t, parsed.ParseTime)
}

func TestConfig_DSN_UnsupportedDriver(t *testing.T) {
	_, err := Config{Driver: "oracle"}.DSN()
	assert.Error(t, err)
}

func TestIsForeignKeyViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"postgres fk", fmt.Errorf("insert sale: %w", &pq.Error{Code: "23503"}), true},
		{"postgres unique", &pq.Error{Code: "23505"}, false},
		{"mysql fk", &mysql.MySQLError{Number: 1452}, true},
		{"mysql other", &mysql.MySQLError{Number: 1062}, false},
		{"gorm translated", gorm.ErrForeignKeyViolated, true},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsForeignKeyViolation(tt.err))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(fmt.Errorf("find: %w", gorm.ErrRecordNotFound)))
	assert.False(t, IsNotFound(errors.New("other")))
}
