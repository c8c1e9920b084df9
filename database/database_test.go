/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
connection:
  type: postgres
  host: db.internal
  port: 5432
  dbname: crm
  max_open_conns: 20
bootstrap:
  enable_on_startup: true
logging:
  level: debug
  format: json
`))
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.ConnectionConfig.Type)
	assert.Equal(t, 5432, cfg.ConnectionConfig.Port)
	assert.Equal(t, 20, cfg.ConnectionConfig.MaxOpenConns)
	assert.Equal(t, 10, cfg.ConnectionConfig.MaxIdleConns)
	assert.Equal(t, 10*time.Second, cfg.ConnectionConfig.ConnectTimeout)
	assert.True(t, cfg.BootstrapConfig.EnableOnStartup)
	assert.Equal(t, "json", cfg.LoggingConfig.Format)
}

func TestParseConfigRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"unknown type":  "connection:\n  type: oracle\n  dbname: crm\n",
		"missing name":  "connection:\n  type: mysql\n",
		"bad port":      "connection:\n  type: mysql\n  dbname: crm\n  port: 70000\n",
		"bad log level": "connection:\n  type: sqlite\n  dbname: crm\nlogging:\n  level: loud\n",
		"not yaml":      "connection: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte("connection:\n  type: sqlite\n  dbname: crm\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.ConnectionConfig.Type)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigValidateNil(t *testing.T) {
	var cfg *Config
	assert.Error(t, cfg.Validate())
}

func TestFactoryAppliesEnvironmentOverrides(t *testing.T) {
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_NAME", filepath.Join(t.TempDir(), "env"))
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_CONN_MAX_LIFETIME", "60")

	cfg := DefaultConnectionConfig()
	cfg.Type = "mysql"
	cfg.DBName = "ignored"
	factory := NewDatabaseFactory()
	_, err := factory.CreateFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Type)
	assert.Equal(t, 7, cfg.MaxOpenConns)
	assert.Equal(t, time.Minute, cfg.ConnMaxLifetime)

	require.NoError(t, factory.InitializeDatabase(context.Background(), false))
	t.Cleanup(func() { _ = factory.Close() })
	assert.True(t, factory.GetHealthStatus(context.Background()).Healthy)
}

func TestIsSqlError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		is   bool
		kind SQLError
	}{
		{"nil", nil, false, UnknownErr},
		{"no rows", fmt.Errorf("scan: %w", sql.ErrNoRows), true, NoRowsErr},
		{"canceled", context.Canceled, true, CanceledErr},
		{"deadline", context.DeadlineExceeded, true, CanceledErr},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, true, DuplicateKeyErr},
		{"mysql unknown", &mysql.MySQLError{Number: 9999}, true, UnknownErr},
		{"postgres missing table", errors.New(`pq: relation "Company_Note" does not exist (SQLSTATE 42P01)`), true, NoTableErr},
		{"sqlite missing table", errors.New("SQL logic error: no such table: Company_Note (1)"), true, NoTableErr},
		{"sqlite locked", errors.New("database is locked (5) (SQLITE_BUSY)"), true, LockedErr},
		{"not sql", errors.New("pool exhausted"), false, UnknownErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is, kind := IsSqlError(tt.err)
			assert.Equal(t, tt.is, is)
			assert.Equal(t, tt.kind, kind)
		})
	}
	assert.Equal(t, "duplicate_key", DuplicateKeyErr.String())
	assert.Equal(t, "unknown", SQLError(99).String())
}
