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

package association

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tomoncle/linkstore/database"
	"github.com/tomoncle/linkstore/repository"
	"github.com/uptrace/bun"
)

type quietLogger struct{}

func (quietLogger) SetLevel(database.LogLevel)   {}
func (quietLogger) Debug(string, ...interface{}) {}
func (quietLogger) Info(string, ...interface{})  {}
func (quietLogger) Warn(string, ...interface{})  {}
func (quietLogger) Error(string, ...interface{}) {}

type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

// openTestDB creates every registered junction table in a fresh SQLite file.
func openTestDB(t *testing.T) database.AbstractDatabaseManager {
	t.Helper()
	cfg := database.DefaultConnectionConfig()
	cfg.Type = "sqlite"
	cfg.DBName = filepath.Join(t.TempDir(), "crm")
	cfg.HealthCheckInterval = 0

	manager := database.NewDatabaseManager(cfg)
	require.NoError(t, manager.Connect(context.Background()))
	t.Cleanup(func() { _ = manager.Disconnect() })
	require.NoError(t, manager.RunMigrations(context.Background()))
	return manager
}

func testOptions() []repository.Option {
	clock := &tickingClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	return []repository.Option{repository.WithLogger(quietLogger{}), repository.WithClock(clock.Now)}
}

// createEntityTable creates a far-side entity table with an Id, an Active
// flag and the given extra columns.
func createEntityTable(t *testing.T, db database.AbstractDatabaseManager, table string, columns ...string) {
	t.Helper()
	query := "CREATE TABLE ? (? VARCHAR(36) NOT NULL, ? BOOLEAN NOT NULL"
	args := []interface{}{bun.Ident(table), bun.Ident(entityKeyColumn), bun.Ident("Active")}
	for _, col := range columns {
		query += ", ? VARCHAR(36)"
		args = append(args, bun.Ident(col))
	}
	query += ")"
	_, err := db.GetDB().ExecContext(context.Background(), query, args...)
	require.NoError(t, err)
}

func insertEntity(t *testing.T, db database.AbstractDatabaseManager, table string, values map[string]interface{}) {
	t.Helper()
	if _, ok := values["Active"]; !ok {
		values["Active"] = true
	}
	_, err := db.GetDB().NewInsert().Model(&values).TableExpr("?", bun.Ident(table)).Exec(context.Background())
	require.NoError(t, err)
}
