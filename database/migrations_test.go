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
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

type linkTable string

func (t linkTable) Schema() TableSchema {
	return TableSchema{Name: string(t), Columns: []ColumnSchema{
		{Name: "CompanyId", Type: ColumnID},
		{Name: "NoteId", Type: ColumnID},
		{Name: "Active", Type: ColumnBool},
		{Name: "ModifiedDate", Type: ColumnTimestamp},
		{Name: "ModifiedBy", Type: ColumnText, Nullable: true},
	}}
}

func (t linkTable) Priority() int { return 100 }

func openSQLite(t *testing.T) AbstractDatabaseManager {
	t.Helper()
	cfg := DefaultConnectionConfig()
	cfg.Type = "sqlite"
	cfg.DBName = filepath.Join(t.TempDir(), "bootstrap")
	cfg.HealthCheckInterval = 0
	manager := NewDatabaseManager(cfg)
	require.NoError(t, manager.Connect(context.Background()))
	t.Cleanup(func() { _ = manager.Disconnect() })
	return manager
}

func TestModelRegistryOrder(t *testing.T) {
	registry := NewModelRegistry()
	registry.Register(linkTable("Person_Note"))
	registry.Register(NewModelAdapter(TableSchema{Name: "Note"}, 10))
	registry.Register(linkTable("Company_Note"))
	registry.Register(linkTable("Company_Note"))

	var names []string
	for _, m := range registry.Models() {
		names = append(names, m.Schema().Name)
	}
	assert.Equal(t, []string{"Note", "Company_Note", "Person_Note"}, names)
}

func TestRunMigrationsCreatesTablesOnce(t *testing.T) {
	ctx := context.Background()
	manager := openSQLite(t)
	registry := NewModelRegistry()
	registry.Register(linkTable("Company_Note"))
	registry.Register(linkTable("Person_Note"))

	migrations := NewMigrationManager(manager.GetDB(), nil)
	migrations.SetRegistry(registry)
	require.NoError(t, migrations.RunMigrations(ctx))
	require.NoError(t, migrations.RunMigrations(ctx))

	applied, err := migrations.GetAppliedMigrations(ctx)
	require.NoError(t, err)
	require.Len(t, applied, 2)
	assert.Equal(t, "create_company_note", applied[0].Name)

	values := map[string]interface{}{"CompanyId": "c1", "NoteId": "n1", "Active": true, "ModifiedDate": applied[0].AppliedAt}
	_, err = manager.GetDB().NewInsert().Model(&values).TableExpr("?", bun.Ident("Company_Note")).Exec(ctx)
	require.NoError(t, err)

	n, err := manager.GetDB().NewSelect().TableExpr("?", bun.Ident("Company_Note")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRunMigrationsRequiresConnection(t *testing.T) {
	err := NewDatabaseManager(nil).RunMigrations(context.Background())
	assert.Error(t, err)
}

func TestManagerConnIsScoped(t *testing.T) {
	ctx := context.Background()
	manager := openSQLite(t)

	conn, err := manager.Conn(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, manager.GetStats().InUse)
	require.NoError(t, conn.Close())
	assert.Equal(t, 0, manager.GetStats().InUse)

	_, err = NewDatabaseManager(nil).Conn(ctx)
	assert.Error(t, err)
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf))
	logger.SetLevel(LogLevelInfo)

	logger.Debug("operation starting", "operation", "Add")
	logger.Error("operation failed", "operation", "Add", "store", "CompanyNoteStore")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "error", rec["level"])
	assert.Equal(t, "operation failed", rec["message"])
	assert.Equal(t, "CompanyNoteStore", rec["store"])
}

func TestToFieldsMarksMissingValue(t *testing.T) {
	fields := toFields([]interface{}{"operation", "Add", "dangling"})
	assert.Equal(t, "Add", fields["operation"])
	assert.Equal(t, "!MISSING", fields["dangling"])
}
