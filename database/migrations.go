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
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

// MigrationManager creates the registered junction tables. It only ever
// issues CREATE TABLE IF NOT EXISTS and never alters an existing table.
type MigrationManager struct {
	db       *bun.DB
	logger   Logger
	registry ModelRegistry
}

// SchemaVersion records a bootstrap step applied to the database.
type SchemaVersion struct {
	bun.BaseModel `bun:"table:schema_versions"`

	Version     string    `bun:"version,pk"`
	Name        string    `bun:"name"`
	AppliedAt   time.Time `bun:"applied_at"`
	Description string    `bun:"description"`
}

// MigrationFunc is a bootstrap step executed within a transaction.
type MigrationFunc func(ctx context.Context, db bun.IDB) error

// MigrationItem describes a single bootstrap step.
type MigrationItem struct {
	Version     string
	Name        string
	Description string
	Up          MigrationFunc
}

// NewMigrationManager constructs a MigrationManager over the default
// registry.
func NewMigrationManager(db *bun.DB, logger Logger) *MigrationManager {
	return &MigrationManager{
		db:       db,
		logger:   logger,
		registry: defaultRegistry,
	}
}

// SetRegistry replaces the registry the tables are read from.
func (mm *MigrationManager) SetRegistry(registry ModelRegistry) {
	mm.registry = registry
}

// RunMigrations creates the version table if needed and then every
// registered table that has not been recorded yet.
func (mm *MigrationManager) RunMigrations(ctx context.Context) error {
	if mm.db == nil {
		return fmt.Errorf("database not initialized")
	}

	if err := mm.createMigrationTable(ctx); err != nil {
		return fmt.Errorf("failed to create schema_versions table: %w", err)
	}

	migrations := mm.getAllMigrations()
	sort.SliceStable(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	for _, migration := range migrations {
		if err := mm.runMigration(ctx, migration); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", migration.Version, err)
		}
	}

	if mm.logger != nil {
		mm.logger.Info("Database bootstrap completed!", "tables", len(migrations))
	}
	return nil
}

func (mm *MigrationManager) createMigrationTable(ctx context.Context) error {
	_, err := mm.db.NewCreateTable().
		Model((*SchemaVersion)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func (mm *MigrationManager) getAllMigrations() []MigrationItem {
	models := mm.registry.Models()
	migrations := make([]MigrationItem, 0, len(models))
	for i, model := range models {
		schema := model.Schema()
		migrations = append(migrations, MigrationItem{
			Version:     fmt.Sprintf("%03d_%s", i+1, strings.ToLower(schema.Name)),
			Name:        "create_" + strings.ToLower(schema.Name),
			Description: "Create table " + schema.Name,
			Up: func(ctx context.Context, db bun.IDB) error {
				return createTable(ctx, db, schema)
			},
		})
	}
	return migrations
}

func (mm *MigrationManager) runMigration(ctx context.Context, migration MigrationItem) error {
	exists, err := mm.db.NewSelect().
		Model((*SchemaVersion)(nil)).
		Where("name = ?", migration.Name).
		Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	tx, err := mm.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	var committed bool
	defer func(tx bun.Tx) {
		if !committed {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && mm.logger != nil {
				mm.logger.Error("Failed to rollback transaction", "error", rollbackErr)
			}
		}
	}(tx)

	if err := migration.Up(ctx, tx); err != nil {
		return err
	}

	record := &SchemaVersion{
		Version:     migration.Version,
		Name:        migration.Name,
		AppliedAt:   time.Now().UTC(),
		Description: migration.Description,
	}
	if _, err = tx.NewInsert().Model(record).Exec(ctx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	if mm.logger != nil {
		mm.logger.Debug("Migration executed successfully", "version", migration.Version, "name", migration.Name)
	}
	return nil
}

// GetAppliedMigrations returns the recorded bootstrap steps ordered by version.
func (mm *MigrationManager) GetAppliedMigrations(ctx context.Context) ([]SchemaVersion, error) {
	var versions []SchemaVersion
	err := mm.db.NewSelect().
		Model(&versions).
		Order("version ASC").
		Scan(ctx)
	return versions, err
}

func createTable(ctx context.Context, db bun.IDB, schema TableSchema) error {
	if len(schema.Columns) == 0 {
		return fmt.Errorf("table %s has no columns", schema.Name)
	}
	defs := make([]string, 0, len(schema.Columns))
	args := make([]interface{}, 0, len(schema.Columns)+1)
	args = append(args, bun.Ident(schema.Name))
	for _, col := range schema.Columns {
		def := "? " + columnTypeSQL(db.Dialect().Name(), col.Type)
		if !col.Nullable {
			def += " NOT NULL"
		}
		defs = append(defs, def)
		args = append(args, bun.Ident(col.Name))
	}
	query := "CREATE TABLE IF NOT EXISTS ? (" + strings.Join(defs, ", ") + ")"
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create table %s: %w", schema.Name, err)
	}
	return nil
}

func columnTypeSQL(name dialect.Name, typ ColumnType) string {
	switch typ {
	case ColumnID:
		return "VARCHAR(36)"
	case ColumnBool:
		return "BOOLEAN"
	case ColumnTimestamp:
		if name == dialect.MySQL {
			return "DATETIME(6)"
		}
		return "TIMESTAMP"
	default:
		return "VARCHAR(255)"
	}
}
