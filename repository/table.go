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

package repository

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/tomoncle/linkstore/database"
)

const (
	defaultActiveColumn   = "Active"
	defaultModifiedColumn = "ModifiedDate"
)

// Table binds the generic store to one physical junction table.
type Table struct {
	// Name is the physical table name, e.g. "Company_Note".
	Name string `validate:"required"`
	// FirstColumn and SecondColumn hold the two halves of the composite key.
	FirstColumn  string `validate:"required,nefield=SecondColumn"`
	SecondColumn string `validate:"required"`
	// ActiveColumn defaults to "Active", ModifiedColumn to "ModifiedDate".
	ActiveColumn   string
	ModifiedColumn string
	// ModifiedByColumn is set only for tables that carry the audit column.
	ModifiedByColumn string
	// Reactivate turns Add into insert-or-reactivate.
	Reactivate bool
	// Store names the owning store in logs, spans and metrics. Defaults to
	// Name.
	Store string
}

var tableValidator = validator.New()

// Validate reports the first missing or conflicting field.
func (t Table) Validate() error {
	if err := tableValidator.Struct(t); err != nil {
		return fmt.Errorf("invalid junction table %q: %w", t.Name, err)
	}
	return nil
}

func (t Table) withDefaults() Table {
	if t.ActiveColumn == "" {
		t.ActiveColumn = defaultActiveColumn
	}
	if t.ModifiedColumn == "" {
		t.ModifiedColumn = defaultModifiedColumn
	}
	if t.Store == "" {
		t.Store = t.Name
	}
	return t
}

// Projection lists the physical columns read for every row, in Row field
// order.
func (t Table) Projection() []string {
	t = t.withDefaults()
	cols := []string{t.FirstColumn, t.SecondColumn, t.ActiveColumn, t.ModifiedColumn}
	if t.ModifiedByColumn != "" {
		cols = append(cols, t.ModifiedByColumn)
	}
	return cols
}

// Schema describes the table for the database bootstrap.
func (t Table) Schema() database.TableSchema {
	t = t.withDefaults()
	cols := []database.ColumnSchema{
		{Name: t.FirstColumn, Type: database.ColumnID},
		{Name: t.SecondColumn, Type: database.ColumnID},
		{Name: t.ActiveColumn, Type: database.ColumnBool},
		{Name: t.ModifiedColumn, Type: database.ColumnTimestamp},
	}
	if t.ModifiedByColumn != "" {
		cols = append(cols, database.ColumnSchema{Name: t.ModifiedByColumn, Type: database.ColumnText, Nullable: true})
	}
	return database.TableSchema{Name: t.Name, Columns: cols}
}

// Priority places junction tables after any entity tables registered with a
// lower value.
func (t Table) Priority() int { return 100 }

// values maps a row onto the table's physical columns.
func (t Table) values(row *Row) map[string]interface{} {
	v := map[string]interface{}{
		t.FirstColumn:    row.FirstID,
		t.SecondColumn:   row.SecondID,
		t.ActiveColumn:   row.Active,
		t.ModifiedColumn: row.ModifiedDate,
	}
	if t.ModifiedByColumn != "" {
		v[t.ModifiedByColumn] = row.ModifiedBy
	}
	return v
}

func (t Table) keyFields(firstID, secondID uuid.UUID) []interface{} {
	return []interface{}{t.FirstColumn, firstID, t.SecondColumn, secondID, "entity", t.Name}
}

func (t Table) firstFields(firstID uuid.UUID) []interface{} {
	return []interface{}{t.FirstColumn, firstID, "entity", t.Name}
}

func (t Table) secondFields(secondID uuid.UUID) []interface{} {
	return []interface{}{t.SecondColumn, secondID, "entity", t.Name}
}

var _ database.SQLModel = Table{}

// stamp sets the audit fields of a row about to be written.
func (t Table) stamp(row *Row, now time.Time, actor string) {
	row.ModifiedDate = now
	if t.ModifiedByColumn != "" && row.ModifiedBy == "" {
		row.ModifiedBy = actor
	}
}
