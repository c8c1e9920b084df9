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
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/linkstore/database"
)

func TestTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr bool
	}{
		{"complete", noteLinks, false},
		{"missing name", Table{FirstColumn: "CompanyId", SecondColumn: "NoteId"}, true},
		{"missing second", Table{Name: "Company_Note", FirstColumn: "CompanyId"}, true},
		{"same columns", Table{Name: "Company_Note", FirstColumn: "NoteId", SecondColumn: "NoteId"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTableProjection(t *testing.T) {
	assert.Equal(t, []string{"CompanyId", "NoteId", "Active", "ModifiedDate"}, noteLinks.Projection())
	assert.Equal(t, []string{"CompanyId", "PaymentId", "Active", "ModifiedDate", "ModifiedBy"}, paymentLinks.Projection())
}

func TestTableSchema(t *testing.T) {
	schema := paymentLinks.Schema()
	assert.Equal(t, "Company_Payment", schema.Name)
	require.Len(t, schema.Columns, 5)
	assert.Equal(t, database.ColumnID, schema.Columns[0].Type)
	assert.Equal(t, database.ColumnBool, schema.Columns[2].Type)
	assert.Equal(t, database.ColumnTimestamp, schema.Columns[3].Type)
	assert.True(t, schema.Columns[4].Nullable)
}

func TestTableValuesAndFields(t *testing.T) {
	table := paymentLinks.withDefaults()
	company, payment := uuid.New(), uuid.New()
	row := NewRow(company, payment)
	row.ModifiedBy = "alice"

	values := table.values(row)
	assert.Equal(t, company, values["CompanyId"])
	assert.Equal(t, payment, values["PaymentId"])
	assert.Equal(t, true, values["Active"])
	assert.Equal(t, "alice", values["ModifiedBy"])
	assert.Equal(t, "Company_Payment", table.Store)

	assert.Equal(t, []interface{}{"CompanyId", company, "PaymentId", payment, "entity", "Company_Payment"}, table.keyFields(company, payment))
}

func TestActorRoundTrip(t *testing.T) {
	assert.Empty(t, ActorFrom(context.Background()))
	assert.Equal(t, "alice", ActorFrom(WithActor(context.Background(), "alice")))
}
