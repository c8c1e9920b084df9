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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyNoteGetByNoteType(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	createEntityTable(t, db, noteEntity, "NoteTypeId")
	store := NewCompanyNoteStore(db, testOptions()...)

	company, meeting, reminder := uuid.New(), uuid.New(), uuid.New()
	link := func(noteType uuid.UUID, noteActive bool) uuid.UUID {
		note := uuid.New()
		insertEntity(t, db, noteEntity, map[string]interface{}{"Id": note, "NoteTypeId": noteType, "Active": noteActive})
		_, err := store.AddRelationship(ctx, company, note)
		require.NoError(t, err)
		return note
	}
	want := link(meeting, true)
	link(meeting, false)
	link(reminder, true)

	rows, err := store.GetByNoteType(ctx, company, meeting)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, want, rows[0].SecondID)

	_, err = store.RemoveRelationship(ctx, company, want)
	require.NoError(t, err)
	rows, err = store.GetByNoteType(ctx, company, meeting)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSalesOrderJoins(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	createEntityTable(t, db, salesOrderEntity, "SalesOrderStatusId")
	companies := NewCompanySalesOrderStore(db, testOptions()...)
	people := NewPersonSalesOrderStore(db, testOptions()...)

	open, shipped := uuid.New(), uuid.New()
	openOrder, shippedOrder := uuid.New(), uuid.New()
	insertEntity(t, db, salesOrderEntity, map[string]interface{}{"Id": openOrder, "SalesOrderStatusId": open})
	insertEntity(t, db, salesOrderEntity, map[string]interface{}{"Id": shippedOrder, "SalesOrderStatusId": shipped})

	company, person := uuid.New(), uuid.New()
	for _, order := range []uuid.UUID{openOrder, shippedOrder} {
		_, err := companies.AddRelationship(ctx, company, order)
		require.NoError(t, err)
		_, err = people.AddRelationship(ctx, person, order)
		require.NoError(t, err)
	}

	rows, err := companies.GetBySalesOrderStatus(ctx, company, shipped)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, shippedOrder, rows[0].SecondID)

	rows, err = people.GetBySalesOrderStatus(ctx, person, open)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, openOrder, rows[0].SecondID)
}

func TestCompanyInvoiceGetByInvoiceStatus(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	createEntityTable(t, db, invoiceEntity, "InvoiceStatusId")
	store := NewCompanyInvoiceStore(db, testOptions()...)

	paid, invoice := uuid.New(), uuid.New()
	insertEntity(t, db, invoiceEntity, map[string]interface{}{"Id": invoice, "InvoiceStatusId": paid})
	_, err := store.AddRelationship(ctx, uuid.New(), invoice)
	require.NoError(t, err)
	_, err = store.AddRelationship(ctx, uuid.New(), invoice)
	require.NoError(t, err)

	rows, err := store.GetByInvoiceStatus(ctx, uuid.Nil, paid)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = store.GetByInvoiceStatus(ctx, uuid.Nil, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestTypeJoinsOnPersonStores(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	createEntityTable(t, db, activityEntity, "ActivityTypeId")
	createEntityTable(t, db, addressEntity, "AddressTypeId")
	createEntityTable(t, db, phoneEntity, "PhoneTypeId")
	person, kind := uuid.New(), uuid.New()

	activity, address, phone := uuid.New(), uuid.New(), uuid.New()
	insertEntity(t, db, activityEntity, map[string]interface{}{"Id": activity, "ActivityTypeId": kind})
	insertEntity(t, db, addressEntity, map[string]interface{}{"Id": address, "AddressTypeId": kind})
	insertEntity(t, db, phoneEntity, map[string]interface{}{"Id": phone, "PhoneTypeId": kind})

	activities := NewPersonActivityStore(db, testOptions()...)
	addresses := NewPersonAddressStore(db, testOptions()...)
	phones := NewPersonPhoneStore(db, testOptions()...)
	_, err := activities.AddRelationship(ctx, person, activity)
	require.NoError(t, err)
	_, err = addresses.AddRelationship(ctx, person, address)
	require.NoError(t, err)
	_, err = phones.AddRelationship(ctx, person, phone)
	require.NoError(t, err)

	rows, err := activities.GetByActivityType(ctx, person, kind)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	rows, err = addresses.GetByAddressType(ctx, person, kind)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	rows, err = phones.GetByPhoneType(ctx, person, kind)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
