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
	"github.com/tomoncle/linkstore/database"
	"github.com/tomoncle/linkstore/repository"
)

func TestEveryJunctionTableIsRegistered(t *testing.T) {
	registered := map[string]bool{}
	for _, model := range database.GetRegisteredModels() {
		registered[model.Schema().Name] = true
	}
	for _, name := range []string{
		"Company_Activity", "Company_Address", "Company_Attachment", "Company_EmailAddress",
		"Company_Invoice", "Company_Note", "Company_Payment", "Company_Person", "Company_Phone",
		"Company_Quote", "Company_SalesOrder",
		"Person_Activity", "Person_Address", "Person_Attachment", "Person_EmailAddress",
		"Person_Note", "Person_Phone", "Person_SalesOrder",
		"Invoice_Activity", "Invoice_InvoiceLineItem", "Invoice_Note",
		"Payment_Activity", "Payment_PaymentLineItem",
		"Quote_Activity", "Quote_QuoteLineItem",
		"SalesOrder_Activity", "SalesOrder_Note", "SalesOrder_SalesOrderLineItem",
	} {
		assert.True(t, registered[name], name)
	}
}

func TestReactivatingTables(t *testing.T) {
	reactivating := map[string]bool{}
	for _, table := range []repository.Table{
		companyActivityTable, companyAddressTable, companyAttachmentTable, companyEmailAddressTable,
		companyInvoiceTable, companyNoteTable, companyPaymentTable, companyPersonTable, companyPhoneTable,
		companyQuoteTable, companySalesOrderTable,
		personActivityTable, personAddressTable, personAttachmentTable, personEmailAddressTable,
		personNoteTable, personPhoneTable, personSalesOrderTable,
		invoiceActivityTable, invoiceInvoiceLineItemTable, invoiceNoteTable,
		paymentActivityTable, paymentPaymentLineItemTable,
		quoteActivityTable, quoteQuoteLineItemTable,
		salesOrderActivityTable, salesOrderNoteTable, salesOrderSalesOrderLineItemTable,
	} {
		require.NoError(t, table.Validate())
		if table.Reactivate {
			reactivating[table.Name] = true
		}
	}
	assert.Equal(t, map[string]bool{
		"Invoice_InvoiceLineItem": true,
		"Payment_Activity":        true,
		"Payment_PaymentLineItem": true,
		"Quote_QuoteLineItem":     true,
		"SalesOrder_Note":         true,
		"Person_SalesOrder":       true,
		"Company_Invoice":         true,
		"Company_Payment":         true,
	}, reactivating)
}

func TestCompanyActivityLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewCompanyActivityStore(openTestDB(t), testOptions()...)
	company, activity := uuid.New(), uuid.New()

	exists, err := store.ExistsByCompanyAndActivity(ctx, company, activity)
	require.NoError(t, err)
	assert.False(t, exists)

	row, err := store.AddRelationship(ctx, company, activity)
	require.NoError(t, err)
	assert.True(t, row.Active)
	assert.False(t, row.ModifiedDate.IsZero())

	exists, err = store.ExistsByCompanyAndActivity(ctx, company, activity)
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := store.GetByCompanyAndActivityID(ctx, company, activity)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, activity, got.SecondID)

	removed, err := store.RemoveRelationship(ctx, company, activity)
	require.NoError(t, err)
	assert.True(t, removed)

	exists, err = store.ExistsByCompanyAndActivity(ctx, company, activity)
	require.NoError(t, err)
	assert.False(t, exists)

	removed, err = store.RemoveRelationship(ctx, company, activity)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRemoveAllForEitherSide(t *testing.T) {
	ctx := context.Background()
	store := NewPersonAttachmentStore(openTestDB(t), testOptions()...)
	person, shared := uuid.New(), uuid.New()
	for _, attachment := range []uuid.UUID{uuid.New(), uuid.New(), shared} {
		_, err := store.AddRelationship(ctx, person, attachment)
		require.NoError(t, err)
	}
	_, err := store.AddRelationship(ctx, uuid.New(), shared)
	require.NoError(t, err)

	n, err := store.RemoveAllForAttachment(ctx, shared)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = store.RemoveAllForPerson(ctx, person)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	rows, err := store.GetByPersonID(ctx, person)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReactivatingAddKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	store := NewSalesOrderNoteStore(openTestDB(t), testOptions()...)
	order, note := uuid.New(), uuid.New()

	first, err := store.AddRelationship(ctx, order, note)
	require.NoError(t, err)
	_, err = store.RemoveRelationship(ctx, order, note)
	require.NoError(t, err)
	second, err := store.AddRelationship(ctx, order, note)
	require.NoError(t, err)
	assert.True(t, second.ModifiedDate.After(first.ModifiedDate))

	rows, err := store.GetBySalesOrderID(ctx, order)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	removed, err := store.GetRemovedByFirstID(ctx, order)
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestReactivatingAddTwiceRefreshesLiveRow(t *testing.T) {
	ctx := context.Background()
	store := NewCompanyPaymentStore(openTestDB(t), testOptions()...)
	company, payment := uuid.New(), uuid.New()

	first, err := store.AddRelationship(ctx, company, payment)
	require.NoError(t, err)
	second, err := store.AddRelationship(ctx, company, payment)
	require.NoError(t, err)
	assert.True(t, second.ModifiedDate.After(first.ModifiedDate))

	rows, err := store.GetByCompanyID(ctx, company)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.WithinDuration(t, second.ModifiedDate, rows[0].ModifiedDate, 0)
}

func TestCompanyInvoiceRecordsActor(t *testing.T) {
	ctx := repository.WithActor(context.Background(), "billing")
	store := NewCompanyInvoiceStore(openTestDB(t), testOptions()...)
	company, invoice := uuid.New(), uuid.New()

	_, err := store.AddRelationship(ctx, company, invoice)
	require.NoError(t, err)

	row, err := store.GetByCompanyAndInvoiceID(ctx, company, invoice)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "billing", row.ModifiedBy)
}

func TestAddRelationshipRejectsNilIDs(t *testing.T) {
	store := NewQuoteQuoteLineItemStore(openTestDB(t), testOptions()...)

	_, err := store.AddRelationship(context.Background(), uuid.Nil, uuid.New())
	assert.ErrorIs(t, err, repository.ErrInvalidArgument)
}
