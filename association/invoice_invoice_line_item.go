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

	"github.com/google/uuid"
	"github.com/tomoncle/linkstore/database"
	"github.com/tomoncle/linkstore/repository"
)

var invoiceInvoiceLineItemTable = repository.Table{
	Name:             "Invoice_InvoiceLineItem",
	FirstColumn:      "InvoiceId",
	SecondColumn:     "InvoiceLineItemId",
	ModifiedByColumn: "ModifiedBy",
	Reactivate:       true,
	Store:            "InvoiceInvoiceLineItemStore",
}

func init() { database.RegisteredModel(invoiceInvoiceLineItemTable) }

// InvoiceInvoiceLineItemStore links invoices to invoice line items through Invoice_InvoiceLineItem.
// Adding a pair that was removed earlier reactivates the old row.
type InvoiceInvoiceLineItemStore struct {
	*repository.Store
}

// NewInvoiceInvoiceLineItemStore returns a store over Invoice_InvoiceLineItem backed by provider.
func NewInvoiceInvoiceLineItemStore(provider repository.ConnProvider, opts ...repository.Option) *InvoiceInvoiceLineItemStore {
	return &InvoiceInvoiceLineItemStore{Store: repository.NewStore(invoiceInvoiceLineItemTable, provider, opts...)}
}

// GetByInvoiceID lists the live links of the invoice.
func (s *InvoiceInvoiceLineItemStore) GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, invoiceID)
}

// GetByInvoiceLineItemID lists the live links of the invoice line item.
func (s *InvoiceInvoiceLineItemStore) GetByInvoiceLineItemID(ctx context.Context, invoiceLineItemID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, invoiceLineItemID)
}

// GetByInvoiceAndInvoiceLineItemID returns the live link between the invoice and the invoice line item, or nil.
func (s *InvoiceInvoiceLineItemStore) GetByInvoiceAndInvoiceLineItemID(ctx context.Context, invoiceID, invoiceLineItemID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, invoiceID, invoiceLineItemID)
}

// ExistsByInvoiceAndInvoiceLineItem reports whether a live link joins the invoice and the invoice line item.
func (s *InvoiceInvoiceLineItemStore) ExistsByInvoiceAndInvoiceLineItem(ctx context.Context, invoiceID, invoiceLineItemID uuid.UUID) (bool, error) {
	return s.Exists(ctx, invoiceID, invoiceLineItemID)
}

// AddRelationship links the invoice to the invoice line item. A removed link is revived in place.
func (s *InvoiceInvoiceLineItemStore) AddRelationship(ctx context.Context, invoiceID, invoiceLineItemID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(invoiceID, invoiceLineItemID))
}

// RemoveRelationship soft-deletes the link and reports whether it was live.
func (s *InvoiceInvoiceLineItemStore) RemoveRelationship(ctx context.Context, invoiceID, invoiceLineItemID uuid.UUID) (bool, error) {
	return s.Delete(ctx, invoiceID, invoiceLineItemID)
}

// RemoveAllForInvoice soft-deletes every live link of the invoice and returns how many it removed.
func (s *InvoiceInvoiceLineItemStore) RemoveAllForInvoice(ctx context.Context, invoiceID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, invoiceID)
}

// RemoveAllForInvoiceLineItem soft-deletes every live link of the invoice line item and returns how many it removed.
func (s *InvoiceInvoiceLineItemStore) RemoveAllForInvoiceLineItem(ctx context.Context, invoiceLineItemID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, invoiceLineItemID)
}
