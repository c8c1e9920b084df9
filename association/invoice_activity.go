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

var invoiceActivityTable = repository.Table{
	Name:         "Invoice_Activity",
	FirstColumn:  "InvoiceId",
	SecondColumn: "ActivityId",
	Store:        "InvoiceActivityStore",
}

func init() { database.RegisteredModel(invoiceActivityTable) }

// InvoiceActivityStore links invoices to activities through Invoice_Activity.
type InvoiceActivityStore struct {
	*repository.Store
}

// NewInvoiceActivityStore returns a store over Invoice_Activity backed by provider.
func NewInvoiceActivityStore(provider repository.ConnProvider, opts ...repository.Option) *InvoiceActivityStore {
	return &InvoiceActivityStore{Store: repository.NewStore(invoiceActivityTable, provider, opts...)}
}

// GetByInvoiceID returns the live links of one invoice.
func (s *InvoiceActivityStore) GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, invoiceID)
}

// GetByActivityID lists the live links of the activity.
func (s *InvoiceActivityStore) GetByActivityID(ctx context.Context, activityID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, activityID)
}

// GetByInvoiceAndActivityID returns the live link for the pair, or nil.
func (s *InvoiceActivityStore) GetByInvoiceAndActivityID(ctx context.Context, invoiceID, activityID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, invoiceID, activityID)
}

// ExistsByInvoiceAndActivity reports whether a live link joins the invoice and the activity.
func (s *InvoiceActivityStore) ExistsByInvoiceAndActivity(ctx context.Context, invoiceID, activityID uuid.UUID) (bool, error) {
	return s.Exists(ctx, invoiceID, activityID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *InvoiceActivityStore) AddRelationship(ctx context.Context, invoiceID, activityID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(invoiceID, activityID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *InvoiceActivityStore) RemoveRelationship(ctx context.Context, invoiceID, activityID uuid.UUID) (bool, error) {
	return s.Delete(ctx, invoiceID, activityID)
}

// RemoveAllForInvoice soft-deletes every live link of the invoice and returns how many it removed.
func (s *InvoiceActivityStore) RemoveAllForInvoice(ctx context.Context, invoiceID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, invoiceID)
}

// RemoveAllForActivity soft-deletes every live link of the activity and returns how many it removed.
func (s *InvoiceActivityStore) RemoveAllForActivity(ctx context.Context, activityID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, activityID)
}
