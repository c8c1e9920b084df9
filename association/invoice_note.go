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

var invoiceNoteTable = repository.Table{
	Name:         "Invoice_Note",
	FirstColumn:  "InvoiceId",
	SecondColumn: "NoteId",
	Store:        "InvoiceNoteStore",
}

func init() { database.RegisteredModel(invoiceNoteTable) }

// InvoiceNoteStore links invoices to notes through Invoice_Note.
type InvoiceNoteStore struct {
	*repository.Store
}

// NewInvoiceNoteStore returns a store over Invoice_Note backed by provider.
func NewInvoiceNoteStore(provider repository.ConnProvider, opts ...repository.Option) *InvoiceNoteStore {
	return &InvoiceNoteStore{Store: repository.NewStore(invoiceNoteTable, provider, opts...)}
}

// GetByInvoiceID returns the live links of one invoice.
func (s *InvoiceNoteStore) GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, invoiceID)
}

// GetByNoteID lists the live links of the note.
func (s *InvoiceNoteStore) GetByNoteID(ctx context.Context, noteID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, noteID)
}

// GetByInvoiceAndNoteID returns the live link for the pair, or nil.
func (s *InvoiceNoteStore) GetByInvoiceAndNoteID(ctx context.Context, invoiceID, noteID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, invoiceID, noteID)
}

// ExistsByInvoiceAndNote reports whether a live link joins the invoice and the note.
func (s *InvoiceNoteStore) ExistsByInvoiceAndNote(ctx context.Context, invoiceID, noteID uuid.UUID) (bool, error) {
	return s.Exists(ctx, invoiceID, noteID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *InvoiceNoteStore) AddRelationship(ctx context.Context, invoiceID, noteID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(invoiceID, noteID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *InvoiceNoteStore) RemoveRelationship(ctx context.Context, invoiceID, noteID uuid.UUID) (bool, error) {
	return s.Delete(ctx, invoiceID, noteID)
}

// RemoveAllForInvoice soft-deletes every live link of the invoice and returns how many it removed.
func (s *InvoiceNoteStore) RemoveAllForInvoice(ctx context.Context, invoiceID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, invoiceID)
}

// RemoveAllForNote soft-deletes every live link of the note and returns how many it removed.
func (s *InvoiceNoteStore) RemoveAllForNote(ctx context.Context, noteID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, noteID)
}

// GetByNoteType returns the invoice's live links whose note has the given note type.
// A nil invoiceID matches every invoice.
func (s *InvoiceNoteStore) GetByNoteType(ctx context.Context, invoiceID, noteTypeID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByJoin(ctx, noteByType, invoiceID, noteTypeID)
}
