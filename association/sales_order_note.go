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

var salesOrderNoteTable = repository.Table{
	Name:         "SalesOrder_Note",
	FirstColumn:  "SalesOrderId",
	SecondColumn: "NoteId",
	Reactivate:   true,
	Store:        "SalesOrderNoteStore",
}

func init() { database.RegisteredModel(salesOrderNoteTable) }

// SalesOrderNoteStore links sales orders to notes through SalesOrder_Note.
// Adding a pair that was removed earlier reactivates the old row.
type SalesOrderNoteStore struct {
	*repository.Store
}

// NewSalesOrderNoteStore returns a store over SalesOrder_Note backed by provider.
func NewSalesOrderNoteStore(provider repository.ConnProvider, opts ...repository.Option) *SalesOrderNoteStore {
	return &SalesOrderNoteStore{Store: repository.NewStore(salesOrderNoteTable, provider, opts...)}
}

// GetBySalesOrderID returns the live links of one sales order.
func (s *SalesOrderNoteStore) GetBySalesOrderID(ctx context.Context, salesOrderID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, salesOrderID)
}

// GetByNoteID lists the live links of the note.
func (s *SalesOrderNoteStore) GetByNoteID(ctx context.Context, noteID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, noteID)
}

// GetBySalesOrderAndNoteID returns the live link for the pair, or nil.
func (s *SalesOrderNoteStore) GetBySalesOrderAndNoteID(ctx context.Context, salesOrderID, noteID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, salesOrderID, noteID)
}

// ExistsBySalesOrderAndNote reports whether a live link joins the sales order and the note.
func (s *SalesOrderNoteStore) ExistsBySalesOrderAndNote(ctx context.Context, salesOrderID, noteID uuid.UUID) (bool, error) {
	return s.Exists(ctx, salesOrderID, noteID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *SalesOrderNoteStore) AddRelationship(ctx context.Context, salesOrderID, noteID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(salesOrderID, noteID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *SalesOrderNoteStore) RemoveRelationship(ctx context.Context, salesOrderID, noteID uuid.UUID) (bool, error) {
	return s.Delete(ctx, salesOrderID, noteID)
}

// RemoveAllForSalesOrder soft-deletes every live link of the sales order and returns how many it removed.
func (s *SalesOrderNoteStore) RemoveAllForSalesOrder(ctx context.Context, salesOrderID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, salesOrderID)
}

// RemoveAllForNote soft-deletes every live link of the note and returns how many it removed.
func (s *SalesOrderNoteStore) RemoveAllForNote(ctx context.Context, noteID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, noteID)
}

// GetByNoteType returns the sales order's live links whose note has the given note type.
// A nil salesOrderID matches every sales order.
func (s *SalesOrderNoteStore) GetByNoteType(ctx context.Context, salesOrderID, noteTypeID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByJoin(ctx, noteByType, salesOrderID, noteTypeID)
}
