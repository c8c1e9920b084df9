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

var quoteQuoteLineItemTable = repository.Table{
	Name:         "Quote_QuoteLineItem",
	FirstColumn:  "QuoteId",
	SecondColumn: "QuoteLineItemId",
	Reactivate:   true,
	Store:        "QuoteQuoteLineItemStore",
}

func init() { database.RegisteredModel(quoteQuoteLineItemTable) }

// QuoteQuoteLineItemStore links quotes to quote line items through Quote_QuoteLineItem.
// Adding a pair that was removed earlier reactivates the old row.
type QuoteQuoteLineItemStore struct {
	*repository.Store
}

// NewQuoteQuoteLineItemStore returns a store over Quote_QuoteLineItem backed by provider.
func NewQuoteQuoteLineItemStore(provider repository.ConnProvider, opts ...repository.Option) *QuoteQuoteLineItemStore {
	return &QuoteQuoteLineItemStore{Store: repository.NewStore(quoteQuoteLineItemTable, provider, opts...)}
}

// GetByQuoteID returns the live links of one quote.
func (s *QuoteQuoteLineItemStore) GetByQuoteID(ctx context.Context, quoteID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, quoteID)
}

// GetByQuoteLineItemID lists the live links of the quote line item.
func (s *QuoteQuoteLineItemStore) GetByQuoteLineItemID(ctx context.Context, quoteLineItemID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, quoteLineItemID)
}

// GetByQuoteAndQuoteLineItemID returns the live link for the pair, or nil.
func (s *QuoteQuoteLineItemStore) GetByQuoteAndQuoteLineItemID(ctx context.Context, quoteID, quoteLineItemID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, quoteID, quoteLineItemID)
}

// ExistsByQuoteAndQuoteLineItem reports whether a live link joins the quote and the quote line item.
func (s *QuoteQuoteLineItemStore) ExistsByQuoteAndQuoteLineItem(ctx context.Context, quoteID, quoteLineItemID uuid.UUID) (bool, error) {
	return s.Exists(ctx, quoteID, quoteLineItemID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *QuoteQuoteLineItemStore) AddRelationship(ctx context.Context, quoteID, quoteLineItemID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(quoteID, quoteLineItemID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *QuoteQuoteLineItemStore) RemoveRelationship(ctx context.Context, quoteID, quoteLineItemID uuid.UUID) (bool, error) {
	return s.Delete(ctx, quoteID, quoteLineItemID)
}

// RemoveAllForQuote soft-deletes every live link of the quote and returns how many it removed.
func (s *QuoteQuoteLineItemStore) RemoveAllForQuote(ctx context.Context, quoteID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, quoteID)
}

// RemoveAllForQuoteLineItem soft-deletes every live link of the quote line item and returns how many it removed.
func (s *QuoteQuoteLineItemStore) RemoveAllForQuoteLineItem(ctx context.Context, quoteLineItemID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, quoteLineItemID)
}
