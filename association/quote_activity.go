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

var quoteActivityTable = repository.Table{
	Name:         "Quote_Activity",
	FirstColumn:  "QuoteId",
	SecondColumn: "ActivityId",
	Store:        "QuoteActivityStore",
}

func init() { database.RegisteredModel(quoteActivityTable) }

// QuoteActivityStore links quotes to activities through Quote_Activity.
type QuoteActivityStore struct {
	*repository.Store
}

// NewQuoteActivityStore returns a store over Quote_Activity backed by provider.
func NewQuoteActivityStore(provider repository.ConnProvider, opts ...repository.Option) *QuoteActivityStore {
	return &QuoteActivityStore{Store: repository.NewStore(quoteActivityTable, provider, opts...)}
}

// GetByQuoteID returns the live links of one quote.
func (s *QuoteActivityStore) GetByQuoteID(ctx context.Context, quoteID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, quoteID)
}

// GetByActivityID lists the live links of the activity.
func (s *QuoteActivityStore) GetByActivityID(ctx context.Context, activityID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, activityID)
}

// GetByQuoteAndActivityID returns the live link for the pair, or nil.
func (s *QuoteActivityStore) GetByQuoteAndActivityID(ctx context.Context, quoteID, activityID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, quoteID, activityID)
}

// ExistsByQuoteAndActivity reports whether a live link joins the quote and the activity.
func (s *QuoteActivityStore) ExistsByQuoteAndActivity(ctx context.Context, quoteID, activityID uuid.UUID) (bool, error) {
	return s.Exists(ctx, quoteID, activityID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *QuoteActivityStore) AddRelationship(ctx context.Context, quoteID, activityID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(quoteID, activityID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *QuoteActivityStore) RemoveRelationship(ctx context.Context, quoteID, activityID uuid.UUID) (bool, error) {
	return s.Delete(ctx, quoteID, activityID)
}

// RemoveAllForQuote soft-deletes every live link of the quote and returns how many it removed.
func (s *QuoteActivityStore) RemoveAllForQuote(ctx context.Context, quoteID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, quoteID)
}

// RemoveAllForActivity soft-deletes every live link of the activity and returns how many it removed.
func (s *QuoteActivityStore) RemoveAllForActivity(ctx context.Context, activityID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, activityID)
}
