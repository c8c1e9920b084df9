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

var companyQuoteTable = repository.Table{
	Name:         "Company_Quote",
	FirstColumn:  "CompanyId",
	SecondColumn: "QuoteId",
	Store:        "CompanyQuoteStore",
}

func init() { database.RegisteredModel(companyQuoteTable) }

// CompanyQuoteStore links companies to quotes through Company_Quote.
type CompanyQuoteStore struct {
	*repository.Store
}

// NewCompanyQuoteStore returns a store over Company_Quote backed by provider.
func NewCompanyQuoteStore(provider repository.ConnProvider, opts ...repository.Option) *CompanyQuoteStore {
	return &CompanyQuoteStore{Store: repository.NewStore(companyQuoteTable, provider, opts...)}
}

// GetByCompanyID returns the live links of one company.
func (s *CompanyQuoteStore) GetByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, companyID)
}

// GetByQuoteID lists the live links of the quote.
func (s *CompanyQuoteStore) GetByQuoteID(ctx context.Context, quoteID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, quoteID)
}

// GetByCompanyAndQuoteID returns the live link for the pair, or nil.
func (s *CompanyQuoteStore) GetByCompanyAndQuoteID(ctx context.Context, companyID, quoteID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, companyID, quoteID)
}

// ExistsByCompanyAndQuote reports whether a live link joins the company and the quote.
func (s *CompanyQuoteStore) ExistsByCompanyAndQuote(ctx context.Context, companyID, quoteID uuid.UUID) (bool, error) {
	return s.Exists(ctx, companyID, quoteID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *CompanyQuoteStore) AddRelationship(ctx context.Context, companyID, quoteID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(companyID, quoteID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *CompanyQuoteStore) RemoveRelationship(ctx context.Context, companyID, quoteID uuid.UUID) (bool, error) {
	return s.Delete(ctx, companyID, quoteID)
}

// RemoveAllForCompany soft-deletes every live link of the company and returns how many it removed.
func (s *CompanyQuoteStore) RemoveAllForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, companyID)
}

// RemoveAllForQuote soft-deletes every live link of the quote and returns how many it removed.
func (s *CompanyQuoteStore) RemoveAllForQuote(ctx context.Context, quoteID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, quoteID)
}
