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

var companyEmailAddressTable = repository.Table{
	Name:         "Company_EmailAddress",
	FirstColumn:  "CompanyId",
	SecondColumn: "EmailAddressId",
	Store:        "CompanyEmailAddressStore",
}

func init() { database.RegisteredModel(companyEmailAddressTable) }

// CompanyEmailAddressStore links companies to email addresses through Company_EmailAddress.
type CompanyEmailAddressStore struct {
	*repository.Store
}

// NewCompanyEmailAddressStore returns a store over Company_EmailAddress backed by provider.
func NewCompanyEmailAddressStore(provider repository.ConnProvider, opts ...repository.Option) *CompanyEmailAddressStore {
	return &CompanyEmailAddressStore{Store: repository.NewStore(companyEmailAddressTable, provider, opts...)}
}

// GetByCompanyID returns the live links of one company.
func (s *CompanyEmailAddressStore) GetByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, companyID)
}

// GetByEmailAddressID lists the live links of the email address.
func (s *CompanyEmailAddressStore) GetByEmailAddressID(ctx context.Context, emailAddressID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, emailAddressID)
}

// GetByCompanyAndEmailAddressID returns the live link for the pair, or nil.
func (s *CompanyEmailAddressStore) GetByCompanyAndEmailAddressID(ctx context.Context, companyID, emailAddressID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, companyID, emailAddressID)
}

// ExistsByCompanyAndEmailAddress reports whether a live link joins the company and the email address.
func (s *CompanyEmailAddressStore) ExistsByCompanyAndEmailAddress(ctx context.Context, companyID, emailAddressID uuid.UUID) (bool, error) {
	return s.Exists(ctx, companyID, emailAddressID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *CompanyEmailAddressStore) AddRelationship(ctx context.Context, companyID, emailAddressID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(companyID, emailAddressID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *CompanyEmailAddressStore) RemoveRelationship(ctx context.Context, companyID, emailAddressID uuid.UUID) (bool, error) {
	return s.Delete(ctx, companyID, emailAddressID)
}

// RemoveAllForCompany soft-deletes every live link of the company and returns how many it removed.
func (s *CompanyEmailAddressStore) RemoveAllForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, companyID)
}

// RemoveAllForEmailAddress soft-deletes every live link of the email address and returns how many it removed.
func (s *CompanyEmailAddressStore) RemoveAllForEmailAddress(ctx context.Context, emailAddressID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, emailAddressID)
}
