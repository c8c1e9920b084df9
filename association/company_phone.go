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

var companyPhoneTable = repository.Table{
	Name:         "Company_Phone",
	FirstColumn:  "CompanyId",
	SecondColumn: "PhoneId",
	Store:        "CompanyPhoneStore",
}

func init() { database.RegisteredModel(companyPhoneTable) }

// CompanyPhoneStore links companies to phone numbers through Company_Phone.
type CompanyPhoneStore struct {
	*repository.Store
}

// NewCompanyPhoneStore returns a store over Company_Phone backed by provider.
func NewCompanyPhoneStore(provider repository.ConnProvider, opts ...repository.Option) *CompanyPhoneStore {
	return &CompanyPhoneStore{Store: repository.NewStore(companyPhoneTable, provider, opts...)}
}

// GetByCompanyID returns the live links of one company.
func (s *CompanyPhoneStore) GetByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, companyID)
}

// GetByPhoneID lists the live links of the phone.
func (s *CompanyPhoneStore) GetByPhoneID(ctx context.Context, phoneID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, phoneID)
}

// GetByCompanyAndPhoneID returns the live link for the pair, or nil.
func (s *CompanyPhoneStore) GetByCompanyAndPhoneID(ctx context.Context, companyID, phoneID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, companyID, phoneID)
}

// ExistsByCompanyAndPhone reports whether a live link joins the company and the phone.
func (s *CompanyPhoneStore) ExistsByCompanyAndPhone(ctx context.Context, companyID, phoneID uuid.UUID) (bool, error) {
	return s.Exists(ctx, companyID, phoneID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *CompanyPhoneStore) AddRelationship(ctx context.Context, companyID, phoneID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(companyID, phoneID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *CompanyPhoneStore) RemoveRelationship(ctx context.Context, companyID, phoneID uuid.UUID) (bool, error) {
	return s.Delete(ctx, companyID, phoneID)
}

// RemoveAllForCompany soft-deletes every live link of the company and returns how many it removed.
func (s *CompanyPhoneStore) RemoveAllForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, companyID)
}

// RemoveAllForPhone soft-deletes every live link of the phone and returns how many it removed.
func (s *CompanyPhoneStore) RemoveAllForPhone(ctx context.Context, phoneID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, phoneID)
}

// GetByPhoneType returns the company's live links whose phone has the given phone type.
// A nil companyID matches every company.
func (s *CompanyPhoneStore) GetByPhoneType(ctx context.Context, companyID, phoneTypeID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByJoin(ctx, phoneByType, companyID, phoneTypeID)
}

// GetPrimaryPhoneForCompany returns the most recently modified live link.
// Company_Phone has no primary flag, so recency stands in for it.
func (s *CompanyPhoneStore) GetPrimaryPhoneForCompany(ctx context.Context, companyID uuid.UUID) (*repository.Row, error) {
	return s.MostRecent(ctx, companyID)
}

// SetPrimaryPhone makes the link the most recent one. It reports false when
// the link is not live.
func (s *CompanyPhoneStore) SetPrimaryPhone(ctx context.Context, companyID, phoneID uuid.UUID) (bool, error) {
	return s.Touch(ctx, companyID, phoneID)
}
