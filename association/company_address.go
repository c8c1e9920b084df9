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

var companyAddressTable = repository.Table{
	Name:         "Company_Address",
	FirstColumn:  "CompanyId",
	SecondColumn: "AddressId",
	Store:        "CompanyAddressStore",
}

func init() { database.RegisteredModel(companyAddressTable) }

// CompanyAddressStore links companies to addresses through Company_Address.
type CompanyAddressStore struct {
	*repository.Store
}

// NewCompanyAddressStore returns a store over Company_Address backed by provider.
func NewCompanyAddressStore(provider repository.ConnProvider, opts ...repository.Option) *CompanyAddressStore {
	return &CompanyAddressStore{Store: repository.NewStore(companyAddressTable, provider, opts...)}
}

// GetByCompanyID lists the live links of the company.
func (s *CompanyAddressStore) GetByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, companyID)
}

// GetByAddressID lists the live links of the address.
func (s *CompanyAddressStore) GetByAddressID(ctx context.Context, addressID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, addressID)
}

// GetByCompanyAndAddressID returns the live link between the company and the address, or nil.
func (s *CompanyAddressStore) GetByCompanyAndAddressID(ctx context.Context, companyID, addressID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, companyID, addressID)
}

// ExistsByCompanyAndAddress reports whether a live link joins the company and the address.
func (s *CompanyAddressStore) ExistsByCompanyAndAddress(ctx context.Context, companyID, addressID uuid.UUID) (bool, error) {
	return s.Exists(ctx, companyID, addressID)
}

// AddRelationship links the company to the address.
func (s *CompanyAddressStore) AddRelationship(ctx context.Context, companyID, addressID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(companyID, addressID))
}

// RemoveRelationship soft-deletes the link and reports whether it was live.
func (s *CompanyAddressStore) RemoveRelationship(ctx context.Context, companyID, addressID uuid.UUID) (bool, error) {
	return s.Delete(ctx, companyID, addressID)
}

// RemoveAllForCompany soft-deletes every live link of the company and returns how many it removed.
func (s *CompanyAddressStore) RemoveAllForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, companyID)
}

// RemoveAllForAddress soft-deletes every live link of the address and returns how many it removed.
func (s *CompanyAddressStore) RemoveAllForAddress(ctx context.Context, addressID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, addressID)
}

// GetByAddressType returns the company's live links whose address has the given address type.
// A nil companyID matches every company.
func (s *CompanyAddressStore) GetByAddressType(ctx context.Context, companyID, addressTypeID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByJoin(ctx, addressByType, companyID, addressTypeID)
}

// GetPrimaryAddressForCompany returns the most recently modified live link.
// Company_Address has no primary flag, so recency stands in for it.
func (s *CompanyAddressStore) GetPrimaryAddressForCompany(ctx context.Context, companyID uuid.UUID) (*repository.Row, error) {
	return s.MostRecent(ctx, companyID)
}

// SetPrimaryAddress makes the link the most recent one. It reports false when
// the link is not live.
func (s *CompanyAddressStore) SetPrimaryAddress(ctx context.Context, companyID, addressID uuid.UUID) (bool, error) {
	return s.Touch(ctx, companyID, addressID)
}
