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

var companyPersonTable = repository.Table{
	Name:         "Company_Person",
	FirstColumn:  "CompanyId",
	SecondColumn: "PersonId",
	Store:        "CompanyPersonStore",
}

func init() { database.RegisteredModel(companyPersonTable) }

// CompanyPersonStore links companies to people through Company_Person.
type CompanyPersonStore struct {
	*repository.Store
}

// NewCompanyPersonStore returns a store over Company_Person backed by provider.
func NewCompanyPersonStore(provider repository.ConnProvider, opts ...repository.Option) *CompanyPersonStore {
	return &CompanyPersonStore{Store: repository.NewStore(companyPersonTable, provider, opts...)}
}

// GetByCompanyID lists the live links of the company.
func (s *CompanyPersonStore) GetByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, companyID)
}

// GetByPersonID lists the live links of the person.
func (s *CompanyPersonStore) GetByPersonID(ctx context.Context, personID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, personID)
}

// GetByCompanyAndPersonID returns the live link between the company and the person, or nil.
func (s *CompanyPersonStore) GetByCompanyAndPersonID(ctx context.Context, companyID, personID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, companyID, personID)
}

// ExistsByCompanyAndPerson reports whether a live link joins the company and the person.
func (s *CompanyPersonStore) ExistsByCompanyAndPerson(ctx context.Context, companyID, personID uuid.UUID) (bool, error) {
	return s.Exists(ctx, companyID, personID)
}

// AddRelationship links the company to the person.
func (s *CompanyPersonStore) AddRelationship(ctx context.Context, companyID, personID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(companyID, personID))
}

// RemoveRelationship soft-deletes the link and reports whether it was live.
func (s *CompanyPersonStore) RemoveRelationship(ctx context.Context, companyID, personID uuid.UUID) (bool, error) {
	return s.Delete(ctx, companyID, personID)
}

// RemoveAllForCompany soft-deletes every live link of the company and returns how many it removed.
func (s *CompanyPersonStore) RemoveAllForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, companyID)
}

// RemoveAllForPerson soft-deletes every live link of the person and returns how many it removed.
func (s *CompanyPersonStore) RemoveAllForPerson(ctx context.Context, personID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, personID)
}
