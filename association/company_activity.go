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

var companyActivityTable = repository.Table{
	Name:         "Company_Activity",
	FirstColumn:  "CompanyId",
	SecondColumn: "ActivityId",
	Store:        "CompanyActivityStore",
}

func init() { database.RegisteredModel(companyActivityTable) }

// CompanyActivityStore links companies to activities through Company_Activity.
type CompanyActivityStore struct {
	*repository.Store
}

// NewCompanyActivityStore returns a store over Company_Activity backed by provider.
func NewCompanyActivityStore(provider repository.ConnProvider, opts ...repository.Option) *CompanyActivityStore {
	return &CompanyActivityStore{Store: repository.NewStore(companyActivityTable, provider, opts...)}
}

// GetByCompanyID returns the live links of one company.
func (s *CompanyActivityStore) GetByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, companyID)
}

// GetByActivityID lists the live links of the activity.
func (s *CompanyActivityStore) GetByActivityID(ctx context.Context, activityID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, activityID)
}

// GetByCompanyAndActivityID returns the live link for the pair, or nil.
func (s *CompanyActivityStore) GetByCompanyAndActivityID(ctx context.Context, companyID, activityID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, companyID, activityID)
}

// ExistsByCompanyAndActivity reports whether a live link joins the company and the activity.
func (s *CompanyActivityStore) ExistsByCompanyAndActivity(ctx context.Context, companyID, activityID uuid.UUID) (bool, error) {
	return s.Exists(ctx, companyID, activityID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *CompanyActivityStore) AddRelationship(ctx context.Context, companyID, activityID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(companyID, activityID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *CompanyActivityStore) RemoveRelationship(ctx context.Context, companyID, activityID uuid.UUID) (bool, error) {
	return s.Delete(ctx, companyID, activityID)
}

// RemoveAllForCompany soft-deletes every live link of the company and returns how many it removed.
func (s *CompanyActivityStore) RemoveAllForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, companyID)
}

// RemoveAllForActivity soft-deletes every live link of the activity and returns how many it removed.
func (s *CompanyActivityStore) RemoveAllForActivity(ctx context.Context, activityID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, activityID)
}

// GetByActivityType returns the company's live links whose activity has the given activity type.
// A nil companyID matches every company.
func (s *CompanyActivityStore) GetByActivityType(ctx context.Context, companyID, activityTypeID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByJoin(ctx, activityByType, companyID, activityTypeID)
}
