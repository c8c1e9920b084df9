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

var personActivityTable = repository.Table{
	Name:         "Person_Activity",
	FirstColumn:  "PersonId",
	SecondColumn: "ActivityId",
	Store:        "PersonActivityStore",
}

func init() { database.RegisteredModel(personActivityTable) }

// PersonActivityStore links people to activities through Person_Activity.
type PersonActivityStore struct {
	*repository.Store
}

// NewPersonActivityStore returns a store over Person_Activity backed by provider.
func NewPersonActivityStore(provider repository.ConnProvider, opts ...repository.Option) *PersonActivityStore {
	return &PersonActivityStore{Store: repository.NewStore(personActivityTable, provider, opts...)}
}

// GetByPersonID returns the live links of one person.
func (s *PersonActivityStore) GetByPersonID(ctx context.Context, personID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, personID)
}

// GetByActivityID lists the live links of the activity.
func (s *PersonActivityStore) GetByActivityID(ctx context.Context, activityID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, activityID)
}

// GetByPersonAndActivityID returns the live link for the pair, or nil.
func (s *PersonActivityStore) GetByPersonAndActivityID(ctx context.Context, personID, activityID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, personID, activityID)
}

// ExistsByPersonAndActivity reports whether a live link joins the person and the activity.
func (s *PersonActivityStore) ExistsByPersonAndActivity(ctx context.Context, personID, activityID uuid.UUID) (bool, error) {
	return s.Exists(ctx, personID, activityID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *PersonActivityStore) AddRelationship(ctx context.Context, personID, activityID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(personID, activityID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *PersonActivityStore) RemoveRelationship(ctx context.Context, personID, activityID uuid.UUID) (bool, error) {
	return s.Delete(ctx, personID, activityID)
}

// RemoveAllForPerson soft-deletes every live link of the person and returns how many it removed.
func (s *PersonActivityStore) RemoveAllForPerson(ctx context.Context, personID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, personID)
}

// RemoveAllForActivity soft-deletes every live link of the activity and returns how many it removed.
func (s *PersonActivityStore) RemoveAllForActivity(ctx context.Context, activityID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, activityID)
}

// GetByActivityType returns the person's live links whose activity has the given activity type.
// A nil personID matches every person.
func (s *PersonActivityStore) GetByActivityType(ctx context.Context, personID, activityTypeID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByJoin(ctx, activityByType, personID, activityTypeID)
}
