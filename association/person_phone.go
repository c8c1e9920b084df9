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

var personPhoneTable = repository.Table{
	Name:         "Person_Phone",
	FirstColumn:  "PersonId",
	SecondColumn: "PhoneId",
	Store:        "PersonPhoneStore",
}

func init() { database.RegisteredModel(personPhoneTable) }

// PersonPhoneStore links people to phone numbers through Person_Phone.
type PersonPhoneStore struct {
	*repository.Store
}

// NewPersonPhoneStore returns a store over Person_Phone backed by provider.
func NewPersonPhoneStore(provider repository.ConnProvider, opts ...repository.Option) *PersonPhoneStore {
	return &PersonPhoneStore{Store: repository.NewStore(personPhoneTable, provider, opts...)}
}

// GetByPersonID lists the live links of the person.
func (s *PersonPhoneStore) GetByPersonID(ctx context.Context, personID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, personID)
}

// GetByPhoneID lists the live links of the phone.
func (s *PersonPhoneStore) GetByPhoneID(ctx context.Context, phoneID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, phoneID)
}

// GetByPersonAndPhoneID returns the live link between the person and the phone, or nil.
func (s *PersonPhoneStore) GetByPersonAndPhoneID(ctx context.Context, personID, phoneID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, personID, phoneID)
}

// ExistsByPersonAndPhone reports whether a live link joins the person and the phone.
func (s *PersonPhoneStore) ExistsByPersonAndPhone(ctx context.Context, personID, phoneID uuid.UUID) (bool, error) {
	return s.Exists(ctx, personID, phoneID)
}

// AddRelationship links the person to the phone.
func (s *PersonPhoneStore) AddRelationship(ctx context.Context, personID, phoneID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(personID, phoneID))
}

// RemoveRelationship soft-deletes the link and reports whether it was live.
func (s *PersonPhoneStore) RemoveRelationship(ctx context.Context, personID, phoneID uuid.UUID) (bool, error) {
	return s.Delete(ctx, personID, phoneID)
}

// RemoveAllForPerson soft-deletes every live link of the person and returns how many it removed.
func (s *PersonPhoneStore) RemoveAllForPerson(ctx context.Context, personID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, personID)
}

// RemoveAllForPhone soft-deletes every live link of the phone and returns how many it removed.
func (s *PersonPhoneStore) RemoveAllForPhone(ctx context.Context, phoneID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, phoneID)
}

// GetByPhoneType returns the person's live links whose phone has the given phone type.
// A nil personID matches every person.
func (s *PersonPhoneStore) GetByPhoneType(ctx context.Context, personID, phoneTypeID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByJoin(ctx, phoneByType, personID, phoneTypeID)
}

// GetPrimaryPhoneForPerson returns the most recently modified live link.
// Person_Phone has no primary flag, so recency stands in for it.
func (s *PersonPhoneStore) GetPrimaryPhoneForPerson(ctx context.Context, personID uuid.UUID) (*repository.Row, error) {
	return s.MostRecent(ctx, personID)
}

// SetPrimaryPhone makes the link the most recent one. It reports false when
// the link is not live.
func (s *PersonPhoneStore) SetPrimaryPhone(ctx context.Context, personID, phoneID uuid.UUID) (bool, error) {
	return s.Touch(ctx, personID, phoneID)
}
