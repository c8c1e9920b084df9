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

var personAddressTable = repository.Table{
	Name:         "Person_Address",
	FirstColumn:  "PersonId",
	SecondColumn: "AddressId",
	Store:        "PersonAddressStore",
}

func init() { database.RegisteredModel(personAddressTable) }

// PersonAddressStore links people to addresses through Person_Address.
type PersonAddressStore struct {
	*repository.Store
}

// NewPersonAddressStore returns a store over Person_Address backed by provider.
func NewPersonAddressStore(provider repository.ConnProvider, opts ...repository.Option) *PersonAddressStore {
	return &PersonAddressStore{Store: repository.NewStore(personAddressTable, provider, opts...)}
}

// GetByPersonID returns the live links of one person.
func (s *PersonAddressStore) GetByPersonID(ctx context.Context, personID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, personID)
}

// GetByAddressID lists the live links of the address.
func (s *PersonAddressStore) GetByAddressID(ctx context.Context, addressID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, addressID)
}

// GetByPersonAndAddressID returns the live link for the pair, or nil.
func (s *PersonAddressStore) GetByPersonAndAddressID(ctx context.Context, personID, addressID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, personID, addressID)
}

// ExistsByPersonAndAddress reports whether a live link joins the person and the address.
func (s *PersonAddressStore) ExistsByPersonAndAddress(ctx context.Context, personID, addressID uuid.UUID) (bool, error) {
	return s.Exists(ctx, personID, addressID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *PersonAddressStore) AddRelationship(ctx context.Context, personID, addressID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(personID, addressID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *PersonAddressStore) RemoveRelationship(ctx context.Context, personID, addressID uuid.UUID) (bool, error) {
	return s.Delete(ctx, personID, addressID)
}

// RemoveAllForPerson soft-deletes every live link of the person and returns how many it removed.
func (s *PersonAddressStore) RemoveAllForPerson(ctx context.Context, personID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, personID)
}

// RemoveAllForAddress soft-deletes every live link of the address and returns how many it removed.
func (s *PersonAddressStore) RemoveAllForAddress(ctx context.Context, addressID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, addressID)
}

// GetByAddressType returns the person's live links whose address has the given address type.
// A nil personID matches every person.
func (s *PersonAddressStore) GetByAddressType(ctx context.Context, personID, addressTypeID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByJoin(ctx, addressByType, personID, addressTypeID)
}

// GetPrimaryAddressForPerson returns the most recently modified live link.
// Person_Address has no primary flag, so recency stands in for it.
func (s *PersonAddressStore) GetPrimaryAddressForPerson(ctx context.Context, personID uuid.UUID) (*repository.Row, error) {
	return s.MostRecent(ctx, personID)
}

// SetPrimaryAddress makes the link the most recent one. It reports false when
// the link is not live.
func (s *PersonAddressStore) SetPrimaryAddress(ctx context.Context, personID, addressID uuid.UUID) (bool, error) {
	return s.Touch(ctx, personID, addressID)
}
