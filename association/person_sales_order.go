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

var personSalesOrderTable = repository.Table{
	Name:         "Person_SalesOrder",
	FirstColumn:  "PersonId",
	SecondColumn: "SalesOrderId",
	Reactivate:   true,
	Store:        "PersonSalesOrderStore",
}

func init() { database.RegisteredModel(personSalesOrderTable) }

// PersonSalesOrderStore links people to sales orders through Person_SalesOrder.
// Adding a pair that was removed earlier reactivates the old row.
type PersonSalesOrderStore struct {
	*repository.Store
}

// NewPersonSalesOrderStore returns a store over Person_SalesOrder backed by provider.
func NewPersonSalesOrderStore(provider repository.ConnProvider, opts ...repository.Option) *PersonSalesOrderStore {
	return &PersonSalesOrderStore{Store: repository.NewStore(personSalesOrderTable, provider, opts...)}
}

// GetByPersonID returns the live links of one person.
func (s *PersonSalesOrderStore) GetByPersonID(ctx context.Context, personID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, personID)
}

// GetBySalesOrderID lists the live links of the sales order.
func (s *PersonSalesOrderStore) GetBySalesOrderID(ctx context.Context, salesOrderID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, salesOrderID)
}

// GetByPersonAndSalesOrderID returns the live link for the pair, or nil.
func (s *PersonSalesOrderStore) GetByPersonAndSalesOrderID(ctx context.Context, personID, salesOrderID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, personID, salesOrderID)
}

// ExistsByPersonAndSalesOrder reports whether a live link joins the person and the sales order.
func (s *PersonSalesOrderStore) ExistsByPersonAndSalesOrder(ctx context.Context, personID, salesOrderID uuid.UUID) (bool, error) {
	return s.Exists(ctx, personID, salesOrderID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *PersonSalesOrderStore) AddRelationship(ctx context.Context, personID, salesOrderID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(personID, salesOrderID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *PersonSalesOrderStore) RemoveRelationship(ctx context.Context, personID, salesOrderID uuid.UUID) (bool, error) {
	return s.Delete(ctx, personID, salesOrderID)
}

// RemoveAllForPerson soft-deletes every live link of the person and returns how many it removed.
func (s *PersonSalesOrderStore) RemoveAllForPerson(ctx context.Context, personID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, personID)
}

// RemoveAllForSalesOrder soft-deletes every live link of the sales order and returns how many it removed.
func (s *PersonSalesOrderStore) RemoveAllForSalesOrder(ctx context.Context, salesOrderID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, salesOrderID)
}

// GetBySalesOrderStatus returns the person's live links whose sales order has the given sales order status.
// A nil personID matches every person.
func (s *PersonSalesOrderStore) GetBySalesOrderStatus(ctx context.Context, personID, statusID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByJoin(ctx, salesOrderByStatus, personID, statusID)
}
