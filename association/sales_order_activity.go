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

var salesOrderActivityTable = repository.Table{
	Name:         "SalesOrder_Activity",
	FirstColumn:  "SalesOrderId",
	SecondColumn: "ActivityId",
	Store:        "SalesOrderActivityStore",
}

func init() { database.RegisteredModel(salesOrderActivityTable) }

// SalesOrderActivityStore links sales orders to activities through SalesOrder_Activity.
type SalesOrderActivityStore struct {
	*repository.Store
}

// NewSalesOrderActivityStore returns a store over SalesOrder_Activity backed by provider.
func NewSalesOrderActivityStore(provider repository.ConnProvider, opts ...repository.Option) *SalesOrderActivityStore {
	return &SalesOrderActivityStore{Store: repository.NewStore(salesOrderActivityTable, provider, opts...)}
}

// GetBySalesOrderID lists the live links of the sales order.
func (s *SalesOrderActivityStore) GetBySalesOrderID(ctx context.Context, salesOrderID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, salesOrderID)
}

// GetByActivityID lists the live links of the activity.
func (s *SalesOrderActivityStore) GetByActivityID(ctx context.Context, activityID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, activityID)
}

// GetBySalesOrderAndActivityID returns the live link between the sales order and the activity, or nil.
func (s *SalesOrderActivityStore) GetBySalesOrderAndActivityID(ctx context.Context, salesOrderID, activityID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, salesOrderID, activityID)
}

// ExistsBySalesOrderAndActivity reports whether a live link joins the sales order and the activity.
func (s *SalesOrderActivityStore) ExistsBySalesOrderAndActivity(ctx context.Context, salesOrderID, activityID uuid.UUID) (bool, error) {
	return s.Exists(ctx, salesOrderID, activityID)
}

// AddRelationship links the sales order to the activity.
func (s *SalesOrderActivityStore) AddRelationship(ctx context.Context, salesOrderID, activityID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(salesOrderID, activityID))
}

// RemoveRelationship soft-deletes the link and reports whether it was live.
func (s *SalesOrderActivityStore) RemoveRelationship(ctx context.Context, salesOrderID, activityID uuid.UUID) (bool, error) {
	return s.Delete(ctx, salesOrderID, activityID)
}

// RemoveAllForSalesOrder soft-deletes every live link of the sales order and returns how many it removed.
func (s *SalesOrderActivityStore) RemoveAllForSalesOrder(ctx context.Context, salesOrderID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, salesOrderID)
}

// RemoveAllForActivity soft-deletes every live link of the activity and returns how many it removed.
func (s *SalesOrderActivityStore) RemoveAllForActivity(ctx context.Context, activityID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, activityID)
}
