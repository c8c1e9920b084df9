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

var salesOrderSalesOrderLineItemTable = repository.Table{
	Name:         "SalesOrder_SalesOrderLineItem",
	FirstColumn:  "SalesOrderId",
	SecondColumn: "SalesOrderLineItemId",
	Store:        "SalesOrderSalesOrderLineItemStore",
}

func init() { database.RegisteredModel(salesOrderSalesOrderLineItemTable) }

// SalesOrderSalesOrderLineItemStore links sales orders to sales order line items through SalesOrder_SalesOrderLineItem.
type SalesOrderSalesOrderLineItemStore struct {
	*repository.Store
}

// NewSalesOrderSalesOrderLineItemStore returns a store over SalesOrder_SalesOrderLineItem backed by provider.
func NewSalesOrderSalesOrderLineItemStore(provider repository.ConnProvider, opts ...repository.Option) *SalesOrderSalesOrderLineItemStore {
	return &SalesOrderSalesOrderLineItemStore{Store: repository.NewStore(salesOrderSalesOrderLineItemTable, provider, opts...)}
}

// GetBySalesOrderID returns the live links of one sales order.
func (s *SalesOrderSalesOrderLineItemStore) GetBySalesOrderID(ctx context.Context, salesOrderID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, salesOrderID)
}

// GetBySalesOrderLineItemID lists the live links of the sales order line item.
func (s *SalesOrderSalesOrderLineItemStore) GetBySalesOrderLineItemID(ctx context.Context, salesOrderLineItemID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, salesOrderLineItemID)
}

// GetBySalesOrderAndSalesOrderLineItemID returns the live link for the pair, or nil.
func (s *SalesOrderSalesOrderLineItemStore) GetBySalesOrderAndSalesOrderLineItemID(ctx context.Context, salesOrderID, salesOrderLineItemID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, salesOrderID, salesOrderLineItemID)
}

// ExistsBySalesOrderAndSalesOrderLineItem reports whether a live link joins the sales order and the sales order line item.
func (s *SalesOrderSalesOrderLineItemStore) ExistsBySalesOrderAndSalesOrderLineItem(ctx context.Context, salesOrderID, salesOrderLineItemID uuid.UUID) (bool, error) {
	return s.Exists(ctx, salesOrderID, salesOrderLineItemID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *SalesOrderSalesOrderLineItemStore) AddRelationship(ctx context.Context, salesOrderID, salesOrderLineItemID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(salesOrderID, salesOrderLineItemID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *SalesOrderSalesOrderLineItemStore) RemoveRelationship(ctx context.Context, salesOrderID, salesOrderLineItemID uuid.UUID) (bool, error) {
	return s.Delete(ctx, salesOrderID, salesOrderLineItemID)
}

// RemoveAllForSalesOrder soft-deletes every live link of the sales order and returns how many it removed.
func (s *SalesOrderSalesOrderLineItemStore) RemoveAllForSalesOrder(ctx context.Context, salesOrderID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, salesOrderID)
}

// RemoveAllForSalesOrderLineItem soft-deletes every live link of the sales order line item and returns how many it removed.
func (s *SalesOrderSalesOrderLineItemStore) RemoveAllForSalesOrderLineItem(ctx context.Context, salesOrderLineItemID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, salesOrderLineItemID)
}
