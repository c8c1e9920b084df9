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

var companySalesOrderTable = repository.Table{
	Name:         "Company_SalesOrder",
	FirstColumn:  "CompanyId",
	SecondColumn: "SalesOrderId",
	Store:        "CompanySalesOrderStore",
}

func init() { database.RegisteredModel(companySalesOrderTable) }

// CompanySalesOrderStore links companies to sales orders through Company_SalesOrder.
type CompanySalesOrderStore struct {
	*repository.Store
}

// NewCompanySalesOrderStore returns a store over Company_SalesOrder backed by provider.
func NewCompanySalesOrderStore(provider repository.ConnProvider, opts ...repository.Option) *CompanySalesOrderStore {
	return &CompanySalesOrderStore{Store: repository.NewStore(companySalesOrderTable, provider, opts...)}
}

// GetByCompanyID lists the live links of the company.
func (s *CompanySalesOrderStore) GetByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, companyID)
}

// GetBySalesOrderID lists the live links of the sales order.
func (s *CompanySalesOrderStore) GetBySalesOrderID(ctx context.Context, salesOrderID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, salesOrderID)
}

// GetByCompanyAndSalesOrderID returns the live link between the company and the sales order, or nil.
func (s *CompanySalesOrderStore) GetByCompanyAndSalesOrderID(ctx context.Context, companyID, salesOrderID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, companyID, salesOrderID)
}

// ExistsByCompanyAndSalesOrder reports whether a live link joins the company and the sales order.
func (s *CompanySalesOrderStore) ExistsByCompanyAndSalesOrder(ctx context.Context, companyID, salesOrderID uuid.UUID) (bool, error) {
	return s.Exists(ctx, companyID, salesOrderID)
}

// AddRelationship links the company to the sales order.
func (s *CompanySalesOrderStore) AddRelationship(ctx context.Context, companyID, salesOrderID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(companyID, salesOrderID))
}

// RemoveRelationship soft-deletes the link and reports whether it was live.
func (s *CompanySalesOrderStore) RemoveRelationship(ctx context.Context, companyID, salesOrderID uuid.UUID) (bool, error) {
	return s.Delete(ctx, companyID, salesOrderID)
}

// RemoveAllForCompany soft-deletes every live link of the company and returns how many it removed.
func (s *CompanySalesOrderStore) RemoveAllForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, companyID)
}

// RemoveAllForSalesOrder soft-deletes every live link of the sales order and returns how many it removed.
func (s *CompanySalesOrderStore) RemoveAllForSalesOrder(ctx context.Context, salesOrderID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, salesOrderID)
}

// GetBySalesOrderStatus returns the company's live links whose sales order has the given sales order status.
// A nil companyID matches every company.
func (s *CompanySalesOrderStore) GetBySalesOrderStatus(ctx context.Context, companyID, statusID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByJoin(ctx, salesOrderByStatus, companyID, statusID)
}
