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

var companyPaymentTable = repository.Table{
	Name:             "Company_Payment",
	FirstColumn:      "CompanyId",
	SecondColumn:     "PaymentId",
	ModifiedByColumn: "ModifiedBy",
	Reactivate:       true,
	Store:            "CompanyPaymentStore",
}

func init() { database.RegisteredModel(companyPaymentTable) }

// CompanyPaymentStore links companies to payments through Company_Payment.
// Adding a pair that was removed earlier reactivates the old row.
type CompanyPaymentStore struct {
	*repository.Store
}

// NewCompanyPaymentStore returns a store over Company_Payment backed by provider.
func NewCompanyPaymentStore(provider repository.ConnProvider, opts ...repository.Option) *CompanyPaymentStore {
	return &CompanyPaymentStore{Store: repository.NewStore(companyPaymentTable, provider, opts...)}
}

// GetByCompanyID returns the live links of one company.
func (s *CompanyPaymentStore) GetByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, companyID)
}

// GetByPaymentID lists the live links of the payment.
func (s *CompanyPaymentStore) GetByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, paymentID)
}

// GetByCompanyAndPaymentID returns the live link for the pair, or nil.
func (s *CompanyPaymentStore) GetByCompanyAndPaymentID(ctx context.Context, companyID, paymentID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, companyID, paymentID)
}

// ExistsByCompanyAndPayment reports whether a live link joins the company and the payment.
func (s *CompanyPaymentStore) ExistsByCompanyAndPayment(ctx context.Context, companyID, paymentID uuid.UUID) (bool, error) {
	return s.Exists(ctx, companyID, paymentID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *CompanyPaymentStore) AddRelationship(ctx context.Context, companyID, paymentID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(companyID, paymentID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *CompanyPaymentStore) RemoveRelationship(ctx context.Context, companyID, paymentID uuid.UUID) (bool, error) {
	return s.Delete(ctx, companyID, paymentID)
}

// RemoveAllForCompany soft-deletes every live link of the company and returns how many it removed.
func (s *CompanyPaymentStore) RemoveAllForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, companyID)
}

// RemoveAllForPayment soft-deletes every live link of the payment and returns how many it removed.
func (s *CompanyPaymentStore) RemoveAllForPayment(ctx context.Context, paymentID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, paymentID)
}
