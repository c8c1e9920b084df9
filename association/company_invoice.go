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

var companyInvoiceTable = repository.Table{
	Name:             "Company_Invoice",
	FirstColumn:      "CompanyId",
	SecondColumn:     "InvoiceId",
	ModifiedByColumn: "ModifiedBy",
	Reactivate:       true,
	Store:            "CompanyInvoiceStore",
}

func init() { database.RegisteredModel(companyInvoiceTable) }

// CompanyInvoiceStore links companies to invoices through Company_Invoice.
// Adding a pair that was removed earlier reactivates the old row.
type CompanyInvoiceStore struct {
	*repository.Store
}

// NewCompanyInvoiceStore returns a store over Company_Invoice backed by provider.
func NewCompanyInvoiceStore(provider repository.ConnProvider, opts ...repository.Option) *CompanyInvoiceStore {
	return &CompanyInvoiceStore{Store: repository.NewStore(companyInvoiceTable, provider, opts...)}
}

// GetByCompanyID lists the live links of the company.
func (s *CompanyInvoiceStore) GetByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, companyID)
}

// GetByInvoiceID lists the live links of the invoice.
func (s *CompanyInvoiceStore) GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, invoiceID)
}

// GetByCompanyAndInvoiceID returns the live link between the company and the invoice, or nil.
func (s *CompanyInvoiceStore) GetByCompanyAndInvoiceID(ctx context.Context, companyID, invoiceID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, companyID, invoiceID)
}

// ExistsByCompanyAndInvoice reports whether a live link joins the company and the invoice.
func (s *CompanyInvoiceStore) ExistsByCompanyAndInvoice(ctx context.Context, companyID, invoiceID uuid.UUID) (bool, error) {
	return s.Exists(ctx, companyID, invoiceID)
}

// AddRelationship links the company to the invoice. A removed link is revived in place.
func (s *CompanyInvoiceStore) AddRelationship(ctx context.Context, companyID, invoiceID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(companyID, invoiceID))
}

// RemoveRelationship soft-deletes the link and reports whether it was live.
func (s *CompanyInvoiceStore) RemoveRelationship(ctx context.Context, companyID, invoiceID uuid.UUID) (bool, error) {
	return s.Delete(ctx, companyID, invoiceID)
}

// RemoveAllForCompany soft-deletes every live link of the company and returns how many it removed.
func (s *CompanyInvoiceStore) RemoveAllForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, companyID)
}

// RemoveAllForInvoice soft-deletes every live link of the invoice and returns how many it removed.
func (s *CompanyInvoiceStore) RemoveAllForInvoice(ctx context.Context, invoiceID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, invoiceID)
}

// GetByInvoiceStatus returns the company's live links whose invoice has the given invoice status.
// A nil companyID matches every company.
func (s *CompanyInvoiceStore) GetByInvoiceStatus(ctx context.Context, companyID, statusID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByJoin(ctx, invoiceByStatus, companyID, statusID)
}
