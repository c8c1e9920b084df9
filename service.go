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

// Package linkstore builds every CRM junction store over one connection
// provider.
package linkstore

import (
	"errors"

	"github.com/tomoncle/linkstore/association"
	"github.com/tomoncle/linkstore/database"
	"github.com/tomoncle/linkstore/repository"
)

// ErrNotInitialized is returned by NewDefault before database.InitDB.
var ErrNotInitialized = errors.New("linkstore: database not initialized")

// Stores holds one store per junction table. All stores share the provider
// and options they were built with.
type Stores struct {
	CompanyActivity              *association.CompanyActivityStore
	CompanyAddress               *association.CompanyAddressStore
	CompanyAttachment            *association.CompanyAttachmentStore
	CompanyEmailAddress          *association.CompanyEmailAddressStore
	CompanyInvoice               *association.CompanyInvoiceStore
	CompanyNote                  *association.CompanyNoteStore
	CompanyPayment               *association.CompanyPaymentStore
	CompanyPerson                *association.CompanyPersonStore
	CompanyPhone                 *association.CompanyPhoneStore
	CompanyQuote                 *association.CompanyQuoteStore
	CompanySalesOrder            *association.CompanySalesOrderStore
	PersonActivity               *association.PersonActivityStore
	PersonAddress                *association.PersonAddressStore
	PersonAttachment             *association.PersonAttachmentStore
	PersonEmailAddress           *association.PersonEmailAddressStore
	PersonNote                   *association.PersonNoteStore
	PersonPhone                  *association.PersonPhoneStore
	PersonSalesOrder             *association.PersonSalesOrderStore
	InvoiceActivity              *association.InvoiceActivityStore
	InvoiceInvoiceLineItem       *association.InvoiceInvoiceLineItemStore
	InvoiceNote                  *association.InvoiceNoteStore
	PaymentActivity              *association.PaymentActivityStore
	PaymentPaymentLineItem       *association.PaymentPaymentLineItemStore
	QuoteActivity                *association.QuoteActivityStore
	QuoteQuoteLineItem           *association.QuoteQuoteLineItemStore
	SalesOrderActivity           *association.SalesOrderActivityStore
	SalesOrderNote               *association.SalesOrderNoteStore
	SalesOrderSalesOrderLineItem *association.SalesOrderSalesOrderLineItemStore
}

// New builds every store over provider.
func New(provider repository.ConnProvider, opts ...repository.Option) *Stores {
	return &Stores{
		CompanyActivity:              association.NewCompanyActivityStore(provider, opts...),
		CompanyAddress:               association.NewCompanyAddressStore(provider, opts...),
		CompanyAttachment:            association.NewCompanyAttachmentStore(provider, opts...),
		CompanyEmailAddress:          association.NewCompanyEmailAddressStore(provider, opts...),
		CompanyInvoice:               association.NewCompanyInvoiceStore(provider, opts...),
		CompanyNote:                  association.NewCompanyNoteStore(provider, opts...),
		CompanyPayment:               association.NewCompanyPaymentStore(provider, opts...),
		CompanyPerson:                association.NewCompanyPersonStore(provider, opts...),
		CompanyPhone:                 association.NewCompanyPhoneStore(provider, opts...),
		CompanyQuote:                 association.NewCompanyQuoteStore(provider, opts...),
		CompanySalesOrder:            association.NewCompanySalesOrderStore(provider, opts...),
		PersonActivity:               association.NewPersonActivityStore(provider, opts...),
		PersonAddress:                association.NewPersonAddressStore(provider, opts...),
		PersonAttachment:             association.NewPersonAttachmentStore(provider, opts...),
		PersonEmailAddress:           association.NewPersonEmailAddressStore(provider, opts...),
		PersonNote:                   association.NewPersonNoteStore(provider, opts...),
		PersonPhone:                  association.NewPersonPhoneStore(provider, opts...),
		PersonSalesOrder:             association.NewPersonSalesOrderStore(provider, opts...),
		InvoiceActivity:              association.NewInvoiceActivityStore(provider, opts...),
		InvoiceInvoiceLineItem:       association.NewInvoiceInvoiceLineItemStore(provider, opts...),
		InvoiceNote:                  association.NewInvoiceNoteStore(provider, opts...),
		PaymentActivity:              association.NewPaymentActivityStore(provider, opts...),
		PaymentPaymentLineItem:       association.NewPaymentPaymentLineItemStore(provider, opts...),
		QuoteActivity:                association.NewQuoteActivityStore(provider, opts...),
		QuoteQuoteLineItem:           association.NewQuoteQuoteLineItemStore(provider, opts...),
		SalesOrderActivity:           association.NewSalesOrderActivityStore(provider, opts...),
		SalesOrderNote:               association.NewSalesOrderNoteStore(provider, opts...),
		SalesOrderSalesOrderLineItem: association.NewSalesOrderSalesOrderLineItemStore(provider, opts...),
	}
}

// NewDefault builds the stores over the global database manager.
func NewDefault(opts ...repository.Option) (*Stores, error) {
	manager := database.GetDatabaseManager()
	if manager == nil {
		return nil, ErrNotInitialized
	}
	return New(manager, opts...), nil
}

// All returns the engines behind every store, in declaration order.
func (s *Stores) All() []*repository.Store {
	return []*repository.Store{
		s.CompanyActivity.Store,
		s.CompanyAddress.Store,
		s.CompanyAttachment.Store,
		s.CompanyEmailAddress.Store,
		s.CompanyInvoice.Store,
		s.CompanyNote.Store,
		s.CompanyPayment.Store,
		s.CompanyPerson.Store,
		s.CompanyPhone.Store,
		s.CompanyQuote.Store,
		s.CompanySalesOrder.Store,
		s.PersonActivity.Store,
		s.PersonAddress.Store,
		s.PersonAttachment.Store,
		s.PersonEmailAddress.Store,
		s.PersonNote.Store,
		s.PersonPhone.Store,
		s.PersonSalesOrder.Store,
		s.InvoiceActivity.Store,
		s.InvoiceInvoiceLineItem.Store,
		s.InvoiceNote.Store,
		s.PaymentActivity.Store,
		s.PaymentPaymentLineItem.Store,
		s.QuoteActivity.Store,
		s.QuoteQuoteLineItem.Store,
		s.SalesOrderActivity.Store,
		s.SalesOrderNote.Store,
		s.SalesOrderSalesOrderLineItem.Store,
	}
}
