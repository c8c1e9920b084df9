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

var paymentPaymentLineItemTable = repository.Table{
	Name:             "Payment_PaymentLineItem",
	FirstColumn:      "PaymentId",
	SecondColumn:     "PaymentLineItemId",
	ModifiedByColumn: "ModifiedBy",
	Reactivate:       true,
	Store:            "PaymentPaymentLineItemStore",
}

func init() { database.RegisteredModel(paymentPaymentLineItemTable) }

// PaymentPaymentLineItemStore links payments to payment line items through Payment_PaymentLineItem.
// Adding a pair that was removed earlier reactivates the old row.
type PaymentPaymentLineItemStore struct {
	*repository.Store
}

// NewPaymentPaymentLineItemStore returns a store over Payment_PaymentLineItem backed by provider.
func NewPaymentPaymentLineItemStore(provider repository.ConnProvider, opts ...repository.Option) *PaymentPaymentLineItemStore {
	return &PaymentPaymentLineItemStore{Store: repository.NewStore(paymentPaymentLineItemTable, provider, opts...)}
}

// GetByPaymentID lists the live links of the payment.
func (s *PaymentPaymentLineItemStore) GetByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, paymentID)
}

// GetByPaymentLineItemID lists the live links of the payment line item.
func (s *PaymentPaymentLineItemStore) GetByPaymentLineItemID(ctx context.Context, paymentLineItemID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, paymentLineItemID)
}

// GetByPaymentAndPaymentLineItemID returns the live link between the payment and the payment line item, or nil.
func (s *PaymentPaymentLineItemStore) GetByPaymentAndPaymentLineItemID(ctx context.Context, paymentID, paymentLineItemID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, paymentID, paymentLineItemID)
}

// ExistsByPaymentAndPaymentLineItem reports whether a live link joins the payment and the payment line item.
func (s *PaymentPaymentLineItemStore) ExistsByPaymentAndPaymentLineItem(ctx context.Context, paymentID, paymentLineItemID uuid.UUID) (bool, error) {
	return s.Exists(ctx, paymentID, paymentLineItemID)
}

// AddRelationship links the payment to the payment line item. A removed link is revived in place.
func (s *PaymentPaymentLineItemStore) AddRelationship(ctx context.Context, paymentID, paymentLineItemID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(paymentID, paymentLineItemID))
}

// RemoveRelationship soft-deletes the link and reports whether it was live.
func (s *PaymentPaymentLineItemStore) RemoveRelationship(ctx context.Context, paymentID, paymentLineItemID uuid.UUID) (bool, error) {
	return s.Delete(ctx, paymentID, paymentLineItemID)
}

// RemoveAllForPayment soft-deletes every live link of the payment and returns how many it removed.
func (s *PaymentPaymentLineItemStore) RemoveAllForPayment(ctx context.Context, paymentID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, paymentID)
}

// RemoveAllForPaymentLineItem soft-deletes every live link of the payment line item and returns how many it removed.
func (s *PaymentPaymentLineItemStore) RemoveAllForPaymentLineItem(ctx context.Context, paymentLineItemID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, paymentLineItemID)
}
