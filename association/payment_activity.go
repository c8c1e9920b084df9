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

var paymentActivityTable = repository.Table{
	Name:         "Payment_Activity",
	FirstColumn:  "PaymentId",
	SecondColumn: "ActivityId",
	Reactivate:   true,
	Store:        "PaymentActivityStore",
}

func init() { database.RegisteredModel(paymentActivityTable) }

// PaymentActivityStore links payments to activities through Payment_Activity.
// Adding a pair that was removed earlier reactivates the old row.
type PaymentActivityStore struct {
	*repository.Store
}

// NewPaymentActivityStore returns a store over Payment_Activity backed by provider.
func NewPaymentActivityStore(provider repository.ConnProvider, opts ...repository.Option) *PaymentActivityStore {
	return &PaymentActivityStore{Store: repository.NewStore(paymentActivityTable, provider, opts...)}
}

// GetByPaymentID returns the live links of one payment.
func (s *PaymentActivityStore) GetByPaymentID(ctx context.Context, paymentID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, paymentID)
}

// GetByActivityID lists the live links of the activity.
func (s *PaymentActivityStore) GetByActivityID(ctx context.Context, activityID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, activityID)
}

// GetByPaymentAndActivityID returns the live link for the pair, or nil.
func (s *PaymentActivityStore) GetByPaymentAndActivityID(ctx context.Context, paymentID, activityID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, paymentID, activityID)
}

// ExistsByPaymentAndActivity reports whether a live link joins the payment and the activity.
func (s *PaymentActivityStore) ExistsByPaymentAndActivity(ctx context.Context, paymentID, activityID uuid.UUID) (bool, error) {
	return s.Exists(ctx, paymentID, activityID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *PaymentActivityStore) AddRelationship(ctx context.Context, paymentID, activityID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(paymentID, activityID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *PaymentActivityStore) RemoveRelationship(ctx context.Context, paymentID, activityID uuid.UUID) (bool, error) {
	return s.Delete(ctx, paymentID, activityID)
}

// RemoveAllForPayment soft-deletes every live link of the payment and returns how many it removed.
func (s *PaymentActivityStore) RemoveAllForPayment(ctx context.Context, paymentID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, paymentID)
}

// RemoveAllForActivity soft-deletes every live link of the activity and returns how many it removed.
func (s *PaymentActivityStore) RemoveAllForActivity(ctx context.Context, activityID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, activityID)
}
