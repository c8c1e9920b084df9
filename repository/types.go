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

package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tomoncle/linkstore/types"
)

// AssociationRepository is the composite-key contract shared by every
// junction store.
type AssociationRepository interface {
	// Add inserts row, or reactivates it for tables configured to do so.
	Add(ctx context.Context, row *Row) (*Row, error)

	// Upsert inserts row or reactivates an existing pair.
	Upsert(ctx context.Context, row *Row) (*Row, error)

	// GetByCompositeID returns the live row for the pair, or nil.
	GetByCompositeID(ctx context.Context, firstID, secondID uuid.UUID) (*Row, error)

	// GetByFirstID returns the live rows for one first entity.
	GetByFirstID(ctx context.Context, firstID uuid.UUID) ([]*Row, error)

	// GetBySecondID returns the live rows for one second entity.
	GetBySecondID(ctx context.Context, secondID uuid.UUID) ([]*Row, error)

	// GetAll returns every live row.
	GetAll(ctx context.Context) ([]*Row, error)

	// Exists reports whether the pair has a live row.
	Exists(ctx context.Context, firstID, secondID uuid.UUID) (bool, error)

	// Delete soft-deletes the pair.
	Delete(ctx context.Context, firstID, secondID uuid.UUID) (bool, error)

	// DeleteByFirstID soft-deletes every live row for firstID.
	DeleteByFirstID(ctx context.Context, firstID uuid.UUID) (bool, error)

	// DeleteBySecondID soft-deletes every live row for secondID.
	DeleteBySecondID(ctx context.Context, secondID uuid.UUID) (bool, error)

	// RemoveAllByFirstID soft-deletes and counts the rows for firstID.
	RemoveAllByFirstID(ctx context.Context, firstID uuid.UUID) (int64, error)

	// RemoveAllBySecondID soft-deletes and counts the rows for secondID.
	RemoveAllBySecondID(ctx context.Context, secondID uuid.UUID) (int64, error)

	// Update writes Active and ModifiedDate for the row's pair.
	Update(ctx context.Context, row *Row) (*Row, error)
}

// PageQueryRepository adds paging and join reads.
type PageQueryRepository interface {
	GetPage(ctx context.Context, page *types.PageRequest) (*types.Pagination[Row], error)
	Count(ctx context.Context) (int, error)
	GetByJoin(ctx context.Context, f JoinFilter, firstID uuid.UUID, value interface{}) ([]*Row, error)
	MostRecent(ctx context.Context, firstID uuid.UUID) (*Row, error)
	Touch(ctx context.Context, firstID, secondID uuid.UUID) (bool, error)
}

// DiagnosticRepository exposes soft-deleted rows.
type DiagnosticRepository interface {
	GetRemovedByFirstID(ctx context.Context, firstID uuid.UUID) ([]*Row, error)
	GetRemovedBySecondID(ctx context.Context, secondID uuid.UUID) ([]*Row, error)
}

type Repository interface {
	AssociationRepository
	PageQueryRepository
	DiagnosticRepository
	Table() Table
}

var _ Repository = (*Store)(nil)
