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
	"github.com/uptrace/bun"
)

// JoinFilter describes the table holding the entity on the second side of a
// junction and the column to filter it by.
type JoinFilter struct {
	// Table is the side table, e.g. "Note".
	Table string `validate:"required"`
	// KeyColumn is the side table's primary key, joined to the junction's
	// second column.
	KeyColumn string `validate:"required"`
	// FilterColumn is compared to the value passed to GetByJoin.
	FilterColumn string `validate:"required"`
	// ActiveColumn defaults to "Active".
	ActiveColumn string
}

const sideAlias = "s"

// GetByJoin returns the live rows whose second entity is live and has
// FilterColumn equal to value. A nil firstID matches every first entity.
func (s *Store) GetByJoin(ctx context.Context, f JoinFilter, firstID uuid.UUID, value interface{}) ([]*Row, error) {
	if err := tableValidator.Struct(f); err != nil {
		return nil, &ArgumentError{Param: "filter", Reason: err.Error()}
	}
	if f.ActiveColumn == "" {
		f.ActiveColumn = defaultActiveColumn
	}
	payload := append(s.table.firstFields(firstID), "join", f.Table, f.FilterColumn, value)
	return execute(ctx, s.exec, "GetByJoin", payload, func(ctx context.Context, db bun.IDB) ([]*Row, error) {
		q := s.live(s.selectRows(db)).
			Join("JOIN ? AS ?", bun.Ident(f.Table), bun.Ident(sideAlias)).
			JoinOn("? = ?", bun.SafeQuery("?.?", bun.Ident(sideAlias), bun.Ident(f.KeyColumn)), s.col(s.table.SecondColumn)).
			Where("? = ?", bun.SafeQuery("?.?", bun.Ident(sideAlias), bun.Ident(f.ActiveColumn)), true).
			Where("? = ?", bun.SafeQuery("?.?", bun.Ident(sideAlias), bun.Ident(f.FilterColumn)), value)
		if firstID != uuid.Nil {
			q = q.Where("? = ?", s.col(s.table.FirstColumn), firstID)
		}
		return s.scanAll(ctx, q)
	})
}

// MostRecent returns the live row for firstID with the latest ModifiedDate,
// or nil.
func (s *Store) MostRecent(ctx context.Context, firstID uuid.UUID) (*Row, error) {
	return execute(ctx, s.exec, "MostRecent", s.table.firstFields(firstID), func(ctx context.Context, db bun.IDB) (*Row, error) {
		q := s.live(s.selectRows(db)).
			Where("? = ?", s.col(s.table.FirstColumn), firstID).
			OrderExpr("? DESC", s.col(s.table.ModifiedColumn))
		return s.scanOne(ctx, q)
	})
}

// Touch refreshes ModifiedDate on the live row for the pair. It reports false
// when the pair has no live row.
func (s *Store) Touch(ctx context.Context, firstID, secondID uuid.UUID) (bool, error) {
	n, err := execute(ctx, s.exec, "Touch", s.table.keyFields(firstID, secondID), func(ctx context.Context, db bun.IDB) (int64, error) {
		q := s.whereLive(s.whereKey(s.newUpdate(db, true, s.timestamp(), ActorFrom(ctx)), firstID, secondID))
		return affected(q.Exec(ctx))
	})
	return n > 0, err
}
