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
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tomoncle/linkstore/types"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

// alias names the junction table in SELECT statements. Writes use the bare
// table name because SQLite rejects aliases in UPDATE.
const alias = "j"

// Store is the composite-key engine shared by every junction table. It holds
// no state besides its configuration and is safe for concurrent use.
type Store struct {
	table Table
	exec  *Executor
	now   func() time.Time
}

// NewStore binds the engine to one junction table. It panics when the table
// record is incomplete, since that is a programming error.
func NewStore(table Table, provider ConnProvider, opts ...Option) *Store {
	if err := table.Validate(); err != nil {
		panic(err)
	}
	table = table.withDefaults()
	o := newOptions(opts)
	return &Store{
		table: table,
		exec:  newExecutor(provider, table.Store, o),
		now:   o.now,
	}
}

func (s *Store) Table() Table { return s.table }

// Run executes fn through the store's executor. Specializations use it for
// operations the engine does not provide.
func (s *Store) Run(ctx context.Context, op string, payload []interface{}, fn func(ctx context.Context, db bun.IDB) error) error {
	return s.exec.Execute(ctx, op, payload, fn)
}

func (s *Store) timestamp() time.Time { return s.now().UTC() }

func (s *Store) col(name string) schema.QueryWithArgs {
	return bun.SafeQuery("?.?", bun.Ident(alias), bun.Ident(name))
}

// selectRows starts a select over the junction table projecting into Row.
func (s *Store) selectRows(db bun.IDB) *bun.SelectQuery {
	t := s.table
	q := db.NewSelect().
		TableExpr("? AS ?", bun.Ident(t.Name), bun.Ident(alias)).
		ColumnExpr("? AS first_id", s.col(t.FirstColumn)).
		ColumnExpr("? AS second_id", s.col(t.SecondColumn)).
		ColumnExpr("? AS active", s.col(t.ActiveColumn)).
		ColumnExpr("? AS modified_date", s.col(t.ModifiedColumn))
	if t.ModifiedByColumn != "" {
		q = q.ColumnExpr("? AS modified_by", s.col(t.ModifiedByColumn))
	}
	return q
}

func (s *Store) live(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Where("? = ?", s.col(s.table.ActiveColumn), true)
}

func (s *Store) scanOne(ctx context.Context, q *bun.SelectQuery) (*Row, error) {
	var row Row
	if err := q.Limit(1).Scan(ctx, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *Store) scanAll(ctx context.Context, q *bun.SelectQuery) ([]*Row, error) {
	rows := make([]*Row, 0)
	if err := q.Scan(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// newUpdate stamps active and the modified date. The auditor column is only
// written when actor is set, so anonymous writes keep the previous auditor.
func (s *Store) newUpdate(db bun.IDB, active bool, now time.Time, actor string) *bun.UpdateQuery {
	t := s.table
	q := db.NewUpdate().
		TableExpr("?", bun.Ident(t.Name)).
		Set("? = ?", bun.Ident(t.ActiveColumn), active).
		Set("? = ?", bun.Ident(t.ModifiedColumn), now)
	if t.ModifiedByColumn != "" && actor != "" {
		q = q.Set("? = ?", bun.Ident(t.ModifiedByColumn), actor)
	}
	return q
}

func (s *Store) whereKey(q *bun.UpdateQuery, firstID, secondID uuid.UUID) *bun.UpdateQuery {
	return q.
		Where("? = ?", bun.Ident(s.table.FirstColumn), firstID).
		Where("? = ?", bun.Ident(s.table.SecondColumn), secondID)
}

func (s *Store) whereLive(q *bun.UpdateQuery) *bun.UpdateQuery {
	return q.Where("? = ?", bun.Ident(s.table.ActiveColumn), true)
}

func validateRow(row *Row) error {
	if row == nil {
		return nullArgument("row")
	}
	if row.FirstID == uuid.Nil {
		return emptyArgument("firstId")
	}
	if row.SecondID == uuid.Nil {
		return emptyArgument("secondId")
	}
	return nil
}

// Add persists row. Tables configured with Reactivate flip an existing pair
// back to active instead of inserting a duplicate.
func (s *Store) Add(ctx context.Context, row *Row) (*Row, error) {
	if err := validateRow(row); err != nil {
		return nil, err
	}
	if s.table.Reactivate {
		return s.upsert(ctx, "Add", row)
	}
	s.table.stamp(row, s.timestamp(), ActorFrom(ctx))
	err := s.Run(ctx, "Add", s.table.keyFields(row.FirstID, row.SecondID), func(ctx context.Context, db bun.IDB) error {
		return s.insert(ctx, db, row)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Upsert inserts row, or reactivates and refreshes the pair when any row for
// it already exists. Both steps share one transaction.
func (s *Store) Upsert(ctx context.Context, row *Row) (*Row, error) {
	if err := validateRow(row); err != nil {
		return nil, err
	}
	return s.upsert(ctx, "Upsert", row)
}

func (s *Store) upsert(ctx context.Context, op string, row *Row) (*Row, error) {
	s.table.stamp(row, s.timestamp(), ActorFrom(ctx))
	row.Active = true
	err := s.Run(ctx, op, s.table.keyFields(row.FirstID, row.SecondID), func(ctx context.Context, db bun.IDB) error {
		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			n, err := tx.NewSelect().
				TableExpr("?", bun.Ident(s.table.Name)).
				Where("? = ?", bun.Ident(s.table.FirstColumn), row.FirstID).
				Where("? = ?", bun.Ident(s.table.SecondColumn), row.SecondID).
				Count(ctx)
			if err != nil {
				return err
			}
			if n == 0 {
				return s.insert(ctx, tx, row)
			}
			_, err = s.whereKey(s.newUpdate(tx, true, row.ModifiedDate, row.ModifiedBy), row.FirstID, row.SecondID).Exec(ctx)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (s *Store) insert(ctx context.Context, db bun.IDB, row *Row) error {
	values := s.table.values(row)
	_, err := db.NewInsert().
		Model(&values).
		TableExpr("?", bun.Ident(s.table.Name)).
		Exec(ctx)
	return err
}

// GetByCompositeID returns the live row for the pair, or nil.
func (s *Store) GetByCompositeID(ctx context.Context, firstID, secondID uuid.UUID) (*Row, error) {
	return execute(ctx, s.exec, "GetByCompositeID", s.table.keyFields(firstID, secondID), func(ctx context.Context, db bun.IDB) (*Row, error) {
		q := s.live(s.selectRows(db)).
			Where("? = ?", s.col(s.table.FirstColumn), firstID).
			Where("? = ?", s.col(s.table.SecondColumn), secondID)
		return s.scanOne(ctx, q)
	})
}

func (s *Store) GetByFirstID(ctx context.Context, firstID uuid.UUID) ([]*Row, error) {
	return execute(ctx, s.exec, "GetByFirstID", s.table.firstFields(firstID), func(ctx context.Context, db bun.IDB) ([]*Row, error) {
		return s.scanAll(ctx, s.live(s.selectRows(db)).Where("? = ?", s.col(s.table.FirstColumn), firstID))
	})
}

func (s *Store) GetBySecondID(ctx context.Context, secondID uuid.UUID) ([]*Row, error) {
	return execute(ctx, s.exec, "GetBySecondID", s.table.secondFields(secondID), func(ctx context.Context, db bun.IDB) ([]*Row, error) {
		return s.scanAll(ctx, s.live(s.selectRows(db)).Where("? = ?", s.col(s.table.SecondColumn), secondID))
	})
}

// GetAll returns every live row. Use GetPage for anything but small tables.
func (s *Store) GetAll(ctx context.Context) ([]*Row, error) {
	return execute(ctx, s.exec, "GetAll", []interface{}{"entity", s.table.Name}, func(ctx context.Context, db bun.IDB) ([]*Row, error) {
		return s.scanAll(ctx, s.live(s.selectRows(db)))
	})
}

// GetPage returns one page of live rows, most recently modified first.
func (s *Store) GetPage(ctx context.Context, page *types.PageRequest) (*types.Pagination[Row], error) {
	if page == nil {
		return nil, nullArgument("page")
	}
	payload := []interface{}{"entity", s.table.Name, "page", page.GetPage(), "page_size", page.GetPageSize()}
	return execute(ctx, s.exec, "GetPage", payload, func(ctx context.Context, db bun.IDB) (*types.Pagination[Row], error) {
		pagination := types.NewDefaultPagination[Row](page.GetPage(), page.GetPageSize())
		total, err := s.live(s.selectRows(db)).Count(ctx)
		if err != nil || total == 0 {
			return pagination, err
		}
		q := s.live(s.selectRows(db)).
			OrderExpr("? DESC", s.col(s.table.ModifiedColumn)).
			Offset(page.GetOffset()).
			Limit(page.GetPageSize())
		rows, err := s.scanAll(ctx, q)
		if err != nil {
			return nil, err
		}
		pagination.Total = total
		pagination.Items = rows
		return pagination, nil
	})
}

func (s *Store) Exists(ctx context.Context, firstID, secondID uuid.UUID) (bool, error) {
	return execute(ctx, s.exec, "Exists", s.table.keyFields(firstID, secondID), func(ctx context.Context, db bun.IDB) (bool, error) {
		n, err := s.live(s.selectRows(db)).
			Where("? = ?", s.col(s.table.FirstColumn), firstID).
			Where("? = ?", s.col(s.table.SecondColumn), secondID).
			Count(ctx)
		return n > 0, err
	})
}

// Count returns the number of live rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	return execute(ctx, s.exec, "Count", []interface{}{"entity", s.table.Name}, func(ctx context.Context, db bun.IDB) (int, error) {
		return s.live(s.selectRows(db)).Count(ctx)
	})
}

// Delete soft-deletes the live row for the pair. It reports false when there
// was none, so deleting twice is not an error.
func (s *Store) Delete(ctx context.Context, firstID, secondID uuid.UUID) (bool, error) {
	n, err := execute(ctx, s.exec, "Delete", s.table.keyFields(firstID, secondID), func(ctx context.Context, db bun.IDB) (int64, error) {
		q := s.whereLive(s.whereKey(s.newUpdate(db, false, s.timestamp(), ActorFrom(ctx)), firstID, secondID))
		return affected(q.Exec(ctx))
	})
	return n > 0, err
}

func (s *Store) DeleteByFirstID(ctx context.Context, firstID uuid.UUID) (bool, error) {
	n, err := s.removeBy(ctx, "DeleteByFirstID", s.table.FirstColumn, firstID, s.table.firstFields(firstID))
	return n > 0, err
}

func (s *Store) DeleteBySecondID(ctx context.Context, secondID uuid.UUID) (bool, error) {
	n, err := s.removeBy(ctx, "DeleteBySecondID", s.table.SecondColumn, secondID, s.table.secondFields(secondID))
	return n > 0, err
}

// RemoveAllByFirstID soft-deletes every live row for firstID and returns how
// many rows this call deactivated.
func (s *Store) RemoveAllByFirstID(ctx context.Context, firstID uuid.UUID) (int64, error) {
	return s.removeBy(ctx, "RemoveAllByFirstID", s.table.FirstColumn, firstID, s.table.firstFields(firstID))
}

// RemoveAllBySecondID is RemoveAllByFirstID for the other side of the key.
func (s *Store) RemoveAllBySecondID(ctx context.Context, secondID uuid.UUID) (int64, error) {
	return s.removeBy(ctx, "RemoveAllBySecondID", s.table.SecondColumn, secondID, s.table.secondFields(secondID))
}

func (s *Store) removeBy(ctx context.Context, op, column string, id uuid.UUID, payload []interface{}) (int64, error) {
	return execute(ctx, s.exec, op, payload, func(ctx context.Context, db bun.IDB) (int64, error) {
		q := s.whereLive(s.newUpdate(db, false, s.timestamp(), ActorFrom(ctx))).
			Where("? = ?", bun.Ident(column), id)
		return affected(q.Exec(ctx))
	})
}

// Update writes row.Active and a fresh ModifiedDate to the row's pair and
// returns row without re-reading it.
func (s *Store) Update(ctx context.Context, row *Row) (*Row, error) {
	if err := validateRow(row); err != nil {
		return nil, err
	}
	s.table.stamp(row, s.timestamp(), ActorFrom(ctx))
	err := s.Run(ctx, "Update", s.table.keyFields(row.FirstID, row.SecondID), func(ctx context.Context, db bun.IDB) error {
		_, err := s.whereKey(s.newUpdate(db, row.Active, row.ModifiedDate, row.ModifiedBy), row.FirstID, row.SecondID).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// GetRemovedByFirstID lists soft-deleted rows for firstID.
func (s *Store) GetRemovedByFirstID(ctx context.Context, firstID uuid.UUID) ([]*Row, error) {
	return execute(ctx, s.exec, "GetRemovedByFirstID", s.table.firstFields(firstID), func(ctx context.Context, db bun.IDB) ([]*Row, error) {
		return s.scanAll(ctx, s.selectRows(db).
			Where("? = ?", s.col(s.table.ActiveColumn), false).
			Where("? = ?", s.col(s.table.FirstColumn), firstID))
	})
}

func (s *Store) GetRemovedBySecondID(ctx context.Context, secondID uuid.UUID) ([]*Row, error) {
	return execute(ctx, s.exec, "GetRemovedBySecondID", s.table.secondFields(secondID), func(ctx context.Context, db bun.IDB) ([]*Row, error) {
		return s.scanAll(ctx, s.selectRows(db).
			Where("? = ?", s.col(s.table.ActiveColumn), false).
			Where("? = ?", s.col(s.table.SecondColumn), secondID))
	})
}

func affected(res sql.Result, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
