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
	"errors"

	"github.com/google/uuid"
	"github.com/tomoncle/linkstore/database"
	"github.com/tomoncle/linkstore/repository"
	"github.com/uptrace/bun"
)

// errEmailAddressMissing rolls back a primary change whose EmailAddress row
// does not exist.
var errEmailAddressMissing = errors.New("email address not found")

var personEmailAddressTable = repository.Table{
	Name:         "Person_EmailAddress",
	FirstColumn:  "PersonId",
	SecondColumn: "EmailAddressId",
	Store:        "PersonEmailAddressStore",
}

func init() { database.RegisteredModel(personEmailAddressTable) }

// PersonEmailAddressStore links people to email addresses through Person_EmailAddress.
type PersonEmailAddressStore struct {
	*repository.Store
}

// NewPersonEmailAddressStore returns a store over Person_EmailAddress backed by provider.
func NewPersonEmailAddressStore(provider repository.ConnProvider, opts ...repository.Option) *PersonEmailAddressStore {
	return &PersonEmailAddressStore{Store: repository.NewStore(personEmailAddressTable, provider, opts...)}
}

// GetByPersonID returns the live links of one person.
func (s *PersonEmailAddressStore) GetByPersonID(ctx context.Context, personID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, personID)
}

// GetByEmailAddressID lists the live links of the email address.
func (s *PersonEmailAddressStore) GetByEmailAddressID(ctx context.Context, emailAddressID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, emailAddressID)
}

// GetByPersonAndEmailAddressID returns the live link for the pair, or nil.
func (s *PersonEmailAddressStore) GetByPersonAndEmailAddressID(ctx context.Context, personID, emailAddressID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, personID, emailAddressID)
}

// ExistsByPersonAndEmailAddress reports whether a live link joins the person and the email address.
func (s *PersonEmailAddressStore) ExistsByPersonAndEmailAddress(ctx context.Context, personID, emailAddressID uuid.UUID) (bool, error) {
	return s.Exists(ctx, personID, emailAddressID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *PersonEmailAddressStore) AddRelationship(ctx context.Context, personID, emailAddressID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(personID, emailAddressID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *PersonEmailAddressStore) RemoveRelationship(ctx context.Context, personID, emailAddressID uuid.UUID) (bool, error) {
	return s.Delete(ctx, personID, emailAddressID)
}

// RemoveAllForPerson soft-deletes every live link of the person and returns how many it removed.
func (s *PersonEmailAddressStore) RemoveAllForPerson(ctx context.Context, personID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, personID)
}

// RemoveAllForEmailAddress soft-deletes every live link of the email address and returns how many it removed.
func (s *PersonEmailAddressStore) RemoveAllForEmailAddress(ctx context.Context, emailAddressID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, emailAddressID)
}

// SetPrimaryEmailAddress marks emailAddressID as the person's only primary
// address. Every other address linked to the person is cleared in the same
// transaction. It reports false, changing nothing, when the link is not live
// or the EmailAddress row does not exist.
func (s *PersonEmailAddressStore) SetPrimaryEmailAddress(ctx context.Context, personID, emailAddressID uuid.UUID) (bool, error) {
	t := s.Table()
	var updated bool
	payload := []interface{}{t.FirstColumn, personID, t.SecondColumn, emailAddressID, "entity", emailAddressEntity}
	err := s.Run(ctx, "SetPrimaryEmailAddress", payload, func(ctx context.Context, db bun.IDB) error {
		err := db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			linked, err := tx.NewSelect().
				TableExpr("?", bun.Ident(t.Name)).
				Where("? = ?", bun.Ident(t.FirstColumn), personID).
				Where("? = ?", bun.Ident(t.SecondColumn), emailAddressID).
				Where("? = ?", bun.Ident(t.ActiveColumn), true).
				Count(ctx)
			if err != nil || linked == 0 {
				return err
			}

			siblings := tx.NewSelect().
				TableExpr("?", bun.Ident(t.Name)).
				ColumnExpr("?", bun.Ident(t.SecondColumn)).
				Where("? = ?", bun.Ident(t.FirstColumn), personID).
				Where("? = ?", bun.Ident(t.ActiveColumn), true)
			if _, err := tx.NewUpdate().
				TableExpr("?", bun.Ident(emailAddressEntity)).
				Set("? = ?", bun.Ident(emailAddressPrimaryColumn), false).
				Where("? IN (?)", bun.Ident(entityKeyColumn), siblings).
				Exec(ctx); err != nil {
				return err
			}

			res, err := tx.NewUpdate().
				TableExpr("?", bun.Ident(emailAddressEntity)).
				Set("? = ?", bun.Ident(emailAddressPrimaryColumn), true).
				Where("? = ?", bun.Ident(entityKeyColumn), emailAddressID).
				Exec(ctx)
			if err != nil {
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			if n == 0 {
				return errEmailAddressMissing
			}
			updated = true
			return nil
		})
		if errors.Is(err, errEmailAddressMissing) {
			return nil
		}
		return err
	})
	return updated, err
}

// GetPrimaryEmailAddress returns the link to the person's primary address, or
// nil when none is flagged.
func (s *PersonEmailAddressStore) GetPrimaryEmailAddress(ctx context.Context, personID uuid.UUID) (*repository.Row, error) {
	rows, err := s.GetByJoin(ctx, emailAddressByPrimary, personID, true)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[0], nil
}
