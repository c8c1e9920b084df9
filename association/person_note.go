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

var personNoteTable = repository.Table{
	Name:         "Person_Note",
	FirstColumn:  "PersonId",
	SecondColumn: "NoteId",
	Store:        "PersonNoteStore",
}

func init() { database.RegisteredModel(personNoteTable) }

// PersonNoteStore links people to notes through Person_Note.
type PersonNoteStore struct {
	*repository.Store
}

// NewPersonNoteStore returns a store over Person_Note backed by provider.
func NewPersonNoteStore(provider repository.ConnProvider, opts ...repository.Option) *PersonNoteStore {
	return &PersonNoteStore{Store: repository.NewStore(personNoteTable, provider, opts...)}
}

// GetByPersonID returns the live links of one person.
func (s *PersonNoteStore) GetByPersonID(ctx context.Context, personID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, personID)
}

// GetByNoteID lists the live links of the note.
func (s *PersonNoteStore) GetByNoteID(ctx context.Context, noteID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, noteID)
}

// GetByPersonAndNoteID returns the live link for the pair, or nil.
func (s *PersonNoteStore) GetByPersonAndNoteID(ctx context.Context, personID, noteID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, personID, noteID)
}

// ExistsByPersonAndNote reports whether a live link joins the person and the note.
func (s *PersonNoteStore) ExistsByPersonAndNote(ctx context.Context, personID, noteID uuid.UUID) (bool, error) {
	return s.Exists(ctx, personID, noteID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *PersonNoteStore) AddRelationship(ctx context.Context, personID, noteID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(personID, noteID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *PersonNoteStore) RemoveRelationship(ctx context.Context, personID, noteID uuid.UUID) (bool, error) {
	return s.Delete(ctx, personID, noteID)
}

// RemoveAllForPerson soft-deletes every live link of the person and returns how many it removed.
func (s *PersonNoteStore) RemoveAllForPerson(ctx context.Context, personID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, personID)
}

// RemoveAllForNote soft-deletes every live link of the note and returns how many it removed.
func (s *PersonNoteStore) RemoveAllForNote(ctx context.Context, noteID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, noteID)
}

// GetByNoteType returns the person's live links whose note has the given note type.
// A nil personID matches every person.
func (s *PersonNoteStore) GetByNoteType(ctx context.Context, personID, noteTypeID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByJoin(ctx, noteByType, personID, noteTypeID)
}
