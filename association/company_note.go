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

var companyNoteTable = repository.Table{
	Name:         "Company_Note",
	FirstColumn:  "CompanyId",
	SecondColumn: "NoteId",
	Store:        "CompanyNoteStore",
}

func init() { database.RegisteredModel(companyNoteTable) }

// CompanyNoteStore links companies to notes through Company_Note.
type CompanyNoteStore struct {
	*repository.Store
}

// NewCompanyNoteStore returns a store over Company_Note backed by provider.
func NewCompanyNoteStore(provider repository.ConnProvider, opts ...repository.Option) *CompanyNoteStore {
	return &CompanyNoteStore{Store: repository.NewStore(companyNoteTable, provider, opts...)}
}

// GetByCompanyID returns the live links of one company.
func (s *CompanyNoteStore) GetByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, companyID)
}

// GetByNoteID lists the live links of the note.
func (s *CompanyNoteStore) GetByNoteID(ctx context.Context, noteID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, noteID)
}

// GetByCompanyAndNoteID returns the live link for the pair, or nil.
func (s *CompanyNoteStore) GetByCompanyAndNoteID(ctx context.Context, companyID, noteID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, companyID, noteID)
}

// ExistsByCompanyAndNote reports whether a live link joins the company and the note.
func (s *CompanyNoteStore) ExistsByCompanyAndNote(ctx context.Context, companyID, noteID uuid.UUID) (bool, error) {
	return s.Exists(ctx, companyID, noteID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *CompanyNoteStore) AddRelationship(ctx context.Context, companyID, noteID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(companyID, noteID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *CompanyNoteStore) RemoveRelationship(ctx context.Context, companyID, noteID uuid.UUID) (bool, error) {
	return s.Delete(ctx, companyID, noteID)
}

// RemoveAllForCompany soft-deletes every live link of the company and returns how many it removed.
func (s *CompanyNoteStore) RemoveAllForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, companyID)
}

// RemoveAllForNote soft-deletes every live link of the note and returns how many it removed.
func (s *CompanyNoteStore) RemoveAllForNote(ctx context.Context, noteID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, noteID)
}

// GetByNoteType returns the company's live links whose note has the given note type.
// A nil companyID matches every company.
func (s *CompanyNoteStore) GetByNoteType(ctx context.Context, companyID, noteTypeID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByJoin(ctx, noteByType, companyID, noteTypeID)
}
