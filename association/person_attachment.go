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

var personAttachmentTable = repository.Table{
	Name:         "Person_Attachment",
	FirstColumn:  "PersonId",
	SecondColumn: "AttachmentId",
	Store:        "PersonAttachmentStore",
}

func init() { database.RegisteredModel(personAttachmentTable) }

// PersonAttachmentStore links people to attachments through Person_Attachment.
type PersonAttachmentStore struct {
	*repository.Store
}

// NewPersonAttachmentStore returns a store over Person_Attachment backed by provider.
func NewPersonAttachmentStore(provider repository.ConnProvider, opts ...repository.Option) *PersonAttachmentStore {
	return &PersonAttachmentStore{Store: repository.NewStore(personAttachmentTable, provider, opts...)}
}

// GetByPersonID lists the live links of the person.
func (s *PersonAttachmentStore) GetByPersonID(ctx context.Context, personID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, personID)
}

// GetByAttachmentID lists the live links of the attachment.
func (s *PersonAttachmentStore) GetByAttachmentID(ctx context.Context, attachmentID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, attachmentID)
}

// GetByPersonAndAttachmentID returns the live link between the person and the attachment, or nil.
func (s *PersonAttachmentStore) GetByPersonAndAttachmentID(ctx context.Context, personID, attachmentID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, personID, attachmentID)
}

// ExistsByPersonAndAttachment reports whether a live link joins the person and the attachment.
func (s *PersonAttachmentStore) ExistsByPersonAndAttachment(ctx context.Context, personID, attachmentID uuid.UUID) (bool, error) {
	return s.Exists(ctx, personID, attachmentID)
}

// AddRelationship links the person to the attachment.
func (s *PersonAttachmentStore) AddRelationship(ctx context.Context, personID, attachmentID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(personID, attachmentID))
}

// RemoveRelationship soft-deletes the link and reports whether it was live.
func (s *PersonAttachmentStore) RemoveRelationship(ctx context.Context, personID, attachmentID uuid.UUID) (bool, error) {
	return s.Delete(ctx, personID, attachmentID)
}

// RemoveAllForPerson soft-deletes every live link of the person and returns how many it removed.
func (s *PersonAttachmentStore) RemoveAllForPerson(ctx context.Context, personID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, personID)
}

// RemoveAllForAttachment soft-deletes every live link of the attachment and returns how many it removed.
func (s *PersonAttachmentStore) RemoveAllForAttachment(ctx context.Context, attachmentID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, attachmentID)
}
