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

var companyAttachmentTable = repository.Table{
	Name:         "Company_Attachment",
	FirstColumn:  "CompanyId",
	SecondColumn: "AttachmentId",
	Store:        "CompanyAttachmentStore",
}

func init() { database.RegisteredModel(companyAttachmentTable) }

// CompanyAttachmentStore links companies to attachments through Company_Attachment.
type CompanyAttachmentStore struct {
	*repository.Store
}

// NewCompanyAttachmentStore returns a store over Company_Attachment backed by provider.
func NewCompanyAttachmentStore(provider repository.ConnProvider, opts ...repository.Option) *CompanyAttachmentStore {
	return &CompanyAttachmentStore{Store: repository.NewStore(companyAttachmentTable, provider, opts...)}
}

// GetByCompanyID returns the live links of one company.
func (s *CompanyAttachmentStore) GetByCompanyID(ctx context.Context, companyID uuid.UUID) ([]*repository.Row, error) {
	return s.GetByFirstID(ctx, companyID)
}

// GetByAttachmentID lists the live links of the attachment.
func (s *CompanyAttachmentStore) GetByAttachmentID(ctx context.Context, attachmentID uuid.UUID) ([]*repository.Row, error) {
	return s.GetBySecondID(ctx, attachmentID)
}

// GetByCompanyAndAttachmentID returns the live link for the pair, or nil.
func (s *CompanyAttachmentStore) GetByCompanyAndAttachmentID(ctx context.Context, companyID, attachmentID uuid.UUID) (*repository.Row, error) {
	return s.GetByCompositeID(ctx, companyID, attachmentID)
}

// ExistsByCompanyAndAttachment reports whether a live link joins the company and the attachment.
func (s *CompanyAttachmentStore) ExistsByCompanyAndAttachment(ctx context.Context, companyID, attachmentID uuid.UUID) (bool, error) {
	return s.Exists(ctx, companyID, attachmentID)
}

// AddRelationship stores an active link stamped with the current time.
func (s *CompanyAttachmentStore) AddRelationship(ctx context.Context, companyID, attachmentID uuid.UUID) (*repository.Row, error) {
	return s.Add(ctx, repository.NewRow(companyID, attachmentID))
}

// RemoveRelationship soft-deletes the link. It reports false when no live link existed.
func (s *CompanyAttachmentStore) RemoveRelationship(ctx context.Context, companyID, attachmentID uuid.UUID) (bool, error) {
	return s.Delete(ctx, companyID, attachmentID)
}

// RemoveAllForCompany soft-deletes every live link of the company and returns how many it removed.
func (s *CompanyAttachmentStore) RemoveAllForCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	return s.RemoveAllByFirstID(ctx, companyID)
}

// RemoveAllForAttachment soft-deletes every live link of the attachment and returns how many it removed.
func (s *CompanyAttachmentStore) RemoveAllForAttachment(ctx context.Context, attachmentID uuid.UUID) (int64, error) {
	return s.RemoveAllBySecondID(ctx, attachmentID)
}
