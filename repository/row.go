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
	"time"

	"github.com/google/uuid"
)

// Row is one association between two entities. FirstID and SecondID are
// positional; their meaning is fixed by the Table the row belongs to.
type Row struct {
	FirstID      uuid.UUID `bun:"first_id" json:"first_id"`
	SecondID     uuid.UUID `bun:"second_id" json:"second_id"`
	Active       bool      `bun:"active" json:"active"`
	ModifiedDate time.Time `bun:"modified_date" json:"modified_date"`
	ModifiedBy   string    `bun:"modified_by" json:"modified_by,omitempty"`
}

// NewRow returns a live row for the pair. ModifiedDate is filled in by the
// store on write.
func NewRow(firstID, secondID uuid.UUID) *Row {
	return &Row{FirstID: firstID, SecondID: secondID, Active: true}
}
