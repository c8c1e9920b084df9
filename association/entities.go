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

import "github.com/tomoncle/linkstore/repository"

// Entity tables on the far side of the junctions. Each is keyed by Id and
// soft-deleted through Active like the junctions themselves.
const (
	entityKeyColumn = "Id"

	noteEntity         = "Note"
	salesOrderEntity   = "SalesOrder"
	activityEntity     = "Activity"
	addressEntity      = "Address"
	phoneEntity        = "Phone"
	invoiceEntity      = "Invoice"
	emailAddressEntity = "EmailAddress"

	emailAddressPrimaryColumn = "IsPrimary"
)

var (
	noteByType = repository.JoinFilter{Table: noteEntity, KeyColumn: entityKeyColumn, FilterColumn: "NoteTypeId"}

	salesOrderByStatus = repository.JoinFilter{Table: salesOrderEntity, KeyColumn: entityKeyColumn, FilterColumn: "SalesOrderStatusId"}

	activityByType = repository.JoinFilter{Table: activityEntity, KeyColumn: entityKeyColumn, FilterColumn: "ActivityTypeId"}

	addressByType = repository.JoinFilter{Table: addressEntity, KeyColumn: entityKeyColumn, FilterColumn: "AddressTypeId"}

	phoneByType = repository.JoinFilter{Table: phoneEntity, KeyColumn: entityKeyColumn, FilterColumn: "PhoneTypeId"}

	invoiceByStatus = repository.JoinFilter{Table: invoiceEntity, KeyColumn: entityKeyColumn, FilterColumn: "InvoiceStatusId"}

	emailAddressByPrimary = repository.JoinFilter{Table: emailAddressEntity, KeyColumn: entityKeyColumn, FilterColumn: emailAddressPrimaryColumn}
)
