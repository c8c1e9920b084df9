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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func TestCompanyAddressPrimaryIsMostRecent(t *testing.T) {
	ctx := context.Background()
	store := NewCompanyAddressStore(openTestDB(t), testOptions()...)
	company, office, warehouse := uuid.New(), uuid.New(), uuid.New()

	primary, err := store.GetPrimaryAddressForCompany(ctx, company)
	require.NoError(t, err)
	assert.Nil(t, primary)

	_, err = store.AddRelationship(ctx, company, office)
	require.NoError(t, err)
	_, err = store.AddRelationship(ctx, company, warehouse)
	require.NoError(t, err)

	primary, err = store.GetPrimaryAddressForCompany(ctx, company)
	require.NoError(t, err)
	assert.Equal(t, warehouse, primary.SecondID)

	ok, err := store.SetPrimaryAddress(ctx, company, office)
	require.NoError(t, err)
	assert.True(t, ok)
	primary, err = store.GetPrimaryAddressForCompany(ctx, company)
	require.NoError(t, err)
	assert.Equal(t, office, primary.SecondID)

	ok, err = store.SetPrimaryAddress(ctx, company, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompanyPhonePrimary(t *testing.T) {
	ctx := context.Background()
	store := NewCompanyPhoneStore(openTestDB(t), testOptions()...)
	company, desk, mobile := uuid.New(), uuid.New(), uuid.New()
	_, err := store.AddRelationship(ctx, company, desk)
	require.NoError(t, err)
	_, err = store.AddRelationship(ctx, company, mobile)
	require.NoError(t, err)

	_, err = store.RemoveRelationship(ctx, company, mobile)
	require.NoError(t, err)
	primary, err := store.GetPrimaryPhoneForCompany(ctx, company)
	require.NoError(t, err)
	assert.Equal(t, desk, primary.SecondID)

	ok, err := store.SetPrimaryPhone(ctx, company, mobile)
	require.NoError(t, err)
	assert.False(t, ok)
}

func isPrimary(t *testing.T, db bun.IDB, emailAddressID uuid.UUID) bool {
	t.Helper()
	var primary bool
	err := db.NewSelect().
		TableExpr("?", bun.Ident(emailAddressEntity)).
		ColumnExpr("?", bun.Ident(emailAddressPrimaryColumn)).
		Where("? = ?", bun.Ident(entityKeyColumn), emailAddressID).
		Scan(context.Background(), &primary)
	require.NoError(t, err)
	return primary
}

func TestPersonEmailAddressPrimaryTracking(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	_, err := db.GetDB().ExecContext(ctx, "CREATE TABLE ? (? VARCHAR(36) NOT NULL, ? BOOLEAN NOT NULL, ? BOOLEAN NOT NULL)",
		bun.Ident(emailAddressEntity), bun.Ident(entityKeyColumn), bun.Ident("Active"), bun.Ident(emailAddressPrimaryColumn))
	require.NoError(t, err)
	store := NewPersonEmailAddressStore(db, testOptions()...)

	person, other := uuid.New(), uuid.New()
	work, home, foreign := uuid.New(), uuid.New(), uuid.New()
	for _, id := range []uuid.UUID{work, home, foreign} {
		insertEntity(t, db, emailAddressEntity, map[string]interface{}{"Id": id, emailAddressPrimaryColumn: false})
	}
	for _, id := range []uuid.UUID{work, home} {
		_, err := store.AddRelationship(ctx, person, id)
		require.NoError(t, err)
	}
	_, err = store.AddRelationship(ctx, other, foreign)
	require.NoError(t, err)

	ok, err := store.SetPrimaryEmailAddress(ctx, other, foreign)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.SetPrimaryEmailAddress(ctx, person, work)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = store.SetPrimaryEmailAddress(ctx, person, home)
	require.NoError(t, err)
	require.True(t, ok)

	assert.False(t, isPrimary(t, db.GetDB(), work))
	assert.True(t, isPrimary(t, db.GetDB(), home))
	assert.True(t, isPrimary(t, db.GetDB(), foreign))

	primary, err := store.GetPrimaryEmailAddress(ctx, person)
	require.NoError(t, err)
	require.NotNil(t, primary)
	assert.Equal(t, home, primary.SecondID)

	ok, err = store.SetPrimaryEmailAddress(ctx, person, foreign)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, isPrimary(t, db.GetDB(), home))

	none, err := store.GetPrimaryEmailAddress(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestSetPrimaryEmailAddressWithoutAddressRowChangesNothing(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	_, err := db.GetDB().ExecContext(ctx, "CREATE TABLE ? (? VARCHAR(36) NOT NULL, ? BOOLEAN NOT NULL, ? BOOLEAN NOT NULL)",
		bun.Ident(emailAddressEntity), bun.Ident(entityKeyColumn), bun.Ident("Active"), bun.Ident(emailAddressPrimaryColumn))
	require.NoError(t, err)
	store := NewPersonEmailAddressStore(db, testOptions()...)

	person, work, orphan := uuid.New(), uuid.New(), uuid.New()
	insertEntity(t, db, emailAddressEntity, map[string]interface{}{"Id": work, emailAddressPrimaryColumn: false})
	for _, id := range []uuid.UUID{work, orphan} {
		_, err := store.AddRelationship(ctx, person, id)
		require.NoError(t, err)
	}
	ok, err := store.SetPrimaryEmailAddress(ctx, person, work)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.SetPrimaryEmailAddress(ctx, person, orphan)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, isPrimary(t, db.GetDB(), work))

	primary, err := store.GetPrimaryEmailAddress(ctx, person)
	require.NoError(t, err)
	require.NotNil(t, primary)
	assert.Equal(t, work, primary.SecondID)
}
