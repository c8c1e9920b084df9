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

package linkstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/linkstore/database"
)

func initTestDB(t *testing.T) {
	t.Helper()
	cfg := &database.Config{
		ConnectionConfig: *database.DefaultConnectionConfig(),
		BootstrapConfig:  database.BootstrapConfig{EnableOnStartup: true},
	}
	cfg.ConnectionConfig.Type = "sqlite"
	cfg.ConnectionConfig.DBName = filepath.Join(t.TempDir(), "crm")
	cfg.ConnectionConfig.HealthCheckInterval = 0

	_, err := database.InitDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.CloseDB() })
}

func TestNewDefaultRequiresInitializedDatabase(t *testing.T) {
	require.NoError(t, database.CloseDB())

	stores, err := NewDefault()
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Nil(t, stores)
}

func TestStoresShareTheGlobalDatabase(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()

	stores, err := NewDefault()
	require.NoError(t, err)

	all := stores.All()
	require.Len(t, all, 28)
	names := map[string]bool{}
	for _, store := range all {
		require.NotNil(t, store)
		names[store.Table().Name] = true
	}
	assert.Len(t, names, 28)

	company, person := uuid.New(), uuid.New()
	_, err = stores.CompanyPerson.AddRelationship(ctx, company, person)
	require.NoError(t, err)

	exists, err := stores.CompanyPerson.ExistsByCompanyAndPerson(ctx, company, person)
	require.NoError(t, err)
	assert.True(t, exists)

	for _, store := range all {
		count, err := store.Count(ctx)
		require.NoError(t, err)
		if store.Table().Name == "Company_Person" {
			assert.Equal(t, 1, count)
		} else {
			assert.Zero(t, count, store.Table().Name)
		}
	}
}
