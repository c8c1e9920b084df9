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
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var errUnavailable = errors.New("pool exhausted")

type failingProvider struct{ err error }

func (p failingProvider) Conn(context.Context) (bun.Conn, error) {
	return bun.Conn{}, p.err
}

func TestExecutorReturnsProviderErrorUnchanged(t *testing.T) {
	logger := &recordingLogger{}
	exec := NewExecutor(failingProvider{err: errUnavailable}, "CompanyNoteStore", WithLogger(logger))

	called := false
	err := exec.Execute(context.Background(), "Delete", []interface{}{"CompanyId", "c1"}, func(context.Context, bun.IDB) error {
		called = true
		return nil
	})
	assert.Same(t, errUnavailable, err)
	assert.False(t, called)

	failures := logger.find("operation failed")
	require.Len(t, failures, 1)
	assert.Equal(t, "error", failures[0].level)
	assert.Equal(t, "Delete", failures[0].fields["operation"])
	assert.Equal(t, "CompanyNoteStore", failures[0].fields["store"])
	assert.Equal(t, "c1", failures[0].fields["CompanyId"])
	assert.NotContains(t, failures[0].fields, "sql_error")
	assert.Len(t, logger.find("operation starting"), 1)
	assert.Empty(t, logger.find("operation succeeded"))
}

func TestExecutorReturnsOperationErrorUnchanged(t *testing.T) {
	db := openTestDB(t)
	logger := &recordingLogger{}
	exec := NewExecutor(db, "CompanyNoteStore", WithLogger(logger))

	err := exec.Execute(context.Background(), "Add", nil, func(context.Context, bun.IDB) error {
		return errUnavailable
	})
	assert.Same(t, errUnavailable, err)
	assert.Len(t, logger.find("operation failed"), 1)
}

func TestExecutorLogsSuccess(t *testing.T) {
	db := openTestDB(t)
	logger := &recordingLogger{}
	exec := NewExecutor(db, "CompanyNoteStore", WithLogger(logger))

	require.NoError(t, exec.Execute(context.Background(), "GetAll", nil, func(ctx context.Context, db bun.IDB) error {
		var one int
		return db.NewSelect().ColumnExpr("1").Scan(ctx, &one)
	}))

	succeeded := logger.find("operation succeeded")
	require.Len(t, succeeded, 1)
	assert.Equal(t, "debug", succeeded[0].level)
	assert.Contains(t, succeeded[0].fields, "duration")
	assert.Empty(t, logger.find("operation failed"))
}

func TestExecutorSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	db := openTestDB(t, noteLinks)
	store := NewStore(noteLinks, db, WithTracer(provider.Tracer("test")), WithLogger(&recordingLogger{}))

	_, err := store.Add(context.Background(), NewRow(uuid.New(), uuid.New()))
	require.NoError(t, err)
	_, err = NewStore(paymentLinks, db, WithTracer(provider.Tracer("test")), WithLogger(&recordingLogger{})).
		GetAll(context.Background())
	require.Error(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "CompanyNoteStore.Add", spans[0].Name)
	assert.Equal(t, codes.Unset, spans[0].Status.Code)
	assert.Equal(t, "Company_Payment.GetAll", spans[1].Name)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
	assert.NotEmpty(t, spans[1].Events)
}

func TestExecutorMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	assert.Same(t, metrics.operations, NewMetrics(reg).operations)

	db := openTestDB(t, noteLinks)
	store := NewStore(noteLinks, db, WithMetrics(metrics), WithLogger(&recordingLogger{}))
	ctx := context.Background()
	company, note := uuid.New(), uuid.New()

	_, err := store.Add(ctx, NewRow(company, note))
	require.NoError(t, err)
	_, err = store.Exists(ctx, company, note)
	require.NoError(t, err)
	_, err = store.Exists(ctx, company, note)
	require.NoError(t, err)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = store.Exists(canceled, company, note)
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.operations.WithLabelValues("CompanyNoteStore", "Add", "success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.operations.WithLabelValues("CompanyNoteStore", "Exists", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.operations.WithLabelValues("CompanyNoteStore", "Exists", "canceled")))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.duration))
}

func TestMetricsNilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.observe("s", "op", nil, 0) })
}

func TestMetricsExportPoolStats(t *testing.T) {
	reg := prometheus.NewRegistry()
	db := openTestDB(t, noteLinks)
	NewMetrics(reg, db)
	assert.NotPanics(t, func() { NewMetrics(reg, db) })

	count, err := testutil.GatherAndCount(reg,
		"linkstore_db_max_open_connections",
		"linkstore_db_closed_connections_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
