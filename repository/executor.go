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
	"time"

	"github.com/tomoncle/linkstore/database"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ConnProvider hands out scoped connections. Both *bun.DB and
// database.AbstractDatabaseManager satisfy it.
type ConnProvider interface {
	Conn(ctx context.Context) (bun.Conn, error)
}

var (
	_ ConnProvider = (*bun.DB)(nil)
	_ ConnProvider = (database.AbstractDatabaseManager)(nil)
)

// Executor runs every store operation on a freshly acquired connection,
// logging start, success and failure and recording a span and metrics.
// Failures are returned to the caller unchanged.
type Executor struct {
	provider ConnProvider
	store    string
	logger   database.Logger
	tracer   trace.Tracer
	metrics  *Metrics
}

// NewExecutor builds an executor reporting under the given store name.
func NewExecutor(provider ConnProvider, store string, opts ...Option) *Executor {
	return newExecutor(provider, store, newOptions(opts))
}

func newExecutor(provider ConnProvider, store string, o *options) *Executor {
	return &Executor{
		provider: provider,
		store:    store,
		logger:   o.logger,
		tracer:   o.tracer,
		metrics:  o.metrics,
	}
}

// Execute runs fn under operation op. payload is a list of key/value pairs
// added to the failure log.
func (e *Executor) Execute(ctx context.Context, op string, payload []interface{}, fn func(ctx context.Context, db bun.IDB) error) (err error) {
	start := time.Now()
	e.logger.Debug("operation starting", "operation", op, "store", e.store)

	ctx, span := e.tracer.Start(ctx, e.store+"."+op, trace.WithAttributes(
		attribute.String("linkstore.store", e.store),
		attribute.String("linkstore.operation", op),
	))
	defer span.End()

	defer func() {
		elapsed := time.Since(start)
		e.metrics.observe(e.store, op, err, elapsed)
		if err != nil {
			e.failed(op, payload, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return
		}
		e.logger.Debug("operation succeeded", "operation", op, "store", e.store, "duration", elapsed)
	}()

	conn, err := e.provider.Conn(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			e.logger.Warn("failed to release connection", "operation", op, "store", e.store, "error", cerr)
		}
	}()

	return fn(ctx, conn)
}

func (e *Executor) failed(op string, payload []interface{}, err error) {
	fields := make([]interface{}, 0, len(payload)+8)
	fields = append(fields, "error", err, "operation", op, "store", e.store)
	fields = append(fields, payload...)
	if is, kind := database.IsSqlError(err); is {
		fields = append(fields, "sql_error", kind.String())
	}
	e.logger.Error("operation failed", fields...)
}

func execute[R any](ctx context.Context, e *Executor, op string, payload []interface{}, fn func(ctx context.Context, db bun.IDB) (R, error)) (R, error) {
	var result R
	err := e.Execute(ctx, op, payload, func(ctx context.Context, db bun.IDB) error {
		var err error
		result, err = fn(ctx, db)
		return err
	})
	return result, err
}
