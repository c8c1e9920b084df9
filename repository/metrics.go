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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tomoncle/linkstore/database"
)

const (
	outcomeSuccess  = "success"
	outcomeError    = "error"
	outcomeCanceled = "canceled"
)

// Metrics counts and times store operations.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics registers the collectors on reg, or on the default registerer
// when reg is nil. Registering twice on the same registerer reuses the
// collectors already there. Each of pools gets its connection statistics
// exported next to the operation metrics.
func NewMetrics(reg prometheus.Registerer, pools ...database.StatsSource) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "linkstore",
		Name:      "operations_total",
		Help:      "Junction store operations by outcome.",
	}, []string{"store", "operation", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "linkstore",
		Name:      "operation_duration_seconds",
		Help:      "Junction store operation latency, connection checkout included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"store", "operation"})

	for _, pool := range pools {
		register(reg, database.NewPoolCollector(pool))
	}

	return &Metrics{
		operations: register(reg, operations),
		duration:   register(reg, duration),
	}
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *Metrics) observe(store, operation string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := outcomeSuccess
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		outcome = outcomeCanceled
	case err != nil:
		outcome = outcomeError
	}
	m.operations.WithLabelValues(store, operation, outcome).Inc()
	m.duration.WithLabelValues(store, operation).Observe(elapsed.Seconds())
}
