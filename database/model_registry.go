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

package database

import (
	"sort"
	"sync"
)

var defaultRegistry = NewModelRegistry()

// ColumnType is the portable type of a bootstrapped column.
type ColumnType int

const (
	ColumnID ColumnType = iota
	ColumnBool
	ColumnTimestamp
	ColumnText
)

// ColumnSchema describes one column of a bootstrapped table.
type ColumnSchema struct {
	Name     string
	Type     ColumnType
	Nullable bool
}

// TableSchema describes a table created by the bootstrap.
type TableSchema struct {
	Name    string
	Columns []ColumnSchema
}

// SQLModel represents a table registered for bootstrap. Priority controls
// creation order (lower values first).
type SQLModel interface {
	Schema() TableSchema
	Priority() int
}

// ModelRegistry stores SQL models and exposes them in a deterministic order.
type ModelRegistry interface {
	Register(model SQLModel)
	Models() []SQLModel
}

type modelRegistry struct {
	models map[string]SQLModel
	mutex  sync.RWMutex
}

func NewModelRegistry() ModelRegistry {
	return &modelRegistry{
		models: make(map[string]SQLModel),
	}
}

// Register adds a model. A model with the same table name replaces the
// earlier registration.
func (r *modelRegistry) Register(model SQLModel) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.models[model.Schema().Name] = model
}

func (r *modelRegistry) Models() []SQLModel {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]SQLModel, 0, len(r.models))
	for _, m := range r.models {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Priority() != result[j].Priority() {
			return result[i].Priority() < result[j].Priority()
		}
		return result[i].Schema().Name < result[j].Schema().Name
	})
	return result
}

type ModelAdapter struct {
	schema   TableSchema
	priority int
}

// NewModelAdapter wraps a table schema and priority into an SQLModel.
func NewModelAdapter(schema TableSchema, priority int) SQLModel {
	return &ModelAdapter{
		schema:   schema,
		priority: priority,
	}
}

func (a *ModelAdapter) Schema() TableSchema {
	return a.schema
}

func (a *ModelAdapter) Priority() int {
	return a.priority
}

// GetRegisteredModels returns all models registered in the default registry
// sorted by ascending priority.
func GetRegisteredModels() []SQLModel {
	return defaultRegistry.Models()
}

// RegisteredModel adds a model to the default registry.
func RegisteredModel(model SQLModel) {
	defaultRegistry.Register(model)
}
