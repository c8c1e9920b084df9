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
	"sync/atomic"

	"github.com/rs/zerolog"
)

type zerologLogger struct {
	logger zerolog.Logger
	level  atomic.Int32
}

// NewZerologLogger adapts a zerolog logger to Logger. Fields are emitted as
// top-level keys of the event.
func NewZerologLogger(logger zerolog.Logger) Logger {
	return &zerologLogger{logger: logger}
}

func (z *zerologLogger) SetLevel(level LogLevel) {
	z.level.Store(int32(level))
}

func (z *zerologLogger) enabled(level LogLevel) bool {
	return int32(level) >= z.level.Load()
}

func (z *zerologLogger) Debug(msg string, fields ...interface{}) {
	if z.enabled(LogLevelDebug) {
		z.logger.Debug().Fields(fields).Msg(msg)
	}
}

func (z *zerologLogger) Info(msg string, fields ...interface{}) {
	if z.enabled(LogLevelInfo) {
		z.logger.Info().Fields(fields).Msg(msg)
	}
}

func (z *zerologLogger) Warn(msg string, fields ...interface{}) {
	if z.enabled(LogLevelWarn) {
		z.logger.Warn().Fields(fields).Msg(msg)
	}
}

func (z *zerologLogger) Error(msg string, fields ...interface{}) {
	if z.enabled(LogLevelError) {
		z.logger.Error().Fields(fields).Msg(msg)
	}
}
