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
	"errors"
	"fmt"
)

// ErrInvalidArgument matches every *ArgumentError through errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports a missing or empty argument. It is returned before
// any database round trip.
type ArgumentError struct {
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Param, e.Reason)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func nullArgument(param string) error {
	return &ArgumentError{Param: param, Reason: "value cannot be nil"}
}

func emptyArgument(param string) error {
	return &ArgumentError{Param: param, Reason: "identifier cannot be empty"}
}
