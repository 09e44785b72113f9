// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package ir describes the programs formulas talk about: modules of
// functions, blocks of instructions and their operands.  The formula kernel
// never interprets any of this; terms reference functions opaquely through
// pointers, and formulas travel through instructions as opaque encoded
// buffers.
package ir

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// FunctionPointer identifies a function without saying anything about it.  A
// pointer is either internal (the function body lives in some module under
// analysis) or external (the function is only known by its identity).
type FunctionPointer struct {
	id       uuid.UUID
	external bool
}

// Internal constructs a pointer to a function defined within a module.
func Internal(id uuid.UUID) FunctionPointer {
	return FunctionPointer{id, false}
}

// External constructs a pointer to a function known only by identity.
func External(id uuid.UUID) FunctionPointer {
	return FunctionPointer{id, true}
}

// Id returns the identity this pointer carries.
func (p FunctionPointer) Id() uuid.UUID {
	return p.id
}

// IsExternal indicates whether this pointer refers outside any module under
// analysis.
func (p FunctionPointer) IsExternal() bool {
	return p.external
}

// Cmp orders pointers bytewise by identity, with internal pointers ahead of
// external ones when identities tie.
func (p FunctionPointer) Cmp(o FunctionPointer) int {
	if c := bytes.Compare(p.id[:], o.id[:]); c != 0 {
		return c
	}
	//
	switch {
	case p.external == o.external:
		return 0
	case o.external:
		return -1
	default:
		return 1
	}
}

// String implementation for the Stringer interface.
func (p FunctionPointer) String() string {
	if p.external {
		return fmt.Sprintf("extern:%s", p.id)
	}
	//
	return fmt.Sprintf("fn:%s", p.id)
}
