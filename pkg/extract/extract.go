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

// Package extract turns program text into function axioms.  Extractors
// populate the metadata layer from the intermediate representation, using
// the formula kernel only through its public surface.
package extract

import (
	"fmt"

	"github.com/verdict-lang/go-verdict/pkg/axioms"
	"github.com/verdict-lang/go-verdict/pkg/ir"
)

// PropertiesExtractor is any pass which derives axioms for a single function
// from its representation.
type PropertiesExtractor interface {
	// Extract populates the destination with whatever this pass can derive
	// from the given function.
	Extract(fn *ir.Function, dst *axioms.FunctionAxioms) error
}

// Error is the failure taxonomy of extraction passes: which function failed,
// why, and any underlying fault (e.g. a malformed formula buffer reported by
// the kernel).
type Error struct {
	// Fn identifies the function extraction failed on.
	Fn ir.FunctionPointer
	// Reason describes the failure.
	Reason string
	// Err is the underlying fault, if there was one.
	Err error
}

// Error implementation for the error interface.
func (p *Error) Error() string {
	if p.Err != nil {
		return fmt.Sprintf("extracting %s: %s: %v", p.Fn, p.Reason, p.Err)
	}
	//
	return fmt.Sprintf("extracting %s: %s", p.Fn, p.Reason)
}

// Unwrap exposes the underlying fault to errors.Is / errors.As.
func (p *Error) Unwrap() error {
	return p.Err
}

func failure(fn ir.FunctionPointer, err error, format string, args ...any) *Error {
	return &Error{fn, fmt.Sprintf(format, args...), err}
}
