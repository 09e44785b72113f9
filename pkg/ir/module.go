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
package ir

// Function is a named body of blocks, the first of which is its entry point.
type Function struct {
	// Pointer identifying this function.
	Pointer FunctionPointer
	// Name of this function, for diagnostics only.
	Name string
	// NumParams gives the number of registers holding arguments on entry.
	NumParams uint
	// Blocks of this function, entry block first.
	Blocks []Block
}

// Module is an ordered collection of functions.  Function order is whatever
// order they were added in, and is preserved so downstream passes see a
// deterministic view.
type Module struct {
	// Name of this module.
	Name string
	// Functions defined in this module.
	Functions []*Function
}

// Lookup locates the function a pointer refers to, returning nil when this
// module does not define it (in particular for any external pointer).
func (p *Module) Lookup(ptr FunctionPointer) *Function {
	for _, fn := range p.Functions {
		if fn.Pointer == ptr {
			return fn
		}
	}
	//
	return nil
}
