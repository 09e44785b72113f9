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

import (
	"fmt"
	"strings"

	"github.com/verdict-lang/go-verdict/pkg/util"
)

// Opcode names the operation an instruction performs.
type Opcode uint8

const (
	// OpAssign moves its operand into the destination register.
	OpAssign Opcode = iota
	// OpCall invokes a function operand with the remaining operands.
	OpCall
	// OpAssert states a formula operand which must hold at this point.
	OpAssert
	// OpAssume states a formula operand which may be taken to hold at this
	// point.
	OpAssume
	// OpJump transfers control to a label operand unconditionally.
	OpJump
	// OpBranch transfers control to one of two label operands depending on a
	// register.
	OpBranch
	// OpReturn leaves the enclosing function.
	OpReturn
)

// String implementation for the Stringer interface.
func (p Opcode) String() string {
	switch p {
	case OpAssign:
		return "assign"
	case OpCall:
		return "call"
	case OpAssert:
		return "assert"
	case OpAssume:
		return "assume"
	case OpJump:
		return "jump"
	case OpBranch:
		return "branch"
	case OpReturn:
		return "return"
	}
	//
	return fmt.Sprintf("op(%d)", uint8(p))
}

// Instruction is one operation within a block.
type Instruction struct {
	// Op performed by this instruction.
	Op Opcode
	// Dest register written, when the operation writes one.
	Dest util.Option[Register]
	// Operands consumed, in order.
	Operands []Operand
}

// String implementation for the Stringer interface.
func (p *Instruction) String() string {
	var builder strings.Builder
	//
	if p.Dest.HasValue() {
		fmt.Fprintf(&builder, "r%d = ", p.Dest.Unwrap())
	}
	//
	builder.WriteString(p.Op.String())
	//
	for i, operand := range p.Operands {
		if i == 0 {
			builder.WriteString(" ")
		} else {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(operand.String())
	}
	//
	return builder.String()
}

// Block is a labelled straight line run of instructions.
type Block struct {
	// Label identifying this block within its function.
	Label Label
	// Code comprising this block, in execution order.
	Code []Instruction
}
