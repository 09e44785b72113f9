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

import "fmt"

// Register identifies a virtual register within a function.
type Register uint

// Label identifies a block within a function.
type Label uint

// Operand is anything an instruction may consume: a register, an immediate,
// a function pointer or an encoded formula carried opaquely.
type Operand interface {
	fmt.Stringer
	isOperand()
}

// RegOperand reads a virtual register.
type RegOperand struct {
	// Register being read.
	Register Register
}

// Reg constructs a register operand.
func Reg(r Register) Operand {
	return &RegOperand{r}
}

// String implementation for the Stringer interface.
func (p *RegOperand) String() string {
	return fmt.Sprintf("r%d", p.Register)
}

func (p *RegOperand) isOperand() {}

// ImmOperand is an immediate machine word.
type ImmOperand struct {
	// Value of the immediate.
	Value uint64
}

// Imm constructs an immediate operand.
func Imm(v uint64) Operand {
	return &ImmOperand{v}
}

// String implementation for the Stringer interface.
func (p *ImmOperand) String() string {
	return fmt.Sprintf("#%d", p.Value)
}

func (p *ImmOperand) isOperand() {}

// FnOperand names a function, e.g. as a call target.
type FnOperand struct {
	// Pointer to the function.
	Pointer FunctionPointer
}

// Fn constructs a function pointer operand.
func Fn(ptr FunctionPointer) Operand {
	return &FnOperand{ptr}
}

// String implementation for the Stringer interface.
func (p *FnOperand) String() string {
	return p.Pointer.String()
}

func (p *FnOperand) isOperand() {}

// TargetOperand names a block, e.g. as a jump or branch destination.
type TargetOperand struct {
	// Label of the destination block.
	Label Label
}

// Target constructs a block label operand.
func Target(l Label) Operand {
	return &TargetOperand{l}
}

// String implementation for the Stringer interface.
func (p *TargetOperand) String() string {
	return fmt.Sprintf("@%d", p.Label)
}

func (p *TargetOperand) isOperand() {}

// FormulaOperand carries an encoded formula, e.g. the condition of an assert
// or assume.  The bytes are exactly what hol.Encode produced; this layer
// stores them without looking inside.
type FormulaOperand struct {
	// Encoded holds the formula's wire form.
	Encoded []byte
}

// Formula constructs an operand carrying an encoded formula.
func Formula(encoded []byte) Operand {
	return &FormulaOperand{encoded}
}

// String implementation for the Stringer interface.
func (p *FormulaOperand) String() string {
	return fmt.Sprintf("formula[%d bytes]", len(p.Encoded))
}

func (p *FormulaOperand) isOperand() {}
