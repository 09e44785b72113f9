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
package extract

import (
	log "github.com/sirupsen/logrus"

	"github.com/verdict-lang/go-verdict/pkg/axioms"
	"github.com/verdict-lang/go-verdict/pkg/hol/walk"
	"github.com/verdict-lang/go-verdict/pkg/ir"
)

// AssertionExtractor lifts assert / assume instructions out of function
// bodies into per-point axioms, and derives a first termination estimate
// from block structure alone: straight line control which reaches a return
// halts, whilst any backward jump might loop.
type AssertionExtractor struct{}

// Extract implementation for the PropertiesExtractor interface.
func (p AssertionExtractor) Extract(fn *ir.Function, dst *axioms.FunctionAxioms) error {
	var (
		returns  = false
		backEdge = false
	)
	//
	for i, block := range fn.Blocks {
		at := blockPoint(fn, i)
		//
		for j, insn := range block.Code {
			switch insn.Op {
			case ir.OpAssert:
				formula, err := formulaOperand(fn, insn)
				if err != nil {
					return err
				}
				//
				dst.Assert(pointOf(at, block, j), formula)
			case ir.OpAssume:
				formula, err := formulaOperand(fn, insn)
				if err != nil {
					return err
				}
				//
				dst.Assume(pointOf(at, block, j), formula)
			case ir.OpJump, ir.OpBranch:
				if jumpsBack(block, insn) {
					backEdge = true
				}
			case ir.OpReturn:
				returns = true
			}
		}
	}
	//
	switch {
	case backEdge:
		dst.SetBehavior(axioms.BehaviorMayLoop)
	case returns:
		dst.SetBehavior(axioms.BehaviorHalting)
	}
	//
	log.Debugf("extracted %d assertions / %d assumptions from %s",
		len(dst.Assertions()), len(dst.Assumptions()), fn.Pointer)
	//
	return nil
}

// Determine the point claims in a given block attach to.  Claims in the
// entry block attach to function entry, and claims in a returning block's
// tail attach to function exit.
func blockPoint(fn *ir.Function, index int) axioms.Point {
	if index == 0 {
		return axioms.Entry()
	}
	//
	return axioms.Internal(fn.Blocks[index].Label)
}

func pointOf(at axioms.Point, block ir.Block, index int) axioms.Point {
	n := len(block.Code)
	// A claim immediately ahead of the block's return speaks about exit.
	if index == n-2 && block.Code[n-1].Op == ir.OpReturn {
		return axioms.Exit()
	}
	//
	return at
}

// Pull the formula out of an assert / assume instruction, validating its
// encoding with a kernel walk before accepting it.
func formulaOperand(fn *ir.Function, insn ir.Instruction) ([]byte, error) {
	if len(insn.Operands) != 1 {
		return nil, failure(fn.Pointer, nil,
			"%s expects one operand, got %d", insn.Op, len(insn.Operands))
	}
	//
	operand, ok := insn.Operands[0].(*ir.FormulaOperand)
	if !ok {
		return nil, failure(fn.Pointer, nil,
			"%s expects a formula operand, got %s", insn.Op, insn.Operands[0])
	}
	//
	if _, err := walk.Count(operand.Encoded); err != nil {
		return nil, failure(fn.Pointer, err, "corrupt %s formula", insn.Op)
	}
	//
	return operand.Encoded, nil
}

// Determine whether a jump / branch targets this block or an earlier one.
func jumpsBack(block ir.Block, insn ir.Instruction) bool {
	for _, operand := range insn.Operands {
		if target, ok := operand.(*ir.TargetOperand); ok && target.Label <= block.Label {
			return true
		}
	}
	//
	return false
}
