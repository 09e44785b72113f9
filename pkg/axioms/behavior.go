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

// Package axioms accumulates what is known (or claimed) about individual
// functions: termination behaviour, assertions and assumptions at program
// points, and bindings letting formulas mention functions through variables.
// Formulas are held as opaque encoded buffers throughout; this layer stores
// and orders them but never looks inside.
package axioms

import "fmt"

// Behavior summarises how a function can terminate.  Definite knowledge sits
// at the edges (halting, looping, crashing) with the corresponding "may"
// forms between them and unknown above everything.
type Behavior uint8

const (
	// BehaviorUnknown means nothing is known about termination.
	BehaviorUnknown Behavior = iota
	// BehaviorHalting means every run terminates normally.
	BehaviorHalting
	// BehaviorMayLoop means some run might fail to terminate.
	BehaviorMayLoop
	// BehaviorLooping means no run terminates.
	BehaviorLooping
	// BehaviorMayCrash means some run might terminate abnormally.
	BehaviorMayCrash
	// BehaviorCrashes means every run terminates abnormally.
	BehaviorCrashes
)

// MayLoop indicates whether non-termination is possible under this behaviour.
func (p Behavior) MayLoop() bool {
	return p == BehaviorUnknown || p == BehaviorMayLoop || p == BehaviorLooping
}

// MayCrash indicates whether abnormal termination is possible under this
// behaviour.
func (p Behavior) MayCrash() bool {
	return p == BehaviorUnknown || p == BehaviorMayCrash || p == BehaviorCrashes
}

// Join combines knowledge from two sources, yielding the weakest behaviour
// consistent with both.  Agreement is preserved, a definite form meeting its
// "may" form weakens to the latter, and anything else collapses to unknown.
func (p Behavior) Join(o Behavior) Behavior {
	switch {
	case p == o:
		return p
	case weaken(p) == weaken(o):
		return weaken(p)
	default:
		return BehaviorUnknown
	}
}

// Weaken a definite behaviour to its "may" form.
func weaken(b Behavior) Behavior {
	switch b {
	case BehaviorHalting:
		return BehaviorMayLoop
	case BehaviorLooping:
		return BehaviorMayLoop
	case BehaviorCrashes:
		return BehaviorMayCrash
	default:
		return b
	}
}

// String implementation for the Stringer interface.
func (p Behavior) String() string {
	switch p {
	case BehaviorUnknown:
		return "unknown"
	case BehaviorHalting:
		return "halting"
	case BehaviorMayLoop:
		return "may-loop"
	case BehaviorLooping:
		return "looping"
	case BehaviorMayCrash:
		return "may-crash"
	case BehaviorCrashes:
		return "crashes"
	}
	//
	return fmt.Sprintf("behavior(%d)", uint8(p))
}
