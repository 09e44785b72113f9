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

// Package fsm holds finite state specifications: directed graphs over opaque
// state identities whose transitions may carry encoded formulas as guards.
// Guards pass through this layer untouched; nothing here decodes them.
package fsm

import (
	"slices"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/verdict-lang/go-verdict/pkg/ir"
	"github.com/verdict-lang/go-verdict/pkg/util"
)

type transition struct {
	from  uuid.UUID
	to    uuid.UUID
	guard []byte
}

// Spec is one finite state specification.  States are added explicitly or
// implicitly as transition endpoints, and are remembered in the order first
// seen, so every accessor presents a deterministic view.
type Spec struct {
	// Id of this specification.
	Id uuid.UUID
	//
	graph *simple.DirectedGraph
	// States in order of first addition, with their graph identifiers.
	states []uuid.UUID
	ids    map[uuid.UUID]int64
	// Transitions in order of first addition.
	transitions []transition
	// Functions this specification mentions, in order of first reference.
	referenced []ir.FunctionPointer
}

// New constructs an empty specification with a fresh identity.
func New() *Spec {
	return &Spec{
		Id:    uuid.New(),
		graph: simple.NewDirectedGraph(),
		ids:   map[uuid.UUID]int64{},
	}
}

// AddState ensures a state is part of this specification.
func (p *Spec) AddState(id uuid.UUID) {
	p.nodeFor(id)
}

// AddTransition records a guarded transition, adding either endpoint as
// needed.  Re-adding an existing transition replaces its guard.  The guard
// is an encoded formula (or nil for an unguarded transition) held opaquely.
func (p *Spec) AddTransition(from uuid.UUID, to uuid.UUID, guard []byte) {
	f, t := p.nodeFor(from), p.nodeFor(to)
	//
	for i, tr := range p.transitions {
		if tr.from == from && tr.to == to {
			p.transitions[i].guard = guard
			return
		}
	}
	// Simple graphs reject self edges, so loops live only in the transition
	// list.
	if from != to {
		p.graph.SetEdge(simple.Edge{F: simple.Node(f), T: simple.Node(t)})
	}
	//
	p.transitions = append(p.transitions, transition{from, to, guard})
}

// HasTransition indicates whether a transition between two states exists.
func (p *Spec) HasTransition(from uuid.UUID, to uuid.UUID) bool {
	for _, tr := range p.transitions {
		if tr.from == from && tr.to == to {
			return true
		}
	}
	//
	return false
}

// Guard returns the guard on a transition, which is empty for an unguarded
// or absent transition.
func (p *Spec) Guard(from uuid.UUID, to uuid.UUID) util.Option[[]byte] {
	for _, tr := range p.transitions {
		if tr.from == from && tr.to == to {
			return util.Some(tr.guard)
		}
	}
	//
	return util.None[[]byte]()
}

// States returns all states, in the order first added.
func (p *Spec) States() []uuid.UUID {
	return p.states
}

// Successors returns the states reachable from a given state in one
// transition, in the order their transitions were first added.
func (p *Spec) Successors(id uuid.UUID) []uuid.UUID {
	var successors []uuid.UUID
	//
	for _, tr := range p.transitions {
		if tr.from == id {
			successors = append(successors, tr.to)
		}
	}
	//
	return successors
}

// Reachable indicates whether a state can be reached from another through
// any number of transitions.  Every state trivially reaches itself.
func (p *Spec) Reachable(from uuid.UUID, to uuid.UUID) bool {
	f, fok := p.ids[from]
	t, tok := p.ids[to]
	//
	if !fok || !tok {
		return false
	} else if f == t {
		return true
	}
	//
	bfs := traverse.BreadthFirst{}
	found := bfs.Walk(p.graph, p.graph.Node(f), func(n graph.Node, _ int) bool {
		return n.ID() == t
	})
	//
	return found != nil
}

// Reference records that this specification mentions a function.  References
// are deduplicated.
func (p *Spec) Reference(fp ir.FunctionPointer) {
	if !slices.Contains(p.referenced, fp) {
		p.referenced = append(p.referenced, fp)
	}
}

// Referenced returns every function this specification mentions, in the
// order first referenced.
func (p *Spec) Referenced() []ir.FunctionPointer {
	return p.referenced
}

// Resolve a state to its graph node, registering it on first sight.
func (p *Spec) nodeFor(id uuid.UUID) int64 {
	if n, ok := p.ids[id]; ok {
		return n
	}
	//
	n := int64(len(p.states))
	p.ids[id] = n
	p.states = append(p.states, id)
	p.graph.AddNode(simple.Node(n))
	//
	return n
}
