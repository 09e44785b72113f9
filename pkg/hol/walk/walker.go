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

// Package walk traverses encoded terms positionally, without rebuilding them.
// A walker reads node headers straight out of the buffer and schedules
// sub-nodes through an explicit frame worklist, so traversal is lazy, uses no
// recursion, and touches each node exactly once.
package walk

import (
	"github.com/verdict-lang/go-verdict/pkg/hol"
	"github.com/verdict-lang/go-verdict/pkg/util/collection/deque"
)

// Order selects the traversal discipline of a walker.
type Order uint8

const (
	// DepthFirst visits a node before any of its sub-nodes, yielding
	// pre-order: the order in which the combinators constructed the term.
	DepthFirst Order = iota
	// BreadthFirst visits all nodes at one depth before any node below,
	// yielding level order.
	BreadthFirst
)

// Visit reports one node encountered during a walk.
type Visit struct {
	// Tag of the node's former.
	Tag hol.Tag
	// Span of bytes the node occupies.
	Span hol.Span
	// Depth of the node, with the outermost at zero.
	Depth uint
}

// Frames identify pending nodes by position and the signed distance to where
// the node ends, which is equally the start of its next sibling or the
// continuation point of its parent.
type frame struct {
	pos   uint
	delta int64
	depth uint
}

// Walker lazily enumerates the nodes of one encoded buffer.  The usage
// pattern follows the familiar scanner idiom:
//
//	w := walk.New(data, walk.DepthFirst)
//	for w.Next() {
//	    v := w.Visit()
//	    ...
//	}
//	if err := w.Err(); err != nil { ... }
//
// A malformed buffer terminates the walk with a hol.MalformedError locating
// the fault; no bytes outside the buffer are ever read, and termination is
// guaranteed since sub-node spans strictly nest.
type Walker struct {
	data   []byte
	order  Order
	frames *deque.Deque[frame]
	visit  Visit
	err    error
}

// New constructs a walker over a buffer holding exactly one encoded term.
func New(data []byte, order Order) *Walker {
	frames := deque.NewDeque[frame]()
	frames.PushBack(frame{0, int64(len(data)), 0})
	//
	return &Walker{data, order, frames, Visit{}, nil}
}

// Next advances to the next node, reporting whether one was found.  It
// returns false once the walk is exhausted or a fault is detected.
func (p *Walker) Next() bool {
	if p.err != nil || p.frames.IsEmpty() {
		return false
	}
	//
	f := p.frames.PopFront()
	span := hol.Span{Start: f.pos, End: uint(int64(f.pos) + f.delta)}
	//
	node, err := hol.ParseNode(p.data, span)
	if err != nil {
		p.err = err
		return false
	}
	//
	p.visit = Visit{node.Tag, span, f.depth}
	p.schedule(node.Children(), f.depth+1)
	//
	return true
}

// Visit returns the node most recently advanced to.
func (p *Walker) Visit() Visit {
	return p.visit
}

// Err returns the fault which terminated the walk, if there was one.
func (p *Walker) Err() error {
	return p.err
}

// Schedule the sub-nodes of the visited node.  Depth first places them at the
// front of the worklist (in reverse, so the leftmost surfaces next), whilst
// breadth first appends them behind every pending node.
func (p *Walker) schedule(children []hol.Span, depth uint) {
	switch p.order {
	case DepthFirst:
		for i := len(children); i > 0; i-- {
			p.frames.PushFront(newFrame(children[i-1], depth))
		}
	case BreadthFirst:
		for _, child := range children {
			p.frames.PushBack(newFrame(child, depth))
		}
	}
}

func newFrame(span hol.Span, depth uint) frame {
	return frame{span.Start, int64(span.End) - int64(span.Start), depth}
}

// Count walks an entire buffer depth first, returning the number of nodes it
// holds.  This doubles as a cheap structural validity check.
func Count(data []byte) (uint, error) {
	var count uint
	//
	w := New(data, DepthFirst)
	for w.Next() {
		count++
	}
	//
	return count, w.Err()
}
