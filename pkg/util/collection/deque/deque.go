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
package deque

// Deque represents a reusable double-ended queue which is implemented using a
// growable ring buffer.  Pushing and popping at either end take amortised
// constant time, allowing the same structure to serve as a stack (front only)
// or a queue (push back, pop front).
type Deque[T any] struct {
	items []T
	head  int
	size  int
}

// NewDeque returns an empty deque.
func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{}
}

// IsEmpty checks whether or not there are any items in the deque.
func (p *Deque[T]) IsEmpty() bool {
	return p.size == 0
}

// Len returns the number of items in the deque.
func (p *Deque[T]) Len() uint {
	return uint(p.size)
}

// PushFront adds a new item at the front of the deque.
func (p *Deque[T]) PushFront(item T) {
	p.reserve()
	//
	p.head = p.wrap(p.head - 1)
	p.items[p.head] = item
	p.size++
}

// PushBack adds a new item at the back of the deque.
func (p *Deque[T]) PushBack(item T) {
	p.reserve()
	//
	p.items[p.wrap(p.head+p.size)] = item
	p.size++
}

// PopFront removes and returns the item at the front of the deque.
func (p *Deque[T]) PopFront() T {
	if p.size == 0 {
		panic("pop from empty deque")
	}
	//
	var empty T
	//
	item := p.items[p.head]
	p.items[p.head] = empty
	p.head = p.wrap(p.head + 1)
	p.size--
	//
	return item
}

// PopBack removes and returns the item at the back of the deque.
func (p *Deque[T]) PopBack() T {
	if p.size == 0 {
		panic("pop from empty deque")
	}
	//
	var empty T
	//
	n := p.wrap(p.head + p.size - 1)
	item := p.items[n]
	p.items[n] = empty
	p.size--
	//
	return item
}

// PeekFront returns the item at the front of the deque without removing it.
func (p *Deque[T]) PeekFront() T {
	if p.size == 0 {
		panic("peek into empty deque")
	}
	//
	return p.items[p.head]
}

// Wrap an index onto the ring.
func (p *Deque[T]) wrap(i int) int {
	n := len(p.items)
	//
	if i < 0 {
		return i + n
	} else if i >= n {
		return i - n
	}
	//
	return i
}

// Ensure capacity exists for at least one more item, doubling the ring when
// full and unwinding it into insertion order as we go.
func (p *Deque[T]) reserve() {
	if p.size < len(p.items) {
		return
	}
	//
	capacity := 2 * len(p.items)
	if capacity == 0 {
		capacity = 16
	}
	//
	items := make([]T, capacity)
	//
	for i := 0; i < p.size; i++ {
		items[i] = p.items[p.wrap(p.head+i)]
	}
	//
	p.items = items
	p.head = 0
}
