// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avlmap

import (
	"errors"

	"github.com/willf/bloom"
)

var (
	ErrDuplicateKey   = errors.New("key already exists")
	ErrDuplicateValue = errors.New("value already exists")
	ErrKeyNotFound    = errors.New("key not found")
	ErrCorrupt        = errors.New("tree invariant violated")
)

type node struct {
	key    string
	value  uint64
	height int // edges to the deepest leaf, a leaf is 0
	left   *node
	right  *node
}

// Tree holds the root of a value ordered AVL tree.
type Tree struct {
	root  *node
	count int
	keys  *keyFilter
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{keys: newKeyFilter(defaultFilterCapacity)}
}

// Size is the number of entries in the tree.
func (tree *Tree) Size() int {
	return tree.count
}

// IsEmpty reports whether the tree has no entries.
func (tree *Tree) IsEmpty() bool {
	return tree.root == nil
}

// Height of the root node, -1 for an empty tree.
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Clear drops every node. The teardown is iterative so a large tree
// never costs stack depth.
func (tree *Tree) Clear() {
	stack := []*node{}
	if tree.root != nil {
		stack = append(stack, tree.root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		n.left, n.right = nil, nil
	}
	tree.root = nil
	tree.count = 0
	tree.keys = newKeyFilter(defaultFilterCapacity)
}

// Clone returns an independent copy of the tree. Entries are reinserted
// in level order, which rebuilds the same shape without any rotation.
func (tree *Tree) Clone() *Tree {
	clone := New()
	if tree.root == nil {
		return clone
	}
	queue := []*node{tree.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		clone.Insert(n.key, n.value)
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
	return clone
}

// keyFilter rules out absent keys before a full scan of the tree.
type keyFilter struct {
	filter   *bloom.BloomFilter
	capacity int
	removed  int // removals since the last rebuild
}

const (
	defaultFilterCapacity = 1024
	filterFalsePositive   = 0.01
)

func newKeyFilter(capacity int) *keyFilter {
	return &keyFilter{
		filter:   bloom.NewWithEstimates(uint(capacity), filterFalsePositive),
		capacity: capacity,
	}
}

func (kf *keyFilter) add(key string) {
	kf.filter.AddString(key)
}

// mayContain is false only when key was never added.
func (kf *keyFilter) mayContain(key string) bool {
	return kf.filter.TestString(key)
}

// refreshKeys rebuilds the filter when it has outgrown its estimate or has
// collected too many keys that are no longer in the tree.
func (tree *Tree) refreshKeys() {
	kf := tree.keys
	switch {
	case tree.count > kf.capacity:
		tree.rebuildKeys(2 * tree.count)
	case kf.removed > kf.capacity/2:
		tree.rebuildKeys(kf.capacity)
	}
}

func (tree *Tree) rebuildKeys(capacity int) {
	if capacity < defaultFilterCapacity {
		capacity = defaultFilterCapacity
	}
	kf := newKeyFilter(capacity)
	tree.Ascend(func(key string, _ uint64) bool {
		kf.add(key)
		return true
	})
	tree.keys = kf
}
