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

// Insert adds a key/value pair. It returns false, leaving the tree
// untouched, when either the key or the value is already present.
func (tree *Tree) Insert(key string, value uint64) bool {
	return tree.Add(key, value) == nil
}

// Add is Insert reporting why an insert was refused: ErrDuplicateKey or
// ErrDuplicateValue.
func (tree *Tree) Add(key string, value uint64) error {
	if tree.Contains(key) {
		return ErrDuplicateKey
	}

	root, err := insertRecursive(tree.root, key, value)
	if err != nil {
		return err
	}
	tree.root = root
	tree.count += 1
	tree.keys.add(key)
	tree.refreshKeys()
	return nil
}

// insertRecursive descends by value. On failure nothing below has been
// changed, so the caller keeps its original subtree.
func insertRecursive(n *node, key string, value uint64) (*node, error) {
	if n == nil {
		return &node{key: key, value: value}, nil
	}

	var err error
	switch {
	case value > n.value:
		var right *node
		if right, err = insertRecursive(n.right, key, value); err != nil {
			return n, err
		}
		n.right = right
	case value < n.value:
		var left *node
		if left, err = insertRecursive(n.left, key, value); err != nil {
			return n, err
		}
		n.left = left
	default:
		return n, ErrDuplicateValue
	}

	return rebalance(n), nil
}
