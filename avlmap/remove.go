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

// Remove deletes the entry for key, returning false if it was absent.
func (tree *Tree) Remove(key string) bool {
	_, ok := tree.Delete(key)
	return ok
}

// Delete removes the entry for key and returns the value it held.
func (tree *Tree) Delete(key string) (uint64, bool) {
	n := tree.lookup(key)
	if n == nil {
		return 0, false
	}
	value := n.value

	root, removed := deleteRecursive(tree.root, value)
	if !removed {
		return 0, false
	}
	tree.root = root
	tree.count -= 1
	tree.keys.removed += 1
	tree.refreshKeys()
	return value, true
}

// deleteRecursive removes the node holding value from the subtree and
// rebalances every node on the way back up.
func deleteRecursive(n *node, value uint64) (*node, bool) {
	if n == nil {
		return nil, false // value not found
	}

	removed := false
	switch {
	case value < n.value:
		n.left, removed = deleteRecursive(n.left, value)
	case value > n.value:
		n.right, removed = deleteRecursive(n.right, value)
	default:
		// Leaf or single child: splice the child in
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		// Two children: take over the in-order successor and remove it
		// from the right subtree, where it has at most one child
		successor := findMin(n.right)
		n.key = successor.key
		n.value = successor.value
		n.right, removed = deleteRecursive(n.right, successor.value)
	}

	if !removed {
		return n, false
	}
	return rebalance(n), true
}

func findMin(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func findMax(n *node) *node {
	for n.right != nil {
		n = n.right
	}
	return n
}
