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

func height(n *node) int {
	if n == nil {
		return -1
	}
	return n.height
}

func updateHeight(n *node) {
	n.height = max(height(n.left), height(n.right)) + 1
}

func balanceFactor(n *node) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func rotateLeft(n *node) *node {
	if n == nil || n.right == nil {
		return n // nothing to rotate
	}

	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	// n now sits below pivot
	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

func rotateRight(n *node) *node {
	if n == nil || n.left == nil {
		return n // nothing to rotate
	}

	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// rebalance refreshes the height of n and restores the AVL condition at
// n. It returns the root of the subtree, which may be a different node.
func rebalance(n *node) *node {
	updateHeight(n)

	switch bf := balanceFactor(n); {
	case bf > 1:
		// Left-heavy, equal grandchildren take the single rotation
		if height(n.left.left) >= height(n.left.right) {
			return rotateRight(n)
		}
		n.left = rotateLeft(n.left)
		return rotateRight(n)

	case bf < -1:
		// Right-heavy
		if height(n.right.right) >= height(n.right.left) {
			return rotateLeft(n)
		}
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}
