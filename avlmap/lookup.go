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

// Iterator is called for each entry visited by Ascend. Returning false
// stops the iteration.
type Iterator func(key string, value uint64) bool

// Contains reports whether key is in the tree. O(n) unless the key
// filter rules the key out.
func (tree *Tree) Contains(key string) bool {
	return tree.lookup(key) != nil
}

// Get returns the value stored under key. The tree is ordered by value so
// a hit costs a scan of the tree.
func (tree *Tree) Get(key string) (uint64, bool) {
	n := tree.lookup(key)
	if n == nil {
		return 0, false
	}
	return n.value, true
}

// Set replaces the value stored under an existing key and moves the entry
// to its new position in the ordering. It fails with ErrKeyNotFound for an
// absent key and ErrDuplicateValue when another key holds value.
func (tree *Tree) Set(key string, value uint64) error {
	n := tree.lookup(key)
	if n == nil {
		return ErrKeyNotFound
	}
	if n.value == value {
		return nil
	}
	if searchValue(tree.root, value) != nil {
		return ErrDuplicateValue
	}

	root, _ := deleteRecursive(tree.root, n.value)
	root, err := insertRecursive(root, key, value)
	if err != nil {
		// unreachable, the value was checked above
		return err
	}
	tree.root = root
	return nil
}

// Keys lists every key in ascending value order.
func (tree *Tree) Keys() []string {
	keys := make([]string, 0, tree.count)
	tree.Ascend(func(key string, _ uint64) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// FindRange returns, in ascending order, every value between the values
// of lowKey and highKey inclusive. The result is empty when either key is
// absent.
func (tree *Tree) FindRange(lowKey, highKey string) []uint64 {
	values := []uint64{}
	low, ok := tree.Get(lowKey)
	if !ok {
		return values
	}
	high, ok := tree.Get(highKey)
	if !ok {
		return values
	}
	tree.AscendRange(low, high, func(_ string, value uint64) bool {
		values = append(values, value)
		return true
	})
	return values
}

// Ascend calls iterator for every entry in ascending value order.
func (tree *Tree) Ascend(iterator Iterator) {
	ascend(tree.root, iterator)
}

// AscendRange calls iterator for every entry with low <= value <= high,
// in ascending value order.
func (tree *Tree) AscendRange(low, high uint64, iterator Iterator) {
	if low > high {
		return
	}
	ascendRange(tree.root, low, high, iterator)
}

// Min returns the entry with the lowest value.
func (tree *Tree) Min() (string, uint64, bool) {
	if tree.root == nil {
		return "", 0, false
	}
	n := findMin(tree.root)
	return n.key, n.value, true
}

// Max returns the entry with the highest value.
func (tree *Tree) Max() (string, uint64, bool) {
	if tree.root == nil {
		return "", 0, false
	}
	n := findMax(tree.root)
	return n.key, n.value, true
}

// lookup finds the node for key, nil if absent.
func (tree *Tree) lookup(key string) *node {
	if !tree.keys.mayContain(key) {
		return nil
	}
	return searchKey(tree.root, key)
}

// searchKey cannot use the ordering, so it visits the whole subtree in
// the worst case.
func searchKey(n *node, key string) *node {
	stack := []*node{}
	for n != nil || len(stack) > 0 {
		if n == nil {
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
		if n.key == key {
			return n
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		n = n.left
	}
	return nil
}

func searchValue(n *node, value uint64) *node {
	for n != nil {
		switch {
		case value < n.value:
			n = n.left
		case value > n.value:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

func ascend(n *node, iterator Iterator) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, iterator) {
		return false
	}
	if !iterator(n.key, n.value) {
		return false
	}
	return ascend(n.right, iterator)
}

func ascendRange(n *node, low, high uint64, iterator Iterator) bool {
	if n == nil {
		return true
	}

	// everything on the left is below n.value
	if n.value > low {
		if !ascendRange(n.left, low, high, iterator) {
			return false
		}
	}

	if n.value >= low && n.value <= high {
		if !iterator(n.key, n.value) {
			return false
		}
	}

	if n.value < high {
		return ascendRange(n.right, low, high, iterator)
	}
	return true
}
