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
	"fmt"
)

// Check verifies ordering, key uniqueness, cached heights, balance and
// the entry count. The returned error wraps ErrCorrupt.
func (tree *Tree) Check() error {
	seen := make(map[string]struct{}, tree.count)
	count, err := check(tree.root, nil, nil, seen)
	if err != nil {
		return err
	}
	if count != tree.count {
		return fmt.Errorf("%w: counted %d nodes, size is %d", ErrCorrupt, count, tree.count)
	}
	return nil
}

// internal: checks the subtree against the open bounds (low, high)
func check(n *node, low, high *uint64, seen map[string]struct{}) (int, error) {
	if n == nil {
		return 0, nil
	}
	if low != nil && n.value <= *low {
		return 0, fmt.Errorf("%w: {%s: %d} not above %d", ErrCorrupt, n.key, n.value, *low)
	}
	if high != nil && n.value >= *high {
		return 0, fmt.Errorf("%w: {%s: %d} not below %d", ErrCorrupt, n.key, n.value, *high)
	}
	if _, dup := seen[n.key]; dup {
		return 0, fmt.Errorf("%w: key %q appears twice", ErrCorrupt, n.key)
	}
	seen[n.key] = struct{}{}

	nl, err := check(n.left, low, &n.value, seen)
	if err != nil {
		return 0, err
	}
	nr, err := check(n.right, &n.value, high, seen)
	if err != nil {
		return 0, err
	}

	if expected := max(height(n.left), height(n.right)) + 1; n.height != expected {
		return 0, fmt.Errorf("%w: {%s: %d} height %d, expected %d", ErrCorrupt, n.key, n.value, n.height, expected)
	}
	if bf := balanceFactor(n); bf > 1 || bf < -1 {
		return 0, fmt.Errorf("%w: {%s: %d} balance factor %+d", ErrCorrupt, n.key, n.value, bf)
	}
	return 1 + nl + nr, nil
}
