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
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	key   string
	value uint64
}

type AVLTestCase struct {
	Name           string
	InitialEntries []entry
	KeysToRemove   []string
	ExpectedKeys   []string // in-order traversal after the operations
	ExpectedRoot   string
	ExpectedHeight int
}

func build(t *testing.T, entries []entry) *Tree {
	t.Helper()
	tree := New()
	for _, e := range entries {
		require.True(t, tree.Insert(e.key, e.value), "insert %s:%d", e.key, e.value)
	}
	require.NoError(t, tree.Check())
	return tree
}

// the entries inserted, in order, by the demo command
var demoEntries = []entry{
	{"F", 6}, {"V", 22}, {"W", 23}, {"X", 24}, {"C", 3}, {"A", 1},
	{"D", 4}, {"E", 5}, {"R", 18}, {"Z", 26}, {"M", 13},
}

func TestAVLTreeOperations(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:           "Single Left Rotation",
			InitialEntries: []entry{{"F", 6}, {"V", 22}, {"W", 23}},
			ExpectedKeys:   []string{"F", "V", "W"},
			ExpectedRoot:   "V",
			ExpectedHeight: 1,
		},
		{
			Name:           "Single Right Rotation",
			InitialEntries: []entry{{"C", 3}, {"B", 2}, {"A", 1}},
			ExpectedKeys:   []string{"A", "B", "C"},
			ExpectedRoot:   "B",
			ExpectedHeight: 1,
		},
		{
			Name:           "Left-Right Rotation",
			InitialEntries: []entry{{"C", 30}, {"A", 10}, {"B", 20}},
			ExpectedKeys:   []string{"A", "B", "C"},
			ExpectedRoot:   "B",
			ExpectedHeight: 1,
		},
		{
			Name:           "Right-Left Rotation",
			InitialEntries: []entry{{"A", 10}, {"C", 30}, {"B", 20}},
			ExpectedKeys:   []string{"A", "B", "C"},
			ExpectedRoot:   "B",
			ExpectedHeight: 1,
		},
		{
			Name:           "Ordered By Value Not Key",
			InitialEntries: []entry{{"a", 3}, {"b", 2}, {"c", 1}},
			ExpectedKeys:   []string{"c", "b", "a"},
			ExpectedRoot:   "b",
			ExpectedHeight: 1,
		},
		{
			Name:           "Removal Rebalances",
			InitialEntries: []entry{{"B", 2}, {"A", 1}, {"C", 3}, {"D", 4}},
			KeysToRemove:   []string{"A"},
			ExpectedKeys:   []string{"B", "C", "D"},
			ExpectedRoot:   "C",
			ExpectedHeight: 1,
		},
		{
			Name:           "Demonstration Removals",
			InitialEntries: demoEntries,
			KeysToRemove:   []string{"A", "C", "F", "V", "X", "Z"},
			ExpectedKeys:   []string{"D", "E", "M", "R", "W"},
			ExpectedRoot:   "M",
			ExpectedHeight: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := build(t, tc.InitialEntries)
			for _, key := range tc.KeysToRemove {
				require.True(t, tree.Remove(key), "remove %s", key)
				require.NoError(t, tree.Check(), "after removing %s", key)
			}
			assert.Equal(t, tc.ExpectedKeys, tree.Keys())
			require.NotNil(t, tree.root)
			assert.Equal(t, tc.ExpectedRoot, tree.root.key)
			assert.Equal(t, tc.ExpectedHeight, tree.Height())
			assert.Equal(t, len(tc.ExpectedKeys), tree.Size())
		})
	}
}

func TestDemonstrationInserts(t *testing.T) {
	tree := New()
	assert.True(t, tree.Insert("F", 6))
	assert.False(t, tree.Insert("F", 6), "duplicate key and value")
	assert.False(t, tree.Insert("F", 7), "duplicate key with a new value")
	assert.True(t, tree.Insert("V", 22))
	assert.True(t, tree.Insert("W", 23))
	assert.True(t, tree.Insert("X", 24))

	assert.Equal(t, 4, tree.Size())
	assert.Equal(t, 2, tree.Height())
	assert.Equal(t, "V", tree.root.key)
	assert.Equal(t, "        {X: 24}\n    {W: 23}\n{V: 22}\n    {F: 6}\n", tree.String())

	assert.True(t, tree.Insert("C", 3))
	assert.True(t, tree.Insert("A", 1))
	require.NoError(t, tree.Check())
	assert.LessOrEqual(t, tree.Height(), 2)
	// the right rotation at 6 lifts 3 above 1 and 6
	assert.Equal(t, "C", tree.root.left.key)
	assert.Equal(t, "A", tree.root.left.left.key)
	assert.Equal(t, "F", tree.root.left.right.key)

	for _, e := range demoEntries[6:] {
		assert.True(t, tree.Insert(e.key, e.value), "insert %s", e.key)
	}
	assert.False(t, tree.Insert("V", 22))
	assert.False(t, tree.Insert("A", 1))
	assert.False(t, tree.Insert("D", 3))
	assert.Equal(t, 11, tree.Size())
	assert.Equal(t, 3, tree.Height())
	require.NoError(t, tree.Check())
}

func TestAddReportsReason(t *testing.T) {
	tree := build(t, []entry{{"F", 6}})
	assert.True(t, errors.Is(tree.Add("F", 7), ErrDuplicateKey))
	assert.True(t, errors.Is(tree.Add("G", 6), ErrDuplicateValue))
	assert.NoError(t, tree.Add("G", 7))
	assert.Equal(t, 2, tree.Size())
}

func TestLookup(t *testing.T) {
	tree := build(t, demoEntries)

	assert.True(t, tree.Contains("A"))
	assert.False(t, tree.Contains("N"))

	value, ok := tree.Get("A")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), value)

	value, ok = tree.Get("C")
	assert.True(t, ok)
	assert.Equal(t, uint64(3), value)

	value, ok = tree.Get("Q")
	assert.False(t, ok)
	assert.Zero(t, value)

	key, value, ok := tree.Min()
	assert.True(t, ok)
	assert.Equal(t, "A", key)
	assert.Equal(t, uint64(1), value)

	key, value, ok = tree.Max()
	assert.True(t, ok)
	assert.Equal(t, "Z", key)
	assert.Equal(t, uint64(26), value)
}

func TestFindRange(t *testing.T) {
	tree := build(t, demoEntries)

	assert.Equal(t, []uint64{4, 5, 6, 13, 18, 22, 23}, tree.FindRange("D", "W"))
	assert.Equal(t, []uint64{6}, tree.FindRange("F", "F"))
	assert.Empty(t, tree.FindRange("W", "D"))
	assert.Empty(t, tree.FindRange("D", "Q"))
	assert.Empty(t, tree.FindRange("Q", "W"))
	assert.NotNil(t, tree.FindRange("Q", "W"))
}

func TestAscendStopsEarly(t *testing.T) {
	tree := build(t, demoEntries)

	var keys []string
	tree.Ascend(func(key string, _ uint64) bool {
		keys = append(keys, key)
		return len(keys) < 3
	})
	assert.Equal(t, []string{"A", "C", "D"}, keys)

	keys = nil
	tree.AscendRange(5, 20, func(key string, _ uint64) bool {
		keys = append(keys, key)
		return true
	})
	assert.Equal(t, []string{"E", "F", "M", "R"}, keys)
}

func TestSet(t *testing.T) {
	tree := build(t, demoEntries)

	assert.True(t, errors.Is(tree.Set("Q", 100), ErrKeyNotFound))
	assert.False(t, tree.Contains("Q"), "set must not insert on access")

	assert.True(t, errors.Is(tree.Set("A", 26), ErrDuplicateValue))
	assert.NoError(t, tree.Set("A", 1))

	require.NoError(t, tree.Set("A", 108))
	require.NoError(t, tree.Check())
	value, ok := tree.Get("A")
	assert.True(t, ok)
	assert.Equal(t, uint64(108), value)
	assert.Equal(t, 11, tree.Size())

	keys := tree.Keys()
	assert.Equal(t, "A", keys[len(keys)-1], "A moves to the top of the ordering")
}

func TestRemove(t *testing.T) {
	tree := build(t, demoEntries)

	assert.False(t, tree.Remove("Q"))
	assert.Equal(t, 11, tree.Size())

	value, ok := tree.Delete("F")
	assert.True(t, ok)
	assert.Equal(t, uint64(6), value)
	_, ok = tree.Get("F")
	assert.False(t, ok)

	// value 6 is free again
	assert.True(t, tree.Insert("G", 6))
	require.NoError(t, tree.Check())

	for _, key := range tree.Keys() {
		require.True(t, tree.Remove(key))
		require.NoError(t, tree.Check())
	}
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, -1, tree.Height())
	assert.Equal(t, 0, tree.Size())
}

func TestRoundTrip(t *testing.T) {
	tree := New()
	require.True(t, tree.Insert("K", 42))
	value, ok := tree.Get("K")
	assert.True(t, ok)
	assert.Equal(t, uint64(42), value)

	require.True(t, tree.Remove("K"))
	_, ok = tree.Get("K")
	assert.False(t, ok)
	assert.False(t, tree.Contains("K"))
}

func TestEmptyTree(t *testing.T) {
	tree := New()
	assert.Equal(t, -1, tree.Height())
	assert.Equal(t, 0, tree.Size())
	assert.Empty(t, tree.Keys())
	assert.Equal(t, "", tree.String())
	assert.False(t, tree.Remove("A"))
	_, _, ok := tree.Min()
	assert.False(t, ok)
	_, _, ok = tree.Max()
	assert.False(t, ok)
	assert.NoError(t, tree.Check())
}

func TestCloneIsIndependent(t *testing.T) {
	tree := build(t, demoEntries)
	clone := tree.Clone()

	require.NoError(t, clone.Check())
	assert.Equal(t, tree.String(), clone.String(), "level order reinsertion keeps the shape")
	assert.Equal(t, tree.Size(), clone.Size())

	require.True(t, clone.Remove("A"))
	require.True(t, clone.Insert("Q", 100))
	assert.True(t, tree.Contains("A"))
	assert.False(t, tree.Contains("Q"))
	assert.Equal(t, 11, tree.Size())
}

func TestClear(t *testing.T) {
	tree := build(t, demoEntries)
	tree.Clear()

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Size())
	assert.False(t, tree.Contains("A"))
	assert.True(t, tree.Insert("A", 1))
	assert.NoError(t, tree.Check())
}

func TestRenderIndent(t *testing.T) {
	tree := build(t, []entry{{"B", 2}, {"A", 1}, {"C", 3}})

	var buf bytes.Buffer
	require.NoError(t, tree.Render(&buf, "..."))
	assert.Equal(t, "...{C: 3}\n{B: 2}\n...{A: 1}\n", buf.String())
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := build(t, []entry{{"B", 2}, {"A", 1}, {"C", 3}})

	tree.root.left.value = 5
	assert.True(t, errors.Is(tree.Check(), ErrCorrupt))
	tree.root.left.value = 1

	tree.root.height = 7
	assert.True(t, errors.Is(tree.Check(), ErrCorrupt))
	tree.root.height = 1

	tree.count = 4
	assert.True(t, errors.Is(tree.Check(), ErrCorrupt))
}

func TestRotationWithoutChildIsNoop(t *testing.T) {
	leaf := &node{key: "A", value: 1}
	assert.Same(t, leaf, rotateLeft(leaf))
	assert.Same(t, leaf, rotateRight(leaf))
	assert.Nil(t, rotateLeft(nil))
}
