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

// Package avlmap is an AVL balanced tree that maps string keys to
// unsigned integer values.
//
// The tree is ordered by value, not by key. Both keys and values are
// unique: an insert is rejected when either one is already present.
// Operations that take a value (AscendRange, the descent inside Insert
// and Remove) are O(log n). Operations that take a key (Get, Contains,
// Remove, Set, FindRange) first have to locate the key by scanning the
// tree, which is O(n). A bloom filter over the keys answers most misses
// without the scan.
//
// Heights follow the edge-count convention: a leaf has height 0 and an
// empty subtree has height -1.
//
// Note: a tree is not thread safe, either access it from a single go
// routine or guard it with a mutex.
package avlmap
