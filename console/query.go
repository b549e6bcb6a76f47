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

package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cybrota/avlmap/avlmap"
)

const emptyResult = "(empty)"

type GetOperation struct{}

func (o *GetOperation) SupportsCommand(name string) bool {
	return name == "get"
}

func (o *GetOperation) Usage() string {
	return "# get KEY\n\nPrints the value stored under KEY. The tree is ordered by value, so this scans the tree."
}

func (o *GetOperation) Run(tree *avlmap.Tree, cmd *Command) (string, error) {
	if err := expectArgs(cmd, 1, "get KEY"); err != nil {
		return "", err
	}
	key := cmd.Arg(0)
	value, ok := tree.Get(key)
	if !ok {
		return "", fmt.Errorf("get %s: %w", key, avlmap.ErrKeyNotFound)
	}
	return strconv.FormatUint(value, 10), nil
}

type ContainsOperation struct{}

func (o *ContainsOperation) SupportsCommand(name string) bool {
	return name == "contains" || name == "has"
}

func (o *ContainsOperation) Usage() string {
	return "# contains KEY\n\nPrints true when KEY is in the tree."
}

func (o *ContainsOperation) Run(tree *avlmap.Tree, cmd *Command) (string, error) {
	if err := expectArgs(cmd, 1, "contains KEY"); err != nil {
		return "", err
	}
	return strconv.FormatBool(tree.Contains(cmd.Arg(0))), nil
}

type RangeOperation struct{}

func (o *RangeOperation) SupportsCommand(name string) bool {
	return name == "range"
}

func (o *RangeOperation) Usage() string {
	return "# range LOWKEY HIGHKEY\n\nPrints, in ascending order, every value between the values of LOWKEY and HIGHKEY. Empty when either key is missing."
}

func (o *RangeOperation) Run(tree *avlmap.Tree, cmd *Command) (string, error) {
	if err := expectArgs(cmd, 2, "range LOWKEY HIGHKEY"); err != nil {
		return "", err
	}
	values := tree.FindRange(cmd.Arg(0), cmd.Arg(1))
	if len(values) == 0 {
		return emptyResult, nil
	}
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = strconv.FormatUint(value, 10)
	}
	return strings.Join(parts, " "), nil
}

type KeysOperation struct{}

func (o *KeysOperation) SupportsCommand(name string) bool {
	return name == "keys"
}

func (o *KeysOperation) Usage() string {
	return "# keys\n\nLists every key in ascending value order."
}

func (o *KeysOperation) Run(tree *avlmap.Tree, cmd *Command) (string, error) {
	if err := expectArgs(cmd, 0, "keys"); err != nil {
		return "", err
	}
	keys := tree.Keys()
	if len(keys) == 0 {
		return emptyResult, nil
	}
	return strings.Join(keys, " "), nil
}

// BoundOperation serves both min and max
type BoundOperation struct{}

func (o *BoundOperation) SupportsCommand(name string) bool {
	return name == "min" || name == "max"
}

func (o *BoundOperation) Usage() string {
	return "# min | max\n\nPrints the entry with the lowest or the highest value."
}

func (o *BoundOperation) Run(tree *avlmap.Tree, cmd *Command) (string, error) {
	if err := expectArgs(cmd, 0, cmd.Name); err != nil {
		return "", err
	}
	bound := tree.Min
	if cmd.Name == "max" {
		bound = tree.Max
	}
	key, value, ok := bound()
	if !ok {
		return emptyResult, nil
	}
	return fmt.Sprintf("{%s: %d}", key, value), nil
}
