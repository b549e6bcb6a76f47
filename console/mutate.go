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

	"github.com/cybrota/avlmap/avlmap"
)

// parseValue reads an unsigned decimal value argument
func parseValue(arg string) (uint64, error) {
	value, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: must be an unsigned integer", arg)
	}
	return value, nil
}

// expectArgs fails with the synopsis unless cmd has exactly n arguments
func expectArgs(cmd *Command, n int, synopsis string) error {
	if !cmd.HasArgs(n) {
		return fmt.Errorf("usage: %s", synopsis)
	}
	return nil
}

type InsertOperation struct{}

func (o *InsertOperation) SupportsCommand(name string) bool {
	return name == "insert" || name == "add"
}

func (o *InsertOperation) Usage() string {
	return "# insert KEY VALUE\n\nAdds a new entry. Refused when the key or the value is already in the tree."
}

func (o *InsertOperation) Run(tree *avlmap.Tree, cmd *Command) (string, error) {
	if err := expectArgs(cmd, 2, "insert KEY VALUE"); err != nil {
		return "", err
	}
	key := cmd.Arg(0)
	value, err := parseValue(cmd.Arg(1))
	if err != nil {
		return "", err
	}
	if err := tree.Add(key, value); err != nil {
		return "", fmt.Errorf("insert %s: %w", key, err)
	}
	return fmt.Sprintf("inserted {%s: %d}", key, value), nil
}

type RemoveOperation struct{}

func (o *RemoveOperation) SupportsCommand(name string) bool {
	return name == "remove" || name == "delete"
}

func (o *RemoveOperation) Usage() string {
	return "# remove KEY\n\nDeletes the entry for KEY and rebalances the tree."
}

func (o *RemoveOperation) Run(tree *avlmap.Tree, cmd *Command) (string, error) {
	if err := expectArgs(cmd, 1, "remove KEY"); err != nil {
		return "", err
	}
	key := cmd.Arg(0)
	value, ok := tree.Delete(key)
	if !ok {
		return "", fmt.Errorf("remove %s: %w", key, avlmap.ErrKeyNotFound)
	}
	return fmt.Sprintf("removed {%s: %d}", key, value), nil
}

type SetOperation struct{}

func (o *SetOperation) SupportsCommand(name string) bool {
	return name == "set"
}

func (o *SetOperation) Usage() string {
	return "# set KEY VALUE\n\nChanges the value of an existing key. The entry moves to its new place in the value ordering. Fails for a missing key, nothing is inserted."
}

func (o *SetOperation) Run(tree *avlmap.Tree, cmd *Command) (string, error) {
	if err := expectArgs(cmd, 2, "set KEY VALUE"); err != nil {
		return "", err
	}
	key := cmd.Arg(0)
	value, err := parseValue(cmd.Arg(1))
	if err != nil {
		return "", err
	}
	if err := tree.Set(key, value); err != nil {
		return "", fmt.Errorf("set %s: %w", key, err)
	}
	return fmt.Sprintf("{%s: %d}", key, value), nil
}

type ClearOperation struct{}

func (o *ClearOperation) SupportsCommand(name string) bool {
	return name == "clear"
}

func (o *ClearOperation) Usage() string {
	return "# clear\n\nRemoves every entry."
}

func (o *ClearOperation) Run(tree *avlmap.Tree, cmd *Command) (string, error) {
	if err := expectArgs(cmd, 0, "clear"); err != nil {
		return "", err
	}
	n := tree.Size()
	tree.Clear()
	return fmt.Sprintf("cleared %d entries", n), nil
}
