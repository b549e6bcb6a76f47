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
	"strconv"
	"strings"

	"github.com/cybrota/avlmap/avlmap"
)

type SizeOperation struct{}

func (o *SizeOperation) SupportsCommand(name string) bool {
	return name == "size"
}

func (o *SizeOperation) Usage() string {
	return "# size\n\nPrints the number of entries."
}

func (o *SizeOperation) Run(tree *avlmap.Tree, cmd *Command) (string, error) {
	if err := expectArgs(cmd, 0, "size"); err != nil {
		return "", err
	}
	return strconv.Itoa(tree.Size()), nil
}

type HeightOperation struct{}

func (o *HeightOperation) SupportsCommand(name string) bool {
	return name == "height"
}

func (o *HeightOperation) Usage() string {
	return "# height\n\nPrints the height of the root. A single entry has height 0, an empty tree -1."
}

func (o *HeightOperation) Run(tree *avlmap.Tree, cmd *Command) (string, error) {
	if err := expectArgs(cmd, 0, "height"); err != nil {
		return "", err
	}
	return strconv.Itoa(tree.Height()), nil
}

type CheckOperation struct{}

func (o *CheckOperation) SupportsCommand(name string) bool {
	return name == "check"
}

func (o *CheckOperation) Usage() string {
	return "# check\n\nVerifies ordering, cached heights and balance of every node."
}

func (o *CheckOperation) Run(tree *avlmap.Tree, cmd *Command) (string, error) {
	if err := expectArgs(cmd, 0, "check"); err != nil {
		return "", err
	}
	if err := tree.Check(); err != nil {
		return "", err
	}
	return "ok", nil
}

// PrintOperation renders the tree sideways, root on the left
type PrintOperation struct {
	Indent string
}

func NewPrintOperation(indent string) *PrintOperation {
	if indent == "" {
		indent = avlmap.DefaultIndent
	}
	return &PrintOperation{Indent: indent}
}

func (o *PrintOperation) SupportsCommand(name string) bool {
	return name == "print" || name == "show"
}

func (o *PrintOperation) Usage() string {
	return "# print\n\nDraws the tree sideways: right subtrees above their parent, left subtrees below."
}

func (o *PrintOperation) Run(tree *avlmap.Tree, cmd *Command) (string, error) {
	if err := expectArgs(cmd, 0, "print"); err != nil {
		return "", err
	}
	if tree.IsEmpty() {
		return emptyResult, nil
	}

	var buf strings.Builder
	lw := NewLimitedWriter(&buf, MaxOutputSize)
	if err := tree.Render(lw, o.Indent); err != nil {
		return "", err
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	if lw.Truncated() {
		out += truncatedMarker
	}
	return out, nil
}
