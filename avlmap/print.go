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
	"io"
	"strings"
)

// DefaultIndent is the per-level indent used by String.
const DefaultIndent = "    "

// Render writes the tree sideways: the right subtree above its parent and
// the left subtree below, one {key: value} line per node, indented once
// per level of depth.
func (tree *Tree) Render(w io.Writer, indent string) error {
	return render(w, tree.root, indent, 0)
}

func render(w io.Writer, n *node, indent string, depth int) error {
	if n == nil {
		return nil
	}
	if err := render(w, n.right, indent, depth+1); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s{%s: %d}\n", strings.Repeat(indent, depth), n.key, n.value); err != nil {
		return err
	}
	return render(w, n.left, indent, depth+1)
}

// String renders the tree with DefaultIndent.
func (tree *Tree) String() string {
	var sb strings.Builder
	tree.Render(&sb, DefaultIndent) // writes to a strings.Builder do not fail
	return sb.String()
}
