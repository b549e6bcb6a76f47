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
	"strings"

	"github.com/cybrota/avlmap/avlmap"
	"github.com/mattn/go-shellwords"
)

// Operation defines the interface for one console operation on a tree
type Operation interface {
	Run(tree *avlmap.Tree, cmd *Command) (string, error)
	SupportsCommand(name string) bool
	Usage() string // markdown
}

// Command represents a parsed console line
type Command struct {
	Parts    []string
	Name     string
	Args     []string
	FullName string
}

// NewCommand creates a new Command from line parts
func NewCommand(parts []string) *Command {
	if len(parts) == 0 {
		return &Command{Parts: parts}
	}

	return &Command{
		Parts:    parts,
		Name:     strings.ToLower(parts[0]),
		Args:     parts[1:],
		FullName: strings.Join(parts, " "),
	}
}

// Parse splits a console line into a Command. Quoting follows shell rules,
// so keys may contain spaces. Unquoted separators such as ; | & < > are
// rejected, one line holds one operation.
func Parse(line string) (*Command, error) {
	p := shellwords.NewParser()
	parts, err := p.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %v", line, err)
	}
	if p.Position != -1 {
		return nil, fmt.Errorf("failed to parse %q: one operation per line, quote separators used in keys", line)
	}
	return NewCommand(parts), nil
}

// HasArgs checks if command has exactly n arguments
func (c *Command) HasArgs(n int) bool {
	return len(c.Args) == n
}

// Arg returns the nth argument (0-indexed)
func (c *Command) Arg(n int) string {
	if n >= len(c.Args) {
		return ""
	}
	return c.Args[n]
}
