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
)

// Dispatcher routes console lines to the operation that handles them
type Dispatcher struct {
	operations []Operation
	names      []string
}

// NewDispatcher registers every operation. indent is used by print, an
// empty string selects the default.
func NewDispatcher(indent string) *Dispatcher {
	d := &Dispatcher{}

	d.RegisterOperation("insert", &InsertOperation{})
	d.RegisterOperation("remove", &RemoveOperation{})
	d.RegisterOperation("set", &SetOperation{})
	d.RegisterOperation("get", &GetOperation{})
	d.RegisterOperation("contains", &ContainsOperation{})
	d.RegisterOperation("range", &RangeOperation{})
	d.RegisterOperation("keys", &KeysOperation{})
	d.RegisterOperation("min", &BoundOperation{})
	d.RegisterOperation("max", &BoundOperation{})
	d.RegisterOperation("size", &SizeOperation{})
	d.RegisterOperation("height", &HeightOperation{})
	d.RegisterOperation("check", &CheckOperation{})
	d.RegisterOperation("print", NewPrintOperation(indent))
	d.RegisterOperation("clear", &ClearOperation{})

	return d
}

// RegisterOperation adds op under its primary name. Earlier registrations
// win when two operations support the same name.
func (d *Dispatcher) RegisterOperation(name string, op Operation) {
	d.operations = append(d.operations, op)
	d.names = append(d.names, name)
}

// Names lists the primary operation names in registration order
func (d *Dispatcher) Names() []string {
	return append([]string(nil), d.names...)
}

func (d *Dispatcher) find(name string) (Operation, error) {
	for _, op := range d.operations {
		if op.SupportsCommand(name) {
			return op, nil
		}
	}
	return nil, fmt.Errorf("unknown operation %q (try one of: %s)", name, strings.Join(d.names, ", "))
}

// Execute parses line and runs it against tree. A blank line does nothing.
func (d *Dispatcher) Execute(tree *avlmap.Tree, line string) (string, error) {
	cmd, err := Parse(line)
	if err != nil {
		return "", err
	}
	if cmd.Name == "" {
		return "", nil
	}

	op, err := d.find(cmd.Name)
	if err != nil {
		return "", err
	}
	return op.Run(tree, cmd)
}

// Usage returns the markdown help of the operation handling name
func (d *Dispatcher) Usage(name string) (string, error) {
	op, err := d.find(strings.ToLower(name))
	if err != nil {
		return "", err
	}
	return op.Usage(), nil
}
