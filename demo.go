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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/avlmap/avlmap"
)

// demoStep inserts one entry and reports the outcome
type demoStep struct {
	key   string
	value uint64
	note  string
}

var demoPhases = [][]demoStep{
	{
		{"F", 6, ""},
		{"F", 6, "no duplicates allowed"},
		{"F", 7, "the key is taken"},
		{"V", 22, ""},
		{"W", 23, "single rotate left"},
		{"X", 24, ""},
	},
	{
		{"C", 3, ""},
		{"A", 1, "single rotate right"},
	},
	{
		{"D", 4, ""},
		{"E", 5, "double rotate"},
	},
	{
		{"R", 18, "single rotate left"},
	},
	{
		{"V", 22, "duplicate"},
		{"A", 1, "duplicate"},
		{"Z", 26, ""},
		{"M", 13, "double rotate"},
		{"D", 3, "duplicate"},
	},
}

var demoRemovals = []string{"A", "C", "F", "V", "X", "Z"}

// runDemo walks a tree through rotations, queries and removals, printing
// the tree after every phase.
func runDemo(w io.Writer, indent string) error {
	styles := NewStyles()
	tree := avlmap.New()

	printTree := func() error {
		fmt.Fprintln(w)
		if err := tree.Render(w, indent); err != nil {
			return fmt.Errorf("failed to render tree: %v", err)
		}
		fmt.Fprintln(w)
		return nil
	}

	fmt.Fprintln(w, styles.Heading.Render("Insert"))
	for _, phase := range demoPhases {
		for _, step := range phase {
			err := tree.Add(step.key, step.value)
			line := fmt.Sprintf("tree.insert(%s, %d): %t", step.key, step.value, err == nil)
			if err != nil {
				line += fmt.Sprintf(" (%v)", err)
			}
			if step.note != "" {
				line += " // " + step.note
			}
			fmt.Fprintln(w, line)
		}
		if err := printTree(); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, styles.Heading.Render("Query"))
	fmt.Fprintf(w, "tree size: %d\n", tree.Size())
	fmt.Fprintf(w, "tree height: %d\n\n", tree.Height())

	for _, key := range []string{"A", "N"} {
		fmt.Fprintf(w, "contains(%s): %t\n", key, tree.Contains(key))
	}
	for _, key := range []string{"A", "C", "Q"} {
		if value, ok := tree.Get(key); ok {
			fmt.Fprintf(w, "%s: %d\n", key, value)
		} else {
			fmt.Fprintf(w, "%s: absent\n", key)
		}
	}

	values := tree.FindRange("D", "W")
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	fmt.Fprintf(w, "findRange(D, W): %s\n\n", strings.Join(parts, " "))

	fmt.Fprintln(w, styles.Heading.Render("Set"))
	for _, step := range []demoStep{{"A", 108, ""}, {"Q", 1, ""}} {
		if err := tree.Set(step.key, step.value); err != nil {
			fmt.Fprintf(w, "tree.set(%s, %d): %v\n", step.key, step.value, err)
		} else {
			fmt.Fprintf(w, "tree.set(%s, %d): ok\n", step.key, step.value)
		}
	}
	if err := printTree(); err != nil {
		return err
	}

	fmt.Fprintln(w, styles.Heading.Render("Remove"))
	for _, key := range demoRemovals {
		fmt.Fprintf(w, "tree.remove(%s): %t\n", key, tree.Remove(key))
	}
	if err := printTree(); err != nil {
		return err
	}

	fmt.Fprintf(w, "keys: %s\n", strings.Join(tree.Keys(), " "))
	fmt.Fprintf(w, "tree size: %d\n", tree.Size())
	fmt.Fprintf(w, "tree height: %d\n", tree.Height())

	if err := tree.Check(); err != nil {
		return fmt.Errorf("demo left the tree inconsistent: %v", err)
	}
	return nil
}
