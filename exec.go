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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/avlmap/avlmap"
	"github.com/cybrota/avlmap/console"
)

// runScript executes console lines against tree, echoing each line with
// its result. Failures are reported inline; with strict the first one
// stops the script and is returned.
func runScript(d *console.Dispatcher, tree *avlmap.Tree, lines []string, w io.Writer, strict bool) error {
	failures := 0
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fmt.Fprintf(w, "> %s\n", line)
		result, err := d.Execute(tree, line)
		if err != nil {
			failures++
			fmt.Fprintf(w, "%serror%s: %v\n", Error, Reset, err)
			if strict {
				return fmt.Errorf("line %d: %v", i+1, err)
			}
			continue
		}
		if result != "" {
			fmt.Fprintln(w, result)
		}
	}

	if failures > 0 {
		fmt.Fprintf(w, "%s%d line(s) failed%s\n", Warning, failures, Reset)
	}
	return nil
}

// readScript reads one console line per input line
func readScript(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %v", err)
	}
	return lines, nil
}
