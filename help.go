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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlmap %s**

A balanced search tree mapping string keys to unsigned values, ordered by value.
Explore it interactively, script it, or hammer it with a random workload.

Built with Go %s

# 1. Commands
* **explore** (default): interactive console with a live view of the tree
* **demo**: runs the demonstration script with rotations and removals
* **exec**: runs console lines from arguments or stdin
* **stress**: random insert/remove workload with periodic invariant checks
* **settings**: shows the configuration file, creating it on first run

# 2. Console operations
* insert KEY VALUE, remove KEY, set KEY VALUE, clear
* get KEY, contains KEY, range LOWKEY HIGHKEY, keys, min, max
* size, height, check, print

Keys with spaces can be quoted: insert "new york" 12

# 3. Explorer keys
* enter runs the line, tab switches focus
* help OP or f1 shows the operation's help page
* ctrl+y copies the rendered tree to the clipboard
* esc or ctrl+c quits

# Please be aware
* Values are unique as well as keys. Lookups by key scan the tree.
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
