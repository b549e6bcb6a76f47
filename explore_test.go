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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cybrota/avlmap/avlmap"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	tree := avlmap.New()
	preloadTree(tree, defaultConfig.Explore.Preload)
	m := InitialModel(tree, NewOptimizedHelpCache(), withDefaults())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func runLine(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m.textInput.SetValue(line)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func TestExploreView(t *testing.T) {
	m := InitialModel(avlmap.New(), NewOptimizedHelpCache(), withDefaults())
	if got := m.View(); got != "Initializing..." {
		t.Errorf("Expected initializing view before sizing, got %q", got)
	}

	m = newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "{V: 22}") {
		t.Errorf("Expected preloaded tree in view, got:\n%s", view)
	}
	if !strings.Contains(view, "copy tree") {
		t.Errorf("Expected key bindings in view, got:\n%s", view)
	}
}

func TestExploreRunsOperations(t *testing.T) {
	m := newTestModel(t)

	m, _ = runLine(t, m, "insert C 3")
	if m.tree.Size() != 5 {
		t.Errorf("Expected 5 entries, got %d", m.tree.Size())
	}
	if m.statusFailed || m.status != "inserted {C: 3}" {
		t.Errorf("Unexpected status %q (failed %t)", m.status, m.statusFailed)
	}
	if !strings.Contains(m.panelContent, "{C: 3}") {
		t.Errorf("Expected tree panel to show the new entry, got:\n%s", m.panelContent)
	}
	if m.textInput.Value() != "" {
		t.Errorf("Expected input to be cleared, got %q", m.textInput.Value())
	}

	m, _ = runLine(t, m, "insert D 3")
	if !m.statusFailed {
		t.Errorf("Expected duplicate value to fail, status %q", m.status)
	}
	if len(m.history) != 2 || !m.history[1].failed {
		t.Errorf("Unexpected history %+v", m.history)
	}
}

func TestExploreHelp(t *testing.T) {
	m := newTestModel(t)

	m, _ = runLine(t, m, "help insert")
	if !m.showingHelp {
		t.Fatal("Expected help page to be shown")
	}
	if !strings.Contains(m.panelContent, "insert") {
		t.Errorf("Expected insert help, got:\n%s", m.panelContent)
	}
	if GetHelpPage(m.helpCache, "insert") == "" {
		t.Error("Expected rendered help page to be cached")
	}

	m, _ = runLine(t, m, "help rotate")
	if !m.statusFailed {
		t.Errorf("Expected unknown operation help to fail, status %q", m.status)
	}

	m, _ = runLine(t, m, "size")
	if m.showingHelp {
		t.Error("Expected tree to return after running an operation")
	}
}

func TestExploreFocusAndRecall(t *testing.T) {
	m := newTestModel(t)
	m, _ = runLine(t, m, "get V")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.focusIndex != FocusHistory {
		t.Fatalf("Expected history focus, got %d", m.focusIndex)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.focusIndex != FocusInput || m.textInput.Value() != "get V" {
		t.Errorf("Expected recalled line in input, got %q (focus %d)", m.textInput.Value(), m.focusIndex)
	}
}

func TestExploreRejectsSeparators(t *testing.T) {
	m := newTestModel(t)

	for _, line := range []string{";", "|", "&&", "insert A 1; insert B 2"} {
		updated, _ := m.submit(line)
		got := updated.(Model)
		if !got.statusFailed {
			t.Errorf("Expected %q to fail, status %q", line, got.status)
		}
		if got.tree.Size() != 4 {
			t.Errorf("Expected %q to leave the tree untouched, size %d", line, got.tree.Size())
		}
	}
}

func TestExploreClipboardUsesConfiguredIndent(t *testing.T) {
	config := withDefaults()
	config.Render.Indent = 2
	tree := avlmap.New()
	preloadTree(tree, config.Explore.Preload)

	m := InitialModel(tree, NewOptimizedHelpCache(), config)
	want := "    {X: 24}\n  {W: 23}\n{V: 22}\n  {F: 6}\n"
	if got := m.clipboardText(); got != want {
		t.Errorf("clipboardText() = %q; want %q", got, want)
	}
	if !strings.Contains(m.panelContent, "  {W: 23}\n{V: 22}") {
		t.Errorf("Expected panel to use the same indent, got:\n%s", m.panelContent)
	}
}

func TestExploreInputPromptStyled(t *testing.T) {
	m := newTestModel(t)
	prompt := m.textInput.PromptStyle
	if prompt.GetForeground() != m.styles.InputPrompt.GetForeground() || !prompt.GetBold() {
		t.Error("Expected the console prompt to use the input prompt style")
	}
}

func TestExploreQuit(t *testing.T) {
	m := newTestModel(t)

	if _, cmd := runLine(t, m, "quit"); cmd == nil {
		t.Error("Expected quit command")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Error("Expected esc to quit")
	}
}

func TestPreloadTreeSkipsRefused(t *testing.T) {
	tree := avlmap.New()
	preloadTree(tree, []Entry{{"A", 1}, {"A", 2}, {"B", 1}, {"B", 2}})
	if tree.Size() != 2 {
		t.Errorf("Expected 2 entries, got %d", tree.Size())
	}
}
