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
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avlmap/avlmap"
	"github.com/cybrota/avlmap/console"
	"github.com/patrickmn/go-cache"
)

// Focus areas, cycled with tab
const (
	FocusInput = iota
	FocusHistory
	FocusPanel
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	// Components
	textInput    textinput.Model
	historyList  list.Model
	panelView    viewport.Model
	panelContent string

	// Data
	tree       *avlmap.Tree
	dispatcher *console.Dispatcher
	helpCache  *cache.Cache
	config     *Config

	// State
	focusIndex   int
	showingHelp  bool // panel shows a help page instead of the tree
	history      []historyItem
	status       string
	statusFailed bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// historyItem is one executed console line
type historyItem struct {
	line   string
	result string
	failed bool
}

func (i historyItem) FilterValue() string { return i.line }
func (i historyItem) Title() string       { return i.line }
func (i historyItem) Description() string {
	first, _, _ := strings.Cut(i.result, "\n")
	if i.failed {
		return "✗ " + first
	}
	return "✓ " + first
}

// clipboardMsg reports the outcome of a copy
type clipboardMsg struct {
	err error
}

// InitialModel creates the initial model
func InitialModel(tree *avlmap.Tree, hc *cache.Cache, config *Config) Model {
	styles := NewStyles()

	ti := textinput.New()
	ti.PromptStyle = styles.InputPrompt
	ti.Placeholder = "insert KEY VALUE, remove KEY, help..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	historyList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	historyList.SetShowTitle(false)
	historyList.SetShowHelp(false)
	historyList.SetShowStatusBar(false)
	historyList.SetFilteringEnabled(false)

	panelView := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		textInput:       ti,
		historyList:     historyList,
		panelView:       panelView,
		tree:            tree,
		dispatcher:      console.NewDispatcher(config.IndentString()),
		helpCache:       hc,
		config:          config,
		focusIndex:      FocusInput,
		styles:          styles,
		glamourRenderer: glamourRenderer,
		status:          fmt.Sprintf("%d entries loaded", tree.Size()),
	}
	m.refreshTree()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.setFocus((m.focusIndex + 1) % 3)
			return m, nil
		case "f1":
			parts, err := splitLine(m.textInput.Value())
			if err != nil || len(parts) == 0 {
				parts = nil
			} else {
				parts = parts[:1]
			}
			m.showHelp(parts)
			return m, nil
		case "ctrl+y":
			return m, copyTreeCmd(m.clipboardText())
		}

		switch m.focusIndex {
		case FocusInput:
			return m.updateInput(msg)
		case FocusHistory:
			return m.updateHistory(msg)
		default:
			var cmd tea.Cmd
			m.panelView, cmd = m.panelView.Update(msg)
			return m, cmd
		}

	case clipboardMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
		} else {
			m.setStatus("📋 Copied tree to clipboard", false)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		line := strings.TrimSpace(m.textInput.Value())
		m.textInput.Reset()
		return m.submit(line)
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		// Recall the selected line for editing
		if item, ok := m.historyList.SelectedItem().(historyItem); ok {
			m.textInput.SetValue(item.line)
			m.textInput.CursorEnd()
			m.setFocus(FocusInput)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.historyList, cmd = m.historyList.Update(msg)
	return m, cmd
}

// submit runs one console line. help and quit are handled here, the rest
// goes to the dispatcher.
func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	if line == "" {
		return m, nil
	}

	parts, err := splitLine(line)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}

	if len(parts) == 0 {
		m.setStatus(fmt.Sprintf("nothing to run in %q", line), true)
		return m, nil
	}

	switch strings.ToLower(parts[0]) {
	case "quit", "exit":
		return m, tea.Quit
	case "help":
		m.showHelp(parts[1:])
		return m, nil
	}

	result, err := m.dispatcher.Execute(m.tree, line)
	item := historyItem{line: line, result: result}
	if err != nil {
		item.result = err.Error()
		item.failed = true
	}
	m.history = append(m.history, item)
	cmd := m.historyList.InsertItem(0, item)
	m.historyList.Select(0)

	m.setStatus(item.result, item.failed)
	m.showingHelp = false
	m.refreshTree()
	return m, cmd
}

// showHelp renders the markdown page of an operation into the panel.
// Rendered pages are cached per topic.
func (m *Model) showHelp(parts []string) {
	md, err := getOperationHelp(m.dispatcher, parts)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}

	topic := "operations"
	if len(parts) > 0 {
		topic = strings.ToLower(parts[0])
	}
	rendered := GetOrFillCache(m.helpCache, topic, func(string) string {
		return m.renderMarkdown(md)
	})

	m.showingHelp = true
	m.setPanel(rendered)
	m.setStatus(fmt.Sprintf("help: %s (run any operation to return to the tree)", topic), false)
}

func (m *Model) renderMarkdown(md string) string {
	if m.glamourRenderer == nil {
		return md
	}
	// Fall back to plain text
	if rendered, err := m.glamourRenderer.Render(md); err == nil {
		return rendered
	}
	return md
}

func (m *Model) refreshTree() {
	if m.showingHelp {
		return
	}
	rendered, err := m.dispatcher.Execute(m.tree, "print")
	if err != nil {
		rendered = err.Error()
	}
	m.setPanel(rendered)
}

// clipboardText is the tree as drawn in the panel, with the configured indent
func (m Model) clipboardText() string {
	var sb strings.Builder
	m.tree.Render(&sb, m.config.IndentString())
	return sb.String()
}

func (m *Model) setPanel(content string) {
	m.panelContent = content
	m.panelView.SetContent(content)
	m.panelView.GotoTop()
}

func (m *Model) setStatus(status string, failed bool) {
	m.status = status
	m.statusFailed = failed
}

func (m *Model) setFocus(index int) {
	m.focusIndex = index
	if index == FocusInput {
		m.textInput.Focus()
	} else {
		m.textInput.Blur()
	}
}

func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 8 // Leave room for status and help lines
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	m.textInput.Width = leftWidth - 4
	m.historyList.SetSize(leftWidth-2, listHeight-2)
	m.panelView.Width = rightWidth - 2
	m.panelView.Height = listHeight + inputHeight
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	// Ensure we have minimum dimensions
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 8
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	inputBox := m.box(FocusInput, " ⌨️  Console", leftWidth, inputHeight, m.textInput.View())
	historyBox := m.box(FocusHistory, " 📋 History", leftWidth, listHeight, m.historyList.View())

	panelTitle := fmt.Sprintf(" 🌳 Tree (%d entries, height %d)", m.tree.Size(), m.tree.Height())
	if m.showingHelp {
		panelTitle = " 📖 Help"
	}
	panelBox := m.box(FocusPanel, panelTitle, rightWidth, listHeight+inputHeight+2, m.panelView.View())

	leftColumn := lipgloss.JoinVertical(lipgloss.Left, inputBox, historyBox)
	main := lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, panelBox)

	statusStyle := m.styles.SuccessMessage
	if m.statusFailed {
		statusStyle = m.styles.ErrorMessage
	}
	status := lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(statusStyle.Render(firstLine(m.status)))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		status,
		m.renderHelp(),
	)
}

func (m Model) box(index int, title string, width, height int, content string) string {
	style := m.styles.BorderBlurred
	if m.focusIndex == index {
		style = m.styles.BorderFocused
		title += " (Active)"
	}
	return style.
		Width(width).
		Height(height).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(width-4).Render(title),
			content,
		))
}

// renderHelp renders the key bindings footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "tab", "f1", "ctrl+y", "esc"}
	descs := []string{"run / recall", "switch focus", "operation help", "copy tree", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard unavailable: %v", err)
	}
	return nil
}

func copyTreeCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: copyToClipboard(text)}
	}
}

// preloadTree inserts the configured entries, logging the ones refused
func preloadTree(tree *avlmap.Tree, entries []Entry) {
	for _, e := range entries {
		if err := tree.Add(e.Key, e.Value); err != nil {
			log.Printf("Skipping preload entry {%s: %d}: %v", e.Key, e.Value, err)
		}
	}
}

// runExplore starts the Bubble Tea application
func runExplore(tree *avlmap.Tree, hc *cache.Cache, config *Config) error {
	model := InitialModel(tree, hc, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
