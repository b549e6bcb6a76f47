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
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var detectedMode TerminalMode

// ANSI codes for plain fmt output. Empty until InitializeColors runs, so
// output written in tests carries no escape codes.
var Green, Info, Warning, Error, Reset string

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, name := range []string{"TERM_THEME", "THEME"} {
		if theme := os.Getenv(name); theme != "" {
			theme = strings.ToLower(theme)
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// InitializeColors detects terminal mode and sets up the ANSI colors
func InitializeColors() {
	detectedMode = detectTerminalMode()
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// ANSI color codes for terminal output (adaptive to mode)
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m" // Green
		info = "\033[34m"    // Blue
		warning = "\033[33m" // Yellow
		error = "\033[31m"   // Red
	} else {
		success = "\033[92m" // Bright Green
		info = "\033[96m"    // Bright Cyan
		warning = "\033[93m" // Bright Yellow
		error = "\033[91m"   // Bright Red
	}

	reset = "\033[0m"
	return
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	Heading        lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	accent := lipgloss.Color("39") // Bright cyan/blue, readable on dark backgrounds
	if detectedMode == TerminalModeLight {
		accent = lipgloss.Color("25")
	}

	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(accent).
			Padding(0, 1).
			Bold(true),
		Heading: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Underline(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}
