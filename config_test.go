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
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := loadConfigFrom(filepath.Join(t.TempDir(), configFileName))
	if err != nil {
		t.Fatalf("loadConfigFrom returned error: %v", err)
	}
	if config.Render.Indent != defaultConfig.Render.Indent {
		t.Errorf("Expected default indent %d, got %d", defaultConfig.Render.Indent, config.Render.Indent)
	}
	if len(config.Explore.Preload) != len(defaultConfig.Explore.Preload) {
		t.Errorf("Expected %d preload entries, got %d", len(defaultConfig.Explore.Preload), len(config.Explore.Preload))
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	data := "render:\n  indent: 2\nexplore:\n  preload:\n    - key: A\n      value: 1\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom returned error: %v", err)
	}
	if config.Render.Indent != 2 {
		t.Errorf("Expected indent 2, got %d", config.Render.Indent)
	}
	if config.IndentString() != "  " {
		t.Errorf("Expected two space indent, got %q", config.IndentString())
	}
	if config.Stress.Operations != defaultConfig.Stress.Operations {
		t.Errorf("Expected stress settings to keep defaults, got %+v", config.Stress)
	}
	if len(config.Explore.Preload) != 1 || config.Explore.Preload[0] != (Entry{Key: "A", Value: 1}) {
		t.Errorf("Unexpected preload %+v", config.Explore.Preload)
	}
}

func TestLoadConfigInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte("render: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfigFrom(path)
	if err == nil {
		t.Error("Expected an error for invalid YAML")
	}
	if config == nil || config.Render.Indent != defaultConfig.Render.Indent {
		t.Errorf("Expected defaults alongside the error, got %+v", config)
	}
}

func TestIndentStringFallback(t *testing.T) {
	config := &Config{}
	if got := config.IndentString(); got != "    " {
		t.Errorf("Expected default indent, got %q", got)
	}
}

func TestDisplaySettingsCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	var out strings.Builder

	if err := displaySettings(&out, path); err != nil {
		t.Fatalf("displaySettings returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected config file to be created: %v", err)
	}
	if !strings.Contains(out.String(), "newly created") {
		t.Errorf("Expected creation notice, got:\n%s", out.String())
	}

	out.Reset()
	if err := displaySettings(&out, path); err != nil {
		t.Fatalf("displaySettings returned error: %v", err)
	}
	if strings.Contains(out.String(), "newly created") {
		t.Errorf("Did not expect creation notice on second run")
	}
	if !strings.Contains(out.String(), "{F: 6}") {
		t.Errorf("Expected preload entries in output, got:\n%s", out.String())
	}
}
