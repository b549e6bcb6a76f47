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
	"os"
	"path/filepath"
	"strings"

	"github.com/cybrota/avlmap/avlmap"
	"gopkg.in/yaml.v3"
)

const configFileName = ".avlmap.yaml"

type RenderConfig struct {
	Indent int `yaml:"indent"` // spaces per level of depth
}

type StressConfig struct {
	Operations  int     `yaml:"operations"`
	Seed        int64   `yaml:"seed"`
	CheckEvery  int     `yaml:"check_every"`
	RemoveRatio float64 `yaml:"remove_ratio"`
	KeySpace    int     `yaml:"key_space"`
}

type Entry struct {
	Key   string `yaml:"key"`
	Value uint64 `yaml:"value"`
}

type ExploreConfig struct {
	Preload []Entry `yaml:"preload"`
}

type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Stress  StressConfig  `yaml:"stress"`
	Explore ExploreConfig `yaml:"explore"`
}

var defaultConfig = Config{
	Render: RenderConfig{
		Indent: 4,
	},
	Stress: StressConfig{
		Operations:  20000,
		Seed:        1,
		CheckEvery:  1000,
		RemoveRatio: 0.3,
		KeySpace:    10000,
	},
	Explore: ExploreConfig{
		Preload: []Entry{
			{Key: "F", Value: 6},
			{Key: "V", Value: 22},
			{Key: "W", Value: 23},
			{Key: "X", Value: 24},
		},
	},
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return withDefaults(), nil
	}
	return loadConfigFrom(configPath)
}

// loadConfigFrom falls back to the defaults when the file is missing or
// unreadable. Settings absent from the file keep their default values.
func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return withDefaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return withDefaults(), nil
	}

	config := withDefaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return withDefaults(), fmt.Errorf("invalid config %s: %v", configPath, err)
	}

	return config, nil
}

func withDefaults() *Config {
	config := defaultConfig
	config.Explore.Preload = append([]Entry(nil), defaultConfig.Explore.Preload...)
	return &config
}

// IndentString is the render indent for one level of depth
func (c *Config) IndentString() string {
	if c.Render.Indent <= 0 {
		return avlmap.DefaultIndent
	}
	return strings.Repeat(" ", c.Render.Indent)
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings(w io.Writer, configPath string) error {
	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 avlmap Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")

	fmt.Fprintf(w, "🌳 %sRender:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sindent%s: %d\n\n", Green, Reset, config.Render.Indent)

	fmt.Fprintf(w, "🔥 %sStress:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %soperations%s: %d\n", Green, Reset, config.Stress.Operations)
	fmt.Fprintf(w, "  • %sseed%s: %d\n", Green, Reset, config.Stress.Seed)
	fmt.Fprintf(w, "  • %scheck_every%s: %d\n", Green, Reset, config.Stress.CheckEvery)
	fmt.Fprintf(w, "  • %sremove_ratio%s: %.2f\n", Green, Reset, config.Stress.RemoveRatio)
	fmt.Fprintf(w, "  • %skey_space%s: %d\n\n", Green, Reset, config.Stress.KeySpace)

	fmt.Fprintf(w, "🔍 %sExplore:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %spreload%s: %d entries\n", Green, Reset, len(config.Explore.Preload))
	for _, e := range config.Explore.Preload {
		fmt.Fprintf(w, "    {%s: %d}\n", e.Key, e.Value)
	}

	return nil
}
