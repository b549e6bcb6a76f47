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
	"os"

	"github.com/cybrota/avlmap/avlmap"
	"github.com/cybrota/avlmap/console"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

// loadConfigOrDefaults logs a broken config file and carries on with defaults
func loadConfigOrDefaults() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

func main() {
	InitializeColors()

	asciiLogo := `
 █████╗ ██╗   ██╗██╗     ███╗   ███╗ █████╗ ██████╗
██╔══██╗██║   ██║██║     ████╗ ████║██╔══██╗██╔══██╗
███████║██║   ██║██║     ██╔████╔██║███████║██████╔╝
██╔══██║╚██╗ ██╔╝██║     ██║╚██╔╝██║██╔══██║██╔═══╝
██║  ██║ ╚████╔╝ ███████╗██║ ╚═╝ ██║██║  ██║██║
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝     ╚═╝╚═╝  ╚═╝╚═╝
Value ordered AVL map with an interactive explorer [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	explore := func(cmd *cobra.Command, args []string) {
		config := loadConfigOrDefaults()
		helpCache := NewOptimizedHelpCache()

		tree := avlmap.New()
		preloadTree(tree, config.Explore.Preload)
		if err := runExplore(tree, helpCache, config); err != nil {
			log.Fatalf("Error running explorer: %v", err)
		}
	}

	var cmdExplore = &cobra.Command{
		Use:   "explore",
		Short: "Launches the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Explore opens a console to run operations against a live tree`),
		Args:  cobra.MinimumNArgs(0),
		Run:   explore,
	}

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Runs the demonstration script",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Demo inserts, queries and removes entries, printing the tree after every phase`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefaults()
			if err := runDemo(cmd.OutOrStdout(), config.IndentString()); err != nil {
				log.Fatalf("Error running demo: %v", err)
			}
		},
	}

	var cmdExec = &cobra.Command{
		Use:   "exec [lines...]",
		Short: "Runs console lines without the explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Exec runs each argument as a console line, or reads lines from stdin when none are given`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefaults()
			lines := args
			if len(lines) == 0 {
				var err error
				if lines, err = readScript(cmd.InOrStdin()); err != nil {
					log.Fatalf("Error reading script: %v", err)
				}
			}

			strict, _ := cmd.Flags().GetBool("strict")
			d := console.NewDispatcher(config.IndentString())
			if err := runScript(d, avlmap.New(), lines, cmd.OutOrStdout(), strict); err != nil {
				fmt.Fprintf(os.Stderr, "%s%v%s\n", Error, err, Reset)
				os.Exit(1)
			}
		},
	}

	cmdExec.Flags().Bool("strict", false, "stop at the first failing line and exit non-zero")

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Runs a random insert/remove workload",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Stress hammers a tree with seeded random operations and verifies it as it goes`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefaults()
			cfg := config.Stress
			if cmd.Flags().Changed("ops") {
				cfg.Operations, _ = cmd.Flags().GetInt("ops")
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed, _ = cmd.Flags().GetInt64("seed")
			}

			report, err := runStress(cfg, cmd.OutOrStdout(), true)
			if err != nil {
				log.Fatalf("Stress run failed: %v", err)
			}
			printStressReport(cmd.OutOrStdout(), report)
		},
	}

	cmdStress.Flags().Int("ops", defaultConfig.Stress.Operations, "number of operations")
	cmdStress.Flags().Int64("seed", defaultConfig.Stress.Seed, "random seed")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlmap usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avlmap CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings displays the configuration file, creating a default one on first run`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			configPath, err := getConfigPath()
			if err != nil {
				log.Fatalf("Error locating home directory: %v", err)
			}
			if err := displaySettings(cmd.OutOrStdout(), configPath); err != nil {
				log.Fatalf("Error displaying settings: %v", err)
			}
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlmap version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlmap",
		Version: version,
		Long:    asciiLogo,
		// Default to the explorer when no subcommand is provided
		Run: explore,
	}
	rootCmd.AddCommand(cmdExplore, cmdDemo, cmdExec, cmdStress, cmdUsage, cmdSettings, cmdVersion)
	rootCmd.Execute()
}
