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
	"math"
	"math/rand"

	"github.com/cybrota/avlmap/avlmap"
	"github.com/schollz/progressbar/v3"
)

// StressReport summarises one stress run
type StressReport struct {
	Operations  int
	Inserted    int
	Removed     int
	Rejected    int // inserts refused for a taken key or value, removals of absent keys
	Checks      int
	Size        int
	Height      int
	HeightBound int
}

// heightBound is the worst case AVL height for n entries
func heightBound(n int) int {
	return int(1.4405 * math.Log2(float64(n+2)))
}

func validateStressConfig(cfg StressConfig) error {
	if cfg.Operations <= 0 {
		return fmt.Errorf("operations must be positive, got %d", cfg.Operations)
	}
	if cfg.KeySpace <= 0 {
		return fmt.Errorf("key_space must be positive, got %d", cfg.KeySpace)
	}
	if cfg.RemoveRatio < 0 || cfg.RemoveRatio > 1 {
		return fmt.Errorf("remove_ratio must be between 0 and 1, got %.2f", cfg.RemoveRatio)
	}
	return nil
}

// runStress applies a seeded random mix of inserts and removals, verifying
// the tree every CheckEvery operations and once at the end.
func runStress(cfg StressConfig, w io.Writer, showProgress bool) (StressReport, error) {
	report := StressReport{Operations: cfg.Operations}
	if err := validateStressConfig(cfg); err != nil {
		return report, err
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(cfg.Operations,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("🌳 Stressing tree..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(w, "\n✅ Workload completed!\n")
			}),
		)
	}

	r := rand.New(rand.NewSource(cfg.Seed))
	tree := avlmap.New()

	verify := func(op int) error {
		report.Checks++
		if err := tree.Check(); err != nil {
			return fmt.Errorf("after operation %d: %w", op, err)
		}
		if bound := heightBound(tree.Size()); tree.Height() > bound {
			return fmt.Errorf("after operation %d: height %d exceeds %d for %d entries: %w",
				op, tree.Height(), bound, tree.Size(), avlmap.ErrCorrupt)
		}
		return nil
	}

	for op := 1; op <= cfg.Operations; op++ {
		key := fmt.Sprintf("k%d", r.Intn(cfg.KeySpace))
		if !tree.IsEmpty() && r.Float64() < cfg.RemoveRatio {
			if tree.Remove(key) {
				report.Removed++
			} else {
				report.Rejected++
			}
		} else {
			if tree.Insert(key, uint64(r.Int63())) {
				report.Inserted++
			} else {
				report.Rejected++
			}
		}

		if bar != nil {
			bar.Add(1)
		}
		if cfg.CheckEvery > 0 && op%cfg.CheckEvery == 0 {
			if err := verify(op); err != nil {
				return report, err
			}
		}
	}

	if err := verify(cfg.Operations); err != nil {
		return report, err
	}

	report.Size = tree.Size()
	report.Height = tree.Height()
	report.HeightBound = heightBound(report.Size)
	return report, nil
}

func printStressReport(w io.Writer, report StressReport) {
	fmt.Fprintf(w, "🔥 %sStress report%s\n", Green, Reset)
	fmt.Fprintf(w, "  • operations: %d\n", report.Operations)
	fmt.Fprintf(w, "  • inserted: %d\n", report.Inserted)
	fmt.Fprintf(w, "  • removed: %d\n", report.Removed)
	fmt.Fprintf(w, "  • rejected: %d\n", report.Rejected)
	fmt.Fprintf(w, "  • checks passed: %d\n", report.Checks)
	fmt.Fprintf(w, "  • final size: %d\n", report.Size)
	fmt.Fprintf(w, "  • final height: %d (AVL bound %d)\n", report.Height, report.HeightBound)
}
