//
// Copyright (c) 2025 Canonical Ltd
//
// Original implementation: Gustavo Niemeyer <niemeyer@canonical.com>
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

// Command colonytick runs a single simulated colony tick end to end:
// it builds a synthetic travel/work/retry/priority model for a set of
// characters and tasks, reduces it to scalar costs with
// assignment.ComputeCost, prunes it with assignment.LimitAssignments, and
// hands the result to an assignment.AssignmentSolver. It exists to
// exercise the library from outside its own test suite, mirroring how the
// reference Go algorithms module this project is built from ships a
// runnable example alongside its core package.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mafik/colonyassign/assignment"
)

type tickOptions struct {
	characters  int
	tasks       int
	seed        int64
	charCap     int
	taskCap     int
	travelScale float64
	verbose     bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &tickOptions{}

	cmd := &cobra.Command{
		Use:   "colonytick",
		Short: "Run one simulated colony tick through the assignment pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTick(opts)
		},
	}

	registerTickFlags(cmd.Flags(), opts)

	return cmd
}

// registerTickFlags is split out from newRootCommand, typed directly
// against *pflag.FlagSet, so a future subcommand sharing the same tick
// model (e.g. a "colonytick bench" variant) can register the identical
// flag set onto its own *cobra.Command without going through cobra.
func registerTickFlags(flags *pflag.FlagSet, opts *tickOptions) {
	flags.IntVar(&opts.characters, "characters", 8, "number of characters available this tick")
	flags.IntVar(&opts.tasks, "tasks", 12, "number of open tasks this tick")
	flags.Int64Var(&opts.seed, "seed", 1, "random seed for the synthetic tick model")
	flags.IntVar(&opts.charCap, "char-cap", 4, "max candidate tasks retained per character before solving")
	flags.IntVar(&opts.taskCap, "task-cap", 4, "max candidate characters retained per task before solving")
	flags.Float64Var(&opts.travelScale, "travel-scale", 1.0, "travel time multiplier fed into the cost kernel")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug-level solver tracing")
}

func runTick(opts *tickOptions) error {
	logger := log.Logger
	if opts.verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	rng := rand.New(rand.NewSource(opts.seed))
	kernel := assignment.CostKernel{TravelScale: opts.travelScale}

	candidates := buildTickCandidates(opts.characters, opts.tasks, kernel, rng)
	logger.Debug().Int("raw_candidates", len(candidates)).Msg("tick model built")

	candidates = assignment.LimitAssignments(candidates, opts.charCap, opts.taskCap)
	logger.Debug().Int("filtered_candidates", len(candidates)).Msg("candidates pruned")

	solver := assignment.NewAssignmentSolver()
	solver.SetLogger(&logger)

	result := solver.Optimize(candidates)

	total := 0.0
	for _, p := range result {
		total += p.Cost
		fmt.Printf("character %d -> task %d (cost %.3f)\n", p.Character, p.Task, p.Cost)
	}
	logger.Info().Int("assigned", len(result)).Float64("total_cost", total).Msg("tick solved")

	return nil
}

// buildTickCandidates generates one travel/work/retry/priority sample per
// (character, task) pair and reduces each to a scalar cost via kernel.
func buildTickCandidates(characters, tasks int, kernel assignment.CostKernel, rng *rand.Rand) assignment.CandidateSet {
	candidates := make(assignment.CandidateSet, 0, characters*tasks)
	for ch := 0; ch < characters; ch++ {
		for t := 0; t < tasks; t++ {
			travelTime := rng.Float64() * 20
			workTime := rng.Float64() * 30
			retryRisk := rng.Float64() * 0.3
			priority := 0.5 + rng.Float64()*1.5

			cost := kernel.Compute(travelTime, workTime, retryRisk, priority)
			candidates = append(candidates, assignment.Pairing{
				Character: ch,
				Task:      t,
				Cost:      cost,
			})
		}
	}
	return candidates
}
