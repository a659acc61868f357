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

// Package planner implements the caller-side iterative re-assignment
// pattern: run the solver, commit the single cheapest pairing it produced,
// mark that character and task busy, and repeat against the remaining
// candidates. This is documented behavior, not part of the assignment
// core itself, and is never imported by the assignment package.
package planner

import (
	"errors"
	"sort"

	"github.com/mafik/colonyassign/assignment"
)

// ErrNoCandidates is returned by Run when the initial candidate set is
// empty; there is nothing to plan.
var ErrNoCandidates = errors.New("planner: no candidates to plan over")

// Commitment records one committed pairing and the step at which it was
// chosen.
type Commitment struct {
	assignment.Pairing
	Step int
}

// Run repeatedly calls solver.Optimize over candidates, each time
// committing only the single cheapest pairing of the returned matching,
// removing that character and task from further consideration, and
// re-optimizing over what remains. It stops when no candidates remain or
// a round produces no matching at all (every remaining pairing was
// infeasible).
//
// Run mutates candidates in place across rounds the same way
// AssignmentSolver.Optimize does; callers that need the original slice
// preserved should pass a copy.
func Run(solver *assignment.AssignmentSolver, candidates assignment.CandidateSet) ([]Commitment, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	var commitments []Commitment
	step := 0
	for len(candidates) > 0 {
		matched := solver.Optimize(candidates)
		if len(matched) == 0 {
			break
		}

		best := matched[0]
		for _, p := range matched[1:] {
			if p.Cost < best.Cost {
				best = p
			}
		}
		commitments = append(commitments, Commitment{Pairing: best, Step: step})
		step++

		candidates = removeVertex(candidates, best.Character, best.Task)
	}
	return commitments, nil
}

// removeVertex drops every pairing touching character or task, preserving
// relative order of what remains, in place.
func removeVertex(candidates assignment.CandidateSet, character, task int) assignment.CandidateSet {
	out := candidates[:0]
	for _, p := range candidates {
		if p.Character == character || p.Task == task {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortByStep returns commitments ordered by the round in which they were
// made; Run already produces them in that order, but callers that merge
// commitments from multiple Run invocations can use this to restore it.
func SortByStep(commitments []Commitment) []Commitment {
	sorted := append([]Commitment(nil), commitments...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Step < sorted[j].Step })
	return sorted
}
