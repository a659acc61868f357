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

package assignment

import "sort"

// LimitAssignments reduces candidates to at most perCharacterCap entries
// per character and perTaskCap entries per task, keeping the cheapest.
// It is optional: AssignmentSolver.Optimize remains correct on an
// unfiltered candidate set, but pruning bounds the size of the matrix the
// solver must build.
//
// Candidates are sorted ascending by cost, ties broken by character then
// task ID for determinism. Per-character and per-task counters are
// walked against the sorted order; a pairing is retained only while both
// its character's and its task's counters are below their caps.
//
// The result may be infeasible (no perfect matching on the reduced
// graph); AssignmentSolver tolerates that by leaving the corresponding
// characters or tasks unmatched. Output order is unspecified.
func LimitAssignments(candidates []Pairing, perCharacterCap, perTaskCap int) []Pairing {
	if len(candidates) == 0 {
		return candidates
	}

	sorted := make([]Pairing, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Cost != sorted[j].Cost {
			return sorted[i].Cost < sorted[j].Cost
		}
		if sorted[i].Character != sorted[j].Character {
			return sorted[i].Character < sorted[j].Character
		}
		return sorted[i].Task < sorted[j].Task
	})

	charCount := make(map[int]int)
	taskCount := make(map[int]int)

	kept := sorted[:0]
	for _, p := range sorted {
		if charCount[p.Character] >= perCharacterCap {
			continue
		}
		if taskCount[p.Task] >= perTaskCap {
			continue
		}
		charCount[p.Character]++
		taskCount[p.Task]++
		kept = append(kept, p)
	}
	return kept
}
