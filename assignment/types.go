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

// Package assignment implements the generalized assignment problem for
// colony-simulation AI: given a bipartite set of candidate
// character-to-task pairings, each with a scalar cost, find the subset
// that forms a minimum-cost matching.
package assignment

// Pairing is a single candidate character-to-task assignment. Character
// and Task are dense, non-negative integer identifiers; the caller owns
// mapping external keys (strings, pointers) to and from these indices.
// Cost is finite and non-negative, or +Inf to mark the pairing as never
// selectable.
type Pairing struct {
	Character int
	Task      int
	Cost      float64
}

// CandidateSet is an ordered list of candidate pairings. Order on input
// does not affect correctness. AssignmentSolver.Optimize mutates a
// CandidateSet in place and returns the retained slice; callers must not
// rely on the order of survivors.
type CandidateSet = []Pairing
