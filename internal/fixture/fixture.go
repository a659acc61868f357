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

// Package fixture builds synthetic bipartite candidate sets for tests.
// The colonytick demo does not use it. The cost values are staged through a
// real dense matrix type instead of a hand-rolled [][]float64, so callers
// that want to inspect or mutate the raw cost grid before flattening it
// into a candidate set have an actual matrix API to do it with.
package fixture

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvlath/matrix"

	"github.com/mafik/colonyassign/assignment"
)

// ErrEmptyDimensions is returned when a generator is asked for zero
// characters or zero tasks; there is no meaningful candidate set to build.
var ErrEmptyDimensions = errors.New("fixture: characters and tasks must both be > 0")

// ErrInvalidDensity is returned when a requested edge density falls
// outside [0, 1].
var ErrInvalidDensity = errors.New("fixture: density must be within [0, 1]")

// DenseGrid builds a characters x tasks cost matrix from a deterministic
// seed and exposes it both as the raw matrix.Dense and as an
// assignment.CandidateSet flattened from every cell.
type DenseGrid struct {
	costs *matrix.Dense

	characters int
	tasks      int
}

// NewDenseGrid allocates a characters x tasks matrix, fills every cell with
// a uniform random cost in [0, maxCost) drawn from rng, and returns the
// grid wrapping it.
func NewDenseGrid(characters, tasks int, maxCost float64, rng *rand.Rand) (*DenseGrid, error) {
	if characters <= 0 || tasks <= 0 {
		return nil, ErrEmptyDimensions
	}
	d, err := matrix.NewDense(characters, tasks)
	if err != nil {
		return nil, err
	}
	for i := 0; i < characters; i++ {
		for j := 0; j < tasks; j++ {
			// Set only fails on an out-of-bounds index, which cannot happen
			// here: i and j are always within the matrix just allocated.
			_ = d.Set(i, j, rng.Float64()*maxCost)
		}
	}
	return &DenseGrid{costs: d, characters: characters, tasks: tasks}, nil
}

// At returns the cost for (character, task), or an error if either index
// is out of range.
func (g *DenseGrid) At(character, task int) (float64, error) {
	return g.costs.At(character, task)
}

// Set overwrites the cost for (character, task), e.g. to plant an
// infeasible pairing or a known-optimal structure before flattening.
func (g *DenseGrid) Set(character, task int, cost float64) error {
	return g.costs.Set(character, task, cost)
}

// Candidates flattens the grid into a candidate set in row-major order.
func (g *DenseGrid) Candidates() assignment.CandidateSet {
	out := make([]assignment.Pairing, 0, g.characters*g.tasks)
	for i := 0; i < g.characters; i++ {
		for j := 0; j < g.tasks; j++ {
			cost, _ := g.costs.At(i, j)
			out = append(out, assignment.Pairing{Character: i, Task: j, Cost: cost})
		}
	}
	return out
}

// SparseCandidates generates a candidate set over characters x tasks
// vertices where each possible pairing is independently included with
// probability density, cost drawn uniformly from [0, maxCost). A density
// of 1.0 reproduces a complete bipartite graph.
func SparseCandidates(characters, tasks int, density, maxCost float64, rng *rand.Rand) (assignment.CandidateSet, error) {
	if characters <= 0 || tasks <= 0 {
		return nil, ErrEmptyDimensions
	}
	if density < 0 || density > 1 {
		return nil, ErrInvalidDensity
	}
	var out []assignment.Pairing
	for ch := 0; ch < characters; ch++ {
		for t := 0; t < tasks; t++ {
			if rng.Float64() >= density {
				continue
			}
			out = append(out, assignment.Pairing{
				Character: ch,
				Task:      t,
				Cost:      rng.Float64() * maxCost,
			})
		}
	}
	return out, nil
}

// WithInfeasiblePairs marks count distinct, randomly chosen pairings from
// candidates as infeasible (cost +Inf), mutating in place. It is a no-op
// once every pairing has been marked.
func WithInfeasiblePairs(candidates assignment.CandidateSet, count int, rng *rand.Rand) {
	n := len(candidates)
	if n == 0 || count <= 0 {
		return
	}
	if count > n {
		count = n
	}
	perm := rng.Perm(n)
	for i := 0; i < count; i++ {
		candidates[perm[i]].Cost = math.Inf(1)
	}
}
