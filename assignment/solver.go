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

import (
	"math"

	"github.com/rs/zerolog"
)

// tolerance is the additive equality tolerance used when comparing a
// matrix entry against the sum of its dual labels. It is calibrated to
// game-scale costs (seconds, meters) and is part of the observable
// contract: implementers substituting an integer cost domain may drop it.
const tolerance = 1e-4

// baselineEpsilon separates every real candidate's transformed value from
// the baseline "no candidate supplied" sentinel by more than ten times
// the matching tolerance, so a genuine zero-cost pairing can never collide
// with the no-candidate sentinel at the matching tolerance.
const baselineEpsilon = 10 * tolerance

// baselineValue is the matrix entry assigned to (x, y) pairs that were
// not present in the candidate set.
const baselineValue = 0.0

// AssignmentSolver computes an optimal minimum-cost matching over a
// candidate set via the Kuhn-Munkres (Hungarian) algorithm, then filters
// the candidate set down to the chosen pairings.
//
// A solver instance owns a dense value matrix and the label, slack and
// queue buffers the algorithm needs; Optimize grows these (never shrinks
// them) to fit the largest problem seen so far, so a long-lived solver
// reused across frames performs no per-call heap allocation once it has
// warmed up to its working set's size. This mirrors how the reference
// Hungarian implementation this package is grounded on holds its cost
// matrix and label arrays on a constructed struct across a single
// Execute call; here the struct additionally survives across calls.
type AssignmentSolver struct {
	logger *zerolog.Logger

	value [][]float64 // [x][y], capacity grows, logical size capN x capM
	capN  int
	capM  int

	lx, ly   []float64
	xy, yx   []int
	inS, inT []bool
	slack    []float64
	slackX   []int
	prevX    []int
	queue    []int
	emitted  []bool
}

// NewAssignmentSolver returns a solver with no pre-allocated capacity;
// buffers are sized lazily on the first Optimize call.
func NewAssignmentSolver() *AssignmentSolver {
	return &AssignmentSolver{}
}

// SetLogger attaches a diagnostic logger used only at Debug level to
// trace phase boundaries (chosen root, augmenting path, dual-update
// delta). With logger nil, or configured above Debug, tracing costs a
// single level check per phase and allocates nothing.
func (s *AssignmentSolver) SetLogger(logger *zerolog.Logger) {
	s.logger = logger
}

func (s *AssignmentSolver) debugEnabled() bool {
	return s.logger != nil && s.logger.GetLevel() <= zerolog.DebugLevel
}

// Optimize computes the minimum-cost matching over candidates and
// returns candidates filtered down, in place, to the selected pairings.
// Empty input returns empty output. For duplicate (character, task)
// pairs the matching is computed with the last copy's cost, and the first
// copy in input order is the one retained. NaN costs are
// caller error and produce unspecified (but non-panicking) results.
func (s *AssignmentSolver) Optimize(candidates []Pairing) []Pairing {
	if len(candidates) == 0 {
		return candidates[:0]
	}

	maxChar, maxTask := -1, -1
	cMax := 0.0
	for _, p := range candidates {
		if p.Character > maxChar {
			maxChar = p.Character
		}
		if p.Task > maxTask {
			maxTask = p.Task
		}
		if !math.IsInf(p.Cost, 0) && p.Cost > cMax {
			cMax = p.Cost
		}
	}
	nChar := maxChar + 1
	nTask := maxTask + 1

	swapped := !(nTask > nChar)
	n, m := nChar, nTask
	if swapped {
		n, m = nTask, nChar
	}

	s.ensureCapacity(n, m)
	s.resetValueMatrix(n, m)

	for _, p := range candidates {
		x, y := p.Character, p.Task
		if swapped {
			x, y = p.Task, p.Character
		}
		var v float64
		if math.IsInf(p.Cost, 1) {
			v = math.Inf(-1)
		} else {
			v = (cMax - p.Cost) + 1.0 + baselineEpsilon
		}
		s.value[x][y] = v
	}

	s.runKuhnMunkres(n, m)

	if s.debugEnabled() {
		s.logger.Debug().Int("n", n).Int("m", m).Bool("swapped", swapped).Msg("assignment solved")
	}

	if cap(s.emitted) < n {
		s.emitted = make([]bool, n)
	}
	emitted := s.emitted[:n]
	for i := range emitted {
		emitted[i] = false
	}

	out := candidates[:0]
	for _, p := range candidates {
		x, y := p.Character, p.Task
		if swapped {
			x, y = p.Task, p.Character
		}
		if s.xy[x] == y && !emitted[x] {
			emitted[x] = true
			out = append(out, p)
		}
	}
	return out
}

// ensureCapacity grows all buffers to at least n x m, preserving the
// "allocate once, reuse" contract: existing backing arrays are reused
// when they are already large enough.
func (s *AssignmentSolver) ensureCapacity(n, m int) {
	if n <= s.capN && m <= s.capM {
		return
	}
	if n > s.capN {
		s.capN = n
	}
	if m > s.capM {
		s.capM = m
	}

	s.value = make([][]float64, s.capN)
	for i := range s.value {
		s.value[i] = make([]float64, s.capM)
	}

	s.lx = make([]float64, s.capN)
	s.xy = make([]int, s.capN)
	s.inS = make([]bool, s.capN)
	s.prevX = make([]int, s.capM)
	s.queue = make([]int, 0, s.capN)

	s.ly = make([]float64, s.capM)
	s.yx = make([]int, s.capM)
	s.inT = make([]bool, s.capM)
	s.slack = make([]float64, s.capM)
	s.slackX = make([]int, s.capM)
}

func (s *AssignmentSolver) resetValueMatrix(n, m int) {
	for i := 0; i < n; i++ {
		row := s.value[i]
		for j := 0; j < m; j++ {
			row[j] = baselineValue
		}
	}
}

// runKuhnMunkres finds a maximum-weight perfect matching of X (size n)
// into Y (size m), n <= m, over s.value[0:n][0:m].
func (s *AssignmentSolver) runKuhnMunkres(n, m int) {
	for y := 0; y < m; y++ {
		s.ly[y] = 0
		s.yx[y] = -1
	}
	for x := 0; x < n; x++ {
		best := math.Inf(-1)
		for y := 0; y < m; y++ {
			if s.value[x][y] > best {
				best = s.value[x][y]
			}
		}
		s.lx[x] = best
		s.xy[x] = -1
	}

	matched := 0
	for matched < n {
		root := -1
		for x := 0; x < n; x++ {
			if s.xy[x] == -1 && (root == -1 || s.lx[x] > s.lx[root]) {
				root = x
			}
		}
		if root == -1 {
			// Defensive: the loop invariant matched < n guarantees an
			// unmatched x exists. Bail out rather than loop forever if
			// that invariant is ever violated.
			return
		}
		if s.debugEnabled() {
			s.logger.Debug().Int("root", root).Msg("phase root selected")
		}
		foundY := s.findAugmentingPath(root, n, m)
		if s.debugEnabled() {
			s.logger.Debug().Int("root", root).Int("y", foundY).Msg("augmenting path found")
		}
		s.augment(foundY)
		matched++
	}
}

// findAugmentingPath grows an alternating tree rooted at root until it
// reaches an unmatched y in the equality subgraph, applying dual updates
// whenever the BFS frontier is exhausted without success. It returns the
// unmatched y that completes the augmenting path.
func (s *AssignmentSolver) findAugmentingPath(root, n, m int) int {
	for x := 0; x < n; x++ {
		s.inS[x] = false
	}
	for y := 0; y < m; y++ {
		s.inT[y] = false
		s.slack[y] = s.lx[root] + s.ly[y] - s.value[root][y]
		s.slackX[y] = root
	}
	s.inS[root] = true

	queue := s.queue[:0]
	queue = append(queue, root)

	relax := func(x2 int) {
		for y := 0; y < m; y++ {
			if s.inT[y] {
				continue
			}
			cand := s.lx[x2] + s.ly[y] - s.value[x2][y]
			if cand < s.slack[y] {
				s.slack[y] = cand
				s.slackX[y] = x2
			}
		}
	}

	// addToTree adds y to T via the edge from x, and either reports an
	// augmenting path (y unmatched) or extends S with y's current
	// partner. Returns (foundY, ok).
	addToTree := func(x, y int) (int, bool) {
		s.inT[y] = true
		s.prevX[y] = x
		if s.yx[y] == -1 {
			return y, true
		}
		x2 := s.yx[y]
		s.inS[x2] = true
		queue = append(queue, x2)
		relax(x2)
		return -1, false
	}

	for {
		for len(queue) > 0 {
			x := queue[0]
			queue = queue[1:]
			for y := 0; y < m; y++ {
				if s.inT[y] {
					continue
				}
				if math.Abs(s.value[x][y]-(s.lx[x]+s.ly[y])) <= tolerance {
					if foundY, ok := addToTree(x, y); ok {
						return foundY
					}
				}
			}
		}

		delta := math.Inf(1)
		for y := 0; y < m; y++ {
			if !s.inT[y] && s.slack[y] < delta {
				delta = s.slack[y]
			}
		}
		if s.debugEnabled() {
			s.logger.Debug().Float64("delta", delta).Msg("dual update")
		}
		for x := 0; x < n; x++ {
			if s.inS[x] {
				s.lx[x] -= delta
			}
		}
		for y := 0; y < m; y++ {
			if s.inT[y] {
				s.ly[y] += delta
			} else {
				s.slack[y] -= delta
			}
		}
		for y := 0; y < m; y++ {
			if !s.inT[y] && s.slack[y] <= tolerance {
				if foundY, ok := addToTree(s.slackX[y], y); ok {
					return foundY
				}
			}
		}
	}
}

// augment flips the matching along the alternating path ending at y,
// walking back through s.prevX (the X predecessor recorded for each Y
// vertex as it entered T) until it reaches the phase's unmatched root.
func (s *AssignmentSolver) augment(y int) {
	for y != -1 {
		x := s.prevX[y]
		nextY := s.xy[x]
		s.xy[x] = y
		s.yx[y] = x
		y = nextY
	}
}
