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

import "math"

// ComputeCost folds travel time, work time, retry risk and task priority
// into the single scalar cost consumed by the solver.
//
// cost = (travelTime + workTime) / ((1 - retryRisk) * priority)
//
// Dividing by (1 - retryRisk) is the expected number of attempts under
// geometric retry; dividing by priority makes higher-priority tasks
// cheaper, and thus preferred. retryRisk >= 1 or priority <= 0 makes the
// pairing infeasible and returns +Inf; no error is raised.
func ComputeCost(travelTime, workTime, retryRisk, priority float64) float64 {
	if retryRisk >= 1 || priority <= 0 {
		return math.Inf(1)
	}
	return (travelTime + workTime) / ((1 - retryRisk) * priority)
}

// CostKernel holds per-run overrides for ComputeCost. Its zero value
// reproduces ComputeCost's own defaults (travelTime=0, workTime=0,
// retryRisk=0, priority=1); TravelScale lets a caller cheaply bias every
// pairing's travel component (e.g. to convert canvas pixels to seconds)
// without recomputing travel times upstream.
type CostKernel struct {
	// TravelScale multiplies travelTime before it enters the formula.
	// Zero is treated as 1 (no scaling), matching the "omitted factor
	// keeps its natural default" rule used for the other three inputs.
	TravelScale float64
}

// Compute applies the kernel's overrides and then ComputeCost's formula.
func (k CostKernel) Compute(travelTime, workTime, retryRisk, priority float64) float64 {
	scale := k.TravelScale
	if scale == 0 {
		scale = 1
	}
	return ComputeCost(travelTime*scale, workTime, retryRisk, priority)
}
