package assignment_test

import (
	"math"

	"github.com/mafik/colonyassign/assignment"

	. "gopkg.in/check.v1"
)

func (*S) TestComputeCostRoundTrip(c *C) {
	c.Assert(assignment.ComputeCost(3, 4, 0, 1), Equals, 7.0)
	c.Assert(assignment.ComputeCost(3, 4, 0.5, 1), Equals, 14.0)
	c.Assert(assignment.ComputeCost(3, 4, 1.0, 1), Equals, math.Inf(1))
	c.Assert(assignment.ComputeCost(3, 4, 0, 0), Equals, math.Inf(1))
	c.Assert(assignment.ComputeCost(3, 4, 0, -1), Equals, math.Inf(1))
}

func (*S) TestComputeCostDefaults(c *C) {
	// Omitted factors default to {0, 0, 0, 1}: no travel, no work, no
	// retry risk, unit priority.
	c.Assert(assignment.ComputeCost(0, 0, 0, 1), Equals, 0.0)
}

func (*S) TestComputeCostPriorityHalvesCost(c *C) {
	base := assignment.ComputeCost(10, 0, 0, 1)
	doublePriority := assignment.ComputeCost(10, 0, 0, 2)
	c.Assert(doublePriority, Equals, base/2)
}

func (*S) TestCostKernelZeroValueMatchesComputeCost(c *C) {
	var k assignment.CostKernel
	c.Assert(k.Compute(3, 4, 0.5, 1), Equals, assignment.ComputeCost(3, 4, 0.5, 1))
}

func (*S) TestCostKernelTravelScale(c *C) {
	k := assignment.CostKernel{TravelScale: 2}
	c.Assert(k.Compute(3, 0, 0, 1), Equals, 6.0)
}
