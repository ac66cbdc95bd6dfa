package trajopt

import (
	"testing"

	"go.viam.com/test"
)

func TestLinspace(t *testing.T) {
	out := make([]float64, 4)
	linspace(out, 0, 4, 0, 4)
	test.That(t, out, test.ShouldResemble, []float64{1, 2, 3, 4})
}

func TestLinspaceNoop(t *testing.T) {
	out := []float64{9, 9}
	linspace(out, 1, 1, 0, 100)
	test.That(t, out, test.ShouldResemble, []float64{9, 9})
}

// Scenario 6: two waypoints, one guess point each, N1 = 4. The interpolation
// law says the first (and, with one guess point, only) sub-segment runs from the
// previous waypoint's last guess point straight through to this waypoint's own
// sample, landing exactly on it.
func TestBuildInitialGuessScenario6(t *testing.T) {
	path := Path{
		Waypoints: []Waypoint{
			{InitialGuessPoints: []InitialGuessPoint{{X: 0, Y: 0, Heading: 0}}},
			{
				ControlIntervalCount: 4,
				InitialGuessPoints:   []InitialGuessPoint{{X: 4, Y: 0, Heading: 0}},
			},
		},
	}
	grid, err := buildSampleGrid(path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, grid.sampleCount, test.ShouldEqual, 5)

	g := buildInitialGuess(path, grid)
	test.That(t, g.X, test.ShouldResemble, []float64{0, 1, 2, 3, 4})
	test.That(t, g.Y, test.ShouldResemble, []float64{0, 0, 0, 0, 0})
}

// Interpolation law: for a segment with one guess point, previous-guess P0,
// and current-guess P1, each of the N samples is P0 + (k+1)/N * (P1-P0).
func TestInterpolationLawSingleGuessPoint(t *testing.T) {
	path := Path{
		Waypoints: []Waypoint{
			{InitialGuessPoints: []InitialGuessPoint{{X: 10, Y: 20, Heading: 0}}},
			{
				ControlIntervalCount: 3,
				InitialGuessPoints:   []InitialGuessPoint{{X: 13, Y: 23, Heading: 0}},
			},
		},
	}
	grid, err := buildSampleGrid(path)
	test.That(t, err, test.ShouldBeNil)
	g := buildInitialGuess(path, grid)

	n := 3.0
	p0x, p1x := 10.0, 13.0
	want := []float64{p0x, p0x + (1.0/n)*(p1x-p0x), p0x + (2.0/n)*(p1x-p0x), p0x + (3.0/n)*(p1x-p0x)}
	test.That(t, g.X, test.ShouldResemble, want)
}

func TestBuildInitialGuessMultipleGuessPoints(t *testing.T) {
	path := Path{
		Waypoints: []Waypoint{
			{InitialGuessPoints: []InitialGuessPoint{{X: 0, Y: 0}}},
			{
				ControlIntervalCount: 6,
				InitialGuessPoints: []InitialGuessPoint{
					{X: 2, Y: 0}, {X: 4, Y: 1}, {X: 6, Y: 0},
				},
			},
		},
	}
	grid, err := buildSampleGrid(path)
	test.That(t, err, test.ShouldBeNil)
	g := buildInitialGuess(path, grid)

	test.That(t, len(g.X), test.ShouldEqual, grid.sampleCount)
	test.That(t, g.X[len(g.X)-1], test.ShouldAlmostEqual, 6.0)
}
