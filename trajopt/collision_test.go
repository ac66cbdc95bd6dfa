package trajopt

import (
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"

	"go.viam.com/trajopt/nlp"
)

// Scenario 4: point bumper vs point obstacle emits exactly one constraint.
func TestApplyObstacleConstraintPointPoint(t *testing.T) {
	p := nlp.NewRecordingProblem()
	x := p.Variable()
	y := p.Variable()
	theta := p.Variable()

	bumpers := Polygon{SafetyDistance: 0.2, Points: []r2.Point{{X: 0, Y: 0}}}
	obstacle := Obstacle{SafetyDistance: 0.3, Points: []r2.Point{{X: 1, Y: 0}}}

	applyObstacleConstraint(p, x, y, theta, bumpers, obstacle)

	test.That(t, len(p.Constraints), test.ShouldEqual, 1)
	c := p.Constraints[0]
	test.That(t, c.Op, test.ShouldEqual, nlp.OpGE)
	// at x=y=theta=0: (1-0)^2 + (0-0)^2 >= 0.25
	got := c.LHS.Eval([]float64{0, 0, 0})
	test.That(t, got, test.ShouldAlmostEqual, 1.0)
	test.That(t, c.RHS.Eval(nil), test.ShouldAlmostEqual, 0.25)
}

// Scenario 5: triangle bumper vs square obstacle emits
// 3 edges * 4 corners + 4 edges * 3 corners = 24 constraints.
func TestApplyObstacleConstraintPolygonPolygon(t *testing.T) {
	p := nlp.NewRecordingProblem()
	x := p.Variable()
	y := p.Variable()
	theta := p.Variable()

	bumpers := Polygon{Points: []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}}
	obstacle := Obstacle{Points: []r2.Point{
		{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6},
	}}

	applyObstacleConstraint(p, x, y, theta, bumpers, obstacle)

	test.That(t, len(p.Constraints), test.ShouldEqual, 24)
}

func TestBumperCornerWorldOrigin(t *testing.T) {
	p := nlp.NewRecordingProblem()
	x := p.Variable()
	y := p.Variable()
	theta := p.Variable()

	corner := bumperCornerWorld(x, y, theta, r2.Point{X: 0, Y: 0})
	test.That(t, corner.X.Eval([]float64{3, 4, 0}), test.ShouldEqual, 3.0)
	test.That(t, corner.Y.Eval([]float64{3, 4, 0}), test.ShouldEqual, 4.0)
}

func TestBumperCornerWorldRotation(t *testing.T) {
	p := nlp.NewRecordingProblem()
	x := p.Variable()
	y := p.Variable()
	theta := p.Variable()

	// a corner at (1, 0) rotated by pi/2 lands at (0, 1), relative to the
	// robot's world position.
	corner := bumperCornerWorld(x, y, theta, r2.Point{X: 1, Y: 0})
	values := []float64{0, 0, 1.5707963267948966}
	test.That(t, corner.X.Eval(values), test.ShouldAlmostEqual, 0.0)
	test.That(t, corner.Y.Eval(values), test.ShouldAlmostEqual, 1.0)
}

func TestSegPointDistSqUnclamped(t *testing.T) {
	a := exprPoint{nlp.Const(0), nlp.Const(0)}
	b := exprPoint{nlp.Const(1), nlp.Const(0)}
	p := exprPoint{nlp.Const(2), nlp.Const(1)} // beyond b, off the segment

	distSq := segPointDistSq(a, b, p, localDistSq(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}))
	// unclamped: foot = (2, 0), distSq = 1, NOT the clamped segment distance
	// (which would project onto b and give distSq = 2).
	test.That(t, distSq.Eval(nil), test.ShouldAlmostEqual, 1.0)
}
