package trajopt

import (
	"math"

	"github.com/golang/geo/r2"

	"go.viam.com/trajopt/nlp"
)

// exprPoint is a symbolic (or constant) 2D point: a pair of Expr components.
type exprPoint struct {
	X, Y nlp.Expr
}

func constPoint(p r2.Point) exprPoint {
	return exprPoint{nlp.Const(p.X), nlp.Const(p.Y)}
}

func localDistSq(a, b r2.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// bumperCornerWorld computes the world-frame position of a bumper corner given in
// the robot frame, at a symbolic pose (x, y, theta). A corner at the origin just
// rides along with the robot's position; otherwise it's rotated by theta about the
// robot's origin and added to (x, y).
func bumperCornerWorld(x, y, theta nlp.Expr, corner r2.Point) exprPoint {
	if corner.X == 0 && corner.Y == 0 {
		return exprPoint{x, y}
	}
	r := math.Hypot(corner.X, corner.Y)
	phi := math.Atan2(corner.Y, corner.X)
	angle := theta.AddC(phi)
	return exprPoint{
		X: x.Add(angle.Cos().MulC(r)),
		Y: y.Add(angle.Sin().MulC(r)),
	}
}

// segPointDistSq returns the unclamped line-point squared distance between segment
// (a, b) and point p, per the Polygon Collision Encoder: the projection parameter t
// is never truncated to [0, 1]. llConst is the precomputed, rotation-invariant
// squared length of (b - a); dividing by it is always dividing by a known constant,
// never a symbolic one, since every edge here is either a rigid bumper edge (whose
// length is invariant to the robot's heading) or a static obstacle edge.
func segPointDistSq(a, b, p exprPoint, llConst float64) nlp.Expr {
	lx := b.X.Sub(a.X)
	ly := b.Y.Sub(a.Y)
	vx := p.X.Sub(a.X)
	vy := p.Y.Sub(a.Y)

	var t nlp.Expr
	if llConst == 0 {
		t = nlp.Const(0)
	} else {
		vl := vx.Mul(lx).Add(vy.Mul(ly))
		t = vl.MulC(1 / llConst)
	}

	footX := a.X.Add(t.Mul(lx))
	footY := a.Y.Add(t.Mul(ly))
	dx := footX.Sub(p.X)
	dy := footY.Sub(p.Y)
	return dx.Mul(dx).Add(dy.Mul(dy))
}

// applyObstacleConstraint implements the Polygon Collision Encoder: it emits
// minimum-distance constraints between the robot's bumpers at a symbolic pose and
// one obstacle. d is the sum of both polygons' safety distances; D = d^2 is the
// squared clearance every sweep enforces (the source's dimensional bug of comparing
// the second sweep against d rather than d^2 is treated as a bug here, per the
// open question in the design notes, and is not preserved).
func applyObstacleConstraint(problem nlp.Problem, x, y, theta nlp.Expr, bumpers Polygon, obstacle Obstacle) {
	d := bumpers.SafetyDistance + obstacle.SafetyDistance
	bigD := d * d

	if len(bumpers.Points) == 1 && len(obstacle.Points) == 1 {
		bWorld := bumperCornerWorld(x, y, theta, bumpers.Points[0])
		oPoint := obstacle.Points[0]
		dx := nlp.Const(oPoint.X).Sub(bWorld.X)
		dy := nlp.Const(oPoint.Y).Sub(bWorld.Y)
		distSq := dx.Mul(dx).Add(dy.Mul(dy))
		problem.SubjectTo(distSq.GEC(bigD))
		return
	}

	for e := 0; e < bumpers.NumEdges(); e++ {
		ca, cb := bumpers.Edge(e)
		aWorld := bumperCornerWorld(x, y, theta, ca)
		bWorld := bumperCornerWorld(x, y, theta, cb)
		llConst := localDistSq(ca, cb)
		for _, op := range obstacle.Points {
			distSq := segPointDistSq(aWorld, bWorld, constPoint(op), llConst)
			problem.SubjectTo(distSq.GEC(bigD))
		}
	}

	for e := 0; e < obstacle.NumEdges(); e++ {
		oa, ob := obstacle.Edge(e)
		aPt := constPoint(oa)
		bPt := constPoint(ob)
		llConst := localDistSq(oa, ob)
		for _, bc := range bumpers.Points {
			cWorld := bumperCornerWorld(x, y, theta, bc)
			distSq := segPointDistSq(aPt, bPt, cWorld, llConst)
			problem.SubjectTo(distSq.GEC(bigD))
		}
	}
}
