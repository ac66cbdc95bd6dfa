package trajopt

import (
	"math"

	"go.viam.com/trajopt/nlp"
	"go.viam.com/trajopt/utils"
)

// apply1D implements the Set Constraint Encoder's 1D half: an exact interval emits
// one equality, otherwise each bounded side emits its own inequality.
func apply1D(problem nlp.Problem, s nlp.Expr, interval IntervalSet1d) {
	if interval.IsExact() {
		problem.SubjectTo(s.EqC(interval.Lower))
		return
	}
	if interval.IsLowerBounded() {
		problem.SubjectTo(s.GEC(interval.Lower))
	}
	if interval.IsUpperBounded() {
		problem.SubjectTo(s.LEC(interval.Upper))
	}
}

// apply2D implements the Set Constraint Encoder's 2D half, dispatching on the
// Set2d's kind.
func apply2D(problem nlp.Problem, sx, sy nlp.Expr, set Set2d) {
	switch set.Kind {
	case RectangularSet:
		apply1D(problem, sx, set.XBound)
		apply1D(problem, sy, set.YBound)

	case LinearSet:
		// sx*sin(theta) == sy*cos(theta): (sx, sy) lies on the line through the
		// origin at angle theta. theta is a known double here, so sin/cos fold
		// into plain constants.
		lhs := sx.MulC(math.Sin(set.Angle))
		rhs := sy.MulC(math.Cos(set.Angle))
		problem.SubjectTo(lhs.Eq(rhs))

	case EllipticalSet:
		l := sx.Mul(sx).MulC(1 / utils.Square(set.XRadius)).Add(sy.Mul(sy).MulC(1 / utils.Square(set.YRadius)))
		switch set.Direction {
		case Inside:
			problem.SubjectTo(l.LEC(1))
		case Centered:
			problem.SubjectTo(l.EqC(1))
		case Outside:
			problem.SubjectTo(l.GEC(1))
		}

	case ConeSet:
		u := set.Bearing.Upper
		l := set.Bearing.Lower
		// sx*sin(u) >= sy*cos(u) and sx*sin(l) <= sy*cos(l) confine bearing(sx,sy)
		// to [l, u].
		problem.SubjectTo(sx.MulC(math.Sin(u)).GE(sy.MulC(math.Cos(u))))
		problem.SubjectTo(sx.MulC(math.Sin(l)).LE(sy.MulC(math.Cos(l))))
	}
}
