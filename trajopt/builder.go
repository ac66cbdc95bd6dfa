package trajopt

import (
	"go.viam.com/trajopt/logging"
	"go.viam.com/trajopt/nlp"
)

// BuildProblem implements the Problem Builder (component G): it allocates the
// sample grid and dt variables (E), walks the path applying global, segment, and
// waypoint constraints through the dispatcher (D, which in turn drives B and C at
// the right sample indices), and seeds every variable with the interpolated initial
// guess (F). On success, problem has every variable, constraint, and the objective
// installed; the caller is responsible for calling problem.Solve and then reading
// back the trajectory with ExtractSolution.
func BuildProblem(problem nlp.Problem, path Path, logger logging.Logger) (*Variables, error) {
	v, err := allocateVariables(problem, path)
	if err != nil {
		return nil, err
	}
	logger.Debugw("allocated trajectory variables",
		"waypoints", len(path.Waypoints), "samples", v.Grid.sampleCount, "intervals", v.Grid.intervalCount)

	applyConstraintsAtSample(problem, v, path, 0, path.Waypoints[0].WaypointConstraints)

	for i := 1; i < len(path.Waypoints); i++ {
		wp := path.Waypoints[i]
		xs, ys, ts := v.XSegments[i], v.YSegments[i], v.ThetaSegments[i]

		for j := 0; j < len(xs)-1; j++ {
			applyConstraintsAtExprs(problem, path, xs[j], ys[j], ts[j], wp.SegmentConstraints)
		}
		last := len(xs) - 1
		applyConstraintsAtExprs(problem, path, xs[last], ys[last], ts[last], wp.WaypointConstraints)
	}

	guess := buildInitialGuess(path, v.Grid)
	applyInitialGuess(problem, v, guess)

	return v, nil
}

// applyConstraintsAtSample applies the path's global constraints followed by the
// given sample-local constraints at sample index k.
func applyConstraintsAtSample(problem nlp.Problem, v *Variables, path Path, k int, local []Constraint) {
	applyConstraintsAtExprs(problem, path, v.X[k], v.Y[k], v.Theta[k], local)
}

// applyConstraintsAtExprs applies the path's global constraints followed by local
// at the given (x, y, theta) sample. Global constraints are applied first, per the
// builder's path-then-local ordering.
func applyConstraintsAtExprs(problem nlp.Problem, path Path, x, y, theta nlp.Expr, local []Constraint) {
	for _, c := range path.GlobalConstraints {
		applyConstraint(problem, x, y, theta, path.Bumpers, c)
	}
	for _, c := range local {
		applyConstraint(problem, x, y, theta, path.Bumpers, c)
	}
}

// Solution is the result of reading back a solved problem's variables: plain
// numeric sequences parallel in shape to the Variables that were built.
type Solution struct {
	X, Y, Theta []float64
	Dt          []float64
}

// ExtractSolution reads back every pose and timestep variable from a solved
// problem. Precondition: problem.Solve has already succeeded.
func ExtractSolution(problem nlp.Problem, v *Variables) Solution {
	s := Solution{
		X:     make([]float64, len(v.X)),
		Y:     make([]float64, len(v.Y)),
		Theta: make([]float64, len(v.Theta)),
		Dt:    make([]float64, len(v.Dt)),
	}
	for k := range v.X {
		s.X[k] = problem.SolutionValue(v.X[k])
		s.Y[k] = problem.SolutionValue(v.Y[k])
		s.Theta[k] = problem.SolutionValue(v.Theta[k])
	}
	for k := range v.Dt {
		s.Dt[k] = problem.SolutionValue(v.Dt[k])
	}
	return s
}
