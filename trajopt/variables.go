package trajopt

import (
	"go.viam.com/trajopt/nlp"
)

// defaultSegmentTimeGuess seeds each dt_segment with ~5 seconds of total segment
// time, split evenly across its control intervals.
const defaultSegmentTimeGuess = 5.0

// sampleGrid describes how waypoints and segments map onto the flat sample grid
// described in the data model: S = K + 1 samples, with waypoint i occupying sample
// waypointSample[i].
type sampleGrid struct {
	waypointSample []int // len W; waypointSample[0] == 0
	sampleCount    int   // S
	intervalCount  int   // K
}

func buildSampleGrid(path Path) (sampleGrid, error) {
	if len(path.Waypoints) < 2 {
		return sampleGrid{}, newEmptyPathError()
	}
	waypointSample := make([]int, len(path.Waypoints))
	total := 0
	for i, wp := range path.Waypoints {
		if i == 0 {
			continue
		}
		if wp.ControlIntervalCount < 1 {
			return sampleGrid{}, newZeroControlIntervalError(i)
		}
		if len(wp.InitialGuessPoints) < 1 {
			return sampleGrid{}, newMissingGuessPointsError(i)
		}
		total += wp.ControlIntervalCount
		waypointSample[i] = total
	}
	if len(path.Waypoints[0].InitialGuessPoints) < 1 {
		return sampleGrid{}, newMissingGuessPointsError(0)
	}
	return sampleGrid{
		waypointSample: waypointSample,
		sampleCount:    total + 1,
		intervalCount:  total,
	}, nil
}

// Variables is the fully-allocated decision-variable layout for one problem: poses
// at every sample, the replicated per-segment timestep, and segment-sliced views of
// each, per the Variable Layout + Segmentation component.
type Variables struct {
	Grid sampleGrid

	X, Y, Theta []nlp.Expr // length S
	Dt          []nlp.Expr // length K; entries within a segment alias the same Expr

	// XSegments[0]/YSegments[0]/ThetaSegments[0] hold only the first sample.
	// For i in [1, W-1], XSegments[i] etc. are the length-N_i slice covering that
	// segment's samples (inclusive of the waypoint sample); DtSegments[i] is the
	// analogous slice of Dt, all aliasing the same dt_segment[i] variable.
	XSegments, YSegments, ThetaSegments, DtSegments [][]nlp.Expr
}

// allocateVariables implements component E: it reserves x/y/theta/dt, enforces
// nonnegative timesteps, seeds dt with a segment-time heuristic, and installs the
// time-minimizing objective.
func allocateVariables(problem nlp.Problem, path Path) (*Variables, error) {
	grid, err := buildSampleGrid(path)
	if err != nil {
		return nil, err
	}

	v := &Variables{
		Grid:          grid,
		X:             make([]nlp.Expr, grid.sampleCount),
		Y:             make([]nlp.Expr, grid.sampleCount),
		Theta:         make([]nlp.Expr, grid.sampleCount),
		Dt:            make([]nlp.Expr, grid.intervalCount),
		XSegments:     make([][]nlp.Expr, len(path.Waypoints)),
		YSegments:     make([][]nlp.Expr, len(path.Waypoints)),
		ThetaSegments: make([][]nlp.Expr, len(path.Waypoints)),
		DtSegments:    make([][]nlp.Expr, len(path.Waypoints)),
	}
	for i := range v.X {
		v.X[i] = problem.Variable()
		v.Y[i] = problem.Variable()
		v.Theta[i] = problem.Variable()
	}

	var objective nlp.Expr
	haveObjective := false
	dtCursor := 0
	for i := 1; i < len(path.Waypoints); i++ {
		n := path.Waypoints[i].ControlIntervalCount
		dtSegment := problem.Variable()
		problem.SubjectTo(dtSegment.GEC(0))
		problem.SetInitial(dtSegment, defaultSegmentTimeGuess/float64(n))

		intervalStart := dtCursor
		for j := 0; j < n; j++ {
			v.Dt[dtCursor] = dtSegment
			dtCursor++
		}

		term := dtSegment.MulC(float64(n))
		if haveObjective {
			objective = objective.Add(term)
		} else {
			objective = term
			haveObjective = true
		}

		prevSample := 0
		if i > 1 {
			prevSample = grid.waypointSample[i-1]
		}
		sample := grid.waypointSample[i]
		v.XSegments[i] = v.X[prevSample+1 : sample+1]
		v.YSegments[i] = v.Y[prevSample+1 : sample+1]
		v.ThetaSegments[i] = v.Theta[prevSample+1 : sample+1]
		v.DtSegments[i] = v.Dt[intervalStart : intervalStart+n]
	}
	v.XSegments[0] = v.X[0:1]
	v.YSegments[0] = v.Y[0:1]
	v.ThetaSegments[0] = v.Theta[0:1]

	problem.Minimize(objective)
	return v, nil
}
