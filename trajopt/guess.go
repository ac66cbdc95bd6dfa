package trajopt

import "go.viam.com/trajopt/nlp"

// linspace fills out[startIdx:endIdx] with n = endIdx-startIdx samples
// interpolating from v0 to v1, using the (k+1)/n weighting that lands the last
// sample (k = n-1) exactly on v1: out[startIdx+k] = v0 + (k+1)/n*(v1-v0). v0
// itself is never written here — it is either the previous waypoint's own
// sample (already set directly) or the last sample written by the prior
// sub-segment's call.
func linspace(out []float64, startIdx, endIdx int, v0, v1 float64) {
	n := endIdx - startIdx
	if n <= 0 {
		return
	}
	step := (v1 - v0) / float64(n)
	for k := 0; k < n; k++ {
		out[startIdx+k] = v0 + float64(k+1)*step
	}
}

// initialGuess holds the S-length piecewise-linear interpolation of a path's guess
// points, one vector per pose component.
type initialGuess struct {
	X, Y, Theta []float64
}

// buildInitialGuess implements the Initial Guess Generator (component F): it seeds
// sample 0 from waypoint 0's first guess point, then for every later waypoint
// interpolates through that waypoint's guess-point skeleton one sub-segment at a
// time, always ending exactly on the waypoint's own sample.
func buildInitialGuess(path Path, grid sampleGrid) initialGuess {
	g := initialGuess{
		X:     make([]float64, grid.sampleCount),
		Y:     make([]float64, grid.sampleCount),
		Theta: make([]float64, grid.sampleCount),
	}

	wp0First := path.Waypoints[0].InitialGuessPoints[0]
	g.X[0] = wp0First.X
	g.Y[0] = wp0First.Y
	g.Theta[0] = wp0First.Heading

	prevLast := wp0First
	idx := 1
	for i := 1; i < len(path.Waypoints); i++ {
		wp := path.Waypoints[i]
		n := wp.ControlIntervalCount
		guess := wp.InitialGuessPoints
		numGuess := len(guess)
		q := n / numGuess
		segmentStart := idx
		segmentEnd := segmentStart + n

		first := guess[0]
		linspace(g.X, idx, idx+q, prevLast.X, first.X)
		linspace(g.Y, idx, idx+q, prevLast.Y, first.Y)
		linspace(g.Theta, idx, idx+q, prevLast.Heading, first.Heading)
		idx += q

		if numGuess >= 3 {
			for j := 1; j <= numGuess-2; j++ {
				from, to := guess[j-1], guess[j]
				linspace(g.X, idx, idx+q, from.X, to.X)
				linspace(g.Y, idx, idx+q, from.Y, to.Y)
				linspace(g.Theta, idx, idx+q, from.Heading, to.Heading)
				idx += q
			}
		}

		if numGuess >= 2 {
			from, to := guess[numGuess-2], guess[numGuess-1]
			linspace(g.X, idx, segmentEnd, from.X, to.X)
			linspace(g.Y, idx, segmentEnd, from.Y, to.Y)
			linspace(g.Theta, idx, segmentEnd, from.Heading, to.Heading)
		}
		idx = segmentEnd

		prevLast = guess[numGuess-1]
	}
	return g
}

// applyInitialGuess implements component F's apply step: seed every decision
// variable with the interpolated guess at its sample.
func applyInitialGuess(problem nlp.Problem, v *Variables, g initialGuess) {
	for k := 0; k < v.Grid.sampleCount; k++ {
		problem.SetInitial(v.X[k], g.X[k])
		problem.SetInitial(v.Y[k], g.Y[k])
		problem.SetInitial(v.Theta[k], g.Theta[k])
	}
}
