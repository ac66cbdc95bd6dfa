// Package trajopt builds a time-optimal NLP for a wheeled mobile robot following a
// piecewise path, and hands it to an nlp.Problem for an external solver to optimize.
// The hard engineering lives here: allocating the sample grid, translating the
// constraint algebra into scalar inequalities, formulating bumper/obstacle collision
// avoidance, and seeding every variable with a geometrically reasonable guess.
package trajopt

import "github.com/golang/geo/r2"

// InitialGuessPoint is one (x, y, heading) sample of a waypoint's guess skeleton.
type InitialGuessPoint struct {
	X       float64
	Y       float64
	Heading float64
}

// Waypoint is a point the trajectory must pass through, carrying the constraints
// that apply only at its own sample and the constraints that apply along the
// segment leading up to it.
type Waypoint struct {
	// ControlIntervalCount is the number of control intervals (N) in the segment
	// ending at this waypoint. Must be >= 1. Unused for waypoint 0.
	ControlIntervalCount int

	// InitialGuessPoints is the ordered (x, y, heading) skeleton piecewise-linear
	// interpolation fills in between. Must have at least one point.
	InitialGuessPoints []InitialGuessPoint

	// WaypointConstraints apply at exactly the one sample this waypoint owns.
	WaypointConstraints []Constraint

	// SegmentConstraints apply at every interior (non-terminal) sample of the
	// segment leading up to this waypoint.
	SegmentConstraints []Constraint
}

// Path is an ordered sequence of waypoints sharing a bumper geometry and a set of
// constraints that apply at every sample.
type Path struct {
	Waypoints []Waypoint

	// Bumpers is the robot's convex bumper polygon in the robot frame.
	Bumpers Polygon

	// GlobalConstraints apply at every sample of the trajectory.
	GlobalConstraints []Constraint
}

// Polygon is a convex shape used both as the robot's bumpers (robot frame) and as an
// obstacle (world frame). A single point is a point obstacle, two points are a line
// segment, and three or more close into a polygon (with an edge from the last point
// back to the first).
type Polygon struct {
	// SafetyDistance is additional Euclidean padding added to any clearance
	// constraint this polygon participates in.
	SafetyDistance float64

	// Points are the ordered corners, in the polygon's own frame.
	Points []r2.Point
}

// Obstacle is a Polygon placed in the world that the trajectory must avoid.
type Obstacle = Polygon

// NumEdges returns the number of edges Points forms: 0 for a single point, 1 for a
// segment, and len(Points) for a closed polygon of 3 or more corners.
func (p Polygon) NumEdges() int {
	switch len(p.Points) {
	case 0, 1:
		return 0
	case 2:
		return 1
	default:
		return len(p.Points)
	}
}

// Edge returns the i-th edge as a (from, to) pair. For 3+ corners, edge
// len(Points)-1 is the closing edge back to Points[0].
func (p Polygon) Edge(i int) (r2.Point, r2.Point) {
	if len(p.Points) < 3 {
		return p.Points[i], p.Points[i+1]
	}
	return p.Points[i], p.Points[(i+1)%len(p.Points)]
}
