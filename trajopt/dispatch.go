package trajopt

import "go.viam.com/trajopt/nlp"

// applyConstraint is the Constraint Dispatcher: it routes a tagged Constraint to the
// set encoder or the collision encoder depending on its kind, at the given sample's
// (x, y, theta) variables.
func applyConstraint(problem nlp.Problem, x, y, theta nlp.Expr, bumpers Polygon, c Constraint) {
	switch c.Kind {
	case TranslationConstraintKind:
		apply2D(problem, x, y, c.Translation)
	case HeadingConstraintKind:
		apply1D(problem, theta, c.Heading)
	case PoseConstraintKind:
		apply2D(problem, x, y, c.Translation)
		apply1D(problem, theta, c.Heading)
	case ObstacleConstraintKind:
		applyObstacleConstraint(problem, x, y, theta, bumpers, c.Obstacle)
	}
}
