package nlp

import "context"

// RecordingProblem is an in-memory Problem that never touches an external solver. It
// records every variable, constraint, initial guess, and objective it is given so
// tests can assert on exactly what the builder emitted, per the design goal of making
// the builder generic over the Problem interface.
type RecordingProblem struct {
	Variables   []Expr
	Constraints []BoolExpr
	Initial     map[int]float64
	Objective   Expr

	// Values holds a solution vector for SolutionValue to read against. Tests that
	// don't call Solve can populate it directly to simulate a completed solve.
	Values []float64
}

// NewRecordingProblem returns an empty RecordingProblem.
func NewRecordingProblem() *RecordingProblem {
	return &RecordingProblem{Initial: map[int]float64{}}
}

// Variable implements Problem.
func (p *RecordingProblem) Variable() Expr {
	v := varExpr(len(p.Variables))
	p.Variables = append(p.Variables, v)
	return v
}

// SubjectTo implements Problem.
func (p *RecordingProblem) SubjectTo(b BoolExpr) {
	p.Constraints = append(p.Constraints, b)
}

// SetInitial implements Problem.
func (p *RecordingProblem) SetInitial(e Expr, value float64) {
	if !e.IsVariable() {
		panic("nlp: SetInitial called on a non-variable expression")
	}
	p.Initial[e.VarIndex()] = value
}

// Minimize implements Problem.
func (p *RecordingProblem) Minimize(e Expr) {
	p.Objective = e
}

// Solve implements Problem. It does not optimize anything: it simply seeds Values
// from the recorded initial guesses, so SolutionValue returns the initial guess for
// any variable that was given one.
func (p *RecordingProblem) Solve(ctx context.Context) error {
	p.Values = make([]float64, len(p.Variables))
	for idx, v := range p.Initial {
		p.Values[idx] = v
	}
	return nil
}

// SolutionValue implements Problem.
func (p *RecordingProblem) SolutionValue(e Expr) float64 {
	return e.Eval(p.Values)
}
