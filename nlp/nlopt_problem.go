//go:build !no_cgo

package nlp

import (
	"context"
	"math"

	"github.com/go-nlopt/nlopt"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/trajopt/logging"
)

const (
	defaultEpsilon       = 1e-6
	defaultNloptStepsMax = 4001
)

var errNoSolve = errors.New("nlp: nlopt could not find a feasible solution")

// NloptProblem is the reference Problem implementation. It accumulates variables,
// constraints, and an objective exactly like RecordingProblem, then hands the whole
// tree to go-nlopt's SLSQP solver on Solve: the constraint/objective closures it
// installs evaluate the Expr tree analytically (value + gradient in one pass) rather
// than the jump-based finite differences an opaque black-box metric would need.
type NloptProblem struct {
	logger        logging.Logger
	epsilon       float64
	maxIterations int

	variables   []Expr
	initial     map[int]float64
	constraints []BoolExpr
	objective   Expr

	values []float64
}

// NewNloptProblem returns an empty NloptProblem backed by nlopt's SLSQP algorithm.
func NewNloptProblem(logger logging.Logger) *NloptProblem {
	return &NloptProblem{
		logger:        logger,
		epsilon:       defaultEpsilon,
		maxIterations: defaultNloptStepsMax,
		initial:       map[int]float64{},
	}
}

// Variable implements Problem.
func (p *NloptProblem) Variable() Expr {
	v := varExpr(len(p.variables))
	p.variables = append(p.variables, v)
	return v
}

// SubjectTo implements Problem.
func (p *NloptProblem) SubjectTo(b BoolExpr) {
	p.constraints = append(p.constraints, b)
}

// SetInitial implements Problem.
func (p *NloptProblem) SetInitial(e Expr, value float64) {
	if !e.IsVariable() {
		panic("nlp: SetInitial called on a non-variable expression")
	}
	p.initial[e.VarIndex()] = value
}

// Minimize implements Problem.
func (p *NloptProblem) Minimize(e Expr) {
	p.objective = e
}

// Solve implements Problem.
func (p *NloptProblem) Solve(ctx context.Context) error {
	n := uint(len(p.variables))
	if n == 0 {
		return errors.New("nlp: problem has no variables")
	}

	opt, err := nlopt.NewNLopt(nlopt.LD_SLSQP, n)
	if err != nil {
		return errors.Wrap(err, "nlopt creation error")
	}
	defer opt.Destroy()

	lower := make([]float64, n)
	upper := make([]float64, n)
	for i := range lower {
		lower[i] = math.Inf(-1)
		upper[i] = math.Inf(1)
	}

	objective := p.objective
	err = multierr.Combine(
		opt.SetLowerBounds(lower),
		opt.SetUpperBounds(upper),
		opt.SetFtolRel(p.epsilon),
		opt.SetFtolAbs(p.epsilon),
		opt.SetXtolRel(p.epsilon),
		opt.SetMaxEval(p.maxIterations),
		opt.SetMinObjective(func(x, gradient []float64) float64 {
			val, grad := evalGrad(objective.n, x, len(x))
			copy(gradient, grad)
			return val
		}),
	)
	if err != nil {
		return errors.Wrap(err, "nlopt configuration error")
	}

	for _, c := range p.constraints {
		residual := c.residual()
		fn := func(x, gradient []float64) float64 {
			val, grad := evalGrad(residual.n, x, len(x))
			copy(gradient, grad)
			return val
		}
		if c.Op == OpEq {
			err = opt.AddEqualityConstraint(fn, p.epsilon)
		} else {
			err = opt.AddInequalityConstraint(fn, p.epsilon)
		}
		if err != nil {
			p.logger.Errorw("failed to register constraint with nlopt", "error", err)
			return errors.Wrap(err, "nlopt constraint error")
		}
	}

	x0 := make([]float64, n)
	for idx, v := range p.initial {
		x0[idx] = v
	}

	solution, result, err := opt.Optimize(x0)
	if err != nil {
		p.logger.Errorw("nlopt optimize returned an error", "error", err)
		return multierr.Combine(errNoSolve, err)
	}
	p.logger.Debugw("nlopt solve finished", "objective", result)
	p.values = solution
	return nil
}

// SolutionValue implements Problem.
func (p *NloptProblem) SolutionValue(e Expr) float64 {
	return e.Eval(p.values)
}
