//go:build no_cgo

package nlp

import (
	"context"

	"github.com/pkg/errors"

	"go.viam.com/trajopt/logging"
)

var errNotSupported = errors.New("nlp: nlopt backend is not supported on this build")

// NloptProblem mimics the type in the cgo-compiled build so callers can keep
// referencing it: Solve always returns an error, and the other methods do
// nothing (Variable returns an empty Expr, SolutionValue returns 0).
type NloptProblem struct{}

// NewNloptProblem returns a placeholder whose Solve fails on no_cgo builds.
func NewNloptProblem(logger logging.Logger) *NloptProblem {
	return &NloptProblem{}
}

func (p *NloptProblem) Variable() Expr { return Expr{} }

func (p *NloptProblem) SubjectTo(BoolExpr) {}

func (p *NloptProblem) SetInitial(Expr, float64) {}

func (p *NloptProblem) Minimize(Expr) {}

func (p *NloptProblem) Solve(ctx context.Context) error { return errNotSupported }

func (p *NloptProblem) SolutionValue(Expr) float64 { return 0 }
