package nlp_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.viam.com/test"

	"go.viam.com/trajopt/nlp"
)

func TestExprArithmetic(t *testing.T) {
	p := nlp.NewRecordingProblem()
	x := p.Variable()
	y := p.Variable()

	e := x.Add(y).MulC(2).Sub(nlp.Const(1))
	test.That(t, e.Eval([]float64{3, 4}), test.ShouldEqual, 13.0)

	g := e.Grad([]float64{3, 4}, 2)
	test.That(t, g, test.ShouldResemble, []float64{2.0, 2.0})
}

func TestExprSinCos(t *testing.T) {
	p := nlp.NewRecordingProblem()
	theta := p.Variable()

	s := theta.Sin()
	c := theta.Cos()
	test.That(t, s.Eval([]float64{math.Pi / 2}), test.ShouldAlmostEqual, 1.0)
	test.That(t, c.Eval([]float64{0}), test.ShouldAlmostEqual, 1.0)

	g := s.Grad([]float64{0}, 1)
	test.That(t, g[0], test.ShouldAlmostEqual, 1.0) // d/dtheta sin(theta) at 0 == cos(0) == 1
}

func TestExprTreeSnapshot(t *testing.T) {
	p := nlp.NewRecordingProblem()
	x := p.Variable()

	got := x.AddC(1).Tree()
	want := &nlp.ExprNode{
		Op: nlp.OpAdd,
		Left: &nlp.ExprNode{
			Op:       nlp.OpVar,
			VarIndex: 0,
		},
		Right: &nlp.ExprNode{
			Op:    nlp.OpConst,
			Value: 1,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected expression tree (-want +got):\n%s", diff)
	}
}

func TestIsVariableAndVarIndex(t *testing.T) {
	p := nlp.NewRecordingProblem()
	x := p.Variable()
	test.That(t, x.IsVariable(), test.ShouldBeTrue)
	test.That(t, x.VarIndex(), test.ShouldEqual, 0)

	compound := x.AddC(1)
	test.That(t, compound.IsVariable(), test.ShouldBeFalse)
}
