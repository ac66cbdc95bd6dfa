package nlp_test

import (
	"context"
	"testing"

	"go.viam.com/test"

	"go.viam.com/trajopt/nlp"
)

func TestRecordingProblemRecordsEverything(t *testing.T) {
	p := nlp.NewRecordingProblem()
	x := p.Variable()
	y := p.Variable()
	test.That(t, len(p.Variables), test.ShouldEqual, 2)

	p.SubjectTo(x.GEC(0))
	p.SubjectTo(x.Add(y).EqC(5))
	test.That(t, len(p.Constraints), test.ShouldEqual, 2)

	p.SetInitial(x, 1.5)
	p.SetInitial(y, 3.5)
	test.That(t, p.Initial[x.VarIndex()], test.ShouldEqual, 1.5)

	p.Minimize(x.Add(y))
	test.That(t, p.Objective.Eval([]float64{1, 2}), test.ShouldEqual, 3.0)

	err := p.Solve(context.Background())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.SolutionValue(x), test.ShouldEqual, 1.5)
	test.That(t, p.SolutionValue(y), test.ShouldEqual, 3.5)
}

func TestRecordingProblemSetInitialRejectsCompoundExpr(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected SetInitial on a non-variable expression to panic")
		}
	}()
	p := nlp.NewRecordingProblem()
	x := p.Variable()
	p.SetInitial(x.AddC(1), 0)
}
