// Package nlp is the narrow boundary between the trajectory problem builder and an
// external nonlinear optimization backend. It models the solver as an opaque
// expression factory (Problem) plus a small symbolic expression tree (Expr) that the
// builder composes before handing the result to SubjectTo/Minimize.
//
// Most set-constraint encoding only ever needs +, -, * of linear/quadratic
// combinations of variables: the angles involved (set orientations, cone bearings,
// bumper-corner offsets) are plain float64 known at build time, so sin/cos of them is
// just math.Sin/math.Cos folded into a constant. The one place a genuinely symbolic
// trig term appears is rotating a bumper corner by the robot's heading variable at a
// sample, which is why Expr also carries Sin/Cos nodes with an analytic derivative —
// any real NLP backend this adapter fronts (nlopt, Sleipnir, CasADi) supports sin/cos
// of a decision variable for exactly this reason.
package nlp

import "math"

type exprOp int

const (
	opConst exprOp = iota
	opVar
	opAdd
	opSub
	opMul
	opSin
	opCos
)

// node is an immutable expression tree node. Expr handles never mutate a node in
// place, so sharing pointers between copies of an Expr is safe.
type node struct {
	op       exprOp
	value    float64 // meaningful for opConst
	varIndex int     // meaningful for opVar
	left     *node
	right    *node
}

// Expr is a copyable, lightweight handle onto a symbolic expression tree. Builder
// code holds these by value in slices the same way it would hold any other
// solver-backend reference.
type Expr struct {
	n *node
}

// Const wraps a plain number as an Expr so it can be combined with variables.
func Const(v float64) Expr {
	return Expr{&node{op: opConst, value: v}}
}

func varExpr(index int) Expr {
	return Expr{&node{op: opVar, varIndex: index}}
}

// IsVariable reports whether e is a bare variable reference (as opposed to a
// compound expression), which is the only shape SetInitial accepts.
func (e Expr) IsVariable() bool {
	return e.n != nil && e.n.op == opVar
}

// VarIndex returns the variable index of a bare variable Expr. Panics if e is not
// a variable; callers should check IsVariable first.
func (e Expr) VarIndex() int {
	if !e.IsVariable() {
		panic("nlp: VarIndex called on a non-variable expression")
	}
	return e.n.varIndex
}

// Add returns e + other.
func (e Expr) Add(other Expr) Expr {
	return Expr{&node{op: opAdd, left: e.n, right: other.n}}
}

// Sub returns e - other.
func (e Expr) Sub(other Expr) Expr {
	return Expr{&node{op: opSub, left: e.n, right: other.n}}
}

// Mul returns e * other.
func (e Expr) Mul(other Expr) Expr {
	return Expr{&node{op: opMul, left: e.n, right: other.n}}
}

// AddC returns e + c.
func (e Expr) AddC(c float64) Expr { return e.Add(Const(c)) }

// SubC returns e - c.
func (e Expr) SubC(c float64) Expr { return e.Sub(Const(c)) }

// MulC returns e * c.
func (e Expr) MulC(c float64) Expr { return e.Mul(Const(c)) }

// Neg returns -e.
func (e Expr) Neg() Expr { return Const(0).Sub(e) }

// Sin returns sin(e). Unlike Add/Sub/Mul this is only ever applied to the robot's
// symbolic heading when rotating a bumper corner into world coordinates; every other
// angle in the encoder is a known double, so math.Sin is used directly on it instead.
func (e Expr) Sin() Expr {
	return Expr{&node{op: opSin, left: e.n}}
}

// Cos returns cos(e). See Sin.
func (e Expr) Cos() Expr {
	return Expr{&node{op: opCos, left: e.n}}
}

// Eval evaluates e given a dense vector of variable values indexed by VarIndex.
func (e Expr) Eval(values []float64) float64 {
	v, _ := evalGrad(e.n, values, -1)
	return v
}

// evalGrad evaluates n and, if wantGradLen >= 0, simultaneously accumulates a dense
// partial-derivative vector of length wantGradLen. Passing a negative length skips
// gradient bookkeeping entirely, which is all Eval needs.
func evalGrad(n *node, values []float64, wantGradLen int) (float64, []float64) {
	if n == nil {
		return 0, nil
	}
	switch n.op {
	case opConst:
		return n.value, nil
	case opVar:
		var grad []float64
		if wantGradLen >= 0 {
			grad = make([]float64, wantGradLen)
			grad[n.varIndex] = 1
		}
		return values[n.varIndex], grad
	case opAdd:
		lv, lg := evalGrad(n.left, values, wantGradLen)
		rv, rg := evalGrad(n.right, values, wantGradLen)
		return lv + rv, sumGrad(lg, rg, 1, 1, wantGradLen)
	case opSub:
		lv, lg := evalGrad(n.left, values, wantGradLen)
		rv, rg := evalGrad(n.right, values, wantGradLen)
		return lv - rv, sumGrad(lg, rg, 1, -1, wantGradLen)
	case opMul:
		lv, lg := evalGrad(n.left, values, wantGradLen)
		rv, rg := evalGrad(n.right, values, wantGradLen)
		return lv * rv, sumGrad(lg, rg, rv, lv, wantGradLen)
	case opSin:
		uv, ug := evalGrad(n.left, values, wantGradLen)
		return math.Sin(uv), sumGrad(ug, nil, math.Cos(uv), 0, wantGradLen)
	case opCos:
		uv, ug := evalGrad(n.left, values, wantGradLen)
		return math.Cos(uv), sumGrad(ug, nil, -math.Sin(uv), 0, wantGradLen)
	default:
		panic("nlp: unknown expression op")
	}
}

// sumGrad combines a*lg + b*rg elementwise, tolerating either side being nil (a
// constant subtree contributes no gradient).
func sumGrad(lg, rg []float64, a, b float64, n int) []float64 {
	if n < 0 {
		return nil
	}
	out := make([]float64, n)
	for i, v := range lg {
		out[i] += a * v
	}
	for i, v := range rg {
		out[i] += b * v
	}
	return out
}

// Grad returns the dense partial derivative of e with respect to every variable
// index in [0, numVars).
func (e Expr) Grad(values []float64, numVars int) []float64 {
	_, g := evalGrad(e.n, values, numVars)
	if g == nil {
		return make([]float64, numVars)
	}
	return g
}

// ExprOp names the operator of a recorded expression node, exported for tests that
// want to assert on the exact shape of a generated constraint tree.
type ExprOp int

// The exported mirror of exprOp, used by Tree() snapshots.
const (
	OpConst ExprOp = iota
	OpVar
	OpAdd
	OpSub
	OpMul
	OpSin
	OpCos
)

// ExprNode is a plain-value snapshot of one node of an expression tree, suitable
// for structural comparison with go-cmp.
type ExprNode struct {
	Op       ExprOp
	Value    float64
	VarIndex int
	Left     *ExprNode
	Right    *ExprNode
}

// Tree returns a plain-value snapshot of e's expression tree for exact-match
// assertions in tests.
func (e Expr) Tree() *ExprNode {
	return snapshot(e.n)
}

func snapshot(n *node) *ExprNode {
	if n == nil {
		return nil
	}
	return &ExprNode{
		Op:       ExprOp(n.op),
		Value:    n.value,
		VarIndex: n.varIndex,
		Left:     snapshot(n.left),
		Right:    snapshot(n.right),
	}
}
