// LKit -- a simple, embeddable expression language
// Copyright (C) 2012+ the LKit project contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ast

import (
	"math"
	"testing"

	"github.com/drbobbeaty/LKit/lang/core"
	"github.com/drbobbeaty/LKit/lang/interfaces"
	"github.com/drbobbeaty/LKit/lang/types"
)

// TestExprEval1 checks the order-dependent typing of the folds. Based on the
// order of the arguments we can get very different values, because the type
// of the first value sets the type of the answer -- by design. So if we sum a
// bunch of values and the first is an integer, we sum the integer component
// of each argument; if it's a float, everything is cast to float first.
func TestExprEval1(t *testing.T) {
	a := types.NewInt(10)
	b := types.NewFloat(5.5)
	c := types.NewFloat(3.14)
	d := types.NewFloat(6.2)

	// sum with the integer first
	y := NewExprFunc(&core.Sum{}, a, b, c, d)
	if got := y.EvalAsFloat(); got != 24.0 {
		t.Errorf("%s evaluates wrong: %v", y, got)
	}
	// sum with a float first
	z := NewExprFunc(&core.Sum{}, b, a, c, d)
	if got := z.EvalAsFloat(); math.Abs(got-24.84) > 1e-9 {
		t.Errorf("%s evaluates wrong: %v", z, got)
	}
}

func TestExprEval2(t *testing.T) {
	a := types.NewFloat(10.1)
	b := types.NewFloat(5.5)
	c := types.NewFloat(3.14)
	d := types.NewFloat(6.2)

	y := NewExprFunc(&core.Max{}, a, b, c, d)
	if got := y.EvalAsFloat(); got != 10.1 {
		t.Errorf("%s evaluates wrong: %v", y, got)
	}
	z := NewExprFunc(&core.Min{}, a, b, c, d)
	if got := z.EvalAsFloat(); got != 3.14 {
		t.Errorf("%s evaluates wrong: %v", z, got)
	}
}

// TestExprCache1 checks that the expression refreshes its cached value on
// every eval, so a change to a shared argument node is picked up.
func TestExprCache1(t *testing.T) {
	x := NewVariable("x")
	e := NewExprFunc(&core.Sum{}, x, types.NewInt(1))

	if v := e.Eval(); !v.IsInt() || v.EvalAsInt() != 1 {
		t.Errorf("an unset variable should be skipped, got: %s", v)
	}
	x.Assign(types.NewInt(5))
	if v := e.Eval(); v.EvalAsInt() != 6 {
		t.Errorf("the new variable value wasn't picked up, got: %s", v)
	}

	// an expression without a function just returns its stored value
	e2 := NewExpr()
	if v := e2.Eval(); !v.IsUndefined() {
		t.Errorf("an empty expression should be undefined, got: %s", v)
	}
}

func TestExprArgs1(t *testing.T) {
	a := types.NewInt(1)
	b := types.NewInt(2)

	e := NewExpr()
	e.SetFunction(&core.Sum{})
	if err := e.AddArg(a); err != nil {
		t.Errorf("could not add an argument: %v", err)
	}
	// the same node is allowed in the list multiple times
	e.AddArg(b)
	e.AddArg(a)
	if len(e.Args()) != 3 {
		t.Errorf("expected three args, got: %d", len(e.Args()))
	}
	if v := e.Eval(); v.EvalAsInt() != 4 {
		t.Errorf("sum over duplicated args is wrong, got: %s", v)
	}

	// removal is by identity, and takes the first occurrence only
	if !e.RemoveArg(a) {
		t.Errorf("could not remove an argument")
	}
	if len(e.Args()) != 2 {
		t.Errorf("expected two args, got: %d", len(e.Args()))
	}
	if v := e.Eval(); v.EvalAsInt() != 3 {
		t.Errorf("sum after removal is wrong, got: %s", v)
	}
	if e.RemoveArg(types.NewInt(2)) {
		t.Errorf("removal must match by identity, not value")
	}

	e.ClearArgs()
	if len(e.Args()) != 0 {
		t.Errorf("expected no args after clear")
	}
	if err := e.AddArg(nil); err == nil {
		t.Errorf("adding a nil argument should fail")
	}
}

func TestVariable1(t *testing.T) {
	x := NewVariable("x")
	if x.Name() != "x" {
		t.Errorf("variable name is wrong: %s", x.Name())
	}
	if v := x.Eval(); !v.IsUndefined() {
		t.Errorf("a fresh variable should be undefined, got: %s", v)
	}

	x.Assign(types.NewInt(42))
	if v := x.Eval(); !v.IsInt() || v.EvalAsInt() != 42 {
		t.Errorf("assignment didn't take, got: %s", v)
	}
	if x.EvalAsFloat() != 42.0 {
		t.Errorf("coercing read is wrong")
	}

	x.Set("y", types.NewFloat(1.5))
	if x.Name() != "y" || !x.Eval().IsFloat() {
		t.Errorf("set should update the name and value together")
	}
}

// TestVariableBind1 checks the tracking behavior: a variable bound to a node
// re-evaluates it on each read, and a plain assignment breaks the binding.
func TestVariableBind1(t *testing.T) {
	n := types.NewInt(3)
	sum := NewExprFunc(&core.Sum{}, n, types.NewInt(3))

	x := NewVariable("x")
	if err := x.Bind(sum); err != nil {
		t.Errorf("could not bind: %v", err)
	}
	if v := x.Eval(); v.EvalAsInt() != 6 {
		t.Errorf("bound variable read wrong, got: %s", v)
	}

	// the bound expression is re-evaluated on each read
	n.SetInt(7)
	if v := x.Eval(); v.EvalAsInt() != 10 {
		t.Errorf("bound variable should track, got: %s", v)
	}

	// assignment drops the binding
	x.Assign(types.NewInt(1))
	n.SetInt(100)
	if v := x.Eval(); v.EvalAsInt() != 1 {
		t.Errorf("assignment should drop the binding, got: %s", v)
	}

	// a variable can't be bound to itself
	if err := x.Bind(x); err == nil {
		t.Errorf("binding a variable to itself should fail")
	}
}

func TestCmpHash1(t *testing.T) {
	a := NewVariableValue("x", types.NewInt(4))
	b := NewVariableValue("x", types.NewInt(4))
	if err := a.Cmp(b); err != nil {
		t.Errorf("equal variables did not cmp: %v", err)
	}
	if a.Hash() != b.Hash() {
		t.Errorf("equal variables must hash equal")
	}
	c := NewVariableValue("y", types.NewInt(4))
	if err := a.Cmp(c); err == nil {
		t.Errorf("differently named variables shouldn't cmp")
	}

	e1 := NewExprFunc(&core.Sum{}, a)
	e2 := NewExprFunc(&core.Sum{}, b)
	if err := e1.Cmp(e2); err != nil {
		t.Errorf("equal expressions did not cmp: %v", err)
	}
	if e1.Hash() != e2.Hash() {
		t.Errorf("equal expressions must hash equal")
	}
	e3 := NewExprFunc(&core.Prod{}, a)
	if err := e1.Cmp(e3); err == nil {
		t.Errorf("expressions with different functions shouldn't cmp")
	}
}

// the node interfaces have to hold
var _ interfaces.Node = &Variable{}
var _ interfaces.Node = &Expr{}
var _ interfaces.Node = types.NewValue()
