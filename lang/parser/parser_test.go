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

package parser

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/drbobbeaty/LKit/lang/interfaces"
	"github.com/drbobbeaty/LKit/lang/types"

	"github.com/davecgh/go-spew/spew"
	"github.com/kylelemons/godebug/pretty"
)

// cmpValues compares an expected and an actual result, with a small epsilon
// for the floats since some of the decimal expectations aren't exact in
// binary.
func cmpValues(exp, got *types.Value) error {
	if exp.Kind() != got.Kind() {
		return fmt.Errorf("kinds differ, expected: %v, got: %v", exp.Kind(), got.Kind())
	}
	if exp.Kind() == types.KindFloat {
		if math.Abs(exp.EvalAsFloat()-got.EvalAsFloat()) > 1e-9 {
			return fmt.Errorf("floats differ, expected: %v, got: %v", exp.EvalAsFloat(), got.EvalAsFloat())
		}
		return nil
	}
	if !exp.Equals(got) {
		return fmt.Errorf("values differ")
	}
	return nil
}

func TestEval1(t *testing.T) {
	stamp, err := types.ParseTimestamp("2012-03-21 11:45:16")
	if err != nil {
		t.Errorf("could not parse the reference timestamp: %v", err)
		return
	}

	type test struct { // an individual test
		src string
		exp *types.Value
	}
	testCases := []test{
		{"(+ 1 2 3)", types.NewInt(6)},
		{"(/ 10.0 2.0 5.0)", types.NewFloat(1.0)},
		{"(and true false true)", types.NewBool(false)},
		{"(or 1 0 1)", types.NewBool(true)},
		{"(+ (+ 1 2) (+ 3 4 5) 6)", types.NewInt(21)},
		{"(+ (/ 10.0 2.5) (* (+ 1.5 2 6) 2.0))", types.NewFloat(23.0)},
		// x is 6, so this is 6 * 3 * (6 * 2)
		{"(set x (+ 1 2 3)) (* x 3 (* x 2))", types.NewInt(216)},
		{"(+ 10 5.5 3.14 6.2)", types.NewInt(24)}, // first arg dominates
		{"(+ 5.5 10 3.14 6.2)", types.NewFloat(24.84)},
		{"(== 1 1.0 (* 2.0 0.5))", types.NewBool(true)},
		{"(> 10 9 8 5 5 2)", types.NewBool(false)},
		{"(- 5)", types.NewInt(-5)},
		{"(- 10 4 1)", types.NewInt(5)},
		{"(min 4 2 9)", types.NewInt(2)},
		{"(max 4 2 9)", types.NewInt(9)},
		{"(not 0)", types.NewBool(true)},
		{"(!= 1 2 3)", types.NewBool(true)},
		{"(<= 1 1 2)", types.NewBool(true)},
		{"(/ 10 0)", types.NewValue()}, // division by zero is undefined
		{"(* pi 2)", types.NewFloat(6.2831853)},
		{"(+ '2012-03-21 11:45:16' 1)", types.NewTime(stamp + 1)},
		{"(max '11:45:16' '00:00:01')", types.NewTime(42316000000)},
	}
	for index, tc := range testCases {
		p := NewWithSource(tc.src)
		got, err := p.Evaluate()
		if err != nil {
			t.Errorf("test #%d: could not evaluate `%s`: %v", index, tc.src, err)
			continue
		}
		if err := cmpValues(tc.exp, got); err != nil {
			t.Errorf("test #%d: `%s` evaluated wrong: %v", index, tc.src, err)
			t.Logf("test #%d:   actual: %s", index, spew.Sdump(got))
			t.Logf("test #%d: expected: %s", index, spew.Sdump(tc.exp))
			t.Logf("test #%d: diff:\n%s", index, pretty.Compare(got.String(), tc.exp.String()))
		}
	}
}

// TestEval2 checks that evaluation is idempotent: repeated calls with
// unchanged inputs produce equal results.
func TestEval2(t *testing.T) {
	sources := []string{
		"(+ 1 2 3)",
		"(set x (+ 1 2 3)) (* x 3 (* x 2))",
		"(max (+ 1 2) (- 10 4))",
	}
	for _, src := range sources {
		p := NewWithSource(src)
		first, err := p.Evaluate()
		if err != nil {
			t.Errorf("could not evaluate `%s`: %v", src, err)
			continue
		}
		for i := 0; i < 3; i++ {
			again, err := p.Evaluate()
			if err != nil {
				t.Errorf("could not re-evaluate `%s`: %v", src, err)
				break
			}
			if !first.Equals(again) {
				t.Errorf("`%s` is not idempotent: %s then %s", src, first, again)
				break
			}
		}
	}
}

// TestEval3 checks that recompilation is deterministic: setting the same
// source again gives the same result.
func TestEval3(t *testing.T) {
	src := "(set x (+ 1 2 3)) (* x 3 (* x 2))"
	p := New()
	p.SetSource(src)
	first, err := p.Evaluate()
	if err != nil {
		t.Errorf("could not evaluate: %v", err)
		return
	}
	p.SetSource(src)
	again, err := p.Evaluate()
	if err != nil {
		t.Errorf("could not re-evaluate: %v", err)
		return
	}
	if !first.Equals(again) {
		t.Errorf("recompilation changed the result: %s then %s", first, again)
	}
}

// TestPlaceholder1 checks that an unknown identifier becomes a placeholder
// variable that the host can fill in, and that the fill-in preserves the node
// identity so the compiled tree sees it.
func TestPlaceholder1(t *testing.T) {
	p := NewWithSource("(+ x 1)")
	v, err := p.Evaluate()
	if err != nil {
		t.Errorf("could not evaluate: %v", err)
		return
	}
	if !v.IsInt() || v.EvalAsInt() != 1 {
		t.Errorf("an unset placeholder should be skipped, got: %s", v)
	}

	// successive adds update the same node, and the tree notices
	p.AddVariable("x", types.NewInt(5))
	if v, _ := p.Evaluate(); v.EvalAsInt() != 6 {
		t.Errorf("the tree did not see the new value, got: %s", v)
	}
	p.AddVariable("x", types.NewInt(7))
	if v, _ := p.Evaluate(); v.EvalAsInt() != 8 {
		t.Errorf("the tree did not see the updated value, got: %s", v)
	}

	if g := p.GetVariable("x"); g == nil || g.EvalAsInt() != 7 {
		t.Errorf("GetVariable is wrong, got: %v", g)
	}
	if g := p.GetVariable("nope"); g != nil {
		t.Errorf("an unknown variable should come back nil, got: %v", g)
	}
}

// TestSet1 covers the variable-setting forms.
func TestSet1(t *testing.T) {
	// a set as the only form: the root is the variable itself
	p := NewWithSource("(set x 5)")
	v, err := p.Evaluate()
	if err != nil {
		t.Errorf("could not evaluate: %v", err)
		return
	}
	if !v.IsInt() || v.EvalAsInt() != 5 {
		t.Errorf("a set form should evaluate to the variable, got: %s", v)
	}

	// a bare declaration leaves the variable undefined
	p = NewWithSource("(set x) (+ x 2)")
	if v, _ := p.Evaluate(); v.EvalAsInt() != 2 {
		t.Errorf("a declared-only variable should be skipped, got: %s", v)
	}

	// a set bound to another variable tracks it
	p = NewWithSource("(set y x) (+ y 0)")
	p.AddVariable("x", types.NewInt(3))
	if v, _ := p.Evaluate(); v.EvalAsInt() != 3 {
		t.Errorf("a variable-bound set should track, got: %s", v)
	}
	p.AddVariable("x", types.NewInt(9))
	if v, _ := p.Evaluate(); v.EvalAsInt() != 9 {
		t.Errorf("a variable-bound set should keep tracking, got: %s", v)
	}

	// a set bound to an expression re-evaluates it on each read
	p = NewWithSource("(set z (+ w 1)) (+ z 0)")
	p.AddVariable("w", types.NewInt(1))
	if v, _ := p.Evaluate(); v.EvalAsInt() != 2 {
		t.Errorf("an expression-bound set is wrong, got: %s", v)
	}
	p.AddVariable("w", types.NewInt(10))
	if v, _ := p.Evaluate(); v.EvalAsInt() != 11 {
		t.Errorf("an expression-bound set should re-evaluate, got: %s", v)
	}
}

func TestErrors1(t *testing.T) {
	type test struct { // an individual test
		src string
		err error // sentinel we expect in the chain, or nil for any
	}
	testCases := []test{
		{"", interfaces.ErrParseNoExpression},
		{"hello there", interfaces.ErrParseNoExpression},
		{"(foo 1 2)", interfaces.ErrFuncNotFound},
		{"((+ 1 2) 3)", interfaces.ErrParseMissingFunc},
		{"()", interfaces.ErrParseMissingFunc},
		{"(+ 1", interfaces.ErrParseMissingFunc},
		{"(set (x) 1)", interfaces.ErrParseSetName},
		{"(set x 1 2)", interfaces.ErrParseSetArity},
		{"(set)", interfaces.ErrParseSetArity},
		{"(+ 1 '99-99')", interfaces.ErrParseBadLiteral},
		{"(+ 1 99999999999999999999)", interfaces.ErrParseBadLiteral},
		{"(+ 1 1.2.3)", interfaces.ErrParseBadLiteral},
	}
	for index, tc := range testCases {
		p := NewWithSource(tc.src)
		if _, err := p.Evaluate(); err == nil {
			t.Errorf("test #%d: expected an error for `%s`", index, tc.src)
		} else if tc.err != nil && !errors.Is(err, tc.err) {
			t.Errorf("test #%d: wrong error for `%s`: %v", index, tc.src, err)
		}
	}
}

// TestErrors2 checks that a failed compile leaves the prior state intact, so
// the caller can fix the source and retry.
func TestErrors2(t *testing.T) {
	p := New()
	p.AddVariable("x", types.NewInt(5))
	p.SetSource("(nosuchfunc x)")
	if _, err := p.Evaluate(); err == nil {
		t.Errorf("expected an error")
		return
	}
	if g := p.GetVariable("x"); g == nil || g.EvalAsInt() != 5 {
		t.Errorf("a failed compile should leave the variables alone")
	}
	p.SetSource("(+ x 1)")
	v, err := p.Evaluate()
	if err != nil {
		t.Errorf("the retry failed: %v", err)
		return
	}
	if v.EvalAsInt() != 6 {
		t.Errorf("the retry evaluated wrong, got: %s", v)
	}
}

func TestDefaults1(t *testing.T) {
	p := New()
	if v := p.GetVariable("pi"); v == nil || math.Abs(v.EvalAsFloat()-3.14159265) > 1e-9 {
		t.Errorf("pi is missing or wrong, got: %v", v)
	}
	if v := p.GetVariable("e"); v == nil || math.Abs(v.EvalAsFloat()-2.71828183) > 1e-9 {
		t.Errorf("e is missing or wrong, got: %v", v)
	}
	if len(p.Functions()) != 15 {
		t.Errorf("expected the fifteen default functions, got: %d", len(p.Functions()))
	}
}

func TestTables1(t *testing.T) {
	p := New()

	// removing and clearing functions
	if !p.RemoveFunction("max") {
		t.Errorf("could not remove a function")
	}
	if p.RemoveFunction("max") {
		t.Errorf("removing a missing function should say so")
	}
	p.SetSource("(max 1 2)")
	if _, err := p.Evaluate(); !errors.Is(err, interfaces.ErrFuncNotFound) {
		t.Errorf("a removed function should not resolve, got: %v", err)
	}
	p.UseDefaultFunctions()
	p.SetSource("(max 1 2)")
	if v, err := p.Evaluate(); err != nil || v.EvalAsInt() != 2 {
		t.Errorf("the defaults did not come back: %v", err)
	}

	// removing and clearing variables
	if !p.RemoveVariable("pi") {
		t.Errorf("could not remove a variable")
	}
	if p.RemoveVariable("pi") {
		t.Errorf("removing a missing variable should say so")
	}
	p.ClearVariables()
	if len(p.Variables()) != 0 {
		t.Errorf("clear left variables behind")
	}

	// clear and reset
	p.Clear()
	if p.GetSource() != "" || len(p.Functions()) != 0 || len(p.Variables()) != 0 {
		t.Errorf("clear should empty everything")
	}
	if err := p.Reset(); err != nil {
		t.Errorf("could not reset: %v", err)
	}
	if len(p.Functions()) != 15 || len(p.Variables()) != 2 {
		t.Errorf("reset should seed the defaults")
	}
}

// TestForms1 checks the handling of multiple top-level forms: the last one is
// the root, the earlier ones run at compile time for their side effects.
func TestForms1(t *testing.T) {
	p := NewWithSource("(+ 1 1) (+ 2 2)")
	v, err := p.Evaluate()
	if err != nil {
		t.Errorf("could not evaluate: %v", err)
		return
	}
	if v.EvalAsInt() != 4 {
		t.Errorf("the last form should be the root, got: %s", v)
	}

	p = NewWithSource("(set a 2) (set b 3) (* a b)")
	if v, _ := p.Evaluate(); v.EvalAsInt() != 6 {
		t.Errorf("the set forms did not apply, got: %s", v)
	}
}

func TestCmpHash1(t *testing.T) {
	src := "(+ 1 2 3)"
	p1 := NewWithSource(src)
	p2 := NewWithSource(src)
	if _, err := p1.Evaluate(); err != nil {
		t.Errorf("could not evaluate: %v", err)
		return
	}
	if _, err := p2.Evaluate(); err != nil {
		t.Errorf("could not evaluate: %v", err)
		return
	}
	if err := p1.Cmp(p2); err != nil {
		t.Errorf("equal parsers did not cmp: %v", err)
	}
	if p1.Hash() != p2.Hash() {
		t.Errorf("equal parsers must hash equal")
	}

	p2.AddVariable("x", types.NewInt(1))
	if err := p1.Cmp(p2); err == nil {
		t.Errorf("parsers with different variables shouldn't cmp")
	}
	if p1.Hash() == p2.Hash() {
		t.Errorf("different parsers shouldn't hash equal here")
	}
}

// TestConcurrent1 evaluates a compiled tree from several goroutines while
// the host keeps updating a variable. Every node carries its own short lock,
// so this must be safe; each result is a defined integer either way.
func TestConcurrent1(t *testing.T) {
	p := NewWithSource("(+ x 1)")
	p.AddVariable("x", types.NewInt(0))
	if _, err := p.Evaluate(); err != nil {
		t.Errorf("could not evaluate: %v", err)
		return
	}

	wg := &sync.WaitGroup{}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v, err := p.Evaluate()
				if err != nil {
					t.Errorf("concurrent evaluate failed: %v", err)
					return
				}
				if !v.IsInt() {
					t.Errorf("concurrent evaluate gave a non-int: %s", v)
					return
				}
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 100; j++ {
			p.AddVariable("x", types.NewInt(int32(j)))
		}
	}()
	wg.Wait()

	p.AddVariable("x", types.NewInt(41))
	if v, _ := p.Evaluate(); v.EvalAsInt() != 42 {
		t.Errorf("final evaluate is wrong, got: %s", v)
	}
}

// TestTimestamps1 pins the quoted-timestamp handling down at the language
// level: a timestamp with a space inside still reads as one token.
func TestTimestamps1(t *testing.T) {
	exp := uint64(time.Date(2012, time.March, 21, 11, 45, 16, 0, time.Local).UnixMicro())
	p := NewWithSource("(max '2012-03-21 11:45:16')")
	v, err := p.Evaluate()
	if err != nil {
		t.Errorf("could not evaluate: %v", err)
		return
	}
	if !v.IsTime() || v.EvalAsTime() != exp {
		t.Errorf("quoted timestamp parsed wrong, got: %s, expected: %d", v, exp)
	}
}
