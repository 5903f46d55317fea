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
	"fmt"
	"strings"
	"sync"

	"github.com/drbobbeaty/LKit/lang/interfaces"
	"github.com/drbobbeaty/LKit/lang/types"
)

// Expr pairs a single function with an ordered list of argument nodes. The
// arguments are non-owning references into parser-owned nodes, and the same
// node may appear more than once. Evaluating the expression invokes the
// function on the argument list and stores the result in the value the
// expression carries, so that value acts as a cache of the last evaluation.
// The cache is refreshed on every eval call.
type Expr struct {
	types.Value // the cached result of the last evaluation

	mutex sync.Mutex // guards the name, function and arguments below

	name string
	fn   interfaces.Func
	args []interfaces.Node
}

// NewExpr creates an empty expression, ready to take a function and a series
// of arguments.
func NewExpr() *Expr {
	return &Expr{}
}

// NewExprFunc creates an expression from a function and its arguments. Nil
// argument references are dropped.
func NewExprFunc(fn interfaces.Func, args ...interfaces.Node) *Expr {
	obj := &Expr{fn: fn}
	for _, a := range args {
		if a == nil {
			continue
		}
		obj.args = append(obj.args, a)
	}
	return obj
}

// SetName gives this expression an identifier, which is only used to make
// debug output easier to follow.
func (obj *Expr) SetName(name string) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	obj.name = name
}

// Name returns the name of this expression, which may well be empty.
func (obj *Expr) Name() string {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	return obj.name
}

// SetFunction sets the function this expression applies to its arguments.
func (obj *Expr) SetFunction(fn interfaces.Func) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	obj.fn = fn
}

// Function returns the function this expression applies, or nil if one has
// not been set yet.
func (obj *Expr) Function() interfaces.Func {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	return obj.fn
}

// SetArgs replaces the whole argument list with the provided one.
func (obj *Expr) SetArgs(args []interfaces.Node) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	obj.args = append([]interfaces.Node{}, args...)
}

// Args returns a copy of the argument list.
func (obj *Expr) Args() []interfaces.Node {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	return append([]interfaces.Node{}, obj.args...)
}

// AddArg appends one argument to the list. No check is made for duplicates,
// since the same node is allowed in the list multiple times.
func (obj *Expr) AddArg(arg interfaces.Node) error {
	if arg == nil {
		return fmt.Errorf("can't add a nil argument")
	}
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	obj.args = append(obj.args, arg)
	return nil
}

// AddArgs appends each of the provided arguments to the list.
func (obj *Expr) AddArgs(args []interfaces.Node) error {
	var reterr error
	for _, a := range args {
		if a == nil {
			reterr = fmt.Errorf("can't add a nil argument")
			continue
		}
		obj.mutex.Lock()
		obj.args = append(obj.args, a)
		obj.mutex.Unlock()
	}
	return reterr
}

// RemoveArg removes the first occurrence of the given node from the argument
// list, matched by reference identity. It returns true if one was removed.
func (obj *Expr) RemoveArg(arg interfaces.Node) bool {
	if arg == nil {
		return false
	}
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	for i, a := range obj.args {
		if a == arg {
			obj.args = append(obj.args[0:i], obj.args[i+1:]...)
			return true
		}
	}
	return false
}

// ClearArgs removes every argument from the list.
func (obj *Expr) ClearArgs() {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	obj.args = nil
}

// Eval invokes the function on the current argument list, stores the result
// as this expression's value, and returns a copy of it. Without a function
// the stored value is returned as-is. The expression's lock is held across
// the invocation, so concurrent evals of one expression serialize.
func (obj *Expr) Eval() *types.Value {
	obj.mutex.Lock()
	if obj.fn != nil {
		obj.Value.SetValue(obj.fn.Eval(obj.args))
	}
	obj.mutex.Unlock()
	return obj.Value.Copy()
}

// EvalAsBool evaluates this expression and coerces the result to a boolean.
func (obj *Expr) EvalAsBool() bool { return obj.Eval().EvalAsBool() }

// EvalAsInt evaluates this expression and coerces the result to an integer.
func (obj *Expr) EvalAsInt() int32 { return obj.Eval().EvalAsInt() }

// EvalAsFloat evaluates this expression and coerces the result to a float.
func (obj *Expr) EvalAsFloat() float64 { return obj.Eval().EvalAsFloat() }

// EvalAsTime evaluates this expression and coerces the result to a timestamp.
func (obj *Expr) EvalAsTime() uint64 { return obj.Eval().EvalAsTime() }

// Copy returns a copy of this expression. The cached value is copied, the
// function and argument references are shared.
func (obj *Expr) Copy() *Expr {
	obj.mutex.Lock()
	name, fn := obj.name, obj.fn
	args := append([]interfaces.Node{}, obj.args...)
	obj.mutex.Unlock()
	e := &Expr{name: name, fn: fn, args: args}
	e.Value.SetValue(&obj.Value)
	return e
}

// String returns a visual representation of this expression.
func (obj *Expr) String() string {
	obj.mutex.Lock()
	name, fn := obj.name, obj.fn
	args := append([]interfaces.Node{}, obj.args...)
	obj.mutex.Unlock()

	var b strings.Builder
	b.WriteString("[")
	if name != "" {
		fmt.Fprintf(&b, "'%s' ", name)
	}
	if fn == nil {
		b.WriteString("fn=<nil> args=(")
	} else {
		fmt.Fprintf(&b, "fn=%s args=(", fn.String())
	}
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		if a == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(a.String())
	}
	b.WriteString(")]")
	return b.String()
}

// Hash returns a stable hash of this expression, folding the name, the
// function and each argument into the hash of the cached value.
func (obj *Expr) Hash() uint64 {
	obj.mutex.Lock()
	name, fn := obj.name, obj.fn
	args := append([]interfaces.Node{}, obj.args...)
	obj.mutex.Unlock()

	ans := types.HashCombine(obj.Value.Hash(), types.HashString(name))
	if fn != nil {
		ans = types.HashCombine(ans, fn.Hash())
	}
	for _, a := range args {
		if a == nil {
			continue
		}
		ans = types.HashCombine(ans, a.Hash())
	}
	return ans
}

// Cmp returns an error if the other expression isn't the same as this one.
// The functions and arguments are compared by hash.
func (obj *Expr) Cmp(v *Expr) error {
	if obj == nil || v == nil {
		return fmt.Errorf("cannot cmp to nil")
	}
	if obj.Name() != v.Name() {
		return fmt.Errorf("names differ")
	}
	f1, f2 := obj.Function(), v.Function()
	if (f1 == nil) != (f2 == nil) {
		return fmt.Errorf("functions differ")
	}
	if f1 != nil && f1.Hash() != f2.Hash() {
		return fmt.Errorf("functions differ")
	}
	a1, a2 := obj.Args(), v.Args()
	if len(a1) != len(a2) {
		return fmt.Errorf("arguments have different lengths")
	}
	for i := range a1 {
		if a1[i].Hash() != a2[i].Hash() {
			return fmt.Errorf("argument %d differs", i)
		}
	}
	return nil
}
