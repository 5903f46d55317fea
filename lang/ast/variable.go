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

// Package ast contains the node types the parser builds its evaluation tree
// out of: the named variables and the expressions. Both carry a scalar value
// inside, so they slot into an argument list anywhere a plain constant can.
package ast

import (
	"fmt"
	"sync"

	"github.com/drbobbeaty/LKit/lang/interfaces"
	"github.com/drbobbeaty/LKit/lang/types"
)

// Variable is a named value. It is a simple slot that can hold many different
// values over time, and its evaluation is usually just the value it holds. It
// can also be bound to another node, in which case each evaluation first
// re-evaluates that node and stores the result into the slot, so the variable
// tracks it. Variables are created and owned by the parser, and they keep
// their identity for as long as the parser holds them: re-binding or
// re-assigning one is seen by every expression that references it.
type Variable struct {
	types.Value // the current value of the variable

	mutex sync.Mutex // guards the name and the binding below

	name string
	expr interfaces.Node // if non-nil, re-evaluated on each read
}

// NewVariable creates a named variable with no value. This is what the parser
// builds when the source references a name it has never seen: a placeholder
// that the host can assign to before evaluation starts.
func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

// NewVariableValue creates a named variable holding a copy of the given
// value.
func NewVariableValue(name string, v *types.Value) *Variable {
	obj := &Variable{name: name}
	obj.Value.SetValue(v)
	return obj
}

// Name returns the name of this variable.
func (obj *Variable) Name() string {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	return obj.name
}

// Set updates the name and the value of this variable in one step. Any bound
// node is dropped.
func (obj *Variable) Set(name string, v *types.Value) {
	obj.mutex.Lock()
	obj.name = name
	obj.expr = nil
	obj.mutex.Unlock()
	obj.Value.SetValue(v)
}

// Assign replaces the value of this variable with a copy of the given one.
// Any bound node is dropped.
func (obj *Variable) Assign(v *types.Value) {
	obj.mutex.Lock()
	obj.expr = nil
	obj.mutex.Unlock()
	obj.Value.SetValue(v)
}

// Bind attaches a node to this variable. From here on each evaluation of the
// variable first re-evaluates the node and adopts its result. Binding the
// variable to itself is refused, since that evaluation could never finish.
func (obj *Variable) Bind(node interfaces.Node) error {
	if node == interfaces.Node(obj) {
		return fmt.Errorf("can't bind variable %s to itself", obj.Name())
	}
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	obj.expr = node
	return nil
}

// Node returns the node this variable is bound to, or nil.
func (obj *Variable) Node() interfaces.Node {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	return obj.expr
}

// Eval returns the current value of this variable. If the variable is bound
// to a node, that node is re-evaluated first and its result stored as the
// variable's value.
func (obj *Variable) Eval() *types.Value {
	obj.mutex.Lock()
	expr := obj.expr
	obj.mutex.Unlock()
	if expr != nil {
		obj.Value.SetValue(expr.Eval())
	}
	return obj.Value.Copy()
}

// EvalAsBool evaluates this variable and coerces the result to a boolean.
func (obj *Variable) EvalAsBool() bool { return obj.Eval().EvalAsBool() }

// EvalAsInt evaluates this variable and coerces the result to an integer.
func (obj *Variable) EvalAsInt() int32 { return obj.Eval().EvalAsInt() }

// EvalAsFloat evaluates this variable and coerces the result to a float.
func (obj *Variable) EvalAsFloat() float64 { return obj.Eval().EvalAsFloat() }

// EvalAsTime evaluates this variable and coerces the result to a timestamp.
func (obj *Variable) EvalAsTime() uint64 { return obj.Eval().EvalAsTime() }

// Copy returns a copy of this variable. The value is copied, the binding is
// shared.
func (obj *Variable) Copy() *Variable {
	obj.mutex.Lock()
	name, expr := obj.name, obj.expr
	obj.mutex.Unlock()
	v := &Variable{name: name, expr: expr}
	v.Value.SetValue(&obj.Value)
	return v
}

// String returns a visual representation of this variable.
func (obj *Variable) String() string {
	return fmt.Sprintf("[%s = %s]", obj.Name(), obj.Value.String())
}

// Hash returns a stable hash of this variable, folding the name into the hash
// of the value.
func (obj *Variable) Hash() uint64 {
	return types.HashCombine(obj.Value.Hash(), types.HashString(obj.Name()))
}

// Cmp returns an error if the other variable isn't the same as this one. Two
// variables are the same if their names match and their values are equal.
func (obj *Variable) Cmp(v *Variable) error {
	if obj == nil || v == nil {
		return fmt.Errorf("cannot cmp to nil")
	}
	if obj.Name() != v.Name() {
		return fmt.Errorf("names differ")
	}
	if !obj.Value.Equals(&v.Value) {
		return fmt.Errorf("values differ")
	}
	return nil
}
