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

// Package parser implements the lisp-style language parser and the
// environment that goes with it. The parser takes a string as the "source"
// code and compiles it into an evaluation tree that can be calculated as many
// times as needed. It owns every node it produces: the functions and the
// variables live in named tables, the anonymous constants and the nested
// sub-expressions live in ordered pools, and the compiled root references
// into all of them.
package parser

import (
	"fmt"
	"sort"
	"sync"

	"github.com/drbobbeaty/LKit/lang/ast"
	_ "github.com/drbobbeaty/LKit/lang/core" // register the built-in functions
	"github.com/drbobbeaty/LKit/lang/funcs"
	"github.com/drbobbeaty/LKit/lang/interfaces"
	"github.com/drbobbeaty/LKit/lang/types"
	"github.com/drbobbeaty/LKit/util/errwrap"
)

// Parser owns the source, the tables, the pools and the compiled tree. Each
// of those has its own short lock, so work on one doesn't contend with work
// on another. The zero value is not useful: use New, which seeds the default
// functions and variables.
type Parser struct {
	// Debug turns on additional logging.
	Debug bool

	// Logf is the logger the parser sends its messages to. It may be nil.
	Logf func(format string, v ...interface{})

	src      string
	root     interfaces.Node // compiled tree, nil until compile runs
	srcMutex sync.Mutex      // guards src and root

	fcns      map[string]interfaces.Func
	fcnsMutex sync.Mutex

	vars      map[string]*ast.Variable
	varsMutex sync.Mutex

	consts     []*types.Value
	constMutex sync.Mutex

	subs      []*ast.Expr
	subsMutex sync.Mutex
}

// New creates a parser ready to take your source and compile it, with the
// default functions and variables already installed.
func New() *Parser {
	obj := &Parser{
		fcns: make(map[string]interfaces.Func),
		vars: make(map[string]*ast.Variable),
	}
	obj.Reset()
	return obj
}

// NewWithSource creates a parser holding the given source. The source is not
// compiled until the first call to Compile or Evaluate.
func NewWithSource(src string) *Parser {
	obj := New()
	obj.SetSource(src)
	return obj
}

// logf sends a message to the attached logger, if there is one.
func (obj *Parser) logf(format string, v ...interface{}) {
	if obj.Logf == nil {
		return
	}
	obj.Logf(format, v...)
}

// SetSource wipes out the old source code of this parser and replaces it with
// the supplied code. The compiled tree and the anonymous nodes it referenced
// are dropped, ready for the next compile; the variables and the functions
// are kept.
func (obj *Parser) SetSource(src string) {
	obj.srcMutex.Lock()
	obj.src = src
	obj.root = nil
	obj.srcMutex.Unlock()
	obj.clearConsts()
	obj.clearSubExprs()
}

// GetSource returns the currently active source code.
func (obj *Parser) GetSource() string {
	obj.srcMutex.Lock()
	defer obj.srcMutex.Unlock()
	return obj.src
}

// Variables returns a copy of the variable table. The variables themselves
// are the actual nodes, so be careful what you do with them.
func (obj *Parser) Variables() map[string]*ast.Variable {
	obj.varsMutex.Lock()
	defer obj.varsMutex.Unlock()
	m := make(map[string]*ast.Variable, len(obj.vars))
	for k, v := range obj.vars {
		m[k] = v
	}
	return m
}

// AddVariable adds a named value to the parser, or updates it if a variable
// of that name already exists. The update happens in place: the variable node
// keeps its identity, so any compiled expression holding it sees the new
// value on the next evaluation.
func (obj *Parser) AddVariable(name string, v *types.Value) {
	obj.varsMutex.Lock()
	defer obj.varsMutex.Unlock()
	if old, exists := obj.vars[name]; exists {
		old.Assign(v)
		return
	}
	obj.vars[name] = ast.NewVariableValue(name, v)
}

// AddVar adds a variable node to the parser. If one of that name already
// exists, it adopts the value of the argument and keeps its identity.
func (obj *Parser) AddVar(v *ast.Variable) error {
	if v == nil {
		return fmt.Errorf("can't add a nil variable")
	}
	name := v.Name()
	obj.varsMutex.Lock()
	defer obj.varsMutex.Unlock()
	if old, exists := obj.vars[name]; exists && old != v {
		old.Assign(&v.Value)
		return nil
	}
	obj.vars[name] = v
	return nil
}

// GetVariable evaluates the named variable and returns its value, or nil if
// no variable of that name exists.
func (obj *Parser) GetVariable(name string) *types.Value {
	obj.varsMutex.Lock()
	v, exists := obj.vars[name]
	obj.varsMutex.Unlock()
	if !exists {
		return nil
	}
	return v.Eval()
}

// RemoveVariable removes the named variable from the table if it's there, and
// says if it did. Removing a variable the compiled tree still references is a
// dicey proposition: the tree keeps seeing the old node, while the table
// forgets it. Use with care.
func (obj *Parser) RemoveVariable(name string) bool {
	obj.varsMutex.Lock()
	defer obj.varsMutex.Unlock()
	if _, exists := obj.vars[name]; !exists {
		return false
	}
	delete(obj.vars, name)
	return true
}

// ClearVariables empties the variable table.
func (obj *Parser) ClearVariables() {
	obj.varsMutex.Lock()
	defer obj.varsMutex.Unlock()
	obj.vars = make(map[string]*ast.Variable)
}

// UseDefaultVariables installs the variables most likely to be used by
// standard mathematical expressions.
func (obj *Parser) UseDefaultVariables() {
	obj.AddVariable("e", types.NewFloat(2.71828183))
	obj.AddVariable("pi", types.NewFloat(3.14159265))
}

// Functions returns a copy of the function table.
func (obj *Parser) Functions() map[string]interfaces.Func {
	obj.fcnsMutex.Lock()
	defer obj.fcnsMutex.Unlock()
	m := make(map[string]interfaces.Func, len(obj.fcns))
	for k, v := range obj.fcns {
		m[k] = v
	}
	return m
}

// AddFunction adds the named function to the table. If the name is already
// used, the argument replaces the existing function, which allows custom
// functionality under the same name in the scripts.
func (obj *Parser) AddFunction(name string, fn interfaces.Func) error {
	if fn == nil {
		return fmt.Errorf("can't add a nil function")
	}
	obj.fcnsMutex.Lock()
	defer obj.fcnsMutex.Unlock()
	obj.fcns[name] = fn
	return nil
}

// RemoveFunction removes the named function from the table if it's there, and
// says if it did.
func (obj *Parser) RemoveFunction(name string) bool {
	obj.fcnsMutex.Lock()
	defer obj.fcnsMutex.Unlock()
	if _, exists := obj.fcns[name]; !exists {
		return false
	}
	delete(obj.fcns, name)
	return true
}

// ClearFunctions empties the function table.
func (obj *Parser) ClearFunctions() {
	obj.fcnsMutex.Lock()
	defer obj.fcnsMutex.Unlock()
	obj.fcns = make(map[string]interfaces.Func)
}

// UseDefaultFunctions installs the built-in functions of the language. This
// does not include any user-supplied functions, but does include the basic
// functionality of the language.
func (obj *Parser) UseDefaultFunctions() {
	for _, name := range funcs.Names() {
		fn, err := funcs.Lookup(name)
		if err != nil {
			// a registered name always resolves
			continue
		}
		obj.AddFunction(name, fn)
	}
}

// Evaluate makes sure the source is compiled, then evaluates the tree and
// returns the final value. Everything is left in place, so additional
// evaluations are as quick as possible. Evaluation itself never fails: the
// anomalies, like a division by zero, come back as undefined values.
func (obj *Parser) Evaluate() (*types.Value, error) {
	if err := obj.Compile(); err != nil {
		return nil, err
	}
	obj.srcMutex.Lock()
	root := obj.root
	obj.srcMutex.Unlock()
	if root == nil {
		return types.NewValue(), nil
	}
	return root.Eval(), nil
}

// Clear empties everything for the parser and has it start as a blank slate:
// no source, no functions, no variables, no pools. This is not necessarily
// the state you want to use the parser in, but it is an important reference
// point to be able to return to.
func (obj *Parser) Clear() {
	obj.SetSource("")
	obj.ClearFunctions()
	obj.ClearVariables()
	obj.clearConsts()
	obj.clearSubExprs()
}

// Reset returns the parser to a new start state: everything cleared, and the
// default functions and variables installed.
func (obj *Parser) Reset() error {
	obj.Clear()
	obj.UseDefaultFunctions()
	obj.UseDefaultVariables()
	return nil
}

// lookUpVariable finds the variable registered under the given name, or
// creates a placeholder of that name in the table. It is up to the caller to
// assign a value to a placeholder before evaluation starts; until then it
// reads as undefined.
func (obj *Parser) lookUpVariable(name string) *ast.Variable {
	obj.varsMutex.Lock()
	defer obj.varsMutex.Unlock()
	if v, exists := obj.vars[name]; exists {
		return v
	}
	v := ast.NewVariable(name)
	obj.vars[name] = v
	return v
}

// lookUpFunction finds the function registered under the given name. Unlike
// the variables, there is no placeholder fallback: functions have to be
// defined before the code is parsed, so a nil return is the sign of an error.
func (obj *Parser) lookUpFunction(name string) interfaces.Func {
	obj.fcnsMutex.Lock()
	defer obj.fcnsMutex.Unlock()
	return obj.fcns[name]
}

// addConst adds a value to the pool of constants. No check is made for
// duplicates: it's a constant, it's in the pool, period.
func (obj *Parser) addConst(v *types.Value) {
	obj.constMutex.Lock()
	defer obj.constMutex.Unlock()
	obj.consts = append(obj.consts, v)
}

// clearConsts empties the pool of constants.
func (obj *Parser) clearConsts() {
	obj.constMutex.Lock()
	defer obj.constMutex.Unlock()
	obj.consts = nil
}

// addSubExpr adds an expression to the pool of sub-expressions.
func (obj *Parser) addSubExpr(e *ast.Expr) {
	obj.subsMutex.Lock()
	defer obj.subsMutex.Unlock()
	obj.subs = append(obj.subs, e)
}

// clearSubExprs empties the pool of sub-expressions.
func (obj *Parser) clearSubExprs() {
	obj.subsMutex.Lock()
	defer obj.subsMutex.Unlock()
	obj.subs = nil
}

// String returns a visual representation of this parser.
func (obj *Parser) String() string {
	return "<parser>"
}

// Hash returns a stable hash of this parser: the source, the constant pool,
// the variable table and the function table all fold in. The tables fold in
// name order so that the result doesn't depend on map iteration.
func (obj *Parser) Hash() uint64 {
	obj.srcMutex.Lock()
	ans := types.HashString(obj.src)
	obj.srcMutex.Unlock()

	obj.constMutex.Lock()
	for _, v := range obj.consts {
		ans = types.HashCombine(ans, v.Hash())
	}
	obj.constMutex.Unlock()

	for _, v := range sortedVars(obj.Variables()) {
		ans = types.HashCombine(ans, v.Hash())
	}
	fns := obj.Functions()
	for _, name := range sortedNames(fns) {
		ans = types.HashCombine(ans, types.HashString(name))
		ans = types.HashCombine(ans, fns[name].Hash())
	}
	return ans
}

// Cmp returns an error if the other parser isn't the same as this one: same
// source, and element-wise equal constants, variables and functions.
func (obj *Parser) Cmp(p *Parser) error {
	if obj == nil || p == nil {
		return fmt.Errorf("cannot cmp to nil")
	}
	if obj == p {
		return nil
	}
	if obj.GetSource() != p.GetSource() {
		return fmt.Errorf("sources differ")
	}

	c1, c2 := obj.constsCopy(), p.constsCopy()
	if len(c1) != len(c2) {
		return fmt.Errorf("constant pools have different lengths")
	}
	for i := range c1 {
		if !c1[i].Equals(c2[i]) {
			return fmt.Errorf("constant %d differs", i)
		}
	}

	v1, v2 := obj.Variables(), p.Variables()
	if len(v1) != len(v2) {
		return fmt.Errorf("variable tables have different lengths")
	}
	for name, v := range v1 {
		w, exists := v2[name]
		if !exists {
			return fmt.Errorf("variable %s is missing", name)
		}
		if err := v.Cmp(w); err != nil {
			return errwrap.Wrapf(err, "variable %s did not cmp", name)
		}
	}

	f1, f2 := obj.Functions(), p.Functions()
	if len(f1) != len(f2) {
		return fmt.Errorf("function tables have different lengths")
	}
	for name, f := range f1 {
		g, exists := f2[name]
		if !exists {
			return fmt.Errorf("function %s is missing", name)
		}
		if f.Hash() != g.Hash() {
			return fmt.Errorf("function %s did not cmp", name)
		}
	}
	return nil
}

// constsCopy returns a copy of the constant pool slice.
func (obj *Parser) constsCopy() []*types.Value {
	obj.constMutex.Lock()
	defer obj.constMutex.Unlock()
	return append([]*types.Value{}, obj.consts...)
}

// sortedNames returns the keys of a function table in name order.
func sortedNames(m map[string]interfaces.Func) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sortedVars returns the variables of a table in name order.
func sortedVars(m map[string]*ast.Variable) []*ast.Variable {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	vars := make([]*ast.Variable, 0, len(names))
	for _, name := range names {
		vars = append(vars, m[name])
	}
	return vars
}
