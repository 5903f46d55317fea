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

package core

import (
	"github.com/drbobbeaty/LKit/lang/funcs"
	"github.com/drbobbeaty/LKit/lang/interfaces"
	"github.com/drbobbeaty/LKit/lang/types"
)

func init() {
	funcs.Register("+", func() interfaces.Func { return &Sum{} })
	funcs.Register("-", func() interfaces.Func { return &Diff{} })
	funcs.Register("*", func() interfaces.Func { return &Prod{} })
	funcs.Register("/", func() interfaces.Func { return &Quot{} })
}

// Sum adds up the values of the arguments. The answer is seeded with the
// first valid argument, so its kind is the kind of that argument, and every
// later argument is coerced into it before being added.
type Sum struct{}

// String returns a visual representation of this function.
func (obj *Sum) String() string { return "<+>" }

// Copy returns a new instance of this function.
func (obj *Sum) Copy() interfaces.Func { return &Sum{} }

// Hash returns a stable hash of this function.
func (obj *Sum) Hash() uint64 { return types.HashString("+") }

// Eval runs the function on the list of argument nodes.
func (obj *Sum) Eval(args []interfaces.Node) *types.Value {
	return seedFold(args, func(ans, v *types.Value) {
		ans.Add(v)
	})
}

// Diff subtracts the later arguments from the first one. With a single
// argument it negates instead.
type Diff struct{}

// String returns a visual representation of this function.
func (obj *Diff) String() string { return "<->" }

// Copy returns a new instance of this function.
func (obj *Diff) Copy() interfaces.Func { return &Diff{} }

// Hash returns a stable hash of this function.
func (obj *Diff) Hash() uint64 { return types.HashString("-") }

// Eval runs the function on the list of argument nodes.
func (obj *Diff) Eval(args []interfaces.Node) *types.Value {
	list := []interfaces.Node{}
	for _, arg := range args {
		if arg == nil {
			continue
		}
		list = append(list, arg)
	}
	if len(list) == 1 { // the unary negation case
		ans := types.NewValue()
		v := list[0].Eval()
		if v.IsUndefined() {
			return ans
		}
		ans.Sub(v) // subtracting from undefined adopts the negation
		return ans
	}
	return seedFold(list, func(ans, v *types.Value) {
		ans.Sub(v)
	})
}

// Prod multiplies the values of the arguments together, seeded by the first
// valid one.
type Prod struct{}

// String returns a visual representation of this function.
func (obj *Prod) String() string { return "<*>" }

// Copy returns a new instance of this function.
func (obj *Prod) Copy() interfaces.Func { return &Prod{} }

// Hash returns a stable hash of this function.
func (obj *Prod) Hash() uint64 { return types.HashString("*") }

// Eval runs the function on the list of argument nodes.
func (obj *Prod) Eval(args []interfaces.Node) *types.Value {
	return seedFold(args, func(ans, v *types.Value) {
		ans.Mul(v)
	})
}

// Quot divides the first valid argument by each of the later ones. A division
// by zero clears the answer to undefined, and it stays undefined from there.
type Quot struct{}

// String returns a visual representation of this function.
func (obj *Quot) String() string { return "</>" }

// Copy returns a new instance of this function.
func (obj *Quot) Copy() interfaces.Func { return &Quot{} }

// Hash returns a stable hash of this function.
func (obj *Quot) Hash() uint64 { return types.HashString("/") }

// Eval runs the function on the list of argument nodes.
func (obj *Quot) Eval(args []interfaces.Node) *types.Value {
	return seedFold(args, func(ans, v *types.Value) {
		ans.Div(v)
	})
}
