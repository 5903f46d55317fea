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
	funcs.Register("and", func() interfaces.Func { return &Bin{Kind: BinAnd} })
	funcs.Register("or", func() interfaces.Func { return &Bin{Kind: BinOr} })
	funcs.Register("not", func() interfaces.Func { return &Bin{Kind: BinNot} })
}

// BinKind is the discriminator which picks the logical operation an instance
// of Bin performs.
type BinKind int

const (
	// BinAnd is the short-circuiting conjunction.
	BinAnd BinKind = iota

	// BinOr is the short-circuiting disjunction.
	BinOr

	// BinNot is the unary negation.
	BinNot
)

// String returns a visual representation of this logical kind.
func (k BinKind) String() string {
	switch k {
	case BinAnd:
		return "and"
	case BinOr:
		return "or"
	case BinNot:
		return "not"
	}
	return "?"
}

// Bin is the family of logical operators. Every argument is read as a
// boolean with the usual truthiness coercion. The conjunction and the
// disjunction short-circuit, so arguments past the deciding one are never
// evaluated.
type Bin struct {
	Kind BinKind
}

// String returns a visual representation of this function.
func (obj *Bin) String() string { return "<" + obj.Kind.String() + ">" }

// Copy returns a new instance of this function.
func (obj *Bin) Copy() interfaces.Func { return &Bin{Kind: obj.Kind} }

// Hash returns a stable hash of this function.
func (obj *Bin) Hash() uint64 { return types.HashString(obj.Kind.String()) }

// Eval runs the function on the list of argument nodes. With no valid
// arguments the result is undefined, otherwise it is a boolean.
func (obj *Bin) Eval(args []interfaces.Node) *types.Value {
	valid := false
	for _, arg := range args {
		v := evalArg(arg)
		if v == nil || v.IsUndefined() {
			continue
		}
		valid = true
		b := v.EvalAsBool()
		switch obj.Kind {
		case BinAnd:
			if !b {
				return types.NewBool(false)
			}
		case BinOr:
			if b {
				return types.NewBool(true)
			}
		case BinNot:
			return types.NewBool(!b) // unary, first valid wins
		}
	}
	if !valid {
		return types.NewValue()
	}
	// and: nothing was falsy; or: nothing was truthy
	return types.NewBool(obj.Kind == BinAnd)
}
