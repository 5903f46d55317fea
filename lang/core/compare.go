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
	funcs.Register("==", func() interfaces.Func { return &Comp{Kind: CompEquals} })
	funcs.Register("!=", func() interfaces.Func { return &Comp{Kind: CompNotEquals} })
	funcs.Register("<", func() interfaces.Func { return &Comp{Kind: CompLessThan} })
	funcs.Register(">", func() interfaces.Func { return &Comp{Kind: CompGreaterThan} })
	funcs.Register("<=", func() interfaces.Func { return &Comp{Kind: CompLessOrEqual} })
	funcs.Register(">=", func() interfaces.Func { return &Comp{Kind: CompGreaterOrEqual} })
}

// CompKind is the discriminator which picks the comparison an instance of
// Comp performs.
type CompKind int

const (
	// CompEquals tests that every argument equals the first one.
	CompEquals CompKind = iota

	// CompNotEquals tests that no later argument equals the first one.
	CompNotEquals

	// CompLessThan tests a strictly increasing chain.
	CompLessThan

	// CompGreaterThan tests a strictly decreasing chain.
	CompGreaterThan

	// CompLessOrEqual tests a non-decreasing chain.
	CompLessOrEqual

	// CompGreaterOrEqual tests a non-increasing chain.
	CompGreaterOrEqual
)

// String returns a visual representation of this comparison kind.
func (k CompKind) String() string {
	switch k {
	case CompEquals:
		return "=="
	case CompNotEquals:
		return "!="
	case CompLessThan:
		return "<"
	case CompGreaterThan:
		return ">"
	case CompLessOrEqual:
		return "<="
	case CompGreaterOrEqual:
		return ">="
	}
	return "?"
}

// Comp is the family of comparison operators. The equality flavours compare
// everything against the first argument, and the ordering flavours walk the
// argument list as a chain, where each value must satisfy the relation
// against the previous pivot and then becomes the pivot itself. Mixed kinds
// are allowed: the right-hand side of each comparison is coerced into the
// kind of the left-hand side.
type Comp struct {
	Kind CompKind
}

// String returns a visual representation of this function.
func (obj *Comp) String() string { return "<" + obj.Kind.String() + ">" }

// Copy returns a new instance of this function.
func (obj *Comp) Copy() interfaces.Func { return &Comp{Kind: obj.Kind} }

// Hash returns a stable hash of this function.
func (obj *Comp) Hash() uint64 { return types.HashString(obj.Kind.String()) }

// Eval runs the function on the list of argument nodes. With no valid
// arguments the result is undefined, otherwise it is a boolean.
func (obj *Comp) Eval(args []interfaces.Node) *types.Value {
	vals := []*types.Value{}
	for _, arg := range args {
		v := evalArg(arg)
		if v == nil || v.IsUndefined() {
			continue
		}
		vals = append(vals, v)
	}
	if len(vals) == 0 {
		return types.NewValue()
	}

	ans := true
	pivot := vals[0]
	for _, v := range vals[1:] {
		switch obj.Kind {
		case CompEquals:
			ans = pivot.Matches(v)
		case CompNotEquals:
			ans = !pivot.Matches(v)
		case CompLessThan:
			ans = pivot.Less(v)
			pivot = v
		case CompGreaterThan:
			ans = pivot.Greater(v)
			pivot = v
		case CompLessOrEqual:
			ans = pivot.LessEq(v)
			pivot = v
		case CompGreaterOrEqual:
			ans = pivot.GreaterEq(v)
			pivot = v
		}
		if !ans {
			break
		}
	}
	return types.NewBool(ans)
}
