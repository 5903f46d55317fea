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

// Package core contains the built-in functions of the language: the
// arithmetic folds, the comparison chains, and the logical operators. Each
// one registers itself into the funcs registry at init time, so importing
// this package (usually for side effect) is what makes the default function
// table available.
package core

import (
	"github.com/drbobbeaty/LKit/lang/interfaces"
	"github.com/drbobbeaty/LKit/lang/types"
)

// evalArg evaluates a single argument node. A nil node reference evaluates to
// nil, which the callers skip.
func evalArg(arg interfaces.Node) *types.Value {
	if arg == nil {
		return nil
	}
	return arg.Eval()
}

// seedFold finds the first valid (non-nil, defined) argument, copies its
// value as the running answer, and then hands every following valid value to
// the fold function. This is the shared shape of the arithmetic operators,
// and it is what gives them the first-operand-dominates typing: the answer
// keeps the kind of the seed. If no argument is valid, the result stays
// undefined.
func seedFold(args []interfaces.Node, fold func(ans, v *types.Value)) *types.Value {
	ans := types.NewValue()
	seeded := false // the answer can go undefined mid-fold, so track this
	for _, arg := range args {
		v := evalArg(arg)
		if v == nil || v.IsUndefined() {
			continue
		}
		if !seeded {
			ans.SetValue(v) // the seed
			seeded = true
			continue
		}
		fold(ans, v)
	}
	return ans
}
