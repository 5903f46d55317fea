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
	funcs.Register("max", func() interfaces.Func { return &Max{} })
	funcs.Register("min", func() interfaces.Func { return &Min{} })
}

// Max takes the largest value in the argument list and returns it. Nil
// references and undefined values are skipped, and the answer carries the
// kind of the winning argument.
type Max struct{}

// String returns a visual representation of this function.
func (obj *Max) String() string { return "<max>" }

// Copy returns a new instance of this function.
func (obj *Max) Copy() interfaces.Func { return &Max{} }

// Hash returns a stable hash of this function.
func (obj *Max) Hash() uint64 { return types.HashString("max") }

// Eval runs the function on the list of argument nodes.
func (obj *Max) Eval(args []interfaces.Node) *types.Value {
	return seedFold(args, func(ans, v *types.Value) {
		if v.Greater(ans) {
			ans.SetValue(v)
		}
	})
}

// Min takes the smallest value in the argument list and returns it. Nil
// references and undefined values are skipped, and the answer carries the
// kind of the winning argument.
type Min struct{}

// String returns a visual representation of this function.
func (obj *Min) String() string { return "<min>" }

// Copy returns a new instance of this function.
func (obj *Min) Copy() interfaces.Func { return &Min{} }

// Hash returns a stable hash of this function.
func (obj *Min) Hash() uint64 { return types.HashString("min") }

// Eval runs the function on the list of argument nodes.
func (obj *Min) Eval(args []interfaces.Node) *types.Value {
	return seedFold(args, func(ans, v *types.Value) {
		if v.Less(ans) {
			ans.SetValue(v)
		}
	})
}
