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

package types

// There are times that values will be used in mathematical expressions by
// themselves, and these functions make it easy to do simple `a op b` coding
// on them. Each one copies the first operand and folds the second into the
// copy, which is why the result always carries the first operand's kind.

// Add returns a new value holding a plus b.
func Add(a, b *Value) *Value {
	v := a.Copy()
	v.Add(b)
	return v
}

// Sub returns a new value holding a minus b.
func Sub(a, b *Value) *Value {
	v := a.Copy()
	v.Sub(b)
	return v
}

// Mul returns a new value holding a times b.
func Mul(a, b *Value) *Value {
	v := a.Copy()
	v.Mul(b)
	return v
}

// Div returns a new value holding a divided by b.
func Div(a, b *Value) *Value {
	v := a.Copy()
	v.Div(b)
	return v
}
