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

// Package interfaces contains the common interfaces that the different parts
// of the language all share. It should not contain any implementations.
package interfaces

import (
	"fmt"

	"github.com/drbobbeaty/LKit/lang/types"
)

// Node is any evaluable element in the tree that the parser builds up. The
// constants, the variables, and the expressions all satisfy this interface.
// Evaluating a node returns a fresh snapshot of its current scalar value, so
// the caller is free to mutate the result without disturbing the tree.
type Node interface {
	fmt.Stringer // String() string (for display purposes)

	// Eval computes the current value of this node and returns a copy.
	Eval() *types.Value

	// Hash returns a stable hash of this node. Two nodes that are equal
	// must hash to the same value.
	Hash() uint64
}

// Func is a named operator in the language. It receives the ordered list of
// argument nodes from the expression that holds it, and produces a single
// scalar result. Implementations are expected to evaluate the argument nodes
// themselves, which lets the logical operators short-circuit.
type Func interface {
	fmt.Stringer // String() string (for display purposes)

	// Eval runs the function on the list of argument nodes. Nil entries in
	// the list are skipped, they are not an error.
	Eval(args []Node) *types.Value

	// Copy returns a new instance of this function.
	Copy() Func

	// Hash returns a stable hash of this function. Two functions that are
	// equal must hash to the same value.
	Hash() uint64
}
