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

import (
	"hash/maphash"
)

// hashSeed is the per-process seed that every hash in the system shares, so
// that equal things hash equal for the lifetime of the process.
var hashSeed = maphash.MakeSeed()

// HashString hashes a string with the shared seed. The names of variables and
// functions go through this.
func HashString(s string) uint64 {
	return maphash.Comparable(hashSeed, s)
}

// HashCombine folds a new hash into an existing one. The mixing constant and
// shifts are the usual boost-style combiner.
func HashCombine(seed, h uint64) uint64 {
	return seed ^ (h + 0x9e3779b97f4a7c15 + (seed << 6) + (seed >> 2))
}

// Hash returns a stable hash of this value. Two equal values hash to the same
// result, and the undefined value hashes to a fixed sentinel of zero.
func (obj *Value) Hash() uint64 {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	switch obj.kind {
	case KindBool:
		return maphash.Comparable(hashSeed, obj.b)
	case KindInt:
		return maphash.Comparable(hashSeed, obj.i)
	case KindFloat:
		return maphash.Comparable(hashSeed, obj.f)
	case KindTime:
		return maphash.Comparable(hashSeed, obj.t)
	}
	return 0
}
