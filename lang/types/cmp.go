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

// This file holds the comparisons. There are two flavours of equality: Equals
// requires the two kinds to match, which is what keeps the equal-implies-same-
// hash property; Matches first coerces the right-hand side into the left-hand
// side's kind, which is what the == operator in the language uses so that
// `(== 1 1.0)` is true. The orderings always coerce. Undefined compares equal
// only to undefined, and every ordering against undefined is false.

// Equals returns true if the other value holds the same kind and the same
// payload as this one.
func (obj *Value) Equals(v *Value) bool {
	if v == nil {
		return false
	}
	if obj == v {
		return true
	}
	o := v.snapshot()
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	if obj.kind != o.kind {
		return false
	}
	switch obj.kind {
	case KindBool:
		return obj.b == o.b
	case KindInt:
		return obj.i == o.i
	case KindFloat:
		return obj.f == o.f
	case KindTime:
		return obj.t == o.t
	}
	return true // both undefined
}

// NotEquals is the negation of Equals.
func (obj *Value) NotEquals(v *Value) bool {
	return !obj.Equals(v)
}

// Matches returns true if the other value, coerced into this value's kind,
// compares equal to it. Undefined matches only undefined.
func (obj *Value) Matches(v *Value) bool {
	if v == nil {
		return false
	}
	if obj == v {
		return true
	}
	o := v.snapshot()
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	if obj.kind == KindUnknown || o.kind == KindUnknown {
		return obj.kind == o.kind
	}
	switch obj.kind {
	case KindBool:
		return obj.b == o.evalAsBool()
	case KindInt:
		return obj.i == o.evalAsInt()
	case KindFloat:
		return obj.f == o.evalAsFloat()
	case KindTime:
		return obj.t == o.evalAsTime()
	}
	return false
}

// Less returns true if this value is smaller than the other one, with the
// other coerced into this value's kind first.
func (obj *Value) Less(v *Value) bool {
	if v == nil || obj == v {
		return false
	}
	o := v.snapshot()
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	if o.kind == KindUnknown {
		return false
	}
	switch obj.kind {
	case KindBool:
		return !obj.b && o.evalAsBool()
	case KindInt:
		return obj.i < o.evalAsInt()
	case KindFloat:
		return obj.f < o.evalAsFloat()
	case KindTime:
		return obj.t < o.evalAsTime()
	}
	return false
}

// Greater returns true if this value is bigger than the other one, with the
// other coerced into this value's kind first.
func (obj *Value) Greater(v *Value) bool {
	if v == nil || obj == v {
		return false
	}
	o := v.snapshot()
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	if o.kind == KindUnknown {
		return false
	}
	switch obj.kind {
	case KindBool:
		return obj.b && !o.evalAsBool()
	case KindInt:
		return obj.i > o.evalAsInt()
	case KindFloat:
		return obj.f > o.evalAsFloat()
	case KindTime:
		return obj.t > o.evalAsTime()
	}
	return false
}

// LessEq returns true if this value is not bigger than the other one. Both
// sides must be defined.
func (obj *Value) LessEq(v *Value) bool {
	if v == nil {
		return false
	}
	if obj == v {
		return !obj.IsUndefined()
	}
	if obj.IsUndefined() || v.IsUndefined() {
		return false
	}
	return !obj.Greater(v)
}

// GreaterEq returns true if this value is not smaller than the other one.
// Both sides must be defined.
func (obj *Value) GreaterEq(v *Value) bool {
	if v == nil {
		return false
	}
	if obj == v {
		return !obj.IsUndefined()
	}
	if obj.IsUndefined() || v.IsUndefined() {
		return false
	}
	return !obj.Less(v)
}

// The raw-typed comparison helpers, for hosts that hold native values.

// MatchesBool compares this value against a raw boolean.
func (obj *Value) MatchesBool(v bool) bool { return obj.Matches(NewBool(v)) }

// MatchesInt compares this value against a raw integer.
func (obj *Value) MatchesInt(v int32) bool { return obj.Matches(NewInt(v)) }

// MatchesFloat compares this value against a raw float.
func (obj *Value) MatchesFloat(v float64) bool { return obj.Matches(NewFloat(v)) }

// MatchesTime compares this value against a raw timestamp.
func (obj *Value) MatchesTime(v uint64) bool { return obj.Matches(NewTime(v)) }

// LessBool orders this value against a raw boolean.
func (obj *Value) LessBool(v bool) bool { return obj.Less(NewBool(v)) }

// LessInt orders this value against a raw integer.
func (obj *Value) LessInt(v int32) bool { return obj.Less(NewInt(v)) }

// LessFloat orders this value against a raw float.
func (obj *Value) LessFloat(v float64) bool { return obj.Less(NewFloat(v)) }

// LessTime orders this value against a raw timestamp.
func (obj *Value) LessTime(v uint64) bool { return obj.Less(NewTime(v)) }

// GreaterBool orders this value against a raw boolean.
func (obj *Value) GreaterBool(v bool) bool { return obj.Greater(NewBool(v)) }

// GreaterInt orders this value against a raw integer.
func (obj *Value) GreaterInt(v int32) bool { return obj.Greater(NewInt(v)) }

// GreaterFloat orders this value against a raw float.
func (obj *Value) GreaterFloat(v float64) bool { return obj.Greater(NewFloat(v)) }

// GreaterTime orders this value against a raw timestamp.
func (obj *Value) GreaterTime(v uint64) bool { return obj.Greater(NewTime(v)) }
