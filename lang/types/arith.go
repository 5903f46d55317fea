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

// This file holds the destination-typed compound arithmetic. The target's
// kind is preserved and the source is coerced into it, with two exceptions:
// an undefined target adopts the source on += and -= (negated for the
// latter), and a division by a zero source clears the target back to
// undefined. The booleans get the field-arithmetic treatment: xor for sums
// and differences, and for products, xnor for quotients.
//
// The source value is snapshotted before the target is locked, so at no point
// are two value locks held at once.

// Add folds another value into this one with the += semantics. An undefined
// source leaves the target unchanged.
func (obj *Value) Add(v *Value) {
	if v == nil {
		return
	}
	o := v.snapshot()
	switch o.kind {
	case KindBool:
		obj.AddBool(o.b)
	case KindInt:
		obj.AddInt(o.i)
	case KindFloat:
		obj.AddFloat(o.f)
	case KindTime:
		obj.AddTime(o.t)
	}
}

// AddBool folds a raw boolean into this value with the += semantics.
func (obj *Value) AddBool(v bool) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	switch obj.kind {
	case KindUnknown:
		obj.setBool(v)
	case KindBool:
		obj.b = obj.b != v // xor
	case KindInt:
		obj.i += b2i(v)
	case KindFloat:
		obj.f += b2f(v)
	case KindTime:
		obj.t += b2u(v)
	}
}

// AddInt folds a raw integer into this value with the += semantics.
func (obj *Value) AddInt(v int32) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	switch obj.kind {
	case KindUnknown:
		obj.setInt(v)
	case KindBool:
		obj.b = (b2i(obj.b) + v) != 0
	case KindInt:
		obj.i += v
	case KindFloat:
		obj.f += float64(v)
	case KindTime:
		obj.t += uint64(v)
	}
}

// AddFloat folds a raw float into this value with the += semantics.
func (obj *Value) AddFloat(v float64) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	switch obj.kind {
	case KindUnknown:
		obj.setFloat(v)
	case KindBool:
		obj.b = (b2f(obj.b) + v) != 0.0
	case KindInt:
		obj.i += int32(v)
	case KindFloat:
		obj.f += v
	case KindTime:
		obj.t = uint64(float64(obj.t) + v)
	}
}

// AddTime folds a raw timestamp into this value with the += semantics.
func (obj *Value) AddTime(v uint64) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	switch obj.kind {
	case KindUnknown:
		obj.setTime(v)
	case KindBool:
		obj.b = (b2u(obj.b) + v) != 0
	case KindInt:
		obj.i += int32(v)
	case KindFloat:
		obj.f += float64(v)
	case KindTime:
		obj.t += v
	}
}

// Sub folds another value into this one with the -= semantics. An undefined
// source leaves the target unchanged, and an undefined target adopts the
// negation of the source.
func (obj *Value) Sub(v *Value) {
	if v == nil {
		return
	}
	o := v.snapshot()
	switch o.kind {
	case KindBool:
		obj.SubBool(o.b)
	case KindInt:
		obj.SubInt(o.i)
	case KindFloat:
		obj.SubFloat(o.f)
	case KindTime:
		obj.SubTime(o.t)
	}
}

// SubBool folds a raw boolean into this value with the -= semantics.
func (obj *Value) SubBool(v bool) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	switch obj.kind {
	case KindUnknown:
		obj.setBool(!v)
	case KindBool:
		obj.b = obj.b != v // xor
	case KindInt:
		obj.i -= b2i(v)
	case KindFloat:
		obj.f -= b2f(v)
	case KindTime:
		obj.t -= b2u(v)
	}
}

// SubInt folds a raw integer into this value with the -= semantics.
func (obj *Value) SubInt(v int32) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	switch obj.kind {
	case KindUnknown:
		obj.setInt(-v)
	case KindBool:
		obj.b = (b2i(obj.b) - v) != 0
	case KindInt:
		obj.i -= v
	case KindFloat:
		obj.f -= float64(v)
	case KindTime:
		obj.t -= uint64(v)
	}
}

// SubFloat folds a raw float into this value with the -= semantics.
func (obj *Value) SubFloat(v float64) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	switch obj.kind {
	case KindUnknown:
		obj.setFloat(-v)
	case KindBool:
		obj.b = (b2f(obj.b) - v) != 0.0
	case KindInt:
		obj.i -= int32(v)
	case KindFloat:
		obj.f -= v
	case KindTime:
		obj.t = uint64(float64(obj.t) - v)
	}
}

// SubTime folds a raw timestamp into this value with the -= semantics.
func (obj *Value) SubTime(v uint64) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	switch obj.kind {
	case KindUnknown:
		obj.setTime(-v) // two's complement wrap
	case KindBool:
		obj.b = (b2u(obj.b) - v) != 0
	case KindInt:
		obj.i -= int32(v)
	case KindFloat:
		obj.f -= float64(v)
	case KindTime:
		obj.t -= v
	}
}

// Mul folds another value into this one with the *= semantics. An undefined
// operand on either side leaves the target unchanged.
func (obj *Value) Mul(v *Value) {
	if v == nil {
		return
	}
	o := v.snapshot()
	switch o.kind {
	case KindBool:
		obj.MulBool(o.b)
	case KindInt:
		obj.MulInt(o.i)
	case KindFloat:
		obj.MulFloat(o.f)
	case KindTime:
		obj.MulTime(o.t)
	}
}

// MulBool folds a raw boolean into this value with the *= semantics.
func (obj *Value) MulBool(v bool) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	switch obj.kind {
	case KindBool:
		obj.b = obj.b && v
	case KindInt:
		obj.i *= b2i(v)
	case KindFloat:
		obj.f *= b2f(v)
	case KindTime:
		obj.t *= b2u(v)
	}
}

// MulInt folds a raw integer into this value with the *= semantics.
func (obj *Value) MulInt(v int32) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	switch obj.kind {
	case KindBool:
		obj.b = obj.b && (v != 0)
	case KindInt:
		obj.i *= v
	case KindFloat:
		obj.f *= float64(v)
	case KindTime:
		obj.t *= uint64(v)
	}
}

// MulFloat folds a raw float into this value with the *= semantics.
func (obj *Value) MulFloat(v float64) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	switch obj.kind {
	case KindBool:
		obj.b = obj.b && (v != 0.0)
	case KindInt:
		obj.i *= int32(v)
	case KindFloat:
		obj.f *= v
	case KindTime:
		obj.t = uint64(float64(obj.t) * v)
	}
}

// MulTime folds a raw timestamp into this value with the *= semantics.
func (obj *Value) MulTime(v uint64) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	switch obj.kind {
	case KindBool:
		obj.b = obj.b && (v != 0)
	case KindInt:
		obj.i *= int32(v)
	case KindFloat:
		obj.f *= float64(v)
	case KindTime:
		obj.t *= v
	}
}

// Div folds another value into this one with the /= semantics. Division by a
// zero-valued source clears the target to undefined, as does an undefined
// source: undefined-in means undefined-out here.
func (obj *Value) Div(v *Value) {
	if v == nil {
		return
	}
	o := v.snapshot()
	switch o.kind {
	case KindUnknown:
		obj.Clear()
	case KindBool:
		obj.DivBool(o.b)
	case KindInt:
		obj.DivInt(o.i)
	case KindFloat:
		obj.DivFloat(o.f)
	case KindTime:
		obj.DivTime(o.t)
	}
}

// DivBool folds a raw boolean into this value with the /= semantics.
func (obj *Value) DivBool(v bool) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	switch obj.kind {
	case KindBool:
		obj.b = obj.b == v // xnor
	case KindInt, KindFloat, KindTime:
		if !v {
			obj.clear()
		}
		// dividing by true is dividing by one
	}
}

// DivInt folds a raw integer into this value with the /= semantics.
func (obj *Value) DivInt(v int32) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	if v == 0 && obj.kind != KindUnknown {
		obj.clear()
		return
	}
	switch obj.kind {
	case KindBool:
		obj.b = (b2i(obj.b) / v) != 0
	case KindInt:
		obj.i /= v
	case KindFloat:
		obj.f /= float64(v)
	case KindTime:
		obj.t = uint64(float64(obj.t) / float64(v))
	}
}

// DivFloat folds a raw float into this value with the /= semantics.
func (obj *Value) DivFloat(v float64) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	if v == 0.0 && obj.kind != KindUnknown {
		obj.clear()
		return
	}
	switch obj.kind {
	case KindBool:
		obj.b = (b2f(obj.b) / v) != 0.0
	case KindInt:
		obj.i = int32(float64(obj.i) / v)
	case KindFloat:
		obj.f /= v
	case KindTime:
		obj.t = uint64(float64(obj.t) / v)
	}
}

// DivTime folds a raw timestamp into this value with the /= semantics.
func (obj *Value) DivTime(v uint64) {
	obj.mutex.Lock()
	defer obj.mutex.Unlock()
	if v == 0 && obj.kind != KindUnknown {
		obj.clear()
		return
	}
	switch obj.kind {
	case KindBool:
		obj.b = (b2u(obj.b) / v) != 0
	case KindInt:
		obj.i = int32(float64(obj.i) / float64(v))
	case KindFloat:
		obj.f /= float64(v)
	case KindTime:
		obj.t /= v
	}
}
