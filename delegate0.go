// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import "unsafe"

// Delegate0 is the niladic delegate: a fixed-size wrapper for a callable of
// shape func() R. It mirrors [Delegate] exactly; see there for the storage
// and binding contract.
type Delegate0[R any] struct {
	fn   func(*payload) R
	data payload
	key  uintptr
}

func invokeFunc0[R any](p *payload) R {
	return loadFunc0[R](p)()
}

// Connect binds a plain function or small function object.
func (d *Delegate0[R]) Connect(fn func() R) {
	if fn == nil {
		panic("delegate: connect of nil function")
	}
	d.data = payload{ptr: funcWord0(fn)}
	d.key = candidate(fn)
	d.fn = invokeFunc0[R]
}

// ConnectMethod0 binds a niladic method together with its receiver.
func ConnectMethod0[T, R any](d *Delegate0[R], method func(*T) R, recv *T) {
	if method == nil {
		panic("delegate: connect of nil method")
	}
	d.data = payload{ptr: unsafe.Pointer(recv)}
	d.key = candidate(method)
	d.fn = func(p *payload) R {
		return method((*T)(p.ptr))
	}
}

// ConnectValue0 binds a unary function curried down to a thunk.
func ConnectValue0[V Scalar, R any](d *Delegate0[R], fn func(V) R, v V) {
	if fn == nil {
		panic("delegate: connect of nil function")
	}
	d.data = payload{bits: scalarWord(v)}
	d.key = candidate(fn)
	d.fn = func(p *payload) R {
		return fn(scalarOf[V](p))
	}
}

// Reset restores the unconnected state.
func (d *Delegate0[R]) Reset() {
	*d = Delegate0[R]{}
}

// Instance returns the pointer lane of the slot, unconditionally.
// Meaningful only after [ConnectMethod0]; see [Delegate.Instance].
func (d *Delegate0[R]) Instance() unsafe.Pointer {
	return d.data.ptr
}

// Invoke calls the bound callable. Panics if the delegate is unconnected.
func (d *Delegate0[R]) Invoke() R {
	if d.fn == nil {
		panic("delegate: invoke of unconnected delegate")
	}
	return d.fn(&d.data)
}

// TryInvoke attempts to call the bound callable.
// Returns (result, true) on success, or (zero, false) if unconnected.
func (d *Delegate0[R]) TryInvoke() (R, bool) {
	if d.fn == nil {
		var zero R
		return zero, false
	}
	return d.fn(&d.data), true
}

// Connected reports whether the delegate holds an active binding.
func (d *Delegate0[R]) Connected() bool {
	return d.fn != nil
}

// Equal reports whether both delegates are bound to the same function or
// method, ignoring receivers and curried values.
func (d *Delegate0[R]) Equal(other *Delegate0[R]) bool {
	return d.key == other.key
}
