// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import "unsafe"

// Delegate2 is the binary delegate: a fixed-size wrapper for a callable of
// shape func(A, B) R. It mirrors [Delegate] exactly; see there for the
// storage and binding contract.
type Delegate2[A, B, R any] struct {
	fn   func(*payload, A, B) R
	data payload
	key  uintptr
}

func invokeFunc2[A, B, R any](p *payload, a A, b B) R {
	return loadFunc2[A, B, R](p)(a, b)
}

// Connect binds a plain function or small function object.
func (d *Delegate2[A, B, R]) Connect(fn func(A, B) R) {
	if fn == nil {
		panic("delegate: connect of nil function")
	}
	d.data = payload{ptr: funcWord2(fn)}
	d.key = candidate(fn)
	d.fn = invokeFunc2[A, B, R]
}

// ConnectMethod2 binds a binary method together with its receiver.
func ConnectMethod2[T, A, B, R any](d *Delegate2[A, B, R], method func(*T, A, B) R, recv *T) {
	if method == nil {
		panic("delegate: connect of nil method")
	}
	d.data = payload{ptr: unsafe.Pointer(recv)}
	d.key = candidate(method)
	d.fn = func(p *payload, a A, b B) R {
		return method((*T)(p.ptr), a, b)
	}
}

// ConnectValue2 binds a ternary function curried with a leading scalar.
func ConnectValue2[V Scalar, A, B, R any](d *Delegate2[A, B, R], fn func(V, A, B) R, v V) {
	if fn == nil {
		panic("delegate: connect of nil function")
	}
	d.data = payload{bits: scalarWord(v)}
	d.key = candidate(fn)
	d.fn = func(p *payload, a A, b B) R {
		return fn(scalarOf[V](p), a, b)
	}
}

// Reset restores the unconnected state.
func (d *Delegate2[A, B, R]) Reset() {
	*d = Delegate2[A, B, R]{}
}

// Instance returns the pointer lane of the slot, unconditionally.
// Meaningful only after [ConnectMethod2]; see [Delegate.Instance].
func (d *Delegate2[A, B, R]) Instance() unsafe.Pointer {
	return d.data.ptr
}

// Invoke calls the bound callable with the given arguments.
// Panics if the delegate is unconnected.
func (d *Delegate2[A, B, R]) Invoke(a A, b B) R {
	if d.fn == nil {
		panic("delegate: invoke of unconnected delegate")
	}
	return d.fn(&d.data, a, b)
}

// TryInvoke attempts to call the bound callable.
// Returns (result, true) on success, or (zero, false) if unconnected.
func (d *Delegate2[A, B, R]) TryInvoke(a A, b B) (R, bool) {
	if d.fn == nil {
		var zero R
		return zero, false
	}
	return d.fn(&d.data, a, b), true
}

// Connected reports whether the delegate holds an active binding.
func (d *Delegate2[A, B, R]) Connected() bool {
	return d.fn != nil
}

// Equal reports whether both delegates are bound to the same function or
// method, ignoring receivers and curried values.
func (d *Delegate2[A, B, R]) Equal(other *Delegate2[A, B, R]) bool {
	return d.key == other.key
}
