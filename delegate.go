// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import (
	"unsafe"
)

// Delegate is a fixed-size wrapper for a single callable of shape func(A) R.
//
// A delegate stores the bound payload inline — never on the heap — and routes
// every call through one stored trampoline. The trampoline is fixed at bind
// time and is the only state distinguishing what is bound: plain function,
// method with receiver, or curried function.
//
// The zero value is a valid unconnected delegate. A delegate never owns the
// receiver or closure it points at; the caller must keep the target alive for
// as long as the delegate may be invoked.
type Delegate[A, R any] struct {
	fn   func(*payload, A) R
	data payload
	key  uintptr
}

// invokeFunc is the shared trampoline for function bindings.
// Named generic function produces a static funcval per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func invokeFunc[A, R any](p *payload, a A) R {
	return loadFunc[A, R](p)(a)
}

// candidate returns the bind-time identity of a callable: the code pointer
// in the first word of its funcval. Two func values referring to the same
// function or method expression share it regardless of captured state.
// F must be a func type; the read never allocates, which keeps Connect of a
// plain function allocation-free.
func candidate[F any](fn F) uintptr {
	fv := *(*unsafe.Pointer)(unsafe.Pointer(&fn))
	return *(*uintptr)(fv)
}

// Connect binds a plain function or a small function object to the delegate.
//
// In Go both arrive as a func value, itself exactly one pointer word, so the
// funcval goes in the slot and a shared static trampoline reinterprets it
// back at call time. A closure's captured state lives behind that word; the
// delegate does not copy or own it.
//
// Connecting a plain function does not allocate.
func (d *Delegate[A, R]) Connect(fn func(A) R) {
	if fn == nil {
		panic("delegate: connect of nil function")
	}
	d.data = payload{ptr: funcWord(fn)}
	d.key = candidate(fn)
	d.fn = invokeFunc[A, R]
}

// ConnectMethod binds a method to the delegate together with its receiver,
// given as a method expression such as (*Counter).Add.
//
// The receiver pointer is the stored payload and the trampoline reinterprets
// it back to *T at call time. The delegate is not responsible for the
// receiver: its lifetime must outlast every invocation.
//
// The same shape serves a free function curried with a leading pointer —
// both are a func(*T, A) R plus a *T.
//
// This is a top-level function because Go methods cannot introduce the
// receiver type parameter.
func ConnectMethod[T, A, R any](d *Delegate[A, R], method func(*T, A) R, recv *T) {
	if method == nil {
		panic("delegate: connect of nil method")
	}
	d.data = payload{ptr: unsafe.Pointer(recv)}
	d.key = candidate(method)
	d.fn = func(p *payload, a A) R {
		return method((*T)(p.ptr), a)
	}
}

// ConnectValue binds a function curried with a leading scalar value.
//
// The value's bytes are copied into the slot and the trampoline reinterprets
// them back as V before each call. The [Scalar] constraint is the size and
// triviality check: only word-sized trivially copyable types are members.
func ConnectValue[V Scalar, A, R any](d *Delegate[A, R], fn func(V, A) R, v V) {
	if fn == nil {
		panic("delegate: connect of nil function")
	}
	d.data = payload{bits: scalarWord(v)}
	d.key = candidate(fn)
	d.fn = func(p *payload, a A) R {
		return fn(scalarOf[V](p), a)
	}
}

// Reset restores the unconnected state. After a reset the delegate is falsy
// and must not be invoked until reconnected.
func (d *Delegate[A, R]) Reset() {
	*d = Delegate[A, R]{}
}

// Instance returns the pointer lane of the slot, unconditionally.
//
// The result is meaningful only after [ConnectMethod]: it is then the bound
// receiver. After other bindings it is whatever word the binding stored —
// opaque but never dereferenced by this package. Interpreting it is the
// caller's contract.
func (d *Delegate[A, R]) Instance() unsafe.Pointer {
	return d.data.ptr
}

// Invoke calls the bound callable with the given argument.
// Panics if the delegate is unconnected.
func (d *Delegate[A, R]) Invoke(a A) R {
	if d.fn == nil {
		panic("delegate: invoke of unconnected delegate")
	}
	return d.fn(&d.data, a)
}

// TryInvoke attempts to call the bound callable.
// Returns (result, true) on success, or (zero, false) if unconnected.
func (d *Delegate[A, R]) TryInvoke(a A) (R, bool) {
	if d.fn == nil {
		var zero R
		return zero, false
	}
	return d.fn(&d.data, a), true
}

// Connected reports whether the delegate holds an active binding.
func (d *Delegate[A, R]) Connected() bool {
	return d.fn != nil
}

// Equal reports whether both delegates are bound to the same function or
// method. Receivers and curried values are not compared: two delegates bound
// to the same method of different receivers are equal. Use [Delegate.Instance]
// to tell receivers apart. Two unconnected delegates are equal.
func (d *Delegate[A, R]) Equal(other *Delegate[A, R]) bool {
	return d.key == other.key
}
