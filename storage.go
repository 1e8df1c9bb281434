// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import "unsafe"

// payload is the fixed inline slot of a delegate.
//
// It holds whatever a binding captured: a receiver pointer, the funcval word
// of a bound function, or the bytes of a curried scalar. The slot is split
// into two lanes of one machine word each because the Go collector must be
// able to see every live pointer — scalar bits may not masquerade as an
// unsafe.Pointer, and a pointer may not hide in an integer. Every binding
// kind writes exactly one lane; the other stays zero.
type payload struct {
	ptr  unsafe.Pointer
	bits uint64
}

// Scalar is the set of types a delegate can curry by value.
//
// Every member fits the scalar lane and is trivially copyable, so membership
// in the set is the compile-time size and triviality check. Types outside the
// set (structs, strings, slices) are curried by pointer through
// [ConnectMethod] instead.
type Scalar interface {
	~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// scalarWord reinterprets a scalar value as the bits of the scalar lane.
func scalarWord[V Scalar](v V) uint64 {
	var w uint64
	*(*V)(unsafe.Pointer(&w)) = v
	return w
}

// scalarOf reinterprets the scalar lane as a value of type V.
// Symmetric with scalarWord: it reads exactly the bytes that were written.
func scalarOf[V Scalar](p *payload) V {
	return *(*V)(unsafe.Pointer(&p.bits))
}

// funcWord reinterprets a func value as its funcval word.
// A Go func value is one pointer word; keeping it in the pointer lane keeps
// the closure it refers to visible to the collector.
func funcWord[A, R any](fn func(A) R) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&fn))
}

// loadFunc reinterprets the pointer lane as a func value.
func loadFunc[A, R any](p *payload) func(A) R {
	return *(*func(A) R)(unsafe.Pointer(&p.ptr))
}

func funcWord0[R any](fn func() R) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&fn))
}

func loadFunc0[R any](p *payload) func() R {
	return *(*func() R)(unsafe.Pointer(&p.ptr))
}

func funcWord2[A, B, R any](fn func(A, B) R) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&fn))
}

func loadFunc2[A, B, R any](p *payload) func(A, B) R {
	return *(*func(A, B) R)(unsafe.Pointer(&p.ptr))
}
