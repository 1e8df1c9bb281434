// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package delegate provides a fixed-size, allocation-free wrapper for a
// single callable.
//
// A delegate stores one bound target — a plain function, a method with its
// receiver, or a function curried with a leading value — inline, and invokes
// it through one uniform signature. There is no heap allocation for the
// payload, no interface dispatch, and no ownership: the caller guarantees
// that the bound receiver or closure outlives every invocation.
//
// # Design Philosophy
//
// delegate provides:
//   - One inline payload slot and one stored trampoline per delegate
//   - Bind-time type erasure: the trampoline fixed at connect time is the
//     only state distinguishing what is bound
//   - Constraints enforced through the type system, not at call time
//   - Allocation-free invocation for every binding kind
//
// The erasure happens once, when a target is connected. The trampoline knows
// how to reinterpret the slot for that particular binding; after that the
// delegate carries no type information at all.
//
// # Core Types
//
// Arity is expressed as numbered variants, since Go has no variadic type
// parameters:
//
//   - [Delegate]: unary wrapper for func(A) R
//   - [Delegate0]: niladic wrapper for func() R
//   - [Delegate2]: binary wrapper for func(A, B) R
//
// The zero value of each is a valid unconnected delegate.
//
// # Binding
//
// Three binding kinds cover the callable shapes:
//
//   - [Delegate.Connect]: a plain function or small function object. Both are
//     a one-word func value in Go; the word is the stored payload.
//   - [ConnectMethod]: a method expression plus its receiver, e.g.
//     ConnectMethod(&d, (*Counter).Add, &c). The receiver pointer is the
//     stored payload. The same form binds a free function curried with a
//     leading pointer.
//   - [ConnectValue]: a function curried with a leading scalar. The scalar's
//     bytes are the stored payload; the [Scalar] type set is the compile-time
//     size and triviality check.
//
// Rebinding overwrites the previous binding completely. [Delegate.Reset]
// restores the unconnected state.
//
// The construct-and-bind constructors [Of], [OfMethod] and [OfValue] (and
// their arity variants) deduce the delegate type from the callable's shape,
// so the type parameters never need to be spelled out.
//
// # Invocation
//
//   - [Delegate.Invoke]: calls the bound target; panics if unconnected
//   - [Delegate.TryInvoke]: non-panicking variant, returns (zero, false)
//     when unconnected
//   - [Delegate.Connected]: reports whether a target is bound
//
// Panics raised by the bound target propagate to the caller unchanged.
//
// # Identity
//
// [Delegate.Equal] compares bound candidates: two delegates bound to the same
// function or method are equal even when their receivers or curried values
// differ. [Delegate.Instance] exposes the stored receiver pointer for
// telling bindings of the same method apart; its result is meaningful only
// for method bindings and is otherwise an opaque word.
//
// # One-Shot Guards
//
// [Affine] wraps a delegate with one-shot enforcement for connect-once
// callback protocols:
//
//   - [Once]: create the guard
//   - [Affine.Resume]: invoke (panics on reuse)
//   - [Affine.TryResume]: non-panicking variant
//   - [Affine.Discard]: drop without invoking
//
// # Allocation
//
// Invocation never allocates. Connecting a plain function does not allocate
// either: its trampoline is a static funcval shared per instantiation.
// Connecting a method or curried value allocates the one trampoline closure
// that captures the candidate.
//
// # Concurrency
//
// A delegate is an unsynchronized value. Rebinding and invoking the same
// delegate concurrently is a data race; invoking an already-bound delegate
// from several goroutines is safe exactly when the bound target is.
//
// # Example
//
//	type Counter struct{ n int }
//
//	func (c *Counter) Add(v int) int {
//		c.n += v
//		return c.n
//	}
//
//	func add(a, b int) int { return a + b }
//
//	d := delegate.Of2(add)
//	sum := d.Invoke(2, 3) // 5
//
//	c := Counter{n: 10}
//	m := delegate.OfMethod((*Counter).Add, &c)
//	total := m.Invoke(5) // 15, c.n == 15
package delegate
