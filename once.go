// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import (
	"sync/atomic"
)

// Affine wraps a delegate with one-shot enforcement.
// The delegate can be invoked at most once; subsequent attempts
// to invoke will panic (Resume) or return false (TryResume).
//
// The gate is atomic so that reuse across goroutines fails
// deterministically instead of racily.
type Affine[A, R any] struct {
	used atomic.Uintptr
	d    Delegate[A, R]
}

// Once creates a one-shot guard around a delegate.
// The delegate is copied: rebinding the original afterwards does not affect
// the guard.
func Once[A, R any](d Delegate[A, R]) *Affine[A, R] {
	return &Affine[A, R]{d: d}
}

// Resume invokes the wrapped delegate with the given argument.
// Panics if the guard has already been used.
func (a *Affine[A, R]) Resume(v A) R {
	if a.used.Add(1) != 1 {
		panic("delegate: one-shot delegate invoked twice")
	}
	return a.d.Invoke(v)
}

// TryResume attempts to invoke the wrapped delegate.
// Returns (result, true) on success, or (zero, false) if already used
// or the delegate is unconnected.
func (a *Affine[A, R]) TryResume(v A) (R, bool) {
	if a.used.Add(1) != 1 {
		var zero R
		return zero, false
	}
	return a.d.TryInvoke(v)
}

// Discard marks the guard as used without invoking the delegate.
// This is useful for explicitly dropping a callback that will not be called.
func (a *Affine[A, R]) Discard() {
	a.used.Store(1)
}
