// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

// Construct-and-bind constructors. The delegate's type parameters are
// deduced from the callable's shape by ordinary type inference, so callers
// never spell them out. Each constructor is equivalent to declaring the zero
// delegate and calling the corresponding connect.

// Of returns a delegate bound to a plain function or function object.
func Of[A, R any](fn func(A) R) Delegate[A, R] {
	var d Delegate[A, R]
	d.Connect(fn)
	return d
}

// OfMethod returns a delegate bound to a method and its receiver.
func OfMethod[T, A, R any](method func(*T, A) R, recv *T) Delegate[A, R] {
	var d Delegate[A, R]
	ConnectMethod(&d, method, recv)
	return d
}

// OfValue returns a delegate bound to a function curried with a scalar.
func OfValue[V Scalar, A, R any](fn func(V, A) R, v V) Delegate[A, R] {
	var d Delegate[A, R]
	ConnectValue(&d, fn, v)
	return d
}

// Of0 returns a niladic delegate bound to a plain function.
func Of0[R any](fn func() R) Delegate0[R] {
	var d Delegate0[R]
	d.Connect(fn)
	return d
}

// OfMethod0 returns a niladic delegate bound to a method and its receiver.
func OfMethod0[T, R any](method func(*T) R, recv *T) Delegate0[R] {
	var d Delegate0[R]
	ConnectMethod0(&d, method, recv)
	return d
}

// OfValue0 returns a niladic delegate bound to a curried unary function.
func OfValue0[V Scalar, R any](fn func(V) R, v V) Delegate0[R] {
	var d Delegate0[R]
	ConnectValue0(&d, fn, v)
	return d
}

// Of2 returns a binary delegate bound to a plain function.
func Of2[A, B, R any](fn func(A, B) R) Delegate2[A, B, R] {
	var d Delegate2[A, B, R]
	d.Connect(fn)
	return d
}

// OfMethod2 returns a binary delegate bound to a method and its receiver.
func OfMethod2[T, A, B, R any](method func(*T, A, B) R, recv *T) Delegate2[A, B, R] {
	var d Delegate2[A, B, R]
	ConnectMethod2(&d, method, recv)
	return d
}

// OfValue2 returns a binary delegate bound to a curried ternary function.
func OfValue2[V Scalar, A, B, R any](fn func(V, A, B) R, v V) Delegate2[A, B, R] {
	var d Delegate2[A, B, R]
	ConnectValue2(&d, fn, v)
	return d
}
