// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/delegate"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// --- Group 1: invocation transparency ---

// TestPropertyFunctionTransparency: Of(f).Invoke(x) ≡ f(x)
func TestPropertyFunctionTransparency(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	fns := []func(int) int{double, negate, func(x int) int { return x*x - 1 }}
	for range propertyN {
		x := randInt(rng)
		f := fns[rng.IntN(len(fns))]
		d := delegate.Of(f)
		if got, want := d.Invoke(x), f(x); got != want {
			t.Fatalf("transparency: %d != %d (x=%d)", got, want, x)
		}
	}
}

// TestPropertyCurryTransparency: OfValue(g, v).Invoke(x) ≡ g(v, x)
func TestPropertyCurryTransparency(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		v := randInt(rng)
		x := randInt(rng)
		d := delegate.OfValue(addTo, v)
		if got, want := d.Invoke(x), addTo(v, x); got != want {
			t.Fatalf("curry transparency: %d != %d (v=%d, x=%d)", got, want, v, x)
		}
	}
}

// TestPropertyMethodTransparency: OfMethod(m, &i).Invoke(x) ≡ i.m(x),
// including the receiver mutation.
func TestPropertyMethodTransparency(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		start := randInt(rng)
		x := randInt(rng)
		direct := Counter{n: start}
		bound := Counter{n: start}
		d := delegate.OfMethod((*Counter).Add, &bound)
		if got, want := d.Invoke(x), direct.Add(x); got != want {
			t.Fatalf("method transparency: %d != %d (start=%d, x=%d)", got, want, start, x)
		}
		if bound.n != direct.n {
			t.Fatalf("receiver divergence: %d != %d", bound.n, direct.n)
		}
	}
}

// TestPropertyBinaryTransparency: Of2(f).Invoke(a, b) ≡ f(a, b)
func TestPropertyBinaryTransparency(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		b := randInt(rng)
		d := delegate.Of2(add)
		if got, want := d.Invoke(a, b), add(a, b); got != want {
			t.Fatalf("binary transparency: %d != %d (a=%d, b=%d)", got, want, a, b)
		}
	}
}

// --- Group 2: rebinding ---

// TestPropertyRebindLastWins: after binding f then g, only g is observable.
func TestPropertyRebindLastWins(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	fns := []func(int) int{double, negate, func(x int) int { return x + 7 }}
	for range propertyN {
		x := randInt(rng)
		var d delegate.Delegate[int, int]
		var last func(int) int
		for range 1 + rng.IntN(4) {
			last = fns[rng.IntN(len(fns))]
			d.Connect(last)
		}
		if got, want := d.Invoke(x), last(x); got != want {
			t.Fatalf("rebind: %d != %d (x=%d)", got, want, x)
		}
	}
}

// --- Group 3: equality laws ---

// TestPropertyEqualityLaws: Equal is reflexive and symmetric, tracks the
// bound candidate, and ignores the curried value.
func TestPropertyEqualityLaws(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		v1 := randInt(rng)
		v2 := randInt(rng)
		a := delegate.OfValue(addTo, v1)
		b := delegate.OfValue(addTo, v2)
		if !a.Equal(&a) {
			t.Fatal("equality must be reflexive")
		}
		if a.Equal(&b) != b.Equal(&a) {
			t.Fatal("equality must be symmetric")
		}
		if !a.Equal(&b) {
			t.Fatalf("same candidate must compare equal (v1=%d, v2=%d)", v1, v2)
		}
		c := delegate.Of(double)
		if a.Equal(&c) {
			t.Fatal("different candidates must not compare equal")
		}
	}
}

// --- Group 4: affine guards ---

// TestPropertyAffineSingleUse: exactly the first use of an affine guard
// succeeds, whatever the interleaving of TryResume and Discard.
func TestPropertyAffineSingleUse(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		x := randInt(rng)
		aff := delegate.Once(delegate.Of(double))
		discardFirst := rng.IntN(2) == 0
		if discardFirst {
			aff.Discard()
		}
		got, ok := aff.TryResume(x)
		if discardFirst {
			if ok {
				t.Fatal("TryResume must fail after Discard")
			}
			continue
		}
		if !ok || got != double(x) {
			t.Fatalf("first TryResume: got (%d, %v), want (%d, true)", got, ok, double(x))
		}
		if _, ok := aff.TryResume(x); ok {
			t.Fatal("second TryResume must fail")
		}
	}
}
