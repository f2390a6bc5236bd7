// Package testutil provides shared test assertions.
package testutil

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertNear fails the test unless got is within tol of want.
func AssertNear(t testing.TB, got, want, tol float64) {
	t.Helper()
	if !scalar.EqualWithinAbs(got, want, tol) {
		t.Errorf("got %v, want %v (tolerance %g)", got, want, tol)
	}
}
