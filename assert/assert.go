package assert

import (
	"reflect"
	"testing"
)

// NoError fails the test immediately if got is an error.
func NoError(t *testing.T, got error) {
	t.Helper()
	if got != nil {
		t.Fatalf("got an error but didnt want one '%s'", got)
	}
}

// GotError fails the test immediately if got is nil.
func GotError(t *testing.T, got error) {
	t.Helper()
	if got == nil {
		t.Fatalf("expected an error, but got none")
	}
}

// Equal compares expected against got with reflect.DeepEqual and fails the
// test with a message if they differ.
func Equal(t *testing.T, expected interface{}, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Fatalf("expected '%v', got '%v'", expected, got)
	}
}
