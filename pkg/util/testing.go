package util

import (
	"fmt"
	"reflect"
	"testing"
)

func AssertExpected(t *testing.T, expected, got interface{}) bool {
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("error, expected: %v, got: %v\n", expected, got)
		return false
	}
	return true
}

func AssertTrue(t *testing.T, got interface{}) bool {
	return AssertExpected(t, true, got)
}

func AssertFalse(t *testing.T, got interface{}) bool {
	return AssertExpected(t, false, got)
}

func AssertNil(t *testing.T, got interface{}) bool {
	return AssertExpected(t, nil, got)
}

// AssertPanic runs fn and checks that it panics with the expected message
func AssertPanic(t *testing.T, expected string, fn func()) {
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("error, expected panic: %q, got none\n", expected)
			return
		}
		if got := fmt.Sprint(r); got != expected {
			t.Errorf("error, expected panic: %q, got: %q\n", expected, got)
		}
	}()
	fn()
}
