package require

import (
	"reflect"
	"testing"

	"github.com/susji/cminus/testers"
)

func Equal(t testing.TB, expect, got interface{}) {
	if diff := testers.Diff(expect, got); diff != nil {
		testers.DumpCaller(t)
		t.Errorf("expected: %v [%T]", expect, expect)
		t.Errorf("got:      %v [%T]", got, got)
		testers.DumpDiff(t, diff)
		t.FailNow()
	}
}

func True(t testing.TB, exp bool) {
	if !exp {
		testers.DumpCaller(t)
		t.Fatal("expected true, got false")
	}
}

func Truef(t testing.TB, exp bool, fmt string, va ...interface{}) {
	if !exp {
		testers.DumpCaller(t)
		t.Fatalf(fmt, va...)
	}
}

func Nil(t testing.TB, exp interface{}) {
	if exp != nil &&
		(reflect.ValueOf(exp).Kind() != reflect.Ptr ||
			!reflect.ValueOf(exp).IsNil()) {
		testers.DumpCaller(t)
		t.Fatalf("wanted nil, got %v of type %T", exp, exp)
	}
}

func NotNil(t testing.TB, exp interface{}) {
	if exp == nil ||
		(reflect.ValueOf(exp).Kind() == reflect.Ptr &&
			reflect.ValueOf(exp).IsNil()) {
		testers.DumpCaller(t)
		t.Fatal("wanted not nil, got nil")
	}
}
