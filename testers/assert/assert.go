package assert

import (
	"reflect"
	"testing"

	"github.com/susji/cminus/testers"
)

func Equal(t testing.TB, expect, got interface{}) {
	if diff := testers.Diff(expect, got); diff != nil {
		testers.DumpCaller(t)
		t.Errorf("wanted equal, but got different")
		t.Errorf("expected: %v [%T]", expect, expect)
		t.Errorf("got:      %v [%T]", got, got)
		testers.DumpDiff(t, diff)
	}
}

func Equalf(t testing.TB, expect, got interface{}, fmt string, va ...interface{}) {
	if diff := testers.Diff(expect, got); diff != nil {
		testers.DumpCaller(t)
		t.Errorf(fmt, va...)
		t.Errorf("expected: %v [%T]", expect, expect)
		t.Errorf("got:      %v [%T]", got, got)
		testers.DumpDiff(t, diff)
	}
}

func True(t testing.TB, exp bool) {
	if !exp {
		testers.DumpCaller(t)
		t.Error("expected true, got false")
	}
}

func Truef(t testing.TB, exp bool, fmt string, va ...interface{}) {
	if !exp {
		testers.DumpCaller(t)
		t.Errorf(fmt, va...)
	}
}

func False(t testing.TB, exp bool) {
	if exp {
		testers.DumpCaller(t)
		t.Error("expected false, got true")
	}
}

func Nil(t testing.TB, exp interface{}) {
	if !isNil(exp) {
		testers.DumpCaller(t)
		t.Errorf("wanted nil, got %v of type %T", exp, exp)
	}
}

func NotNil(t testing.TB, exp interface{}) {
	if isNil(exp) {
		testers.DumpCaller(t)
		t.Error("wanted not nil, got nil")
	}
}

func isNil(exp interface{}) bool {
	if exp == nil {
		return true
	}
	switch v := reflect.ValueOf(exp); v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Func:
		return v.IsNil()
	}
	return false
}
