package testers

import (
	"path"
	"runtime"
	"testing"

	"github.com/go-test/deep"
)

func init() {
	// Syntax trees nest well past the library default.
	deep.MaxDepth = 64
	deep.CompareUnexportedFields = true
}

func DumpCaller(t testing.TB) {
	_, fn, line, _ := runtime.Caller(2)
	t.Errorf("[ %s:%d ]", path.Base(fn), line)
}

// Diff returns a structural diff of expect and got, or nil when they match.
func Diff(expect, got interface{}) []string {
	return deep.Equal(expect, got)
}

// DumpDiff reports each line of a non-empty diff.
func DumpDiff(t testing.TB, diff []string) {
	for _, d := range diff {
		t.Errorf("  %s", d)
	}
}
