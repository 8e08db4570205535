package analyze

import (
	"fmt"
	"io"
)

// Reporter writes diagnostics to the listing, one per line, and remembers
// whether any were written.
type Reporter struct {
	w      io.Writer
	failed bool
}

func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = io.Discard
	}
	return &Reporter{w: w}
}

func (r *Reporter) Report(err error) {
	r.failed = true
	fmt.Fprintf(r.w, "Error: %s\n", err)
}

func (r *Reporter) Failed() bool {
	return r.failed
}
