package export

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Recorder is an output sink that forwards everything written to it and keeps
// a copy. It is safe for concurrent use.
type Recorder struct {
	mu  sync.Mutex
	out io.Writer
	buf bytes.Buffer
}

// NewRecorder creates a Recorder forwarding to out. A nil out only records.
func NewRecorder(out io.Writer) *Recorder {
	if out == nil {
		out = io.Discard
	}
	return &Recorder{out: out}
}

// Write implements io.Writer.
func (r *Recorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf.Write(p)
	return r.out.Write(p)
}

// Println writes a line.
func (r *Recorder) Println(msg string) {
	fmt.Fprintln(r, msg)
}

// Printf writes a formatted line; a trailing newline is added.
func (r *Recorder) Printf(format string, args ...any) {
	fmt.Fprintf(r, format+"\n", args...)
}

// String returns everything recorded so far.
func (r *Recorder) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.String()
}

// Reset drops the recorded copy.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf.Reset()
}
