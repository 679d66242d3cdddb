package exec

import (
	"bytes"
	"io"
	"sync"
)

// lockedBuffer is a bytes.Buffer safe for the concurrent writes os/exec
// performs when stdout and stderr share a destination.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// streams captures stdout, stderr and their interleaving for a single run,
// optionally teeing each stream to a passthrough writer.
type streams struct {
	stdout   lockedBuffer
	stderr   lockedBuffer
	combined lockedBuffer

	stdoutPassthrough io.Writer
	stderrPassthrough io.Writer
}

func newStreams(stdout, stderr io.Writer) *streams {
	return &streams{stdoutPassthrough: stdout, stderrPassthrough: stderr}
}

func (s *streams) stdoutWriter() io.Writer {
	return tee(&s.stdout, &s.combined, s.stdoutPassthrough)
}

func (s *streams) stderrWriter() io.Writer {
	return tee(&s.stderr, &s.combined, s.stderrPassthrough)
}

func tee(capture, combined, passthrough io.Writer) io.Writer {
	if passthrough == nil {
		return io.MultiWriter(capture, combined)
	}
	return io.MultiWriter(capture, combined, passthrough)
}

func (s *streams) result(exitCode int) *Result {
	return &Result{
		Stdout:   s.stdout.String(),
		Stderr:   s.stderr.String(),
		Combined: s.combined.String(),
		ExitCode: exitCode,
	}
}
