package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

var (
	header  = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed, color.Bold)
)

// Reporter handles CLI progress output. A nil *Reporter discards
// everything.
type Reporter struct {
	out       io.Writer
	startTime time.Time
	verbose   bool
	debug     bool
}

func NewReporter(out io.Writer, verbose bool, debug bool) *Reporter {
	return &Reporter{
		out:       out,
		startTime: time.Now(),
		verbose:   verbose,
		debug:     debug,
	}
}

// Chord announces the start of one chord's presets
func (r *Reporter) Chord(n, total int, name string) {
	if r == nil {
		return
	}
	header.Fprintf(r.out, "[%d/%d] %s\n", n, total, name)
}

// Wrote shows a written file, verbose only
func (r *Reporter) Wrote(path string, size int) {
	if r == nil || !r.verbose {
		return
	}
	fmt.Fprintf(r.out, "       %s (%d bytes)\n", path, size)
}

func (r *Reporter) Update(format string, args ...any) {
	if r == nil || !r.verbose {
		return
	}
	fmt.Fprintf(r.out, "       %s\n", fmt.Sprintf(format, args...))
}

func (r *Reporter) Done(files int, destination string) {
	if r == nil {
		return
	}
	elapsed := time.Since(r.startTime)
	success.Fprintf(r.out, "Done! %d presets written to %s\n", files, destination)
	fmt.Fprintf(r.out, "Completed in %.1f seconds\n", elapsed.Seconds())
}

// Error prints err, with its stack trace in debug mode
func (r *Reporter) Error(err error) {
	if r == nil {
		return
	}
	if r.debug {
		failure.Fprintf(r.out, "Error: %+v\n", err)
		return
	}
	failure.Fprintf(r.out, "Error: %s\n", err)
}
