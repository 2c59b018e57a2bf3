// Package diag provides trace logging for generated code. Tracing is off
// by default and enabled with HALCYON_TRACE=1; output goes to stderr.
// Each process run is tagged with a short session id so interleaved runs
// can be told apart in captured logs, and the tag is colored when stderr
// is a terminal. In test mode the tag and color are dropped so captured
// output stays deterministic.
package diag

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/halcyon-lang/halcyon/internal/config"
)

const (
	colorCyan  = "\x1b[36m"
	colorReset = "\x1b[0m"
)

var (
	mu       sync.Mutex
	enabled  = os.Getenv("HALCYON_TRACE") != ""
	useColor = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	session  = uuid.NewString()[:8]
	out      io.Writer = os.Stderr
)

// Enabled reports whether tracing is on.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// SetEnabled turns tracing on or off, overriding the environment.
func SetEnabled(on bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = on
}

// SetOutput redirects trace output; tests use this to capture it.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Tracef writes one trace record when tracing is enabled.
func Tracef(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}
	prefix := "[derive] "
	if !config.IsTestMode {
		prefix = fmt.Sprintf("[derive %s] ", session)
		if useColor {
			prefix = colorCyan + prefix + colorReset
		}
	}
	fmt.Fprintf(out, prefix+format+"\n", args...)
}
