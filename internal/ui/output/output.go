// Package output creates termenv outputs for styled text. Colour is dropped
// when NO_COLOR is set or when the text goes to a file that is not a
// terminal, so redirected logs stay free of escape codes.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// NoColorEnv names the variable that turns colour off when non-empty.
const NoColorEnv = "NO_COLOR"

// ColorProfile returns the profile for styled text written to w.
func ColorProfile(w io.Writer) termenv.Profile {
	if os.Getenv(NoColorEnv) != "" {
		return termenv.Ascii
	}
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates an output for w using ColorProfile. A nil w writes to stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile(w)),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
