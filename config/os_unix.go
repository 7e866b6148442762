//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// CleanFileName strips path separators from a file name candidate so an
// expanded name template cannot escape its output directory. Leading dots
// are dropped to avoid accidentally hidden files and a name with nothing
// left falls back to a placeholder.
func CleanFileName(in string) string {
	var b strings.Builder
	b.Grow(len(in))
	for _, r := range in {
		if r == os.PathSeparator || r == os.PathListSeparator {
			continue
		}
		b.WriteRune(r)
	}
	out := strings.TrimLeft(b.String(), ".")
	if out == "" {
		return "_bad_file_name_"
	}
	return out
}

// EnableColorOutput reports whether stream is an interactive terminal that
// can take colorized log output.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
