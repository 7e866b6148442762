//go:build windows

package config

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
	"golang.org/x/term"
)

// reservedNameRunes are rejected in Windows file names on top of the path
// separators shared with other platforms.
const reservedNameRunes = `<>":/\|?*`

// CleanFileName strips reserved characters and path separators from a file
// name candidate so an expanded name template cannot escape its output
// directory. A name with nothing left falls back to a placeholder.
func CleanFileName(in string) string {
	var b strings.Builder
	b.Grow(len(in))
	for _, r := range in {
		if r == 0 || r == os.PathSeparator || r == os.PathListSeparator || strings.ContainsRune(reservedNameRunes, r) {
			continue
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "_bad_file_name_"
	}
	return b.String()
}

// EnableColorOutput reports whether stream is an interactive console able to
// process color escape sequences, switching the console into VT100 mode when
// it is. VT100 processing only exists starting with Windows 10.
func EnableColorOutput(stream *os.File) bool {
	if !term.IsTerminal(int(stream.Fd())) {
		return false
	}

	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()

	if v, _, err := k.GetIntegerValue("CurrentMajorVersionNumber"); err != nil || v < 10 {
		return false
	}

	const enableVirtualTerminalProcessing uint32 = 0x4

	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(stream.Fd()), &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(windows.Handle(stream.Fd()), mode|enableVirtualTerminalProcessing) == nil
}
