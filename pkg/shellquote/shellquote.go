// Package shellquote renders argv as a line that can be pasted into a POSIX shell.
package shellquote

import "strings"

// safe chars are left unquoted.
const safe = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_@%+=:,./-"

// Quote returns s wrapped in single quotes when it contains anything outside the safe set.
// Embedded single quotes become '\''.
func Quote(s string) string {
	if s == "" {
		return "''"
	}

	if strings.Trim(s, safe) == "" {
		return s
	}

	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Join constructs a shell-pasteable command line from bin and args.
func Join(bin string, args []string) string {
	var cmdLine strings.Builder

	cmdLine.WriteString(Quote(bin))

	for _, arg := range args {
		cmdLine.WriteByte(' ')
		cmdLine.WriteString(Quote(arg))
	}

	return cmdLine.String()
}
