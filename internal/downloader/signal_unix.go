//go:build !windows

package downloader

import (
	"os"
	"syscall"
)

// killedByInterrupt reports whether yt-dlp was terminated by SIGINT.
func killedByInterrupt(state *os.ProcessState) bool {
	if state == nil {
		return false
	}

	status, ok := state.Sys().(syscall.WaitStatus)

	return ok && status.Signaled() && status.Signal() == syscall.SIGINT
}
