//go:build windows

package downloader

import "os"

// killedByInterrupt is always false on Windows, where console interrupts do not terminate by signal.
func killedByInterrupt(*os.ProcessState) bool {
	return false
}
