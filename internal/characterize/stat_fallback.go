//go:build !linux

package characterize

import (
	"os"
	"time"
)

// fileTimes falls back to the modification time on platforms without a
// usable change/birth time in os.FileInfo.
func fileTimes(info os.FileInfo) (created, modified time.Time) {
	return info.ModTime(), info.ModTime()
}
