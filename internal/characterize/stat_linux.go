//go:build linux

package characterize

import (
	"os"
	"syscall"
	"time"
)

// fileTimes returns the creation and modification timestamps for a
// file. Linux has no portable birth time, so the inode change time
// stands in for creation, matching what host pipelines record.
func fileTimes(info os.FileInfo) (created, modified time.Time) {
	modified = info.ModTime()
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		created = time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
		return created, modified
	}
	return modified, modified
}
