//go:build linux

package entity

import (
	"os"
	"syscall"
	"time"
)

// statTimes extracts access and change times from the platform stat record.
// Linux has no birth time in syscall.Stat_t; Ctim is the closest analogue.
func statTimes(info os.FileInfo) (atime, ctime time.Time) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime(), info.ModTime()
	}
	atime = time.Unix(st.Atim.Sec, st.Atim.Nsec)
	ctime = time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	return atime, ctime
}
